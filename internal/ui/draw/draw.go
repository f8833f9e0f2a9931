// Package draw holds the per-frame geometry produced by the UI and consumed
// by the renderer: batches of vertices and 16-bit indices split into
// commands that each carry a clip rectangle.
package draw

import "math"

// Vertex is one corner of a textured, colored triangle.
type Vertex struct {
	Pos [2]float32
	UV  [2]float32
	Col uint32
}

// Index addresses a vertex within its batch.
type Index uint16

// MaxVertices is the largest vertex count one batch can address.
const MaxVertices = math.MaxUint16

// Rect is an axis-aligned rectangle in UI coordinates, origin top left.
type Rect struct {
	MinX, MinY, MaxX, MaxY float32
}

func (r Rect) Width() float32  { return r.MaxX - r.MinX }
func (r Rect) Height() float32 { return r.MaxY - r.MinY }

// Contains reports whether the point lies inside r.
func (r Rect) Contains(x, y float32) bool {
	return x >= r.MinX && x < r.MaxX && y >= r.MinY && y < r.MaxY
}

// Intersect returns the overlap of r and o. Disjoint rectangles yield an
// empty rectangle anchored at the overlap's min corner.
func (r Rect) Intersect(o Rect) Rect {
	out := Rect{
		MinX: max32(r.MinX, o.MinX),
		MinY: max32(r.MinY, o.MinY),
		MaxX: min32(r.MaxX, o.MaxX),
		MaxY: min32(r.MaxY, o.MaxY),
	}
	if out.MaxX < out.MinX {
		out.MaxX = out.MinX
	}
	if out.MaxY < out.MinY {
		out.MaxY = out.MinY
	}
	return out
}

// Command draws ElemCount indices from the batch's read cursor, clipped to
// ClipRect.
type Command struct {
	ElemCount uint32
	ClipRect  Rect
}

// Batch is one vertex buffer with its indices and commands.
type Batch struct {
	Vertices []Vertex
	Indices  []Index
	Commands []Command
}

// Frame is the ordered output of one UI pass.
type Frame struct {
	DisplayWidth  float32
	DisplayHeight float32
	Batches       []Batch
}

// CommandCount totals the commands across all batches.
func (f *Frame) CommandCount() int {
	n := 0
	for _, b := range f.Batches {
		n += len(b.Commands)
	}
	return n
}

// ElementCount totals the indices referenced by all commands.
func (f *Frame) ElementCount() int {
	n := 0
	for _, b := range f.Batches {
		for _, c := range b.Commands {
			n += int(c.ElemCount)
		}
	}
	return n
}

func min32(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func max32(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}
