package render

import (
	"encoding/binary"
	"math"
	"unsafe"

	"github.com/atomicstack/imdialog/internal/ui/draw"
)

// AttribType is the component type of a vertex attribute.
type AttribType int

const (
	Float32 AttribType = iota
	Uint8
)

// Attrib describes one vertex attribute inside the interleaved buffer.
type Attrib struct {
	Name       string
	Components int32
	Type       AttribType
	Normalized bool
	Offset     uintptr
}

// VertexLayout is the fixed interleaved layout of draw.Vertex.
type VertexLayout struct {
	Stride   int32
	Position Attrib
	UV       Attrib
	Color    Attrib
}

// IndexWidth is the byte size of one index element.
type IndexWidth int

const (
	Index16 IndexWidth = 2
	Index32 IndexWidth = 4
)

var (
	// Layout is computed once from the compiled vertex type.
	Layout = VertexLayout{
		Stride:   int32(unsafe.Sizeof(draw.Vertex{})),
		Position: Attrib{Name: "aPosition", Components: 2, Type: Float32, Offset: unsafe.Offsetof(draw.Vertex{}.Pos)},
		UV:       Attrib{Name: "aTextureUV", Components: 2, Type: Float32, Offset: unsafe.Offsetof(draw.Vertex{}.UV)},
		Color:    Attrib{Name: "aColor", Components: 4, Type: Uint8, Normalized: true, Offset: unsafe.Offsetof(draw.Vertex{}.Col)},
	}

	// SessionIndexWidth follows the compiled draw.Index type.
	SessionIndexWidth = IndexWidth(unsafe.Sizeof(draw.Index(0)))
)

// Attribs lists the attributes in declaration order.
func (l VertexLayout) Attribs() []Attrib {
	return []Attrib{l.Position, l.UV, l.Color}
}

// appendVertices serializes vs in the layout, little-endian, into buf.
func appendVertices(buf []byte, vs []draw.Vertex) []byte {
	stride := int(Layout.Stride)
	start := len(buf)
	buf = grow(buf, len(vs)*stride)
	for i, v := range vs {
		b := buf[start+i*stride : start+(i+1)*stride]
		p, uv, col := Layout.Position.Offset, Layout.UV.Offset, Layout.Color.Offset
		binary.LittleEndian.PutUint32(b[p:], math.Float32bits(v.Pos[0]))
		binary.LittleEndian.PutUint32(b[p+4:], math.Float32bits(v.Pos[1]))
		binary.LittleEndian.PutUint32(b[uv:], math.Float32bits(v.UV[0]))
		binary.LittleEndian.PutUint32(b[uv+4:], math.Float32bits(v.UV[1]))
		binary.LittleEndian.PutUint32(b[col:], v.Col)
	}
	return buf
}

func appendIndices(buf []byte, idx []draw.Index) []byte {
	w := int(SessionIndexWidth)
	start := len(buf)
	buf = grow(buf, len(idx)*w)
	for i, v := range idx {
		switch SessionIndexWidth {
		case Index16:
			binary.LittleEndian.PutUint16(buf[start+i*w:], uint16(v))
		default:
			binary.LittleEndian.PutUint32(buf[start+i*w:], uint32(v))
		}
	}
	return buf
}

func grow(buf []byte, n int) []byte {
	if cap(buf)-len(buf) < n {
		next := make([]byte, len(buf), len(buf)+n)
		copy(next, buf)
		buf = next
	}
	return buf[:len(buf)+n]
}
