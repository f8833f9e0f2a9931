package draw

// List records primitives for one frame in submission order. A change of
// clip rectangle starts a new command; running out of 16-bit vertex
// indices starts a new batch.
type List struct {
	display Rect
	white   [2]float32
	clips   []Rect
	batches []Batch
}

// NewList starts an empty list covering a width x height framebuffer. white
// is the atlas coordinate of an opaque white texel used for solid fills.
func NewList(width, height float32, white [2]float32) *List {
	l := &List{
		display: Rect{MaxX: width, MaxY: height},
		white:   white,
	}
	l.batches = []Batch{{}}
	l.clips = []Rect{l.display}
	return l
}

// Clip is the effective clip rectangle.
func (l *List) Clip() Rect {
	return l.clips[len(l.clips)-1]
}

// PushClipRect narrows the clip to r intersected with the current clip.
func (l *List) PushClipRect(r Rect) {
	l.clips = append(l.clips, r.Intersect(l.Clip()))
}

// PopClipRect restores the previous clip. The display clip is never popped.
func (l *List) PopClipRect() {
	if len(l.clips) > 1 {
		l.clips = l.clips[:len(l.clips)-1]
	}
}

func (l *List) batch() *Batch {
	return &l.batches[len(l.batches)-1]
}

// reserve makes room for n more vertices in the current batch and returns
// the index of the first, starting a new batch when the current one would
// overflow.
func (l *List) reserve(n int) Index {
	b := l.batch()
	if len(b.Vertices)+n > MaxVertices {
		l.batches = append(l.batches, Batch{})
		b = l.batch()
	}
	clip := l.Clip()
	if k := len(b.Commands); k == 0 || b.Commands[k-1].ClipRect != clip {
		if k > 0 && b.Commands[k-1].ElemCount == 0 {
			b.Commands[k-1].ClipRect = clip
		} else {
			b.Commands = append(b.Commands, Command{ClipRect: clip})
		}
	}
	return Index(len(b.Vertices))
}

// AddQuad appends two triangles with explicit texture coordinates.
func (l *List) AddQuad(r Rect, uv Rect, col uint32) {
	if col>>24 == 0 || r.Width() <= 0 || r.Height() <= 0 {
		return
	}
	base := l.reserve(4)
	b := l.batch()
	b.Vertices = append(b.Vertices,
		Vertex{Pos: [2]float32{r.MinX, r.MinY}, UV: [2]float32{uv.MinX, uv.MinY}, Col: col},
		Vertex{Pos: [2]float32{r.MaxX, r.MinY}, UV: [2]float32{uv.MaxX, uv.MinY}, Col: col},
		Vertex{Pos: [2]float32{r.MaxX, r.MaxY}, UV: [2]float32{uv.MaxX, uv.MaxY}, Col: col},
		Vertex{Pos: [2]float32{r.MinX, r.MaxY}, UV: [2]float32{uv.MinX, uv.MaxY}, Col: col},
	)
	b.Indices = append(b.Indices, base, base+1, base+2, base, base+2, base+3)
	b.Commands[len(b.Commands)-1].ElemCount += 6
}

// AddRectFilled appends a solid rectangle.
func (l *List) AddRectFilled(r Rect, col uint32) {
	uv := Rect{MinX: l.white[0], MinY: l.white[1], MaxX: l.white[0], MaxY: l.white[1]}
	l.AddQuad(r, uv, col)
}

// AddRect appends a rectangle outline of the given thickness.
func (l *List) AddRect(r Rect, col uint32, thickness float32) {
	if thickness <= 0 {
		return
	}
	l.AddRectFilled(Rect{r.MinX, r.MinY, r.MaxX, r.MinY + thickness}, col)
	l.AddRectFilled(Rect{r.MinX, r.MaxY - thickness, r.MaxX, r.MaxY}, col)
	l.AddRectFilled(Rect{r.MinX, r.MinY + thickness, r.MinX + thickness, r.MaxY - thickness}, col)
	l.AddRectFilled(Rect{r.MaxX - thickness, r.MinY + thickness, r.MaxX, r.MaxY - thickness}, col)
}

// AddImageQuad appends a textured quad such as a glyph.
func (l *List) AddImageQuad(r Rect, uv Rect, col uint32) {
	l.AddQuad(r, uv, col)
}

// Frame finalizes the list. Empty trailing commands and batches are dropped.
func (l *List) Frame() *Frame {
	out := &Frame{DisplayWidth: l.display.MaxX, DisplayHeight: l.display.MaxY}
	for _, b := range l.batches {
		cmds := b.Commands[:0:0]
		for _, c := range b.Commands {
			if c.ElemCount > 0 {
				cmds = append(cmds, c)
			}
		}
		if len(cmds) == 0 {
			continue
		}
		b.Commands = cmds
		out.Batches = append(out.Batches, b)
	}
	return out
}
