// Package render turns a draw.Frame into device calls: one vertex upload per
// batch, then a scissor and an indexed draw per command, in submission order.
package render

import (
	"github.com/atomicstack/imdialog/internal/logging/events"
	"github.com/atomicstack/imdialog/internal/ui/draw"
)

// Device is the GPU side of the bridge.
type Device interface {
	// Begin prepares a frame on a framebuffer of the given size.
	Begin(fbWidth, fbHeight int32)
	// UploadVertices replaces the contents of the shared vertex buffer.
	UploadVertices(data []byte)
	// Scissor sets the clip region in framebuffer coordinates, origin bottom left.
	Scissor(x, y, width, height int32)
	// DrawIndexed draws count indices of the given width as triangles.
	DrawIndexed(count int32, width IndexWidth, indices []byte)
}

// Stats summarizes one rendered frame.
type Stats struct {
	Batches   int
	DrawCalls int
	Elements  int
}

// ScissorRect is a clip rectangle in framebuffer coordinates.
type ScissorRect struct {
	X, Y, Width, Height int32
}

// Bridge renders frames onto a Device with a fixed framebuffer size.
type Bridge struct {
	dev      Device
	fbWidth  int32
	fbHeight int32

	vbuf []byte
	ibuf []byte
}

func NewBridge(dev Device, fbWidth, fbHeight int32) *Bridge {
	return &Bridge{dev: dev, fbWidth: fbWidth, fbHeight: fbHeight}
}

// Render issues the frame. The index read cursor restarts at each batch.
func (b *Bridge) Render(frame *draw.Frame) Stats {
	var st Stats
	b.dev.Begin(b.fbWidth, b.fbHeight)
	if frame == nil {
		return st
	}
	for _, batch := range frame.Batches {
		b.vbuf = appendVertices(b.vbuf[:0], batch.Vertices)
		b.dev.UploadVertices(b.vbuf)
		b.ibuf = appendIndices(b.ibuf[:0], batch.Indices)
		st.Batches++

		width := int(SessionIndexWidth)
		cursor := 0
		for _, cmd := range batch.Commands {
			sc := ClipToScissor(cmd.ClipRect, b.fbHeight)
			b.dev.Scissor(sc.X, sc.Y, sc.Width, sc.Height)
			start := min(cursor, len(batch.Indices))
			end := min(cursor+int(cmd.ElemCount), len(batch.Indices))
			b.dev.DrawIndexed(int32(end-start), SessionIndexWidth, b.ibuf[start*width:end*width])
			st.DrawCalls++
			st.Elements += end - start
			cursor += int(cmd.ElemCount)
		}
	}
	events.Render.Frame(st.Batches, st.DrawCalls, st.Elements)
	return st
}

// ClipToScissor maps a UI clip rectangle (origin top left) to framebuffer
// coordinates (origin bottom left). Negative extents clamp to zero.
func ClipToScissor(r draw.Rect, fbHeight int32) ScissorRect {
	sc := ScissorRect{
		X:      int32(r.MinX),
		Y:      fbHeight - int32(r.MaxY),
		Width:  int32(r.MaxX - r.MinX),
		Height: int32(r.MaxY - r.MinY),
	}
	if sc.Width < 0 {
		sc.Width = 0
	}
	if sc.Height < 0 {
		sc.Height = 0
	}
	return sc
}
