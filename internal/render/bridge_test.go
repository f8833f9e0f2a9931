package render

import (
	"encoding/binary"
	"fmt"
	"math"
	"strings"
	"testing"

	"github.com/atomicstack/imdialog/internal/testutil"
	"github.com/atomicstack/imdialog/internal/ui/draw"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type call struct {
	op    string
	args  []int32
	bytes []byte
}

type recordingDevice struct {
	calls []call
}

func (d *recordingDevice) Begin(w, h int32) {
	d.calls = append(d.calls, call{op: "begin", args: []int32{w, h}})
}

func (d *recordingDevice) UploadVertices(data []byte) {
	d.calls = append(d.calls, call{op: "upload", bytes: append([]byte(nil), data...)})
}

func (d *recordingDevice) Scissor(x, y, w, h int32) {
	d.calls = append(d.calls, call{op: "scissor", args: []int32{x, y, w, h}})
}

func (d *recordingDevice) DrawIndexed(count int32, width IndexWidth, indices []byte) {
	d.calls = append(d.calls, call{op: "draw", args: []int32{count, int32(width)}, bytes: append([]byte(nil), indices...)})
}

func (d *recordingDevice) ops() []string {
	out := make([]string, len(d.calls))
	for i, c := range d.calls {
		out[i] = c.op
	}
	return out
}

// transcript renders the recorded calls one per line, decoding indices.
func (d *recordingDevice) transcript() string {
	var b strings.Builder
	for _, c := range d.calls {
		switch c.op {
		case "upload":
			fmt.Fprintf(&b, "upload %d\n", len(c.bytes))
		case "draw":
			idx := make([]uint16, 0, len(c.bytes)/2)
			for i := 0; i+1 < len(c.bytes); i += 2 {
				idx = append(idx, binary.LittleEndian.Uint16(c.bytes[i:]))
			}
			fmt.Fprintf(&b, "draw %d %v\n", c.args[0], idx)
		default:
			b.WriteString(c.op)
			for _, a := range c.args {
				fmt.Fprintf(&b, " %d", a)
			}
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func twoBatchFrame() *draw.Frame {
	return &draw.Frame{Batches: []draw.Batch{
		{
			Vertices: make([]draw.Vertex, 4),
			Indices:  []draw.Index{0, 1, 2, 0, 2, 3, 3, 2, 1},
			Commands: []draw.Command{
				{ElemCount: 6, ClipRect: draw.Rect{MinX: 0, MinY: 0, MaxX: 800, MaxY: 600}},
				{ElemCount: 3, ClipRect: draw.Rect{MinX: 10, MinY: 20, MaxX: 110, MaxY: 70}},
			},
		},
		{
			Vertices: make([]draw.Vertex, 3),
			Indices:  []draw.Index{0, 1, 2},
			Commands: []draw.Command{{ElemCount: 3, ClipRect: draw.Rect{MinX: 50, MinY: 50, MaxX: 40, MaxY: 40}}},
		},
	}}
}

func TestRenderPreservesOrder(t *testing.T) {
	dev := &recordingDevice{}
	st := NewBridge(dev, 800, 600).Render(twoBatchFrame())

	assert.Equal(t, []string{
		"begin",
		"upload", "scissor", "draw", "scissor", "draw",
		"upload", "scissor", "draw",
	}, dev.ops())
	assert.Equal(t, Stats{Batches: 2, DrawCalls: 3, Elements: 12}, st)
}

func TestRenderTranscript(t *testing.T) {
	dev := &recordingDevice{}
	NewBridge(dev, 800, 600).Render(twoBatchFrame())
	testutil.AssertGolden(t, "bridge_two_batches.golden", dev.transcript())
}

func TestDrawCallsEqualCommandCount(t *testing.T) {
	frame := twoBatchFrame()
	dev := &recordingDevice{}
	st := NewBridge(dev, 800, 600).Render(frame)
	assert.Equal(t, frame.CommandCount(), st.DrawCalls)
}

func TestIndexCursorAdvances(t *testing.T) {
	dev := &recordingDevice{}
	NewBridge(dev, 800, 600).Render(twoBatchFrame())

	var draws []call
	for _, c := range dev.calls {
		if c.op == "draw" {
			draws = append(draws, c)
		}
	}
	require.Len(t, draws, 3)
	assert.Equal(t, int32(2), draws[0].args[1])
	assert.Equal(t, []byte{0, 0, 1, 0, 2, 0, 0, 0, 2, 0, 3, 0}, draws[0].bytes)
	assert.Equal(t, []byte{3, 0, 2, 0, 1, 0}, draws[1].bytes)
	assert.Equal(t, []byte{0, 0, 1, 0, 2, 0}, draws[2].bytes, "cursor restarts per batch")
}

func TestScissorFlipsAndClamps(t *testing.T) {
	dev := &recordingDevice{}
	NewBridge(dev, 800, 600).Render(twoBatchFrame())

	var scissors [][]int32
	for _, c := range dev.calls {
		if c.op == "scissor" {
			scissors = append(scissors, c.args)
			assert.GreaterOrEqual(t, c.args[2], int32(0))
			assert.GreaterOrEqual(t, c.args[3], int32(0))
		}
	}
	assert.Equal(t, []int32{0, 0, 800, 600}, scissors[0])
	assert.Equal(t, []int32{10, 530, 100, 50}, scissors[1])
	assert.Equal(t, []int32{50, 560, 0, 0}, scissors[2])
}

func TestClipToScissorNeverNegative(t *testing.T) {
	rects := []draw.Rect{
		{MinX: 0, MinY: 0, MaxX: -5, MaxY: -5},
		{MinX: 100, MinY: 100, MaxX: 0, MaxY: 0},
		{MinX: -10, MinY: -10, MaxX: 10, MaxY: 10},
	}
	for _, r := range rects {
		sc := ClipToScissor(r, 600)
		assert.GreaterOrEqual(t, sc.Width, int32(0))
		assert.GreaterOrEqual(t, sc.Height, int32(0))
	}
}

func TestOverlongCommandIsTruncated(t *testing.T) {
	dev := &recordingDevice{}
	frame := &draw.Frame{Batches: []draw.Batch{{
		Vertices: make([]draw.Vertex, 3),
		Indices:  []draw.Index{0, 1, 2},
		Commands: []draw.Command{{ElemCount: 6}, {ElemCount: 3}},
	}}}
	st := NewBridge(dev, 10, 10).Render(frame)
	assert.Equal(t, 2, st.DrawCalls)
	assert.Equal(t, 3, st.Elements)
}

func TestVertexSerialization(t *testing.T) {
	assert.Equal(t, int32(20), Layout.Stride)
	assert.Equal(t, uintptr(0), Layout.Position.Offset)
	assert.Equal(t, uintptr(8), Layout.UV.Offset)
	assert.Equal(t, uintptr(16), Layout.Color.Offset)
	assert.Equal(t, Index16, SessionIndexWidth)

	buf := appendVertices(nil, []draw.Vertex{{Pos: [2]float32{1.5, 2}, UV: [2]float32{0.25, 1}, Col: 0xff112233}})
	require.Len(t, buf, 20)
	assert.Equal(t, float32(1.5), math.Float32frombits(binary.LittleEndian.Uint32(buf[0:])))
	assert.Equal(t, float32(0.25), math.Float32frombits(binary.LittleEndian.Uint32(buf[8:])))
	assert.Equal(t, []byte{0x33, 0x22, 0x11, 0xff}, buf[16:20])
}

func TestNilFrame(t *testing.T) {
	dev := &recordingDevice{}
	st := NewBridge(dev, 10, 10).Render(nil)
	assert.Equal(t, Stats{}, st)
	assert.Equal(t, []string{"begin"}, dev.ops())
}
