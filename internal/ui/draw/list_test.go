package draw

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const opaque = 0xff_ff_ff_ff

func TestListMergesCommandsWithSameClip(t *testing.T) {
	l := NewList(800, 600, [2]float32{0, 0})
	l.AddRectFilled(Rect{0, 0, 10, 10}, opaque)
	l.AddRectFilled(Rect{10, 10, 20, 20}, opaque)
	f := l.Frame()

	require.Len(t, f.Batches, 1)
	require.Len(t, f.Batches[0].Commands, 1)
	assert.Equal(t, uint32(12), f.Batches[0].Commands[0].ElemCount)
	assert.Equal(t, Rect{0, 0, 800, 600}, f.Batches[0].Commands[0].ClipRect)
	assert.Len(t, f.Batches[0].Vertices, 8)
	assert.Equal(t, 12, f.ElementCount())
}

func TestListClipStackStartsCommands(t *testing.T) {
	l := NewList(800, 600, [2]float32{0, 0})
	l.AddRectFilled(Rect{0, 0, 10, 10}, opaque)
	l.PushClipRect(Rect{100, 100, 900, 200})
	l.AddRectFilled(Rect{100, 100, 110, 110}, opaque)
	l.PopClipRect()
	l.PopClipRect()
	l.AddRectFilled(Rect{0, 0, 10, 10}, opaque)
	f := l.Frame()

	require.Equal(t, 3, f.CommandCount())
	cmds := f.Batches[0].Commands
	assert.Equal(t, Rect{100, 100, 800, 200}, cmds[1].ClipRect, "clip is intersected with the parent")
	assert.Equal(t, cmds[0].ClipRect, cmds[2].ClipRect)
}

func TestListEmptyClipCommandReused(t *testing.T) {
	l := NewList(100, 100, [2]float32{0, 0})
	l.PushClipRect(Rect{0, 0, 50, 50})
	l.AddRectFilled(Rect{0, 0, 0, 10}, opaque)
	l.PopClipRect()
	l.AddRectFilled(Rect{0, 0, 10, 10}, 0)
	assert.Empty(t, l.Frame().Batches)
}

func TestListSplitsBatchesAtIndexLimit(t *testing.T) {
	l := NewList(800, 600, [2]float32{0, 0})
	quads := MaxVertices/4 + 10
	for i := 0; i < quads; i++ {
		l.AddRectFilled(Rect{0, 0, 1, 1}, opaque)
	}
	f := l.Frame()

	require.Len(t, f.Batches, 2)
	for _, b := range f.Batches {
		assert.LessOrEqual(t, len(b.Vertices), MaxVertices)
		for _, idx := range b.Indices {
			assert.Less(t, int(idx), len(b.Vertices))
		}
	}
	assert.Equal(t, quads*6, f.ElementCount())
	assert.Equal(t, 2, f.CommandCount())
}

func TestRectIntersectDisjoint(t *testing.T) {
	r := Rect{0, 0, 10, 10}.Intersect(Rect{20, 20, 30, 30})
	assert.Equal(t, float32(0), r.Width())
	assert.Equal(t, float32(0), r.Height())
	assert.True(t, Rect{0, 0, 10, 10}.Contains(0, 9.5))
	assert.False(t, Rect{0, 0, 10, 10}.Contains(10, 5))
}
