package glrender

import (
	"testing"

	"github.com/atomicstack/imdialog/internal/render"
	"github.com/go-gl/gl/v2.1/gl"
)

var _ render.Device = (*Device)(nil)

func TestGLTypeMapping(t *testing.T) {
	if got := glType(render.Float32); got != gl.FLOAT {
		t.Fatalf("expected GL_FLOAT, got %#x", got)
	}
	if got := glType(render.Uint8); got != gl.UNSIGNED_BYTE {
		t.Fatalf("expected GL_UNSIGNED_BYTE, got %#x", got)
	}
}
