// Package glrender implements render.Device on OpenGL 2.1. Every call must
// come from the thread that owns the current GL context.
package glrender

import (
	"errors"
	"fmt"
	"strings"

	"github.com/atomicstack/imdialog/internal/logging/events"
	"github.com/atomicstack/imdialog/internal/render"
	"github.com/go-gl/gl/v2.1/gl"
)

var errLocation = errors.New("shader location not found")

// Device owns the program, the shared vertex buffer and the font texture.
type Device struct {
	program  uint32
	vbo      uint32
	texture  uint32
	clear    [4]float32
	uWindow  int32
	uTexture int32
}

// Options carries everything the device needs at creation.
type Options struct {
	VertexShader   string
	FragmentShader string
	AtlasPixels    []byte
	AtlasWidth     int32
	AtlasHeight    int32
	ClearColor     [4]float32
}

// New loads GL entry points, builds the shader program, uploads the atlas
// and binds the vertex layout.
func New(opts Options) (*Device, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("gl init: %w", err)
	}
	events.Render.Init(gl.GoStr(gl.GetString(gl.VENDOR)), gl.GoStr(gl.GetString(gl.VERSION)))

	program, err := link(opts.VertexShader, opts.FragmentShader)
	if err != nil {
		return nil, err
	}
	d := &Device{program: program, clear: opts.ClearColor}
	if d.uWindow, err = uniform(program, "uWindowSize"); err != nil {
		return nil, err
	}
	if d.uTexture, err = uniform(program, "uTexture"); err != nil {
		return nil, err
	}

	gl.GenBuffers(1, &d.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, d.vbo)
	for _, a := range render.Layout.Attribs() {
		loc := gl.GetAttribLocation(program, gl.Str(a.Name+"\x00"))
		if loc < 0 {
			return nil, fmt.Errorf("attribute %s: %w", a.Name, errLocation)
		}
		gl.EnableVertexAttribArray(uint32(loc))
		gl.VertexAttribPointer(uint32(loc), a.Components, glType(a.Type), a.Normalized, render.Layout.Stride, gl.PtrOffset(int(a.Offset)))
	}

	gl.GenTextures(1, &d.texture)
	gl.BindTexture(gl.TEXTURE_2D, d.texture)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	if len(opts.AtlasPixels) > 0 {
		gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, opts.AtlasWidth, opts.AtlasHeight, 0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(opts.AtlasPixels))
	}
	return d, nil
}

func (d *Device) Begin(fbWidth, fbHeight int32) {
	gl.Viewport(0, 0, fbWidth, fbHeight)
	gl.Disable(gl.SCISSOR_TEST)
	gl.ClearColor(d.clear[0], d.clear[1], d.clear[2], d.clear[3])
	gl.Clear(gl.COLOR_BUFFER_BIT)

	gl.UseProgram(d.program)
	gl.Enable(gl.BLEND)
	gl.Enable(gl.SCISSOR_TEST)
	gl.Disable(gl.DEPTH_TEST)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, d.texture)
	gl.Uniform2f(d.uWindow, float32(fbWidth), float32(fbHeight))
	gl.Uniform1i(d.uTexture, 0)
	gl.BindBuffer(gl.ARRAY_BUFFER, d.vbo)
}

func (d *Device) UploadVertices(data []byte) {
	if len(data) == 0 {
		return
	}
	gl.BufferData(gl.ARRAY_BUFFER, len(data), gl.Ptr(data), gl.STREAM_DRAW)
}

func (d *Device) Scissor(x, y, width, height int32) {
	gl.Scissor(x, y, width, height)
}

func (d *Device) DrawIndexed(count int32, width render.IndexWidth, indices []byte) {
	if count == 0 || len(indices) == 0 {
		return
	}
	kind := uint32(gl.UNSIGNED_SHORT)
	if width == render.Index32 {
		kind = gl.UNSIGNED_INT
	}
	gl.DrawElements(gl.TRIANGLES, count, kind, gl.Ptr(indices))
}

// Close releases the GL objects.
func (d *Device) Close() {
	gl.DeleteTextures(1, &d.texture)
	gl.DeleteBuffers(1, &d.vbo)
	gl.DeleteProgram(d.program)
}

func glType(t render.AttribType) uint32 {
	if t == render.Uint8 {
		return gl.UNSIGNED_BYTE
	}
	return gl.FLOAT
}

func uniform(program uint32, name string) (int32, error) {
	loc := gl.GetUniformLocation(program, gl.Str(name+"\x00"))
	if loc < 0 {
		return 0, fmt.Errorf("uniform %s: %w", name, errLocation)
	}
	return loc, nil
}

func link(vertexSrc, fragmentSrc string) (uint32, error) {
	vs, err := compile(vertexSrc, gl.VERTEX_SHADER)
	if err != nil {
		return 0, fmt.Errorf("vertex shader: %w", err)
	}
	defer gl.DeleteShader(vs)
	fs, err := compile(fragmentSrc, gl.FRAGMENT_SHADER)
	if err != nil {
		return 0, fmt.Errorf("fragment shader: %w", err)
	}
	defer gl.DeleteShader(fs)

	program := gl.CreateProgram()
	gl.AttachShader(program, vs)
	gl.AttachShader(program, fs)
	gl.LinkProgram(program)
	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var n int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &n)
		msg := strings.Repeat("\x00", int(n+1))
		gl.GetProgramInfoLog(program, n, nil, gl.Str(msg))
		gl.DeleteProgram(program)
		return 0, fmt.Errorf("link program: %s", strings.TrimRight(msg, "\x00"))
	}
	return program, nil
}

func compile(src string, kind uint32) (uint32, error) {
	shader := gl.CreateShader(kind)
	csrc, free := gl.Strs(src + "\x00")
	gl.ShaderSource(shader, 1, csrc, nil)
	free()
	gl.CompileShader(shader)
	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var n int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &n)
		msg := strings.Repeat("\x00", int(n+1))
		gl.GetShaderInfoLog(shader, n, nil, gl.Str(msg))
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("compile: %s", strings.TrimRight(msg, "\x00"))
	}
	return shader, nil
}
