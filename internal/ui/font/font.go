// Package font rasterizes one or more faces into a single coverage atlas and
// answers the glyph metrics the UI lays text out with.
package font

import (
	"errors"
	"fmt"
	"image"
	"os"

	"github.com/atomicstack/imdialog/internal/ui/draw"
	xdraw "golang.org/x/image/draw"
	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

const (
	atlasWidth = 512
	padding    = 1
	fallback   = '?'
)

var errNoGlyphs = errors.New("face has no printable glyphs")

// Glyph places one rune relative to the top-left of its line.
type Glyph struct {
	Bounds  draw.Rect
	UV      draw.Rect
	Advance float32
}

// Font is one rasterized face.
type Font struct {
	Size       float32
	Ascent     float32
	Descent    float32
	LineHeight float32

	glyphs   map[rune]Glyph
	fallback Glyph
}

// Glyph returns the glyph for r, or the fallback glyph when the face lacks it.
func (f *Font) Glyph(r rune) Glyph {
	if g, ok := f.glyphs[r]; ok {
		return g
	}
	return f.fallback
}

// Measure returns the advance width of s.
func (f *Font) Measure(s string) float32 {
	var w float32
	for _, r := range s {
		w += f.Glyph(r).Advance
	}
	return w
}

// Atlas holds every rasterized face in one alpha image.
type Atlas struct {
	Image *image.Alpha
	White [2]float32
	Fonts []*Font
}

// RGBA expands the atlas to non-premultiplied white pixels carrying the
// coverage in alpha, ready for texture upload.
func (a *Atlas) RGBA() (pix []byte, width, height int) {
	b := a.Image.Bounds()
	width, height = b.Dx(), b.Dy()
	pix = make([]byte, width*height*4)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			i := (y*width + x) * 4
			pix[i], pix[i+1], pix[i+2] = 0xff, 0xff, 0xff
			pix[i+3] = a.Image.Pix[y*a.Image.Stride+x]
		}
	}
	return pix, width, height
}

// Load parses a TrueType/OpenType file and rasterizes it at each size.
func Load(path string, sizes ...float64) (*Atlas, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read font: %w", err)
	}
	return Parse(data, sizes...)
}

// Parse is Load for font data already in memory.
func Parse(data []byte, sizes ...float64) (*Atlas, error) {
	otf, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	faces := make([]xfont.Face, 0, len(sizes))
	for _, size := range sizes {
		face, err := opentype.NewFace(otf, &opentype.FaceOptions{Size: size, DPI: 72, Hinting: xfont.HintingFull})
		if err != nil {
			return nil, fmt.Errorf("font face %.1fpx: %w", size, err)
		}
		defer face.Close()
		faces = append(faces, face)
	}
	return Build(faces...)
}

type pending struct {
	font *Font
	r    rune
	tile *image.Alpha
	dr   image.Rectangle
	adv  fixed.Int26_6
}

// Build rasterizes printable ASCII and Latin-1 from each face.
func Build(faces ...xfont.Face) (*Atlas, error) {
	atlas := &Atlas{}
	var glyphs []pending
	for _, face := range faces {
		m := face.Metrics()
		f := &Font{
			Size:       float32(m.Height) / 64,
			Ascent:     float32(m.Ascent.Ceil()),
			Descent:    float32(m.Descent.Ceil()),
			LineHeight: float32(m.Height.Ceil()),
			glyphs:     make(map[rune]Glyph),
		}
		if f.LineHeight < f.Ascent+f.Descent {
			f.LineHeight = f.Ascent + f.Descent
		}
		count := 0
		for _, r := range charset() {
			dr, mask, maskp, adv, ok := face.Glyph(fixed.Point26_6{}, r)
			if !ok {
				continue
			}
			// faces may reuse the mask buffer between calls
			tile := image.NewAlpha(image.Rect(0, 0, dr.Dx(), dr.Dy()))
			if mask != nil {
				xdraw.DrawMask(tile, tile.Bounds(), image.Opaque, image.Point{}, mask, maskp, xdraw.Src)
			}
			glyphs = append(glyphs, pending{font: f, r: r, tile: tile, dr: dr, adv: adv})
			count++
		}
		if count == 0 {
			return nil, errNoGlyphs
		}
		atlas.Fonts = append(atlas.Fonts, f)
	}

	// The first 2x2 block is solid for untextured fills.
	x, y, shelf := 2+padding, 0, 2
	type slot struct{ x, y int }
	slots := make([]slot, len(glyphs))
	for i, g := range glyphs {
		w, h := g.dr.Dx(), g.dr.Dy()
		if x+w > atlasWidth {
			x, y = 0, y+shelf+padding
			shelf = 0
		}
		slots[i] = slot{x, y}
		x += w + padding
		if h > shelf {
			shelf = h
		}
	}
	height := nextPow2(y + shelf)

	img := image.NewAlpha(image.Rect(0, 0, atlasWidth, height))
	for yy := 0; yy < 2; yy++ {
		for xx := 0; xx < 2; xx++ {
			img.Pix[yy*img.Stride+xx] = 0xff
		}
	}
	atlas.White = [2]float32{1 / float32(atlasWidth), 1 / float32(height)}

	fw, fh := float32(atlasWidth), float32(height)
	for i, g := range glyphs {
		s := slots[i]
		w, h := g.dr.Dx(), g.dr.Dy()
		dst := image.Rect(s.x, s.y, s.x+w, s.y+h)
		if w > 0 && h > 0 {
			xdraw.Draw(img, dst, g.tile, image.Point{}, xdraw.Src)
		}
		g.font.glyphs[g.r] = Glyph{
			Bounds: draw.Rect{
				MinX: float32(g.dr.Min.X),
				MinY: float32(g.dr.Min.Y) + g.font.Ascent,
				MaxX: float32(g.dr.Max.X),
				MaxY: float32(g.dr.Max.Y) + g.font.Ascent,
			},
			UV: draw.Rect{
				MinX: float32(dst.Min.X) / fw,
				MinY: float32(dst.Min.Y) / fh,
				MaxX: float32(dst.Max.X) / fw,
				MaxY: float32(dst.Max.Y) / fh,
			},
			Advance: float32(g.adv) / 64,
		}
	}
	for _, f := range atlas.Fonts {
		f.fallback = f.glyphs[fallback]
	}
	atlas.Image = img
	return atlas, nil
}

func charset() []rune {
	out := make([]rune, 0, 0x7f-0x20+0x100-0xa0)
	for r := rune(0x20); r < 0x7f; r++ {
		out = append(out, r)
	}
	for r := rune(0xa0); r < 0x100; r++ {
		out = append(out, r)
	}
	return out
}

func nextPow2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}
