package theme

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// Palette is the single color scheme both front ends draw with. Colors are
// hex strings; alpha is kept separately because lipgloss has no use for it.
type Palette struct {
	Backdrop      string
	Window        string
	WindowAlpha   float64
	Border        string
	Text          string
	Label         string
	Frame         string
	FrameAlpha    float64
	Button        string
	ButtonHovered string
	ButtonActive  string
	Header        string
	HeaderHovered string
	Cursor        string
}

var defaultPalette = Palette{
	Backdrop:      "#000000",
	Window:        "#0f0f0f",
	WindowAlpha:   0.94,
	Border:        "#6e6e80",
	Text:          "#ffffff",
	Label:         "#808080",
	Frame:         "#294a7a",
	FrameAlpha:    0.54,
	Button:        "#2d5f91",
	ButtonHovered: "#4296fa",
	ButtonActive:  "#0f87fa",
	Header:        "#2b5789",
	HeaderHovered: "#3a7bd5",
	Cursor:        "#ffffff",
}

// DefaultPalette exposes the standard palette.
func DefaultPalette() Palette {
	return defaultPalette
}

// Pack converts a hex color and alpha into a vertex color: red in the low
// byte, alpha in the high byte. Unparseable colors pack to opaque magenta.
func Pack(hex string, alpha float64) uint32 {
	c, err := colorful.Hex(hex)
	if err != nil {
		c = colorful.Color{R: 1, B: 1}
	}
	r, g, b := c.Clamped().RGB255()
	if alpha < 0 {
		alpha = 0
	}
	if alpha > 1 {
		alpha = 1
	}
	a := uint32(alpha*255 + 0.5)
	return uint32(r) | uint32(g)<<8 | uint32(b)<<16 | a<<24
}

// Blend mixes two hex colors in Lab space; t=0 yields a, t=1 yields b.
func Blend(a, b string, t float64) string {
	ca, err := colorful.Hex(a)
	if err != nil {
		return b
	}
	cb, err := colorful.Hex(b)
	if err != nil {
		return a
	}
	return ca.BlendLab(cb, t).Clamped().Hex()
}

// Colors is the palette packed for vertex submission.
type Colors struct {
	Backdrop      [4]float32
	Window        uint32
	Border        uint32
	Text          uint32
	Label         uint32
	Frame         uint32
	Button        uint32
	ButtonHovered uint32
	ButtonActive  uint32
	Header        uint32
	HeaderHovered uint32
	Cursor        uint32
}

// Packed converts p for the graphical front end.
func (p Palette) Packed() Colors {
	bg, err := colorful.Hex(p.Backdrop)
	if err != nil {
		bg = colorful.Color{}
	}
	return Colors{
		Backdrop:      [4]float32{float32(bg.R), float32(bg.G), float32(bg.B), 1},
		Window:        Pack(p.Window, p.WindowAlpha),
		Border:        Pack(p.Border, 0.5),
		Text:          Pack(p.Text, 1),
		Label:         Pack(p.Label, 1),
		Frame:         Pack(p.Frame, p.FrameAlpha),
		Button:        Pack(p.Button, 1),
		ButtonHovered: Pack(p.ButtonHovered, 1),
		ButtonActive:  Pack(p.ButtonActive, 1),
		Header:        Pack(p.Header, 1),
		HeaderHovered: Pack(p.HeaderHovered, 1),
		Cursor:        Pack(p.Cursor, 1),
	}
}

// Styles describes reusable Lip Gloss styles for the terminal front end.
type Styles struct {
	Window        *lipgloss.Style
	Prompt        *lipgloss.Style
	Path          *lipgloss.Style
	Item          *lipgloss.Style
	SelectedItem  *lipgloss.Style
	Label         *lipgloss.Style
	Input         *lipgloss.Style
	Cursor        *lipgloss.Style
	Button        *lipgloss.Style
	FocusedButton *lipgloss.Style
	Filter        *lipgloss.Style
	FilterPrompt  *lipgloss.Style
	Help          *lipgloss.Style
}

// NewStyles derives the terminal styles from p.
func NewStyles(p Palette) Styles {
	return Styles{
		Window: ptr(
			lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color(p.Border)).Padding(0, 1),
		),
		Prompt: ptr(
			lipgloss.NewStyle().Foreground(lipgloss.Color(p.Text)).Bold(true),
		),
		Path: ptr(
			lipgloss.NewStyle().Foreground(lipgloss.Color(p.Label)),
		),
		Item: ptr(
			lipgloss.NewStyle().Foreground(lipgloss.Color(Blend(p.Text, p.Label, 0.3))),
		),
		SelectedItem: ptr(
			lipgloss.NewStyle().Foreground(lipgloss.Color(p.Text)).Background(lipgloss.Color(p.Header)).Bold(true),
		),
		Label: ptr(
			lipgloss.NewStyle().Foreground(lipgloss.Color(p.Label)),
		),
		Input: ptr(
			lipgloss.NewStyle().Foreground(lipgloss.Color(p.Text)).Background(lipgloss.Color(p.Frame)),
		),
		Cursor: ptr(
			lipgloss.NewStyle().Foreground(lipgloss.Color(p.Backdrop)).Background(lipgloss.Color(p.Cursor)),
		),
		Button: ptr(
			lipgloss.NewStyle().Foreground(lipgloss.Color(p.Text)).Background(lipgloss.Color(p.Button)).Padding(0, 2),
		),
		FocusedButton: ptr(
			lipgloss.NewStyle().Foreground(lipgloss.Color(p.Text)).Background(lipgloss.Color(p.ButtonHovered)).Bold(true).Padding(0, 2),
		),
		Filter: ptr(
			lipgloss.NewStyle().Foreground(lipgloss.Color(p.Text)),
		),
		FilterPrompt: ptr(
			lipgloss.NewStyle().Foreground(lipgloss.Color(p.ButtonHovered)).Bold(true),
		),
		Help: ptr(
			lipgloss.NewStyle().Foreground(lipgloss.Color(p.Label)),
		),
	}
}

var defaultStyles = NewStyles(defaultPalette)

// Default exposes the standard style set used across the application.
func Default() *Styles {
	return &defaultStyles
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}
