package app

import (
	"fmt"

	"github.com/atomicstack/imdialog/internal/dialog"
	"github.com/atomicstack/imdialog/internal/input"
	"github.com/atomicstack/imdialog/internal/logging"
	"github.com/atomicstack/imdialog/internal/logging/events"
	"github.com/atomicstack/imdialog/internal/platform"
	"github.com/atomicstack/imdialog/internal/render"
	"github.com/atomicstack/imdialog/internal/render/glrender"
	"github.com/atomicstack/imdialog/internal/resources"
	"github.com/atomicstack/imdialog/internal/theme"
	"github.com/atomicstack/imdialog/internal/tui"
	"github.com/atomicstack/imdialog/internal/ui"
	"github.com/atomicstack/imdialog/internal/ui/draw"
	"github.com/atomicstack/imdialog/internal/ui/font"
)

// Font sizes are fractions of the framebuffer height.
const (
	standardFontDivisor = 16.66666
	labelFontDivisor    = 25
)

// Run builds the requested dialog and presents it until it is decided. The
// console keyboard is restored on every return path.
func Run(cfg Config) (out Outcome, err error) {
	defer func() {
		if rerr := platform.ResetConsoleKeyboard(); rerr != nil {
			logging.Error(fmt.Errorf("reset console keyboard: %w", rerr))
		}
		if err == nil {
			events.App.Exit(out.Code(), out.Quit, out.Iterations)
		}
	}()

	d, err := cfg.NewDialog()
	if err != nil {
		return Outcome{}, err
	}

	events.App.Frontend(cfg.Frontend)
	if cfg.Frontend == FrontendTUI {
		return runTUI(d)
	}
	return runGL(cfg, d)
}

func runTUI(d *dialog.Dialog) (Outcome, error) {
	res, err := tui.Run(d)
	if err != nil {
		return Outcome{}, fmt.Errorf("terminal dialog: %w", err)
	}
	return Outcome{Resolution: res.Resolution, Quit: res.Quit, Iterations: res.Updates}, nil
}

func runGL(cfg Config, d *dialog.Dialog) (Outcome, error) {
	files, err := resources.LocateAll(cfg.DataDir)
	if err != nil {
		return Outcome{}, err
	}
	vs, err := resources.Read(files.VertexShader)
	if err != nil {
		return Outcome{}, err
	}
	fs, err := resources.Read(files.FragmentShader)
	if err != nil {
		return Outcome{}, err
	}

	fbW, fbH := int32(cfg.FramebufferWidth), int32(cfg.FramebufferHeight)
	win, err := platform.Open(fbW, fbH)
	if err != nil {
		return Outcome{}, err
	}
	defer win.Close()

	h := float64(fbH)
	atlas, err := font.Load(files.Font, h/standardFontDivisor, h/labelFontDivisor)
	if err != nil {
		return Outcome{}, err
	}
	pix, aw, ah := atlas.RGBA()
	colors := theme.DefaultPalette().Packed()
	dev, err := glrender.New(glrender.Options{
		VertexShader:   string(vs),
		FragmentShader: string(fs),
		AtlasPixels:    pix,
		AtlasWidth:     int32(aw),
		AtlasHeight:    int32(ah),
		ClearColor:     colors.Backdrop,
	})
	if err != nil {
		return Outcome{}, err
	}
	defer dev.Close()

	ctx := ui.NewContext(atlas, colors, ui.WithClipboard(platform.Clipboard{}))
	loop := &Loop{
		Dialog: d,
		Input:  input.NewAggregator(platform.Events{}),
		UI:     ui.NewSession(ctx, float32(fbW), float32(fbH)),
		Out:    &windowPresenter{bridge: render.NewBridge(dev, fbW, fbH), win: win},
	}
	return loop.Run(), nil
}

type windowPresenter struct {
	bridge *render.Bridge
	win    *platform.Window
}

func (p *windowPresenter) Present(frame *draw.Frame) { p.bridge.Render(frame) }

func (p *windowPresenter) Swap() { p.win.Swap() }
