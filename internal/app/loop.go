package app

import (
	"github.com/atomicstack/imdialog/internal/dialog"
	"github.com/atomicstack/imdialog/internal/input"
	"github.com/atomicstack/imdialog/internal/ui/draw"
)

// Framer runs one UI pass over the dialog.
type Framer interface {
	Frame(d *dialog.Dialog, snap input.Snapshot) (dialog.Resolution, *draw.Frame)
}

// Presenter puts frames on screen.
type Presenter interface {
	Present(frame *draw.Frame)
	Swap()
}

// Outcome is how a loop ended.
type Outcome struct {
	Resolution dialog.Resolution
	Quit       bool
	Iterations int
}

// Code is the process exit code for the outcome.
func (o Outcome) Code() int {
	if o.Quit || !o.Resolution.Resolved {
		return dialog.CodeCancel
	}
	return o.Resolution.Code
}

// Loop drives one dialog until it resolves or the window is closed. Each
// iteration renders, applies exactly one queued event, samples the pointer
// and renders again.
type Loop struct {
	Dialog *dialog.Dialog
	Input  *input.Aggregator
	UI     Framer
	Out    Presenter
}

// Run blocks until the dialog is decided.
func (l *Loop) Run() Outcome {
	var out Outcome
	for {
		out.Iterations++

		if res := l.pass(); res.Resolved {
			out.Resolution = res
			return out
		}

		if applied := l.Input.Step(); applied.Quit {
			out.Quit = true
			return out
		}
		l.Input.SamplePointer()

		if res := l.pass(); res.Resolved {
			out.Resolution = res
			return out
		}
		l.Out.Swap()
	}
}

func (l *Loop) pass() dialog.Resolution {
	res, frame := l.UI.Frame(l.Dialog, l.Input.Snapshot())
	l.Out.Present(frame)
	return res
}
