package events

import "github.com/atomicstack/imdialog/internal/logging"

type AppTracer struct{}

var App = AppTracer{}

func (AppTracer) Start(payload map[string]interface{}) {
	logging.Trace("app.start", payload)
}

func (AppTracer) Exit(code int, quit bool, iterations int) {
	logging.Trace("app.exit", map[string]interface{}{"code": code, "quit": quit, "iterations": iterations})
}

func (AppTracer) Frontend(name string) {
	logging.Trace("app.frontend", map[string]interface{}{"frontend": name})
}
