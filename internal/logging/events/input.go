package events

import "github.com/atomicstack/imdialog/internal/logging"

type InputTracer struct{}

var Input = InputTracer{}

func (InputTracer) Event(kind, detail string, queued int) {
	logging.Trace("input.event", map[string]interface{}{"kind": kind, "detail": detail, "queued": queued})
}

func (InputTracer) Dropped(reason string) {
	logging.Trace("input.dropped", map[string]interface{}{"reason": reason})
}
