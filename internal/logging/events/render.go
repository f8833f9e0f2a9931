package events

import "github.com/atomicstack/imdialog/internal/logging"

type RenderTracer struct{}

type ResourceTracer struct{}

var (
	Render   = RenderTracer{}
	Resource = ResourceTracer{}
)

func (RenderTracer) Frame(batches, drawCalls, elements int) {
	logging.Trace("render.frame", map[string]interface{}{"batches": batches, "draws": drawCalls, "elements": elements})
}

func (RenderTracer) Init(vendor, version string) {
	logging.Trace("render.init", map[string]interface{}{"vendor": vendor, "version": version})
}

func (ResourceTracer) Found(name, path string) {
	logging.Trace("resource.found", map[string]interface{}{"name": name, "path": path})
}

func (ResourceTracer) Missing(name string, searched []string) {
	logging.Trace("resource.missing", map[string]interface{}{"name": name, "searched": searched})
}
