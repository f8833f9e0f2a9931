package events

import "github.com/atomicstack/imdialog/internal/logging"

type DialogTracer struct{}

type ListingTracer struct{}

var (
	Dialog  = DialogTracer{}
	Listing = ListingTracer{}
)

func (DialogTracer) Navigate(from, to string, entries int) {
	logging.Trace("dialog.navigate", map[string]interface{}{"from": from, "to": to, "entries": entries})
}

func (DialogTracer) Cursor(kind string, cursor int) {
	logging.Trace("dialog.cursor", map[string]interface{}{"kind": kind, "cursor": cursor})
}

func (DialogTracer) Filter(query string, visible int) {
	logging.Trace("dialog.filter", map[string]interface{}{"filter": query, "visible": visible})
}

func (DialogTracer) Resolve(kind string, code int, output string) {
	logging.Trace("dialog.resolve", map[string]interface{}{"kind": kind, "code": code, "output": output})
}

func (ListingTracer) Built(path string, entries, skipped int) {
	logging.Trace("listing.built", map[string]interface{}{"path": path, "entries": entries, "skipped": skipped})
}

func (ListingTracer) Failed(path string, err error) {
	if err == nil {
		return
	}
	logging.Trace("listing.failed", map[string]interface{}{"path": path, "error": err.Error()})
}
