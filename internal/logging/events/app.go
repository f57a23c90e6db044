package events

import "github.com/inkbench/preset-groups/internal/logging"

type AppTracer struct{}

var App = AppTracer{}

func (AppTracer) Start(payload map[string]interface{}) {
	logging.Trace("app.start", payload)
}

func (AppTracer) Restore(groups, items int) {
	logging.Trace("app.restore", map[string]interface{}{"groups": groups, "items": items})
}

func (AppTracer) Flush(err error) {
	payload := map[string]interface{}{}
	if err != nil {
		payload["error"] = err.Error()
	}
	logging.Trace("app.flush", payload)
}
