package events

import "github.com/inkbench/preset-groups/internal/logging"

type DragTracer struct{}

var Drag = DragTracer{}

func (DragTracer) Press(id, scope string) {
	logging.Trace("drag.press", map[string]interface{}{"id": id, "scope": scope})
}

func (DragTracer) Start(id string) {
	logging.Trace("drag.start", map[string]interface{}{"id": id})
}

func (DragTracer) Drop(scope, group string, index, count int) {
	logging.Trace("drag.drop", map[string]interface{}{
		"scope": scope,
		"group": group,
		"index": index,
		"count": count,
	})
}

func (DragTracer) Cancel(id string) {
	logging.Trace("drag.cancel", map[string]interface{}{"id": id})
}

func (DragTracer) Rejected(err error) {
	if err == nil {
		return
	}
	logging.Trace("drag.rejected", map[string]interface{}{"error": err.Error()})
}
