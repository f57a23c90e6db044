package events

import "github.com/inkbench/preset-groups/internal/logging"

type UITracer struct{}

type SelectionTracer struct{}

type ActionTracer struct{}

type PickerTracer struct{}

var (
	UI        = UITracer{}
	Selection = SelectionTracer{}
	Action    = ActionTracer{}
	Picker    = PickerTracer{}
)

func (UITracer) Cursor(id string) {
	logging.Trace("ui.cursor", map[string]interface{}{"id": id})
}

func (UITracer) Cycle(direction string, id string) {
	logging.Trace("ui.cycle", map[string]interface{}{"direction": direction, "id": id})
}

func (UITracer) Resize(width, height int) {
	logging.Trace("ui.resize", map[string]interface{}{"width": width, "height": height})
}

func (SelectionTracer) Click(id, scope, modifier string, count int) {
	logging.Trace("selection.click", map[string]interface{}{
		"id":       id,
		"scope":    scope,
		"modifier": modifier,
		"count":    count,
	})
}

func (SelectionTracer) Cleared() {
	logging.Trace("selection.clear", nil)
}

func (ActionTracer) Error(err error) {
	if err == nil {
		return
	}
	logging.Trace("action.error", map[string]interface{}{"error": err.Error()})
}

func (ActionTracer) Success(info string) {
	logging.Trace("action.success", map[string]interface{}{"info": info})
}

func (PickerTracer) Open(candidates int) {
	logging.Trace("picker.open", map[string]interface{}{"candidates": candidates})
}

func (PickerTracer) Filter(query string, matches int) {
	logging.Trace("picker.filter", map[string]interface{}{"query": query, "matches": matches})
}

func (PickerTracer) Commit(count int) {
	logging.Trace("picker.commit", map[string]interface{}{"count": count})
}

func (PickerTracer) Cancel() {
	logging.Trace("picker.cancel", nil)
}
