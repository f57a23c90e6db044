package events

import "github.com/inkbench/preset-groups/internal/logging"

type DetectorTracer struct{}

var Detector = DetectorTracer{}

func (DetectorTracer) Baseline(id string) {
	logging.Trace("detector.baseline", map[string]interface{}{"id": id})
}

func (DetectorTracer) Changed(id string) {
	logging.Trace("detector.changed", map[string]interface{}{"id": id})
}

func (DetectorTracer) Missing(id string) {
	logging.Trace("detector.missing", map[string]interface{}{"id": id})
}

func (DetectorTracer) Catalog(total, renamed, removed int) {
	logging.Trace("detector.catalog", map[string]interface{}{
		"total":   total,
		"renamed": renamed,
		"removed": removed,
	})
}

func (DetectorTracer) HostDown(err error) {
	payload := map[string]interface{}{}
	if err != nil {
		payload["error"] = err.Error()
	}
	logging.Trace("detector.host-down", payload)
}

func (DetectorTracer) Suspend() {
	logging.Trace("detector.suspend", nil)
}

func (DetectorTracer) Resume() {
	logging.Trace("detector.resume", nil)
}
