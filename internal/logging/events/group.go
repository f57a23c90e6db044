package events

import "github.com/inkbench/preset-groups/internal/logging"

type GroupTracer struct{}

type groupReason string

const (
	GroupReasonEscape groupReason = "escape"
	GroupReasonEmpty  groupReason = "empty"
)

var Group = GroupTracer{}

func (GroupTracer) Create(id, name string) {
	logging.Trace("group.create", map[string]interface{}{"id": id, "name": name})
}

func (GroupTracer) RenamePrompt(id string) {
	logging.Trace("group.rename.prompt", map[string]interface{}{"id": id})
}

func (GroupTracer) Rename(id, name string) {
	logging.Trace("group.rename", map[string]interface{}{"id": id, "name": name})
}

func (GroupTracer) CancelRename(id string, reason groupReason) {
	logging.Trace("group.rename.cancel", map[string]interface{}{"id": id, "reason": string(reason)})
}

func (GroupTracer) Delete(id string, released int) {
	logging.Trace("group.delete", map[string]interface{}{"id": id, "released": released})
}

func (GroupTracer) Activate(id string) {
	logging.Trace("group.activate", map[string]interface{}{"id": id})
}

func (GroupTracer) Collapse(id string, collapsed bool) {
	logging.Trace("group.collapse", map[string]interface{}{"id": id, "collapsed": collapsed})
}

func (GroupTracer) AddItems(id string, count int) {
	logging.Trace("group.items.add", map[string]interface{}{"id": id, "count": count})
}

func (GroupTracer) RemoveItems(count int) {
	logging.Trace("group.items.remove", map[string]interface{}{"count": count})
}
