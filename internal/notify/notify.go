package notify

// Kind identifies the type of model change carried by an Event.
type Kind int

const (
	ItemsAdded Kind = iota
	ItemsRemoved
	ItemsMoved
	GroupAdded
	GroupsMoved
	GroupRenamed
	GroupDeleted
	CollapseChanged
	ActiveChanged
	SelectionChanged
	ItemDirty
)

func (k Kind) String() string {
	switch k {
	case ItemsAdded:
		return "items.added"
	case ItemsRemoved:
		return "items.removed"
	case ItemsMoved:
		return "items.moved"
	case GroupAdded:
		return "group.added"
	case GroupsMoved:
		return "groups.moved"
	case GroupRenamed:
		return "group.renamed"
	case GroupDeleted:
		return "group.deleted"
	case CollapseChanged:
		return "collapse.changed"
	case ActiveChanged:
		return "active.changed"
	case SelectionChanged:
		return "selection.changed"
	case ItemDirty:
		return "item.dirty"
	}
	return "unknown"
}

// Event describes a single applied model mutation. Events are published
// strictly after the mutation has been fully applied, so subscribers never
// observe partial state.
type Event struct {
	Kind    Kind
	GroupID string
	ItemIDs []string
}

// Hub fans events out to subscribers. All publishing happens on the UI's
// single logical thread; the hub performs no locking of its own.
type Hub struct {
	subs []func(Event)
}

func NewHub() *Hub {
	return &Hub{}
}

// Subscribe registers a callback for every future event.
func (h *Hub) Subscribe(fn func(Event)) {
	if fn == nil {
		return
	}
	h.subs = append(h.subs, fn)
}

// Publish delivers the event to all subscribers in registration order.
func (h *Hub) Publish(evt Event) {
	for _, fn := range h.subs {
		fn(evt)
	}
}
