package ui

import (
	"reflect"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/inkbench/preset-groups/internal/data/dispatcher"
	"github.com/inkbench/preset-groups/internal/detector"
	"github.com/inkbench/preset-groups/internal/drag"
	"github.com/inkbench/preset-groups/internal/host"
	"github.com/inkbench/preset-groups/internal/layout"
	"github.com/inkbench/preset-groups/internal/notify"
	"github.com/inkbench/preset-groups/internal/registry"
	"github.com/inkbench/preset-groups/internal/selection"
	"github.com/inkbench/preset-groups/internal/store"
	"github.com/inkbench/preset-groups/internal/theme"
)

type Mode int

const (
	ModeBrowse Mode = iota
	ModePrompt
	ModePicker
)

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// Deps bundles the stores and engines the UI renders and drives.
type Deps struct {
	Layout     *layout.Model
	Registry   *registry.Registry
	Selection  *selection.Model
	Drag       *drag.Engine
	Hub        *notify.Hub
	Collection host.Collection
	Watcher    *detector.Watcher
	Dispatcher *dispatcher.Dispatcher
	Store      *store.Store
}

// Options carries user-facing presentation settings.
type Options struct {
	Width      int
	Height     int
	ShowFooter bool
	Verbose    bool
	WrapCycle  bool
}

// Model implements the Bubble Tea model for the preset organizer.
type Model struct {
	layout     *layout.Model
	registry   *registry.Registry
	selection  *selection.Model
	drag       *drag.Engine
	hub        *notify.Hub
	collection host.Collection
	sizer      host.BrushSizer
	watcher    *detector.Watcher
	dispatcher *dispatcher.Dispatcher
	store      *store.Store

	mode   Mode
	prompt *promptState
	picker *pickerState

	cursor int // index into the visible row list
	scroll int

	errMsg     string
	infoMsg    string
	infoExpire time.Time
	hostDown   bool

	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	showFooter  bool
	verbose     bool
	wrapCycle   bool

	saveNeeded bool

	handlers map[reflect.Type]msgHandler
}

// NewModel initialises the UI over the shared stores.
func NewModel(deps Deps, opts Options) *Model {
	m := &Model{
		layout:     deps.Layout,
		registry:   deps.Registry,
		selection:  deps.Selection,
		drag:       deps.Drag,
		hub:        deps.Hub,
		collection: deps.Collection,
		watcher:    deps.Watcher,
		dispatcher: deps.Dispatcher,
		store:      deps.Store,
		mode:       ModeBrowse,
		showFooter: opts.ShowFooter,
		verbose:    opts.Verbose,
		wrapCycle:  opts.WrapCycle,
	}
	if sizer, ok := deps.Collection.(host.BrushSizer); ok {
		m.sizer = sizer
	}
	if opts.Width > 0 {
		m.width = opts.Width
		m.fixedWidth = true
	}
	if opts.Height > 0 {
		m.height = opts.Height
		m.fixedHeight = true
	}
	if m.hub != nil {
		// Every published mutation marks the snapshot stale; the debounced
		// store coalesces the writes.
		m.hub.Subscribe(func(evt notify.Event) {
			if evt.Kind != notify.SelectionChanged {
				m.saveNeeded = true
			}
		})
	}
	m.registerHandlers()
	return m
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	if m.watcher != nil {
		return waitForDetectorEvent(m.watcher)
	}
	return nil
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if handled, cmd := m.handleOverlay(msg); handled {
		m.finishUpdate()
		return m, cmd
	}
	if handler := m.handlerFor(msg); handler != nil {
		cmd := handler(msg)
		m.finishUpdate()
		return m, cmd
	}
	m.finishUpdate()
	return m, nil
}

func (m *Model) handleOverlay(msg tea.Msg) (bool, tea.Cmd) {
	switch m.mode {
	case ModePrompt:
		return m.handlePromptMsg(msg)
	case ModePicker:
		return m.handlePickerMsg(msg)
	default:
		return false, nil
	}
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.MouseMsg{}):      m.handleMouseMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(detectorEventMsg{}):  m.handleDetectorEventMsg,
		reflect.TypeOf(detectorDoneMsg{}):   m.handleDetectorDoneMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

// finishUpdate runs after every message: clamps the cursor to the current
// row list and pushes a stale snapshot towards the store.
func (m *Model) finishUpdate() {
	m.clampCursor()
	if m.saveNeeded && m.store != nil {
		m.store.Save(m.snapshot())
		m.saveNeeded = false
	}
}

func (m *Model) snapshot() store.Snapshot {
	snap := store.Snapshot{Layout: m.layout.Snapshot()}
	for _, entry := range m.registry.Entries() {
		snap.Presets = append(snap.Presets, store.PresetMeta{
			ID:   entry.ID,
			Name: entry.Name,
			Role: entry.Role,
		})
	}
	return snap
}

func (m *Model) setInfo(text string) {
	m.infoMsg = text
	m.infoExpire = time.Now().Add(3 * time.Second)
}

func (m *Model) currentInfo() string {
	if m.infoMsg == "" || time.Now().After(m.infoExpire) {
		return ""
	}
	return m.infoMsg
}

func (m *Model) clearMessages() {
	m.errMsg = ""
	m.infoMsg = ""
}
