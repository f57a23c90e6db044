package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/inkbench/preset-groups/internal/data/dispatcher"
	"github.com/inkbench/preset-groups/internal/detector"
	"github.com/inkbench/preset-groups/internal/host"
	"github.com/inkbench/preset-groups/internal/logging/events"
)

func waitForDetectorEvent(w *detector.Watcher) tea.Cmd {
	return func() tea.Msg {
		evt, ok := <-w.Events()
		if !ok {
			return detectorDoneMsg{}
		}
		return detectorEventMsg{event: evt}
	}
}

type detectorEventMsg struct {
	event detector.Event
}

type detectorDoneMsg struct{}

func (m *Model) handleDetectorEventMsg(msg tea.Msg) tea.Cmd {
	eventMsg, ok := msg.(detectorEventMsg)
	if !ok {
		return nil
	}
	m.applyDetectorEvent(eventMsg.event)
	if m.watcher != nil {
		return waitForDetectorEvent(m.watcher)
	}
	return nil
}

func (m *Model) handleDetectorDoneMsg(tea.Msg) tea.Cmd {
	m.watcher = nil
	return nil
}

func (m *Model) applyDetectorEvent(evt detector.Event) {
	res := m.dispatcher.Handle(evt)
	m.traceDetectorEvent(evt, res)
	if res.HostDown {
		m.hostDown = true
		return
	}
	m.hostDown = false
	if res.LayoutUpdated || res.RegistryUpdated {
		m.saveNeeded = true
	}
}

func (m *Model) traceDetectorEvent(evt detector.Event, res dispatcher.Result) {
	switch evt.Kind {
	case detector.KindBaseline:
		if obs, ok := evt.Data.(detector.Observation); ok {
			events.Detector.Baseline(obs.ID)
		}
	case detector.KindChanged:
		if obs, ok := evt.Data.(detector.Observation); ok {
			events.Detector.Changed(obs.ID)
		}
	case detector.KindMissing:
		if id, ok := evt.Data.(string); ok {
			events.Detector.Missing(id)
		}
	case detector.KindCatalog:
		if presets, ok := evt.Data.([]host.Preset); ok {
			events.Detector.Catalog(len(presets), len(res.Reconciled.Renamed), len(res.Reconciled.Removed))
		}
	case detector.KindHostDown:
		events.Detector.HostDown(evt.Err)
	}
}
