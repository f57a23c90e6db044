// Package ui contains the Bubble Tea program that renders the preset
// organizer. The package is structured so the Model type focuses on message
// orchestration, while dedicated helpers own rows, input, mouse handling,
// and rendering.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages.
//   - Update forwards prompt and picker messages to the active overlay (the
//     rename prompt or the add-preset picker). When no overlay is active, the
//     message is routed through a typed handler registry so each tea.Msg is
//     handled by a focused function (key presses, mouse gestures, detector
//     events, resizes).
//   - Row helpers (internal/ui/rows.go) flatten the group/item tree into the
//     visible row list shared by the renderer and the mouse hit test, so what
//     is drawn and what is clickable can never disagree.
//
// State ownership:
//   - Ordering lives in internal/layout, selection in internal/selection,
//     drag gestures in internal/drag, and preset metadata in
//     internal/registry. The Model holds no duplicate copies; it reads those
//     stores when rendering.
//   - Persistence is debounced through internal/store; every layout event
//     schedules a save and shutdown flushes the last one.
//
// Detector interactions:
//   - A detector.Watcher streams thumbnail and catalog findings; Update waits
//     for those events and hands them to the dispatcher, which updates the
//     registry and layout. The watcher is stopped while the organizer is
//     hidden and rebuilt on show, restarting its rotation from the top.
package ui
