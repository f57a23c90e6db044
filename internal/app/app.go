package app

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/inkbench/preset-groups/internal/data/dispatcher"
	"github.com/inkbench/preset-groups/internal/detector"
	"github.com/inkbench/preset-groups/internal/drag"
	"github.com/inkbench/preset-groups/internal/format/table"
	"github.com/inkbench/preset-groups/internal/host"
	"github.com/inkbench/preset-groups/internal/layout"
	"github.com/inkbench/preset-groups/internal/logging"
	"github.com/inkbench/preset-groups/internal/logging/events"
	"github.com/inkbench/preset-groups/internal/notify"
	"github.com/inkbench/preset-groups/internal/registry"
	"github.com/inkbench/preset-groups/internal/selection"
	"github.com/inkbench/preset-groups/internal/signature"
	"github.com/inkbench/preset-groups/internal/store"
	"github.com/inkbench/preset-groups/internal/ui"
)

// Config describes user-provided application options.
type Config struct {
	PresetDir           string
	DataDir             string
	Width               int
	Height              int
	ShowFooter          bool
	Verbose             bool
	ListMode            bool
	ExclusiveUncollapse bool
	WrapNavigation      bool
	TickInterval        time.Duration
	BatchSize           int
	SampleGrid          int
	CatalogInterval     time.Duration
}

// Run bootstraps and executes the Bubble Tea program.
func Run(cfg Config) error {
	dataDir, err := resolveDataDir(cfg.DataDir)
	if err != nil {
		return fmt.Errorf("resolve data dir: %w", err)
	}
	st, err := store.New(dataDir, store.DefaultSaveDelay)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}

	collection, err := resolveCollection(cfg.PresetDir)
	if err != nil {
		return fmt.Errorf("open preset collection: %w", err)
	}

	hub := notify.NewHub()
	lay := layout.New(cfg.ExclusiveUncollapse, hub)
	reg := registry.New()

	// A corrupt snapshot is logged and skipped; starting empty beats not
	// starting.
	if snap, ok, loadErr := st.Load(); loadErr != nil {
		logging.Error(loadErr)
	} else if ok {
		lay.Restore(snap.Layout)
		for _, meta := range snap.Presets {
			reg.Adopt(host.Preset{ID: meta.ID, Name: meta.Name, Role: meta.Role})
		}
		events.App.Restore(len(snap.Layout.Groups), len(lay.CurrentOrder()))
	}

	if cfg.ListMode {
		return List(os.Stdout, lay, reg)
	}

	sel := selection.New(hub)
	eng := drag.NewEngine(lay, sel)
	disp := dispatcher.New(reg, lay, sel, hub)

	sampler := signature.NewSampler(cfg.SampleGrid)
	watcher := detector.NewWatcher(collection, reg, sampler, detector.Config{
		Interval:        cfg.TickInterval,
		BatchSize:       cfg.BatchSize,
		CatalogInterval: cfg.CatalogInterval,
	})
	defer watcher.Stop()

	model := ui.NewModel(ui.Deps{
		Layout:     lay,
		Registry:   reg,
		Selection:  sel,
		Drag:       eng,
		Hub:        hub,
		Collection: collection,
		Watcher:    watcher,
		Dispatcher: disp,
		Store:      st,
	}, ui.Options{
		Width:      cfg.Width,
		Height:     cfg.Height,
		ShowFooter: cfg.ShowFooter,
		Verbose:    cfg.Verbose,
		WrapCycle:  cfg.WrapNavigation,
	})
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err = program.Run()
	if flushErr := st.Flush(); flushErr != nil {
		logging.Error(flushErr)
	}
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}

// List prints the organizer contents as a plain table, for non-interactive
// use.
func List(w io.Writer, lay *layout.Model, reg *registry.Registry) error {
	rows := [][]string{{"GROUP", "PRESET", "ROLE", "STATUS"}}
	for _, g := range lay.Groups() {
		state := ""
		if g.Collapsed {
			state = "collapsed"
		}
		if len(g.Items) == 0 {
			rows = append(rows, []string{g.Name, "(empty)", "", state})
			continue
		}
		for _, id := range g.Items {
			name, role, status := id, "", state
			if entry, ok := reg.Entry(id); ok {
				if entry.Name != "" {
					name = entry.Name
				}
				role = entry.Role.String()
				if entry.Dirty {
					status = "dirty"
				}
			}
			rows = append(rows, []string{g.Name, name, role, status})
		}
	}
	for _, line := range table.Format(rows, []table.Alignment{table.AlignLeft, table.AlignLeft, table.AlignLeft, table.AlignLeft}) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func resolveDataDir(dir string) (string, error) {
	if dir != "" {
		return dir, nil
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, "preset-groups"), nil
}

func resolveCollection(presetDir string) (host.Collection, error) {
	if presetDir == "" {
		return demoCollection(), nil
	}
	return host.NewDirCollection(presetDir)
}
