package config

import (
	"testing"
	"time"
)

func TestDefaults(t *testing.T) {
	cfg, err := LoadArgs(nil, nil)
	if err != nil {
		t.Fatalf("LoadArgs: %v", err)
	}
	if !cfg.App.ExclusiveUncollapse || !cfg.App.WrapNavigation {
		t.Fatalf("exclusive/wrap defaults = %v/%v, want true/true", cfg.App.ExclusiveUncollapse, cfg.App.WrapNavigation)
	}
	if cfg.App.TickInterval != 2*time.Second || cfg.App.BatchSize != 50 {
		t.Fatalf("detector defaults = %v/%d", cfg.App.TickInterval, cfg.App.BatchSize)
	}
	if cfg.App.ListMode || cfg.Logging.Trace {
		t.Fatalf("list/trace default on")
	}
}

func TestFlagsOverrideEnvironment(t *testing.T) {
	cfg, err := LoadArgs(
		[]string{"-presets", "/tmp/flags", "-tick-ms", "500", "-exclusive=false"},
		[]string{"PRESET_GROUPS_PRESET_DIR=/tmp/env", "PRESET_GROUPS_TICK_MS=9000"},
	)
	if err != nil {
		t.Fatalf("LoadArgs: %v", err)
	}
	if cfg.App.PresetDir != "/tmp/flags" {
		t.Fatalf("presetDir = %q, want flag value", cfg.App.PresetDir)
	}
	if cfg.App.TickInterval != 500*time.Millisecond {
		t.Fatalf("tick = %v, want 500ms", cfg.App.TickInterval)
	}
	if cfg.App.ExclusiveUncollapse {
		t.Fatalf("exclusive flag not honoured")
	}
}

func TestEnvironmentFallback(t *testing.T) {
	cfg, err := LoadArgs(nil, []string{
		"PRESET_GROUPS_DATA_DIR=/var/lib/pg",
		"PRESET_GROUPS_BATCH=10",
		"PRESET_GROUPS_WRAP=false",
		"PRESET_GROUPS_TRACE=1",
	})
	if err != nil {
		t.Fatalf("LoadArgs: %v", err)
	}
	if cfg.App.DataDir != "/var/lib/pg" || cfg.App.BatchSize != 10 {
		t.Fatalf("env values ignored: %q %d", cfg.App.DataDir, cfg.App.BatchSize)
	}
	if cfg.App.WrapNavigation || !cfg.Logging.Trace {
		t.Fatalf("wrap/trace env = %v/%v", cfg.App.WrapNavigation, cfg.Logging.Trace)
	}
}

func TestInvalidValuesRejected(t *testing.T) {
	cases := [][]string{
		{"-width", "-1"},
		{"-tick-ms", "0"},
		{"-batch", "0"},
		{"-catalog-ms", "-5"},
		{"-grid", "-2"},
	}
	for _, args := range cases {
		if _, err := LoadArgs(args, nil); err == nil {
			t.Fatalf("args %v accepted", args)
		}
	}
}

func TestFlagsMapMirrorsValues(t *testing.T) {
	cfg, err := LoadArgs([]string{"-list", "-grid", "8"}, nil)
	if err != nil {
		t.Fatalf("LoadArgs: %v", err)
	}
	if cfg.Flags["list"] != "true" || cfg.Flags["grid"] != "8" {
		t.Fatalf("flags map = %v", cfg.Flags)
	}
}
