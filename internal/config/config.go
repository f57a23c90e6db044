package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/inkbench/preset-groups/internal/app"
)

// Config captures runtime configuration for the application.
type Config struct {
	App      app.Config
	Logging  Logging
	Features Features
	Flags    map[string]string
	Args     []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

type Features struct {
	Verbose bool
}

const (
	envPresetDir  = "PRESET_GROUPS_PRESET_DIR"
	envDataDir    = "PRESET_GROUPS_DATA_DIR"
	envWidth      = "PRESET_GROUPS_WIDTH"
	envHeight     = "PRESET_GROUPS_HEIGHT"
	envShowFooter = "PRESET_GROUPS_FOOTER"
	envVerbose    = "PRESET_GROUPS_VERBOSE"
	envTrace      = "PRESET_GROUPS_TRACE"
	envLogFile    = "PRESET_GROUPS_LOG_FILE"
	envExclusive  = "PRESET_GROUPS_EXCLUSIVE"
	envWrap       = "PRESET_GROUPS_WRAP"
	envTickMS     = "PRESET_GROUPS_TICK_MS"
	envBatch      = "PRESET_GROUPS_BATCH"
	envGrid       = "PRESET_GROUPS_GRID"
	envCatalogMS  = "PRESET_GROUPS_CATALOG_MS"
)

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	fs := flag.NewFlagSet("preset-groups", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	presetDir := fs.String("presets", envOrDefault(env, envPresetDir, ""), "directory holding preset thumbnails (empty runs the built-in demo set)")
	dataDir := fs.String("data-dir", envOrDefault(env, envDataDir, ""), "directory for persisted state (defaults to the user config dir)")
	width := fs.Int("width", envOrInt(env, envWidth, 0), "desired viewport width in cells (0 uses terminal width)")
	height := fs.Int("height", envOrInt(env, envHeight, 0), "desired viewport height in rows (0 uses terminal height)")
	footer := fs.Bool("footer", envOrBool(env, envShowFooter, false), "enable footer hint row (disabled by default)")
	trace := fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	verbose := fs.Bool("verbose", envOrBool(env, envVerbose, false), "print success messages for actions")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file")
	listMode := fs.Bool("list", false, "print the current groups and items as a table and exit")
	exclusive := fs.Bool("exclusive", envOrBool(env, envExclusive, true), "keep at most one group uncollapsed at a time")
	wrap := fs.Bool("wrap", envOrBool(env, envWrap, true), "wrap around when cycling past the ends of a group")
	tickMS := fs.Int("tick-ms", envOrInt(env, envTickMS, 2000), "thumbnail check interval in milliseconds")
	batch := fs.Int("batch", envOrInt(env, envBatch, 50), "max thumbnails sampled per check")
	grid := fs.Int("grid", envOrInt(env, envGrid, 0), "signature sample grid size (0 uses the default)")
	catalogMS := fs.Int("catalog-ms", envOrInt(env, envCatalogMS, 5000), "host catalog poll interval in milliseconds")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if *width < 0 {
		return Config{}, fmt.Errorf("width must be >= 0 (got %d)", *width)
	}
	if *height < 0 {
		return Config{}, fmt.Errorf("height must be >= 0 (got %d)", *height)
	}
	if *tickMS <= 0 {
		return Config{}, fmt.Errorf("tick-ms must be > 0 (got %d)", *tickMS)
	}
	if *batch <= 0 {
		return Config{}, fmt.Errorf("batch must be > 0 (got %d)", *batch)
	}
	if *catalogMS <= 0 {
		return Config{}, fmt.Errorf("catalog-ms must be > 0 (got %d)", *catalogMS)
	}
	if *grid < 0 {
		return Config{}, fmt.Errorf("grid must be >= 0 (got %d)", *grid)
	}

	cfg := Config{
		App: app.Config{
			PresetDir:           *presetDir,
			DataDir:             *dataDir,
			Width:               *width,
			Height:              *height,
			ShowFooter:          *footer,
			Verbose:             *verbose,
			ListMode:            *listMode,
			ExclusiveUncollapse: *exclusive,
			WrapNavigation:      *wrap,
			TickInterval:        time.Duration(*tickMS) * time.Millisecond,
			BatchSize:           *batch,
			SampleGrid:          *grid,
			CatalogInterval:     time.Duration(*catalogMS) * time.Millisecond,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		Features: Features{
			Verbose: *verbose,
		},
		Flags: map[string]string{
			"presets":   *presetDir,
			"dataDir":   *dataDir,
			"width":     strconv.Itoa(*width),
			"height":    strconv.Itoa(*height),
			"footer":    strconv.FormatBool(*footer),
			"trace":     strconv.FormatBool(*trace),
			"verbose":   strconv.FormatBool(*verbose),
			"logFile":   *logFile,
			"list":      strconv.FormatBool(*listMode),
			"exclusive": strconv.FormatBool(*exclusive),
			"wrap":      strconv.FormatBool(*wrap),
			"tickMs":    strconv.Itoa(*tickMS),
			"batch":     strconv.Itoa(*batch),
			"grid":      strconv.Itoa(*grid),
			"catalogMs": strconv.Itoa(*catalogMS),
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// Validate ensures required minimum configuration is present.
func Validate(cfg Config) error {
	// Additional validation hooks can be placed here as configuration evolves.
	return nil
}
