package cfg

import (
	"cmp"
	"fmt"

	"github.com/jessevdk/go-flags"
)

// Version is set at build time via -ldflags
var Version = "dev"

func GetVersion() string {
	return cmp.Or(Version, "unknown")
}

type rawCfg struct {
	// Local list files
	FeedsFile  string `long:"feeds-file" env:"FEEDS_FILE" default:"shaarlis.json" description:"JSON array of already-tracked feed URLs"`
	BadFile    string `long:"bad-file" env:"BAD_FILE" default:"bad.json" description:"JSON array of known-bad feed URLs to exclude"`
	ManualFile string `long:"manual-file" env:"MANUAL_FILE" default:"manual.json" description:"JSON array of manually curated feed URLs"`

	// Discovery configuration
	SourcesFile string `long:"sources-file" env:"SOURCES_FILE" description:"YAML file overriding the built-in source list (optional)"`
	Timeout     int    `long:"timeout" env:"TIMEOUT" default:"30" description:"HTTP timeout in seconds"`
	Check       bool   `long:"check" env:"CHECK" description:"Fetch and parse each new feed before reporting it"`

	// Application metadata
	UserAgent string `long:"user-agent" env:"USER_AGENT" default:"Feed Scout/1.0" description:"User agent string for HTTP requests"`
	Debug     bool   `long:"debug" env:"DEBUG" description:"Enable debug logging"`
}

var globalCfg *Cfg

func Load() (*Cfg, error) {
	var raw rawCfg

	parser := flags.NewParser(&raw, flags.Default)

	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok {
			if flagsErr.Type == flags.ErrHelp {
				return nil, nil
			}
		}
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}

	cfg := &Cfg{
		FeedsFile:   raw.FeedsFile,
		BadFile:     raw.BadFile,
		ManualFile:  raw.ManualFile,
		SourcesFile: raw.SourcesFile,
		Timeout:     raw.Timeout,
		Check:       raw.Check,
		UserAgent:   raw.UserAgent,
		Debug:       raw.Debug,
		Version:     GetVersion(),
	}

	globalCfg = cfg

	return cfg, nil
}

func Get() *Cfg {
	if globalCfg == nil {
		panic("configuration not loaded - call cfg.Load() first")
	}
	return globalCfg
}
