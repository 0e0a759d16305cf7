package sources

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultSources returns the built-in feed directories: the public
// Shaarli directory APIs known to publish their member feeds.
func DefaultSources() []Source {
	return []Source{
		{Format: FormatJSON, URL: "https://www.ecirtam.net/shaarli-api/feeds?full=1"},
		{Format: FormatJSON, URL: "https://flow.2038.net/api/feeds?full=1"},
		{Format: FormatJSON, URL: "https://links.shikiryu.com/api/feeds?full=1"},
		{Format: FormatOPML, URL: "https://links.shikiryu.com/api/feeds?format=opml"},
	}
}

// Loader handles loading and validation of the source list
type Loader struct {
	path string
}

// NewLoader creates a new source list loader. An empty path selects the
// built-in sources.
func NewLoader(path string) *Loader {
	return &Loader{path: path}
}

type sourcesFile struct {
	Sources []Source `yaml:"sources"`
}

// LoadAll returns the sources to sync against, either the built-in list
// or the contents of the configured YAML file
func (l *Loader) LoadAll() ([]Source, error) {
	if l.path == "" {
		return DefaultSources(), nil
	}

	data, err := os.ReadFile(l.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read sources file: %w", err)
	}

	var file sourcesFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse sources file: %w", err)
	}

	if len(file.Sources) == 0 {
		return nil, fmt.Errorf("no sources defined in %s", l.path)
	}

	for i, src := range file.Sources {
		if err := l.validate(src); err != nil {
			return nil, fmt.Errorf("invalid source at index %d: %w", i, err)
		}
	}

	return file.Sources, nil
}

// validate validates a single source entry
func (l *Loader) validate(src Source) error {
	if src.URL == "" {
		return fmt.Errorf("source URL is required")
	}

	validFormats := map[Format]bool{
		FormatJSON: true,
		FormatOPML: true,
	}
	if !validFormats[src.Format] {
		return fmt.Errorf("invalid source format: %s", src.Format)
	}

	return nil
}
