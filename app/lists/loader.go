package lists

import (
	"encoding/json"
	"fmt"
	"os"

	"feedscout/app/feed"
)

// Loader reads the local JSON lists of feed URLs and canonicalizes
// every entry so they compare against discovered feeds.
type Loader struct {
	canonicalizer *feed.Canonicalizer
}

func NewLoader(canonicalizer *feed.Canonicalizer) *Loader {
	return &Loader{canonicalizer: canonicalizer}
}

// Load reads a JSON array of URL strings from path.
func (l *Loader) Load(path string) (feed.Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read list %s: %w", path, err)
	}

	var urls []string
	if err := json.Unmarshal(data, &urls); err != nil {
		return nil, fmt.Errorf("failed to parse list %s: %w", path, err)
	}

	set := feed.NewSet()
	for _, u := range urls {
		set.Add(l.canonicalizer.Run(u))
	}

	return set, nil
}
