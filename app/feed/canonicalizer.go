package feed

import (
	"net/url"
	"strings"
)

// unwantedSegments are path decorations that select a rendering of the
// same feed: /feed/atom, /index.php?do=rss and /rss.xml all point at
// what ?do=rss serves.
var unwantedSegments = map[string]struct{}{
	"atom":       {},
	"feed":       {},
	"index.html": {},
	"index.php":  {},
	"index.php5": {},
	"rss":        {},
	"rss.xml":    {},
}

// Canonicalizer rewrites feed URLs into a single canonical form so that
// the same feed advertised under different paths compares equal.
type Canonicalizer struct{}

func NewCanonicalizer() *Canonicalizer {
	return &Canonicalizer{}
}

// Run returns the canonical form of rawURL: every unwanted path segment
// removed, the query replaced with the RSS selector, scheme, host and
// fragment untouched. Empty or unparseable input canonicalizes to the
// empty string. The result is a fixed point of Run.
func (c *Canonicalizer) Run(rawURL string) string {
	if rawURL == "" {
		return ""
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}

	parts := strings.Split(u.Path, "/")
	segments := make([]string, 0, len(parts))
	for _, segment := range parts {
		if segment == "" {
			continue
		}
		if _, unwanted := unwantedSegments[segment]; unwanted {
			continue
		}
		segments = append(segments, segment)
	}
	path := strings.Join(segments, "/")

	// BlogoText exposes its link feed through rss.php and needs the
	// mode selector on top of do=rss
	query := "do=rss"
	if strings.HasSuffix(path, "rss.php") {
		query = "mode=links&do=rss"
	}

	if path == "" {
		path = "/"
	}

	u.Path = path
	u.RawQuery = query

	return u.String()
}
