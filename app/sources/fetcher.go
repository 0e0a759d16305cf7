package sources

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"regexp"
	"unicode/utf8"

	"feedscout/app/feed"
)

// xmlURLPattern pulls feed URLs out of OPML payloads. The payload is
// scanned rather than parsed as XML, so a truncated document still
// yields every complete xmlUrl attribute that made it through.
var xmlURLPattern = regexp.MustCompile(`xmlUrl="([^"]+)"`)

type feedEntry struct {
	URL string `json:"url"`
}

// Fetcher downloads a feed directory and extracts the canonical form of
// every feed URL it advertises.
type Fetcher struct {
	httpClient    *http.Client
	canonicalizer *feed.Canonicalizer
	userAgent     string
}

func NewFetcher(httpClient *http.Client, canonicalizer *feed.Canonicalizer, userAgent string) *Fetcher {
	return &Fetcher{
		httpClient:    httpClient,
		canonicalizer: canonicalizer,
		userAgent:     userAgent,
	}
}

// Run fetches src and returns the canonicalized set of feed URLs it
// lists.
func (f *Fetcher) Run(ctx context.Context, src Source) (feed.Set, error) {
	data, err := f.fetch(ctx, src.URL)
	if err != nil {
		return nil, err
	}

	var raw []string
	switch src.Format {
	case FormatJSON:
		raw, err = extractJSON(data)
	case FormatOPML:
		raw, err = extractOPML(data)
	default:
		err = fmt.Errorf("invalid source format: %s", src.Format)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to extract feeds from %s: %w", src.URL, err)
	}

	set := feed.NewSet()
	for _, u := range raw {
		set.Add(f.canonicalizer.Run(u))
	}

	return set, nil
}

// fetch downloads the source payload. A transfer cut short of the
// announced length is not fatal: the bytes received so far are used.
func (f *Fetcher) fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch source: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP error: %d %s", resp.StatusCode, resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		if errors.Is(err, io.ErrUnexpectedEOF) {
			slog.Warn("Source transfer truncated, keeping partial payload", "url", url, "bytes", len(data))
			return data, nil
		}
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	return data, nil
}

func extractJSON(data []byte) ([]string, error) {
	var entries []feedEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to parse feed list: %w", err)
	}

	urls := make([]string, 0, len(entries))
	for _, entry := range entries {
		urls = append(urls, entry.URL)
	}

	return urls, nil
}

func extractOPML(data []byte) ([]string, error) {
	if !utf8.Valid(data) {
		return nil, fmt.Errorf("payload is not valid UTF-8")
	}

	matches := xmlURLPattern.FindAllStringSubmatch(string(data), -1)
	urls := make([]string, 0, len(matches))
	for _, match := range matches {
		urls = append(urls, match[1])
	}

	return urls, nil
}
