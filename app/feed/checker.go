package feed

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/mmcdole/gofeed"
)

// Checker verifies that a candidate URL actually serves a parseable RSS
// or Atom feed.
type Checker struct {
	httpClient *http.Client
	parser     *gofeed.Parser
	userAgent  string
}

func NewChecker(httpClient *http.Client, userAgent string) *Checker {
	return &Checker{
		httpClient: httpClient,
		parser:     gofeed.NewParser(),
		userAgent:  userAgent,
	}
}

// Run fetches url and returns an error unless the response parses as a
// feed.
func (c *Checker) Run(ctx context.Context, url string) error {
	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/rss+xml, application/atom+xml, application/xml, text/xml")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to fetch feed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("HTTP error: %d %s", resp.StatusCode, resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read feed data: %w", err)
	}

	if _, err := c.parser.ParseString(string(data)); err != nil {
		return fmt.Errorf("failed to parse feed: %w", err)
	}

	return nil
}
