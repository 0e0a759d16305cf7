package lists

import (
	"os"
	"path/filepath"
	"testing"

	"feedscout/app/feed"
)

func writeList(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "list.json")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write list file: %v", err)
	}

	return path
}

func TestLoaderLoad(t *testing.T) {
	path := writeList(t, `[
		"https://links.example.org/?do=rss",
		"https://other.example.org/feed/atom"
	]`)

	loader := NewLoader(feed.NewCanonicalizer())

	set, err := loader.Load(path)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if set.Len() != 2 {
		t.Errorf("Expected 2 entries, got: %d", set.Len())
	}
	if !set.Contains("https://links.example.org/?do=rss") {
		t.Error("Expected already canonical entry to be present")
	}
	if !set.Contains("https://other.example.org/?do=rss") {
		t.Error("Expected entry to be canonicalized on load")
	}
}

func TestLoaderLoadCollapsesDuplicates(t *testing.T) {
	path := writeList(t, `[
		"https://links.example.org/?do=rss",
		"https://links.example.org/?do=atom",
		"https://links.example.org/feed/rss"
	]`)

	loader := NewLoader(feed.NewCanonicalizer())

	set, err := loader.Load(path)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if set.Len() != 1 {
		t.Errorf("Expected duplicates to collapse to 1 entry, got: %d", set.Len())
	}
}

func TestLoaderLoadEmptyList(t *testing.T) {
	path := writeList(t, `[]`)

	loader := NewLoader(feed.NewCanonicalizer())

	set, err := loader.Load(path)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if set.Len() != 0 {
		t.Errorf("Expected empty set, got: %d entries", set.Len())
	}
}

func TestLoaderLoadMissingFile(t *testing.T) {
	loader := NewLoader(feed.NewCanonicalizer())

	if _, err := loader.Load(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Error("Expected error for missing file, got nil")
	}
}

func TestLoaderLoadInvalidJSON(t *testing.T) {
	path := writeList(t, `{"not": "a list"}`)

	loader := NewLoader(feed.NewCanonicalizer())

	if _, err := loader.Load(path); err == nil {
		t.Error("Expected error for non-array JSON, got nil")
	}
}
