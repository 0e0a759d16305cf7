package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"feedscout/app/cfg"
	"feedscout/app/feed"
	"feedscout/app/lists"
	"feedscout/app/sources"
)

func main() {
	appCfg, err := cfg.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if appCfg == nil {
		// Help was shown, exit gracefully
		return
	}

	if appCfg.Debug {
		slog.SetLogLoggerLevel(slog.LevelDebug)
	}

	slog.Debug("Starting feed discovery", "version", appCfg.Version)

	canonicalizer := feed.NewCanonicalizer()
	listLoader := lists.NewLoader(canonicalizer)

	current, err := listLoader.Load(appCfg.FeedsFile)
	if err != nil {
		fatal("Failed to load tracked feeds", "error", err)
	}
	bad, err := listLoader.Load(appCfg.BadFile)
	if err != nil {
		fatal("Failed to load bad feeds", "error", err)
	}
	manual, err := listLoader.Load(appCfg.ManualFile)
	if err != nil {
		fatal("Failed to load manual feeds", "error", err)
	}
	slog.Debug("Local lists loaded", "tracked", current.Len(), "bad", bad.Len(), "manual", manual.Len())

	srcs, err := sources.NewLoader(appCfg.SourcesFile).LoadAll()
	if err != nil {
		fatal("Failed to load source list", "error", err)
	}

	httpClient := &http.Client{
		Timeout: time.Duration(appCfg.Timeout) * time.Second,
	}
	fetcher := sources.NewFetcher(httpClient, canonicalizer, appCfg.UserAgent)

	ctx := context.Background()
	discovered := make([]feed.Set, 0, len(srcs))
	for _, src := range srcs {
		set, err := fetcher.Run(ctx, src)
		if err != nil {
			fatal("Failed to fetch source", "url", src.URL, "error", err)
		}
		slog.Debug("Source fetched", "url", src.URL, "feeds", set.Len())
		discovered = append(discovered, set)
	}

	candidates := feed.NewReconciler().Run(current, bad, manual, discovered)

	if appCfg.Check {
		checker := feed.NewChecker(httpClient, appCfg.UserAgent)
		candidates = checkAll(ctx, checker, candidates)
	}

	// Candidates are printed ready to paste into the tracked feeds list
	for _, u := range candidates {
		fmt.Printf("\"%s\",\n", u)
	}
	fmt.Printf("+ %d\n", len(candidates))
}

// checkAll drops candidates that do not fetch and parse as feeds.
func checkAll(ctx context.Context, checker *feed.Checker, candidates []string) []string {
	valid := make([]string, 0, len(candidates))
	for _, u := range candidates {
		if err := checker.Run(ctx, u); err != nil {
			slog.Warn("Candidate failed the feed check", "url", u, "error", err)
			continue
		}
		valid = append(valid, u)
	}

	return valid
}

func fatal(msg string, args ...any) {
	slog.Error(msg, args...)
	os.Exit(1)
}
