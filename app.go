package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/go-scripts/wikisum/internal/config"
	"github.com/go-scripts/wikisum/internal/extract"
	"github.com/go-scripts/wikisum/internal/fetcher"
	"github.com/go-scripts/wikisum/internal/progress"
	"github.com/go-scripts/wikisum/internal/query"
	"github.com/go-scripts/wikisum/internal/types"
	"github.com/go-scripts/wikisum/internal/writer"
	"github.com/go-scripts/wikisum/ui"
)

// App runs a single lookup: build URL, fetch, extract, render
type App struct {
	config   *config.Configuration
	fetcher  fetcher.Fetcher
	renderer ui.Renderer
	progress *progress.Indicator
	out      io.Writer
}

// Run looks up the article named by the search words and renders it
func (a *App) Run(ctx context.Context, search []string) error {
	endpoint, err := query.Endpoint(a.config.BaseURL, query.Normalize(search))
	if err != nil {
		return err
	}

	summary, err := a.Summarize(ctx, endpoint)
	if err != nil {
		return err
	}

	if a.config.SaveDir != "" {
		if err := a.save(summary); err != nil {
			return err
		}
	}

	return a.renderer.Render(a.out, summary.Title, summary.URL, summary.Summary)
}

// Summarize fetches endpoint and extracts its title and summary
func (a *App) Summarize(ctx context.Context, endpoint string) (*types.Summary, error) {
	log.Debug("Fetching article", "url", endpoint)

	a.progress.Start(endpoint)
	page, err := a.fetcher.Fetch(ctx, endpoint)
	a.progress.Stop()
	if err != nil {
		return nil, err
	}

	doc, err := extract.Parse(page)
	if err != nil {
		return nil, err
	}

	result, err := extract.Extract(doc)
	if err != nil {
		return nil, fmt.Errorf("error processing %s: %w", endpoint, err)
	}
	result.URL = endpoint
	result.FetchedAt = time.Now().UTC()

	log.Debug("Summary extracted", "title", result.Title, "disambiguation", result.Disambiguation)
	return &result, nil
}

func (a *App) save(summary *types.Summary) error {
	w, err := writer.New(a.config.SaveDir)
	if err != nil {
		return err
	}
	path, err := w.WriteSummary(summary)
	if err != nil {
		return fmt.Errorf("error writing data: %w", err)
	}
	log.Info("Summary saved", "path", path)
	return nil
}
