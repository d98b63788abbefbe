package fetcher

import (
	"context"
	"fmt"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/chromedp/chromedp"
)

// BrowserFetcher loads pages in a headless Chrome tab and returns the
// rendered document
type BrowserFetcher struct {
	opts Options
}

// NewBrowserFetcher creates a new BrowserFetcher. Chrome is started lazily
// on each Fetch and torn down afterwards.
func NewBrowserFetcher(opts Options) *BrowserFetcher {
	return &BrowserFetcher{opts: opts.withDefaults()}
}

func (b *BrowserFetcher) allocatorOptions() []chromedp.ExecAllocatorOption {
	return append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.DisableGPU,
		chromedp.NoSandbox,
		chromedp.Headless,
		chromedp.UserAgent(b.opts.UserAgent),
	)
}

// Fetch navigates to url and returns the outer HTML of the page
func (b *BrowserFetcher) Fetch(ctx context.Context, url string) (string, error) {
	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx, b.allocatorOptions()...)
	defer allocCancel()

	tabCtx, tabCancel := chromedp.NewContext(allocCtx)
	defer tabCancel()

	timeoutCtx, timeoutCancel := context.WithTimeout(tabCtx, b.opts.Timeout)
	defer timeoutCancel()

	resp, err := chromedp.RunResponse(timeoutCtx, chromedp.Navigate(url))
	if err != nil {
		return "", fmt.Errorf("navigation to %s failed: %w", url, err)
	}

	log.Debug("response received", "url", url, "status", resp.Status)
	if resp.Status != http.StatusOK {
		return "", &StatusError{URL: url, StatusCode: int(resp.Status)}
	}

	var page string
	if err := chromedp.Run(timeoutCtx,
		chromedp.WaitReady("body"),
		chromedp.OuterHTML("html", &page),
	); err != nil {
		return "", fmt.Errorf("error getting HTML: %w", err)
	}

	log.Debug("page rendered", "url", url, "bytes", len(page))
	return page, nil
}
