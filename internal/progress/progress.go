package progress

import (
	"fmt"
	"io"
	"net/url"
	"time"

	"github.com/briandowns/spinner"
)

// Indicator shows a spinner while a page is being fetched
type Indicator struct {
	spinner *spinner.Spinner
	enabled bool
}

// New creates a new Indicator writing to w. A disabled indicator does nothing.
func New(w io.Writer, enabled bool) *Indicator {
	s := spinner.New(spinner.CharSets[9], 100*time.Millisecond, spinner.WithWriter(w))
	return &Indicator{spinner: s, enabled: enabled}
}

// Start begins spinning with the URL being fetched as the message
func (p *Indicator) Start(urlStr string) {
	if !p.enabled {
		return
	}
	p.spinner.Suffix = fmt.Sprintf(" Fetching %s", formatMessage(urlStr))
	p.spinner.Start()
}

// Stop halts the spinner and clears its line
func (p *Indicator) Stop() {
	if !p.enabled {
		return
	}
	p.spinner.Stop()
}

// Message returns the current spinner suffix
func (p *Indicator) Message() string {
	return p.spinner.Suffix
}

// formatMessage truncates long URLs, keeping the host and the end of the path
func formatMessage(urlStr string) string {
	maxLen := 40
	if len(urlStr) <= maxLen {
		return urlStr
	}

	u, err := url.Parse(urlStr)
	if err == nil {
		domain := u.Host
		path := u.EscapedPath()
		if keep := maxLen - len(domain) - 3; keep > 0 && len(path) > keep {
			path = "..." + path[len(path)-keep:]
		}
		return domain + path
	}
	return "..." + urlStr[len(urlStr)-maxLen:]
}
