package progress

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatMessage(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"short url kept", "https://a.org/wiki/Go", "https://a.org/wiki/Go"},
		{"long path truncated", "https://en.wikipedia.org/wiki/Graph_theory_and_its_applications",
			"en.wikipedia.org..._and_its_applications"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := formatMessage(tt.in)
			assert.Equal(t, tt.want, got)
			assert.LessOrEqual(t, len(got), 40)
		})
	}
}

func TestDisabledIndicator(t *testing.T) {
	var buf bytes.Buffer
	p := New(&buf, false)

	p.Start("https://en.wikipedia.org/wiki/Go")
	p.Stop()

	assert.Empty(t, buf.String())
	assert.Empty(t, p.Message())
}

func TestEnabledIndicatorMessage(t *testing.T) {
	var buf bytes.Buffer
	p := New(&buf, true)

	p.Start("https://en.wikipedia.org/wiki/Go")
	defer p.Stop()

	assert.Equal(t, " Fetching https://en.wikipedia.org/wiki/Go", p.Message())
}
