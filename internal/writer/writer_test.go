package writer

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-scripts/wikisum/internal/types"
)

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"https://en.wikipedia.org/wiki/Graph_theory", "en.wikipedia.org_wiki_Graph_theory"},
		{"http://www.example.com/a?b", "example.com_a_b"},
		{"https://en.wikipedia.org/wiki/Z%C3%BCrich", "en.wikipedia.org_wiki_Z_C3_BCrich"},
		{"", "index"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, sanitizeFilename(tt.in))
		})
	}
}

func TestWriteSummary(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "out")
	w, err := New(dir)
	require.NoError(t, err)

	summary := &types.Summary{
		URL:       "https://en.wikipedia.org/wiki/Graph_theory",
		Title:     "Graph theory",
		Summary:   "Graph theory is the study of graphs.",
		FetchedAt: time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
	}

	path, err := w.WriteSummary(summary)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "en.wikipedia.org_wiki_Graph_theory.json"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var got types.Summary
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, *summary, got)
	assert.Contains(t, string(data), `"fetched_at": "2024-01-02T03:04:05Z"`)
}
