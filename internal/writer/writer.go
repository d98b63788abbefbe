package writer

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-scripts/wikisum/internal/types"
)

// FileWriter stores extracted summaries as JSON files
type FileWriter struct {
	outputDir string
}

// New creates a new FileWriter instance
func New(outputDir string) (*FileWriter, error) {
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}
	return &FileWriter{outputDir: outputDir}, nil
}

// WriteSummary writes the summary to <outputDir>/<sanitized url>.json and
// returns the path written
func (w *FileWriter) WriteSummary(summary *types.Summary) (string, error) {
	path := filepath.Join(w.outputDir, sanitizeFilename(summary.URL)+".json")

	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(summary); err != nil {
		return "", fmt.Errorf("failed to encode summary: %w", err)
	}

	return path, nil
}

// sanitizeFilename creates a safe filename from a URL
func sanitizeFilename(url string) string {
	url = strings.TrimPrefix(url, "http://")
	url = strings.TrimPrefix(url, "https://")
	url = strings.TrimPrefix(url, "www.")

	unsafe := []string{"/", "\\", ":", "*", "?", "\"", "<", ">", "|", " ", "%"}
	for _, char := range unsafe {
		url = strings.ReplaceAll(url, char, "_")
	}

	if url == "" {
		return "index"
	}
	return url
}
