// Package report persists synthesized reports to disk.
package report

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Writer saves reports under a base directory with collision-free names.
type Writer struct {
	dir string
}

// NewWriter creates a writer rooted at dir.
func NewWriter(dir string) *Writer {
	return &Writer{dir: dir}
}

// Save writes the report atomically and returns the file path. The file
// name combines a slug of the query, a timestamp and a short unique suffix.
func (w *Writer) Save(query, mode, content string) (string, error) {
	if w.dir == "" {
		return "", fmt.Errorf("report directory not configured")
	}
	if err := os.MkdirAll(w.dir, 0o750); err != nil {
		return "", fmt.Errorf("creating report directory: %w", err)
	}

	name := fmt.Sprintf("%s-%s-%s-%s.md",
		time.Now().UTC().Format("20060102-150405"),
		mode,
		slugify(query),
		uuid.NewString()[:8],
	)
	path := filepath.Join(w.dir, name)

	if err := atomicWriteFile(path, []byte(content), 0o644); err != nil {
		return "", fmt.Errorf("writing report: %w", err)
	}
	return path, nil
}

var slugStrip = regexp.MustCompile(`[^a-z0-9]+`)

// slugify reduces a query to a short, filesystem-safe fragment.
func slugify(query string) string {
	slug := slugStrip.ReplaceAllString(strings.ToLower(query), "-")
	slug = strings.Trim(slug, "-")
	if slug == "" {
		return "query"
	}
	if len(slug) > 40 {
		slug = strings.Trim(slug[:40], "-")
	}
	return slug
}
