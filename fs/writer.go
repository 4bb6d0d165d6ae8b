// Package fs provides file-based output for the rendered feed.
package fs

import (
	"context"
	"os"
	"path/filepath"

	"github.com/openkassel/mensafeed"
)

// Ensure Writer implements mensafeed.FeedWriter at compile time.
var _ mensafeed.FeedWriter = (*Writer)(nil)

// Writer writes feed documents to the local filesystem.
type Writer struct{}

// NewWriter creates a new Writer.
func NewWriter() *Writer {
	return &Writer{}
}

// WriteFeed writes the document to path, creating the containing
// directory if it does not exist.
func (w *Writer) WriteFeed(ctx context.Context, path string, document string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if path == "" {
		return mensafeed.Errorf(mensafeed.EINVALID, "output path required")
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return mensafeed.Errorf(mensafeed.EINTERNAL, "creating %s: %v", dir, err)
	}

	if err := os.WriteFile(path, []byte(document), 0644); err != nil {
		return mensafeed.Errorf(mensafeed.EINTERNAL, "writing %s: %v", path, err)
	}
	return nil
}
