package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/openkassel/mensafeed"
	"github.com/openkassel/mensafeed/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Writer implements mensafeed.FeedWriter at compile time.
var _ mensafeed.FeedWriter = (*fs.Writer)(nil)

func TestWriter_WriteFeed(t *testing.T) {
	t.Parallel()

	t.Run("writes the document to the given path", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := filepath.Join(dir, "feed.xml")

		writer := fs.NewWriter()
		err := writer.WriteFeed(context.Background(), path, "<openmensa/>")
		require.NoError(t, err)

		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "<openmensa/>", string(content))
	})

	t.Run("creates missing parent directories", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := filepath.Join(dir, "output", "feeds", "feed.xml")

		writer := fs.NewWriter()
		err := writer.WriteFeed(context.Background(), path, "<openmensa/>")
		require.NoError(t, err)

		assert.FileExists(t, path)
	})

	t.Run("overwrites an existing feed", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := filepath.Join(dir, "feed.xml")
		require.NoError(t, os.WriteFile(path, []byte("alt"), 0644))

		writer := fs.NewWriter()
		err := writer.WriteFeed(context.Background(), path, "neu")
		require.NoError(t, err)

		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "neu", string(content))
	})

	t.Run("rejects empty path", func(t *testing.T) {
		t.Parallel()

		writer := fs.NewWriter()
		err := writer.WriteFeed(context.Background(), "", "inhalt")

		require.Error(t, err)
		assert.Equal(t, mensafeed.EINVALID, mensafeed.ErrorCode(err))
	})

	t.Run("respects cancelled context", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		writer := fs.NewWriter()
		err := writer.WriteFeed(ctx, filepath.Join(t.TempDir(), "feed.xml"), "inhalt")

		require.Error(t, err)
	})
}
