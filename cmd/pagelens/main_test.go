package main_test

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	main "github.com/pagelens/pagelens/cmd/pagelens"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMain(t *testing.T) *main.Main {
	t.Helper()
	m := main.NewMain()
	m.DBPath = filepath.Join(t.TempDir(), "pagelens.db")
	return m
}

func TestMain_Run(t *testing.T) {
	t.Parallel()

	t.Run("no arguments prints help and errors", func(t *testing.T) {
		t.Parallel()

		stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
		err := newTestMain(t).Run(context.Background(), nil, stdout, stderr)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no command specified")
	})

	t.Run("help flag succeeds", func(t *testing.T) {
		t.Parallel()

		stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
		err := newTestMain(t).Run(context.Background(), []string{"--help"}, stdout, stderr)
		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "analyze")
		assert.Contains(t, stdout.String(), "audit")
	})

	t.Run("map add, list, audit, and remove round-trip", func(t *testing.T) {
		t.Parallel()

		m := newTestMain(t)
		ctx := context.Background()

		stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
		err := m.Run(ctx, []string{
			"map", "add", "1", "best coffee maker",
			"-s", "drip coffee maker", "-c", "coffee", "--title", "Makers 2025",
		}, stdout, stderr)
		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "Saved entry for document 1")

		stdout.Reset()
		err = m.Run(ctx, []string{
			"map", "add", "2", "best coffee maker", "--title", "Buying Guide",
		}, stdout, stderr)
		require.NoError(t, err)

		stdout.Reset()
		err = m.Run(ctx, []string{"map", "list"}, stdout, stderr)
		require.NoError(t, err)
		assert.Contains(t, stdout.String(), `1  "best coffee maker"`)
		assert.Contains(t, stdout.String(), `2  "best coffee maker"`)

		stdout.Reset()
		err = m.Run(ctx, []string{"audit"}, stdout, stderr)
		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "Audited 2 documents")
		assert.Contains(t, stdout.String(), "primary_keyword_conflict")

		stdout.Reset()
		err = m.Run(ctx, []string{"map", "remove", "2"}, stdout, stderr)
		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "Removed entry for document 2")

		stdout.Reset()
		err = m.Run(ctx, []string{"map", "list"}, stdout, stderr)
		require.NoError(t, err)
		assert.NotContains(t, stdout.String(), "Buying Guide")
	})

	t.Run("analyze runs the default pipeline", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html><html lang="en"><head><title>Drip Coffee</title></head>
<body><main><h1>Drip Coffee</h1>
<p>Drip coffee is a brewing method where hot water passes through ground coffee.</p>
</main></body></html>`
		path := writeHTMLFile(t, html)

		stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
		err := newTestMain(t).Run(context.Background(), []string{
			"analyze", path, "-k", "drip coffee",
		}, stdout, stderr)
		require.NoError(t, err)

		output := stdout.String()
		assert.Contains(t, output, "Title:       Drip Coffee")
		assert.Contains(t, output, `Keyword "drip coffee"`)
		assert.Contains(t, output, "Intent: informational")
	})

	t.Run("unknown command errors", func(t *testing.T) {
		t.Parallel()

		stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
		err := newTestMain(t).Run(context.Background(), []string{"bogus"}, stdout, stderr)
		require.Error(t, err)
	})
}
