package main_test

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	main "github.com/openkassel/mensafeed/cmd/mensafeed"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain_Run_Help(t *testing.T) {
	t.Parallel()

	m := main.NewMain()
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), []string{"--help"}, &stdout, &stderr)

	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "mensafeed")
	assert.Contains(t, stdout.String(), "--url")
}

func TestMain_Run_UnknownFlag(t *testing.T) {
	t.Parallel()

	m := main.NewMain()
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), []string{"--no-such-flag"}, &stdout, &stderr)

	assert.Error(t, err)
}

// menuPage is a cut-down rendering of the production menu page: the plan
// lives in <main>, day blocks are h4 headings followed by a list of meals
// with h5 category headers.
const menuPage = `<html>
<head><title>Speiseplan Zentralmensa</title></head>
<body>
<nav>Startseite Speisepläne Kontakt</nav>
<main>
<p>Woche 12.5.2025 - 16.5.2025</p>
<h4>Montag, 12.5.</h4>
<ul>
<li><h5>Essen 1</h5><p>Eintopf mit Brot</p><p>2,95 € / 4,60 € / 5,50 €</p></li>
<li><h5>Suppe</h5><p>Linsensuppe</p><p>1,50 € / 2,00 €</p></li>
</ul>
<h4>Dienstag, 13.5.</h4>
<ul>
<li><h5>Essen 2</h5><p>Schnitzel mit Pommes</p><p>3,20 € / 4,80 € / 5,70 €</p></li>
</ul>
</main>
<footer>Studierendenwerk Kassel</footer>
</body>
</html>`

func TestMain_Run_EndToEnd(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(menuPage))
	}))
	defer server.Close()

	out := filepath.Join(t.TempDir(), "output", "feed.xml")

	m := main.NewMain()
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), []string{
		"--url", server.URL,
		"--out", out,
		"--canteen", "Zentralmensa",
		"--min-days", "2",
	}, &stdout, &stderr)

	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "feed written")

	feed, err := os.ReadFile(out)
	require.NoError(t, err)

	doc := string(feed)
	assert.Contains(t, doc, `<openmensa xmlns="http://openmensa.org/open-mensa-v2" version="2.1">`)
	assert.Contains(t, doc, `<name>Zentralmensa</name>`)
	assert.Contains(t, doc, `<day date="2025-05-12">`)
	assert.Contains(t, doc, `<day date="2025-05-13">`)
	assert.Contains(t, doc, `<category name="Hauptgericht">`)
	assert.Contains(t, doc, `<category name="Suppe">`)
	assert.Contains(t, doc, `<name>Eintopf mit Brot</name>`)
	assert.Contains(t, doc, `<price role="students">2.95</price>`)
	assert.Contains(t, doc, `<price role="others">5.70</price>`)
	assert.NotContains(t, doc, "Startseite")
}

func TestMain_Run_FetchFailure(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusServiceUnavailable)
	}))
	defer server.Close()

	out := filepath.Join(t.TempDir(), "feed.xml")

	m := main.NewMain()
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), []string{"--url", server.URL, "--out", out}, &stdout, &stderr)

	require.Error(t, err)
	assert.NoFileExists(t, out)
}
