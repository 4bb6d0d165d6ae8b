package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/google/uuid"
	"github.com/openkassel/mensafeed"
	"github.com/openkassel/mensafeed/etree"
	"github.com/openkassel/mensafeed/fs"
	"github.com/openkassel/mensafeed/goquery"
	"github.com/openkassel/mensafeed/htmltomarkdown"
	mensahttp "github.com/openkassel/mensafeed/http"
	mensaslog "github.com/openkassel/mensafeed/slog"
	"github.com/openkassel/mensafeed/trafilatura"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCode(err))
	}
}

// exitCode maps application error codes to the process exit codes that
// feed consumers key on: 2 fetch failure, 3 nothing parsed, 4 partial
// week (feed already written).
func exitCode(err error) int {
	switch mensafeed.ErrorCode(err) {
	case mensafeed.EUNAVAILABLE:
		return 2
	case mensafeed.ENOTFOUND:
		return 3
	case mensafeed.EPARTIAL:
		return 4
	}
	return 1
}

// Main represents the program.
type Main struct{}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("mensafeed"),
		kong.Description("Generate an OpenMensa v2 feed from the Zentralmensa menu page"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags
	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	_, err = parser.Parse(args)
	if err != nil {
		return err
	}

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	logger = logger.With("run_id", uuid.NewString())

	timeout := cli.Timeout
	if timeout <= 0 {
		timeout = mensahttp.DefaultFetchTimeout
	}

	// Wire dependencies
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
		Now:    time.Now,

		Fetcher: mensaslog.NewLoggingFetcher(
			mensahttp.NewFetcher(mensahttp.WithTimeout(timeout)),
			logger,
		),
		Extractors: []mensafeed.Extractor{
			goquery.NewExtractor(),
			trafilatura.NewExtractor(),
		},
		Converter: htmltomarkdown.NewConverter(),
		Builder:   mensaslog.NewLoggingBuilder(etree.NewBuilder(), logger),
		Writer:    fs.NewWriter(),
	}

	cmd := &GenerateCmd{
		URL:     cli.URL,
		Out:     cli.Out,
		Canteen: cli.Canteen,
		MinDays: cli.MinDays,
	}

	return cmd.Run(deps)
}

// CLI defines the command-line interface structure for Kong. The defaults
// match the production deployment; there is no other configuration
// surface and no environment variables are consumed.
type CLI struct {
	URL     string        `default:"https://www.studierendenwerk-kassel.de/speiseplaene/zentralmensa-arnold-bode-strasse" help:"Menu page URL"`
	Out     string        `default:"output/feed.xml" help:"Feed output path"`
	Canteen string        `default:"Zentralmensa Arnold-Bode-Straße (Studierendenwerk Kassel)" help:"Canteen display name"`
	Timeout time.Duration `short:"t" default:"15s" help:"Fetch timeout"`
	MinDays int           `default:"4" help:"Dated days required for a full-week feed"`
	Verbose bool          `short:"v" help:"Enable debug logging"`
}
