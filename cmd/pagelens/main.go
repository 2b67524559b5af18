package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"

	"github.com/pagelens/pagelens"
	"github.com/pagelens/pagelens/analyze"
	"github.com/pagelens/pagelens/htmltomarkdown"
	"github.com/pagelens/pagelens/keyword"
	"github.com/pagelens/pagelens/readability"
	pageslog "github.com/pagelens/pagelens/slog"
	"github.com/pagelens/pagelens/sqlite"
	"github.com/pagelens/pagelens/trafilatura"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Services for end-to-end testing.
	KeywordMap pagelens.KeywordMapService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("pagelens"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'pagelens --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// The keyword map lives in SQLite; the analyze command itself needs no
	// database, so only map and audit open one.
	if cmd == "map" || cmd == "audit" {
		m.DB = sqlite.NewDB(m.DBPath)
		if err := m.DB.Open(); err != nil {
			fmt.Fprintf(stderr, "Hint: Set PAGELENS_DB to use a different database path\n")
			return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
		}
		defer m.Close()

		m.KeywordMap = sqlite.NewKeywordMapService(m.DB)
		deps.DB = m.DB
		deps.Keywords = m.KeywordMap
	}

	analyzer := analyze.NewDefault()
	switch cli.Analyze.Extractor {
	case "readability":
		analyzer.Extractor = readability.NewExtractor()
	case "trafilatura":
		analyzer.Extractor = trafilatura.NewExtractor()
	}
	if cmd == "audit" {
		analyzer.Detector = keyword.NewDetector(
			keyword.WithSimilarityThreshold(cli.Audit.Threshold),
		)
	}

	deps.Analyzer = analyzer
	if cli.Verbose {
		logger := slog.New(slog.NewTextHandler(stderr, nil))
		deps.Analyzer = pageslog.NewLoggingAnalyzer(analyzer, logger)
	}
	deps.Markdown = htmltomarkdown.NewConverter()

	return kongCtx.Run(deps)
}

func defaultDBPath() string {
	if path := os.Getenv("PAGELENS_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "pagelens.db"
	}
	dir := filepath.Join(home, ".pagelens")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "pagelens.db")
}
