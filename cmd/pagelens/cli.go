package main

import (
	"context"
	"io"

	"github.com/pagelens/pagelens"
	"github.com/pagelens/pagelens/htmltomarkdown"
	"github.com/pagelens/pagelens/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	DB     *sqlite.DB

	Analyzer pagelens.Analyzer
	Keywords pagelens.KeywordMapService
	Markdown *htmltomarkdown.Converter
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Analyze AnalyzeCmd `cmd:"" help:"Analyze a page's HTML for on-page SEO signals"`
	Map     MapCmd     `cmd:"" help:"Manage the site keyword map"`
	Audit   AuditCmd   `cmd:"" help:"Detect keyword cannibalization across the keyword map"`

	Verbose bool `short:"v" help:"Log analysis operations"`
}

// AnalyzeCmd is the "analyze" subcommand.
type AnalyzeCmd struct {
	File        string   `arg:"" help:"HTML file to analyze ('-' for stdin)"`
	Keyword     string   `short:"k" required:"" help:"Primary keyword"`
	Secondary   []string `short:"s" help:"Secondary keyword (repeatable)"`
	URL         string   `help:"Page URL for the report"`
	Lang        string   `help:"Language tag override (e.g. en, de, ja)"`
	PostType    string   `default:"post" help:"Post type (post, page, product, landing)"`
	Extractor   string   `default:"goquery" enum:"goquery,readability,trafilatura" help:"Content extraction strategy"`
	JSON        bool     `help:"Emit the full report as JSON"`
	DumpContent bool     `help:"Print the extracted content as Markdown and exit"`
}

// MapCmd groups the keyword map subcommands.
type MapCmd struct {
	Add    MapAddCmd    `cmd:"" help:"Add or replace a keyword map entry"`
	List   MapListCmd   `cmd:"" help:"List keyword map entries"`
	Remove MapRemoveCmd `cmd:"" help:"Remove a keyword map entry"`
}

// MapAddCmd is the "map add" subcommand.
type MapAddCmd struct {
	DocumentID string   `arg:"" help:"Document identifier"`
	Primary    string   `arg:"" help:"Primary keyword"`
	Secondary  []string `short:"s" help:"Secondary keyword (repeatable)"`
	Category   []string `short:"c" help:"Category (repeatable)"`
	Title      string   `help:"Document title"`
	URL        string   `help:"Document URL"`
}

// MapListCmd is the "map list" subcommand.
type MapListCmd struct {
	Primary  string `help:"Filter by primary keyword"`
	Category string `help:"Filter by category"`
	Limit    int    `help:"Maximum entries to list"`
	Offset   int    `help:"Entries to skip"`
}

// MapRemoveCmd is the "map remove" subcommand.
type MapRemoveCmd struct {
	DocumentID string `arg:"" help:"Document identifier"`
}

// AuditCmd is the "audit" subcommand.
type AuditCmd struct {
	Threshold float64 `default:"70" help:"Similarity threshold for competing keywords (0-100)"`
	JSON      bool    `help:"Emit the audit report as JSON"`
}
