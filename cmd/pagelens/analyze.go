package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/pagelens/pagelens"
)

// Run executes the analyze command.
func (c *AnalyzeCmd) Run(deps *Dependencies) error {
	html, err := readInput(c.File)
	if err != nil {
		return err
	}

	report, err := deps.Analyzer.Analyze(deps.Ctx, &pagelens.AnalysisRequest{
		HTML:              html,
		URL:               c.URL,
		PrimaryKeyword:    c.Keyword,
		SecondaryKeywords: c.Secondary,
		Language:          c.Lang,
		PostType:          c.PostType,
	})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pagelens.ErrorMessage(err))
		return err
	}

	if c.DumpContent {
		fmt.Fprintln(deps.Stdout, deps.Markdown.ConvertBlocks(report.Content))
		return nil
	}

	if c.JSON {
		enc := json.NewEncoder(deps.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	}

	printSummary(deps.Stdout, report)
	return nil
}

// readInput loads HTML from a file path, or stdin when path is "-".
func readInput(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %q: %w", path, err)
	}
	return data, nil
}

// printSummary renders the human-readable report.
func printSummary(w io.Writer, report *pagelens.AnalysisReport) {
	fmt.Fprintf(w, "Title:       %s\n", report.Document.Title)
	fmt.Fprintf(w, "Language:    %s\n", report.Readability.Language)
	fmt.Fprintf(w, "Fingerprint: %s\n", report.Fingerprint)
	if report.Content.FallbackUsed {
		fmt.Fprintln(w, "Note: DOM parse failed, results come from regex recovery")
	}

	fmt.Fprintf(w, "\nKeyword %q\n", report.Primary.Keyword)
	fmt.Fprintf(w, "  occurrences:  %d (%s)\n", report.Primary.Occurrences, report.Primary.CountStatus)
	fmt.Fprintf(w, "  density:      %.2f%% (%s)\n", report.Primary.Density, report.Primary.DensityStatus)
	fmt.Fprintf(w, "  distribution: %.1f/10\n", report.Primary.Distribution)
	fmt.Fprintf(w, "  in title:     %v, in meta: %v, in headings: %v\n",
		report.Primary.InTitle, report.Primary.InMetaDesc, report.Primary.Headings.Present)
	fmt.Fprintf(w, "  sufficient:   %v\n", report.Primary.Sufficient)
	for _, secondary := range report.Secondaries {
		fmt.Fprintf(w, "  secondary %q: %d occurrences, %.2f%% density\n",
			secondary.Keyword, secondary.Occurrences, secondary.Density)
	}

	fmt.Fprintf(w, "\nReadability\n")
	fmt.Fprintf(w, "  words: %d, sentences: %d\n", report.Readability.WordCount, report.Readability.SentenceCount)
	if report.Readability.CJK {
		fmt.Fprintln(w, "  syllable-based formulas not applicable to this script")
	} else {
		fmt.Fprintf(w, "  flesch reading ease: %.1f (%s)\n",
			report.Readability.FleschReadingEase, report.Readability.FleschGrade)
	}
	fmt.Fprintf(w, "  passive voice: %.1f%%, transitions: %.1f%%\n",
		report.Readability.PassiveVoicePercent, report.Readability.TransitionWordPercent)

	fmt.Fprintf(w, "\nIntent: %s (satisfaction %.0f%%)\n", report.Intent.Intent, report.Intent.Satisfaction*100)

	fmt.Fprintf(w, "\nSchema entities: %d\n", len(report.Schemas))
	for _, s := range report.Schemas {
		status := "valid"
		if !s.Validation.Valid {
			status = "invalid"
		}
		fmt.Fprintf(w, "  %s (%s): %s\n", s.Entity.Type(), s.Entity.Source, status)
		for _, issue := range s.Validation.Issues {
			fmt.Fprintf(w, "    issue: %s\n", issue)
		}
		for _, warning := range s.Validation.Warnings {
			fmt.Fprintf(w, "    warning: %s\n", warning)
		}
	}
}
