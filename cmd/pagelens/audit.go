package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/pagelens/pagelens"
)

// Run executes the audit command.
func (c *AuditCmd) Run(deps *Dependencies) error {
	entries, err := deps.Keywords.FindEntries(deps.Ctx, pagelens.KeywordMapFilter{})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pagelens.ErrorMessage(err))
		return err
	}

	if len(entries) == 0 {
		fmt.Fprintln(deps.Stdout, "Keyword map is empty. Use 'pagelens map add' to register documents.")
		return nil
	}

	report, err := deps.Analyzer.AuditSite(deps.Ctx, entries)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pagelens.ErrorMessage(err))
		return err
	}

	if c.JSON {
		enc := json.NewEncoder(deps.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	}

	fmt.Fprintf(deps.Stdout, "Audited %d documents: %d unique primary keywords, %d unique keywords\n",
		report.Entries, report.UniquePrimary, report.UniqueKeywords)

	if len(report.Issues) == 0 {
		fmt.Fprintln(deps.Stdout, "No cannibalization issues found.")
	}
	for _, issue := range report.Issues {
		switch issue.Type {
		case pagelens.IssueSimilarKeywords:
			fmt.Fprintf(deps.Stdout, "[%s] %s: %q and %q (similarity %.0f)\n",
				issue.Severity, issue.Type, issue.Keywords[0], issue.Keywords[1], issue.Similarity)
		default:
			fmt.Fprintf(deps.Stdout, "[%s] %s: %q used by %d documents\n",
				issue.Severity, issue.Type, issue.Keyword, len(issue.Documents))
		}
		for _, doc := range issue.Documents {
			fmt.Fprintf(deps.Stdout, "    %s  %s\n", doc.DocumentID, doc.Title)
		}
	}

	for _, cluster := range report.Clusters {
		ids := make([]string, len(cluster.Documents))
		for i, doc := range cluster.Documents {
			ids[i] = doc.DocumentID
		}
		fmt.Fprintf(deps.Stdout, "cluster %q: documents %s\n", cluster.Topic, strings.Join(ids, ", "))
	}

	return nil
}
