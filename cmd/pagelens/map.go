package main

import (
	"fmt"
	"strings"

	"github.com/pagelens/pagelens"
)

// Run executes the map add command.
func (c *MapAddCmd) Run(deps *Dependencies) error {
	entry := &pagelens.KeywordMapEntry{
		DocumentID:        c.DocumentID,
		Title:             c.Title,
		URL:               c.URL,
		PrimaryKeyword:    c.Primary,
		SecondaryKeywords: c.Secondary,
		Categories:        c.Category,
	}

	if err := deps.Keywords.SaveEntry(deps.Ctx, entry); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pagelens.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Saved entry for document %s (%q)\n", c.DocumentID, c.Primary)
	return nil
}

// Run executes the map list command.
func (c *MapListCmd) Run(deps *Dependencies) error {
	filter := pagelens.KeywordMapFilter{
		Limit:  c.Limit,
		Offset: c.Offset,
	}
	if c.Primary != "" {
		filter.PrimaryKeyword = &c.Primary
	}
	if c.Category != "" {
		filter.Category = &c.Category
	}

	entries, err := deps.Keywords.FindEntries(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pagelens.ErrorMessage(err))
		return err
	}

	if len(entries) == 0 {
		fmt.Fprintln(deps.Stdout, "No entries found. Use 'pagelens map add' to create one.")
		return nil
	}

	for _, entry := range entries {
		line := fmt.Sprintf("%s  %q", entry.DocumentID, entry.PrimaryKeyword)
		if len(entry.SecondaryKeywords) > 0 {
			line += "  +" + strings.Join(entry.SecondaryKeywords, ", +")
		}
		if len(entry.Categories) > 0 {
			line += "  [" + strings.Join(entry.Categories, ", ") + "]"
		}
		fmt.Fprintln(deps.Stdout, line)
	}

	return nil
}

// Run executes the map remove command.
func (c *MapRemoveCmd) Run(deps *Dependencies) error {
	if err := deps.Keywords.DeleteEntry(deps.Ctx, c.DocumentID); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pagelens.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Removed entry for document %s\n", c.DocumentID)
	return nil
}
