package sqlite

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/pagelens/pagelens"
)

// Compile-time interface verification.
var _ pagelens.KeywordMapService = (*KeywordMapService)(nil)

// KeywordMapService implements pagelens.KeywordMapService using SQLite.
// Secondary keywords and categories are stored as JSON arrays.
type KeywordMapService struct {
	db *DB
}

// NewKeywordMapService creates a new KeywordMapService.
func NewKeywordMapService(db *DB) *KeywordMapService {
	return &KeywordMapService{db: db}
}

// SaveEntry inserts or replaces the keyword map entry for a document.
func (s *KeywordMapService) SaveEntry(ctx context.Context, entry *pagelens.KeywordMapEntry) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	secondaries, err := json.Marshal(emptyAsList(entry.SecondaryKeywords))
	if err != nil {
		return fmt.Errorf("failed to encode secondary keywords: %w", err)
	}
	categories, err := json.Marshal(emptyAsList(entry.Categories))
	if err != nil {
		return fmt.Errorf("failed to encode categories: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO keyword_map (document_id, title, url, primary_keyword, secondary_keywords, categories, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(document_id) DO UPDATE SET
			title = excluded.title,
			url = excluded.url,
			primary_keyword = excluded.primary_keyword,
			secondary_keywords = excluded.secondary_keywords,
			categories = excluded.categories,
			updated_at = excluded.updated_at
	`, entry.DocumentID, entry.Title, entry.URL, entry.PrimaryKeyword,
		string(secondaries), string(categories), time.Now().UTC().Format(time.RFC3339))

	return err
}

// FindEntries retrieves entries matching the filter, ordered by document ID.
func (s *KeywordMapService) FindEntries(ctx context.Context, filter pagelens.KeywordMapFilter) ([]*pagelens.KeywordMapEntry, error) {
	var query strings.Builder
	var args []any

	query.WriteString(`SELECT document_id, title, url, primary_keyword, secondary_keywords, categories FROM keyword_map WHERE 1=1`)

	if filter.DocumentID != nil {
		query.WriteString(" AND document_id = ?")
		args = append(args, *filter.DocumentID)
	}
	if filter.PrimaryKeyword != nil {
		query.WriteString(" AND primary_keyword = ?")
		args = append(args, *filter.PrimaryKeyword)
	}
	if filter.Category != nil {
		query.WriteString(" AND EXISTS (SELECT 1 FROM json_each(keyword_map.categories) WHERE json_each.value = ?)")
		args = append(args, *filter.Category)
	}

	query.WriteString(" ORDER BY document_id")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []*pagelens.KeywordMapEntry
	for rows.Next() {
		var entry pagelens.KeywordMapEntry
		var secondaries, categories string

		if err := rows.Scan(&entry.DocumentID, &entry.Title, &entry.URL, &entry.PrimaryKeyword,
			&secondaries, &categories); err != nil {
			return nil, err
		}

		if err := json.Unmarshal([]byte(secondaries), &entry.SecondaryKeywords); err != nil {
			return nil, fmt.Errorf("failed to decode secondary keywords: %w", err)
		}
		if err := json.Unmarshal([]byte(categories), &entry.Categories); err != nil {
			return nil, fmt.Errorf("failed to decode categories: %w", err)
		}

		entries = append(entries, &entry)
	}
	return entries, rows.Err()
}

// DeleteEntry removes the entry for a document.
// Returns ENOTFOUND if no entry exists.
func (s *KeywordMapService) DeleteEntry(ctx context.Context, documentID string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM keyword_map WHERE document_id = ?`, documentID)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return pagelens.Errorf(pagelens.ENOTFOUND, "keyword map entry not found")
	}
	return nil
}

// emptyAsList keeps nil slices encoding as [] rather than null.
func emptyAsList(list []string) []string {
	if list == nil {
		return []string{}
	}
	return list
}

// appendPagination appends LIMIT and OFFSET clauses if the values are > 0.
// SQLite rejects OFFSET without LIMIT, so an offset-only filter gets the
// unbounded LIMIT -1.
func appendPagination(query *strings.Builder, args *[]any, limit, offset int) {
	if limit > 0 {
		query.WriteString(" LIMIT ?")
		*args = append(*args, limit)
	} else if offset > 0 {
		query.WriteString(" LIMIT -1")
	}
	if offset > 0 {
		query.WriteString(" OFFSET ?")
		*args = append(*args, offset)
	}
}
