// Package slog provides logging decorators for the pagelens services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/pagelens/pagelens"
)

// Ensure LoggingAnalyzer implements pagelens.Analyzer.
var _ pagelens.Analyzer = (*LoggingAnalyzer)(nil)

// LoggingAnalyzer wraps an Analyzer with operation logging.
type LoggingAnalyzer struct {
	next   pagelens.Analyzer
	logger *slog.Logger
}

// NewLoggingAnalyzer creates a new LoggingAnalyzer.
func NewLoggingAnalyzer(next pagelens.Analyzer, logger *slog.Logger) *LoggingAnalyzer {
	return &LoggingAnalyzer{next: next, logger: logger}
}

// Analyze delegates to the wrapped analyzer and logs the operation.
func (a *LoggingAnalyzer) Analyze(ctx context.Context, req *pagelens.AnalysisRequest) (report *pagelens.AnalysisReport, err error) {
	defer func(begin time.Time) {
		attrs := []any{
			"url", req.URL,
			"keyword", req.PrimaryKeyword,
			"bytes", len(req.HTML),
			"duration", time.Since(begin),
			"err", err,
		}
		if report != nil {
			attrs = append(attrs,
				"fingerprint", report.Fingerprint,
				"schemas", len(report.Schemas),
				"fallback", report.Content.FallbackUsed,
			)
		}
		a.logger.Info("analyze", attrs...)
	}(time.Now())
	return a.next.Analyze(ctx, req)
}

// AuditSite delegates to the wrapped analyzer and logs the operation.
func (a *LoggingAnalyzer) AuditSite(ctx context.Context, entries []*pagelens.KeywordMapEntry) (report *pagelens.SiteAuditReport, err error) {
	defer func(begin time.Time) {
		attrs := []any{
			"entries", len(entries),
			"duration", time.Since(begin),
			"err", err,
		}
		if report != nil {
			attrs = append(attrs,
				"issues", len(report.Issues),
				"clusters", len(report.Clusters),
			)
		}
		a.logger.Info("site audit", attrs...)
	}(time.Now())
	return a.next.AuditSite(ctx, entries)
}
