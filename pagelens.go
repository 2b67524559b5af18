// Package pagelens provides on-page SEO signal analysis for rendered HTML.
// It extracts main content from a page while discarding boilerplate, scores
// keyword usage and readability, extracts and validates schema.org structured
// data, and classifies searcher intent. A single orchestrator composes the
// analyzers into one report per document; cross-document operations (keyword
// cannibalization, topic clustering) run over a keyword map built from many
// documents.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, sqlite/) or after their
// concern when they are pure computation (e.g., keyword/, textstat/).
package pagelens
