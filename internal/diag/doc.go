// Package diag defines the diagnostic model shared by the lexer, the parser,
// and the driver.
//
// Diagnostic is the central record: a Severity, a stable numeric Code, a
// human-oriented Message, the Primary source span, and optional Notes with
// secondary spans. Producers emit through the Reporter interface so they stay
// decoupled from storage; BagReporter aggregates into a bounded Bag that
// supports sorting and deduplication for deterministic CLI output.
//
// The package performs no formatting or IO. Rendering lives in
// internal/diagfmt; collection per file lives in internal/driver.
package diag
