// Package diag defines the diagnostic model shared by the tokenizer, the
// driver and the CLI.
//
// # Purpose
//
//   - Provide deterministic, serialisable data structures that capture findings
//     produced while reading and tokenizing source files.
//   - Offer light-weight utilities (Reporter, Bag) that let producers emit
//     diagnostics without coupling to concrete storage or formatting layers.
//
// # Scope
//
// Package diag does not perform any formatting, IO, CLI integration, or
// interactive behaviour. Rendering responsibilities live in internal/diagfmt.
//
// # Data model
//
// Diagnostic is the central record. It contains:
//
//   - Severity – tri-level enum (Info, Warning, Error) defined in severity.go.
//   - Code – compact numeric identifier (see codes.go) with stable string
//     form: E001..E007 for lexical errors, IOxxx for file access, OBSxxx for
//     observability output.
//   - Message – human oriented text; keep it short and actionable.
//   - Primary span – the canonical source.Span pointing to the issue.
//   - Label – short text rendered under the primary span.
//   - Notes – advisory lines rendered after the source snippet.
//
// Notes should be used sparingly: each note must add new context rather than
// repeating the diagnostic message.
//
// # Emitting diagnostics
//
// Producers depend only on the Reporter interface. The lexer builds every
// diagnostic through ReportError(...).WithLabel(...).WithNote(...).Emit().
// BagReporter aggregates diagnostics into a Bag, which supports sorting,
// deduplication and filtering; MultiReporter fans out, DedupReporter drops
// repeats.
//
// # Consumers
//
//   - internal/diagfmt: renders Diagnostics into pretty/json/short formats.
//   - internal/driver: collects one bag per file and merges them for the CLI.
package diag
