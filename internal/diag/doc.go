// Package diag defines the diagnostic model shared by all phases of the
// rewriter.
//
// # Purpose
//
//   - Provide deterministic, serialisable data structures that capture
//     findings produced by the lexer, parser, and refactoring scan.
//   - Offer light-weight utilities (Reporter, Bag) that let producers emit
//     diagnostics without coupling to storage or formatting layers.
//   - Model rewrite suggestions as structured edits that the driver or CLI
//     can materialise and optionally apply.
//
// # Scope
//
// Package diag performs no formatting, IO, or CLI integration. Rendering
// lives in internal/diagfmt; orchestration and application of fixes lives in
// internal/fix and the driver layer.
//
// # Fix suggestions
//
// Fix represents a possible automated correction. Fixes are data-only;
// producers may attach a Thunk to defer edit construction, and consumers call
// MaterializeFixes to expand thunks deterministically. TextEdit spans are in
// source byte coordinates; OldText acts as an optional guard the fix engine
// checks before applying an edit.
package diag
