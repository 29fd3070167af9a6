// Package token defines the lexical vocabulary for the Swift-like subset
// understood by the rewriter, together with the trivia model that makes
// tokens lossless.
//
// Every token carries two ordered lists of trivia pieces: Leading (whitespace
// and comments between the previous token and this one, up to and including
// the indentation of the token's own line) and Trailing (whitespace and
// comments after the token, up to but not including the next newline).
// Rendering every token's leading trivia, text, and trailing trivia in order
// reproduces the original source byte-for-byte.
//
// Trivia pieces are compared by exact text when indentation prefixes are
// diffed, so the lexer keeps them in a canonical shape: one piece per run of
// spaces, one piece per tab, one piece per newline.
package token
