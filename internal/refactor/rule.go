// Package refactor implements structural rewrite rules over the lossless
// syntax tree. A rule is a predicate plus a transform: Check decides cheaply
// whether a statement matches, Build constructs replacement statements whose
// formatting matches what a careful editor would write by hand, preserving
// every comment and the surrounding indentation style.
package refactor

import (
	"unforce/internal/source"
	"unforce/internal/syntax"
	"unforce/internal/token"
)

// RewriteContext carries the formatting facts a rule needs to re-indent its
// output: the file the statement came from, the file's indentation unit, and
// the exact indentation of the statement's own line.
type RewriteContext struct {
	File       *source.File
	Unit       IndentUnit
	BaseIndent []token.Trivia
}

// Rule is one rewrite rule. Check is a pure predicate returning nil on a
// match and a NotApplicableError otherwise. Build is infallible once Check
// has passed; it never mutates the input statement.
type Rule interface {
	// ID is the rule's stable identifier, used to select fixes.
	ID() string
	// Title is the human-readable action name shown next to findings.
	Title() string
	Check(s syntax.Stmt) error
	Build(s syntax.Stmt, ctx RewriteContext) []syntax.Stmt
}

// Registry holds the known rules in registration order.
type Registry struct {
	rules []Rule
}

// NewRegistry creates a registry over the given rules.
func NewRegistry(rules ...Rule) *Registry {
	return &Registry{rules: rules}
}

// DefaultRegistry returns a registry with all built-in rules.
func DefaultRegistry() *Registry {
	return NewRegistry(ForceTryRule{})
}

// Rules returns the registered rules in order.
func (r *Registry) Rules() []Rule {
	return r.rules
}

// Match returns the rules whose Check passes for the statement.
func (r *Registry) Match(s syntax.Stmt) []Rule {
	var out []Rule
	for _, rule := range r.rules {
		if rule.Check(s) == nil {
			out = append(out, rule)
		}
	}
	return out
}

// ContextFor derives the rewrite context for a statement in the given file.
func ContextFor(file *source.File, s syntax.Stmt) RewriteContext {
	return RewriteContext{
		File:       file,
		Unit:       InferIndentUnit(file),
		BaseIndent: LineIndentation(s.FirstToken()),
	}
}
