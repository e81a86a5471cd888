// Package cause locates the exact nested component of a value that
// violates a nested type specification and renders a human-readable
// explanation. It runs strictly on the failure path of a validation
// call: synchronous, no I/O, no shared mutable state beyond the
// classification cache.
package cause

import (
	"attest/internal/classify"
	"attest/internal/conf"
	"attest/internal/spec"
)

// indentUnit is appended to a context's indent on every descent that
// nests an explanation.
const indentUnit = "  "

// Context is one stack frame of the diagnosis recursion, reified as a
// value. Contexts are never mutated after construction; descent goes
// through the With methods, which copy, so sibling branches of the
// recursion cannot observe each other's overrides.
type Context struct {
	subject any
	raw     spec.Raw
	cls     *classify.Classified
	origin  string
	label   string
	indent  string
	seed    *uint64
	cfg     *conf.Config
}

// New builds the top-level context for one diagnosis. The raw
// specification is normalized and classified here, so no diagnoser
// ever sees an unclassified specification. origin names the callable
// the check belongs to; label is the human-readable prefix ("parameter
// #1 of f"); seed, when non-nil, replays the sample the compiled check
// drew.
func New(subject any, raw spec.Raw, origin, label string, seed *uint64, cfg *conf.Config) (*Context, error) {
	if cfg == nil {
		cfg = conf.Default()
	}
	normalized, err := spec.Normalize(raw, label)
	if err != nil {
		return nil, err
	}
	cls, err := classify.Classify(normalized)
	if err != nil {
		return nil, err
	}
	return &Context{
		subject: subject,
		raw:     normalized,
		cls:     cls,
		origin:  origin,
		label:   label,
		seed:    seed,
		cfg:     cfg,
	}, nil
}

// Subject returns the value under diagnosis.
func (c *Context) Subject() any { return c.subject }

// Origin returns the callable label the diagnosis belongs to.
func (c *Context) Origin() string { return c.origin }

// Label returns the human-readable prefix for error text.
func (c *Context) Label() string { return c.label }

// Indent returns the leading whitespace for nested explanation lines.
func (c *Context) Indent() string { return c.indent }

// Seed returns the replay seed, or nil when checking was exhaustive.
func (c *Context) Seed() *uint64 { return c.seed }

// Config returns the read-only engine settings.
func (c *Context) Config() *conf.Config { return c.cfg }

// WithSubject derives a context identical to c except for the subject.
func (c *Context) WithSubject(subject any) *Context {
	d := *c
	d.subject = subject
	return &d
}

// WithSpec derives a context for a child specification. The child is
// normalized and classified exactly like a top-level specification.
func (c *Context) WithSpec(raw spec.Raw) (*Context, error) {
	normalized, err := spec.Normalize(raw, c.label)
	if err != nil {
		return nil, err
	}
	cls, err := classify.Classify(normalized)
	if err != nil {
		return nil, err
	}
	d := *c
	d.raw = normalized
	d.cls = cls
	return &d, nil
}

// WithLabel derives a context with a new human-readable prefix.
func (c *Context) WithLabel(label string) *Context {
	d := *c
	d.label = label
	return &d
}

// WithIndent derives a context with the given indentation.
func (c *Context) WithIndent(indent string) *Context {
	d := *c
	d.indent = indent
	return &d
}

// descend derives the context used for a nested element check: new
// subject, child specification, one more indent unit.
func (c *Context) descend(subject any, child spec.Raw) (*Context, error) {
	d, err := c.WithSpec(child)
	if err != nil {
		return nil, err
	}
	return d.WithSubject(subject).WithIndent(c.indent + indentUnit), nil
}
