// Package labels implements the process-wide (per-session) label table:
// a write-once mapping from label strings to their declared kind and
// payload, as defined in §3.
package labels

import (
	"github.com/metamath-go/mmverify/mm/mmerr"
	"github.com/metamath-go/mmverify/mm/scope"
)

// Kind identifies what a label names.
type Kind int

const (
	Floating Kind = iota
	Essential
	Axiom
	Theorem
)

func (k Kind) String() string {
	switch k {
	case Floating:
		return "floating"
	case Essential:
		return "essential"
	case Axiom:
		return "axiom"
	case Theorem:
		return "theorem"
	default:
		return "unknown"
	}
}

// FloatingPayload is the payload of a Floating entry: [typecode, variable].
type FloatingPayload struct {
	Typecode string
	Var      string
}

// Entry is one label table record. Exactly one of the payload fields is
// meaningful, selected by Kind.
type Entry struct {
	Kind      Kind
	Floating  FloatingPayload      // valid iff Kind == Floating
	Essential scope.Expression     // valid iff Kind == Essential
	Frame     scope.AssertionFrame // valid iff Kind == Axiom || Kind == Theorem
}

// Table is the label table. Labels are write-once: Declare fails if label
// already has an entry. Table is not safe for concurrent use — a single
// database session is strictly single-threaded (§5).
type Table struct {
	entries map[string]Entry
}

// New returns an empty label table.
func New() *Table {
	return &Table{entries: map[string]Entry{}}
}

// Declare records label's entry. It fails with DuplicateLabel if label was
// already declared.
func (t *Table) Declare(label string, e Entry) error {
	if _, ok := t.entries[label]; ok {
		return mmerr.WithLabel(mmerr.DuplicateLabel, label, "label already declared")
	}
	t.entries[label] = e
	return nil
}

// Lookup returns label's entry, or UnknownLabel if none was declared.
func (t *Table) Lookup(label string) (Entry, error) {
	e, ok := t.entries[label]
	if !ok {
		return Entry{}, mmerr.WithLabel(mmerr.UnknownLabel, label, "label not declared")
	}
	return e, nil
}

// Snapshot returns a defensive copy of the current label table, for
// introspection (e.g. a "dump" CLI command or tests).
func (t *Table) Snapshot() map[string]Entry {
	out := make(map[string]Entry, len(t.entries))
	for k, v := range t.entries {
		out[k] = v
	}
	return out
}

// Len returns the number of declared labels.
func (t *Table) Len() int {
	return len(t.entries)
}
