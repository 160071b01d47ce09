package mmerr

// Kind identifies the category of a VerificationError. Codes are grouped by
// the phase that raises them, the same way the teacher compiler groups
// E0xx/E1xx/E2xx by lexer/parser/typechecker.
type Kind int

const (
	// Structural/parse errors (E0xx) — raised by mm/token, mm/compress and
	// mm/session.
	MalformedInclusion Kind = iota
	MalformedStatement
	MalformedProof
	UnknownDirective
	StrayLabel

	// Declaration errors (E1xx) — raised by mm/scope (DuplicateLabel by
	// mm/labels).
	DuplicateConst
	DuplicateVar
	ConstVarConflict
	UnknownConst
	UnknownVar
	DuplicateFloating
	DuplicateLabel

	// Proof errors (E2xx) — raised by mm/proof (UnknownLabel by mm/labels).
	StackUnderflow
	StackMismatch
	TypecodeMismatch
	HypothesisMismatch
	DisjointViolation
	AssertionMismatch
	UnknownLabel

	// Internal (E9xx) — surfaces only through a caller that expected a hit.
	NotFound
)

var codes = map[Kind]string{
	MalformedInclusion: "E001",
	MalformedStatement: "E002",
	MalformedProof:     "E003",
	UnknownDirective:   "E004",
	StrayLabel:         "E005",

	DuplicateConst:    "E100",
	DuplicateVar:      "E101",
	ConstVarConflict:  "E102",
	UnknownConst:      "E103",
	UnknownVar:        "E104",
	DuplicateFloating: "E105",
	DuplicateLabel:    "E106",

	StackUnderflow:     "E200",
	StackMismatch:      "E201",
	TypecodeMismatch:   "E202",
	HypothesisMismatch: "E203",
	DisjointViolation:  "E204",
	AssertionMismatch:  "E205",
	UnknownLabel:       "E206",

	NotFound: "E900",
}

var names = map[Kind]string{
	MalformedInclusion: "MalformedInclusion",
	MalformedStatement: "MalformedStatement",
	MalformedProof:     "MalformedProof",
	UnknownDirective:   "UnknownDirective",
	StrayLabel:         "StrayLabel",

	DuplicateConst:    "DuplicateConst",
	DuplicateVar:      "DuplicateVar",
	ConstVarConflict:  "ConstVarConflict",
	UnknownConst:      "UnknownConst",
	UnknownVar:        "UnknownVar",
	DuplicateFloating: "DuplicateFloating",
	DuplicateLabel:    "DuplicateLabel",

	StackUnderflow:     "StackUnderflow",
	StackMismatch:      "StackMismatch",
	TypecodeMismatch:   "TypecodeMismatch",
	HypothesisMismatch: "HypothesisMismatch",
	DisjointViolation:  "DisjointViolation",
	AssertionMismatch:  "AssertionMismatch",
	UnknownLabel:       "UnknownLabel",

	NotFound: "NotFound",
}

// Code returns the stable phase-grouped string code for k, e.g. "E204".
func (k Kind) Code() string {
	if c, ok := codes[k]; ok {
		return c
	}
	return "E999"
}

// String returns the symbolic name of k, e.g. "DisjointViolation".
func (k Kind) String() string {
	if n, ok := names[k]; ok {
		return n
	}
	return "Unknown"
}
