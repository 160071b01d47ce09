package scope

import "github.com/metamath-go/mmverify/mm/token"

// DisjointPair is an unordered pair of variables required to never share a
// substituted variable. It is stored canonically: X is always
// lexicographically less than Y, so {a,b} and {b,a} hash identically.
type DisjointPair struct {
	X, Y token.Token
}

func canonicalPair(a, b token.Token) DisjointPair {
	if a < b {
		return DisjointPair{a, b}
	}
	return DisjointPair{b, a}
}

// FloatingHyp is a $f declaration: var ranges over expressions whose
// typecode is Typecode.
type FloatingHyp struct {
	Var      token.Token
	Typecode token.Token
	Label    string
}

// EssentialHyp is an $e declaration: Expr is assumed in scope under Label.
type EssentialHyp struct {
	Expr  Expression
	Label string
}

// Frame is one lexical scope: the declarations introduced between a ${ and
// its matching $} (or the database's implicit root scope).
type Frame struct {
	consts   map[token.Token]bool
	vars     map[token.Token]bool
	disjoint map[DisjointPair]bool

	floating      []FloatingHyp
	floatingIndex map[token.Token]string // var -> label, within this frame only

	essential      []EssentialHyp
	essentialIndex map[string]string // Expression.key() -> label, within this frame only
}

func newFrame() *Frame {
	return &Frame{
		consts:        map[token.Token]bool{},
		vars:          map[token.Token]bool{},
		disjoint:      map[DisjointPair]bool{},
		floatingIndex: map[token.Token]string{},
		essentialIndex: map[string]string{},
	}
}
