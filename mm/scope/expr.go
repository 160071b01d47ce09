// Package scope implements the scoped declaration environment of a
// Metamath database: the frame stack (§4.2) and the assertion-frame
// builder (§4.3) that sits on top of it.
package scope

import (
	"strings"

	"github.com/metamath-go/mmverify/mm/token"
)

// Expression is an ordered sequence of tokens. By convention the first
// token is a constant naming the expression's typecode (e.g. "wff", "|-").
// Expressions are immutable once constructed; callers that need a modified
// copy build a new slice.
type Expression []token.Token

// Equal reports token-wise equality, the identity comparison the spec
// defines for expressions.
func (e Expression) Equal(o Expression) bool {
	if len(e) != len(o) {
		return false
	}
	for i := range e {
		if e[i] != o[i] {
			return false
		}
	}
	return true
}

// key returns a value suitable as a map key for Expression equality,
// used by the essential-hypothesis index.
func (e Expression) key() string {
	return strings.Join(e, "\x00")
}
