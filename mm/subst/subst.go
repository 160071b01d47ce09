// Package subst implements the substitution engine (§4.4): applying a
// token→expression map to an expression, and extracting the variables
// that occur in an expression.
package subst

import "github.com/metamath-go/mmverify/mm/scope"

// Map is a substitution: dom(Map) is expected to contain only variables,
// never constants. Apply does not enforce this; the caller's construction
// of Map guarantees it (see mm/proof, which builds one per axiom/theorem
// step, keyed by the variables of its mandatory hypotheses).
type Map map[string]scope.Expression

// Apply produces a new expression by replacing each variable token in expr
// with its mapped expression, copying constants unchanged. It is the
// identity when subst is empty, and homomorphic over concatenation.
func Apply(expr scope.Expression, subst Map) scope.Expression {
	result := make(scope.Expression, 0, len(expr))
	for _, tok := range expr {
		if repl, ok := subst[tok]; ok {
			result = append(result, repl...)
		} else {
			result = append(result, tok)
		}
	}
	return result
}

// FindVars returns the active variables appearing in expr, in order of
// first occurrence, de-duplicated.
func FindVars(expr scope.Expression, fs *scope.FrameStack) []string {
	seen := map[string]bool{}
	var vars []string
	for _, tok := range expr {
		if seen[tok] {
			continue
		}
		if fs.LookupVar(tok) {
			seen[tok] = true
			vars = append(vars, tok)
		}
	}
	return vars
}
