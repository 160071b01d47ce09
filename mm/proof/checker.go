// Package proof implements the proof checker (§4.6): a stack machine that
// walks a label sequence, pushing hypothesis expressions and unifying
// axiom/theorem references against the top of the stack.
package proof

import (
	"github.com/metamath-go/mmverify/mm/compress"
	"github.com/metamath-go/mmverify/mm/labels"
	"github.com/metamath-go/mmverify/mm/mmerr"
	"github.com/metamath-go/mmverify/mm/scope"
	"github.com/metamath-go/mmverify/mm/subst"
	"github.com/metamath-go/mmverify/mm/token"
)

// Checker runs proofs against a frame stack and label table. It reads both
// but never mutates them — it is pure with respect to the database.
type Checker struct {
	fs  *scope.FrameStack
	tbl *labels.Table

	// StepCounter, if non-nil, is invoked once per proof step with the
	// label consumed at that step. It has no effect on verification and
	// defaults to nil (zero overhead when unset).
	StepCounter func(label string)
}

// New creates a Checker reading from fs and tbl.
func New(fs *scope.FrameStack, tbl *labels.Table) *Checker {
	return &Checker{fs: fs, tbl: tbl}
}

// Prove runs the proof checker for label's claimed conclusion stat against
// proofToks (compressed or not) and returns the derived expression. If
// stat is non-nil, the derived expression must equal it exactly
// (AssertionMismatch otherwise); Prove always returns the derived
// expression on success.
func (c *Checker) Prove(label string, stat scope.Expression, proofToks []token.Token) (scope.Expression, error) {
	steps := proofToks
	if len(proofToks) > 0 && proofToks[0] == "(" {
		decoded, err := compress.Decode(c.fs, c.tbl, stat, proofToks)
		if err != nil {
			return nil, err
		}
		steps = decoded
	}

	var stack []scope.Expression
	for _, step := range steps {
		if c.StepCounter != nil {
			c.StepCounter(step)
		}
		entry, err := c.tbl.Lookup(step)
		if err != nil {
			return nil, err
		}

		switch entry.Kind {
		case labels.Floating:
			// Reconstruct [typecode, variable] as a one-step expression;
			// the proof stack only ever holds full expressions.
			stack = append(stack, scope.Expression{entry.Floating.Typecode, entry.Floating.Var})
		case labels.Essential:
			stack = append(stack, entry.Essential)
		case labels.Axiom, labels.Theorem:
			newTop, err := c.apply(label, entry.Frame, stack)
			if err != nil {
				return nil, err
			}
			n := len(entry.Frame.MandHyps) + len(entry.Frame.EssHyps)
			stack = append(stack[:len(stack)-n], newTop)
		}
	}

	if len(stack) != 1 {
		return nil, mmerr.WithLabel(mmerr.StackMismatch, label, "stack has %d entries at end of proof, want 1", len(stack))
	}
	if stat != nil && !stack[0].Equal(stat) {
		return nil, mmerr.WithLabel(mmerr.AssertionMismatch, label, "derived %v does not match asserted %v", stack[0], stat)
	}
	return stack[0], nil
}

// apply unifies the top of stack against af's mandatory and essential
// hypotheses and returns the substituted conclusion. It does not mutate
// stack.
func (c *Checker) apply(label string, af scope.AssertionFrame, stack []scope.Expression) (scope.Expression, error) {
	n := len(af.MandHyps) + len(af.EssHyps)
	if len(stack) < n {
		return nil, mmerr.WithLabel(mmerr.StackUnderflow, label, "need %d stack entries, have %d", n, len(stack))
	}
	top := stack[len(stack)-n:]

	m := subst.Map{}
	for i, h := range af.MandHyps {
		entry := top[i]
		if len(entry) == 0 || entry[0] != h.Typecode {
			return nil, mmerr.WithLabel(mmerr.TypecodeMismatch, label,
				"stack entry %v does not match mandatory hypothesis (%s, %s)", entry, h.Typecode, h.Var)
		}
		m[h.Var] = entry[1:]
	}

	for pair := range af.DV {
		xVars := subst.FindVars(m[pair.X], c.fs)
		yVars := subst.FindVars(m[pair.Y], c.fs)
		for _, u := range xVars {
			for _, v := range yVars {
				if u == v || !c.fs.LookupDisjoint(u, v) {
					return nil, mmerr.WithLabel(mmerr.DisjointViolation, label, "%s, %s", u, v)
				}
			}
		}
	}

	for i, hyp := range af.EssHyps {
		entry := top[len(af.MandHyps)+i]
		want := subst.Apply(hyp, m)
		if !entry.Equal(want) {
			return nil, mmerr.WithLabel(mmerr.HypothesisMismatch, label,
				"stack entry %v does not match hypothesis %v", entry, want)
		}
	}

	return subst.Apply(af.Conclusion, m), nil
}
