package scope

import "github.com/metamath-go/mmverify/mm/token"

// MandHyp is a mandatory floating hypothesis: variable V ranges over
// expressions of typecode Typecode.
type MandHyp struct {
	Typecode token.Token
	Var      token.Token
}

// AssertionFrame is the computed "frame" of an axiom or theorem: the
// mandatory hypotheses and disjoint-variable constraints a proof of its
// conclusion must discharge, per §4.3.
type AssertionFrame struct {
	DV         map[DisjointPair]bool
	MandHyps   []MandHyp
	EssHyps    []Expression
	Conclusion Expression
}

// MakeAssertion computes the assertion-frame for conclusion stat under the
// current frame stack. It is a pure function of (fs, stat): running it
// twice on the same inputs yields identical results.
func MakeAssertion(fs *FrameStack, stat Expression) AssertionFrame {
	// 1. Collect every essential hypothesis in scope, outermost to
	// innermost, preserving declaration order.
	var essHyps []Expression
	for _, fr := range fs.frames {
		for _, h := range fr.essential {
			essHyps = append(essHyps, h.Expr)
		}
	}

	// 2. mand_vars: active variables appearing in stat or any essential
	// hypothesis.
	mandVars := map[token.Token]bool{}
	collect := func(expr Expression) {
		for _, tok := range expr {
			if fs.LookupVar(tok) {
				mandVars[tok] = true
			}
		}
	}
	for _, h := range essHyps {
		collect(h)
	}
	collect(stat)

	// 3. dv: disjoint pairs from any frame whose both elements are
	// mandatory variables.
	dv := map[DisjointPair]bool{}
	for _, fr := range fs.frames {
		for pair := range fr.disjoint {
			if mandVars[pair.X] && mandVars[pair.Y] {
				dv[pair] = true
			}
		}
	}

	// 4. mand_hyps: walk frames innermost to outermost; within each frame
	// walk its floating list in reverse; emit each not-yet-emitted
	// mandatory (kind, var) by prepending. This reconstructs the original
	// declaration order.
	emitted := map[token.Token]bool{}
	var mandHyps []MandHyp
	for i := len(fs.frames) - 1; i >= 0; i-- {
		fr := fs.frames[i]
		for j := len(fr.floating) - 1; j >= 0; j-- {
			h := fr.floating[j]
			if !mandVars[h.Var] || emitted[h.Var] {
				continue
			}
			emitted[h.Var] = true
			mandHyps = append([]MandHyp{{Typecode: h.Typecode, Var: h.Var}}, mandHyps...)
		}
	}

	return AssertionFrame{
		DV:         dv,
		MandHyps:   mandHyps,
		EssHyps:    essHyps,
		Conclusion: stat,
	}
}
