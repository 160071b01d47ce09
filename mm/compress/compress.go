// Package compress implements the compressed-proof decoder (§4.5): it
// expands a "( L1 L2 ... Lk ) LETTERS" compressed proof into an ordinary
// sequence of labels.
package compress

import (
	"strings"

	"github.com/metamath-go/mmverify/mm/labels"
	"github.com/metamath-go/mmverify/mm/mmerr"
	"github.com/metamath-go/mmverify/mm/scope"
	"github.com/metamath-go/mmverify/mm/token"
)

// Decode expands a compressed proof for the assertion concluding in stat.
// proofToks[0] must be "(". The returned slice is the decompressed
// sequence of labels, in the order the proof checker should consume them.
func Decode(fs *scope.FrameStack, tbl *labels.Table, stat scope.Expression, proofToks []token.Token) ([]string, error) {
	af := scope.MakeAssertion(fs, stat)

	labelTable := make([]string, 0, len(af.MandHyps)+len(af.EssHyps))
	for _, h := range af.MandHyps {
		l, err := fs.LookupFloating(h.Var)
		if err != nil {
			return nil, mmerr.New(mmerr.MalformedProof, "no floating hypothesis for mandatory variable %q", h.Var)
		}
		labelTable = append(labelTable, l)
	}
	for _, h := range af.EssHyps {
		l, err := fs.LookupEssential(h)
		if err != nil {
			return nil, mmerr.New(mmerr.MalformedProof, "no essential hypothesis matching %v", h)
		}
		labelTable = append(labelTable, l)
	}

	parenIdx := -1
	for i, t := range proofToks {
		if t == ")" {
			parenIdx = i
			break
		}
	}
	if parenIdx < 0 {
		return nil, mmerr.New(mmerr.MalformedProof, "compressed proof missing closing )")
	}
	labelTable = append(labelTable, proofToks[1:parenIdx]...)
	labelEnd := len(labelTable)
	hypEndFinal := len(af.MandHyps) + len(af.EssHyps)

	var letters strings.Builder
	for _, t := range proofToks[parenIdx+1:] {
		letters.WriteString(t)
	}

	ints, err := decodeInts(letters.String())
	if err != nil {
		return nil, err
	}

	var out []int
	var subproofs [][]int
	var prevProofs [][]int

	for _, n := range ints {
		switch {
		case n == -1:
			if len(prevProofs) == 0 {
				return nil, mmerr.New(mmerr.MalformedProof, "Z with no preceding subproof")
			}
			subproofs = append(subproofs, prevProofs[len(prevProofs)-1])
		case n >= 0 && n < hypEndFinal:
			out = append(out, n)
			prevProofs = append(prevProofs, []int{n})
		case n >= hypEndFinal && n < labelEnd:
			out = append(out, n)
			entry, err := tbl.Lookup(labelTable[n])
			if err != nil {
				return nil, err
			}
			k := 0
			if entry.Kind == labels.Axiom || entry.Kind == labels.Theorem {
				k = len(entry.Frame.MandHyps) + len(entry.Frame.EssHyps)
			}
			if k == 0 {
				prevProofs = append(prevProofs, []int{n})
			} else {
				if len(prevProofs) < k {
					return nil, mmerr.New(mmerr.MalformedProof, "compressed proof stack underflow at step referencing %q", labelTable[n])
				}
				combined := make([]int, 0)
				for _, p := range prevProofs[len(prevProofs)-k:] {
					combined = append(combined, p...)
				}
				combined = append(combined, n)
				prevProofs = prevProofs[:len(prevProofs)-k]
				prevProofs = append(prevProofs, combined)
			}
		case n >= labelEnd:
			idx := n - labelEnd
			if idx < 0 || idx >= len(subproofs) {
				return nil, mmerr.New(mmerr.MalformedProof, "compressed proof subproof reference %d out of range", idx)
			}
			s := subproofs[idx]
			out = append(out, s...)
			prevProofs = append(prevProofs, s)
		default:
			return nil, mmerr.New(mmerr.MalformedProof, "compressed proof integer %d out of range", n)
		}
	}

	result := make([]string, len(out))
	for i, n := range out {
		result[i] = labelTable[n]
	}
	return result, nil
}

// decodeInts parses the base-20/base-5 letter encoding into the sequence
// of integers it represents, per §4.5 step 3.
func decodeInts(s string) ([]int, error) {
	var ints []int
	cur := 0
	for _, ch := range s {
		switch {
		case ch == 'Z':
			ints = append(ints, -1)
		case ch >= 'A' && ch <= 'T':
			cur = 20*cur + int(ch-'A') + 1
			ints = append(ints, cur-1)
			cur = 0
		case ch >= 'U' && ch <= 'Y':
			cur = 5*cur + int(ch-'U') + 1
		default:
			return nil, mmerr.New(mmerr.MalformedProof, "invalid character %q in compressed proof", ch)
		}
	}
	if cur != 0 {
		return nil, mmerr.New(mmerr.MalformedProof, "compressed proof ends mid-digit")
	}
	return ints, nil
}
