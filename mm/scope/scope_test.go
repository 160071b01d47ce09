package scope

import (
	"testing"

	"github.com/metamath-go/mmverify/mm/mmerr"
)

func TestAddConst_DuplicateFails(t *testing.T) {
	fs := New()
	if err := fs.AddConst("wff"); err != nil {
		t.Fatalf("AddConst: %v", err)
	}
	err := fs.AddConst("wff")
	if !mmerr.Is(err, mmerr.DuplicateConst) {
		t.Fatalf("got %v, want DuplicateConst", err)
	}
}

func TestAddVar_ConflictsWithConst(t *testing.T) {
	fs := New()
	must(t, fs.AddConst("wff"))
	err := fs.AddVar("wff")
	if !mmerr.Is(err, mmerr.ConstVarConflict) {
		t.Fatalf("got %v, want ConstVarConflict", err)
	}
}

func TestDisjointPair_Canonical(t *testing.T) {
	fs := New()
	must(t, fs.AddVar("a"))
	must(t, fs.AddVar("b"))
	fs.AddDisjoint([]string{"a", "b"})
	if !fs.LookupDisjoint("a", "b") {
		t.Error("LookupDisjoint(a,b) = false, want true")
	}
	if !fs.LookupDisjoint("b", "a") {
		t.Error("LookupDisjoint(b,a) = false, want true")
	}
	top := fs.top()
	if len(top.disjoint) != 1 {
		t.Fatalf("expected exactly one canonical pair, got %d", len(top.disjoint))
	}
	for pair := range top.disjoint {
		if pair.X != "a" || pair.Y != "b" {
			t.Errorf("pair = (%s,%s), want (a,b)", pair.X, pair.Y)
		}
	}
}

func TestAddFloating_RequiresActiveVarAndConst(t *testing.T) {
	fs := New()
	err := fs.AddFloating("p", "wff", "wp")
	if !mmerr.Is(err, mmerr.UnknownVar) {
		t.Fatalf("got %v, want UnknownVar", err)
	}
	must(t, fs.AddVar("p"))
	err = fs.AddFloating("p", "wff", "wp")
	if !mmerr.Is(err, mmerr.UnknownConst) {
		t.Fatalf("got %v, want UnknownConst", err)
	}
	must(t, fs.AddConst("wff"))
	must(t, fs.AddFloating("p", "wff", "wp"))
	err = fs.AddFloating("p", "wff", "wp2")
	if !mmerr.Is(err, mmerr.DuplicateFloating) {
		t.Fatalf("got %v, want DuplicateFloating", err)
	}
}

func TestLookup_WalksOutward(t *testing.T) {
	fs := New()
	must(t, fs.AddConst("wff"))
	fs.Push()
	if !fs.LookupConst("wff") {
		t.Error("inner scope should see outer constant")
	}
	must(t, fs.AddVar("p"))
	fs.Pop()
	if fs.LookupVar("p") {
		t.Error("outer scope should not see popped inner variable")
	}
}

func TestMakeAssertion_MandatoryVarsAndOrder(t *testing.T) {
	fs := New()
	must(t, fs.AddConst("wff"))
	must(t, fs.AddConst("("))
	must(t, fs.AddConst(")"))
	must(t, fs.AddConst("->"))
	must(t, fs.AddVar("p"))
	must(t, fs.AddVar("q"))
	must(t, fs.AddVar("r"))
	must(t, fs.AddFloating("p", "wff", "wp"))
	must(t, fs.AddFloating("q", "wff", "wq"))
	must(t, fs.AddFloating("r", "wff", "wr")) // not mandatory: r never appears below

	stat := Expression{"wff", "(", "p", "->", "q", ")"}
	af := MakeAssertion(fs, stat)

	if len(af.MandHyps) != 2 {
		t.Fatalf("got %d mand hyps, want 2: %+v", len(af.MandHyps), af.MandHyps)
	}
	if af.MandHyps[0].Var != "p" || af.MandHyps[1].Var != "q" {
		t.Errorf("mand hyps out of order: %+v", af.MandHyps)
	}
	if len(af.EssHyps) != 0 {
		t.Errorf("expected no essential hypotheses, got %v", af.EssHyps)
	}
}

func TestMakeAssertion_EssentialHypsPullInVars(t *testing.T) {
	fs := New()
	must(t, fs.AddConst("wff"))
	must(t, fs.AddConst("|-"))
	must(t, fs.AddVar("p"))
	must(t, fs.AddFloating("p", "wff", "wp"))
	fs.AddEssential(Expression{"|-", "p"}, "min")

	af := MakeAssertion(fs, Expression{"|-", "p"})
	if len(af.MandHyps) != 1 || af.MandHyps[0].Var != "p" {
		t.Fatalf("expected mandatory p, got %+v", af.MandHyps)
	}
	if len(af.EssHyps) != 1 || !af.EssHyps[0].Equal(Expression{"|-", "p"}) {
		t.Fatalf("expected essential hyp |- p, got %v", af.EssHyps)
	}
}

func TestMakeAssertion_Deterministic(t *testing.T) {
	fs := New()
	must(t, fs.AddConst("wff"))
	must(t, fs.AddVar("p"))
	must(t, fs.AddFloating("p", "wff", "wp"))
	stat := Expression{"wff", "p"}

	a := MakeAssertion(fs, stat)
	b := MakeAssertion(fs, stat)
	if len(a.MandHyps) != len(b.MandHyps) || a.MandHyps[0] != b.MandHyps[0] {
		t.Error("MakeAssertion not deterministic across mand hyps")
	}
	if len(a.DV) != len(b.DV) {
		t.Error("MakeAssertion not deterministic across dv")
	}
}

func must(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
