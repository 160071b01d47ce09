package subst

import (
	"reflect"
	"testing"

	"github.com/metamath-go/mmverify/mm/scope"
)

func TestApply_IdentityOnEmptySubst(t *testing.T) {
	expr := scope.Expression{"wff", "(", "p", "->", "q", ")"}
	got := Apply(expr, Map{})
	if !got.Equal(expr) {
		t.Errorf("Apply with empty subst = %v, want %v", got, expr)
	}
}

func TestApply_ExpandsVariables(t *testing.T) {
	expr := scope.Expression{"wff", "p"}
	m := Map{"p": scope.Expression{"(", "r", "->", "s", ")"}}
	got := Apply(expr, m)
	want := scope.Expression{"wff", "(", "r", "->", "s", ")"}
	if !got.Equal(want) {
		t.Errorf("Apply = %v, want %v", got, want)
	}
}

func TestApply_HomomorphicOverConcatenation(t *testing.T) {
	a := scope.Expression{"wff", "p"}
	b := scope.Expression{"->", "q"}
	m := Map{"p": {"x"}, "q": {"y"}}

	applyThenConcat := append(Apply(a, m), Apply(b, m)...)
	concatThenApply := Apply(append(append(scope.Expression{}, a...), b...), m)

	if !reflect.DeepEqual([]string(applyThenConcat), []string(concatThenApply)) {
		t.Errorf("Apply not homomorphic: %v vs %v", applyThenConcat, concatThenApply)
	}
}

func TestFindVars_OrderAndDedup(t *testing.T) {
	fs := scope.New()
	for _, c := range []string{"wff", "->"} {
		if err := fs.AddConst(c); err != nil {
			t.Fatal(err)
		}
	}
	for _, v := range []string{"p", "q"} {
		if err := fs.AddVar(v); err != nil {
			t.Fatal(err)
		}
	}
	expr := scope.Expression{"wff", "p", "->", "q", "->", "p"}
	got := FindVars(expr, fs)
	want := []string{"p", "q"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("FindVars = %v, want %v", got, want)
	}
}
