package labels

import (
	"testing"

	"github.com/metamath-go/mmverify/mm/mmerr"
	"github.com/metamath-go/mmverify/mm/scope"
)

func TestDeclare_WriteOnce(t *testing.T) {
	tbl := New()
	entry := Entry{Kind: Floating, Floating: FloatingPayload{Typecode: "wff", Var: "p"}}
	if err := tbl.Declare("wp", entry); err != nil {
		t.Fatalf("Declare: %v", err)
	}
	err := tbl.Declare("wp", entry)
	if !mmerr.Is(err, mmerr.DuplicateLabel) {
		t.Fatalf("got %v, want DuplicateLabel", err)
	}
}

func TestLookup_UnknownLabel(t *testing.T) {
	tbl := New()
	_, err := tbl.Lookup("nope")
	if !mmerr.Is(err, mmerr.UnknownLabel) {
		t.Fatalf("got %v, want UnknownLabel", err)
	}
}

func TestSnapshot_IsDefensiveCopy(t *testing.T) {
	tbl := New()
	must(t, tbl.Declare("wp", Entry{Kind: Essential, Essential: scope.Expression{"|-", "p"}}))

	snap := tbl.Snapshot()
	delete(snap, "wp")

	if tbl.Len() != 1 {
		t.Errorf("mutating snapshot affected table, Len() = %d, want 1", tbl.Len())
	}
}

func must(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
