package fields_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-modelform/pkg/fields"
)

func TestSet_PreservesInsertionOrder(t *testing.T) {
	set := fields.NewSet()
	for _, name := range []string{"zeta", "alpha", "mid"} {
		if !set.Add(fields.Descriptor{Name: name, Kind: fields.KindText}) {
			t.Fatalf("add %q failed", name)
		}
	}
	if diff := cmp.Diff([]string{"zeta", "alpha", "mid"}, set.Names()); diff != "" {
		t.Fatalf("order mismatch (-want +got):\n%s", diff)
	}
}

func TestSet_AddRefusesOverwrite(t *testing.T) {
	set := fields.NewSet()
	set.Add(fields.Descriptor{Name: "field", Kind: fields.KindChoice})

	if set.Add(fields.Descriptor{Name: "field", Kind: fields.KindText}) {
		t.Fatalf("second add for the same name must report false")
	}
	if set.Len() != 1 {
		t.Fatalf("len = %d, want 1", set.Len())
	}
	desc, _ := set.Get("field")
	if desc.Kind != fields.KindChoice {
		t.Fatalf("first descriptor must win, got kind %q", desc.Kind)
	}
}

func TestSet_AddRejectsUnnamed(t *testing.T) {
	set := fields.NewSet()
	if set.Add(fields.Descriptor{}) {
		t.Fatalf("unnamed descriptor must be rejected")
	}
}

func TestSet_CloneIsIndependent(t *testing.T) {
	set := fields.NewSet()
	set.Add(fields.Descriptor{Name: "a", Kind: fields.KindText})

	clone := set.Clone()
	clone.Add(fields.Descriptor{Name: "b", Kind: fields.KindText})

	if set.Has("b") {
		t.Fatalf("mutating the clone leaked into the original")
	}
	if diff := cmp.Diff([]string{"a", "b"}, clone.Names()); diff != "" {
		t.Fatalf("clone order mismatch (-want +got):\n%s", diff)
	}
}

func TestSet_CloneOfNil(t *testing.T) {
	var set *fields.Set
	clone := set.Clone()
	if clone.Len() != 0 {
		t.Fatalf("nil clone should be empty, got %d", clone.Len())
	}
}
