package schema_test

import (
	"testing"

	"github.com/goliatone/go-modelform/pkg/schema"
)

func TestNumericBounds_InclusiveMapDirectly(t *testing.T) {
	min, max := schema.NumericBounds([]schema.Constraint{schema.Ge(0), schema.Le(10)})
	if min == nil || *min != 0 {
		t.Fatalf("min = %v, want 0", min)
	}
	if max == nil || *max != 10 {
		t.Fatalf("max = %v, want 10", max)
	}
}

func TestNumericBounds_ExclusiveTighten(t *testing.T) {
	min, max := schema.NumericBounds([]schema.Constraint{schema.Gt(5), schema.Lt(100)})
	if min == nil || *min != 6 {
		t.Fatalf("min = %v, want 6", min)
	}
	if max == nil || *max != 99 {
		t.Fatalf("max = %v, want 99", max)
	}
}

func TestNumericBounds_Unconstrained(t *testing.T) {
	min, max := schema.NumericBounds(nil)
	if min != nil || max != nil {
		t.Fatalf("bounds = (%v, %v), want (nil, nil)", min, max)
	}
}

func TestNumericBounds_LaterConstraintWins(t *testing.T) {
	min, _ := schema.NumericBounds([]schema.Constraint{schema.Ge(0), schema.Gt(4)})
	if min == nil || *min != 5 {
		t.Fatalf("min = %v, want 5", min)
	}
}

func TestLengthBounds_Defaults(t *testing.T) {
	min, max := schema.LengthBounds(nil)
	if min != 0 || max != schema.DefaultMaxLength {
		t.Fatalf("bounds = (%d, %d), want (0, %d)", min, max, schema.DefaultMaxLength)
	}
}

func TestLengthBounds_Explicit(t *testing.T) {
	min, max := schema.LengthBounds([]schema.Constraint{schema.MinLen(1), schema.MaxLen(200)})
	if min != 1 || max != 200 {
		t.Fatalf("bounds = (%d, %d), want (1, 200)", min, max)
	}
}

func TestIssueField_JoinsPath(t *testing.T) {
	issue := schema.Issue{Path: []string{"nested", "field"}, Message: "bad"}
	if got := issue.Field("."); got != "nested.field" {
		t.Fatalf("field = %q, want \"nested.field\"", got)
	}
	empty := schema.Issue{Message: "form level"}
	if got := empty.Field("."); got != "" {
		t.Fatalf("empty path should join to empty string, got %q", got)
	}
}

func TestResult_Arms(t *testing.T) {
	ok := schema.Valid(map[string]any{"x": 1})
	if !ok.OK() || ok.Instance() == nil {
		t.Fatalf("valid result misreported")
	}
	bad := schema.Invalid(schema.Issue{Path: []string{"x"}, Message: "nope"})
	if bad.OK() {
		t.Fatalf("invalid result misreported")
	}
	if bad.Instance() != nil {
		t.Fatalf("invalid result must carry no instance")
	}
	empty := schema.Invalid()
	if empty.OK() {
		t.Fatalf("empty invalid result must still be invalid")
	}
}
