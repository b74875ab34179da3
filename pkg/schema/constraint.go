package schema

// ConstraintOp identifies the bound a constraint applies.
type ConstraintOp string

const (
	OpGe     ConstraintOp = "ge"
	OpGt     ConstraintOp = "gt"
	OpLe     ConstraintOp = "le"
	OpLt     ConstraintOp = "lt"
	OpMinLen ConstraintOp = "minLen"
	OpMaxLen ConstraintOp = "maxLen"
)

// Constraint is a single numeric or length bound attached to a schema
// entry or an annotated type.
type Constraint struct {
	Op    ConstraintOp
	Value float64
}

// Ge constrains a numeric value to be greater than or equal to v.
func Ge(v float64) Constraint { return Constraint{Op: OpGe, Value: v} }

// Gt constrains a numeric value to be strictly greater than v.
func Gt(v float64) Constraint { return Constraint{Op: OpGt, Value: v} }

// Le constrains a numeric value to be less than or equal to v.
func Le(v float64) Constraint { return Constraint{Op: OpLe, Value: v} }

// Lt constrains a numeric value to be strictly less than v.
func Lt(v float64) Constraint { return Constraint{Op: OpLt, Value: v} }

// MinLen constrains text length from below.
func MinLen(n int) Constraint { return Constraint{Op: OpMinLen, Value: float64(n)} }

// MaxLen constrains text length from above.
func MaxLen(n int) Constraint { return Constraint{Op: OpMaxLen, Value: float64(n)} }

// DefaultMaxLength caps text inputs when no MaxLen constraint is present.
const DefaultMaxLength = 2000

// NumericBounds folds numeric constraints into an inclusive (min, max)
// pair. Exclusive bounds tighten by one: Gt(n) becomes min n+1 and Lt(n)
// becomes max n−1, matching how the bounds are surfaced on inputs that
// only understand inclusive limits. Later constraints of the same kind
// win, preserving declaration order semantics.
func NumericBounds(constraints []Constraint) (min, max *float64) {
	for _, c := range constraints {
		switch c.Op {
		case OpGe:
			v := c.Value
			min = &v
		case OpGt:
			v := c.Value + 1
			min = &v
		case OpLe:
			v := c.Value
			max = &v
		case OpLt:
			v := c.Value - 1
			max = &v
		}
	}
	return min, max
}

// LengthBounds folds length constraints into (min, max), applying the
// defaults of 0 and DefaultMaxLength when a side is unconstrained.
func LengthBounds(constraints []Constraint) (min, max int) {
	min = 0
	max = DefaultMaxLength
	for _, c := range constraints {
		switch c.Op {
		case OpMinLen:
			min = int(c.Value)
		case OpMaxLen:
			max = int(c.Value)
		}
	}
	return min, max
}
