package schema

import "strings"

// Issue is a single structured validation failure. Path holds the field
// path components; an empty path marks a non-field-specific failure.
type Issue struct {
	Path    []string
	Message string
}

// Field joins the path components with the given separator into the flat
// field name forms key their error lists by.
func (i Issue) Field(sep string) string {
	return strings.Join(i.Path, sep)
}

// Result is the outcome of a model validation run: either a validated
// instance or an ordered list of issues, never both.
type Result struct {
	instance any
	issues   []Issue
}

// Valid wraps a successfully validated instance.
func Valid(instance any) Result {
	return Result{instance: instance}
}

// Invalid wraps an ordered issue list. At least one issue is expected;
// an empty list still reports as invalid to keep the two arms disjoint.
func Invalid(issues ...Issue) Result {
	out := make([]Issue, 0, len(issues))
	out = append(out, issues...)
	return Result{issues: out}
}

// OK reports whether validation succeeded.
func (r Result) OK() bool {
	return r.issues == nil
}

// Instance returns the validated instance, or nil on failure.
func (r Result) Instance() any {
	return r.instance
}

// Issues returns the reported failures in report order.
func (r Result) Issues() []Issue {
	return r.issues
}
