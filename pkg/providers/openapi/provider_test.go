package openapi_test

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-modelform/pkg/providers/openapi"
	"github.com/goliatone/go-modelform/pkg/schema"
)

const articleSpec = `
openapi: 3.0.3
info:
  title: Articles
  version: 1.0.0
paths: {}
components:
  schemas:
    Article:
      type: object
      required: [rating, title]
      properties:
        title:
          type: string
          description: Article headline
          minLength: 1
          maxLength: 200
        rating:
          type: integer
          minimum: 0
          maximum: 10
        score:
          type: number
          minimum: 0
          exclusiveMinimum: true
        status:
          type: string
          enum: [draft, published]
        summary:
          type: string
          nullable: true
        published:
          type: boolean
        publish_date:
          type: string
          format: date
        updated_at:
          type: string
          format: date-time
        tags:
          type: array
          items:
            type: string
`

func loadArticle(t *testing.T) map[string]schema.Entry {
	t.Helper()
	entries, err := openapi.Entries(context.Background(), []byte(articleSpec), "Article")
	if err != nil {
		t.Fatalf("entries: %v", err)
	}
	byName := make(map[string]schema.Entry, len(entries))
	for _, entry := range entries {
		byName[entry.Name] = entry
	}
	return byName
}

func TestEntries_SortedPropertyOrder(t *testing.T) {
	entries, err := openapi.Entries(context.Background(), []byte(articleSpec), "Article")
	if err != nil {
		t.Fatalf("entries: %v", err)
	}
	var names []string
	for _, entry := range entries {
		names = append(names, entry.Name)
	}
	want := []string{
		"publish_date", "published", "rating", "score", "status",
		"summary", "tags", "title", "updated_at",
	}
	if diff := cmp.Diff(want, names); diff != "" {
		t.Fatalf("order mismatch (-want +got):\n%s", diff)
	}
}

func TestEntries_TypeMapping(t *testing.T) {
	byName := loadArticle(t)

	if kind := byName["title"].Type.Kind; kind != schema.KindText {
		t.Fatalf("title kind = %q", kind)
	}
	if kind := byName["rating"].Type.Kind; kind != schema.KindInteger {
		t.Fatalf("rating kind = %q", kind)
	}
	if kind := byName["score"].Type.Kind; kind != schema.KindNumber {
		t.Fatalf("score kind = %q", kind)
	}
	if kind := byName["published"].Type.Kind; kind != schema.KindBoolean {
		t.Fatalf("published kind = %q", kind)
	}
	if kind := byName["publish_date"].Type.Kind; kind != schema.KindDate {
		t.Fatalf("publish_date kind = %q", kind)
	}
	if kind := byName["updated_at"].Type.Kind; kind != schema.KindDateTime {
		t.Fatalf("updated_at kind = %q", kind)
	}
	if !byName["tags"].Type.IsZero() {
		t.Fatalf("array property should map to the zero type, got %q", byName["tags"].Type.Kind)
	}
}

func TestEntries_RequiredAndConstraints(t *testing.T) {
	byName := loadArticle(t)

	title := byName["title"]
	if !title.Required {
		t.Fatalf("title must be required")
	}
	if title.Description != "Article headline" {
		t.Fatalf("description = %q", title.Description)
	}
	wantTitle := []schema.Constraint{schema.MinLen(1), schema.MaxLen(200)}
	if diff := cmp.Diff(wantTitle, title.Constraints); diff != "" {
		t.Fatalf("title constraints mismatch (-want +got):\n%s", diff)
	}

	wantRating := []schema.Constraint{schema.Ge(0), schema.Le(10)}
	if diff := cmp.Diff(wantRating, byName["rating"].Constraints); diff != "" {
		t.Fatalf("rating constraints mismatch (-want +got):\n%s", diff)
	}

	// exclusiveMinimum flips the inclusive bound to a strict one.
	wantScore := []schema.Constraint{schema.Gt(0)}
	if diff := cmp.Diff(wantScore, byName["score"].Constraints); diff != "" {
		t.Fatalf("score constraints mismatch (-want +got):\n%s", diff)
	}
}

func TestEntries_NullableBecomesOptional(t *testing.T) {
	byName := loadArticle(t)

	summary := byName["summary"]
	if summary.Type.Kind != schema.KindOptional {
		t.Fatalf("summary kind = %q, want optional", summary.Type.Kind)
	}
	if summary.Type.Elem == nil || summary.Type.Elem.Kind != schema.KindText {
		t.Fatalf("summary inner type = %+v", summary.Type.Elem)
	}
	if summary.Required {
		t.Fatalf("nullable property must not be required")
	}
}

func TestEntries_EnumBecomesChoice(t *testing.T) {
	byName := loadArticle(t)

	status := byName["status"]
	if status.Type.Kind != schema.KindChoice {
		t.Fatalf("status kind = %q", status.Type.Kind)
	}
	if diff := cmp.Diff([]string{"draft", "published"}, status.Type.Literals); diff != "" {
		t.Fatalf("literals mismatch (-want +got):\n%s", diff)
	}
}

func TestEntries_Errors(t *testing.T) {
	ctx := context.Background()
	if _, err := openapi.Entries(ctx, nil, "Article"); err == nil {
		t.Fatalf("empty payload must fail")
	}
	if _, err := openapi.Entries(ctx, []byte(articleSpec), ""); err == nil {
		t.Fatalf("missing component name must fail")
	}
	if _, err := openapi.Entries(ctx, []byte(articleSpec), "Missing"); err == nil {
		t.Fatalf("unknown component must fail")
	}
}
