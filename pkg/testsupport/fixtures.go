// Package testsupport holds shared schema fixtures for contract tests
// across the module.
package testsupport

import "github.com/goliatone/go-modelform/pkg/schema"

// ArticleEntries returns a representative schema covering every declared
// type variant the translator dispatches on.
func ArticleEntries() []schema.Entry {
	return []schema.Entry{
		{
			Name:        "title",
			Type:        schema.Text(),
			Required:    true,
			Description: "Article headline",
			Constraints: []schema.Constraint{schema.MinLen(1), schema.MaxLen(200)},
		},
		{
			Name:     "rating",
			Type:     schema.Annotated(schema.Integer(), schema.Ge(0), schema.Le(10)),
			Required: true,
		},
		{
			Name:     "score",
			Type:     schema.Annotated(schema.Number(), schema.Gt(0), schema.Lt(1000)),
			Required: true,
		},
		{
			Name: "status",
			Type: schema.Choice("draft", "published"),
		},
		{
			Name:    "summary",
			Type:    schema.Optional(schema.Text()),
			Default: "",
		},
		{
			Name: "published",
			Type: schema.Boolean(),
		},
		{
			Name:     "publish_date",
			Type:     schema.Date(),
			Required: true,
		},
		{
			Name:     "updated_at",
			Type:     schema.DateTime(),
			Required: true,
		},
	}
}
