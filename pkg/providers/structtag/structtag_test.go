package structtag_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goliatone/go-modelform/pkg/providers/structtag"
	"github.com/goliatone/go-modelform/pkg/schema"
)

type article struct {
	Title   string  `json:"title" validate:"required,min=1,max=200" help:"Article headline"`
	Rating  int     `json:"rating" validate:"required,gte=0,lte=10"`
	Status  string  `json:"status" validate:"oneof=draft published"`
	Summary *string `json:"summary"`

	private string
}

func TestNew_RejectsNonStruct(t *testing.T) {
	_, err := structtag.New(42)
	require.Error(t, err)

	_, err = structtag.New(nil)
	require.Error(t, err)
}

func TestFields_DerivedFromTags(t *testing.T) {
	model, err := structtag.New(article{})
	require.NoError(t, err)

	entries := model.Fields()
	require.Len(t, entries, 4, "unexported fields are skipped")

	byName := map[string]schema.Entry{}
	for _, entry := range entries {
		byName[entry.Name] = entry
	}

	title := byName["title"]
	assert.Equal(t, schema.KindText, title.Type.Kind)
	assert.True(t, title.Required)
	assert.Equal(t, "Article headline", title.Description)
	assert.Equal(t, []schema.Constraint{schema.MinLen(1), schema.MaxLen(200)}, title.Constraints)

	rating := byName["rating"]
	assert.Equal(t, schema.KindInteger, rating.Type.Kind)
	assert.Equal(t, []schema.Constraint{schema.Ge(0), schema.Le(10)}, rating.Constraints)

	status := byName["status"]
	assert.Equal(t, schema.KindChoice, status.Type.Kind)
	assert.Equal(t, []string{"draft", "published"}, status.Type.Literals)

	summary := byName["summary"]
	assert.Equal(t, schema.KindOptional, summary.Type.Kind)
	assert.False(t, summary.Required)
}

func TestValidate_Success(t *testing.T) {
	model, err := structtag.New(article{})
	require.NoError(t, err)

	result := model.Validate(map[string]any{
		"title":  "A headline",
		"rating": 7,
		"status": "draft",
	})
	require.True(t, result.OK(), "issues: %v", result.Issues())

	instance, ok := result.Instance().(*article)
	require.True(t, ok)
	assert.Equal(t, "A headline", instance.Title)
	assert.Equal(t, 7, instance.Rating)
}

func TestValidate_CoercesStrings(t *testing.T) {
	model, err := structtag.New(article{})
	require.NoError(t, err)

	result := model.Validate(map[string]any{
		"title":  "A headline",
		"rating": "7",
		"status": "draft",
	})
	require.True(t, result.OK(), "issues: %v", result.Issues())
	assert.Equal(t, 7, result.Instance().(*article).Rating)
}

func TestValidate_RequiredMissing(t *testing.T) {
	model, err := structtag.New(article{})
	require.NoError(t, err)

	result := model.Validate(map[string]any{"rating": 7, "status": "draft"})
	require.False(t, result.OK())

	var found bool
	for _, issue := range result.Issues() {
		if issue.Field(".") == "title" && issue.Message == "Field required" {
			found = true
		}
	}
	assert.True(t, found, "issues: %v", result.Issues())
}

func TestValidate_OneOfViolation(t *testing.T) {
	model, err := structtag.New(article{})
	require.NoError(t, err)

	result := model.Validate(map[string]any{
		"title":  "A headline",
		"rating": 7,
		"status": "bogus",
	})
	require.False(t, result.OK())

	issues := result.Issues()
	require.Len(t, issues, 1)
	assert.Equal(t, "status", issues[0].Field("."))
	assert.Equal(t, "bogus is not one of the available choices", issues[0].Message)
}

func TestValidate_BoundViolation(t *testing.T) {
	model, err := structtag.New(article{})
	require.NoError(t, err)

	result := model.Validate(map[string]any{
		"title":  "A headline",
		"rating": 11,
		"status": "draft",
	})
	require.False(t, result.OK())

	issues := result.Issues()
	require.Len(t, issues, 1)
	assert.Equal(t, "rating", issues[0].Field("."))
	assert.Equal(t, "Input should be less than or equal to 10", issues[0].Message)
}

func TestValidate_BindFailureShortCircuits(t *testing.T) {
	model, err := structtag.New(article{})
	require.NoError(t, err)

	result := model.Validate(map[string]any{
		"title":  "A headline",
		"rating": "not-a-number",
		"status": "draft",
	})
	require.False(t, result.OK())

	issues := result.Issues()
	require.Len(t, issues, 1)
	assert.Equal(t, "rating", issues[0].Field("."))
	assert.Equal(t, "Input should be a valid integer", issues[0].Message)
}

func TestValidate_OptionalPointer(t *testing.T) {
	model, err := structtag.New(article{})
	require.NoError(t, err)

	result := model.Validate(map[string]any{
		"title":   "A headline",
		"rating":  7,
		"status":  "draft",
		"summary": "a short summary",
	})
	require.True(t, result.OK(), "issues: %v", result.Issues())

	instance := result.Instance().(*article)
	require.NotNil(t, instance.Summary)
	assert.Equal(t, "a short summary", *instance.Summary)
}
