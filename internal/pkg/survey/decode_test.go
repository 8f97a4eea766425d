package survey

import (
	"fmt"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func minimalSurveyJSON() string {
	return `{
		"title": "Application Assessment",
		"questionnaire": {
			"questions": [
				{"id": "q1", "label": "How critical is this application?", "type": "text"}
			]
		}
	}`
}

func fieldPaths(t *testing.T, err error) []string {
	t.Helper()
	validationErr, ok := err.(*ValidationError)
	require.True(t, ok, "expected *ValidationError, got %T", err)
	paths := make([]string, 0, len(validationErr.Fields))
	for _, fieldErr := range validationErr.Fields {
		paths = append(paths, fieldErr.Path)
	}
	return paths
}

func TestParseSurveyInput(t *testing.T) {
	t.Run("Valid minimal survey", func(t *testing.T) {
		input, err := ParseSurveyInput([]byte(minimalSurveyJSON()))
		require.NoError(t, err)
		assert.Equal(t, "Application Assessment", input.Title)
		require.Len(t, input.Questionnaire.Questions, 1)
		assert.Equal(t, "q1", input.Questionnaire.Questions[0].ID)
		assert.Equal(t, "text", input.Questionnaire.Questions[0].Type)
	})

	t.Run("Malformed JSON returns syntax error", func(t *testing.T) {
		_, err := ParseSurveyInput([]byte(`{"title": "broken"`))
		require.Error(t, err)
		var syntaxErr *SyntaxError
		assert.ErrorAs(t, err, &syntaxErr)
		assert.Contains(t, err.Error(), "invalid JSON")
	})

	t.Run("Top level must be an object", func(t *testing.T) {
		_, err := ParseSurveyInput([]byte(`[1, 2, 3]`))
		require.Error(t, err)
		validationErr, ok := err.(*ValidationError)
		require.True(t, ok)
		require.Len(t, validationErr.Fields, 1)
		assert.Equal(t, "document must be a JSON object", validationErr.Fields[0].Message)
	})

	t.Run("Missing title and questionnaire are both reported", func(t *testing.T) {
		_, err := ParseSurveyInput([]byte(`{}`))
		require.Error(t, err)
		paths := fieldPaths(t, err)
		assert.Contains(t, paths, "title")
		assert.Contains(t, paths, "questionnaire")
	})

	t.Run("Whitespace only title is rejected", func(t *testing.T) {
		_, err := ParseSurveyInput([]byte(`{
			"title": "   ",
			"questionnaire": {"questions": []}
		}`))
		require.Error(t, err)
		validationErr, ok := err.(*ValidationError)
		require.True(t, ok)
		require.Len(t, validationErr.Fields, 1)
		assert.Equal(t, "title", validationErr.Fields[0].Path)
		assert.Equal(t, "cannot be empty or whitespace only", validationErr.Fields[0].Message)
	})

	t.Run("Title is trimmed", func(t *testing.T) {
		input, err := ParseSurveyInput([]byte(`{
			"title": "  Survey  ",
			"questionnaire": {"questions": []}
		}`))
		require.NoError(t, err)
		assert.Equal(t, "Survey", input.Title)
	})

	t.Run("Empty question list is valid", func(t *testing.T) {
		input, err := ParseSurveyInput([]byte(`{
			"title": "Empty",
			"questionnaire": {"questions": []}
		}`))
		require.NoError(t, err)
		assert.Empty(t, input.Questionnaire.Questions)
	})

	t.Run("Unknown fields are ignored", func(t *testing.T) {
		input, err := ParseSurveyInput([]byte(`{
			"title": "Survey",
			"questionnaire": {"questions": []},
			"somethingElse": {"unexpected": true}
		}`))
		require.NoError(t, err)
		assert.Equal(t, "Survey", input.Title)
	})
}

func TestParseSurveyInputAliases(t *testing.T) {
	t.Run("Snake case field names are accepted", func(t *testing.T) {
		input, err := ParseSurveyInput([]byte(`{
			"title": "Survey",
			"questionnaire": {"questions": []},
			"introduction_text": "Welcome",
			"repeat_interval": 30,
			"send_change_notifications": true,
			"allowed_permission_status": "ACTIVE_ONLY"
		}`))
		require.NoError(t, err)
		require.NotNil(t, input.IntroductionText)
		assert.Equal(t, "Welcome", *input.IntroductionText)
		require.NotNil(t, input.RepeatInterval)
		assert.Equal(t, 30, *input.RepeatInterval)
		require.NotNil(t, input.SendChangeNotifications)
		assert.True(t, *input.SendChangeNotifications)
		require.NotNil(t, input.AllowedPermissionStatus)
		assert.Equal(t, PermissionActiveOnly, *input.AllowedPermissionStatus)
	})

	t.Run("Camel case field names are accepted", func(t *testing.T) {
		input, err := ParseSurveyInput([]byte(`{
			"title": "Survey",
			"questionnaire": {"questions": []},
			"introductionText": "Welcome",
			"repeatInterval": 30
		}`))
		require.NoError(t, err)
		require.NotNil(t, input.IntroductionText)
		assert.Equal(t, "Welcome", *input.IntroductionText)
		require.NotNil(t, input.RepeatInterval)
		assert.Equal(t, 30, *input.RepeatInterval)
	})

	t.Run("Wire spelling wins when both spellings are present", func(t *testing.T) {
		input, err := ParseSurveyInput([]byte(`{
			"title": "Survey",
			"questionnaire": {"questions": []},
			"introductionText": "camel",
			"introduction_text": "snake"
		}`))
		require.NoError(t, err)
		require.NotNil(t, input.IntroductionText)
		assert.Equal(t, "camel", *input.IntroductionText)
	})
}

func TestParseSurveyInputQuestions(t *testing.T) {
	t.Run("Choice question without options is rejected", func(t *testing.T) {
		for _, questionType := range []string{QuestionTypeSingleChoice, QuestionTypeMultipleChoice} {
			_, err := ParseSurveyInput([]byte(fmt.Sprintf(`{
				"title": "Survey",
				"questionnaire": {
					"questions": [
						{"id": "q1", "label": "Pick one", "type": "%s"}
					]
				}
			}`, questionType)))
			require.Error(t, err)
			validationErr, ok := err.(*ValidationError)
			require.True(t, ok)
			require.Len(t, validationErr.Fields, 1)
			assert.Equal(t, "questionnaire.questions[0].options", validationErr.Fields[0].Path)
			assert.Contains(t, validationErr.Fields[0].Message, questionType)
		}
	})

	t.Run("Choice question with empty options list is rejected", func(t *testing.T) {
		_, err := ParseSurveyInput([]byte(`{
			"title": "Survey",
			"questionnaire": {
				"questions": [
					{"id": "q1", "label": "Pick one", "type": "singlechoice", "options": []}
				]
			}
		}`))
		require.Error(t, err)
		paths := fieldPaths(t, err)
		assert.Equal(t, []string{"questionnaire.questions[0].options"}, paths)
	})

	t.Run("Choice question with options is valid", func(t *testing.T) {
		input, err := ParseSurveyInput([]byte(`{
			"title": "Survey",
			"questionnaire": {
				"questions": [
					{
						"id": "q1",
						"label": "Pick one",
						"type": "singlechoice",
						"options": [
							{"id": "opt1", "label": "Yes"},
							{"id": "opt2", "label": "No", "comment": "needs detail"}
						]
					}
				]
			}
		}`))
		require.NoError(t, err)
		require.Len(t, input.Questionnaire.Questions[0].Options, 2)
		assert.Equal(t, "opt1", input.Questionnaire.Questions[0].Options[0].ID)
		require.NotNil(t, input.Questionnaire.Questions[0].Options[1].Comment)
	})

	t.Run("Empty option id is rejected", func(t *testing.T) {
		_, err := ParseSurveyInput([]byte(`{
			"title": "Survey",
			"questionnaire": {
				"questions": [
					{
						"id": "q1",
						"label": "Pick one",
						"type": "singlechoice",
						"options": [{"id": "", "label": "Yes"}]
					}
				]
			}
		}`))
		require.Error(t, err)
		paths := fieldPaths(t, err)
		assert.Contains(t, paths, "questionnaire.questions[0].options[0].id")
	})

	t.Run("Error path points into nested children", func(t *testing.T) {
		_, err := ParseSurveyInput([]byte(`{
			"title": "Survey",
			"questionnaire": {
				"questions": [
					{
						"id": "q1",
						"label": "Parent",
						"type": "text",
						"children": [
							{"id": "q1a", "type": "text"}
						]
					}
				]
			}
		}`))
		require.Error(t, err)
		paths := fieldPaths(t, err)
		assert.Contains(t, paths, "questionnaire.questions[0].children[0].label")
	})

	t.Run("Nested children are preserved", func(t *testing.T) {
		input, err := ParseSurveyInput([]byte(`{
			"title": "Survey",
			"questionnaire": {
				"questions": [
					{
						"id": "q1",
						"label": "Parent",
						"type": "text",
						"children": [
							{
								"id": "q1a",
								"label": "Child",
								"type": "text",
								"children": [
									{"id": "q1a1", "label": "Grandchild", "type": "text"}
								]
							}
						]
					}
				]
			}
		}`))
		require.NoError(t, err)
		parent := input.Questionnaire.Questions[0]
		require.Len(t, parent.Children, 1)
		require.Len(t, parent.Children[0].Children, 1)
		assert.Equal(t, "q1a1", parent.Children[0].Children[0].ID)
	})

	t.Run("Question nesting beyond the depth limit is rejected", func(t *testing.T) {
		leaf := `{"id": "deep", "label": "leaf", "type": "text"}`
		node := leaf
		for i := 0; i < MaxNestingDepth; i++ {
			node = fmt.Sprintf(`{"id": "n%d", "label": "node", "type": "text", "children": [%s]}`, i, node)
		}
		document := fmt.Sprintf(`{"title": "Deep", "questionnaire": {"questions": [%s]}}`, node)

		_, err := ParseSurveyInput([]byte(document))
		require.Error(t, err)
		validationErr, ok := err.(*ValidationError)
		require.True(t, ok)
		require.Len(t, validationErr.Fields, 1)
		assert.Contains(t, validationErr.Fields[0].Message, "maximum question nesting depth")
	})

	t.Run("Non integral repeat interval is rejected", func(t *testing.T) {
		_, err := ParseSurveyInput([]byte(`{
			"title": "Survey",
			"questionnaire": {"questions": []},
			"repeatInterval": 1.5
		}`))
		require.Error(t, err)
		paths := fieldPaths(t, err)
		assert.Equal(t, []string{"repeatInterval"}, paths)
	})

	t.Run("Dependency requires parent id and condition", func(t *testing.T) {
		_, err := ParseSurveyInput([]byte(`{
			"title": "Survey",
			"questionnaire": {
				"questions": [
					{
						"id": "q1",
						"label": "Conditional",
						"type": "text",
						"settings": {"dependency": {}}
					}
				]
			}
		}`))
		require.Error(t, err)
		paths := fieldPaths(t, err)
		assert.Contains(t, paths, "questionnaire.questions[0].settings.dependency.parentId")
		assert.Contains(t, paths, "questionnaire.questions[0].settings.dependency.condition")
	})
}

func TestParseSurveyInputQueries(t *testing.T) {
	t.Run("Fact sheet query with nested facet filters", func(t *testing.T) {
		input, err := ParseSurveyInput([]byte(`{
			"title": "Survey",
			"questionnaire": {"questions": []},
			"fact_sheet_query": {
				"filter": {
					"fs_type": "Application",
					"facet_filter": [
						{
							"facet_key": "lifecycle",
							"keys": ["active", "phaseOut"],
							"operator": "OR",
							"sub_filter": [
								{"facet_key": "hosting", "keys": ["cloud"]}
							]
						}
					]
				},
				"ids": ["28fe4aa2-6929-46ba-b092-1ebd4b8be1e5"]
			}
		}`))
		require.NoError(t, err)
		require.NotNil(t, input.FactSheetQuery)
		require.NotNil(t, input.FactSheetQuery.Filter)
		require.Len(t, input.FactSheetQuery.Filter.FacetFilter, 1)
		facet := input.FactSheetQuery.Filter.FacetFilter[0]
		require.NotNil(t, facet.Operator)
		assert.Equal(t, FacetOperatorOr, *facet.Operator)
		require.Len(t, facet.SubFilter, 1)
		assert.Equal(t, []string{"cloud"}, facet.SubFilter[0].Keys)
		assert.Equal(t, []string{"28fe4aa2-6929-46ba-b092-1ebd4b8be1e5"}, input.FactSheetQuery.IDs)
	})

	t.Run("Invalid facet operator is rejected", func(t *testing.T) {
		_, err := ParseSurveyInput([]byte(`{
			"title": "Survey",
			"questionnaire": {"questions": []},
			"factSheetQuery": {
				"filter": {
					"facetFilter": [{"operator": "XOR"}]
				}
			}
		}`))
		require.Error(t, err)
		paths := fieldPaths(t, err)
		assert.Contains(t, paths, "factSheetQuery.filter.facetFilter[0].operator")
	})

	t.Run("Date filter validates type and dates", func(t *testing.T) {
		input, err := ParseSurveyInput([]byte(`{
			"title": "Survey",
			"questionnaire": {"questions": []},
			"factSheetQuery": {
				"filter": {
					"facetFilter": [
						{
							"dateFilter": {"type": "RANGE", "from": "2026-01-01", "to": "2026-12-31"}
						}
					]
				}
			}
		}`))
		require.NoError(t, err)
		dateFilter := input.FactSheetQuery.Filter.FacetFilter[0].DateFilter
		require.NotNil(t, dateFilter)
		assert.Equal(t, DateFilterRange, dateFilter.Type)
		require.NotNil(t, dateFilter.From)
		assert.Equal(t, "2026-01-01", dateFilter.From.String())
	})

	t.Run("Malformed date inside a date filter is rejected", func(t *testing.T) {
		_, err := ParseSurveyInput([]byte(`{
			"title": "Survey",
			"questionnaire": {"questions": []},
			"factSheetQuery": {
				"filter": {
					"facetFilter": [
						{"dateFilter": {"type": "RANGE", "from": "01/01/2026"}}
					]
				}
			}
		}`))
		require.Error(t, err)
		paths := fieldPaths(t, err)
		assert.Contains(t, paths, "factSheetQuery.filter.facetFilter[0].dateFilter.from")
	})

	t.Run("User query requires roles", func(t *testing.T) {
		_, err := ParseSurveyInput([]byte(`{
			"title": "Survey",
			"questionnaire": {"questions": []},
			"user_query": {}
		}`))
		require.Error(t, err)
		paths := fieldPaths(t, err)
		assert.Contains(t, paths, "userQuery.roles")
	})

	t.Run("User query with role details", func(t *testing.T) {
		input, err := ParseSurveyInput([]byte(`{
			"title": "Survey",
			"questionnaire": {"questions": []},
			"user_query": {
				"roles": [
					{
						"subscription_type": "RESPONSIBLE",
						"role_details": [{"name": "IT Owner", "id": "role-1"}]
					}
				]
			}
		}`))
		require.NoError(t, err)
		require.NotNil(t, input.UserQuery)
		require.Len(t, input.UserQuery.Roles, 1)
		assert.Equal(t, SubscriptionResponsible, input.UserQuery.Roles[0].SubscriptionType)
		require.Len(t, input.UserQuery.Roles[0].RoleDetails, 1)
		assert.Equal(t, "IT Owner", input.UserQuery.Roles[0].RoleDetails[0].Name)
	})

	t.Run("Invalid subscription type is rejected", func(t *testing.T) {
		_, err := ParseSurveyInput([]byte(`{
			"title": "Survey",
			"questionnaire": {"questions": []},
			"userQuery": {
				"roles": [{"subscriptionType": "OWNER"}]
			}
		}`))
		require.Error(t, err)
		paths := fieldPaths(t, err)
		assert.Contains(t, paths, "userQuery.roles[0].subscriptionType")
	})
}

func TestParseSurveyInputRoundTrip(t *testing.T) {
	document := `{
		"title": "Round Trip",
		"questionnaire": {
			"questions": [
				{
					"id": "q1",
					"label": "Pick",
					"type": "multiplechoice",
					"options": [{"id": "a", "label": "A"}],
					"settings": {"isMandatory": true, "version": 2},
					"fact_sheet_element": {"type": "field", "fact_sheet_field_name": "businessCriticality"}
				}
			]
		},
		"introduction_text": "Hello",
		"dynamic_scope_check_enabled": true
	}`

	first, err := ParseSurveyInput([]byte(document))
	require.NoError(t, err)

	encoded, err := json.Marshal(first)
	require.NoError(t, err)

	// The encoded form uses wire names only and must validate unchanged.
	assert.Contains(t, string(encoded), `"introductionText"`)
	assert.Contains(t, string(encoded), `"factSheetElement"`)
	assert.NotContains(t, string(encoded), "fact_sheet_element")

	second, err := ParseSurveyInput(encoded)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestFieldErrorFormatting(t *testing.T) {
	t.Run("Path and message", func(t *testing.T) {
		fieldErr := FieldError{Path: "questionnaire.questions[0].id", Message: "is required"}
		assert.Equal(t, "questionnaire.questions[0].id: is required", fieldErr.String())
	})

	t.Run("Message without a path", func(t *testing.T) {
		fieldErr := FieldError{Message: "document must be a JSON object"}
		assert.Equal(t, "document must be a JSON object", fieldErr.String())
	})

	t.Run("Validation error joins field errors", func(t *testing.T) {
		err := &ValidationError{Fields: []FieldError{
			{Path: "title", Message: "is required"},
			{Path: "questionnaire", Message: "is required"},
		}}
		assert.True(t, strings.Contains(err.Error(), "title: is required"))
		assert.True(t, strings.Contains(err.Error(), "questionnaire: is required"))
	})
}
