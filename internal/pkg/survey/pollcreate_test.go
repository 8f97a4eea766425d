package survey

import (
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPollCreate(t *testing.T) {
	input, err := ParseSurveyInput([]byte(`{
		"title": "Cloud Readiness",
		"questionnaire": {
			"questions": [
				{"id": "q1", "label": "Is this application cloud ready?", "type": "text"}
			]
		},
		"introduction_text": "Please answer honestly",
		"user_query": {"roles": [{"subscription_type": "RESPONSIBLE"}]}
	}`))
	require.NoError(t, err)

	t.Run("Carries input fields and deployment metadata", func(t *testing.T) {
		dueDate := NewDate(2026, time.December, 31)
		poll := NewPollCreate(input, "en", "Application", &dueDate)

		assert.Equal(t, "Cloud Readiness", poll.Title)
		assert.Equal(t, "en", poll.Language)
		assert.Equal(t, "Application", poll.FactSheetType)
		require.NotNil(t, poll.DueDate)
		assert.Equal(t, "2026-12-31", poll.DueDate.String())
		assert.Equal(t, input.Questionnaire, poll.Questionnaire)
		assert.Equal(t, input.IntroductionText, poll.IntroductionText)
		assert.Equal(t, input.UserQuery, poll.UserQuery)
	})

	t.Run("Wire payload uses external field names", func(t *testing.T) {
		poll := NewPollCreate(input, "de", "ITComponent", nil)

		payload, err := poll.WirePayload()
		require.NoError(t, err)

		var decoded map[string]interface{}
		require.NoError(t, json.Unmarshal(payload, &decoded))
		assert.Equal(t, "de", decoded["language"])
		assert.Equal(t, "ITComponent", decoded["factSheetType"])
		assert.Contains(t, decoded, "introductionText")
		assert.Contains(t, decoded, "userQuery")
		assert.NotContains(t, decoded, "fact_sheet_type")
		assert.NotContains(t, decoded, "user_query")
	})

	t.Run("Absent due date is omitted not null", func(t *testing.T) {
		poll := NewPollCreate(input, "en", "Application", nil)

		payload, err := poll.WirePayload()
		require.NoError(t, err)

		var decoded map[string]interface{}
		require.NoError(t, json.Unmarshal(payload, &decoded))
		assert.NotContains(t, decoded, "dueDate")
	})

	t.Run("Absent optional flags are omitted", func(t *testing.T) {
		poll := NewPollCreate(input, "en", "Application", nil)

		payload, err := poll.WirePayload()
		require.NoError(t, err)

		var decoded map[string]interface{}
		require.NoError(t, json.Unmarshal(payload, &decoded))
		assert.NotContains(t, decoded, "repeatInterval")
		assert.NotContains(t, decoded, "sendChangeNotifications")
		assert.NotContains(t, decoded, "factSheetQuery")
	})
}

func TestDate(t *testing.T) {
	t.Run("Parse valid date", func(t *testing.T) {
		date, err := ParseDate("2026-08-30")
		require.NoError(t, err)
		assert.Equal(t, "2026-08-30", date.String())
		assert.Equal(t, time.August, date.Time().Month())
	})

	t.Run("Reject malformed dates", func(t *testing.T) {
		for _, value := range []string{"30-08-2026", "2026/08/30", "2026-13-01", "not a date", ""} {
			_, err := ParseDate(value)
			assert.Error(t, err, "expected %q to be rejected", value)
		}
	})

	t.Run("JSON round trip", func(t *testing.T) {
		date := NewDate(2026, time.January, 2)

		encoded, err := json.Marshal(date)
		require.NoError(t, err)
		assert.Equal(t, `"2026-01-02"`, string(encoded))

		var decoded Date
		require.NoError(t, json.Unmarshal(encoded, &decoded))
		assert.True(t, date.Equal(decoded))
	})
}
