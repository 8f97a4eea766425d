package requests

import "github.com/goccy/go-json"

type ValidateSurveyRequest struct {
	JSONInput string `json:"json_input" validate:"required"`
}

type CreateSurveyRequest struct {
	// SurveyInput stays raw here; the survey package owns its validation.
	SurveyInput   json.RawMessage `json:"survey_input" validate:"required"`
	Language      string          `json:"language"`
	FactSheetType string          `json:"fact_sheet_type" validate:"required"`
	DueDate       string          `json:"due_date" validate:"omitempty,iso_date"`
}

type BatchCreateSurveyRequest struct {
	Requests []CreateSurveyRequest `json:"requests"`
	// FailFast defaults to true when omitted.
	FailFast *bool `json:"fail_fast"`
}
