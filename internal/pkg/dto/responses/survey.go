package responses

import "surveygate-service/internal/pkg/survey"

type SurveyDetails struct {
	Title             string `json:"title"`
	QuestionCount     int    `json:"question_count"`
	HasUserQuery      bool   `json:"has_user_query"`
	HasFactSheetQuery bool   `json:"has_fact_sheet_query"`
}

type ValidateSurveyResponse struct {
	Valid       bool                `json:"valid"`
	Message     string              `json:"message"`
	SurveyInput *survey.SurveyInput `json:"survey_input,omitempty"`
	Details     *SurveyDetails      `json:"details,omitempty"`
	Errors      []survey.FieldError `json:"errors,omitempty"`
}

type CreateSurveyResponse struct {
	Success bool     `json:"success"`
	PollID  string   `json:"poll_id,omitempty"`
	Message string   `json:"message"`
	Errors  []string `json:"errors,omitempty"`
}

type BatchSurveyItemResult struct {
	Index   int      `json:"index"`
	Success bool     `json:"success"`
	PollID  string   `json:"poll_id,omitempty"`
	Message string   `json:"message"`
	Errors  []string `json:"errors,omitempty"`
}

type BatchCreateSurveyResponse struct {
	Success   bool                    `json:"success"`
	Succeeded int                     `json:"succeeded"`
	Failed    int                     `json:"failed"`
	Results   []BatchSurveyItemResult `json:"results"`
	Message   string                  `json:"message"`
}
