package survey

import "github.com/goccy/go-json"

// PollCreate is the request body for creating a poll in LeanIX. It carries
// every SurveyInput field plus the deployment metadata collected outside the
// document (language, fact sheet type, optional due date). It is built by
// NewPollCreate only, serialized once and discarded.
type PollCreate struct {
	Title                          string                   `json:"title"`
	Language                       string                   `json:"language"`
	FactSheetType                  string                   `json:"factSheetType"`
	Questionnaire                  Questionnaire            `json:"questionnaire"`
	DueDate                        *Date                    `json:"dueDate,omitempty"`
	IntroductionText               *string                  `json:"introductionText,omitempty"`
	IntroductionSubject            *string                  `json:"introductionSubject,omitempty"`
	AdditionalFactSheetSubject     *string                  `json:"additionalFactSheetSubject,omitempty"`
	AdditionalFactSheetText        *string                  `json:"additionalFactSheetText,omitempty"`
	AdditionalFactSheetCheckEnabled *bool                   `json:"additionalFactSheetCheckEnabled,omitempty"`
	RepeatInterval                 *int                     `json:"repeatInterval,omitempty"`
	TimeFrame                      *int                     `json:"timeFrame,omitempty"`
	SendChangeNotifications        *bool                    `json:"sendChangeNotifications,omitempty"`
	AllowedPermissionStatus        *AllowedPermissionStatus `json:"allowedPermissionStatus,omitempty"`
	DynamicScopeCheckEnabled       *bool                    `json:"dynamicScopeCheckEnabled,omitempty"`
	FactSheetQuery                 *FactSheetQuery          `json:"factSheetQuery,omitempty"`
	UserQuery                      *UserQuery               `json:"userQuery,omitempty"`
}

// NewPollCreate merges a validated survey definition with the deployment
// metadata the UI collects separately. The input is already known valid, so
// nothing is re-checked and the questionnaire and query subtrees are shared
// rather than copied; language and factSheetType are taken as-is.
func NewPollCreate(input *SurveyInput, language, factSheetType string, dueDate *Date) *PollCreate {
	return &PollCreate{
		Title:                           input.Title,
		Language:                        language,
		FactSheetType:                   factSheetType,
		Questionnaire:                   input.Questionnaire,
		DueDate:                         dueDate,
		IntroductionText:                input.IntroductionText,
		IntroductionSubject:             input.IntroductionSubject,
		AdditionalFactSheetSubject:      input.AdditionalFactSheetSubject,
		AdditionalFactSheetText:         input.AdditionalFactSheetText,
		AdditionalFactSheetCheckEnabled: input.AdditionalFactSheetCheckEnabled,
		RepeatInterval:                  input.RepeatInterval,
		TimeFrame:                       input.TimeFrame,
		SendChangeNotifications:         input.SendChangeNotifications,
		AllowedPermissionStatus:         input.AllowedPermissionStatus,
		DynamicScopeCheckEnabled:        input.DynamicScopeCheckEnabled,
		FactSheetQuery:                  input.FactSheetQuery,
		UserQuery:                       input.UserQuery,
	}
}

// WirePayload serializes the poll under its external field names. Absent
// optional fields are omitted entirely; the LeanIX API distinguishes absent
// from explicit null, and only absent is safe to send.
func (p *PollCreate) WirePayload() ([]byte, error) {
	return json.Marshal(p)
}
