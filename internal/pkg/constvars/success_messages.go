package constvars

const (
	ValidateSurveySuccessMessage   = "Survey definition is valid"
	CreateSurveySuccessMessage     = "Survey created successfully in LeanIX"
	GetSurveySuccessMessage        = "Successfully retrieved poll"
	ListSubmissionsSuccessMessage  = "Successfully retrieved submissions"
	BatchCompletedMessageFormat    = "Batch completed: %d succeeded, %d failed"
	CreateSurveyItemSuccessMessage = "Survey created successfully"
	CreateSurveyItemFailureMessage = "Failed to create survey"
)
