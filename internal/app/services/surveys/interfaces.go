package surveys

import (
	"context"
	"surveygate-service/internal/app/models"
	"surveygate-service/internal/app/services/leanix"
	"surveygate-service/internal/pkg/dto/requests"
	"surveygate-service/internal/pkg/dto/responses"

	"github.com/google/uuid"
)

type SurveyUsecase interface {
	ValidateSurvey(ctx context.Context, request *requests.ValidateSurveyRequest) (*responses.ValidateSurveyResponse, error)
	CreateSurvey(ctx context.Context, cfg leanix.Config, request *requests.CreateSurveyRequest) (*responses.CreateSurveyResponse, error)
	CreateSurveyBatch(ctx context.Context, cfg leanix.Config, request *requests.BatchCreateSurveyRequest) (*responses.BatchCreateSurveyResponse, error)
	GetSurvey(ctx context.Context, cfg leanix.Config, pollID uuid.UUID) (map[string]interface{}, error)
	ListSubmissions(ctx context.Context, limit int64) ([]models.SurveySubmission, error)
}

type SubmissionRepository interface {
	CreateSubmission(ctx context.Context, submission *models.SurveySubmission) (string, error)
	FindRecentSubmissions(ctx context.Context, limit int64) ([]models.SurveySubmission, error)
}
