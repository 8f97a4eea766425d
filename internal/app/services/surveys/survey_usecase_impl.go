package surveys

import (
	"context"
	"errors"
	"fmt"
	"surveygate-service/internal/app/config"
	"surveygate-service/internal/app/models"
	"surveygate-service/internal/app/services/leanix"
	sharedredis "surveygate-service/internal/app/services/shared/redis"
	"surveygate-service/internal/pkg/constvars"
	"surveygate-service/internal/pkg/dto/requests"
	"surveygate-service/internal/pkg/dto/responses"
	"surveygate-service/internal/pkg/exceptions"
	"surveygate-service/internal/pkg/survey"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type surveyUsecase struct {
	Log                  *zap.Logger
	ClientFactory        leanix.ClientFactory
	RedisRepository      sharedredis.RedisRepository
	SubmissionRepository SubmissionRepository
	InternalConfig       *config.InternalConfig
}

func NewSurveyUsecase(
	log *zap.Logger,
	clientFactory leanix.ClientFactory,
	redisRepository sharedredis.RedisRepository,
	submissionRepository SubmissionRepository,
	internalConfig *config.InternalConfig,
) SurveyUsecase {
	return &surveyUsecase{
		Log:                  log,
		ClientFactory:        clientFactory,
		RedisRepository:      redisRepository,
		SubmissionRepository: submissionRepository,
		InternalConfig:       internalConfig,
	}
}

// ValidateSurvey checks a raw JSON definition against the survey schema.
// Recognized bad input is part of the response, never an error return.
func (u *surveyUsecase) ValidateSurvey(ctx context.Context, request *requests.ValidateSurveyRequest) (*responses.ValidateSurveyResponse, error) {
	input, err := survey.ParseSurveyInput([]byte(request.JSONInput))
	if err != nil {
		var syntaxErr *survey.SyntaxError
		if errors.As(err, &syntaxErr) {
			return &responses.ValidateSurveyResponse{
				Valid:   false,
				Message: constvars.ErrClientInvalidJSONInput,
				Errors:  []survey.FieldError{{Message: syntaxErr.Error()}},
			}, nil
		}
		var validationErr *survey.ValidationError
		if errors.As(err, &validationErr) {
			return &responses.ValidateSurveyResponse{
				Valid:   false,
				Message: constvars.ErrClientInvalidSurveyDefinition,
				Errors:  validationErr.Fields,
			}, nil
		}
		return nil, err
	}

	u.Log.Info("Survey validation passed", zap.String(constvars.LoggingTitleKey, input.Title))

	return &responses.ValidateSurveyResponse{
		Valid:       true,
		Message:     constvars.ValidateSurveySuccessMessage,
		SurveyInput: input,
		Details: &responses.SurveyDetails{
			Title:             input.Title,
			QuestionCount:     len(input.Questionnaire.Questions),
			HasUserQuery:      input.UserQuery != nil,
			HasFactSheetQuery: input.FactSheetQuery != nil,
		},
	}, nil
}

func (u *surveyUsecase) CreateSurvey(ctx context.Context, cfg leanix.Config, request *requests.CreateSurveyRequest) (*responses.CreateSurveyResponse, error) {
	client := u.ClientFactory.NewClient(cfg)

	pollID, title, err := u.createOne(ctx, client, request)
	if err != nil {
		return nil, err
	}

	u.Log.Info("Survey created",
		zap.String(constvars.LoggingTitleKey, title),
		zap.String(constvars.LoggingPollIDKey, pollID),
	)

	return &responses.CreateSurveyResponse{
		Success: true,
		PollID:  pollID,
		Message: constvars.CreateSurveySuccessMessage,
	}, nil
}

func (u *surveyUsecase) CreateSurveyBatch(ctx context.Context, cfg leanix.Config, request *requests.BatchCreateSurveyRequest) (*responses.BatchCreateSurveyResponse, error) {
	if len(request.Requests) == 0 {
		return nil, exceptions.ErrBatchEmpty()
	}
	if len(request.Requests) > u.InternalConfig.Batch.MaxSize {
		return nil, exceptions.ErrBatchTooLarge(len(request.Requests), u.InternalConfig.Batch.MaxSize)
	}

	failFast := true
	if request.FailFast != nil {
		failFast = *request.FailFast
	}

	client := u.ClientFactory.NewClient(cfg)
	results := make([]responses.BatchSurveyItemResult, 0, len(request.Requests))

	for index := range request.Requests {
		pollID, _, err := u.createOne(ctx, client, &request.Requests[index])
		if err != nil {
			results = append(results, responses.BatchSurveyItemResult{
				Index:   index,
				Success: false,
				Message: constvars.CreateSurveyItemFailureMessage,
				Errors:  []string{clientMessage(err)},
			})
			if failFast {
				u.Log.Warn("Fail-fast enabled; stopping batch",
					zap.Int(constvars.LoggingBatchIndexKey, index),
				)
				break
			}
			continue
		}
		results = append(results, responses.BatchSurveyItemResult{
			Index:   index,
			Success: true,
			PollID:  pollID,
			Message: constvars.CreateSurveyItemSuccessMessage,
		})
	}

	succeeded := 0
	failed := 0
	for _, result := range results {
		if result.Success {
			succeeded++
		} else {
			failed++
		}
	}

	return &responses.BatchCreateSurveyResponse{
		Success:   failed == 0,
		Succeeded: succeeded,
		Failed:    failed,
		Results:   results,
		Message:   fmt.Sprintf(constvars.BatchCompletedMessageFormat, succeeded, failed),
	}, nil
}

func (u *surveyUsecase) GetSurvey(ctx context.Context, cfg leanix.Config, pollID uuid.UUID) (map[string]interface{}, error) {
	cacheKey := fmt.Sprintf(constvars.PollCacheKeyFormat, cfg.WorkspaceID, pollID)

	if u.cacheEnabled() {
		cached, err := u.RedisRepository.Get(ctx, cacheKey)
		if err != nil {
			u.Log.Warn("Poll cache read failed", zap.Error(err))
		} else if cached != "" {
			data := make(map[string]interface{})
			if err := json.Unmarshal([]byte(cached), &data); err == nil {
				u.Log.Info("Poll cache hit", zap.String(constvars.LoggingCacheKeyKey, cacheKey))
				return data, nil
			}
		}
	}

	client := u.ClientFactory.NewClient(cfg)
	data, err := client.GetPoll(ctx, pollID)
	if err != nil {
		return nil, err
	}

	if u.cacheEnabled() {
		ttl := time.Duration(u.InternalConfig.Cache.TTLInSeconds) * time.Second
		if err := u.RedisRepository.Set(ctx, cacheKey, data, ttl); err != nil {
			u.Log.Warn("Poll cache write failed", zap.Error(err))
		}
	}
	return data, nil
}

func (u *surveyUsecase) ListSubmissions(ctx context.Context, limit int64) ([]models.SurveySubmission, error) {
	return u.SubmissionRepository.FindRecentSubmissions(ctx, limit)
}

// createOne validates one definition, assembles the poll and submits it.
// Every attempt leaves a submission record, including the failed ones.
func (u *surveyUsecase) createOne(ctx context.Context, client leanix.PollClient, request *requests.CreateSurveyRequest) (pollID, title string, err error) {
	input, err := survey.ParseSurveyInput(request.SurveyInput)
	if err != nil {
		return "", "", exceptions.ErrSurveyValidation(err)
	}
	title = input.Title

	var dueDate *survey.Date
	if request.DueDate != "" {
		parsed, parseErr := survey.ParseDate(request.DueDate)
		if parseErr != nil {
			return "", title, exceptions.ErrInvalidDueDate(parseErr)
		}
		dueDate = &parsed
	}

	language := request.Language
	if language == "" {
		language = "en"
	}

	poll := survey.NewPollCreate(input, language, request.FactSheetType, dueDate)

	defer func() {
		u.recordSubmission(ctx, &models.SurveySubmission{
			PollID:        pollID,
			Title:         title,
			FactSheetType: request.FactSheetType,
			Language:      language,
			Success:       err == nil,
			Error:         clientMessageOrEmpty(err),
			CreatedAt:     time.Now().UTC(),
		})
	}()

	response, err := client.CreatePoll(ctx, poll)
	if err != nil {
		return "", title, err
	}

	if response.Status == "OK" && response.Data != nil {
		pollID = response.Data.ID
	}
	return pollID, title, nil
}

func (u *surveyUsecase) recordSubmission(ctx context.Context, submission *models.SurveySubmission) {
	if u.SubmissionRepository == nil {
		return
	}
	if _, err := u.SubmissionRepository.CreateSubmission(ctx, submission); err != nil {
		u.Log.Warn("Failed to record survey submission", zap.Error(err))
	}
}

func (u *surveyUsecase) cacheEnabled() bool {
	return u.InternalConfig.Cache.Enabled && u.RedisRepository != nil
}

func clientMessage(err error) string {
	var customErr *exceptions.CustomError
	if errors.As(err, &customErr) {
		return customErr.ClientMessage
	}
	return err.Error()
}

func clientMessageOrEmpty(err error) string {
	if err == nil {
		return ""
	}
	return clientMessage(err)
}
