package surveys

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"surveygate-service/internal/app/config"
	"surveygate-service/internal/app/services/leanix"
	"surveygate-service/internal/pkg/constvars"
	"surveygate-service/internal/pkg/dto/requests"
	"surveygate-service/internal/pkg/exceptions"
	"surveygate-service/internal/pkg/utils"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type SurveyController struct {
	Log            *zap.Logger
	SurveyUsecase  SurveyUsecase
	InternalConfig *config.InternalConfig
}

func NewSurveyController(logger *zap.Logger, surveyUsecase SurveyUsecase, internalConfig *config.InternalConfig) *SurveyController {
	return &SurveyController{
		Log:            logger,
		SurveyUsecase:  surveyUsecase,
		InternalConfig: internalConfig,
	}
}

func (ctrl *SurveyController) requestTimeout() time.Duration {
	return time.Duration(ctrl.InternalConfig.App.RequestTimeoutInSeconds) * time.Second
}

// leanixConfigFromQuery reads the per-request credentials. They travel as
// query parameters so the service itself never stores LeanIX secrets.
func (ctrl *SurveyController) leanixConfigFromQuery(r *http.Request) (leanix.Config, error) {
	query := r.URL.Query()

	workspaceID, err := uuid.Parse(query.Get(constvars.URLQueryParamWorkspaceID))
	if err != nil {
		return leanix.Config{}, exceptions.ErrURLQueryParamValidation(err, constvars.URLQueryParamWorkspaceID)
	}

	cfg := leanix.Config{
		BaseURL:     query.Get(constvars.URLQueryParamLeanIXURL),
		APIToken:    query.Get(constvars.URLQueryParamAPIToken),
		WorkspaceID: workspaceID,
	}
	if valid, errors := cfg.Validate(); !valid {
		return leanix.Config{}, exceptions.ErrLeanIXConfigInvalid(errors)
	}
	return cfg, nil
}

func (ctrl *SurveyController) ValidateSurvey(w http.ResponseWriter, r *http.Request) {
	request := new(requests.ValidateSurveyRequest)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.requestTimeout())
	defer cancel()

	response, err := ctrl.SurveyUsecase.ValidateSurvey(ctx, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, response.Message, response)
}

func (ctrl *SurveyController) CreateSurvey(w http.ResponseWriter, r *http.Request) {
	cfg, err := ctrl.leanixConfigFromQuery(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	request := new(requests.CreateSurveyRequest)
	err = json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.requestTimeout())
	defer cancel()

	response, err := ctrl.SurveyUsecase.CreateSurvey(ctx, cfg, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, response.Message, response)
}

func (ctrl *SurveyController) CreateSurveyBatch(w http.ResponseWriter, r *http.Request) {
	cfg, err := ctrl.leanixConfigFromQuery(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	request := new(requests.BatchCreateSurveyRequest)
	err = json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	for i := range request.Requests {
		if err := utils.ValidateStruct(&request.Requests[i]); err != nil {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
			return
		}
	}

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.requestTimeout())
	defer cancel()

	response, err := ctrl.SurveyUsecase.CreateSurveyBatch(ctx, cfg, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, response.Message, response)
}

func (ctrl *SurveyController) GetSurvey(w http.ResponseWriter, r *http.Request) {
	cfg, err := ctrl.leanixConfigFromQuery(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	pollID, err := uuid.Parse(chi.URLParam(r, constvars.URLParamPollID))
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamValidation(err, constvars.URLParamPollID))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.requestTimeout())
	defer cancel()

	response, err := ctrl.SurveyUsecase.GetSurvey(ctx, cfg, pollID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetSurveySuccessMessage, response)
}

func (ctrl *SurveyController) ListSubmissions(w http.ResponseWriter, r *http.Request) {
	limit := int64(50)
	if raw := r.URL.Query().Get(constvars.URLQueryParamLimit); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || parsed <= 0 {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLQueryParamValidation(fmt.Errorf("limit must be a positive integer"), constvars.URLQueryParamLimit))
			return
		}
		limit = parsed
	}

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.requestTimeout())
	defer cancel()

	submissions, err := ctrl.SurveyUsecase.ListSubmissions(ctx, limit)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ListSubmissionsSuccessMessage, submissions)
}
