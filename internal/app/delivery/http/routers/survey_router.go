package routers

import (
	"fmt"
	"surveygate-service/internal/app/delivery/http/middlewares"
	"surveygate-service/internal/app/services/surveys"
	"surveygate-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachSurveyRoutes(router chi.Router, middlewares *middlewares.Middlewares, surveyController *surveys.SurveyController) {
	router.Post("/validate", surveyController.ValidateSurvey)
	router.Post("/", surveyController.CreateSurvey)
	router.Post("/batch", surveyController.CreateSurveyBatch)
	router.Get("/submissions", surveyController.ListSubmissions)
	router.Get(fmt.Sprintf("/{%s}", constvars.URLParamPollID), surveyController.GetSurvey)
}
