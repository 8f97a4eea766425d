package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"surveygate-service/internal/app/config"
	"surveygate-service/internal/app/delivery/http/middlewares"
	"surveygate-service/internal/app/delivery/http/routers"
	"surveygate-service/internal/app/drivers/database"
	"surveygate-service/internal/app/drivers/logger"
	"surveygate-service/internal/app/services/leanix"
	sharedredis "surveygate-service/internal/app/services/shared/redis"
	"surveygate-service/internal/app/services/surveys"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewZapLogger(driverConfig, internalConfig)
	defer log.Sync()

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatal("Error loading location", zap.Error(err))
	}
	time.Local = location

	mongoDB := database.NewMongoDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrapingTheApp(config.Bootstrap{
		Router:         chiRouter,
		MongoDB:        mongoDB,
		Redis:          redisClient,
		Logger:         log,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	})

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	log.Info("Server started", zap.String("address", internalConfig.App.Port))

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Info("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exiting")
}

func bootstrapingTheApp(bootstrap config.Bootstrap) {
	// Redis
	redisRepository := sharedredis.NewRedisRepository(bootstrap.Redis)

	// Middlewares
	appMiddlewares := &middlewares.Middlewares{
		Log:            bootstrap.Logger,
		InternalConfig: bootstrap.InternalConfig,
	}

	// LeanIX
	leanixHTTPClient := leanix.NewHTTPClient(bootstrap.InternalConfig)
	clientFactory := leanix.NewPollClientFactory(leanixHTTPClient)

	// Survey
	submissionRepository := surveys.NewSubmissionMongoRepository(
		bootstrap.MongoDB,
		bootstrap.DriverConfig.MongoDB.DbName,
	)
	surveyUsecase := surveys.NewSurveyUsecase(
		bootstrap.Logger,
		clientFactory,
		redisRepository,
		submissionRepository,
		bootstrap.InternalConfig,
	)
	surveyController := surveys.NewSurveyController(bootstrap.Logger, surveyUsecase, bootstrap.InternalConfig)

	routers.SetupRoutes(bootstrap.Router, bootstrap.InternalConfig, appMiddlewares, surveyController)
}
