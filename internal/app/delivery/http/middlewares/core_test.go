package middlewares

import (
	"net/http"
	"net/http/httptest"
	"surveygate-service/internal/app/config"
	"surveygate-service/internal/pkg/constvars"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestRequestIDMiddleware(t *testing.T) {
	middlewares := &Middlewares{
		Log:            zap.NewNop(),
		InternalConfig: &config.InternalConfig{},
	}

	testHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
		assert.True(t, ok, "request id should be set in context")
		assert.NotEmpty(t, requestID)
		w.WriteHeader(http.StatusOK)
	})

	t.Run("Generates a request id when none is supplied", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/api/v1/surveys/validate", nil)

		rr := httptest.NewRecorder()
		middlewares.RequestIDMiddleware(testHandler).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.NotEmpty(t, rr.Header().Get(constvars.HeaderXRequestID), "response should echo a request id")
	})

	t.Run("Propagates a client supplied request id", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/api/v1/surveys/validate", nil)
		req.Header.Set(constvars.HeaderXRequestID, "client-request-id")

		rr := httptest.NewRecorder()
		middlewares.RequestIDMiddleware(testHandler).ServeHTTP(rr, req)

		assert.Equal(t, "client-request-id", rr.Header().Get(constvars.HeaderXRequestID))
	})
}

func TestErrorHandler(t *testing.T) {
	middlewares := &Middlewares{
		Log:            zap.NewNop(),
		InternalConfig: &config.InternalConfig{},
	}

	t.Run("Recovers from panics with a 500 response", func(t *testing.T) {
		panicking := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			panic("something broke")
		})

		req := httptest.NewRequest("GET", "/health", nil)
		rr := httptest.NewRecorder()
		middlewares.ErrorHandler(panicking).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.Contains(t, rr.Body.String(), `"success":false`)
	})

	t.Run("Leaves normal responses alone", func(t *testing.T) {
		healthy := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		})

		req := httptest.NewRequest("GET", "/health", nil)
		rr := httptest.NewRecorder()
		middlewares.ErrorHandler(healthy).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})
}
