package leanix

import (
	"context"
	"surveygate-service/internal/pkg/survey"

	"github.com/google/uuid"
)

// PollResponse is the envelope the Poll API wraps results in.
type PollResponse struct {
	Status string    `json:"status"`
	Data   *PollData `json:"data,omitempty"`
}

type PollData struct {
	ID string `json:"id"`
}

// PollClient talks to one LeanIX workspace with one set of credentials.
type PollClient interface {
	CreatePoll(ctx context.Context, poll *survey.PollCreate) (*PollResponse, error)
	GetPoll(ctx context.Context, pollID uuid.UUID) (map[string]interface{}, error)
}

// ClientFactory builds per-request clients over a shared connection pool.
type ClientFactory interface {
	NewClient(cfg Config) PollClient
}
