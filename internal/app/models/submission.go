package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SurveySubmission is the audit record written for every poll creation
// attempt, single or batch.
type SurveySubmission struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	PollID        string             `bson:"pollId,omitempty" json:"poll_id,omitempty"`
	Title         string             `bson:"title" json:"title"`
	FactSheetType string             `bson:"factSheetType" json:"fact_sheet_type"`
	Language      string             `bson:"language" json:"language"`
	Success       bool               `bson:"success" json:"success"`
	Error         string             `bson:"error,omitempty" json:"error,omitempty"`
	CreatedAt     time.Time          `bson:"createdAt" json:"created_at"`
}
