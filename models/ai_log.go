package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AILog stores one generation-pass call to the text provider (system
// monitoring purpose).
// Collection: ai_logs
type AILog struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID          string             `bson:"user_id" json:"user_id"`
	RecipientID     primitive.ObjectID `bson:"recipient_id" json:"recipient_id"`
	ModelName       string             `bson:"model_name" json:"model_name"`
	ModelVersion    string             `bson:"model_version,omitempty" json:"model_version,omitempty"`
	Pass            int                `bson:"pass" json:"pass"`
	RequestedCount  int                `bson:"requested_count" json:"requested_count"`
	InputTokens     int64              `bson:"input_tokens" json:"input_tokens"`
	OutputTokens    int64              `bson:"output_tokens" json:"output_tokens"`
	TotalTokens     int64              `bson:"total_tokens" json:"total_tokens"`
	DurationMs      int64              `bson:"duration_ms" json:"duration_ms"`
	Success         bool               `bson:"success" json:"success"`
	ErrorMessage    *string            `bson:"error_message,omitempty" json:"error_message,omitempty"`
	ResponseExcerpt string             `bson:"response_excerpt" json:"response_excerpt"`
	RequestedAt     time.Time          `bson:"requested_at" json:"requested_at"`
	CompletedAt     time.Time          `bson:"completed_at" json:"completed_at"`
}
