package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Interest category kinds a recipient profile may carry.
const (
	InterestKindInterest    = "interest"
	InterestKindVibe        = "vibe"
	InterestKindPersonality = "personality"
	InterestKindBrand       = "brand"
)

// InterestCategory groups short labels under a kind (interest/vibe/
// personality/brand).
type InterestCategory struct {
	Kind   string   `bson:"kind" json:"kind"`
	Labels []string `bson:"labels" json:"labels"`
}

// GiftHistoryEntry is one past gift given to the recipient.
type GiftHistoryEntry struct {
	Title    string `bson:"title" json:"title"`
	Occasion string `bson:"occasion" json:"occasion"`
	Year     int    `bson:"year" json:"year"`
}

// Recipient is a person the user buys gifts for.
// Collection: recipients
type Recipient struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID       string             `bson:"user_id" json:"user_id"`
	Name         string             `bson:"name" json:"name"`
	Relationship string             `bson:"relationship" json:"relationship"`
	Gender       string             `bson:"gender" json:"gender"`
	Notes        string             `bson:"notes" json:"notes"`
	AnnualBudget float64            `bson:"annual_budget" json:"annual_budget"`
	GiftMin      float64            `bson:"gift_min" json:"gift_min"`
	GiftMax      float64            `bson:"gift_max" json:"gift_max"`
	Interests    []InterestCategory `bson:"interests" json:"interests"`
	GiftHistory  []GiftHistoryEntry `bson:"gift_history" json:"gift_history"`
	CreatedAt    time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time          `bson:"updated_at" json:"updated_at"`
}
