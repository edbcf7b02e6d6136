package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Feedback preferences.
const (
	PreferenceLiked    = "liked"
	PreferenceDisliked = "disliked"
)

// IdeaFeedback records a like/dislike on one idea of a suggestion run.
// IdeaTitle is denormalized at write time; older rows may lack it, in which
// case readers join back to the run by (run_id, idea_index).
// Collection: idea_feedback
type IdeaFeedback struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID      string             `bson:"user_id" json:"user_id"`
	RecipientID primitive.ObjectID `bson:"recipient_id" json:"recipient_id"`
	RunID       primitive.ObjectID `bson:"run_id" json:"run_id"`
	IdeaIndex   int                `bson:"idea_index" json:"idea_index"`
	IdeaTitle   string             `bson:"idea_title,omitempty" json:"idea_title,omitempty"`
	Preference  string             `bson:"preference" json:"preference"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
}
