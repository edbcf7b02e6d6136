package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SavedIdea is a gift idea the user kept for a recipient. It carries a
// denormalized copy of the idea so it stays readable even if the originating
// run is pruned.
// Collection: saved_ideas
type SavedIdea struct {
	ID               primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	UserID           string              `bson:"user_id" json:"user_id"`
	RecipientID      primitive.ObjectID  `bson:"recipient_id" json:"recipient_id"`
	Title            string              `bson:"title" json:"title"`
	ShortDescription string              `bson:"short_description" json:"short_description"`
	Tier             string              `bson:"tier" json:"tier"`
	PriceHint        string              `bson:"price_hint" json:"price_hint"`
	WhyItFits        string              `bson:"why_it_fits" json:"why_it_fits"`
	SuggestedURL     string              `bson:"suggested_url,omitempty" json:"suggested_url,omitempty"`
	ImageURL         string              `bson:"image_url,omitempty" json:"image_url,omitempty"`
	Product          *ProductMatch       `bson:"product,omitempty" json:"product,omitempty"`
	RunID            *primitive.ObjectID `bson:"run_id,omitempty" json:"run_id,omitempty"`
	IdeaIndex        *int                `bson:"idea_index,omitempty" json:"idea_index,omitempty"`
	CreatedAt        time.Time           `bson:"created_at" json:"created_at"`
}
