package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Gift idea tiers. Unrecognized provider values default to TierThoughtful.
const (
	TierSafe       = "safe"
	TierThoughtful = "thoughtful"
	TierExperience = "experience"
	TierSplurge    = "splurge"
)

// GiftIdea is one generated suggestion before product enrichment.
type GiftIdea struct {
	ID               string   `bson:"id" json:"id"`
	Title            string   `bson:"title" json:"title"`
	ShortDescription string   `bson:"short_description" json:"short_description"`
	Tier             string   `bson:"tier" json:"tier"`
	PriceMin         *float64 `bson:"price_min,omitempty" json:"price_min,omitempty"`
	PriceMax         *float64 `bson:"price_max,omitempty" json:"price_max,omitempty"`
	PriceHint        string   `bson:"price_hint" json:"price_hint"`
	WhyItFits        string   `bson:"why_it_fits" json:"why_it_fits"`
	SuggestedURL     string   `bson:"suggested_url,omitempty" json:"suggested_url,omitempty"`
	ImageURL         string   `bson:"image_url,omitempty" json:"image_url,omitempty"`
}

// ProductMatch is a live product resolved for an idea by the product-search
// provider.
type ProductMatch struct {
	ExternalID   string `bson:"external_id" json:"external_id"`
	Title        string `bson:"title" json:"title"`
	ImageURL     string `bson:"image_url" json:"image_url"`
	PriceDisplay string `bson:"price_display" json:"price_display"`
	DetailURL    string `bson:"detail_url" json:"detail_url"`
}

// EnrichedGiftIdea is a GiftIdea with its optional product match and the
// history flags resolved at generation time. Product is nil when no match was
// found or the lookup for this item failed.
type EnrichedGiftIdea struct {
	GiftIdea `bson:",inline"`
	Product  *ProductMatch `bson:"product" json:"product"`
	Saved    bool          `bson:"saved" json:"saved"`
	Liked    bool          `bson:"liked" json:"liked"`
	Disliked bool          `bson:"disliked" json:"disliked"`
}

// RecipientContext is the immutable prompt-context snapshot a run was
// generated from. Notes are truncated and interests/recent gifts capped when
// the snapshot is built.
type RecipientContext struct {
	RecipientID  string             `bson:"recipient_id" json:"recipient_id"`
	Name         string             `bson:"name" json:"name"`
	Relationship string             `bson:"relationship" json:"relationship"`
	Gender       string             `bson:"gender,omitempty" json:"gender,omitempty"`
	Notes        string             `bson:"notes,omitempty" json:"notes,omitempty"`
	Occasion     string             `bson:"occasion,omitempty" json:"occasion,omitempty"`
	AnnualBudget float64            `bson:"annual_budget,omitempty" json:"annual_budget,omitempty"`
	BudgetMin    float64            `bson:"budget_min,omitempty" json:"budget_min,omitempty"`
	BudgetMax    float64            `bson:"budget_max,omitempty" json:"budget_max,omitempty"`
	Interests    []InterestCategory `bson:"interests,omitempty" json:"interests,omitempty"`
	RecentGifts  []string           `bson:"recent_gifts,omitempty" json:"recent_gifts,omitempty"`
}

// SuggestionRun is one persisted, immutable batch of enriched suggestions.
// Collection: suggestion_runs
type SuggestionRun struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID      string             `bson:"user_id" json:"user_id"`
	RecipientID primitive.ObjectID `bson:"recipient_id" json:"recipient_id"`
	ModelName   string             `bson:"model_name" json:"model_name"`
	Context     RecipientContext   `bson:"context" json:"context"`
	Ideas       []EnrichedGiftIdea `bson:"ideas" json:"ideas"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
}
