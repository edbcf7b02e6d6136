package dto

import (
	"time"

	"giftwise/models"
)

// IdeaFeedbackRequestDTO is the body of POST /runs/:id/ideas/:index/feedback.
type IdeaFeedbackRequestDTO struct {
	Preference string `json:"preference" binding:"required" example:"liked"`
}

// SavedIdeaDTO is a saved idea as returned to clients.
type SavedIdeaDTO struct {
	ID               string           `json:"id"`
	RecipientID      string           `json:"recipient_id"`
	Title            string           `json:"title"`
	ShortDescription string           `json:"short_description"`
	Tier             string           `json:"tier"`
	PriceHint        string           `json:"price_hint"`
	WhyItFits        string           `json:"why_it_fits"`
	SuggestedURL     string           `json:"suggested_url,omitempty"`
	ImageURL         string           `json:"image_url,omitempty"`
	Product          *ProductMatchDTO `json:"product,omitempty"`
	RunID            string           `json:"run_id,omitempty"`
	CreatedAt        time.Time        `json:"created_at"`
}

func MapSavedIdea(s models.SavedIdea) SavedIdeaDTO {
	d := SavedIdeaDTO{
		ID:               s.ID.Hex(),
		RecipientID:      s.RecipientID.Hex(),
		Title:            s.Title,
		ShortDescription: s.ShortDescription,
		Tier:             s.Tier,
		PriceHint:        s.PriceHint,
		WhyItFits:        s.WhyItFits,
		SuggestedURL:     s.SuggestedURL,
		ImageURL:         s.ImageURL,
		CreatedAt:        s.CreatedAt,
	}
	if s.Product != nil {
		d.Product = &ProductMatchDTO{
			ExternalID:   s.Product.ExternalID,
			Title:        s.Product.Title,
			ImageURL:     s.Product.ImageURL,
			PriceDisplay: s.Product.PriceDisplay,
			DetailURL:    s.Product.DetailURL,
		}
	}
	if s.RunID != nil {
		d.RunID = s.RunID.Hex()
	}
	return d
}
