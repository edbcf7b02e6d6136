package dto

import (
	"time"

	"giftwise/models"
)

// InterestCategoryDTO groups short labels under a kind
// (interest/vibe/personality/brand).
type InterestCategoryDTO struct {
	Kind   string   `json:"kind"`
	Labels []string `json:"labels"`
}

// GiftHistoryEntryDTO is one past gift given to the recipient.
type GiftHistoryEntryDTO struct {
	Title    string `json:"title"`
	Occasion string `json:"occasion"`
	Year     int    `json:"year"`
}

// CreateRecipientRequestDTO is the body of POST /recipients.
type CreateRecipientRequestDTO struct {
	Name         string                `json:"name" binding:"required"`
	Relationship string                `json:"relationship"`
	Gender       string                `json:"gender"`
	Notes        string                `json:"notes"`
	AnnualBudget float64               `json:"annual_budget"`
	GiftMin      float64               `json:"gift_min"`
	GiftMax      float64               `json:"gift_max"`
	Interests    []InterestCategoryDTO `json:"interests"`
	GiftHistory  []GiftHistoryEntryDTO `json:"gift_history"`
}

// RecipientDTO is a recipient as returned to clients.
type RecipientDTO struct {
	ID           string                `json:"id"`
	Name         string                `json:"name"`
	Relationship string                `json:"relationship"`
	Gender       string                `json:"gender,omitempty"`
	Notes        string                `json:"notes,omitempty"`
	AnnualBudget float64               `json:"annual_budget"`
	GiftMin      float64               `json:"gift_min"`
	GiftMax      float64               `json:"gift_max"`
	Interests    []InterestCategoryDTO `json:"interests,omitempty"`
	GiftHistory  []GiftHistoryEntryDTO `json:"gift_history,omitempty"`
	CreatedAt    time.Time             `json:"created_at"`
}

func (r CreateRecipientRequestDTO) ToModel(userID string) *models.Recipient {
	rec := &models.Recipient{
		UserID:       userID,
		Name:         r.Name,
		Relationship: r.Relationship,
		Gender:       r.Gender,
		Notes:        r.Notes,
		AnnualBudget: r.AnnualBudget,
		GiftMin:      r.GiftMin,
		GiftMax:      r.GiftMax,
	}
	for _, ic := range r.Interests {
		rec.Interests = append(rec.Interests, models.InterestCategory{Kind: ic.Kind, Labels: ic.Labels})
	}
	for _, g := range r.GiftHistory {
		rec.GiftHistory = append(rec.GiftHistory, models.GiftHistoryEntry{Title: g.Title, Occasion: g.Occasion, Year: g.Year})
	}
	return rec
}

func MapRecipient(r models.Recipient) RecipientDTO {
	d := RecipientDTO{
		ID:           r.ID.Hex(),
		Name:         r.Name,
		Relationship: r.Relationship,
		Gender:       r.Gender,
		Notes:        r.Notes,
		AnnualBudget: r.AnnualBudget,
		GiftMin:      r.GiftMin,
		GiftMax:      r.GiftMax,
		CreatedAt:    r.CreatedAt,
	}
	for _, ic := range r.Interests {
		d.Interests = append(d.Interests, InterestCategoryDTO{Kind: ic.Kind, Labels: ic.Labels})
	}
	for _, g := range r.GiftHistory {
		d.GiftHistory = append(d.GiftHistory, GiftHistoryEntryDTO{Title: g.Title, Occasion: g.Occasion, Year: g.Year})
	}
	return d
}
