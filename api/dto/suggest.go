package dto

import (
	"time"

	"giftwise/models"
	"giftwise/suggest"
)

// SuggestRequestDTO is the body of POST /suggestions.
type SuggestRequestDTO struct {
	RecipientID         string   `json:"recipient_id" binding:"required"`
	Occasion            string   `json:"occasion"`
	BudgetMin           *float64 `json:"budget_min"`
	BudgetMax           *float64 `json:"budget_max"`
	NumSuggestions      int      `json:"num_suggestions"`
	PreviousSuggestions []string `json:"previous_suggestions"`
}

// ProductMatchDTO is an enriched idea's resolved product.
type ProductMatchDTO struct {
	ExternalID   string `json:"external_id"`
	Title        string `json:"title"`
	ImageURL     string `json:"image_url"`
	PriceDisplay string `json:"price_display"`
	DetailURL    string `json:"detail_url"`
}

// EnrichedIdeaDTO is one final suggestion with its history flags. Product is
// null when no match was found for this item.
type EnrichedIdeaDTO struct {
	ID               string           `json:"id"`
	Title            string           `json:"title"`
	ShortDescription string           `json:"short_description"`
	Tier             string           `json:"tier"`
	PriceMin         *float64         `json:"price_min,omitempty"`
	PriceMax         *float64         `json:"price_max,omitempty"`
	PriceHint        string           `json:"price_hint"`
	WhyItFits        string           `json:"why_it_fits"`
	SuggestedURL     string           `json:"suggested_url,omitempty"`
	ImageURL         string           `json:"image_url,omitempty"`
	Product          *ProductMatchDTO `json:"product"`
	Saved            bool             `json:"saved"`
	Liked            bool             `json:"liked"`
	Disliked         bool             `json:"disliked"`
}

// SuggestionRunDTO is a persisted run as returned to clients.
type SuggestionRunDTO struct {
	ID          string            `json:"id"`
	RecipientID string            `json:"recipient_id"`
	ModelName   string            `json:"model_name"`
	Ideas       []EnrichedIdeaDTO `json:"ideas"`
	CreatedAt   time.Time         `json:"created_at"`
}

// SuggestResponseDTO wraps a run with the request's diagnostics.
type SuggestResponseDTO struct {
	Run        SuggestionRunDTO `json:"run"`
	PassesUsed int              `json:"passes_used"`
	Shortfall  int              `json:"shortfall"`
}

func MapEnrichedIdea(i models.EnrichedGiftIdea) EnrichedIdeaDTO {
	d := EnrichedIdeaDTO{
		ID:               i.ID,
		Title:            i.Title,
		ShortDescription: i.ShortDescription,
		Tier:             i.Tier,
		PriceMin:         i.PriceMin,
		PriceMax:         i.PriceMax,
		PriceHint:        i.PriceHint,
		WhyItFits:        i.WhyItFits,
		SuggestedURL:     i.SuggestedURL,
		ImageURL:         i.ImageURL,
		Saved:            i.Saved,
		Liked:            i.Liked,
		Disliked:         i.Disliked,
	}
	if i.Product != nil {
		d.Product = &ProductMatchDTO{
			ExternalID:   i.Product.ExternalID,
			Title:        i.Product.Title,
			ImageURL:     i.Product.ImageURL,
			PriceDisplay: i.Product.PriceDisplay,
			DetailURL:    i.Product.DetailURL,
		}
	}
	return d
}

func MapSuggestionRun(run *models.SuggestionRun) SuggestionRunDTO {
	ideas := make([]EnrichedIdeaDTO, 0, len(run.Ideas))
	for _, i := range run.Ideas {
		ideas = append(ideas, MapEnrichedIdea(i))
	}
	return SuggestionRunDTO{
		ID:          run.ID.Hex(),
		RecipientID: run.RecipientID.Hex(),
		ModelName:   run.ModelName,
		Ideas:       ideas,
		CreatedAt:   run.CreatedAt,
	}
}

func MapSuggestResult(res *suggest.Result) SuggestResponseDTO {
	return SuggestResponseDTO{
		Run:        MapSuggestionRun(res.Run),
		PassesUsed: res.PassesUsed,
		Shortfall:  res.Shortfall,
	}
}
