package suggest

import (
	"context"
	"math"

	"golang.org/x/sync/errgroup"

	"giftwise/logger"
	"giftwise/models"
)

// enrich resolves a product match for every accepted idea concurrently. Each
// lookup is isolated: a failing item degrades to a nil product while the
// rest proceed. Output preserves input order and length exactly.
func (e *Engine) enrich(ctx context.Context, ideas []models.GiftIdea) []models.EnrichedGiftIdea {
	out := make([]models.EnrichedGiftIdea, len(ideas))

	g := new(errgroup.Group)
	for i, idea := range ideas {
		out[i] = models.EnrichedGiftIdea{GiftIdea: idea}
		g.Go(func() error {
			minCents := toMinorUnits(idea.PriceMin)
			maxCents := toMinorUnits(idea.PriceMax)
			p, err := e.products.FindBest(ctx, idea.Title, minCents, maxCents)
			if err != nil {
				logger.WarnWithFields("product enrichment failed", logger.Fields{
					"idea_title": idea.Title, "error": err.Error(),
				})
				return nil
			}
			if p != nil {
				out[i].Product = &models.ProductMatch{
					ExternalID:   p.ID,
					Title:        p.Title,
					ImageURL:     p.ImageURL,
					PriceDisplay: p.PriceDisplay,
					DetailURL:    p.DetailURL,
				}
			}
			return nil
		})
	}
	_ = g.Wait()
	return out
}

// toMinorUnits converts a whole-currency price to minor units (cents).
func toMinorUnits(v *float64) *int64 {
	if v == nil {
		return nil
	}
	c := int64(math.Round(*v * 100))
	return &c
}
