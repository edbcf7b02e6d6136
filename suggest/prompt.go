package suggest

import (
	"encoding/json"

	"giftwise/models"
)

const SYSTEM_INSTRUCTION = `
You are a gift-recommendation assistant for a personal gifting assistant app.
You receive a JSON payload describing one gift recipient, a requested number
of suggestions, and a list of disallowed titles. Produce fresh, concrete,
buyable gift ideas for this recipient.

The response MUST be a valid JSON object with a single key "suggestions",
whose value is an array of exactly the requested number of objects. Each
object has these keys:

1. id: A short unique string id for the idea.
2. title: A concise product-style title (e.g. "Ceramic Pour-Over Coffee Set").
   Never return generic titles such as "Idea 1" or "Placeholder".
3. short_description: One or two sentences describing the gift.
4. tier: Exactly one of "safe", "thoughtful", "experience", "splurge".
5. price_min / price_max: Numeric estimated price range in whole currency
   units, within the recipient's budget when one is given.
6. price_hint: A short display string with a currency symbol (e.g. "$25–$60").
7. why_it_fits: One sentence tying the idea to this recipient's interests,
   relationship, or notes.
8. suggested_url: Optional product or category URL, or null.
9. image_url: Optional image URL, or null.

Hard constraints:
- NEVER suggest anything whose title matches or closely paraphrases an entry
  in "avoid_titles". Those ideas were already shown, saved, or rejected.
- Every suggestion in the same response must be a genuinely different idea.
- You MUST NOT wrap the JSON output in a markdown code block (e.g. ` + "```json ... ```" + `).
- The response should contain ONLY the raw JSON string.
`

// passPayload is the user-side JSON body sent with each generation pass.
type passPayload struct {
	Recipient      models.RecipientContext `json:"recipient"`
	RequestedCount int                     `json:"requested_count"`
	AvoidTitles    []string                `json:"avoid_titles"`
}

func buildPassPayload(pc models.RecipientContext, requestedCount int, avoid []string) (string, error) {
	if avoid == nil {
		avoid = []string{}
	}
	b, err := json.Marshal(passPayload{
		Recipient:      pc,
		RequestedCount: requestedCount,
		AvoidTitles:    avoid,
	})
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// BuildRecipientContext snapshots a recipient into the immutable prompt
// context for one run. Notes are truncated and interests/recent gifts capped
// to bound prompt size.
func BuildRecipientContext(r *models.Recipient, occasion string, budgetMin, budgetMax *float64) models.RecipientContext {
	pc := models.RecipientContext{
		RecipientID:  r.ID.Hex(),
		Name:         r.Name,
		Relationship: r.Relationship,
		Gender:       r.Gender,
		Notes:        truncateRunes(r.Notes, notesPromptCap),
		Occasion:     occasion,
		AnnualBudget: r.AnnualBudget,
		BudgetMin:    r.GiftMin,
		BudgetMax:    r.GiftMax,
	}
	if budgetMin != nil {
		pc.BudgetMin = *budgetMin
	}
	if budgetMax != nil {
		pc.BudgetMax = *budgetMax
	}

	for _, ic := range r.Interests {
		if len(pc.Interests) == maxInterestGroups {
			break
		}
		if len(ic.Labels) == 0 {
			continue
		}
		pc.Interests = append(pc.Interests, ic)
	}

	for _, g := range r.GiftHistory {
		if len(pc.RecentGifts) == maxRecentGifts {
			break
		}
		if g.Title == "" {
			continue
		}
		pc.RecentGifts = append(pc.RecentGifts, formatGiftHistory(g))
	}
	return pc
}

func formatGiftHistory(g models.GiftHistoryEntry) string {
	out := g.Title
	if g.Occasion != "" {
		out += " (" + g.Occasion + ")"
	}
	return out
}

// truncateRunes returns s truncated to max runes.
func truncateRunes(s string, max int) string {
	rs := []rune(s)
	if len(rs) <= max {
		return s
	}
	return string(rs[:max])
}
