package suggest

import (
	"encoding/json"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"giftwise/logger"
	"giftwise/models"
)

// Filler text keeps the idea shape complete when the provider leaves fields
// blank. It is never meant to survive to final output: placeholder detection
// runs after normalization and rejects filler-shaped ideas.
const (
	fillerDescription = "A thoughtful pick for this recipient."
	fillerWhyItFits   = "Fits their interests and the gift budget."
)

// Default placeholder-title patterns. These cover the known provider failure
// mode of echoing the schema's own example ideas back; deployments can extend
// them via suggestions.placeholder_patterns in config.yaml.
var DefaultPlaceholderPatterns = []string{
	`(?i)^idea\s*\d+`,
	`(?i)^placeholder$`,
}

var fillerTitlePattern = regexp.MustCompile(`(?i)^(idea|gift|suggestion)\b`)

var validTiers = map[string]struct{}{
	models.TierSafe:       {},
	models.TierThoughtful: {},
	models.TierExperience: {},
	models.TierSplurge:    {},
}

// CompilePlaceholderPatterns compiles the configured patterns, skipping (and
// logging) invalid ones. An empty input yields the defaults.
func CompilePlaceholderPatterns(patterns []string) []*regexp.Regexp {
	if len(patterns) == 0 {
		patterns = DefaultPlaceholderPatterns
	}
	out := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		re, err := regexp.Compile(p)
		if err != nil {
			logger.Log.Warnf("skipping invalid placeholder pattern %q: %v", p, err)
			continue
		}
		out = append(out, re)
	}
	return out
}

// isPlaceholder reports whether a normalized idea looks like the provider
// echoed an example rather than generating a real suggestion.
func isPlaceholder(idea models.GiftIdea, patterns []*regexp.Regexp) bool {
	title := strings.TrimSpace(idea.Title)
	for _, p := range patterns {
		if p.MatchString(title) {
			return true
		}
	}
	// Generic filler description combined with a placeholder-style title.
	if idea.ShortDescription == fillerDescription && fillerTitlePattern.MatchString(title) {
		return true
	}
	return false
}

// flexFloat tolerates the provider sending prices as numbers, numeric
// strings, or garbage. Anything malformed or non-finite decodes to nil.
type flexFloat struct {
	v *float64
}

func (f *flexFloat) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "" || s == "null" {
		return nil
	}
	if strings.HasPrefix(s, `"`) {
		var unquoted string
		if err := json.Unmarshal(b, &unquoted); err != nil {
			return nil
		}
		s = strings.TrimSpace(unquoted)
	}
	val, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(val) || math.IsInf(val, 0) {
		return nil
	}
	f.v = &val
	return nil
}

// flexString tolerates string or numeric ids.
type flexString struct {
	v string
}

func (f *flexString) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "" || s == "null" {
		return nil
	}
	if strings.HasPrefix(s, `"`) {
		var unquoted string
		if err := json.Unmarshal(b, &unquoted); err != nil {
			return nil
		}
		f.v = strings.TrimSpace(unquoted)
		return nil
	}
	f.v = s
	return nil
}

// rawIdea mirrors the loosely shaped provider response. Image URLs arrive
// under either of two field names depending on the provider version.
type rawIdea struct {
	ID               flexString `json:"id"`
	Title            string     `json:"title"`
	ShortDescription string     `json:"short_description"`
	Tier             string     `json:"tier"`
	PriceMin         flexFloat  `json:"price_min"`
	PriceMax         flexFloat  `json:"price_max"`
	PriceHint        string     `json:"price_hint"`
	PriceGuidance    string     `json:"price_guidance"`
	WhyItFits        string     `json:"why_it_fits"`
	SuggestedURL     string     `json:"suggested_url"`
	ImageURL         string     `json:"image_url"`
	Image            string     `json:"image"`
}

type passResponse struct {
	Suggestions []rawIdea `json:"suggestions"`
}

// parsePassResponse decodes the provider response, falling back to the first
// balanced brace span when the body is not strictly valid JSON. ok is false
// when nothing usable could be extracted.
func parsePassResponse(text string) ([]rawIdea, bool) {
	body := stripCodeFences(text)
	if body == "" {
		return nil, false
	}

	var resp passResponse
	if err := json.Unmarshal([]byte(body), &resp); err == nil {
		return resp.Suggestions, true
	}

	span, ok := firstJSONObject(body)
	if !ok {
		return nil, false
	}
	resp = passResponse{}
	if err := json.Unmarshal([]byte(span), &resp); err != nil {
		return nil, false
	}
	return resp.Suggestions, true
}

// normalizeIdea turns a raw provider idea into a well-shaped GiftIdea. Blank
// titles become placeholder titles tagged for downstream rejection rather
// than errors, so one bad item never poisons the pass.
func normalizeIdea(raw rawIdea, index int) models.GiftIdea {
	idea := models.GiftIdea{
		ID:               raw.ID.v,
		Title:            strings.TrimSpace(raw.Title),
		ShortDescription: strings.TrimSpace(raw.ShortDescription),
		Tier:             strings.ToLower(strings.TrimSpace(raw.Tier)),
		PriceMin:         raw.PriceMin.v,
		PriceMax:         raw.PriceMax.v,
		WhyItFits:        strings.TrimSpace(raw.WhyItFits),
		SuggestedURL:     strings.TrimSpace(raw.SuggestedURL),
		ImageURL:         strings.TrimSpace(raw.ImageURL),
	}

	if idea.ID == "" {
		idea.ID = fmt.Sprintf("idea-%d-%s", index+1, uuid.NewString()[:8])
	}
	if idea.Title == "" {
		idea.Title = fmt.Sprintf("Idea %d", index+1)
	}
	if _, ok := validTiers[idea.Tier]; !ok {
		idea.Tier = models.TierThoughtful
	}
	if idea.PriceMin != nil && idea.PriceMax != nil && *idea.PriceMin > *idea.PriceMax {
		idea.PriceMin, idea.PriceMax = idea.PriceMax, idea.PriceMin
	}

	hint := strings.TrimSpace(raw.PriceHint)
	if hint == "" {
		hint = strings.TrimSpace(raw.PriceGuidance)
	}
	if !validPriceHint(hint) {
		hint = derivePriceHint(idea.PriceMin, idea.PriceMax)
	}
	idea.PriceHint = hint

	if idea.ImageURL == "" {
		idea.ImageURL = strings.TrimSpace(raw.Image)
	}
	if idea.ShortDescription == "" {
		idea.ShortDescription = fillerDescription
	}
	if idea.WhyItFits == "" {
		idea.WhyItFits = fillerWhyItFits
	}
	return idea
}

// validPriceHint accepts free-text guidance only when it names both a
// currency and an amount.
func validPriceHint(s string) bool {
	if s == "" {
		return false
	}
	if !strings.ContainsAny(s, "$€£¥₩") {
		return false
	}
	return strings.ContainsAny(s, "0123456789")
}

// derivePriceHint builds a display hint from the numeric range.
func derivePriceHint(min, max *float64) string {
	format := func(v float64) string {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	switch {
	case min != nil && max != nil:
		return fmt.Sprintf("$%s–$%s", format(*min), format(*max))
	case min != nil:
		return fmt.Sprintf("$%s+", format(*min))
	case max != nil:
		return fmt.Sprintf("Up to $%s", format(*max))
	default:
		return ""
	}
}
