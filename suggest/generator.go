package suggest

import (
	"context"
	"fmt"
	"os"

	"google.golang.org/genai"

	"giftwise/models"
)

// GenaiGenerator drives generation passes through the Google genai API.
type GenaiGenerator struct {
	modelName string
}

func NewGenaiGenerator(modelName string) *GenaiGenerator {
	return &GenaiGenerator{modelName: modelName}
}

// RequestPass sends one generation request and returns the normalized ideas.
// A provider-call failure (missing key, network, timeout) is an error; a
// response that cannot be parsed even via brace extraction is an empty slice
// with nil error, since later passes can still top the request up.
func (g *GenaiGenerator) RequestPass(ctx context.Context, pc models.RecipientContext, requestedCount int, avoid []string) ([]models.GiftIdea, *PassUsage, error) {
	requestedCount = clamp(requestedCount, minSuggestions, maxSuggestions)
	if len(avoid) > exclusionPromptCap {
		avoid = avoid[:exclusionPromptCap]
	}

	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return nil, nil, fmt.Errorf("GEMINI_API_KEY environment variable is not set")
	}

	payload, err := buildPassPayload(pc, requestedCount, avoid)
	if err != nil {
		return nil, nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, passTimeout)
	defer cancel()

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, nil, err
	}

	result, err := client.Models.GenerateContent(
		ctx,
		g.modelName,
		genai.Text(payload),
		&genai.GenerateContentConfig{
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: SYSTEM_INSTRUCTION}}},
		},
	)
	if err != nil {
		return nil, nil, err
	}

	text := result.Text()
	usage := &PassUsage{
		ModelName:       g.modelName,
		ModelVersion:    result.ModelVersion,
		ResponseExcerpt: truncateRunes(text, 200),
	}
	if result.UsageMetadata != nil {
		usage.InputTokens = int64(result.UsageMetadata.PromptTokenCount)
		usage.OutputTokens = int64(result.UsageMetadata.CandidatesTokenCount)
		usage.TotalTokens = int64(result.UsageMetadata.TotalTokenCount)
	}

	raws, ok := parsePassResponse(text)
	if !ok {
		return []models.GiftIdea{}, usage, nil
	}

	ideas := make([]models.GiftIdea, 0, len(raws))
	for i, raw := range raws {
		ideas = append(ideas, normalizeIdea(raw, i))
	}
	return ideas, usage, nil
}
