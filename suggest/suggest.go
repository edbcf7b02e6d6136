// Package suggest implements the gift-suggestion engine: a multi-pass
// generation loop that filters ideas against the recipient's history,
// enriches survivors with live product data and persists the batch as one
// immutable run.
package suggest

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"giftwise/models"
	"giftwise/productsearch"
)

// Engine tuning. The pass budget and top-up buffer exist because the
// provider predictably echoes some fraction of previously seen or
// placeholder ideas; one larger ask converges faster than single-item
// retries.
const (
	minSuggestions     = 3
	maxSuggestions     = 10
	defaultSuggestions = 5
	topUpBuffer        = 2
	maxExtraPasses     = 3
	exclusionPromptCap = 30
	recentRunWindow    = 90 * 24 * time.Hour
	recentRunCap       = 24
	ideasPerRunCap     = 20
	notesPromptCap     = 280
	maxInterestGroups  = 3
	maxRecentGifts     = 3
	passTimeout        = 90 * time.Second
)

// Fatal request-ending conditions. Everything else degrades.
var (
	ErrRecipientNotFound   = errors.New("recipient not found")
	ErrProviderUnavailable = errors.New("generation provider unavailable")
	ErrNothingGenerated    = errors.New("no usable suggestions generated")
)

// Store is the persistence surface the engine depends on. Every read and the
// run write are scoped by (user id, recipient id) ownership.
type Store interface {
	RecipientByIDAndUser(ctx context.Context, id primitive.ObjectID, userID string) (*models.Recipient, error)
	SavedIdeasByRecipient(ctx context.Context, userID string, recipientID primitive.ObjectID) ([]models.SavedIdea, error)
	FeedbackByRecipient(ctx context.Context, userID string, recipientID primitive.ObjectID, prefs []string) ([]models.IdeaFeedback, error)
	RunByIDAndUser(ctx context.Context, id primitive.ObjectID, userID string) (*models.SuggestionRun, error)
	RunsByRecipientSince(ctx context.Context, userID string, recipientID primitive.ObjectID, since time.Time, limit int64) ([]models.SuggestionRun, error)
	InsertRun(ctx context.Context, run *models.SuggestionRun) (*models.SuggestionRun, error)
	InsertAILog(ctx context.Context, l models.AILog) error
}

// PassUsage reports provider-side metrics for one generation pass.
type PassUsage struct {
	ModelName       string
	ModelVersion    string
	InputTokens     int64
	OutputTokens    int64
	TotalTokens     int64
	ResponseExcerpt string
}

// Generator issues one request to the text-generation provider. A non-nil
// error means the provider call itself failed (network/auth/timeout); an
// unparseable response is an empty slice with a nil error.
type Generator interface {
	RequestPass(ctx context.Context, pc models.RecipientContext, requestedCount int, avoid []string) ([]models.GiftIdea, *PassUsage, error)
}

// ProductSearcher resolves a product match for one idea. (nil, nil) means no
// candidates.
type ProductSearcher interface {
	FindBest(ctx context.Context, query string, minCents, maxCents *int64) (*productsearch.Product, error)
}

// QuotaLimiter gates generation passes. ok=false means the quota is
// exhausted and the call must be skipped.
type QuotaLimiter interface {
	WaitAndReserve(ctx context.Context) (bool, error)
}

// EventPublisher emits a domain event after a run persists.
type EventPublisher interface {
	PublishRunCreated(run *models.SuggestionRun) error
}

// Request is one suggestion request after auth resolution.
type Request struct {
	UserID              string
	RecipientID         primitive.ObjectID
	Occasion            string
	BudgetMin           *float64
	BudgetMax           *float64
	NumSuggestions      int
	PreviousSuggestions []string
}

// FilterCounts are the data-quality rejection counters logged per request.
type FilterCounts struct {
	Excluded    int
	Placeholder int
	NoKey       int
}

// Result is a successful suggestion run plus its diagnostics.
type Result struct {
	Run        *models.SuggestionRun
	PassesUsed int
	Shortfall  int
	Filtered   FilterCounts
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
