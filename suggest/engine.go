package suggest

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"giftwise/canon"
	"giftwise/logger"
	"giftwise/models"
)

// Engine wires the controller's collaborators. Quota and Events are
// optional; a nil value disables that concern.
type Engine struct {
	store        Store
	generator    Generator
	products     ProductSearcher
	quota        QuotaLimiter
	events       EventPublisher
	modelName    string
	placeholders []*regexp.Regexp
}

// EngineConfig collects the engine dependencies.
type EngineConfig struct {
	Store               Store
	Generator           Generator
	Products            ProductSearcher
	Quota               QuotaLimiter
	Events              EventPublisher
	ModelName           string
	PlaceholderPatterns []string
}

func NewEngine(cfg EngineConfig) *Engine {
	return &Engine{
		store:        cfg.Store,
		generator:    cfg.Generator,
		products:     cfg.Products,
		quota:        cfg.Quota,
		events:       cfg.Events,
		modelName:    cfg.ModelName,
		placeholders: CompilePlaceholderPatterns(cfg.PlaceholderPatterns),
	}
}

// Suggest runs the full pipeline for one request: ownership check, history
// exclusions, the bounded multi-pass generation loop, enrichment fan-out and
// the final run write. It returns a partial list on a late-pass provider
// failure but fails outright when nothing usable was generated at all.
func (e *Engine) Suggest(ctx context.Context, req Request) (*Result, error) {
	target := req.NumSuggestions
	if target == 0 {
		target = defaultSuggestions
	}
	target = clamp(target, minSuggestions, maxSuggestions)

	// Ownership check: must pass before any provider call.
	recipient, err := e.store.RecipientByIDAndUser(ctx, req.RecipientID, req.UserID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrRecipientNotFound
		}
		return nil, fmt.Errorf("load recipient: %w", err)
	}

	hist := e.buildHistoryIndex(ctx, req.UserID, req.RecipientID, req.PreviousSuggestions)
	pc := BuildRecipientContext(recipient, req.Occasion, req.BudgetMin, req.BudgetMax)

	accepted := []models.GiftIdea{}
	var counts FilterCounts
	passesUsed := 0

	for len(accepted) < target && passesUsed <= maxExtraPasses {
		remaining := target - len(accepted)
		requested := clamp(remaining+topUpBuffer, minSuggestions, maxSuggestions)

		if e.quota != nil {
			ok, qerr := e.quota.WaitAndReserve(ctx)
			if qerr != nil || !ok {
				if qerr == nil {
					qerr = errors.New("generation quota exhausted")
				}
				if passesUsed == 0 {
					return nil, fmt.Errorf("%w: %v", ErrProviderUnavailable, qerr)
				}
				logger.WarnWithFields("generation stopped by quota", logger.Fields{
					"pass": passesUsed, "error": qerr.Error(),
				})
				break
			}
		}

		avoid := hist.exclusions.Sample(exclusionPromptCap)
		started := time.Now()
		ideas, usage, perr := e.generator.RequestPass(ctx, pc, requested, avoid)
		e.logPass(ctx, req, passesUsed, requested, usage, started, perr)

		if perr != nil {
			// Pass 0 failing means the provider is down for this request;
			// a later pass failing just stops the top-up.
			if passesUsed == 0 {
				return nil, fmt.Errorf("%w: %v", ErrProviderUnavailable, perr)
			}
			logger.WarnWithFields("generation pass failed, keeping partial result", logger.Fields{
				"pass": passesUsed, "accepted": len(accepted), "error": perr.Error(),
			})
			break
		}

		for _, idea := range ideas {
			if len(accepted) == target {
				break
			}
			title := strings.TrimSpace(idea.Title)
			if title == "" {
				counts.NoKey++
				continue
			}
			if isPlaceholder(idea, e.placeholders) {
				counts.Placeholder++
				continue
			}
			key := canon.Canonicalize(title)
			if key == "" {
				counts.NoKey++
				continue
			}
			if hist.exclusions.Has(key) {
				counts.Excluded++
				continue
			}
			// Accepting the idea immediately excludes it from later passes.
			hist.exclusions.Add(key)
			accepted = append(accepted, idea)
		}

		passesUsed++
	}

	if len(accepted) == 0 {
		return nil, ErrNothingGenerated
	}
	if len(accepted) > target {
		accepted = accepted[:target]
	}

	enriched := e.enrich(ctx, accepted)
	resolveHistoryFlags(enriched, hist)

	run := &models.SuggestionRun{
		UserID:      req.UserID,
		RecipientID: req.RecipientID,
		ModelName:   e.modelName,
		Context:     pc,
		Ideas:       enriched,
		CreatedAt:   time.Now(),
	}
	run, err = e.store.InsertRun(ctx, run)
	if err != nil {
		// The user must not believe suggestions were saved when they were
		// not: a failed write fails the request.
		return nil, fmt.Errorf("persist suggestion run: %w", err)
	}

	if e.events != nil {
		if perr := e.events.PublishRunCreated(run); perr != nil {
			logger.WarnWithFields("run-created event publish failed", logger.Fields{
				"run_id": run.ID.Hex(), "error": perr.Error(),
			})
		}
	}

	shortfall := 0
	if len(run.Ideas) < target {
		shortfall = target - len(run.Ideas)
	}
	logger.InfoWithFields("suggestion run completed", logger.Fields{
		"run_id":               run.ID.Hex(),
		"recipient_id":         req.RecipientID.Hex(),
		"target":               target,
		"accepted":             len(run.Ideas),
		"shortfall":            shortfall,
		"passes_used":          passesUsed,
		"filtered_excluded":    counts.Excluded,
		"filtered_placeholder": counts.Placeholder,
		"filtered_no_key":      counts.NoKey,
		"exclusion_set_size":   hist.exclusions.Len(),
	})

	return &Result{
		Run:        run,
		PassesUsed: passesUsed,
		Shortfall:  shortfall,
		Filtered:   counts,
	}, nil
}

// resolveHistoryFlags marks each final idea with whether its canonical key
// appears in the user's saved/liked/disliked history.
func resolveHistoryFlags(ideas []models.EnrichedGiftIdea, hist *historyIndex) {
	for i := range ideas {
		key := canon.Canonicalize(ideas[i].Title)
		if key == "" {
			continue
		}
		_, ideas[i].Saved = hist.saved[key]
		_, ideas[i].Liked = hist.liked[key]
		_, ideas[i].Disliked = hist.disliked[key]
	}
}

// logPass records one provider call in ai_logs. Logging is best-effort and
// never affects the request outcome.
func (e *Engine) logPass(ctx context.Context, req Request, pass, requested int, usage *PassUsage, started time.Time, passErr error) {
	l := models.AILog{
		UserID:         req.UserID,
		RecipientID:    req.RecipientID,
		ModelName:      e.modelName,
		Pass:           pass,
		RequestedCount: requested,
		DurationMs:     time.Since(started).Milliseconds(),
		Success:        passErr == nil,
		RequestedAt:    started,
		CompletedAt:    time.Now(),
	}
	if usage != nil {
		l.ModelName = usage.ModelName
		l.ModelVersion = usage.ModelVersion
		l.InputTokens = usage.InputTokens
		l.OutputTokens = usage.OutputTokens
		l.TotalTokens = usage.TotalTokens
		l.ResponseExcerpt = usage.ResponseExcerpt
	}
	if passErr != nil {
		msg := truncateRunes(passErr.Error(), 500)
		l.ErrorMessage = &msg
	}
	if err := e.store.InsertAILog(ctx, l); err != nil {
		logger.Log.Warnf("failed to insert ai log: %v", err)
	}
}
