package suggest

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/sync/errgroup"

	"giftwise/canon"
	"giftwise/logger"
	"giftwise/models"
)

// historyIndex is everything the controller needs to know about what this
// (user, recipient) pair has already seen: the exclusion set the passes
// filter against, plus per-source key sets used to resolve the
// saved/liked/disliked flags on the final ideas.
type historyIndex struct {
	exclusions *ExclusionSet
	saved      map[string]struct{}
	liked      map[string]struct{}
	disliked   map[string]struct{}
}

// buildHistoryIndex gathers every title the engine must never re-suggest.
// The four historical lookups run concurrently; each is read-only and
// independent. A failing source contributes nothing but never fails the
// request — only the recipient-ownership check (done by the caller) is
// fatal.
func (e *Engine) buildHistoryIndex(ctx context.Context, userID string, recipientID primitive.ObjectID, callerTitles []string) *historyIndex {
	var (
		savedIdeas []models.SavedIdea
		feedback   []models.IdeaFeedback
		runs       []models.SuggestionRun
	)

	g := new(errgroup.Group)

	g.Go(func() error {
		res, err := e.store.SavedIdeasByRecipient(ctx, userID, recipientID)
		if err != nil {
			logger.WarnWithFields("exclusion source failed", logger.Fields{
				"source": "saved_ideas", "error": err.Error(),
			})
			return nil
		}
		savedIdeas = res
		return nil
	})

	g.Go(func() error {
		res, err := e.store.FeedbackByRecipient(ctx, userID, recipientID,
			[]string{models.PreferenceLiked, models.PreferenceDisliked})
		if err != nil {
			logger.WarnWithFields("exclusion source failed", logger.Fields{
				"source": "idea_feedback", "error": err.Error(),
			})
			return nil
		}
		// Secondary lookup: rows without a denormalized title resolve it
		// from the run that produced them. Missing runs just skip the row.
		for i, f := range res {
			if f.IdeaTitle != "" {
				continue
			}
			run, err := e.store.RunByIDAndUser(ctx, f.RunID, userID)
			if err != nil {
				continue
			}
			if f.IdeaIndex >= 0 && f.IdeaIndex < len(run.Ideas) {
				res[i].IdeaTitle = run.Ideas[f.IdeaIndex].Title
			}
		}
		feedback = res
		return nil
	})

	g.Go(func() error {
		since := time.Now().Add(-recentRunWindow)
		res, err := e.store.RunsByRecipientSince(ctx, userID, recipientID, since, recentRunCap)
		if err != nil {
			logger.WarnWithFields("exclusion source failed", logger.Fields{
				"source": "recent_runs", "error": err.Error(),
			})
			return nil
		}
		runs = res
		return nil
	})

	// All closures return nil; Wait only synchronizes.
	_ = g.Wait()

	hist := &historyIndex{
		exclusions: NewExclusionSet(),
		saved:      map[string]struct{}{},
		liked:      map[string]struct{}{},
		disliked:   map[string]struct{}{},
	}

	for _, title := range callerTitles {
		hist.exclusions.Add(canon.Canonicalize(title))
	}
	for _, s := range savedIdeas {
		key := canon.Canonicalize(s.Title)
		if key == "" {
			continue
		}
		hist.exclusions.Add(key)
		hist.saved[key] = struct{}{}
	}
	for _, f := range feedback {
		key := canon.Canonicalize(f.IdeaTitle)
		if key == "" {
			continue
		}
		hist.exclusions.Add(key)
		switch f.Preference {
		case models.PreferenceLiked:
			hist.liked[key] = struct{}{}
		case models.PreferenceDisliked:
			hist.disliked[key] = struct{}{}
		}
	}
	for _, run := range runs {
		for i, idea := range run.Ideas {
			if i == ideasPerRunCap {
				break
			}
			hist.exclusions.Add(canon.Canonicalize(idea.Title))
		}
	}
	return hist
}
