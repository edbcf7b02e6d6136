package suggest

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"giftwise/models"
	"giftwise/productsearch"
)

type fakeStore struct {
	recipient    *models.Recipient
	recipientErr error
	saved        []models.SavedIdea
	feedback     []models.IdeaFeedback
	runs         []models.SuggestionRun
	runsByID     map[primitive.ObjectID]*models.SuggestionRun
	insertRunErr error

	insertedRun *models.SuggestionRun
	aiLogs      []models.AILog
}

func (s *fakeStore) RecipientByIDAndUser(_ context.Context, _ primitive.ObjectID, _ string) (*models.Recipient, error) {
	if s.recipientErr != nil {
		return nil, s.recipientErr
	}
	return s.recipient, nil
}

func (s *fakeStore) SavedIdeasByRecipient(_ context.Context, _ string, _ primitive.ObjectID) ([]models.SavedIdea, error) {
	return s.saved, nil
}

func (s *fakeStore) FeedbackByRecipient(_ context.Context, _ string, _ primitive.ObjectID, _ []string) ([]models.IdeaFeedback, error) {
	return s.feedback, nil
}

func (s *fakeStore) RunByIDAndUser(_ context.Context, id primitive.ObjectID, _ string) (*models.SuggestionRun, error) {
	if run, ok := s.runsByID[id]; ok {
		return run, nil
	}
	return nil, mongo.ErrNoDocuments
}

func (s *fakeStore) RunsByRecipientSince(_ context.Context, _ string, _ primitive.ObjectID, _ time.Time, _ int64) ([]models.SuggestionRun, error) {
	return s.runs, nil
}

func (s *fakeStore) InsertRun(_ context.Context, run *models.SuggestionRun) (*models.SuggestionRun, error) {
	if s.insertRunErr != nil {
		return nil, s.insertRunErr
	}
	run.ID = primitive.NewObjectID()
	s.insertedRun = run
	return run, nil
}

func (s *fakeStore) InsertAILog(_ context.Context, l models.AILog) error {
	s.aiLogs = append(s.aiLogs, l)
	return nil
}

// fakeGenerator serves one scripted response per pass and records what each
// pass asked for.
type fakeGenerator struct {
	passes []func() ([]models.GiftIdea, error)

	calls      int
	requested  []int
	avoidLists [][]string
}

func (g *fakeGenerator) RequestPass(_ context.Context, _ models.RecipientContext, requestedCount int, avoid []string) ([]models.GiftIdea, *PassUsage, error) {
	g.requested = append(g.requested, requestedCount)
	avoidCopy := append([]string(nil), avoid...)
	g.avoidLists = append(g.avoidLists, avoidCopy)

	idx := g.calls
	g.calls++
	if idx >= len(g.passes) {
		return []models.GiftIdea{}, &PassUsage{ModelName: "fake"}, nil
	}
	ideas, err := g.passes[idx]()
	return ideas, &PassUsage{ModelName: "fake"}, err
}

type fakeProducts struct {
	failFor map[string]bool
	calls   int
}

func (p *fakeProducts) FindBest(_ context.Context, query string, _, _ *int64) (*productsearch.Product, error) {
	p.calls++
	if p.failFor[query] {
		return nil, errors.New("provider timeout")
	}
	return &productsearch.Product{
		ID:           "p-" + query,
		Title:        query,
		PriceDisplay: "$25.00",
	}, nil
}

func ideasNamed(titles ...string) []models.GiftIdea {
	out := make([]models.GiftIdea, 0, len(titles))
	for i, title := range titles {
		out = append(out, models.GiftIdea{
			ID:               fmt.Sprintf("id-%d", i),
			Title:            title,
			ShortDescription: "desc",
			Tier:             models.TierThoughtful,
			PriceHint:        "$20–$50",
			WhyItFits:        "fits",
		})
	}
	return out
}

func testRecipient() *models.Recipient {
	return &models.Recipient{
		ID:     primitive.NewObjectID(),
		UserID: "user-1",
		Name:   "Dana",
	}
}

func newTestEngine(store *fakeStore, gen *fakeGenerator, products *fakeProducts) *Engine {
	return NewEngine(EngineConfig{
		Store:     store,
		Generator: gen,
		Products:  products,
		ModelName: "gemini-test",
	})
}

func TestSuggestHappyPathSinglePass(t *testing.T) {
	rec := testRecipient()
	store := &fakeStore{recipient: rec}
	gen := &fakeGenerator{passes: []func() ([]models.GiftIdea, error){
		func() ([]models.GiftIdea, error) {
			return ideasNamed("Chess Set", "Leather Journal", "Espresso Maker", "Board Game", "Candle Kit", "Scarf", "Mug"), nil
		},
	}}
	engine := newTestEngine(store, gen, &fakeProducts{})

	res, err := engine.Suggest(context.Background(), Request{
		UserID:      "user-1",
		RecipientID: rec.ID,
	})
	require.NoError(t, err)

	assert.Len(t, res.Run.Ideas, 5)
	assert.Equal(t, 1, res.PassesUsed)
	assert.Equal(t, 0, res.Shortfall)
	assert.Equal(t, "gemini-test", res.Run.ModelName)
	assert.NotNil(t, store.insertedRun)
	// default target 5 plus the top-up buffer
	assert.Equal(t, []int{7}, gen.requested)
	// one ai log per pass
	assert.Len(t, store.aiLogs, 1)
	assert.True(t, store.aiLogs[0].Success)
}

func TestSuggestTargetClamped(t *testing.T) {
	rec := testRecipient()

	t.Run("above max", func(t *testing.T) {
		store := &fakeStore{recipient: rec}
		gen := &fakeGenerator{passes: []func() ([]models.GiftIdea, error){
			func() ([]models.GiftIdea, error) {
				return ideasNamed("a1", "a2", "a3", "a4", "a5", "a6", "a7", "a8", "a9", "a10", "a11", "a12"), nil
			},
		}}
		engine := newTestEngine(store, gen, &fakeProducts{})

		res, err := engine.Suggest(context.Background(), Request{
			UserID: "user-1", RecipientID: rec.ID, NumSuggestions: 12,
		})
		require.NoError(t, err)
		assert.Len(t, res.Run.Ideas, 10)
		// requested count itself stays within the per-pass cap
		assert.Equal(t, []int{10}, gen.requested)
	})

	t.Run("below min", func(t *testing.T) {
		store := &fakeStore{recipient: rec}
		gen := &fakeGenerator{passes: []func() ([]models.GiftIdea, error){
			func() ([]models.GiftIdea, error) {
				return ideasNamed("b1", "b2", "b3", "b4"), nil
			},
		}}
		engine := newTestEngine(store, gen, &fakeProducts{})

		res, err := engine.Suggest(context.Background(), Request{
			UserID: "user-1", RecipientID: rec.ID, NumSuggestions: 1,
		})
		require.NoError(t, err)
		assert.Len(t, res.Run.Ideas, 3)
	})
}

func TestSuggestFiltersHistoryDuplicates(t *testing.T) {
	rec := testRecipient()
	store := &fakeStore{
		recipient: rec,
		saved:     []models.SavedIdea{{Title: "Chess Set"}},
		runs: []models.SuggestionRun{{
			Ideas: []models.EnrichedGiftIdea{
				{GiftIdea: models.GiftIdea{Title: "Leather Journal"}},
			},
		}},
	}
	gen := &fakeGenerator{passes: []func() ([]models.GiftIdea, error){
		func() ([]models.GiftIdea, error) {
			// "Chess Sets" collides with saved "Chess Set" after
			// canonicalization; "The Leather Journal" with the past run.
			return ideasNamed("Chess Sets", "The Leather Journal", "Espresso Maker", "Candle Kit", "Scarf", "Mug", "Board Game"), nil
		},
	}}
	engine := newTestEngine(store, gen, &fakeProducts{})

	res, err := engine.Suggest(context.Background(), Request{
		UserID: "user-1", RecipientID: rec.ID, NumSuggestions: 5,
	})
	require.NoError(t, err)

	titles := make([]string, 0, len(res.Run.Ideas))
	for _, idea := range res.Run.Ideas {
		titles = append(titles, idea.Title)
	}
	assert.NotContains(t, titles, "Chess Sets")
	assert.NotContains(t, titles, "The Leather Journal")
	assert.Len(t, res.Run.Ideas, 5)
	assert.Equal(t, 2, res.Filtered.Excluded)
}

func TestSuggestExclusionsGrowAcrossPasses(t *testing.T) {
	rec := testRecipient()
	store := &fakeStore{recipient: rec}
	gen := &fakeGenerator{passes: []func() ([]models.GiftIdea, error){
		func() ([]models.GiftIdea, error) {
			return ideasNamed("Chess Set", "Candle Kit", "Scarf"), nil
		},
		func() ([]models.GiftIdea, error) {
			// The first is a repeat of an accepted idea and must be filtered.
			return ideasNamed("Chess Set", "Board Game", "Mug"), nil
		},
	}}
	engine := newTestEngine(store, gen, &fakeProducts{})

	res, err := engine.Suggest(context.Background(), Request{
		UserID: "user-1", RecipientID: rec.ID, NumSuggestions: 5,
	})
	require.NoError(t, err)

	assert.Len(t, res.Run.Ideas, 5)
	assert.Equal(t, 2, res.PassesUsed)
	assert.Equal(t, 1, res.Filtered.Excluded)

	// Pass 1 started with nothing excluded; pass 2 must carry the three
	// accepted keys from pass 1.
	assert.Empty(t, gen.avoidLists[0])
	assert.ElementsMatch(t, []string{"chess set", "candle kit", "scarf"}, gen.avoidLists[1])
}

func TestSuggestTerminatesAfterPassBudget(t *testing.T) {
	rec := testRecipient()
	store := &fakeStore{
		recipient: rec,
		saved:     []models.SavedIdea{{Title: "Chess Set"}},
	}
	repeat := func() ([]models.GiftIdea, error) {
		return ideasNamed("Chess Set", "Chess Sets", "The Chess Set"), nil
	}
	gen := &fakeGenerator{passes: []func() ([]models.GiftIdea, error){repeat, repeat, repeat, repeat, repeat, repeat}}
	engine := newTestEngine(store, gen, &fakeProducts{})

	_, err := engine.Suggest(context.Background(), Request{
		UserID: "user-1", RecipientID: rec.ID, NumSuggestions: 5,
	})
	require.ErrorIs(t, err, ErrNothingGenerated)
	assert.Equal(t, 4, gen.calls)
	assert.Nil(t, store.insertedRun)
}

func TestSuggestShortfallIsNotAnError(t *testing.T) {
	rec := testRecipient()
	store := &fakeStore{recipient: rec}
	empty := func() ([]models.GiftIdea, error) { return []models.GiftIdea{}, nil }
	gen := &fakeGenerator{passes: []func() ([]models.GiftIdea, error){
		func() ([]models.GiftIdea, error) {
			return ideasNamed("Chess Set", "Candle Kit", "Scarf", "Mug", "Board Game", "Journal"), nil
		},
		empty, empty, empty,
	}}
	engine := newTestEngine(store, gen, &fakeProducts{})

	res, err := engine.Suggest(context.Background(), Request{
		UserID: "user-1", RecipientID: rec.ID, NumSuggestions: 9,
	})
	require.NoError(t, err)

	assert.Len(t, res.Run.Ideas, 6)
	assert.Equal(t, 3, res.Shortfall)
	assert.Equal(t, 4, res.PassesUsed)
}

func TestSuggestFirstPassProviderFailureIsFatal(t *testing.T) {
	rec := testRecipient()
	store := &fakeStore{recipient: rec}
	gen := &fakeGenerator{passes: []func() ([]models.GiftIdea, error){
		func() ([]models.GiftIdea, error) { return nil, errors.New("quota exceeded upstream") },
	}}
	engine := newTestEngine(store, gen, &fakeProducts{})

	_, err := engine.Suggest(context.Background(), Request{
		UserID: "user-1", RecipientID: rec.ID,
	})
	require.ErrorIs(t, err, ErrProviderUnavailable)
	assert.Nil(t, store.insertedRun)
	// the failed pass is still logged
	require.Len(t, store.aiLogs, 1)
	assert.False(t, store.aiLogs[0].Success)
	require.NotNil(t, store.aiLogs[0].ErrorMessage)
}

func TestSuggestLaterPassFailureKeepsPartialResult(t *testing.T) {
	rec := testRecipient()
	store := &fakeStore{recipient: rec}
	gen := &fakeGenerator{passes: []func() ([]models.GiftIdea, error){
		func() ([]models.GiftIdea, error) {
			return ideasNamed("Chess Set", "Candle Kit", "Scarf"), nil
		},
		func() ([]models.GiftIdea, error) { return nil, errors.New("upstream 500") },
	}}
	engine := newTestEngine(store, gen, &fakeProducts{})

	res, err := engine.Suggest(context.Background(), Request{
		UserID: "user-1", RecipientID: rec.ID, NumSuggestions: 6,
	})
	require.NoError(t, err)

	assert.Len(t, res.Run.Ideas, 3)
	assert.Equal(t, 3, res.Shortfall)
	assert.NotNil(t, store.insertedRun)
}

func TestSuggestPlaceholderIdeasRejected(t *testing.T) {
	rec := testRecipient()
	store := &fakeStore{recipient: rec}
	gen := &fakeGenerator{passes: []func() ([]models.GiftIdea, error){
		func() ([]models.GiftIdea, error) {
			ideas := ideasNamed("Idea 1", "Idea 2", "Chess Set", "Candle Kit", "Scarf")
			return ideas, nil
		},
		func() ([]models.GiftIdea, error) { return []models.GiftIdea{}, nil },
		func() ([]models.GiftIdea, error) { return []models.GiftIdea{}, nil },
		func() ([]models.GiftIdea, error) { return []models.GiftIdea{}, nil },
	}}
	engine := newTestEngine(store, gen, &fakeProducts{})

	res, err := engine.Suggest(context.Background(), Request{
		UserID: "user-1", RecipientID: rec.ID, NumSuggestions: 3,
	})
	require.NoError(t, err)

	assert.Len(t, res.Run.Ideas, 3)
	assert.Equal(t, 2, res.Filtered.Placeholder)
}

func TestSuggestOwnershipCheckedBeforeGeneration(t *testing.T) {
	store := &fakeStore{recipientErr: mongo.ErrNoDocuments}
	gen := &fakeGenerator{}
	engine := newTestEngine(store, gen, &fakeProducts{})

	_, err := engine.Suggest(context.Background(), Request{
		UserID: "intruder", RecipientID: primitive.NewObjectID(),
	})
	require.ErrorIs(t, err, ErrRecipientNotFound)
	assert.Equal(t, 0, gen.calls)
}

func TestSuggestEnrichmentFailureIsolatedPerIdea(t *testing.T) {
	rec := testRecipient()
	store := &fakeStore{recipient: rec}
	gen := &fakeGenerator{passes: []func() ([]models.GiftIdea, error){
		func() ([]models.GiftIdea, error) {
			return ideasNamed("Chess Set", "Candle Kit", "Scarf"), nil
		},
	}}
	products := &fakeProducts{failFor: map[string]bool{"Candle Kit": true}}
	engine := newTestEngine(store, gen, products)

	res, err := engine.Suggest(context.Background(), Request{
		UserID: "user-1", RecipientID: rec.ID, NumSuggestions: 3,
	})
	require.NoError(t, err)
	require.Len(t, res.Run.Ideas, 3)

	byTitle := map[string]models.EnrichedGiftIdea{}
	for _, idea := range res.Run.Ideas {
		byTitle[idea.Title] = idea
	}
	assert.NotNil(t, byTitle["Chess Set"].Product)
	assert.Nil(t, byTitle["Candle Kit"].Product)
	assert.NotNil(t, byTitle["Scarf"].Product)
}

func TestSuggestPersistFailureFailsRequest(t *testing.T) {
	rec := testRecipient()
	store := &fakeStore{recipient: rec, insertRunErr: errors.New("write concern error")}
	gen := &fakeGenerator{passes: []func() ([]models.GiftIdea, error){
		func() ([]models.GiftIdea, error) {
			return ideasNamed("Chess Set", "Candle Kit", "Scarf"), nil
		},
	}}
	engine := newTestEngine(store, gen, &fakeProducts{})

	_, err := engine.Suggest(context.Background(), Request{
		UserID: "user-1", RecipientID: rec.ID, NumSuggestions: 3,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "persist suggestion run")
}

func TestSuggestCallerTitlesExcluded(t *testing.T) {
	rec := testRecipient()
	store := &fakeStore{recipient: rec}
	gen := &fakeGenerator{passes: []func() ([]models.GiftIdea, error){
		func() ([]models.GiftIdea, error) {
			return ideasNamed("Espresso Maker", "Chess Set", "Candle Kit", "Scarf", "Mug"), nil
		},
	}}
	engine := newTestEngine(store, gen, &fakeProducts{})

	res, err := engine.Suggest(context.Background(), Request{
		UserID:              "user-1",
		RecipientID:         rec.ID,
		NumSuggestions:      4,
		PreviousSuggestions: []string{"Espresso Makers"},
	})
	require.NoError(t, err)

	for _, idea := range res.Run.Ideas {
		assert.NotEqual(t, "Espresso Maker", idea.Title)
	}
	// Caller exclusions seed the avoid list from the first pass.
	require.NotEmpty(t, gen.avoidLists[0])
	assert.Contains(t, gen.avoidLists[0], "espresso maker")
}

type exhaustedQuota struct{}

func (exhaustedQuota) WaitAndReserve(context.Context) (bool, error) { return false, nil }

func TestSuggestQuotaExhaustedOnFirstPass(t *testing.T) {
	rec := testRecipient()
	store := &fakeStore{recipient: rec}
	gen := &fakeGenerator{}
	engine := NewEngine(EngineConfig{
		Store:     store,
		Generator: gen,
		Products:  &fakeProducts{},
		Quota:     exhaustedQuota{},
		ModelName: "gemini-test",
	})

	_, err := engine.Suggest(context.Background(), Request{
		UserID: "user-1", RecipientID: rec.ID,
	})
	require.ErrorIs(t, err, ErrProviderUnavailable)
	assert.Equal(t, 0, gen.calls)
}

func TestSuggestFeedbackTitlesJoinedFromRuns(t *testing.T) {
	rec := testRecipient()
	runID := primitive.NewObjectID()
	pastRun := &models.SuggestionRun{
		ID:     runID,
		UserID: "user-1",
		Ideas: []models.EnrichedGiftIdea{
			{GiftIdea: models.GiftIdea{Title: "Espresso Maker"}},
		},
	}
	store := &fakeStore{
		recipient: rec,
		feedback: []models.IdeaFeedback{{
			RunID:      runID,
			IdeaIndex:  0,
			Preference: models.PreferenceDisliked,
			// no denormalized title: must be joined from the run
		}},
		runsByID: map[primitive.ObjectID]*models.SuggestionRun{runID: pastRun},
	}
	gen := &fakeGenerator{passes: []func() ([]models.GiftIdea, error){
		func() ([]models.GiftIdea, error) {
			return ideasNamed("Espresso Maker", "Chess Set", "Candle Kit", "Scarf"), nil
		},
	}}
	engine := newTestEngine(store, gen, &fakeProducts{})

	res, err := engine.Suggest(context.Background(), Request{
		UserID: "user-1", RecipientID: rec.ID, NumSuggestions: 3,
	})
	require.NoError(t, err)

	for _, idea := range res.Run.Ideas {
		assert.NotEqual(t, "Espresso Maker", idea.Title)
	}
	assert.Equal(t, 1, res.Filtered.Excluded)
}
