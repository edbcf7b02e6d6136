package repositories

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"giftwise/models"
)

// Store bundles the collection repositories behind the storage surface the
// suggestion engine consumes.
type Store struct {
	Recipients *RecipientRepository
	SavedIdeas *SavedIdeaRepository
	Feedback   *IdeaFeedbackRepository
	Runs       *SuggestionRunRepository
	AILogs     *AILogRepository
}

func NewStore(db *mongo.Database) *Store {
	return &Store{
		Recipients: NewRecipientRepository(db),
		SavedIdeas: NewSavedIdeaRepository(db),
		Feedback:   NewIdeaFeedbackRepository(db),
		Runs:       NewSuggestionRunRepository(db),
		AILogs:     NewAILogRepository(db),
	}
}

func (s *Store) RecipientByIDAndUser(ctx context.Context, id primitive.ObjectID, userID string) (*models.Recipient, error) {
	return s.Recipients.FindByIDAndUser(ctx, id, userID)
}

func (s *Store) SavedIdeasByRecipient(ctx context.Context, userID string, recipientID primitive.ObjectID) ([]models.SavedIdea, error) {
	return s.SavedIdeas.ListByRecipient(ctx, userID, recipientID)
}

func (s *Store) FeedbackByRecipient(ctx context.Context, userID string, recipientID primitive.ObjectID, prefs []string) ([]models.IdeaFeedback, error) {
	return s.Feedback.ListByRecipientAndPreferences(ctx, userID, recipientID, prefs)
}

func (s *Store) RunByIDAndUser(ctx context.Context, id primitive.ObjectID, userID string) (*models.SuggestionRun, error) {
	return s.Runs.FindByIDAndUser(ctx, id, userID)
}

func (s *Store) RunsByRecipientSince(ctx context.Context, userID string, recipientID primitive.ObjectID, since time.Time, limit int64) ([]models.SuggestionRun, error) {
	return s.Runs.ListByRecipientSince(ctx, userID, recipientID, since, limit)
}

func (s *Store) InsertRun(ctx context.Context, run *models.SuggestionRun) (*models.SuggestionRun, error) {
	return s.Runs.Insert(ctx, run)
}

func (s *Store) InsertAILog(ctx context.Context, l models.AILog) error {
	_, err := s.AILogs.Insert(ctx, l)
	return err
}
