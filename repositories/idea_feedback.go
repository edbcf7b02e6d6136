package repositories

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"giftwise/models"
)

type IdeaFeedbackRepository struct {
	col *mongo.Collection
}

func NewIdeaFeedbackRepository(db *mongo.Database) *IdeaFeedbackRepository {
	return &IdeaFeedbackRepository{col: db.Collection("idea_feedback")}
}

// Upsert stores feedback for (run, idea index), replacing any earlier
// preference from the same user for the same idea.
func (r *IdeaFeedbackRepository) Upsert(ctx context.Context, f *models.IdeaFeedback) error {
	f.CreatedAt = time.Now()
	filter := bson.M{
		"user_id":    f.UserID,
		"run_id":     f.RunID,
		"idea_index": f.IdeaIndex,
	}
	update := bson.M{"$set": bson.M{
		"user_id":      f.UserID,
		"recipient_id": f.RecipientID,
		"run_id":       f.RunID,
		"idea_index":   f.IdeaIndex,
		"idea_title":   f.IdeaTitle,
		"preference":   f.Preference,
		"created_at":   f.CreatedAt,
	}}
	opts := options.Update().SetUpsert(true)
	_, err := r.col.UpdateOne(ctx, filter, update, opts)
	return err
}

// ListByRecipientAndPreferences returns the user's feedback rows for a
// recipient restricted to the given preferences.
func (r *IdeaFeedbackRepository) ListByRecipientAndPreferences(ctx context.Context, userID string, recipientID primitive.ObjectID, prefs []string) ([]models.IdeaFeedback, error) {
	filter := bson.M{
		"user_id":      userID,
		"recipient_id": recipientID,
		"preference":   bson.M{"$in": prefs},
	}
	cur, err := r.col.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := []models.IdeaFeedback{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}
