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

type SavedIdeaRepository struct {
	col *mongo.Collection
}

func NewSavedIdeaRepository(db *mongo.Database) *SavedIdeaRepository {
	return &SavedIdeaRepository{col: db.Collection("saved_ideas")}
}

func (r *SavedIdeaRepository) Insert(ctx context.Context, s *models.SavedIdea) (*models.SavedIdea, error) {
	s.CreatedAt = time.Now()
	res, err := r.col.InsertOne(ctx, s)
	if err != nil {
		return nil, err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		s.ID = oid
	}
	return s, nil
}

// ListByRecipient returns the user's saved ideas for one recipient, newest
// first.
func (r *SavedIdeaRepository) ListByRecipient(ctx context.Context, userID string, recipientID primitive.ObjectID) ([]models.SavedIdea, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := r.col.Find(ctx, bson.M{"user_id": userID, "recipient_id": recipientID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := []models.SavedIdea{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// DeleteByIDAndUser removes a saved idea only when owned by the user.
func (r *SavedIdeaRepository) DeleteByIDAndUser(ctx context.Context, id primitive.ObjectID, userID string) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id, "user_id": userID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
