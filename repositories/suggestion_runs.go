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

type SuggestionRunRepository struct {
	col *mongo.Collection
}

func NewSuggestionRunRepository(db *mongo.Database) *SuggestionRunRepository {
	return &SuggestionRunRepository{col: db.Collection("suggestion_runs")}
}

// Insert writes one immutable run record and returns it with its assigned id.
func (r *SuggestionRunRepository) Insert(ctx context.Context, run *models.SuggestionRun) (*models.SuggestionRun, error) {
	if run.CreatedAt.IsZero() {
		run.CreatedAt = time.Now()
	}
	res, err := r.col.InsertOne(ctx, run)
	if err != nil {
		return nil, err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		run.ID = oid
	}
	return run, nil
}

// FindByIDAndUser returns a run only when owned by the user.
func (r *SuggestionRunRepository) FindByIDAndUser(ctx context.Context, id primitive.ObjectID, userID string) (*models.SuggestionRun, error) {
	var run models.SuggestionRun
	if err := r.col.FindOne(ctx, bson.M{"_id": id, "user_id": userID}).Decode(&run); err != nil {
		return nil, err
	}
	return &run, nil
}

// ListByRecipientSince returns the user's runs for a recipient created after
// the given time, newest first, capped at limit.
func (r *SuggestionRunRepository) ListByRecipientSince(ctx context.Context, userID string, recipientID primitive.ObjectID, since time.Time, limit int64) ([]models.SuggestionRun, error) {
	filter := bson.M{
		"user_id":      userID,
		"recipient_id": recipientID,
		"created_at":   bson.M{"$gte": since},
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(limit)
	cur, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := []models.SuggestionRun{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListByRecipient returns the user's runs for a recipient, newest first.
func (r *SuggestionRunRepository) ListByRecipient(ctx context.Context, userID string, recipientID primitive.ObjectID, limit int64) ([]models.SuggestionRun, error) {
	filter := bson.M{"user_id": userID, "recipient_id": recipientID}
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(limit)
	cur, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := []models.SuggestionRun{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}
