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

type RecipientRepository struct {
	col *mongo.Collection
}

func NewRecipientRepository(db *mongo.Database) *RecipientRepository {
	return &RecipientRepository{col: db.Collection("recipients")}
}

// Insert stores a new recipient and returns it with its assigned id.
func (r *RecipientRepository) Insert(ctx context.Context, rec *models.Recipient) (*models.Recipient, error) {
	now := time.Now()
	rec.CreatedAt = now
	rec.UpdatedAt = now
	res, err := r.col.InsertOne(ctx, rec)
	if err != nil {
		return nil, err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		rec.ID = oid
	}
	return rec, nil
}

// FindByIDAndUser returns the recipient only when owned by the given user.
// This is the ownership check every suggestion request passes through before
// any provider call.
func (r *RecipientRepository) FindByIDAndUser(ctx context.Context, id primitive.ObjectID, userID string) (*models.Recipient, error) {
	var rec models.Recipient
	if err := r.col.FindOne(ctx, bson.M{"_id": id, "user_id": userID}).Decode(&rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

// ListByUser returns all recipients owned by the user, newest first.
func (r *RecipientRepository) ListByUser(ctx context.Context, userID string) ([]models.Recipient, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := r.col.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := []models.Recipient{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}
