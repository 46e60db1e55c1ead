package mongo

import (
	"context"
	"time"

	"github.com/careerfolio/backend/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type EducationRepository interface {
	List(ctx context.Context, userID string) ([]models.Education, error)
	Insert(ctx context.Context, userID string, e *models.Education) (string, error)
	// Delete removes at most one record owned by userID and reports how many
	// documents matched, so a guessed foreign id surfaces as zero.
	Delete(ctx context.Context, userID string, id primitive.ObjectID) (int64, error)
}

type educationRepo struct {
	col *mongo.Collection
}

func NewEducationRepo(db *mongo.Database) EducationRepository {
	return &educationRepo{col: db.Collection("education")}
}

func (r *educationRepo) List(ctx context.Context, userID string) ([]models.Education, error) {
	cur, err := r.col.Find(ctx,
		bson.M{"user_id": userID},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}),
	)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := []models.Education{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *educationRepo) Insert(ctx context.Context, userID string, e *models.Education) (string, error) {
	now := time.Now().UTC()
	e.ID = primitive.NewObjectID()
	e.UserID = userID
	e.CreatedAt = now
	e.UpdatedAt = now
	if _, err := r.col.InsertOne(ctx, e); err != nil {
		return "", err
	}
	return e.ID.Hex(), nil
}

func (r *educationRepo) Delete(ctx context.Context, userID string, id primitive.ObjectID) (int64, error) {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id, "user_id": userID})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
