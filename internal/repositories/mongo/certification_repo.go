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

type CertificationRepository interface {
	List(ctx context.Context, userID string) ([]models.Certification, error)
	Insert(ctx context.Context, userID string, c *models.Certification) (string, error)
	Delete(ctx context.Context, userID string, id primitive.ObjectID) (int64, error)
}

type certificationRepo struct {
	col *mongo.Collection
}

func NewCertificationRepo(db *mongo.Database) CertificationRepository {
	return &certificationRepo{col: db.Collection("certifications")}
}

func (r *certificationRepo) List(ctx context.Context, userID string) ([]models.Certification, error) {
	cur, err := r.col.Find(ctx,
		bson.M{"user_id": userID},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}),
	)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := []models.Certification{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *certificationRepo) Insert(ctx context.Context, userID string, c *models.Certification) (string, error) {
	now := time.Now().UTC()
	c.ID = primitive.NewObjectID()
	c.UserID = userID
	if c.NoExpiry {
		c.ExpiryYear = nil
	}
	c.CreatedAt = now
	c.UpdatedAt = now
	if _, err := r.col.InsertOne(ctx, c); err != nil {
		return "", err
	}
	return c.ID.Hex(), nil
}

func (r *certificationRepo) Delete(ctx context.Context, userID string, id primitive.ObjectID) (int64, error) {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id, "user_id": userID})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
