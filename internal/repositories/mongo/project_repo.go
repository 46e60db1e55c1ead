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

type ProjectRepository interface {
	List(ctx context.Context, userID string) ([]models.Project, error)
	Insert(ctx context.Context, userID string, p *models.Project) (string, error)
	Delete(ctx context.Context, userID string, id primitive.ObjectID) (int64, error)
}

type projectRepo struct {
	col *mongo.Collection
}

func NewProjectRepo(db *mongo.Database) ProjectRepository {
	return &projectRepo{col: db.Collection("projects")}
}

func (r *projectRepo) List(ctx context.Context, userID string) ([]models.Project, error) {
	cur, err := r.col.Find(ctx,
		bson.M{"user_id": userID},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}),
	)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := []models.Project{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *projectRepo) Insert(ctx context.Context, userID string, p *models.Project) (string, error) {
	now := time.Now().UTC()
	p.ID = primitive.NewObjectID()
	p.UserID = userID
	p.CreatedAt = now
	p.UpdatedAt = now
	if _, err := r.col.InsertOne(ctx, p); err != nil {
		return "", err
	}
	return p.ID.Hex(), nil
}

func (r *projectRepo) Delete(ctx context.Context, userID string, id primitive.ObjectID) (int64, error) {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id, "user_id": userID})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
