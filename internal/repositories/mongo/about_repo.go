package mongo

import (
	"context"
	"errors"
	"time"

	"github.com/careerfolio/backend/internal/models"
	"github.com/careerfolio/backend/internal/utils"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Every method takes the owning user id and folds it into the query filter;
// there is no way to reach another user's document through this interface.
type AboutRepository interface {
	Get(ctx context.Context, userID string) (*models.About, error)
	Upsert(ctx context.Context, userID string, a *models.About) error
}

type aboutRepo struct {
	col *mongo.Collection
}

func NewAboutRepo(db *mongo.Database) AboutRepository {
	return &aboutRepo{col: db.Collection("about")}
}

func (r *aboutRepo) Get(ctx context.Context, userID string) (*models.About, error) {
	var a models.About
	err := r.col.FindOne(ctx, bson.M{"user_id": userID}).Decode(&a)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, utils.ErrNotFound
	}
	return &a, err
}

// Upsert replaces the whole document; a save never merges into an old one.
func (r *aboutRepo) Upsert(ctx context.Context, userID string, a *models.About) error {
	a.UserID = userID
	a.UpdatedAt = time.Now().UTC()
	_, err := r.col.ReplaceOne(ctx,
		bson.M{"user_id": userID},
		a,
		options.Replace().SetUpsert(true),
	)
	return err
}
