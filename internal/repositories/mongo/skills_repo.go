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

type SkillsRepository interface {
	Get(ctx context.Context, userID string) (*models.Skills, error)
	Upsert(ctx context.Context, userID string, s *models.Skills) error
}

type skillsRepo struct {
	col *mongo.Collection
}

func NewSkillsRepo(db *mongo.Database) SkillsRepository {
	return &skillsRepo{col: db.Collection("skills")}
}

func (r *skillsRepo) Get(ctx context.Context, userID string) (*models.Skills, error) {
	var s models.Skills
	err := r.col.FindOne(ctx, bson.M{"user_id": userID}).Decode(&s)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, utils.ErrNotFound
	}
	return &s, err
}

func (r *skillsRepo) Upsert(ctx context.Context, userID string, s *models.Skills) error {
	s.UserID = userID
	s.UpdatedAt = time.Now().UTC()
	_, err := r.col.ReplaceOne(ctx,
		bson.M{"user_id": userID},
		s,
		options.Replace().SetUpsert(true),
	)
	return err
}
