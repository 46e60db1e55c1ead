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

type PortfolioRepository interface {
	Get(ctx context.Context, userID string) (*models.Portfolio, error)
	Upsert(ctx context.Context, userID string, p *models.Portfolio) error
}

type portfolioRepo struct {
	col *mongo.Collection
}

func NewPortfolioRepo(db *mongo.Database) PortfolioRepository {
	return &portfolioRepo{col: db.Collection("portfolio")}
}

func (r *portfolioRepo) Get(ctx context.Context, userID string) (*models.Portfolio, error) {
	var p models.Portfolio
	err := r.col.FindOne(ctx, bson.M{"user_id": userID}).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, utils.ErrNotFound
	}
	return &p, err
}

func (r *portfolioRepo) Upsert(ctx context.Context, userID string, p *models.Portfolio) error {
	p.UserID = userID
	p.UpdatedAt = time.Now().UTC()
	_, err := r.col.ReplaceOne(ctx,
		bson.M{"user_id": userID},
		p,
		options.Replace().SetUpsert(true),
	)
	return err
}
