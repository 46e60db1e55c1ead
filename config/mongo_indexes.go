package config

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureMongoIndexes creates the section collection indexes. Singleton
// sections get a unique user_id index so upserts cannot fan out; multi-record
// sections get (user_id, created_at desc) for the newest-first listing.
func EnsureMongoIndexes(client *mongo.Client) error {
	if client == nil {
		return errors.New("mongo client is nil; call InitMongo() first")
	}
	db := client.Database(MongoDBName())

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	for _, name := range []string{"about", "portfolio", "skills"} {
		_, err := db.Collection(name).Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys: bson.D{{Key: "user_id", Value: 1}},
			Options: options.Index().
				SetName("uniq_user_id").
				SetUnique(true),
		})
		if err != nil {
			return err
		}
	}

	for _, name := range []string{"education", "experience", "projects", "certifications"} {
		_, err := db.Collection(name).Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys:    bson.D{{Key: "user_id", Value: 1}, {Key: "created_at", Value: -1}},
			Options: options.Index().SetName("by_user_created"),
		})
		if err != nil {
			return err
		}
	}
	return nil
}
