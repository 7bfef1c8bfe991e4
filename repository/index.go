package repository

import (
	"context"
	"fmt"
	"time"

	"levelup/config"
	"levelup/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func uniqueIDIndex() mongo.IndexModel {
	return mongo.IndexModel{
		Keys: bson.D{{Key: "id", Value: 1}},
		Options: options.Index().
			SetName("id_unique").
			SetUnique(true),
	}
}

// SetupIndexes creates the indexes every collection relies on. Creating an
// index that already exists with the same keys and options is a no-op in MongoDB.
func SetupIndexes(ctx context.Context, db *mongo.Database, names config.CollectionNames) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	activityIndexes := []mongo.IndexModel{
		uniqueIDIndex(),
		// Listing and analytics windows
		{
			Keys: bson.D{{Key: "date", Value: -1}},
			Options: options.Index().
				SetName("date_desc"),
		},
		// Per-category analytics and filtered listing
		{
			Keys: bson.D{
				{Key: "category_id", Value: 1},
				{Key: "date", Value: -1},
			},
			Options: options.Index().
				SetName("category_date"),
		},
	}

	indexes := map[string][]mongo.IndexModel{
		names.Categories: {uniqueIDIndex()},
		names.Activities: activityIndexes,
		names.Goals:      {uniqueIDIndex()},
		names.Badges:     {uniqueIDIndex()},
		names.UserStats:  {uniqueIDIndex()},
	}

	for collection, models := range indexes {
		if _, err := db.Collection(collection).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("failed to create %s indexes: %w", collection, err)
		}
	}

	utils.WithContext(ctx).Info("Successfully created all indexes")
	return nil
}
