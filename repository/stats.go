package repository

import (
	"context"
	"errors"
	"fmt"

	"levelup/model"
	"levelup/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// StatsRepo stores the single user_stats profile document.
type StatsRepo struct {
	MongoCollection *mongo.Collection
}

func GetStatsRepo(db *mongo.Database, collection string) *StatsRepo {
	return &StatsRepo{
		MongoCollection: db.Collection(collection),
	}
}

func (r *StatsRepo) GetUserStats(ctx context.Context) (*model.UserStats, error) {
	timer := utils.TrackDBOperation("find_one", "user_stats")
	defer timer.ObserveDuration()

	var stats model.UserStats
	opts := options.FindOne().SetProjection(noIDProjection)
	err := r.MongoCollection.FindOne(ctx, bson.M{"id": model.UserStatsID}, opts).Decode(&stats)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		utils.TrackError("database", "stats_fetch_failed")
		return nil, fmt.Errorf("find user stats: %w", err)
	}
	return &stats, nil
}

func (r *StatsRepo) InsertUserStats(ctx context.Context, stats *model.UserStats) error {
	timer := utils.TrackDBOperation("insert", "user_stats")
	defer timer.ObserveDuration()

	if _, err := r.MongoCollection.InsertOne(ctx, stats); err != nil {
		utils.TrackError("database", "stats_creation_failed")
		return fmt.Errorf("insert user stats: %w", err)
	}
	return nil
}

// ReplaceUserStats writes every profile field in a single replace.
func (r *StatsRepo) ReplaceUserStats(ctx context.Context, stats *model.UserStats) error {
	timer := utils.TrackDBOperation("replace", "user_stats")
	defer timer.ObserveDuration()

	result, err := r.MongoCollection.ReplaceOne(ctx, bson.M{"id": model.UserStatsID}, stats)
	if err != nil {
		utils.TrackError("database", "stats_update_failed")
		return fmt.Errorf("replace user stats: %w", err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
