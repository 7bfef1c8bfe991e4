package repository

import (
	"context"
	"fmt"
	"time"

	"levelup/model"
	"levelup/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const badgesListLimit = 100

type BadgesRepo struct {
	MongoCollection *mongo.Collection
}

func GetBadgesRepo(db *mongo.Database, collection string) *BadgesRepo {
	return &BadgesRepo{
		MongoCollection: db.Collection(collection),
	}
}

func (r *BadgesRepo) ListBadges(ctx context.Context) ([]*model.Badge, error) {
	timer := utils.TrackDBOperation("find", "badges")
	defer timer.ObserveDuration()

	opts := options.Find().SetProjection(noIDProjection).SetLimit(badgesListLimit)
	cursor, err := r.MongoCollection.Find(ctx, bson.M{}, opts)
	if err != nil {
		utils.TrackError("database", "badge_fetch_failed")
		return nil, fmt.Errorf("find badges: %w", err)
	}
	defer cursor.Close(ctx)

	badges := []*model.Badge{}
	if err = cursor.All(ctx, &badges); err != nil {
		utils.TrackError("database", "badge_decode_failed")
		return nil, fmt.Errorf("decode badges: %w", err)
	}
	return badges, nil
}

func (r *BadgesRepo) CreateBadge(ctx context.Context, badge *model.Badge) error {
	timer := utils.TrackDBOperation("insert", "badges")
	defer timer.ObserveDuration()

	if _, err := r.MongoCollection.InsertOne(ctx, badge); err != nil {
		utils.TrackError("database", "badge_creation_failed")
		return fmt.Errorf("insert badge: %w", err)
	}
	return nil
}

func (r *BadgesRepo) InsertBadges(ctx context.Context, badges []*model.Badge) error {
	timer := utils.TrackDBOperation("insert_many", "badges")
	defer timer.ObserveDuration()

	docs := make([]interface{}, len(badges))
	for i, badge := range badges {
		docs[i] = badge
	}
	if _, err := r.MongoCollection.InsertMany(ctx, docs); err != nil {
		utils.TrackError("database", "badge_seed_failed")
		return fmt.Errorf("insert badges: %w", err)
	}
	return nil
}

func (r *BadgesRepo) DeleteBadge(ctx context.Context, badgeID string) error {
	timer := utils.TrackDBOperation("delete", "badges")
	defer timer.ObserveDuration()

	result, err := r.MongoCollection.DeleteOne(ctx, bson.M{"id": badgeID})
	if err != nil {
		utils.TrackError("database", "badge_deletion_failed")
		return fmt.Errorf("delete badge: %w", err)
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *BadgesRepo) CountBadges(ctx context.Context) (int64, error) {
	timer := utils.TrackDBOperation("count", "badges")
	defer timer.ObserveDuration()

	count, err := r.MongoCollection.CountDocuments(ctx, bson.M{})
	if err != nil {
		utils.TrackError("database", "badge_count_failed")
		return 0, fmt.Errorf("count badges: %w", err)
	}
	return count, nil
}

// MarkBadgeEarned sets the earned flag and stamps earnedAt. A missing badge
// (deleted built-in) is not an error.
func (r *BadgesRepo) MarkBadgeEarned(ctx context.Context, badgeID string, earnedAt time.Time) error {
	timer := utils.TrackDBOperation("update", "badges")
	defer timer.ObserveDuration()

	update := bson.M{
		"$set": bson.M{
			"is_earned":   true,
			"earned_date": earnedAt,
		},
	}
	if _, err := r.MongoCollection.UpdateOne(ctx, bson.M{"id": badgeID}, update); err != nil {
		utils.TrackError("database", "badge_update_failed")
		return fmt.Errorf("mark badge %s earned: %w", badgeID, err)
	}
	return nil
}
