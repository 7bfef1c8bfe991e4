package repository

import (
	"context"
	"fmt"

	"levelup/model"
	"levelup/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const activitiesListLimit = 1000

type ActivitiesRepo struct {
	MongoCollection *mongo.Collection
}

func GetActivitiesRepo(db *mongo.Database, collection string) *ActivitiesRepo {
	return &ActivitiesRepo{
		MongoCollection: db.Collection(collection),
	}
}

func (r *ActivitiesRepo) CreateActivity(ctx context.Context, activity *model.Activity) error {
	timer := utils.TrackDBOperation("insert", "activities")
	defer timer.ObserveDuration()

	if _, err := r.MongoCollection.InsertOne(ctx, activity); err != nil {
		utils.TrackError("database", "activity_creation_failed")
		return fmt.Errorf("insert activity: %w", err)
	}
	return nil
}

// FindActivities returns matching activities newest date first.
func (r *ActivitiesRepo) FindActivities(ctx context.Context, filter model.ActivityFilter) ([]*model.Activity, error) {
	timer := utils.TrackDBOperation("find", "activities")
	defer timer.ObserveDuration()

	opts := options.Find().
		SetProjection(noIDProjection).
		SetSort(bson.D{{Key: "date", Value: -1}}).
		SetLimit(activitiesListLimit)

	cursor, err := r.MongoCollection.Find(ctx, activityQuery(filter), opts)
	if err != nil {
		utils.TrackError("database", "activity_fetch_failed")
		return nil, fmt.Errorf("find activities: %w", err)
	}
	defer cursor.Close(ctx)

	activities := []*model.Activity{}
	if err = cursor.All(ctx, &activities); err != nil {
		utils.TrackError("database", "activity_decode_failed")
		return nil, fmt.Errorf("decode activities: %w", err)
	}
	return activities, nil
}

func (r *ActivitiesRepo) DeleteActivity(ctx context.Context, activityID string) error {
	timer := utils.TrackDBOperation("delete", "activities")
	defer timer.ObserveDuration()

	result, err := r.MongoCollection.DeleteOne(ctx, bson.M{"id": activityID})
	if err != nil {
		utils.TrackError("database", "activity_deletion_failed")
		return fmt.Errorf("delete activity: %w", err)
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// activityQuery relies on ISO dates sorting lexicographically.
func activityQuery(filter model.ActivityFilter) bson.M {
	query := bson.M{}
	if filter.CategoryID != "" {
		query["category_id"] = filter.CategoryID
	}

	dateRange := bson.M{}
	if filter.StartDate != "" {
		dateRange["$gte"] = filter.StartDate
	}
	if filter.EndDate != "" {
		dateRange["$lte"] = filter.EndDate
	}
	if len(dateRange) > 0 {
		query["date"] = dateRange
	}
	return query
}
