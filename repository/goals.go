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

const goalsListLimit = 100

type GoalsRepo struct {
	MongoCollection *mongo.Collection
}

func GetGoalsRepo(db *mongo.Database, collection string) *GoalsRepo {
	return &GoalsRepo{
		MongoCollection: db.Collection(collection),
	}
}

func (r *GoalsRepo) ListGoals(ctx context.Context) ([]*model.Goal, error) {
	timer := utils.TrackDBOperation("find", "goals")
	defer timer.ObserveDuration()

	opts := options.Find().SetProjection(noIDProjection).SetLimit(goalsListLimit)
	cursor, err := r.MongoCollection.Find(ctx, bson.M{}, opts)
	if err != nil {
		utils.TrackError("database", "goal_fetch_failed")
		return nil, fmt.Errorf("find goals: %w", err)
	}
	defer cursor.Close(ctx)

	goals := []*model.Goal{}
	if err = cursor.All(ctx, &goals); err != nil {
		utils.TrackError("database", "goal_decode_failed")
		return nil, fmt.Errorf("decode goals: %w", err)
	}
	return goals, nil
}

func (r *GoalsRepo) CreateGoal(ctx context.Context, goal *model.Goal) error {
	timer := utils.TrackDBOperation("insert", "goals")
	defer timer.ObserveDuration()

	if _, err := r.MongoCollection.InsertOne(ctx, goal); err != nil {
		utils.TrackError("database", "goal_creation_failed")
		return fmt.Errorf("insert goal: %w", err)
	}
	return nil
}

func (r *GoalsRepo) DeleteGoal(ctx context.Context, goalID string) error {
	timer := utils.TrackDBOperation("delete", "goals")
	defer timer.ObserveDuration()

	result, err := r.MongoCollection.DeleteOne(ctx, bson.M{"id": goalID})
	if err != nil {
		utils.TrackError("database", "goal_deletion_failed")
		return fmt.Errorf("delete goal: %w", err)
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
