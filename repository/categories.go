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

const categoriesListLimit = 100

type CategoriesRepo struct {
	MongoCollection *mongo.Collection
}

func GetCategoriesRepo(db *mongo.Database, collection string) *CategoriesRepo {
	return &CategoriesRepo{
		MongoCollection: db.Collection(collection),
	}
}

func (r *CategoriesRepo) ListCategories(ctx context.Context) ([]*model.Category, error) {
	timer := utils.TrackDBOperation("find", "categories")
	defer timer.ObserveDuration()

	opts := options.Find().SetProjection(noIDProjection).SetLimit(categoriesListLimit)
	cursor, err := r.MongoCollection.Find(ctx, bson.M{}, opts)
	if err != nil {
		utils.TrackError("database", "category_fetch_failed")
		return nil, fmt.Errorf("find categories: %w", err)
	}
	defer cursor.Close(ctx)

	categories := []*model.Category{}
	if err = cursor.All(ctx, &categories); err != nil {
		utils.TrackError("database", "category_decode_failed")
		return nil, fmt.Errorf("decode categories: %w", err)
	}
	return categories, nil
}

func (r *CategoriesRepo) CreateCategory(ctx context.Context, category *model.Category) error {
	timer := utils.TrackDBOperation("insert", "categories")
	defer timer.ObserveDuration()

	if _, err := r.MongoCollection.InsertOne(ctx, category); err != nil {
		utils.TrackError("database", "category_creation_failed")
		return fmt.Errorf("insert category: %w", err)
	}
	return nil
}

// InsertCategories writes a batch in one round trip; used for seeding.
func (r *CategoriesRepo) InsertCategories(ctx context.Context, categories []*model.Category) error {
	timer := utils.TrackDBOperation("insert_many", "categories")
	defer timer.ObserveDuration()

	docs := make([]interface{}, len(categories))
	for i, category := range categories {
		docs[i] = category
	}
	if _, err := r.MongoCollection.InsertMany(ctx, docs); err != nil {
		utils.TrackError("database", "category_seed_failed")
		return fmt.Errorf("insert categories: %w", err)
	}
	return nil
}

func (r *CategoriesRepo) DeleteCategory(ctx context.Context, categoryID string) error {
	timer := utils.TrackDBOperation("delete", "categories")
	defer timer.ObserveDuration()

	result, err := r.MongoCollection.DeleteOne(ctx, bson.M{"id": categoryID})
	if err != nil {
		utils.TrackError("database", "category_deletion_failed")
		return fmt.Errorf("delete category: %w", err)
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *CategoriesRepo) CountCategories(ctx context.Context) (int64, error) {
	timer := utils.TrackDBOperation("count", "categories")
	defer timer.ObserveDuration()

	count, err := r.MongoCollection.CountDocuments(ctx, bson.M{})
	if err != nil {
		utils.TrackError("database", "category_count_failed")
		return 0, fmt.Errorf("count categories: %w", err)
	}
	return count, nil
}
