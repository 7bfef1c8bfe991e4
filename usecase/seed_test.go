package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"levelup/model"
	"levelup/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedIsIdempotent(t *testing.T) {
	store := testutils.NewMemoryStore()
	clock := testutils.NewFixedTime(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	seeder := NewSeeder(store, store, store, clock)

	require.NoError(t, seeder.Seed(context.Background()))
	require.NoError(t, seeder.Seed(context.Background()))

	assert.Len(t, store.Categories, 4)
	assert.Len(t, store.Badges, 6)
	assert.Equal(t, 1, store.CallsTo("InsertUserStats"))
	assert.Equal(t, model.DefaultUserStats(), store.Stats)

	for _, category := range store.Categories {
		assert.False(t, category.IsCustom, category.ID)
	}
	for _, badge := range store.Badges {
		assert.False(t, badge.IsEarned, badge.ID)
		assert.Nil(t, badge.EarnedDate, badge.ID)
	}
}

func TestSeedKeepsExistingData(t *testing.T) {
	store := testutils.NewMemoryStore()
	store.Categories = []*model.Category{{ID: "custom", Name: "Reading", IsCustom: true}}
	store.Stats = &model.UserStats{ID: model.UserStatsID, Level: 4, XP: 20}
	seeder := NewSeeder(store, store, store, testutils.NewFixedTime(time.Now()))

	require.NoError(t, seeder.Seed(context.Background()))

	require.Len(t, store.Categories, 1)
	assert.Equal(t, "custom", store.Categories[0].ID)
	assert.Equal(t, 4, store.Stats.Level)
	assert.Len(t, store.Badges, 6)
}

func TestSeedStopsOnStoreError(t *testing.T) {
	store := testutils.NewMemoryStore()
	store.FailOn["CountCategories"] = errors.New("connection refused")
	seeder := NewSeeder(store, store, store, testutils.NewFixedTime(time.Now()))

	err := seeder.Seed(context.Background())
	assert.ErrorContains(t, err, "seed categories")
	assert.Zero(t, store.CallsTo("CountBadges"))
}
