package main

import (
	"context"
	"fmt"
	"time"

	"levelup/config"
	"levelup/handler"
	"levelup/repository"
	"levelup/services"
	"levelup/usecase"
	"levelup/utils"

	"go.mongodb.org/mongo-driver/mongo"
)

// app holds the connected stores and services shared by the commands.
type app struct {
	cfg      *config.Config
	client   *mongo.Client
	services handler.Services
	seeder   *usecase.Seeder
	closers  []func() error
}

func newApp(ctx context.Context, cfg *config.Config) (*app, error) {
	client, err := cfg.Database.Connect(ctx)
	if err != nil {
		return nil, err
	}
	a := &app{cfg: cfg, client: client}
	a.closers = append(a.closers, func() error {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return client.Disconnect(ctx)
	})

	db := client.Database(cfg.Database.DatabaseName)
	names := cfg.Database.Collections
	if err := repository.SetupIndexes(ctx, db, names); err != nil {
		a.Close()
		return nil, fmt.Errorf("failed to set up indexes: %w", err)
	}

	locker, err := a.progressLocker()
	if err != nil {
		a.Close()
		return nil, err
	}

	categoriesRepo := repository.GetCategoriesRepo(db, names.Categories)
	activitiesRepo := repository.GetActivitiesRepo(db, names.Activities)
	goalsRepo := repository.GetGoalsRepo(db, names.Goals)
	badgesRepo := repository.GetBadgesRepo(db, names.Badges)
	statsRepo := repository.GetStatsRepo(db, names.UserStats)

	clock := utils.SystemClock{}
	progress := usecase.NewProgressService(statsRepo, usecase.NewBadgeEvaluator(badgesRepo, clock), locker)

	a.services = handler.Services{
		Categories: usecase.NewCategoriesService(categoriesRepo, clock),
		Activities: usecase.NewActivitiesService(activitiesRepo, progress, clock),
		Goals:      usecase.NewGoalsService(goalsRepo, clock),
		Badges:     usecase.NewBadgesService(badgesRepo),
		Progress:   progress,
		Analytics:  usecase.NewAnalyticsService(activitiesRepo, clock),
		DB:         client,
	}
	a.seeder = usecase.NewSeeder(categoriesRepo, badgesRepo, statsRepo, clock)

	utils.Logger.WithField("database", cfg.Database.DatabaseName).Info("Connected to MongoDB")
	return a, nil
}

// progressLocker picks the Redis lock when REDIS_URL is set and the
// in-process one otherwise.
func (a *app) progressLocker() (usecase.ProgressLocker, error) {
	if a.cfg.Redis.URL == "" {
		return services.NewLocalProgressLock(), nil
	}

	lock, err := services.NewRedisProgressLock(a.cfg.Redis.URL, a.cfg.Redis.LockTTL)
	if err != nil {
		return nil, err
	}
	a.closers = append(a.closers, lock.Close)
	utils.Logger.Info("Using Redis progress lock")
	return lock, nil
}

// Close releases resources in reverse order of acquisition.
func (a *app) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			utils.Logger.WithError(err).Warn("Error during shutdown")
		}
	}
}
