package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"levelup/config"
	"levelup/utils"

	"github.com/spf13/cobra"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCommand().ExecuteContext(ctx); err != nil {
		utils.Logger.WithError(err).Error("levelup exited with error")
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var cfg *config.Config

	cmd := &cobra.Command{
		Use:           "levelup",
		Short:         "LevelUp - personal progress tracker backend",
		Long:          "Tracks activities per category and turns them into XP, levels, streaks, badges and analytics.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := config.Load()
			if err != nil {
				return err
			}
			cfg = loaded

			utils.InitLogger(cfg.Log.Level, cfg.Log.Format)
			utils.InitValidator()
			return nil
		},
	}

	cmd.AddCommand(newServeCommand(func() *config.Config { return cfg }))
	cmd.AddCommand(newSeedCommand(func() *config.Config { return cfg }))

	return cmd
}

func newSeedCommand(loadConfig func() *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Install default categories, badges and the user profile",
		Long: `Install the default categories, badges and user_stats profile.

Each part is written only when missing, so running seed repeatedly is safe.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp(cmd.Context(), loadConfig())
			if err != nil {
				return err
			}
			defer app.Close()

			if err := app.seeder.Seed(cmd.Context()); err != nil {
				return err
			}
			utils.Logger.Info("Seeding complete")
			return nil
		},
	}
}
