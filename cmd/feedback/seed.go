package main

import (
	"context"
	"log"

	"github.com/spf13/cobra"

	"github.com/joestump/feedback/internal/config"
	"github.com/joestump/feedback/internal/db"
	"github.com/joestump/feedback/internal/store"
)

func newSeedCmd() *cobra.Command {
	var withSamples bool

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Reset all user and feedback data",
		Long:  "Runs migrations, then empties the feedback and users tables. With --samples, creates a demo admin and user with some feedback.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			database, err := db.New(cfg.DB.Driver, cfg.DB.DSN)
			if err != nil {
				return err
			}
			defer func() { _ = database.Close() }()

			if err := db.Migrate(database, cfg.DB.Driver); err != nil {
				return err
			}

			ctx := context.Background()

			// feedback references users, so it empties first.
			if _, err := database.ExecContext(ctx, `DELETE FROM feedback`); err != nil {
				return err
			}
			if _, err := database.ExecContext(ctx, `DELETE FROM users`); err != nil {
				return err
			}
			log.Println("tables emptied")

			if !withSamples {
				return nil
			}

			users := store.NewUserStore(database)
			feedback := store.NewFeedbackStore(database)

			if _, err := users.Register(ctx, "admin", "admin", "admin@example.com", "Ada", "Admin", true); err != nil {
				return err
			}
			demo, err := users.Register(ctx, "demo", "demo", "demo@example.com", "Demi", "Demo", false)
			if err != nil {
				return err
			}
			if _, err := feedback.Create(ctx, demo.Username, "Hello", "First feedback from the seed data."); err != nil {
				return err
			}

			log.Println("sample users created: admin/admin, demo/demo")
			return nil
		},
	}

	cmd.Flags().BoolVar(&withSamples, "samples", false, "also create sample users and feedback")
	return cmd
}
