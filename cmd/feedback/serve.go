package main

import (
	"log"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/joestump/feedback/internal/auth"
	"github.com/joestump/feedback/internal/config"
	"github.com/joestump/feedback/internal/db"
	"github.com/joestump/feedback/internal/handler"
	"github.com/joestump/feedback/internal/store"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
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

			sessionManager := auth.NewSessionManager(database, cfg.DB.Driver, cfg.SessionLifetime, !cfg.InsecureCookies)
			authMiddleware := auth.NewMiddleware(sessionManager)

			userStore := store.NewUserStore(database)
			feedbackStore := store.NewFeedbackStore(database)

			router := handler.NewRouter(handler.Deps{
				SessionManager: sessionManager,
				AuthMiddleware: authMiddleware,
				UserStore:      userStore,
				FeedbackStore:  feedbackStore,
			})

			log.Printf("listening on %s", cfg.HTTP.Addr)
			return http.ListenAndServe(cfg.HTTP.Addr, router)
		},
	}
}
