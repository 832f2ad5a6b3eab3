package cmd

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/alombard/lessonforge/internal/api"
	"github.com/alombard/lessonforge/internal/evaluate"
	"github.com/alombard/lessonforge/internal/lesson"
	"github.com/alombard/lessonforge/internal/llm"
	"github.com/alombard/lessonforge/internal/store"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		addr, _ := cmd.Flags().GetString("addr")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}

		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		ctx := context.Background()
		provider, err := llm.NewProviderFromEnv(ctx, s.EventRepo())
		if err != nil {
			return fmt.Errorf("create LLM provider: %w", err)
		}

		srv := &api.Server{
			Lessons:     s.LessonRepo(),
			Submissions: s.SubmissionRepo(),
			Generator:   lesson.NewGenerator(provider, lesson.DefaultConfig()),
			Evaluator:   evaluate.NewEvaluator(provider, evaluate.DefaultConfig()),
		}

		httpSrv := &http.Server{
			Addr:              addr,
			Handler:           srv.Router(),
			ReadHeaderTimeout: 10 * time.Second,
		}

		fmt.Printf("Listening on %s (db: %s)\n", addr, dbPath)
		return httpSrv.ListenAndServe()
	},
}

func init() {
	serveCmd.Flags().String("addr", ":8080", "Listen address")
}
