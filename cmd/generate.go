package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/alombard/lessonforge/internal/lesson"
	"github.com/alombard/lessonforge/internal/llm"
	"github.com/alombard/lessonforge/internal/store"
)

var generateCmd = &cobra.Command{
	Use:   "generate <pdf-file>",
	Short: "Generate a lesson from a PDF page and store it",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read %s: %w", path, err)
		}

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

		gen := lesson.NewGenerator(provider, lesson.DefaultConfig())
		l, err := gen.Generate(ctx, data, "application/pdf", filepath.Base(path))
		if err != nil {
			if lesson.IsRetryable(err) {
				return fmt.Errorf("generation failed (retryable): %w", err)
			}
			return fmt.Errorf("generation failed: %w", err)
		}

		if err := s.LessonRepo().Create(ctx, l); err != nil {
			return fmt.Errorf("store lesson: %w", err)
		}

		fmt.Printf("Created lesson %s\n", l.ID)
		fmt.Printf("  Title:      %s\n", l.Title)
		fmt.Printf("  Paragraphs: %d\n", len(l.Content))
		fmt.Printf("  Vocabulary: %d words\n", len(l.Vocabulary))
		fmt.Printf("  Questions:  %d\n", len(l.ComprehensionQuestions))
		fmt.Printf("  Exercises:  %d\n", len(l.Exercises))
		return nil
	},
}
