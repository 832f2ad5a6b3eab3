package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alombard/lessonforge/internal/store"
)

var lessonsCmd = &cobra.Command{
	Use:   "lessons",
	Short: "List stored lessons",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}

		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		lessons, err := s.LessonRepo().List(context.Background())
		if err != nil {
			return fmt.Errorf("list lessons: %w", err)
		}

		if len(lessons) == 0 {
			fmt.Println("No lessons found.")
			return nil
		}

		fmt.Printf("%-36s  %-19s  %-30s  %s\n", "ID", "Created", "Title", "Source")
		fmt.Println(strings.Repeat("─", 100))
		for _, l := range lessons {
			title := l.Title
			if len(title) > 30 {
				title = title[:30]
			}
			fmt.Printf("%-36s  %-19s  %-30s  %s\n",
				l.ID,
				l.CreatedAt.Local().Format("2006-01-02 15:04:05"),
				title,
				l.PDFFileName,
			)
		}
		return nil
	},
}
