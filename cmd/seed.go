package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/chilltutor/internal/content"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load the built-in topic and flashcard bank",
	Long:  "Loads the embedded GCSE Computer Science topics and flashcards. Safe to re-run; existing rows are updated in place.",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		if err := st.Content().Seed(cmd.Context(), content.SeedTopics, content.SeedFlashcards); err != nil {
			return fmt.Errorf("seed content: %w", err)
		}
		fmt.Printf("Seeded %d topics and %d flashcards.\n", len(content.SeedTopics), len(content.SeedFlashcards))
		return nil
	},
}
