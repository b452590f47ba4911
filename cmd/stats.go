package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show revision statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		ctx := cmd.Context()
		turns, err := st.Events().TurnStats(ctx)
		if err != nil {
			return fmt.Errorf("query turn stats: %w", err)
		}

		fmt.Println("Revision Activity")
		fmt.Println(strings.Repeat("─", 48))
		fmt.Printf("%-20s  %6d\n", "Sessions", turns.Sessions)
		fmt.Printf("%-20s  %6d\n", "Turns", turns.Turns)
		fmt.Printf("%-20s  %6d\n", "Answers submitted", turns.Answers)
		fmt.Printf("%-20s  %6d\n", "Cards resolved", turns.Resolved)
		return nil
	},
}
