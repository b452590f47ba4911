package cmd

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/abhisek/chilltutor/internal/app"
	"github.com/abhisek/chilltutor/internal/content"
	"github.com/abhisek/chilltutor/internal/llm"
	"github.com/abhisek/chilltutor/internal/orchestrator"
	"github.com/abhisek/chilltutor/internal/scoring"
	"github.com/abhisek/chilltutor/internal/state"
	"github.com/abhisek/chilltutor/internal/store"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()
	st, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	if err := st.Content().Seed(ctx, content.SeedTopics, content.SeedFlashcards); err != nil {
		return fmt.Errorf("seed content: %w", err)
	}

	provider, err := llm.NewProviderFromEnv(ctx, st.Events())
	if err != nil {
		return fmt.Errorf("LLM provider not configured: %w\nSet GEMINI_API_KEY, OPENAI_API_KEY, or ANTHROPIC_API_KEY", err)
	}

	runner := &orchestrator.Runner{
		Sessions: st.Sessions(),
		Store:    st.Sessions(),
		Marker:   scoring.NewMarker(provider, scoring.DefaultMarkerConfig()),
		Turns:    st.Events(),
	}

	sessionID, err := resolveSession(cmd, st)
	if err != nil {
		return err
	}

	return app.Run(app.Options{Runner: runner, SessionID: sessionID})
}

// resolveSession returns an existing session when --resume is set and
// one exists, otherwise creates a fresh one.
func resolveSession(cmd *cobra.Command, st *store.Store) (string, error) {
	ctx := cmd.Context()

	if resume, _ := cmd.Flags().GetBool("resume"); resume {
		id, err := st.Sessions().Latest(ctx)
		if err != nil {
			return "", fmt.Errorf("find latest session: %w", err)
		}
		if id != "" {
			return id, nil
		}
	}

	topics, err := st.Content().Topics(ctx)
	if err != nil {
		return "", fmt.Errorf("load topics: %w", err)
	}

	id := uuid.NewString()
	if err := st.Sessions().Create(ctx, id, state.New(topics)); err != nil {
		return "", fmt.Errorf("create session: %w", err)
	}
	return id, nil
}

func init() {
	rootCmd.Flags().Bool("resume", false, "Resume the most recent session instead of starting a new one")
}
