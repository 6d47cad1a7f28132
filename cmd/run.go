package cmd

import (
	"fmt"
	"os"

	"github.com/mathmate/mathmate/internal/analyzer"
	"github.com/mathmate/mathmate/internal/app"
	"github.com/mathmate/mathmate/internal/history"
	"github.com/mathmate/mathmate/internal/llm"
	"github.com/mathmate/mathmate/internal/mastery"
	"github.com/mathmate/mathmate/internal/problemgen"
	"github.com/mathmate/mathmate/internal/profile"
	"github.com/mathmate/mathmate/internal/solver"
	"github.com/mathmate/mathmate/internal/store"
	"github.com/spf13/cobra"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	tracker := mastery.NewTracker(st)
	hist := history.NewService(st)
	opts := app.Options{
		Tracker:  tracker,
		History:  hist,
		Profiles: profile.NewManager(st, tracker, hist),
	}

	provider, err := llm.NewProviderFromEnv(ctx, st)
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "AI features will be unavailable.")
	} else {
		opts.Generator = problemgen.New(provider, problemgen.DefaultConfig())
		opts.Analyzer = analyzer.NewService(provider)
		opts.Solver = solver.NewService(provider, hist, tracker)
	}

	return app.Run(opts)
}
