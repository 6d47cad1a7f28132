package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/mathmate/mathmate/internal/history"
	"github.com/mathmate/mathmate/internal/mastery"
	"github.com/mathmate/mathmate/internal/profile"
	"github.com/mathmate/mathmate/internal/store"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show learning statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer st.Close()

		tracker := mastery.NewTracker(st)
		hist := history.NewService(st)
		profiles := profile.NewManager(st, tracker, hist)

		entries := hist.List()
		correct := 0
		for _, e := range entries {
			if e.IsCorrect {
				correct++
			}
		}

		fmt.Printf("Exercises checked:  %d (%d correct)\n", len(entries), correct)
		fmt.Printf("Problem areas:      %d open, %d mistakes to clear\n",
			len(tracker.ActiveSkillIDs()), tracker.TotalErrors())

		if p := profiles.Load(); p != nil {
			fmt.Printf("Skill level:        %d/100 (analyzed %s)\n",
				p.SkillLevel, time.UnixMilli(p.LastAnalysis).Local().Format("2006-01-02"))
			fmt.Printf("Open weaknesses:    %d, with %d mistake examples\n",
				len(p.Weaknesses), len(p.MistakeExamples))
		} else {
			fmt.Println("Skill level:        not analyzed yet")
		}

		llmStats, err := st.LLMStats(context.Background())
		if err != nil {
			return fmt.Errorf("llm stats: %w", err)
		}
		fmt.Printf("LLM requests:       %d (%d failed), %d tokens in / %d out\n",
			llmStats.TotalRequests, llmStats.TotalFailures,
			llmStats.InputTokens, llmStats.OutputTokens)

		return nil
	},
}
