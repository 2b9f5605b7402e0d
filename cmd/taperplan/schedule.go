package main

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/taperlab/taperplan/planfile"
	"github.com/taperlab/taperplan/schedule"
)

var scheduleCmd = &cobra.Command{
	Use:   "schedule",
	Short: "Expand a saved plan into a day-by-day calendar",
	RunE:  runSchedule,
}

func init() {
	f := scheduleCmd.Flags()
	f.String("plan", "", "plan YAML file (required)")
	f.String("start", "", "first dosing day, YYYY-MM-DD (required)")
	f.Int("weeks", 0, "print only the first N weeks (0 = all)")
	_ = scheduleCmd.MarkFlagRequired("plan")
	_ = scheduleCmd.MarkFlagRequired("start")

	rootCmd.AddCommand(scheduleCmd)
}

func runSchedule(cmd *cobra.Command, _ []string) error {
	path, _ := cmd.Flags().GetString("plan")
	startStr, _ := cmd.Flags().GetString("start")
	weeks, _ := cmd.Flags().GetInt("weeks")

	plan, err := planfile.LoadPlan(path)
	if err != nil {
		return err
	}

	start, err := time.Parse("2006-01-02", startStr)
	if err != nil {
		return fmt.Errorf("invalid --start date %q: %w", startStr, err)
	}

	days, err := schedule.Expand(plan.TaperPhases(), start)
	if err != nil {
		return err
	}

	limit := len(days)
	if weeks > 0 && weeks*7 < limit {
		limit = weeks * 7
	}

	var (
		bold      = color.New(color.Bold).SprintFunc()
		gray      = color.New(color.FgHiBlack).SprintFunc()
		lastPhase = 0
	)

	for _, d := range days[:limit] {
		if d.PhaseIndex != lastPhase {
			fmt.Printf("\n%s\n", bold(fmt.Sprintf("Phase %d", d.PhaseIndex)))
			lastPhase = d.PhaseIndex
		}
		fmt.Printf("  %s  %5.2f units  %s\n",
			d.Date.Format("2006-01-02"),
			d.Units,
			gray(fmt.Sprintf("(day %d, %.1f total)", d.DayOfPhase, d.Cumulative)))
	}

	if limit < len(days) {
		fmt.Printf("\n… %d more days\n", len(days)-limit)
	}

	return nil
}
