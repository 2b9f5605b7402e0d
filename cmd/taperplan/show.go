package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/taperlab/taperplan/planfile"
	"github.com/taperlab/taperplan/render"
	"github.com/taperlab/taperplan/taper"
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Re-render a saved plan file",
	RunE:  runShow,
}

func init() {
	showCmd.Flags().String("plan", "", "plan YAML file (required)")
	_ = showCmd.MarkFlagRequired("plan")

	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, _ []string) error {
	path, _ := cmd.Flags().GetString("plan")

	plan, err := planfile.LoadPlan(path)
	if err != nil {
		return err
	}

	cyan := color.New(color.FgCyan, color.Bold).SprintFunc()
	fmt.Printf("\n%s\n\n", cyan(fmt.Sprintf("=== Taper %.3f → %.3f units/day ===",
		plan.Request.CurrentDose, plan.Request.GoalDose)))

	phases := plan.TaperPhases()
	fmt.Println(render.Table(phases))
	if len(phases) > 0 {
		fmt.Println(render.Chart(phases, 40))
	}
	fmt.Println(render.Status(taper.ConstraintStatus{
		Respected: plan.Respected,
		Violated:  plan.Violated,
		Warnings:  plan.Warnings,
		Reasoning: plan.Reasoning,
	}))

	return nil
}
