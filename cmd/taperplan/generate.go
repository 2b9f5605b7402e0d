package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/taperlab/taperplan/planfile"
	"github.com/taperlab/taperplan/render"
	"github.com/taperlab/taperplan/taper"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a taper plan",
	Long: `Generate a taper plan from a starting dose down to a goal dose.

Constraints may come from a YAML request file (--plan), from flags, or both;
a flag always overrides the file. Dimensions left unset are auto-optimized.`,
	RunE: runGenerate,
}

func init() {
	f := generateCmd.Flags()
	f.Float64("current", 0, "current daily dose in units")
	f.Float64("goal", 0, "goal daily dose in units")
	f.Float64("min-step", 0, "minimum dose reduction per step")
	f.Float64("max-step", 0, "maximum dose reduction per step")
	f.Int("min-cycle", 0, "minimum days per phase")
	f.Int("max-cycle", 0, "maximum days per phase")
	f.Int("min-steps", 0, "minimum number of phases")
	f.Int("max-steps", 0, "maximum number of phases")
	f.Int("min-duration", 0, "minimum total days")
	f.Int("max-duration", 0, "maximum total days")
	f.String("plan", "", "YAML request file to read doses and constraints from")
	f.StringP("out", "o", "", "write the generated plan to this YAML file")

	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	req, err := assembleRequest(cmd)
	if err != nil {
		return err
	}

	res := taper.Generate(req.CurrentDose, req.GoalDose, req.TaperConstraints())

	cyan := color.New(color.FgCyan, color.Bold).SprintFunc()
	fmt.Printf("\n%s\n\n", cyan(fmt.Sprintf("=== Taper %.3f → %.3f units/day ===", req.CurrentDose, req.GoalDose)))

	fmt.Println(render.Table(res.Phases))
	if len(res.Phases) > 0 {
		fmt.Println(render.Chart(res.Phases, 40))
		fmt.Printf("Total: %d phases over %d days\n\n", len(res.Phases), res.TotalDuration())
	}
	fmt.Println(render.Status(res.Status))

	if out, _ := cmd.Flags().GetString("out"); out != "" {
		if err = planfile.SavePlan(out, planfile.FromResult(req, res)); err != nil {
			return err
		}
		fmt.Printf("Plan written to %s\n", out)
	}

	if len(res.Phases) == 0 {
		os.Exit(1)
	}

	return nil
}

// assembleRequest merges the optional request file with flag overrides.
// Only flags the user actually changed participate, so absent dimensions
// stay absent.
func assembleRequest(cmd *cobra.Command) (planfile.Request, error) {
	var (
		req planfile.Request
		err error
		f   = cmd.Flags()
	)

	if path, _ := f.GetString("plan"); path != "" {
		if req, err = planfile.LoadRequest(path); err != nil {
			return planfile.Request{}, err
		}
	}

	if f.Changed("current") {
		req.CurrentDose, _ = f.GetFloat64("current")
	}
	if f.Changed("goal") {
		req.GoalDose, _ = f.GetFloat64("goal")
	}
	if req.CurrentDose == 0 && req.GoalDose == 0 {
		return planfile.Request{}, fmt.Errorf("either --plan or --current/--goal is required")
	}

	if req.Constraints == nil {
		req.Constraints = &planfile.RequestConstraints{}
	}

	applyFloatRange(f, "min-step", "max-step", &req.Constraints.StepSize)
	applyIntRange(f, "min-cycle", "max-cycle", &req.Constraints.CycleLength)
	applyIntRange(f, "min-steps", "max-steps", &req.Constraints.Steps)
	applyIntRange(f, "min-duration", "max-duration", &req.Constraints.Duration)

	return req, nil
}
