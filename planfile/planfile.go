package planfile

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/taperlab/taperplan/taper"
)

// FloatRange mirrors taper.Range with YAML tags; both bounds optional.
type FloatRange struct {
	Min *float64 `yaml:"min,omitempty"`
	Max *float64 `yaml:"max,omitempty"`
}

// IntRange mirrors taper.IntRange with YAML tags.
type IntRange struct {
	Min *int `yaml:"min,omitempty"`
	Max *int `yaml:"max,omitempty"`
}

// RequestConstraints is the optional constraints block of a request file.
type RequestConstraints struct {
	StepSize    *FloatRange `yaml:"step_size,omitempty"`
	CycleLength *IntRange   `yaml:"cycle_length,omitempty"`
	Steps       *IntRange   `yaml:"steps,omitempty"`
	Duration    *IntRange   `yaml:"duration,omitempty"`
}

// Request is a taper request as entered by the user.
type Request struct {
	CurrentDose float64             `yaml:"current_dose"`
	GoalDose    float64             `yaml:"goal_dose"`
	Constraints *RequestConstraints `yaml:"constraints,omitempty"`
}

// TaperConstraints converts the file representation into engine constraints.
// A block (or bound pair) that is present but empty collapses to absent, so
// the engine never sees a misleading "present-but-empty" range.
func (r Request) TaperConstraints() taper.Constraints {
	var c taper.Constraints
	if r.Constraints == nil {
		return c
	}

	if fr := r.Constraints.StepSize; fr != nil && (fr.Min != nil || fr.Max != nil) {
		c.StepSize = &taper.Range{Min: fr.Min, Max: fr.Max}
	}
	if ir := r.Constraints.CycleLength; ir != nil && (ir.Min != nil || ir.Max != nil) {
		c.CycleLength = &taper.IntRange{Min: ir.Min, Max: ir.Max}
	}
	if ir := r.Constraints.Steps; ir != nil && (ir.Min != nil || ir.Max != nil) {
		c.Steps = &taper.IntRange{Min: ir.Min, Max: ir.Max}
	}
	if ir := r.Constraints.Duration; ir != nil && (ir.Min != nil || ir.Max != nil) {
		c.Duration = &taper.IntRange{Min: ir.Min, Max: ir.Max}
	}

	return c
}

// PlanPhase is one phase of a saved plan.
type PlanPhase struct {
	Index            int     `yaml:"index"`
	WholeUnits       int     `yaml:"whole_units"`
	HalfUnits        int     `yaml:"half_units"`
	CycleDays        int     `yaml:"cycle_days"`
	AverageDailyDose float64 `yaml:"avg_daily_dose"`
}

// Plan is a generated taper persisted alongside the request that produced
// it and the full constraint audit.
type Plan struct {
	Request   Request     `yaml:"request"`
	Phases    []PlanPhase `yaml:"phases"`
	Respected []string    `yaml:"respected,omitempty"`
	Violated  []string    `yaml:"violated,omitempty"`
	Warnings  []string    `yaml:"warnings,omitempty"`
	Reasoning []string    `yaml:"reasoning,omitempty"`
}

// FromResult builds the file representation of an engine result.
func FromResult(req Request, res taper.Result) Plan {
	p := Plan{
		Request:   req,
		Respected: res.Status.Respected,
		Violated:  res.Status.Violated,
		Warnings:  res.Status.Warnings,
		Reasoning: res.Status.Reasoning,
	}
	for _, ph := range res.Phases {
		p.Phases = append(p.Phases, PlanPhase{
			Index:            ph.Index,
			WholeUnits:       ph.WholeUnits,
			HalfUnits:        ph.HalfUnits,
			CycleDays:        ph.CycleLength,
			AverageDailyDose: ph.AverageDailyDose,
		})
	}

	return p
}

// TaperPhases converts the saved phases back into engine phases, for the
// schedule and render packages.
func (p Plan) TaperPhases() []taper.Phase {
	out := make([]taper.Phase, 0, len(p.Phases))
	for _, ph := range p.Phases {
		out = append(out, taper.Phase{
			Index: ph.Index,
			DoseCombination: taper.DoseCombination{
				WholeUnits:       ph.WholeUnits,
				HalfUnits:        ph.HalfUnits,
				CycleLength:      ph.CycleDays,
				AverageDailyDose: ph.AverageDailyDose,
			},
		})
	}

	return out
}

// ParseRequest decodes a request document, rejecting unknown fields.
func ParseRequest(data []byte) (Request, error) {
	var r Request
	if err := strictUnmarshal(data, &r); err != nil {
		return Request{}, fmt.Errorf("planfile: parse request: %w", err)
	}

	return r, nil
}

// LoadRequest reads and decodes a request file.
func LoadRequest(path string) (Request, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Request{}, fmt.Errorf("planfile: read request: %w", err)
	}

	return ParseRequest(data)
}

// ParsePlan decodes a plan document, rejecting unknown fields.
func ParsePlan(data []byte) (Plan, error) {
	var p Plan
	if err := strictUnmarshal(data, &p); err != nil {
		return Plan{}, fmt.Errorf("planfile: parse plan: %w", err)
	}

	return p, nil
}

// LoadPlan reads and decodes a plan file.
func LoadPlan(path string) (Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Plan{}, fmt.Errorf("planfile: read plan: %w", err)
	}

	return ParsePlan(data)
}

// SavePlan writes a plan file with 0644 permissions.
func SavePlan(path string, p Plan) error {
	data, err := yaml.Marshal(p)
	if err != nil {
		return fmt.Errorf("planfile: marshal plan: %w", err)
	}
	if err = os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("planfile: write plan: %w", err)
	}

	return nil
}

// strictUnmarshal decodes with KnownFields so typos surface as errors.
func strictUnmarshal(data []byte, out any) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	return dec.Decode(out)
}
