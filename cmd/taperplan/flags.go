package main

import (
	"github.com/spf13/pflag"

	"github.com/taperlab/taperplan/planfile"
)

// applyFloatRange folds changed min/max flags into a file range, creating
// the range only when at least one bound is present — a range must never
// exist without a bound.
func applyFloatRange(f *pflag.FlagSet, minName, maxName string, dst **planfile.FloatRange) {
	if !f.Changed(minName) && !f.Changed(maxName) {
		return
	}
	if *dst == nil {
		*dst = &planfile.FloatRange{}
	}
	if f.Changed(minName) {
		v, _ := f.GetFloat64(minName)
		(*dst).Min = &v
	}
	if f.Changed(maxName) {
		v, _ := f.GetFloat64(maxName)
		(*dst).Max = &v
	}
}

// applyIntRange is the integer twin of applyFloatRange.
func applyIntRange(f *pflag.FlagSet, minName, maxName string, dst **planfile.IntRange) {
	if !f.Changed(minName) && !f.Changed(maxName) {
		return
	}
	if *dst == nil {
		*dst = &planfile.IntRange{}
	}
	if f.Changed(minName) {
		v, _ := f.GetInt(minName)
		(*dst).Min = &v
	}
	if f.Changed(maxName) {
		v, _ := f.GetInt(maxName)
		(*dst).Max = &v
	}
}
