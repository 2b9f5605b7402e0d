// Package planfile reads and writes taper requests and generated plans as
// YAML files.
//
// A request file names the doses and any subset of the four constraint
// dimensions; absent bounds stay absent through load/save round-trips, so
// the engine's "range present only if at least one bound is filled" rule is
// enforced at this boundary:
//
//	current_dose: 2.0
//	goal_dose: 0.5
//	constraints:
//	  cycle_length: {min: 14, max: 14}
//	  duration: {min: 90}
//
// A plan file echoes the request and records the generated phases plus the
// full constraint audit, making a saved plan self-describing.
//
// Unknown fields are rejected on load — a typo in a constraint name must
// not silently mean "unconstrained".
package planfile
