package expand

import (
	"fmt"

	"github.com/cockroachdb/errors"

	"twiddler-tools/internal/chord"
	"twiddler-tools/internal/modifier"
)

// Policy selects which modifier combinations are synthesized for a chord
// that already uses some of the modifier buttons.
type Policy string

const (
	// PolicyEligible builds combinations only from modifiers the chord does
	// not use yet. No variant ever involves a modifier already present.
	PolicyEligible Policy = "eligible"
	// PolicyAny builds every combination that contains at least one unused
	// modifier. Button codes are concatenated, so a held button appears
	// twice in the variant's thumbs, and the payload is wrapped as is.
	PolicyAny Policy = "any"
)

// ParsePolicy converts a configuration value into a Policy.
func ParsePolicy(s string) (Policy, error) {
	switch p := Policy(s); p {
	case PolicyEligible, PolicyAny:
		return p, nil
	case "":
		return PolicyEligible, nil
	default:
		return "", errors.WithHintf(
			errors.Newf("unknown combine policy %q", s),
			"use %q or %q", PolicyEligible, PolicyAny)
	}
}

// Options configures an expansion.
type Options struct {
	Modifiers modifier.Set
	Markers   chord.Markers
	Policy    Policy
}

// DefaultOptions returns the Twiddler V6 defaults.
func DefaultOptions() Options {
	return Options{
		Modifiers: modifier.Default(),
		Markers:   chord.DefaultMarkers(),
		Policy:    PolicyEligible,
	}
}

// Validate reports configuration problems that make an expansion meaningless.
func (o Options) Validate() error {
	if diags := o.Modifiers.Validate(); diags.HasErrors() {
		return errors.Wrap(diags.Error(), "invalid modifier table")
	}

	if o.Markers.Keyboard == "" {
		return errors.New("keyboard marker must not be empty")
	}

	if o.Markers.Keyboard == o.Markers.System {
		return errors.Newf("keyboard and system markers are both %q", o.Markers.Keyboard)
	}

	if _, err := ParsePolicy(string(o.Policy)); err != nil {
		return err
	}

	return nil
}

// Stats counts what happened during an expansion.
type Stats struct {
	Input       int
	Normalized  int
	NonKeyboard int
	Accepted    int
	Synthesized int
	Duplicates  int
	Conflicts   int
}

// String summarizes the counts on one line.
func (s Stats) String() string {
	return fmt.Sprintf(
		"input=%d output=%d synthesized=%d duplicates=%d conflicts=%d normalized=%d non_keyboard=%d",
		s.Input, s.Accepted, s.Synthesized, s.Duplicates, s.Conflicts, s.Normalized, s.NonKeyboard)
}
