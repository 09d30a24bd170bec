package modifier

import (
	"fmt"
	"strings"
	"unicode"

	"twiddler-tools/internal/common"
	"twiddler-tools/internal/diagnostic"
)

// Modifier is a modifier key reachable through one thumb button.
type Modifier struct {
	// Name is the logical key: Shift, Ctrl or Alt.
	Name string `yaml:"name" mapstructure:"name"`
	// Button is the single-character thumb button code.
	Button string `yaml:"button" mapstructure:"button"`
	// Label is the tag name used when wrapping an action.
	Label string `yaml:"label" mapstructure:"label"`
}

// Set is an ordered list of modifiers, highest priority first.
type Set []Modifier

// Names lists the modifiers a Set must contain, in order.
var Names = []string{"Shift", "Ctrl", "Alt"}

// Default returns the left-hand modifiers of a Twiddler V6.
func Default() Set {
	return Set{
		{Name: "Shift", Button: "4", Label: "L-Shift"},
		{Name: "Ctrl", Button: "3", Label: "L-Ctrl"},
		{Name: "Alt", Button: "2", Label: "L-Alt"},
	}
}

// Buttons returns the concatenated button codes of the set.
func (s Set) Buttons() string {
	var sb strings.Builder
	for _, m := range s {
		sb.WriteString(m.Button)
	}

	return sb.String()
}

// Labels returns the labels of the set in priority order.
func (s Set) Labels() []string {
	labels := make([]string, len(s))
	for i, m := range s {
		labels[i] = m.Label
	}

	return labels
}

// Combinations returns every non-empty subset of the set: all singles,
// then all pairs, and so on, each level in priority order. For Shift, Ctrl
// and Alt that is S, C, A, S+C, S+A, C+A, S+C+A.
func (s Set) Combinations() []Set {
	subsets := common.Subsets(s)

	out := make([]Set, len(subsets))
	for i, sub := range subsets {
		out[i] = Set(sub)
	}

	return out
}

// Apply renders a keyboard payload with every modifier of the set.
func (s Set) Apply(payload string) string {
	return Wrap(payload, s.Labels()...)
}

// Wrap encloses payload in one tag pair per label; the first label ends up
// outermost.
func Wrap(payload string, labels ...string) string {
	for i := len(labels) - 1; i >= 0; i-- {
		payload = "<" + labels[i] + ">" + payload + "</" + labels[i] + ">"
	}

	return payload
}

// Peel strips the outer modifier tags of an already wrapped payload. A tag
// is removed only when its opening and matching closing pair spans the
// whole payload. Only modifiers for which held reports true are removed, each at most
// once. It returns the bare payload and the removed modifiers in priority
// order.
func (s Set) Peel(payload string, held func(Modifier) bool) (string, Set) {
	peeled := make([]bool, len(s))

	for {
		found := false

		for i, m := range s {
			if peeled[i] || !held(m) {
				continue
			}

			open, closing := "<"+m.Label+">", "</"+m.Label+">"
			if encloses(payload, open, closing) {
				payload = payload[len(open) : len(payload)-len(closing)]
				peeled[i] = true
				found = true

				break
			}
		}

		if !found {
			break
		}
	}

	var applied Set

	for i, m := range s {
		if peeled[i] {
			applied = append(applied, m)
		}
	}

	return payload, applied
}

// encloses reports whether payload is a single open...closing pair, that
// is, whether the tag opened at the start is the one closed at the end.
func encloses(payload, open, closing string) bool {
	if len(payload) < len(open)+len(closing) ||
		!strings.HasPrefix(payload, open) || !strings.HasSuffix(payload, closing) {
		return false
	}

	depth := 1

	for i := len(open); i < len(payload); {
		switch {
		case strings.HasPrefix(payload[i:], open):
			depth++
			i += len(open)
		case strings.HasPrefix(payload[i:], closing):
			depth--
			if depth == 0 {
				return i == len(payload)-len(closing)
			}

			i += len(closing)
		default:
			i++
		}
	}

	return false
}

// Union returns the members of s that appear in any of the given sets,
// in the priority order of s. Members are matched by button.
func (s Set) Union(sets ...Set) Set {
	var out Set

	for _, m := range s {
		for _, other := range sets {
			if other.has(m.Button) {
				out = append(out, m)
				break
			}
		}
	}

	return out
}

func (s Set) has(button string) bool {
	for _, m := range s {
		if m.Button == button {
			return true
		}
	}

	return false
}

// Validate checks the set is exactly Shift, Ctrl and Alt in that order,
// each with a distinct one-digit button and a usable label.
func (s Set) Validate() *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}

	if len(s) != len(Names) {
		res.AddError("modifier_count",
			fmt.Sprintf("expected %d modifiers (%s), got %d", len(Names), strings.Join(Names, ", "), len(s)),
			"", "")

		return res
	}

	seen := map[string]string{}

	for i, m := range s {
		if !strings.EqualFold(m.Name, Names[i]) {
			res.AddError("modifier_order",
				fmt.Sprintf("modifier %d must be %s", i+1, Names[i]), m.Name, "")
		}

		if len(m.Button) != 1 || !unicode.IsDigit(rune(m.Button[0])) {
			res.AddError("modifier_button",
				"button must be a single digit", m.Name, m.Button)
		} else if prev, ok := seen[m.Button]; ok {
			res.AddError("modifier_duplicate_button",
				fmt.Sprintf("button already used by %s", prev), m.Name, m.Button)
		} else {
			seen[m.Button] = m.Name
		}

		if m.Label == "" || strings.ContainsAny(m.Label, "<>/") {
			res.AddError("modifier_label",
				"label must be non-empty and must not contain '<', '>' or '/'", m.Name, m.Label)
		}
	}

	return res
}
