package expand

import (
	"fmt"

	"twiddler-tools/internal/chord"
	"twiddler-tools/internal/common"
	"twiddler-tools/internal/diagnostic"
	"twiddler-tools/internal/modifier"
)

// Result is the outcome of an expansion.
type Result struct {
	// Entries is the expanded table in first-acceptance order.
	Entries     []chord.Entry
	Diagnostics diagnostic.Diagnostics
	Stats       Stats
}

type expander struct {
	opts  Options
	table *chord.Table
	res   *Result
}

// Expand normalizes the entries and adds the modifier variants of every
// keyboard chord. Problems with individual rows are reported through
// Result.Diagnostics; an error is returned only for invalid options.
func Expand(entries []chord.Entry, opts Options) (*Result, error) {
	if opts.Policy == "" {
		opts.Policy = PolicyEligible
	}

	if err := opts.Validate(); err != nil {
		return nil, err
	}

	x := &expander{
		opts:  opts,
		table: chord.NewTable(len(entries) * (len(opts.Modifiers.Combinations()) + 1)),
		res:   &Result{},
	}

	for _, e := range entries {
		x.expandEntry(e)
	}

	x.res.Entries = x.table.Entries()
	x.res.Stats.Input = len(entries)
	x.res.Stats.Accepted = x.table.Len()

	return x.res, nil
}

func (x *expander) expandEntry(raw chord.Entry) {
	e, changed := raw.Normalize()
	if changed {
		x.res.Stats.Normalized++
		x.res.Diagnostics.AddWarning(diagnostic.CodeUnsortedThumbs,
			"thumb entries are not sorted", raw.String(), e.Thumbs)
	}

	x.offer(e, false)

	if !x.opts.Markers.IsKeyboard(e.Action) {
		x.res.Stats.NonKeyboard++

		if x.opts.Markers.Classify(e.Action) == chord.KindOther {
			x.res.Diagnostics.AddInfo(diagnostic.CodeUnknownMarker,
				"action has no recognised marker; passed through", e.String(), "")
		}

		return
	}

	payload := x.opts.Markers.Payload(e.Action)

	if x.opts.Policy == PolicyAny {
		for _, combo := range x.combinations(e) {
			x.offer(chord.Entry{
				Thumbs:  common.SortChars(e.Thumbs + combo.Buttons()),
				Fingers: e.Fingers,
				Action:  x.opts.Markers.Keyboard + combo.Apply(payload),
			}, true)
		}

		return
	}

	mods := x.opts.Modifiers

	// A payload that already carries the tags of held modifiers is
	// re-nested with the new ones so tag order always follows priority.
	payload, applied := mods.Peel(payload, func(m modifier.Modifier) bool {
		return e.HasButton(m.Button)
	})

	for _, combo := range x.combinations(e) {
		x.offer(chord.Entry{
			Thumbs:  common.UnionChars(e.Thumbs, combo.Buttons()),
			Fingers: e.Fingers,
			Action:  x.opts.Markers.Keyboard + mods.Union(applied, combo).Apply(payload),
		}, true)
	}
}

// combinations returns the modifier combinations to synthesize for e, in
// the order they are offered to the table.
func (x *expander) combinations(e chord.Entry) []modifier.Set {
	var eligible modifier.Set

	for _, m := range x.opts.Modifiers {
		if !e.HasButton(m.Button) {
			eligible = append(eligible, m)
		}
	}

	if common.IsEmpty(eligible) {
		return nil
	}

	if x.opts.Policy == PolicyEligible {
		return eligible.Combinations()
	}

	var out []modifier.Set

	for _, combo := range x.opts.Modifiers.Combinations() {
		for _, m := range combo {
			if !e.HasButton(m.Button) {
				out = append(out, combo)
				break
			}
		}
	}

	return out
}

func (x *expander) offer(e chord.Entry, synthesized bool) {
	outcome, existing := x.table.Accept(e)

	switch outcome {
	case chord.Accepted:
		if synthesized {
			x.res.Stats.Synthesized++
		}
	case chord.Duplicate:
		x.res.Stats.Duplicates++
	case chord.Conflict:
		x.res.Stats.Conflicts++
		x.res.Diagnostics.AddWarning(diagnostic.CodeChordConflict,
			fmt.Sprintf("chord %s is already mapped to %q; skipping", e.Key(), existing.Action),
			e.String(), existing.Action)
	}
}
