package chord

import (
	"fmt"

	"twiddler-tools/internal/common"
)

// Entry is one row of a chord table.
type Entry struct {
	// Thumbs lists the pressed thumb buttons, one digit each, in ascending
	// order once normalized.
	Thumbs string
	// Fingers encodes the finger buttons; it is opaque here.
	Fingers string
	// Action is the marker-prefixed output of the chord.
	Action string
}

// Key identifies a chord independently of its action.
type Key struct {
	Thumbs  string
	Fingers string
}

// Key returns the chord identity of the entry.
func (e Entry) Key() Key {
	return Key{Thumbs: e.Thumbs, Fingers: e.Fingers}
}

// HasButton reports whether the thumb button code is already part of the chord.
func (e Entry) HasButton(code string) bool {
	return common.ContainsChar(e.Thumbs, code)
}

// Normalize returns a copy of the entry with its thumb buttons sorted and
// whether anything had to change.
func (e Entry) Normalize() (Entry, bool) {
	if common.IsSortedChars(e.Thumbs) {
		return e, false
	}

	e.Thumbs = SortThumbs(e.Thumbs)

	return e, true
}

// String renders the entry as a quoted tuple, e.g. ("1","A","[KB]x").
func (e Entry) String() string {
	return fmt.Sprintf("(%q,%q,%q)", e.Thumbs, e.Fingers, e.Action)
}

// String renders the key as a quoted pair.
func (k Key) String() string {
	return fmt.Sprintf("(%q,%q)", k.Thumbs, k.Fingers)
}

// SortThumbs returns the thumb buttons in canonical order.
func SortThumbs(thumbs string) string {
	return common.SortChars(thumbs)
}
