package chord

import "strings"

//go:generate go tool stringer -type=ActionKind -linecomment -output=actionkind_string.go

// ActionKind classifies an action by its leading marker.
type ActionKind int

const (
	KindOther    ActionKind = iota // other
	KindKeyboard                   // keyboard
	KindSystem                     // system
)

// Default action markers.
const (
	KeyboardMarker = "[KB]"
	SystemMarker   = "[SYS]"
)

// Markers holds the action prefixes recognised in the Actions column.
type Markers struct {
	// Keyboard marks an action that types output and may take modifiers.
	Keyboard string
	// System marks a device action which is never modified.
	System string
}

// DefaultMarkers returns the markers used by Twiddler V6 configurations.
func DefaultMarkers() Markers {
	return Markers{Keyboard: KeyboardMarker, System: SystemMarker}
}

// Classify returns the kind of the action.
func (m Markers) Classify(action string) ActionKind {
	switch {
	case m.Keyboard != "" && strings.HasPrefix(action, m.Keyboard):
		return KindKeyboard
	case m.System != "" && strings.HasPrefix(action, m.System):
		return KindSystem
	default:
		return KindOther
	}
}

// IsKeyboard reports whether the action is keyboard output.
func (m Markers) IsKeyboard(action string) bool {
	return m.Classify(action) == KindKeyboard
}

// Payload returns the part of a keyboard action after its first marker.
// Non-keyboard actions are returned unchanged.
func (m Markers) Payload(action string) string {
	if m.Keyboard == "" {
		return action
	}

	if _, after, ok := strings.Cut(action, m.Keyboard); ok {
		return after
	}

	return action
}
