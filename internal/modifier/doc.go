// Package modifier describes the thumb-button modifier keys that can be
// combined with a keyboard chord, and how a combination is rendered into
// an action.
//
// The set is ordered by priority, Shift then Ctrl then Alt. That order
// decides both the order combinations are produced in and the nesting of
// tags inside an action: the highest priority modifier is outermost.
//
//	Wrap("x", "L-Shift", "L-Ctrl") == "<L-Shift><L-Ctrl>x</L-Ctrl></L-Shift>"
package modifier
