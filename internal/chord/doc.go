// Package chord defines the rows of a Twiddler configuration table and the
// ordered, conflict-free table they are accumulated into.
//
// A row binds a chord (the thumb buttons plus the finger buttons held
// together) to an action string. The action starts with a marker telling
// what kind of output it produces:
//
//	Thumbs,Fingers,Actions
//	"1","LOOO","[KB]a"
//	"14","LOOO","[KB]<L-Shift>a</L-Shift>"
//	"2","OOOR","[SYS]toggle"
//
// Two rows share a chord when their Thumbs and Fingers are equal. A table
// never holds two different actions for the same chord; the first accepted
// row wins.
package chord
