// Package expand adds modifier variants to a chord table.
//
// Every keyboard chord gains one row per combination of the Shift, Ctrl
// and Alt thumb buttons it does not already use:
//
//	"1","A","[KB]x"
//	"14","A","[KB]<L-Shift>x</L-Shift>"
//	"13","A","[KB]<L-Ctrl>x</L-Ctrl>"
//	"12","A","[KB]<L-Alt>x</L-Alt>"
//	"134","A","[KB]<L-Shift><L-Ctrl>x</L-Ctrl></L-Shift>"
//	"124","A","[KB]<L-Shift><L-Alt>x</L-Alt></L-Shift>"
//	"123","A","[KB]<L-Ctrl><L-Alt>x</L-Alt></L-Ctrl>"
//	"1234","A","[KB]<L-Shift><L-Ctrl><L-Alt>x</L-Alt></L-Ctrl></L-Shift>"
//
// Rows are accepted first come, first served: a chord that is already
// bound to another action keeps it and the newcomer is reported as a
// chord_conflict warning. Re-offering an identical row is silently ignored,
// so expanding an already expanded table adds nothing.
package expand
