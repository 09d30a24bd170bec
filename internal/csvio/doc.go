// Package csvio reads and writes chord tables in the CSV layout used by
// the Twiddler V6 configuration tools:
//
//	"Thumbs","Fingers","Actions"
//	"1","LOOO","[KB]a"
//
// Cells are taken literally; an empty cell is an empty string, never a
// missing value. Output quotes every field.
package csvio
