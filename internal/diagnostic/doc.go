// Package diagnostic provides structured warnings and errors collected while
// transforming a chord table.
//
// Findings are returned to the caller instead of being printed, so the CLI
// can log them and tests can assert on them. Key codes:
//   - unsorted_thumbs: an input row had its thumb buttons out of order
//   - chord_conflict: a row was dropped because its chord already maps to a
//     different action
package diagnostic
