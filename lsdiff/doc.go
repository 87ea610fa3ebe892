// Package lsdiff diffs two documents through their canonical LSX
// encodings, line by line. Because both sides are re-encoded from the
// document representation, cosmetic differences of the source texts
// (indentation, member formatting) do not show up; structural changes
// do.
package lsdiff
