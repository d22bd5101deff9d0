// Package buffer implements the in-memory document that pointwise's motion
// primitives operate on.
//
// Coordinates are 0-based (Row, Col) where Col counts grapheme clusters.
// A point is the flat offset of a position: one unit per cluster plus one per
// line break. Ranges are half-open: [Start, End).
package buffer
