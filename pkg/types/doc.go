// Package types defines the data model for FITS header keyword records.
//
// A header is a sequence of 80-byte cards, each holding one
// "KEYWORD = value / comment" entry. This package models a decoded card as a
// KeywordRecord and its payload as a Value restricted to the five kinds the
// format permits: int32, float32, complex64, string, and bool.
//
// Design goals:
//   - Closed value set, enforced by the Scalar type constraint at compile time.
//   - Validation at construction and on every replacement; a failed setter
//     leaves the record unchanged.
//   - Typed errors that carry the offending text and the index of the first
//     bad character, so callers can point at the defect.
//
// This package has no dependencies beyond the standard library.
package types
