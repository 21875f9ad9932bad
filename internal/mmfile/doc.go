// Package mmfile provides platform-specific helpers for mapping FITS files
// into memory read-only. Callers must not retain slices of the mapping after
// calling the returned cleanup function.
package mmfile
