// Package suggest owns the candidate-label tables offered to users when an
// item's identity is unknown.
//
// Suggestions are keyed by container type, refined by content type for jars,
// and fall back to a single "Unknown Item" sentinel for unrecognized
// containers. Configuration may append extra labels per container type; the
// sentinel fallback is always preserved.
package suggest
