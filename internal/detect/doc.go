// Package detect provides the detection capability for scan sessions.
//
// No real vision pipeline exists; the Simulator stands in for one, producing
// a fixed ordered batch of proto items that spans every detection type. The
// Revealer feeds a batch into the session one item per interval so the scan
// reads as progressive, and honors context cancellation so a restarted
// session never receives stale items from a previous reveal.
//
// A production detector replaces the Simulator behind the Detector interface
// and must define its own timeout and partial-result semantics, which the
// simulator does not model.
package detect
