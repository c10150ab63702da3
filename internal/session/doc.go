// Package session owns the canonical scan session: the active flag, start
// time, source image reference, and the ordered item list.
//
// The Store is the single writer for all session state. Every successful
// mutation persists the full session snapshot to a JSON file; persistence
// failures are logged and never surfaced to callers, so the in-memory state
// stays authoritative for the rest of the process. A file lock guards the
// snapshot against a second fridgescan process, which would otherwise race
// with last-write-wins semantics.
//
// Ending a session deactivates it but keeps the items so a review can still
// read them; resetting clears everything and deletes the snapshot file.
package session
