// Package scan defines the scan-session item model and the pure derivation
// views computed from it.
//
// An Item is one detected-or-added object inside a session. Its DetectionType
// records how its identity was determined, not what it is: the derivation
// helpers (UnknownItems, IdentifiedItems, UnlabeledCount), not the stored
// field, are the source of truth for whether an item still needs user
// attention. Derivations are stable filters over the input slice and never
// mutate it.
//
// Treat this package as the single source of truth for item semantics; when
// you add a detection, container, or freshness value, update the enum tables
// here so parsing and suggestions stay in sync.
package scan
