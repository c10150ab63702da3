// Package logging constructs the slog loggers used across fridgescan.
//
// Two output formats are supported: a human-oriented console format
// (timestamp, level, component prefix, key=value attributes) and standard
// JSON. Format and level come from configuration. Components obtain scoped
// loggers via NewComponentLogger; tests use NewNop.
package logging
