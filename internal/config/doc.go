// Package config loads, normalizes, and validates fridgescan configuration.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), and reads TOML files. The Config type centralizes every knob
// the CLI needs: data and log directories, detection cadence, capture
// monitoring, history archiving, logging, and candidate-label extensions.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical log formats, and clear validation errors.
package config
