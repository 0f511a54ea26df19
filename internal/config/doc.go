// Package config loads, normalizes, and validates gamekeeper
// configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), and reads TOML files. The Config type centralizes every
// knob the CLI needs: source database locations, the platform
// dictionary, manual override files, external catalog endpoints, and
// logging/export settings.
//
// Always obtain settings through this package so downstream code
// receives sanitized paths and clear validation errors.
package config
