// Package config resolves (section, key) settings with a fixed precedence:
// process environment variables first, then an INI settings file parsed once
// at construction. Absence is a normal result, never an error, so callers
// decide whether a missing value is fatal.
package config
