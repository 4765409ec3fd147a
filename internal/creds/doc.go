// Package creds defines typed credential sets for the third-party services
// the toolkit talks to. Each provider has a loader that reads its settings
// section through the config resolver and a Validate method checking the
// loaded values. Missing mandatory keys are reported as MissingKeyError so
// callers can tell operators exactly which setting to supply.
package creds
