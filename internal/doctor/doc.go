// Package doctor runs per-provider credential checks: load the settings
// section, validate the loaded values, and optionally dial the service.
// Checks run concurrently and every run is tagged with an id for log
// correlation.
package doctor
