// Package status keeps the latest doctor results and serves them over
// HTTP. A collector goroutine owns the snapshot; watch loops publish
// batches onto its channel.
package status
