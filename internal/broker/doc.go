// Package broker constructs SDK clients from loaded credentials. Every
// client exposes Ping for connectivity verification; constructors never
// dial on their own unless the underlying SDK forces it.
package broker
