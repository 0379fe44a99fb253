// Package model declares the narrow collaborator contracts the sequential
// decomposition engine needs from a "modeling layer" it does not implement:
// the unit/port/variable bookkeeping and symbolic expression construction
// a host application owns. This package is the interface boundary for
// those two concerns — the tear-selection solver boundary lives in package
// tear.
//
// Nothing in this package runs an algorithm: it only names the shapes a
// host application's unit/port/arc/variable system must present so that
// package decomp can drive it. A reference implementation over plain
// float64 variables lives in package simnet, used by this repository's own
// tests.
package model
