// Package simnet is a reference implementation of package model's
// collaborator interfaces over plain float64 variables and linear
// equality constraints. It exists so this repository's own tests have a
// concrete flowsheet to drive decomp.Run against, without
// needing a real optimization modeling layer — that role is left to a
// host application.
package simnet
