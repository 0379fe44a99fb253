// Package decomp drives a torn flowsheet graph to convergence: it orders
// units via calcorder, propagates values along every non-tear arc before
// evaluating each unit's Function, and iterates tear-stream guesses
// (direct substitution or Wegstein acceleration) until every tear stream
// agrees with the value its source unit just computed, within tolerance.
//
// Logging follows zerolog's structured-event style; configuration follows
// the functional-options pattern used throughout this module's graph
// construction helpers.
package decomp
