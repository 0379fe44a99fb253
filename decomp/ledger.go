package decomp

import "github.com/procflow/seqdecomp/model"

// fixedLedger tracks every variable Run itself fixed, so it can free
// exactly those (never a variable the caller had already fixed) on every
// exit path — including an error return or a panic recovered upstream.
type fixedLedger struct {
	fixed []model.Variable
}

// acquire fixes v at value if it isn't already fixed, recording it for
// later release. A variable the caller fixed before Run started is left
// alone entirely: Run never frees state it didn't create.
func (l *fixedLedger) acquire(v model.Variable, value float64) {
	if v.IsFixed() {
		return
	}
	v.Fix(value)
	l.fixed = append(l.fixed, v)
}

// releaseAll frees every variable acquired so far and resets the ledger,
// used between convergence iterations where each pass re-derives its own
// propagated values from scratch.
func (l *fixedLedger) releaseAll() {
	for _, v := range l.fixed {
		v.Free()
	}
	l.fixed = l.fixed[:0]
}

