package decomp

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/procflow/seqdecomp/flowgraph"
	"github.com/procflow/seqdecomp/model"
	"github.com/procflow/seqdecomp/tear"
)

// TearMethod selects the fixed-point acceleration used to drive tear
// streams to convergence.
type TearMethod string

const (
	// TearDirect is plain direct substitution: next guess = last computed
	// value, no acceleration.
	TearDirect TearMethod = "direct"

	// TearWegstein applies Wegstein's secant-based acceleration from the
	// second iteration onward (the first iteration has no prior point to
	// take a slope from, so it behaves like TearDirect).
	TearWegstein TearMethod = "wegstein"
)

// SelectTearMethod chooses which tear/solver.Solver builds the default
// tear set when none is supplied and the graph still has cycles.
type SelectTearMethod string

const (
	// SelectMIP uses the exact branch-and-bound solver (tear.NewExhaustiveSolver).
	SelectMIP SelectTearMethod = "mip"

	// SelectHeuristic uses the time-boxed branch-and-bound heuristic
	// (tear.NewBranchAndBoundHeuristic).
	SelectHeuristic SelectTearMethod = "heuristic"
)

// ToleranceType selects how compute_err normalizes a tear stream's
// guess/computed-value discrepancy.
type ToleranceType string

const (
	TolAbs ToleranceType = "abs"
	TolRel ToleranceType = "rel"
)

// Options configures Run. Build one with the With* functions below; the
// zero value is never used directly — Run always starts from
// defaultOptions().
type Options struct {
	graph *flowgraph.Graph

	tearSet          map[int]bool
	selectTearMethod SelectTearMethod
	solveTears       bool
	tearSolver       tear.Solver
	tearTimeLimit    time.Duration

	guesses      map[string]model.GuessValue
	defaultGuess float64

	almostEqualTol float64
	tearMethod     TearMethod
	iterLim        int
	tol            float64
	tolType        ToleranceType
	reportDiffs    bool
	accelMin       float64
	accelMax       float64

	runFirstPass bool
	logInfo      bool
	logger       zerolog.Logger
}

func defaultOptions() Options {
	return Options{
		selectTearMethod: SelectMIP,
		solveTears:       true,
		tearTimeLimit:    5 * time.Second,
		guesses:          make(map[string]model.GuessValue),
		defaultGuess:     0,
		almostEqualTol:   1e-8,
		tearMethod:       TearWegstein,
		iterLim:          40,
		tol:              1e-5,
		tolType:          TolAbs,
		accelMin:         -5,
		accelMax:         0,
		runFirstPass:     true,
		logger:           zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger(),
	}
}

// Option customizes a Run invocation.
type Option func(*Options)

// WithGraph supplies an already-built flowgraph, skipping
// flowgraph.BuildFromModel.
func WithGraph(g *flowgraph.Graph) Option {
	return func(o *Options) { o.graph = g }
}

// WithTearSet overrides tear selection with a caller-chosen set of global
// edge indices, validated against the enumerated cycles via tear.Validate.
func WithTearSet(edges map[int]bool) Option {
	return func(o *Options) { o.tearSet = edges }
}

// WithSelectTearMethod chooses the default solver used when no tear set
// override is supplied.
func WithSelectTearMethod(m SelectTearMethod) Option {
	return func(o *Options) { o.selectTearMethod = m }
}

// WithSolveTears disables solving for a tear set entirely; Run then fails
// with ErrNoTearSet if the graph still has cycles and no override was
// given via WithTearSet.
func WithSolveTears(b bool) Option {
	return func(o *Options) { o.solveTears = b }
}

// WithTearSolver overrides the solver used for automatic tear selection,
// bypassing SelectTearMethod entirely.
func WithTearSolver(s tear.Solver) Option {
	return func(o *Options) { o.tearSolver = s }
}

// WithTearTimeLimit sets the soft deadline passed to the heuristic solver
// built for SelectHeuristic.
func WithTearTimeLimit(d time.Duration) Option {
	return func(o *Options) { o.tearTimeLimit = d }
}

// WithGuess seeds the initial guess for one scalar tear-stream destination
// member, addressed as "unitName.portName.memberName".
func WithGuess(key string, value float64) Option {
	return func(o *Options) {
		if o.guesses == nil {
			o.guesses = make(map[string]model.GuessValue)
		}
		o.guesses[key] = model.NewScalarGuess(value)
	}
}

// WithIndexedGuess seeds the initial per-index guesses for an indexed
// tear-stream destination member, addressed as
// "unitName.portName.memberName".
func WithIndexedGuess(key string, values map[string]float64) Option {
	return func(o *Options) {
		if o.guesses == nil {
			o.guesses = make(map[string]model.GuessValue)
		}
		o.guesses[key] = model.NewIndexedGuess(values)
	}
}

// WithPerArcGuess seeds the initial guesses for an extensive tear-stream
// destination member fed by more than one torn arc, keyed by feeding-arc
// name. The member is still addressed as "unitName.portName.memberName";
// the arc name picks out which feeding stream a given value belongs to.
func WithPerArcGuess(key string, values map[string]float64) Option {
	return func(o *Options) {
		if o.guesses == nil {
			o.guesses = make(map[string]model.GuessValue)
		}
		o.guesses[key] = model.NewPerArcGuess(values)
	}
}

// WithDefaultGuess sets the fallback guess used for any tear-stream member
// not named in WithGuess.
func WithDefaultGuess(v float64) Option {
	return func(o *Options) { o.defaultGuess = v }
}

// WithAlmostEqualTol sets the tolerance within which two values count as
// equal: an arc whose two sides are both known and differ by more than it
// fails with ErrOverdeterminedArc, and a tear stream whose computed value
// lies within it of its guess counts as zero error.
func WithAlmostEqualTol(v float64) Option {
	return func(o *Options) { o.almostEqualTol = v }
}

// WithTearMethod selects direct substitution or Wegstein acceleration.
func WithTearMethod(m TearMethod) Option {
	return func(o *Options) { o.tearMethod = m }
}

// WithIterLim caps the number of convergence passes Run will attempt.
func WithIterLim(n int) Option {
	return func(o *Options) { o.iterLim = n }
}

// WithTol sets the convergence tolerance and how compute_err normalizes
// against it.
func WithTol(tol float64, tolType ToleranceType) Option {
	return func(o *Options) {
		o.tol = tol
		o.tolType = tolType
	}
}

// WithReportDiffs turns on per-iteration, per-stream diff logging.
func WithReportDiffs(b bool) Option {
	return func(o *Options) { o.reportDiffs = b }
}

// WithAccelBounds clamps the Wegstein acceleration factor q to [min, max].
func WithAccelBounds(min, max float64) Option {
	return func(o *Options) {
		o.accelMin = min
		o.accelMax = max
	}
}

// WithRunFirstPass sets whether the first convergence iteration uses
// direct substitution regardless of TearMethod (true, the default). With
// false the first iteration is direct substitution as well, since no tear
// stream has a prior point to take a Wegstein slope from yet; Wegstein
// acceleration starts at iteration 2 either way, so the setting does not
// change the iteration.
func WithRunFirstPass(b bool) Option {
	return func(o *Options) { o.runFirstPass = b }
}

// WithLogInfo turns on top-level info logging (tear-set summary,
// convergence result).
func WithLogInfo(b bool) Option {
	return func(o *Options) { o.logInfo = b }
}

// WithLogger overrides the default console zerolog.Logger.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) { o.logger = l }
}

// validate rejects an Options built from an unrecognized enum value
// instead of letting resolution logic silently fall back to a default.
func (o Options) validate() error {
	switch o.tearMethod {
	case TearDirect, TearWegstein:
	default:
		return fmt.Errorf("decomp: tear_method %q: %w", o.tearMethod, ErrInvalidOption)
	}
	switch o.tolType {
	case TolAbs, TolRel:
	default:
		return fmt.Errorf("decomp: tol_type %q: %w", o.tolType, ErrInvalidOption)
	}
	switch o.selectTearMethod {
	case SelectMIP, SelectHeuristic:
	default:
		return fmt.Errorf("decomp: select_tear_method %q: %w", o.selectTearMethod, ErrInvalidOption)
	}

	return nil
}

// resolveGuess looks up the guess registered under key and validates its
// shape against the member it would seed: a scalar member needs a
// GuessScalar, an indexed member (index != "") needs a GuessIndexedValue
// entry for that index, and an extensive member needs a GuessPerArc entry
// for arcName. ok is false when no guess is registered for key (or no
// entry exists for this particular index/arc within it); that is not an
// error, it just means the default guess applies.
func (o Options) resolveGuess(key string, m model.PortMember, index, arcName string) (float64, bool, error) {
	gv, ok := o.guesses[key]
	if !ok {
		return 0, false, nil
	}

	switch {
	case index != "":
		if gv.Shape != model.GuessIndexedValue {
			return 0, false, fmt.Errorf("decomp: guess %q: indexed member needs an indexed guess: %w", key, ErrGuessTypeError)
		}
		v, ok := gv.Indexed[index]

		return v, ok, nil
	case m.Extensive:
		if gv.Shape != model.GuessPerArc {
			return 0, false, fmt.Errorf("decomp: guess %q: extensive member needs a per-arc guess: %w", key, ErrGuessTypeError)
		}
		v, ok := gv.PerArc[arcName]

		return v, ok, nil
	default:
		if gv.Shape != model.GuessScalar {
			return 0, false, fmt.Errorf("decomp: guess %q: scalar member needs a scalar guess: %w", key, ErrGuessTypeError)
		}

		return gv.Scalar, true, nil
	}
}
