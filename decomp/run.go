package decomp

import (
	"fmt"
	"math"
	"sort"

	"github.com/procflow/seqdecomp/calcorder"
	"github.com/procflow/seqdecomp/flowgraph"
	"github.com/procflow/seqdecomp/model"
	"github.com/procflow/seqdecomp/sccycle"
	"github.com/procflow/seqdecomp/tear"
)

// tearStream is one destination port member (or, for an indexed member,
// one of its indices) fed by a torn arc, iterated toward agreement with
// the value its source unit computes.
type tearStream struct {
	key        string
	arc        model.Arc
	memberName string
	index      string
	destVar    model.Variable

	guess     float64
	prevGuess float64
	prevValue float64
	hasPrev   bool
}

// memberTarget is one concrete variable slot backing a PortMember: the
// member itself for a scalar member, or one (index, variable) pair per
// entry for an indexed member.
type memberTarget struct {
	index string
	v     model.Variable
}

// memberTargets enumerates the concrete variable slots of m. A scalar
// member yields exactly one target with an empty index; an indexed
// member yields one target per index, in sorted order for determinism.
// Expression members yield none — decomp never fixes expression-backed
// variables directly.
func memberTargets(m model.PortMember) []memberTarget {
	if m.Expression {
		return nil
	}
	if m.Scalar != nil {
		return []memberTarget{{v: m.Scalar}}
	}
	if m.Indexed == nil {
		return nil
	}

	indices := make([]string, 0, len(m.Indexed))
	for idx := range m.Indexed {
		indices = append(indices, idx)
	}
	sort.Strings(indices)

	targets := make([]memberTarget, 0, len(indices))
	for _, idx := range indices {
		targets = append(targets, memberTarget{index: idx, v: m.Indexed[idx]})
	}

	return targets
}

// memberKey joins a member name and an optional index into the suffix
// used by a tear-stream or guess lookup key.
func memberKey(member, index string) string {
	if index == "" {
		return member
	}

	return member + "#" + index
}

// Run drives net to convergence, evaluating every unit's Function once per
// calculation-order pass in the order calcorder derives from the torn
// flowgraph, iterating any tear streams per the configured TearMethod
// until every stream's compute_err falls within tol (or the iteration
// limit is exhausted).
func Run(net model.Model, fn model.Function, opts ...Option) error {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.validate(); err != nil {
		return err
	}

	graph := o.graph
	if graph == nil {
		g, err := flowgraph.BuildFromModel(net)
		if err != nil {
			return err
		}
		graph = g
	}

	arcIdx := buildArcIndex(graph)
	units := unitsByName(net)

	sccRes := sccycle.FindSCCs(graph)
	cycles := sccycle.EnumerateCycles(graph, sccRes.SCCs)

	sel, err := resolveTearSet(graph, cycles, o)
	if err != nil {
		return err
	}

	if o.logInfo {
		o.logger.Info().
			Int("tears", sel.TotalTears).
			Int("max_cycle_tears", sel.MaxCycleTears).
			Msg("tear set selected")
	}

	ord, err := calcorder.Order(graph, calcorder.Options{TornEdges: sel.Edges})
	if err != nil {
		return err
	}

	ledger := &fixedLedger{}
	defer ledger.releaseAll()

	streams, err := buildTearStreams(graph, sel, o)
	if err != nil {
		return err
	}
	if len(streams) == 0 {
		return evaluateForwardPass(graph, ord.Order, units, fn, arcIdx, sel, ledger, o.almostEqualTol)
	}

	return converge(graph, ord.Order, units, fn, arcIdx, streams, o, ledger)
}

func resolveTearSet(g *flowgraph.Graph, cycles []sccycle.Cycle, o Options) (tear.Selection, error) {
	if o.tearSet != nil {
		return tear.Validate(g, cycles, o.tearSet)
	}
	if len(cycles) == 0 {
		return tear.Selection{Edges: map[int]bool{}}, nil
	}
	if !o.solveTears {
		return tear.Selection{}, ErrNoTearSet
	}

	mipModel, err := tear.BuildMIPModel(cycles)
	if err != nil {
		return tear.Selection{}, err
	}

	solver := o.tearSolver
	if solver == nil {
		if o.selectTearMethod == SelectHeuristic {
			solver = tear.NewBranchAndBoundHeuristic(o.tearTimeLimit)
		} else {
			solver = tear.NewExhaustiveSolver()
		}
	}

	res, err := solver.Solve(mipModel)
	if err != nil {
		return tear.Selection{}, err
	}

	return tear.FromSolverResult(res), nil
}

func buildTearStreams(g *flowgraph.Graph, sel tear.Selection, o Options) ([]*tearStream, error) {
	edges := make([]int, 0, len(sel.Edges))
	for e := range sel.Edges {
		edges = append(edges, e)
	}
	sort.Ints(edges)

	var out []*tearStream
	for _, idx := range edges {
		e, err := g.Edge(idx)
		if err != nil {
			continue
		}
		arc, ok := e.Payload.(model.Arc)
		if !ok {
			continue
		}

		dest := arc.Dest()
		for _, m := range dest.Members() {
			if m.Expression {
				continue
			}
			for _, mt := range memberTargets(m) {
				guessKey := arc.DestUnit().Name() + "." + dest.Name() + "." + m.Name
				key := arc.DestUnit().Name() + "." + dest.Name() + "." + memberKey(m.Name, mt.index)
				guess := o.defaultGuess
				v, ok, err := o.resolveGuess(guessKey, m, mt.index, arc.Name())
				if err != nil {
					return nil, err
				}
				if ok {
					guess = v
				}
				out = append(out, &tearStream{
					key:        key + "@" + arc.Name(),
					arc:        arc,
					memberName: m.Name,
					index:      mt.index,
					destVar:    mt.v,
					guess:      guess,
				})
			}
		}
	}

	return out, nil
}

func buildArcIndex(g *flowgraph.Graph) map[model.Arc]int {
	idx := make(map[model.Arc]int)
	for _, e := range g.Edges() {
		if arc, ok := e.Payload.(model.Arc); ok {
			idx[arc] = e.Index
		}
	}

	return idx
}

func unitsByName(net model.Model) map[string]model.Unit {
	m := make(map[string]model.Unit)
	for _, arc := range net.Arcs() {
		m[arc.SrcUnit().Name()] = arc.SrcUnit()
		m[arc.DestUnit().Name()] = arc.DestUnit()
	}

	return m
}

func isTorn(arcIdx map[model.Arc]int, sel tear.Selection, arc model.Arc) bool {
	idx, ok := arcIdx[arc]

	return ok && sel.Edges[idx]
}

// solveConstraintFor scans block's equalities for the one that pins down
// target: every other free term contributes its current Value() (whether
// fixed or not — a value already computed upstream by an earlier unit's
// Function counts as known even before anything fixes it) folded into the
// constant, leaving target as the sole unknown to solve for. Returns
// solved=false, no error, if no constraint determines target (e.g. every
// other term is itself still unresolved).
//
// If target is itself already fixed, Repn folds it into constant instead
// of listing it in free; when every other term is also known, the whole
// equality is then a numeric check rather than something left to solve —
// a nonzero residual past tol means the arc is overdetermined and its two
// sides disagree.
func solveConstraintFor(block model.ExpandedBlock, target model.Variable, tol float64) (value float64, solved bool, err error) {
	for _, c := range block.Constraints() {
		if !c.IsEquality() {
			return 0, false, fmt.Errorf("decomp: constraint %q: %w", c.Name(), ErrNonEqualityConstraint)
		}
		constant, free, linearOK := c.Repn()
		if !linearOK {
			return 0, false, fmt.Errorf("decomp: constraint %q: %w", c.Name(), ErrNonLinearConstraint)
		}

		sum := constant
		var coeff float64
		found := false
		known := true
		for _, t := range free {
			if t.Var == target {
				coeff = t.Coeff
				found = true
				continue
			}
			val, ok := t.Var.Value()
			if !ok {
				known = false
				break
			}
			sum += t.Coeff * val
		}

		if !found {
			if known && math.Abs(sum) > tol {
				return 0, false, fmt.Errorf("decomp: constraint %q: %w", c.Name(), ErrOverdeterminedArc)
			}
			continue
		}
		if known && coeff != 0 {
			return -sum / coeff, true, nil
		}
	}

	return 0, false, nil
}

// arcContribution resolves the value arc currently contributes for member
// (and, for an indexed member, the given index): if the member has a
// per-arc expanded copy (the extensive-member case), it is solved for via
// the arc's expanded block; otherwise it is read straight off the source
// port's own variable.
func arcContribution(arc model.Arc, member, index string, tol float64) (float64, bool, error) {
	if ev, ok := arc.ExpandedVar(member, index); ok {
		block, ok := arc.Expanded()
		if !ok {
			return 0, false, nil
		}

		return solveConstraintFor(block, ev, tol)
	}
	sm, ok := arc.Src().Member(member)
	if !ok {
		return 0, false, nil
	}
	v := sm.Scalar
	if index != "" {
		if sm.Indexed == nil {
			return 0, false, nil
		}
		v, ok = sm.Indexed[index]
		if !ok {
			return 0, false, nil
		}
	}
	if v == nil {
		return 0, false, nil
	}
	val, ok := v.Value()

	return val, ok, nil
}

// evaluateForwardPass walks order once: for every unit, it first fixes
// every non-torn, not-already-fixed port member (scalar or indexed) to
// the value implied by its feeding arc(s) (summed across every feeding
// arc for an extensive member, solved from the single remaining free
// term of the arc's equality constraint otherwise), then calls fn on the
// unit.
func evaluateForwardPass(
	g *flowgraph.Graph,
	order []int,
	units map[string]model.Unit,
	fn model.Function,
	arcIdx map[model.Arc]int,
	sel tear.Selection,
	ledger *fixedLedger,
	tol float64,
) error {
	for _, nodeIdx := range order {
		name, ok := g.NodeID(nodeIdx)
		if !ok {
			continue
		}
		u, ok := units[name]
		if !ok {
			continue
		}

		for _, p := range u.Ports() {
			for _, m := range p.Members() {
				if m.Expression {
					continue
				}

				for _, mt := range memberTargets(m) {
					if mt.v.IsFixed() {
						continue
					}

					if m.Extensive {
						sum, any := 0.0, false
						for _, arc := range p.Sources() {
							if isTorn(arcIdx, sel, arc) {
								continue
							}
							val, ok, err := arcContribution(arc, m.Name, mt.index, tol)
							if err != nil {
								return err
							}
							if !ok {
								continue
							}
							sum += val
							any = true
						}
						if any {
							ledger.acquire(mt.v, sum)
						}
						continue
					}

					resolved := false
					for _, arc := range p.Sources() {
						if isTorn(arcIdx, sel, arc) {
							continue
						}
						block, ok := arc.Expanded()
						if !ok {
							continue
						}
						val, solved, err := solveConstraintFor(block, mt.v, tol)
						if err != nil {
							return err
						}
						if !solved {
							continue
						}
						if resolved {
							prev, _ := mt.v.Value()
							if !almostEqual(prev, val, tol) {
								return fmt.Errorf("decomp: %s.%s.%s: %w", name, p.Name(), memberKey(m.Name, mt.index), ErrOverdeterminedArc)
							}
							continue
						}
						ledger.acquire(mt.v, val)
						resolved = true
					}
				}
			}
		}

		if err := fn(u); err != nil {
			return fmt.Errorf("decomp: unit %q: %w: %v", name, ErrFunctionFailed, err)
		}
	}

	return nil
}

// converge iterates the forward pass, re-fixing every tear stream's guess
// each time, until every stream's compute_err is within tolerance or
// o.iterLim passes have run. Running out of passes logs a warning and
// returns nil.
func converge(
	g *flowgraph.Graph,
	order []int,
	units map[string]model.Unit,
	fn model.Function,
	arcIdx map[model.Arc]int,
	streams []*tearStream,
	o Options,
	ledger *fixedLedger,
) error {
	for iter := 1; iter <= o.iterLim; iter++ {
		ledger.releaseAll()
		for _, s := range streams {
			ledger.acquire(s.destVar, s.guess)
		}

		if err := evaluateForwardPass(g, order, units, fn, arcIdx, tear.Selection{Edges: tornEdgeSet(streams, arcIdx)}, ledger, o.almostEqualTol); err != nil {
			return err
		}

		converged := true
		useDirect := o.tearMethod == TearDirect || (o.runFirstPass && iter == 1)
		for _, s := range streams {
			value, ok, err := arcContribution(s.arc, s.memberName, s.index, o.almostEqualTol)
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("decomp: tear stream %q: %w", s.key, ErrUnderdeterminedMember)
			}

			errVal := 0.0
			if !almostEqual(value, s.guess, o.almostEqualTol) {
				errVal = computeErr(value, s.guess, o.tolType)
			}
			if o.reportDiffs {
				o.logger.Debug().
					Str("stream", s.key).
					Int("iter", iter).
					Float64("guess", s.guess).
					Float64("value", value).
					Float64("err", errVal).
					Msg("tear stream diff")
			}
			if math.Abs(errVal) > o.tol {
				converged = false
			}

			var next float64
			switch {
			case useDirect || !s.hasPrev:
				next = value
			default:
				next = wegsteinStep(s.prevGuess, s.prevValue, s.guess, value, o.accelMin, o.accelMax)
			}
			s.prevGuess = s.guess
			s.prevValue = value
			s.hasPrev = true
			s.guess = next
		}

		if converged {
			if o.logInfo {
				o.logger.Info().Int("iterations", iter).Msg("tear streams converged")
			}

			return nil
		}
	}

	o.logger.Warn().
		Err(ErrConvergenceFailed).
		Int("iterations", o.iterLim).
		Msg("tear streams did not converge within the iteration limit")

	return nil
}

// tornEdgeSet rebuilds the {edge index -> true} set from the streams'
// backing arcs, so evaluateForwardPass keeps excluding exactly the arcs
// that converge() is iterating rather than needing its own copy of the
// original Selection threaded through.
func tornEdgeSet(streams []*tearStream, arcIdx map[model.Arc]int) map[int]bool {
	set := make(map[int]bool, len(streams))
	for _, s := range streams {
		if idx, ok := arcIdx[s.arc]; ok {
			set[idx] = true
		}
	}

	return set
}
