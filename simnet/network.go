package simnet

import (
	"fmt"

	"github.com/procflow/seqdecomp/model"
)

// Network is simnet's model.Model: an unordered bag of arcs. Node identity
// (the set of units) is implicit in the arcs' endpoints.
type Network struct {
	arcs []model.Arc
}

// NewNetwork returns an empty Network.
func NewNetwork() *Network { return &Network{} }

func (n *Network) Arcs() []model.Arc { return n.arcs }

// AddArc registers a previously built Arc with the network.
func (n *Network) AddArc(a *Arc) { n.arcs = append(n.arcs, a) }

// ConnectOption customizes Connect.
type ConnectOption func(*connectConfig)

type connectConfig struct {
	splitFrac float64
}

// WithSplitFrac sets the constant split fraction applied to every extensive
// member this arc carries. Without it, extensive members pass through at
// full value (fraction 1).
// simnet treats the split fraction as a fixed constant rather than a free
// decision variable: a fraction that is itself optimized would make the
// arc's expanded-copy constraint bilinear, which is out of scope for this
// reference linear modeling layer.
func WithSplitFrac(frac float64) ConnectOption {
	return func(c *connectConfig) { c.splitFrac = frac }
}

// Connect wires src -> dest as a new named arc between srcUnit and
// destUnit. For every destination port member with a matching source
// member name: a plain scalar member gets a direct equality (dest ==
// src); an extensive member gets a fresh per-arc expanded copy constrained
// to splitFrac*src, which decomp.Run later sums across every arc feeding
// that destination member; an indexed member repeats whichever of those
// two shapes applies once per index.
func Connect(srcUnit, destUnit *Unit, src, dest *Port, name string, opts ...ConnectOption) (*Arc, error) {
	cfg := connectConfig{splitFrac: 1}
	for _, opt := range opts {
		opt(&cfg)
	}

	arc := &Arc{
		name:         name,
		src:          src,
		dest:         dest,
		srcUnit:      srcUnit,
		destUnit:     destUnit,
		expandedVars: make(map[string]*Var),
	}

	var constraints []model.Constraint
	for _, dm := range dest.members {
		sm, ok := src.Member(dm.Name)
		if !ok {
			return nil, fmt.Errorf("simnet: arc %q: destination member %q has no matching source member", name, dm.Name)
		}

		if dm.Indexed != nil {
			for idx, dv := range dm.Indexed {
				sv, ok := sm.Indexed[idx]
				if !ok {
					return nil, fmt.Errorf("simnet: arc %q: destination member %q has no source value at index %q", name, dm.Name, idx)
				}

				if dm.Extensive {
					key := dm.Name + "#" + idx
					expanded := NewVar(name + "." + key + ".expanded")
					arc.expandedVars[key] = expanded
					constraints = append(constraints, NewEquality(
						name+"."+key+".split",
						model.LinearTerm{Var: expanded, Coeff: 1},
						model.LinearTerm{Var: sv, Coeff: -cfg.splitFrac},
					))
					continue
				}

				constraints = append(constraints, NewEquality(
					name+"."+dm.Name+"#"+idx,
					model.LinearTerm{Var: dv, Coeff: 1},
					model.LinearTerm{Var: sv, Coeff: -1},
				))
			}
			continue
		}

		if dm.Extensive {
			expanded := NewVar(name + "." + dm.Name + ".expanded")
			arc.expandedVars[dm.Name] = expanded
			constraints = append(constraints, NewEquality(
				name+"."+dm.Name+".split",
				model.LinearTerm{Var: expanded, Coeff: 1},
				model.LinearTerm{Var: sm.Scalar, Coeff: -cfg.splitFrac},
			))
			continue
		}

		constraints = append(constraints, NewEquality(
			name+"."+dm.Name,
			model.LinearTerm{Var: dm.Scalar, Coeff: 1},
			model.LinearTerm{Var: sm.Scalar, Coeff: -1},
		))
	}

	var splitVar *Var
	if cfg.splitFrac != 1 {
		splitVar = NewVar(name + ".splitfrac")
		splitVar.Fix(cfg.splitFrac)
	}
	arc.block = &Block{constraints: constraints, splitFrac: splitVar}

	src.dests = append(src.dests, arc)
	dest.sources = append(dest.sources, arc)

	return arc, nil
}
