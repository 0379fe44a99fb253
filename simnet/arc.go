package simnet

import "github.com/procflow/seqdecomp/model"

// Arc is simnet's model.Arc: a directed, always-expanded 1-to-1 stream
// connecting a source unit's outlet port to a destination unit's inlet
// port.
type Arc struct {
	name              string
	src, dest         *Port
	srcUnit, destUnit *Unit
	block             *Block
	expandedVars      map[string]*Var
}

func (a *Arc) Name() string { return a.name }

func (a *Arc) Src() model.Port { return a.src }

func (a *Arc) Dest() model.Port { return a.dest }

func (a *Arc) Directed() bool { return true }

func (a *Arc) Expanded() (model.ExpandedBlock, bool) { return a.block, a.block != nil }

func (a *Arc) ExpandedVar(member, index string) (model.Variable, bool) {
	key := member
	if index != "" {
		key += "#" + index
	}
	v, ok := a.expandedVars[key]
	if !ok {
		return nil, false
	}

	return v, true
}

func (a *Arc) SrcUnit() model.Unit { return a.srcUnit }

func (a *Arc) DestUnit() model.Unit { return a.destUnit }
