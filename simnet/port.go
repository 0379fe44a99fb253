package simnet

import "github.com/procflow/seqdecomp/model"

// Port is simnet's model.Port: a named collection of scalar and indexed
// port members.
type Port struct {
	name    string
	members []model.PortMember
	sources []model.Arc
	dests   []model.Arc
}

// NewPort returns an empty port named name.
func NewPort(name string) *Port { return &Port{name: name} }

// AddScalar declares a plain (non-extensive) scalar member and returns its
// backing variable.
func (p *Port) AddScalar(member string) *Var {
	v := NewVar(p.name + "." + member)
	p.members = append(p.members, model.PortMember{Name: member, Scalar: v})

	return v
}

// AddExtensive declares an extensive scalar member (one whose value is the
// sum of per-arc expanded copies, rather than copied through from a single
// feeding arc) and returns its backing variable, which decomp.Run fixes to
// the sum of the contributions solved from each feeding arc's split
// constraint.
func (p *Port) AddExtensive(member string) *Var {
	v := NewVar(p.name + "." + member)
	p.members = append(p.members, model.PortMember{Name: member, Extensive: true, Scalar: v})

	return v
}

// AddIndexed declares an indexed family member over the given set of
// index strings (e.g. per-component mole fractions) and returns the
// backing variable for each index.
func (p *Port) AddIndexed(member string, indices []string) map[string]*Var {
	vars := make(map[string]*Var, len(indices))
	backing := make(map[string]model.Variable, len(indices))
	for _, idx := range indices {
		v := NewVar(p.name + "." + member + "#" + idx)
		vars[idx] = v
		backing[idx] = v
	}
	p.members = append(p.members, model.PortMember{Name: member, Indexed: backing})

	return vars
}

// AddIndexedExtensive declares an indexed family member whose per-index
// value is the sum of per-arc expanded copies (e.g. per-component flow
// rates, summed from every feeding arc) and returns the backing variable
// for each index.
func (p *Port) AddIndexedExtensive(member string, indices []string) map[string]*Var {
	vars := make(map[string]*Var, len(indices))
	backing := make(map[string]model.Variable, len(indices))
	for _, idx := range indices {
		v := NewVar(p.name + "." + member + "#" + idx)
		vars[idx] = v
		backing[idx] = v
	}
	p.members = append(p.members, model.PortMember{Name: member, Extensive: true, Indexed: backing})

	return vars
}

func (p *Port) Name() string { return p.name }

func (p *Port) Members() []model.PortMember { return p.members }

func (p *Port) Sources() []model.Arc { return p.sources }

func (p *Port) Dests() []model.Arc { return p.dests }

// Member looks up a declared member by name.
func (p *Port) Member(name string) (model.PortMember, bool) {
	for _, m := range p.members {
		if m.Name == name {
			return m, true
		}
	}

	return model.PortMember{}, false
}
