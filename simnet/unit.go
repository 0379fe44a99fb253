package simnet

import "github.com/procflow/seqdecomp/model"

// Unit is simnet's model.Unit.
type Unit struct {
	name  string
	ports []model.Port
}

// NewUnit returns a unit named name with no ports.
func NewUnit(name string) *Unit { return &Unit{name: name} }

func (u *Unit) Name() string { return u.name }

func (u *Unit) Ports() []model.Port { return u.ports }

// AddPort registers p on u and returns p, for chaining at construction time.
func (u *Unit) AddPort(p *Port) *Port {
	u.ports = append(u.ports, p)

	return p
}
