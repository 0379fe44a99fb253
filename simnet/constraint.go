package simnet

import "github.com/procflow/seqdecomp/model"

// EqualityConstraint is a simple affine equality: constant + sum(coeff*var) == 0.
type EqualityConstraint struct {
	name     string
	constant float64
	terms    []model.LinearTerm
}

// NewEquality returns an equality constraint over terms, with zero constant.
func NewEquality(name string, terms ...model.LinearTerm) *EqualityConstraint {
	return &EqualityConstraint{name: name, terms: terms}
}

func (c *EqualityConstraint) Name() string { return c.name }

func (c *EqualityConstraint) IsEquality() bool { return true }

func (c *EqualityConstraint) Repn() (float64, []model.LinearTerm, bool) {
	constant := c.constant
	free := make([]model.LinearTerm, 0, len(c.terms))
	for _, t := range c.terms {
		if t.Var.IsFixed() {
			val, _ := t.Var.Value()
			constant += t.Coeff * val
			continue
		}
		free = append(free, t)
	}

	return constant, free, true
}

// Block is simnet's model.ExpandedBlock: the set of equality constraints an
// arc materializes, plus an optional split-fraction variable.
type Block struct {
	constraints []model.Constraint
	splitFrac   *Var
}

func (b *Block) Constraints() []model.Constraint { return b.constraints }

func (b *Block) SplitFrac() (model.Variable, bool) {
	if b.splitFrac == nil {
		return nil, false
	}

	return b.splitFrac, true
}
