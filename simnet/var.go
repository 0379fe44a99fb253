package simnet

// Var is simnet's model.Variable: a named scalar with a fix/free flag.
type Var struct {
	name  string
	val   float64
	ok    bool
	fixed bool
}

// NewVar returns an unfixed, unset variable named name.
func NewVar(name string) *Var { return &Var{name: name} }

func (v *Var) Name() string { return v.name }

func (v *Var) Value() (float64, bool) { return v.val, v.ok }

func (v *Var) IsFixed() bool { return v.fixed }

func (v *Var) Fix(x float64) {
	v.val = x
	v.ok = true
	v.fixed = true
}

func (v *Var) Free() { v.fixed = false }

// Set assigns a value without fixing it — how a unit's evaluation
// function reports a computed result.
func (v *Var) Set(x float64) {
	v.val = x
	v.ok = true
}
