package model

// Variable is a single scalar decision variable living on a port member or
// an arc's expanded block.
type Variable interface {
	// Name identifies the variable for diagnostics.
	Name() string

	// Value returns the variable's current numeric value and whether one
	// has ever been set (an unfixed, never-assigned variable reports
	// ok=false).
	Value() (val float64, ok bool)

	// IsFixed reports whether the variable is currently fixed.
	IsFixed() bool

	// Fix pins the variable at v.
	Fix(v float64)

	// Free releases a fix applied by Fix.
	Free()
}

// LinearTerm is one coefficient*variable addend of a constraint's affine
// representation.
type LinearTerm struct {
	Var   Variable
	Coeff float64
}

// Constraint is one equality (or, erroneously, inequality) living on an
// arc's expanded block. decomp only ever expects equalities here — an
// inequality is reported as ErrNonEqualityConstraint.
type Constraint interface {
	Name() string
	IsEquality() bool

	// Repn returns the constraint's standard (affine) representation in
	// the form  constant + Σ coeff*var == 0, restricted to variables that
	// are still free (fixed variables are folded into constant).
	// linearOK is false when the constraint is not affine in its free
	// variables.
	Repn() (constant float64, free []LinearTerm, linearOK bool)
}

// ExpandedBlock is the set of equality constraints an Arc materializes
// linking its source port's expressions to its destination port's
// variables.
type ExpandedBlock interface {
	Constraints() []Constraint

	// SplitFrac returns the arc's split-fraction variable, if this arc was
	// produced by splitting an extensive stream — the source member's
	// value is multiplied by it before landing on the destination.
	SplitFrac() (Variable, bool)
}

// PortMember is one named slot of a Port: either a plain scalar variable,
// an indexed family of variables, or an expression (in which case Scalar
// and Indexed are both nil and the free variables inside the expression
// are reached via ExprVars).
type PortMember struct {
	Name       string
	Extensive  bool
	Expression bool

	Scalar  Variable            // set iff not indexed and not an expression
	Indexed map[string]Variable // set iff indexed

	// ExprVars lists the free variables referenced by this member's
	// expression tree, in deterministic order. Only meaningful when
	// Expression is true.
	ExprVars []Variable
}

// Port is a named interface on a Unit holding one or more PortMembers, and
// knows the arcs that feed it (Sources) or leave it (Dests).
type Port interface {
	Name() string
	Members() []PortMember
	Sources() []Arc
	Dests() []Arc

	// Member looks up a declared member by name.
	Member(name string) (PortMember, bool)
}

// Unit is one node of the flowsheet graph: a computational block exposing
// zero or more Ports.
type Unit interface {
	Name() string
	Ports() []Port
}

// Arc is one directed stream connecting a source Unit's outlet Port to a
// destination Unit's inlet Port.
type Arc interface {
	Name() string
	Src() Port
	Dest() Port

	// Directed reports whether this arc is directed; undirected arcs fail
	// graph construction.
	Directed() bool

	// Expanded returns the arc's materialized constraint block, or
	// (nil, false) if the arc has not been expanded — construction fails
	// in that case too.
	Expanded() (ExpandedBlock, bool)

	// ExpandedVar returns the per-arc expanded copy of an extensive port
	// member (one that is summed across every arc feeding a destination,
	// rather than copied 1-to-1), keyed by member name and, for indexed
	// members, an index string. ok is false for 1-to-1 arcs that have no
	// expanded copy (the member is exchanged directly).
	ExpandedVar(member, index string) (Variable, bool)

	// SrcUnit/DestUnit are conveniences equivalent to Src().Parent()/
	// Dest().Parent() in systems where ports don't track their own unit;
	// the engine always reaches a unit through these rather than assuming
	// Port exposes one.
	SrcUnit() Unit
	DestUnit() Unit
}

// Model exposes the arcs of a network; node set is implicitly every unit
// that is an endpoint of some arc.
type Model interface {
	Arcs() []Arc
}

// Function is the unit evaluation callback passed to decomp.Run. It must
// read fixed inputs off the unit's ports and write results to the unit's
// variables; it must not mutate the graph topology.
type Function func(u Unit) error
