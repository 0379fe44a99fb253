package decomp

import "errors"

var (
	// ErrNoTearSet is returned when the torn graph has at least one cycle,
	// the caller supplied no tear_set override, and SolveTears(false) was
	// configured — there is nothing left to pick a calculation order from.
	ErrNoTearSet = errors.New("decomp: cycles remain and solve_tears is disabled with no tear_set override")

	// ErrNonEqualityConstraint is returned when an arc's expanded block
	// carries a constraint that is not an equality.
	ErrNonEqualityConstraint = errors.New("decomp: expanded block constraint is not an equality")

	// ErrNonLinearConstraint is returned when Repn reports linearOK=false:
	// the constraint is not affine in its remaining free variables.
	ErrNonLinearConstraint = errors.New("decomp: expanded block constraint is not affine in its free variables")

	// ErrUnderdeterminedMember is returned when a tear stream's source side
	// yields no value for its member after a forward pass (the arc's
	// constraint cannot be solved from known values). A port member with
	// no feeding arc and no guess is not checked: Run leaves it as it is
	// and still calls the owning unit's Function.
	ErrUnderdeterminedMember = errors.New("decomp: port member has no feeding arc and no guess")

	// ErrFunctionFailed wraps a non-nil error returned by a unit's
	// Function, attributing it to the unit that produced it.
	ErrFunctionFailed = errors.New("decomp: unit function returned an error")

	// ErrConvergenceFailed is attached to the warning Run logs when the
	// configured iteration limit is exhausted before every tear stream's
	// compute_err falls within tolerance. Run itself returns nil then.
	ErrConvergenceFailed = errors.New("decomp: tear streams failed to converge within the iteration limit")

	// ErrInvalidOption is returned when an Options enum field (tear_method,
	// tol_type, select_tear_method) carries a value none of the exported
	// constants match, rather than silently falling back to a default.
	ErrInvalidOption = errors.New("decomp: unrecognized option value")

	// ErrOverdeterminedArc is returned when a constraint's target variable
	// is already fixed by one arc and another feeding arc's constraint
	// resolves to a conflicting value for it, outside almost_equal_tol.
	ErrOverdeterminedArc = errors.New("decomp: constraint is fixed on both sides and the values disagree")

	// ErrGuessTypeError is returned when a registered guess's shape
	// (scalar, indexed, per-arc) doesn't match the port member it would
	// seed.
	ErrGuessTypeError = errors.New("decomp: guess shape does not match port member")
)
