package gentypes

// TypeVariable is constructed in two phases (spec.md §3.3 "TypeVariable
// lifecycle"): first Parameter and CapturedArgument are fixed by
// newUnfrozenTypeVariable, then UpperBound/LowerBound are set exactly once
// by freeze. Reading bounds before freeze, or freezing twice, panics with
// IllegalStateError — both are programming errors, not user-input errors
// (spec.md §7).
type TypeVariable struct {
	Parameter        *TypeParameter
	CapturedArgument *WildcardType // nil unless this variable is a capture result

	frozen bool
	upper  Type
	lower  Type
}

func (*TypeVariable) isType() {}

// newUnfrozenTypeVariable allocates a TypeVariable whose bounds are not yet
// set. Only this package may construct one; callers use GetTypeVariable for
// the fully-finished form, or the internal freeze/capture/substitution
// machinery for the two-phase form.
func newUnfrozenTypeVariable(parameter *TypeParameter, capturedArgument *WildcardType) *TypeVariable {
	return &TypeVariable{Parameter: parameter, CapturedArgument: capturedArgument}
}

// freeze sets upper and lower exactly once. Panics with IllegalStateError if
// called a second time.
func (t *TypeVariable) freeze(upper, lower Type) {
	if t.frozen {
		panic(newIllegalState("type variable for parameter %s was frozen twice", t.Parameter.Name))
	}
	t.upper = upper
	t.lower = lower
	t.frozen = true
}

// UpperBound returns the upper bound. Panics with IllegalStateError if the
// variable has not yet been frozen.
func (t *TypeVariable) UpperBound() Type {
	if !t.frozen {
		panic(newIllegalState("upper bound of type variable for parameter %s read before freeze", t.Parameter.Name))
	}
	return t.upper
}

// LowerBound returns the lower bound. Panics with IllegalStateError if the
// variable has not yet been frozen.
func (t *TypeVariable) LowerBound() Type {
	if !t.frozen {
		panic(newIllegalState("lower bound of type variable for parameter %s read before freeze", t.Parameter.Name))
	}
	return t.lower
}

// IsFrozen reports whether bounds have been set.
func (t *TypeVariable) IsFrozen() bool { return t.frozen }

// Equal implements the identity described in spec.md §3.1: same Parameter,
// same bounds, and same CapturedArgument (distinguishing a fresh captured
// variable from the prototypical variable of the same parameter). Both
// operands must be frozen; comparing an unfrozen variable panics, matching
// the "structural equality... only defined on frozen variables" invariant.
func (t *TypeVariable) Equal(other Type) bool {
	o, ok := other.(*TypeVariable)
	if !ok {
		return false
	}
	if !t.frozen || !o.frozen {
		panic(newIllegalState("cannot compare unfrozen type variables"))
	}
	if t == o {
		// A variable whose bounds refer back to itself (e.g. E extends
		// Enum<E>) would otherwise recurse through its bounds forever.
		return true
	}
	if !t.Parameter.Equal(o.Parameter) {
		return false
	}
	if !typesEqual(t.upper, o.upper) || !typesEqual(t.lower, o.lower) {
		return false
	}
	if (t.CapturedArgument == nil) != (o.CapturedArgument == nil) {
		return false
	}
	// WildcardType.Equal always returns false by spec; captured arguments
	// are instead compared structurally by field, mirroring how the
	// original distinguishes fresh captured variables by the wildcard
	// mirror they captured.
	if t.CapturedArgument != nil && !wildcardBoundsEqual(t.CapturedArgument, o.CapturedArgument) {
		return false
	}
	return true
}

func wildcardBoundsEqual(a, b *WildcardType) bool {
	return typesEqual(a.ExtendsBound, b.ExtendsBound) && typesEqual(a.SuperBound, b.SuperBound)
}

func (t *TypeVariable) String() string {
	if t.CapturedArgument != nil {
		return "capture<" + t.CapturedArgument.String() + ">"
	}
	return t.Parameter.Name
}

// GetTypeVariable constructs a fully-frozen TypeVariable in one step,
// mirroring AbstractTypes.getTypeVariable.
//
// Fails with InvalidArgumentError if parameter, upper, or lower were not
// produced by this package, or MissingOperandError if parameter, upper, or
// lower is nil.
func GetTypeVariable(parameter *TypeParameter, upper, lower Type, capturedArgument *WildcardType) (*TypeVariable, error) {
	if parameter == nil {
		return nil, newMissingOperand("type parameter")
	}
	if upper == nil {
		return nil, newMissingOperand("upper bound")
	}
	if lower == nil {
		return nil, newMissingOperand("lower bound")
	}
	if err := requireValidType(upper); err != nil {
		return nil, err
	}
	if err := requireValidType(lower); err != nil {
		return nil, err
	}
	if capturedArgument != nil {
		if err := requireValidType(capturedArgument); err != nil {
			return nil, err
		}
	}
	tv := newUnfrozenTypeVariable(parameter, capturedArgument)
	tv.freeze(upper, lower)
	return tv, nil
}
