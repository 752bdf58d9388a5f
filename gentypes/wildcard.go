package gentypes

// WildcardType is a type argument of the form "?", "? extends T", or
// "? super T". A Wildcard never appears anywhere other than in the
// TypeArguments of a Declared type or as the CapturedArgument of a
// TypeVariable — spec.md §3.3 "Wildcards as type arguments, not types".
type WildcardType struct {
	ExtendsBound Type // nil if absent
	SuperBound   Type // nil if absent
}

func (*WildcardType) isType() {}

// Equal always returns false: JLS wildcards are not directly comparable as
// types (spec.md §4.6, IsSameType). Structural comparison of two wildcards'
// bounds is done explicitly by Contains where the JLS defines it.
func (*WildcardType) Equal(Type) bool {
	return false
}

func (t *WildcardType) String() string {
	s := "?"
	if t.ExtendsBound != nil {
		s += " extends " + t.ExtendsBound.String()
	}
	if t.SuperBound != nil {
		s += " super " + t.SuperBound.String()
	}
	return s
}

// HasExtendsBound reports whether the wildcard has an upper bound.
func (t *WildcardType) HasExtendsBound() bool { return t.ExtendsBound != nil }

// HasSuperBound reports whether the wildcard has a lower bound.
func (t *WildcardType) HasSuperBound() bool { return t.SuperBound != nil }

// IsUnbounded reports whether the wildcard has neither bound.
func (t *WildcardType) IsUnbounded() bool { return t.ExtendsBound == nil && t.SuperBound == nil }

// Wildcard constructs a wildcard type argument. At most one of extendsBound
// and superBound may be non-nil; passing both results in InvalidArgumentError.
// Passing neither is the well-formed "unbounded" wildcard.
func Wildcard(extendsBound, superBound Type) (*WildcardType, error) {
	if extendsBound != nil && superBound != nil {
		return nil, newInvalidArgument("wildcard cannot have both an extends bound and a super bound")
	}
	if err := requireValidType(extendsBound); err != nil {
		return nil, err
	}
	if err := requireValidType(superBound); err != nil {
		return nil, err
	}
	return &WildcardType{ExtendsBound: extendsBound, SuperBound: superBound}, nil
}
