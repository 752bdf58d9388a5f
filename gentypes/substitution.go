package gentypes

// Substitution maps formal type parameters to their replacement Type, the
// input to Substitute.
type Substitution map[*TypeParameter]Type

// substContext carries both the caller's substitution map and the fresh
// type variables pre-allocated for recursive-variable entries (spec.md
// §4.3 step 1). It exists so the recursive descent in apply can tell a
// plain reference to a formal parameter (which should route through the
// fresh variable, if any) apart from an already-customized type variable
// for the same parameter encountered deeper in a bound (which should not).
type substContext struct {
	mapping Substitution
	fresh   map[*TypeParameter]*TypeVariable
}

// Substitute rewrites t by replacing each TypeVariable whose Parameter is a
// key of mapping with the corresponding Type (spec.md §4.3).
//
// For every entry (p -> v) where v is itself a TypeVariable whose Parameter
// is p, a fresh unfrozen TypeVariable p' is pre-allocated; its bounds are
// then set to the substituted bounds of v using a context that maps p to p'
// rather than to v, breaking the cycle that would otherwise make v's bounds
// refer to v itself. This is what lets capture conversion build a fresh
// type variable whose upper bound refers back to itself and to its sibling
// fresh variables (JLS §5.1.10's mutual recursion).
//
// Fails with InvalidArgumentError if t or any substitution value is a
// foreign Type, or MissingOperandError if t or any substitution value is
// nil.
func Substitute(t Type, mapping Substitution) (Type, error) {
	if t == nil {
		return nil, newMissingOperand("type")
	}
	if err := requireValidType(t); err != nil {
		return nil, err
	}
	for p, v := range mapping {
		if v == nil {
			return nil, newMissingOperand("substitution value for parameter " + p.Name)
		}
		if err := requireValidType(v); err != nil {
			return nil, err
		}
	}

	fresh := make(map[*TypeParameter]*TypeVariable)
	for p, v := range mapping {
		tv, ok := v.(*TypeVariable)
		if ok && tv.Parameter == p {
			fresh[p] = newUnfrozenTypeVariable(p, tv.CapturedArgument)
		}
	}

	ctx := &substContext{mapping: mapping, fresh: fresh}

	// Order in which fresh variables are frozen does not affect the result:
	// each fresh variable's bounds are computed from the *original* mapping
	// entry's bounds, not from any other fresh variable's bounds, so there
	// is no ordering dependency despite Go's randomized map iteration.
	for p, freshVar := range fresh {
		original := mapping[p].(*TypeVariable)
		upper := ctx.apply(original.UpperBound())
		lower := ctx.apply(original.LowerBound())
		freshVar.freeze(upper, lower)
	}

	return ctx.apply(t), nil
}

func (c *substContext) apply(t Type) Type {
	switch v := t.(type) {
	case *DeclaredType:
		enclosing := v.EnclosingType
		if _, ok := enclosing.(*DeclaredType); ok {
			enclosing = c.apply(enclosing)
		}
		args := make([]Type, len(v.TypeArguments))
		for i, a := range v.TypeArguments {
			args[i] = c.apply(a)
		}
		return &DeclaredType{EnclosingType: enclosing, Declaration: v.Declaration, TypeArguments: args}

	case *ArrayType:
		return &ArrayType{ComponentType: c.apply(v.ComponentType)}

	case *TypeVariable:
		p := v.Parameter
		if freshVar, ok := c.fresh[p]; ok && p.AsType().Equal(v) {
			return freshVar
		}
		if substitution, ok := c.mapping[p]; ok {
			return substitution
		}
		newUpper := c.apply(v.UpperBound())
		newLower := c.apply(v.LowerBound())
		rebuilt := newUnfrozenTypeVariable(p, v.CapturedArgument)
		rebuilt.freeze(newUpper, newLower)
		return rebuilt

	case *WildcardType:
		var eb, sb Type
		if v.ExtendsBound != nil {
			eb = c.apply(v.ExtendsBound)
		}
		if v.SuperBound != nil {
			sb = c.apply(v.SuperBound)
		}
		return &WildcardType{ExtendsBound: eb, SuperBound: sb}

	case *IntersectionType:
		bounds := make([]Type, len(v.Bounds))
		for i, b := range v.Bounds {
			bounds[i] = c.apply(b)
		}
		return &IntersectionType{Bounds: bounds}

	default:
		// Primitive, Void, None, Null: identity.
		return t
	}
}
