package gentypes

// Erasure returns the JLS §4.6 erasure of t: Primitive, Void, None, Null,
// and Wildcard erase to themselves; Array erases its component; Declared
// erases its enclosing type and drops all type arguments; TypeVariable
// erases to the erasure of its upper bound; Intersection erases to the
// erasure of its first (leftmost) bound.
//
// Fails with InvalidArgumentError if t is a foreign Type, or
// MissingOperandError if t is nil.
func Erasure(t Type) (Type, error) {
	if t == nil {
		return nil, newMissingOperand("type")
	}
	if err := requireValidType(t); err != nil {
		return nil, err
	}
	return erase(t), nil
}

func erase(t Type) Type {
	switch v := t.(type) {
	case *ArrayType:
		return &ArrayType{ComponentType: erase(v.ComponentType)}

	case *DeclaredType:
		enclosing := v.EnclosingType
		if enclosingDeclared, ok := enclosing.(*DeclaredType); ok {
			enclosing = erase(enclosingDeclared)
		}
		return &DeclaredType{EnclosingType: enclosing, Declaration: v.Declaration}

	case *TypeVariable:
		return erase(v.UpperBound())

	case *IntersectionType:
		return erase(v.Bounds[0])

	default:
		// Primitive, Void, None, Null, Wildcard: identity.
		return t
	}
}
