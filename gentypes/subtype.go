package gentypes

// widening lists JLS §4.10.1's primitive widening lattice from widest to
// narrowest, excluding char, which participates asymmetrically (a subtype
// of int/long/float/double but not of short/byte, and not a supertype of
// any of the numeric kinds).
var widening = []PrimitiveKind{Double, Float, Long, Int, Short, Byte}

func wideningIndex(kind PrimitiveKind) int {
	for i, k := range widening {
		if k == kind {
			return i
		}
	}
	return -1
}

// IsSubtype reports whether sub is a subtype of super, as specified by JLS
// §4.10 (spec.md §4.6). The relation is reflexive and transitive.
//
// Fails with MissingOperandError if provider, sub, or super is nil.
func IsSubtype(provider DeclarationProvider, sub, super Type) (bool, error) {
	if provider == nil {
		return false, newMissingOperand("declaration provider")
	}
	if sub == nil {
		return false, newMissingOperand("sub type")
	}
	if super == nil {
		return false, newMissingOperand("super type")
	}
	return isSubtype(provider, sub, super), nil
}

// IsSameType reports whether t1 and t2 represent the same type. A Wildcard
// never compares equal to anything, including another wildcard with
// identical bounds (spec.md §4.6, §9 "Wildcards as type arguments, not
// types").
//
// Fails with MissingOperandError if either argument is nil.
func IsSameType(t1, t2 Type) (bool, error) {
	if t1 == nil || t2 == nil {
		return false, newMissingOperand("type")
	}
	return isSameType(t1, t2), nil
}

func isSameType(t1, t2 Type) bool {
	if _, ok := t1.(*WildcardType); ok {
		return false
	}
	return t1.Equal(t2)
}

func isSubtype(provider DeclarationProvider, sub, super Type) bool {
	// Null is a subtype of every reference type (spec.md §4.6).
	if _, ok := sub.(*NullType); ok {
		switch super.(type) {
		case *ArrayType, *DeclaredType, *NullType, *TypeVariable:
			return true
		}
	}

	switch superType := super.(type) {
	case *ArrayType:
		subArray, ok := sub.(*ArrayType)
		return ok && isSubtype(provider, subArray.ComponentType, superType.ComponentType)

	case *PrimitiveType:
		subPrimitive, ok := sub.(*PrimitiveType)
		if !ok {
			return false
		}
		return isPrimitiveSubtype(subPrimitive.Kind, superType.Kind)

	case *DeclaredType:
		return isSubtypeOfDeclared(provider, sub, superType)

	case *TypeVariable:
		return isSameType(superType, sub) || isSameType(superType.LowerBound(), sub)

	case *IntersectionType:
		// An intersection type is a supertype only of itself (spec.md §9,
		// following the narrow JLS reading noted there).
		return isSameType(superType, sub)
	}
	return false
}

func isPrimitiveSubtype(sub, super PrimitiveKind) bool {
	if sub == super {
		return true
	}
	if sub == Char {
		switch super {
		case Int, Long, Float, Double:
			return true
		default:
			return false
		}
	}
	subIdx := wideningIndex(sub)
	superIdx := wideningIndex(super)
	if subIdx < 0 || superIdx < 0 {
		return false
	}
	// widening is ordered widest-to-narrowest; sub is a subtype of super
	// when super appears at or before sub's position (super is at least as
	// wide as sub).
	return superIdx <= subIdx
}

func isSubtypeOfDeclared(provider DeclarationProvider, sub Type, super *DeclaredType) bool {
	switch subType := sub.(type) {
	case *DeclaredType:
		actualSub := subType
		for _, arg := range subType.TypeArguments {
			if _, isWildcard := arg.(*WildcardType); isWildcard {
				captured, err := Capture(subType)
				if err != nil {
					return false
				}
				actualSub = captured.(*DeclaredType)
				break
			}
		}

		projected, ok := ResolveActualTypeArguments(provider, super.Declaration, actualSub)
		if !ok {
			return false
		}
		if len(projected) == 0 && len(super.TypeArguments) != 0 {
			// Raw is not a subtype of a parameterized invocation.
			return false
		}
		for i, superArg := range super.TypeArguments {
			if !contains(provider, superArg, projected[i]) {
				return false
			}
		}
		return true

	case *ArrayType:
		return super.Equal(provider.ObjectType()) ||
			super.Equal(provider.CloneableType()) ||
			super.Equal(provider.SerializableType())

	case *TypeVariable:
		return isSubtype(provider, subType.UpperBound(), super)

	case *IntersectionType:
		for _, bound := range subType.Bounds {
			if isSubtype(provider, bound, super) {
				return true
			}
		}
		return false

	default:
		return false
	}
}
