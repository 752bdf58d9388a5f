package gentypes

// TypeParameter is a formal type parameter of a TypeDeclaration: a simple
// name and an ordered, non-empty-by-convention list of bound Types (empty
// bounds are treated as an implicit Object bound by convention of the
// DeclarationProvider; this package does not supply Object itself).
type TypeParameter struct {
	Declaring *TypeDeclaration
	Name      string
	Bounds    []Type

	prototypical *TypeVariable // populated lazily by AsType, write-once
}

func (*TypeParameter) isElement() {}

// Equal compares TypeParameters by declaration position: same declaring
// element and same name. The DeclarationProvider guarantees two
// TypeParameters at the same declaration position compare equal (spec.md
// §3.2).
func (p *TypeParameter) Equal(other Element) bool {
	o, ok := other.(*TypeParameter)
	if !ok {
		return false
	}
	if p == o {
		return true
	}
	return p.Name == o.Name && p.Declaring.Equal(o.Declaring)
}

// AsType returns the prototypical TypeVariable of this parameter: a
// TypeVariable whose Parameter is p itself and whose UpperBound is derived
// from p.Bounds (the single bound verbatim, or an Intersection if there is
// more than one), and whose LowerBound is Null (spec.md §3.2). The result is
// cached.
func (p *TypeParameter) AsType() *TypeVariable {
	if p.prototypical != nil {
		return p.prototypical
	}
	tv := newUnfrozenTypeVariable(p, nil)
	// Assign to the field before freezing so that a bound referencing p.AsType()
	// recursively (e.g. "T extends Comparable<T>") observes this same pointer
	// rather than recursing indefinitely.
	p.prototypical = tv
	upper := p.upperBoundFromDeclaredBounds()
	tv.freeze(upper, theNullType)
	return tv
}

func (p *TypeParameter) upperBoundFromDeclaredBounds() Type {
	switch len(p.Bounds) {
	case 0:
		// No declared bound; caller-supplied Bounds is expected to already
		// contain the provider's notion of Object in the general case, but
		// an empty list is tolerated here rather than rejected, matching
		// the original ReflectionTypes, which always supplies at least one
		// bound (java.lang.Object) for parameters without an explicit one.
		return theNoneType
	case 1:
		return p.Bounds[0]
	default:
		intersection, err := Intersection(p.Bounds...)
		if err != nil {
			panic(newIllegalState("type parameter %s has invalid bounds: %v", p.Name, err))
		}
		return intersection
	}
}
