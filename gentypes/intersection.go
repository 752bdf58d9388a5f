package gentypes

// IntersectionType represents a bound such as "List & Serializable" that
// arises from a type variable or type parameter with multiple bounds, or
// from capture conversion's greatest-lower-bound computation.
type IntersectionType struct {
	Bounds []Type // non-empty, ordered
}

func (*IntersectionType) isType() {}

func (t *IntersectionType) Equal(other Type) bool {
	o, ok := other.(*IntersectionType)
	if !ok || len(o.Bounds) != len(t.Bounds) {
		return false
	}
	for i, b := range t.Bounds {
		if !typesEqual(b, o.Bounds[i]) {
			return false
		}
	}
	return true
}

func (t *IntersectionType) String() string {
	s := t.Bounds[0].String()
	for _, b := range t.Bounds[1:] {
		s += " & " + b.String()
	}
	return s
}

// Intersection constructs an intersection type from one or more bounds.
//
// Fails with InvalidArgumentError if bounds is empty or contains a foreign
// Type instance.
func Intersection(bounds ...Type) (*IntersectionType, error) {
	if len(bounds) == 0 {
		return nil, newInvalidArgument("intersection type requires at least one bound")
	}
	for _, b := range bounds {
		if err := requireValidType(b); err != nil {
			return nil, err
		}
	}
	copied := make([]Type, len(bounds))
	copy(copied, bounds)
	return &IntersectionType{Bounds: copied}, nil
}

// flattenIntersection unwraps one level of nested Intersection, as used by
// capture conversion's greatest-lower-bound computation (spec.md §4.7,
// §9 "Intersection bounds flattening"). If t is not an Intersection, it is
// returned as the sole element.
func flattenIntersection(t Type) []Type {
	if it, ok := t.(*IntersectionType); ok {
		out := make([]Type, len(it.Bounds))
		copy(out, it.Bounds)
		return out
	}
	return []Type{t}
}
