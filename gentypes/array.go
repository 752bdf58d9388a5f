package gentypes

// ArrayType is a reference type whose values are arrays of ComponentType.
type ArrayType struct {
	ComponentType Type
}

func (*ArrayType) isType() {}

func (t *ArrayType) Equal(other Type) bool {
	o, ok := other.(*ArrayType)
	return ok && typesEqual(t.ComponentType, o.ComponentType)
}

func (t *ArrayType) String() string {
	return t.ComponentType.String() + "[]"
}

// Array constructs an array type with the given component type.
//
// Fails with InvalidArgumentError if component was not produced by this
// package.
func Array(component Type) (*ArrayType, error) {
	if err := requireValidType(component); err != nil {
		return nil, err
	}
	return &ArrayType{ComponentType: component}, nil
}

// typesEqual is nil-safe structural equality, used throughout the variant
// Equal methods and by the substitution/erasure passes.
func typesEqual(a, b Type) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Equal(b)
}
