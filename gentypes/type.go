// Package gentypes implements the core algorithms and relations of a
// nominally-typed, erasure-based generic type system modeled on the Java
// Language Specification §4 (types and subtyping) and §5.1.10 (capture
// conversion).
package gentypes

// Type is the tagged union of reference- and primitive-type forms: Primitive,
// Void, None, Null, Array, Declared, TypeVariable, Wildcard, and
// Intersection. Two Types are the same variant iff a type switch on Type
// resolves to the same concrete struct type; isType is unexported so no
// package outside gentypes can add a tenth variant.
type Type interface {
	isType()

	// Equal reports structural equality: recursively equal fields under the
	// same variant. Wildcard never compares equal to anything, including
	// itself as a Type value used outside argument position (see
	// IsSameType).
	Equal(other Type) bool

	// String returns the canonical textual form described by spec.md §4.8.
	String() string
}

// PrimitiveKind enumerates the eight JLS primitive types.
type PrimitiveKind int

const (
	Boolean PrimitiveKind = iota
	Byte
	Short
	Int
	Long
	Char
	Float
	Double
)

var primitiveKindNames = [...]string{
	Boolean: "boolean",
	Byte:    "byte",
	Short:   "short",
	Int:     "int",
	Long:    "long",
	Char:    "char",
	Float:   "float",
	Double:  "double",
}

func (k PrimitiveKind) String() string {
	if k < Boolean || k > Double {
		return "invalid primitive kind"
	}
	return primitiveKindNames[k]
}

func (k PrimitiveKind) valid() bool {
	return k >= Boolean && k <= Double
}

// PrimitiveType is one of the eight JLS primitive types.
type PrimitiveType struct {
	Kind PrimitiveKind
}

func (*PrimitiveType) isType() {}

func (t *PrimitiveType) Equal(other Type) bool {
	o, ok := other.(*PrimitiveType)
	return ok && o.Kind == t.Kind
}

func (t *PrimitiveType) String() string {
	return t.Kind.String()
}

// Primitive returns the PrimitiveType for kind.
//
// Fails with InvalidArgumentError if kind is out of range.
func Primitive(kind PrimitiveKind) (*PrimitiveType, error) {
	if !kind.valid() {
		return nil, newInvalidArgument("primitive kind %d out of range", kind)
	}
	return &PrimitiveType{Kind: kind}, nil
}

// GetPrimitiveType returns the PrimitiveType for kind, panicking if kind is
// invalid. Convenience wrapper for callers that already know kind is valid,
// mirroring ReflectionTypes.getPrimitiveType.
func GetPrimitiveType(kind PrimitiveKind) *PrimitiveType {
	t, err := Primitive(kind)
	if err != nil {
		panic(err)
	}
	return t
}

// NoTypeKind distinguishes the two "no type" forms: Void and None.
type NoTypeKind int

const (
	VoidKind NoTypeKind = iota
	NoneKind
)

// VoidType is the pseudo-type of a method that returns nothing.
type VoidType struct{}

func (*VoidType) isType() {}

func (*VoidType) Equal(other Type) bool {
	_, ok := other.(*VoidType)
	return ok
}

func (*VoidType) String() string { return "void" }

// GetVoidType returns the singleton VoidType.
func GetVoidType() *VoidType { return theVoidType }

var theVoidType = &VoidType{}

// NoneType denotes the absence of an enclosing type or superclass.
type NoneType struct{}

func (*NoneType) isType() {}

func (*NoneType) Equal(other Type) bool {
	_, ok := other.(*NoneType)
	return ok
}

func (*NoneType) String() string { return "none" }

// GetNoneType returns the singleton NoneType.
func GetNoneType() *NoneType { return theNoneType }

var theNoneType = &NoneType{}

// NoType constructs either the VoidType or NoneType singleton.
//
// Fails with InvalidArgumentError if kind is neither VoidKind nor NoneKind.
func NoType(kind NoTypeKind) (Type, error) {
	switch kind {
	case VoidKind:
		return theVoidType, nil
	case NoneKind:
		return theNoneType, nil
	default:
		return nil, newInvalidArgument("no-type kind %d out of range", kind)
	}
}

// NullType is the singleton type of the null literal. It is a subtype of
// every reference type.
type NullType struct{}

func (*NullType) isType() {}

func (*NullType) Equal(other Type) bool {
	_, ok := other.(*NullType)
	return ok
}

func (*NullType) String() string { return "null" }

var theNullType = &NullType{}

// GetNullType returns the singleton NullType.
func GetNullType() *NullType { return theNullType }

// NullTypeInstance returns the singleton NullType as a Type, for callers
// that want a Type-typed value rather than the *NullType GetNullType returns.
func NullTypeInstance() Type { return theNullType }
