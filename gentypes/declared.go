package gentypes

// DeclaredType is a nominal reference type: an invocation of a
// TypeDeclaration with zero or more actual TypeArguments and an optional
// EnclosingType (itself Declared, or None for a top-level type).
//
// len(TypeArguments) is either 0 (raw or non-generic) or equal to
// len(Declaration.TypeParameters) (spec.md §3.3 "Declared well-formedness").
type DeclaredType struct {
	EnclosingType Type // *DeclaredType or *NoneType
	Declaration   *TypeDeclaration
	TypeArguments []Type
}

func (*DeclaredType) isType() {}

func (t *DeclaredType) Equal(other Type) bool {
	o, ok := other.(*DeclaredType)
	if !ok {
		return false
	}
	if !typesEqual(t.EnclosingType, o.EnclosingType) {
		return false
	}
	if !t.Declaration.Equal(o.Declaration) {
		return false
	}
	if len(t.TypeArguments) != len(o.TypeArguments) {
		return false
	}
	for i, a := range t.TypeArguments {
		if !typesEqual(a, o.TypeArguments[i]) {
			return false
		}
	}
	return true
}

func (t *DeclaredType) String() string {
	var s string
	if enclosing, ok := t.EnclosingType.(*DeclaredType); ok {
		s = enclosing.String() + "." + t.Declaration.SimpleName
	} else {
		s = t.Declaration.QualifiedName
	}
	if len(t.TypeArguments) > 0 {
		s += "<"
		for i, a := range t.TypeArguments {
			if i > 0 {
				s += ", "
			}
			s += a.String()
		}
		s += ">"
	}
	return s
}

// IsRaw reports whether this is a raw type: a generic declaration invoked
// with no actual type arguments.
func (t *DeclaredType) IsRaw() bool {
	return len(t.TypeArguments) == 0 && len(t.Declaration.TypeParameters) > 0
}

// Declared constructs a Declared type invoking declaration with the given
// type arguments and enclosing type.
//
// Fails with InvalidArgumentError if enclosing, declaration, or any argument
// is foreign to this package, or if len(arguments) is neither 0 nor
// len(declaration.TypeParameters).
func Declared(enclosing Type, declaration *TypeDeclaration, arguments ...Type) (*DeclaredType, error) {
	if declaration == nil {
		return nil, newMissingOperand("type declaration")
	}
	if enclosing == nil {
		return nil, newMissingOperand("enclosing type")
	}
	if err := requireValidType(enclosing); err != nil {
		return nil, err
	}
	if _, ok := enclosing.(*DeclaredType); !ok {
		if _, ok := enclosing.(*NoneType); !ok {
			return nil, newInvalidArgument("enclosing type must be Declared or None, got %T", enclosing)
		}
	}
	for _, a := range arguments {
		if err := requireValidType(a); err != nil {
			return nil, err
		}
	}
	if len(arguments) != 0 && len(arguments) != len(declaration.TypeParameters) {
		return nil, newInvalidArgument(
			"declared type %s expects 0 or %d type arguments, got %d",
			declaration.QualifiedName, len(declaration.TypeParameters), len(arguments),
		)
	}
	args := make([]Type, len(arguments))
	copy(args, arguments)
	return &DeclaredType{EnclosingType: enclosing, Declaration: declaration, TypeArguments: args}, nil
}

// BoxedTypes is the fixed eight-entry table mapping primitive kinds to their
// boxed Declared types and back, mirroring the box/unbox tables in
// ReflectionTypes.java. A DeclarationProvider constructs it once (each entry
// requires a TypeDeclaration for e.g. java.lang.Integer) and passes it to
// BoxedType/UnboxedType.
type BoxedTypes struct {
	byPrimitive [Double + 1]*DeclaredType
}

// NewBoxedTypes builds a BoxedTypes table from eight boxed Declared types,
// indexed by PrimitiveKind (Boolean, Byte, Short, Int, Long, Char, Float,
// Double, in that order).
//
// Fails with InvalidArgumentError if any entry is nil, is not a non-generic
// Declared type, or the table does not have exactly eight entries.
func NewBoxedTypes(boxed [Double + 1]*DeclaredType) (*BoxedTypes, error) {
	for i, d := range boxed {
		if d == nil {
			return nil, newInvalidArgument("boxed type table missing entry for primitive kind %d", i)
		}
		if len(d.Declaration.TypeParameters) != 0 {
			return nil, newInvalidArgument("boxed type for primitive kind %d must be non-generic", i)
		}
	}
	return &BoxedTypes{byPrimitive: boxed}, nil
}

// BoxedType returns the boxed Declared type for kind.
func (b *BoxedTypes) BoxedType(kind PrimitiveKind) (*DeclaredType, error) {
	if !kind.valid() {
		return nil, newInvalidArgument("primitive kind %d out of range", kind)
	}
	return b.byPrimitive[kind], nil
}

// UnboxedType returns the PrimitiveType corresponding to boxed.
//
// Fails with InvalidArgumentError if boxed is not the canonical Declared
// type for one of the eight boxed classes in this table.
func (b *BoxedTypes) UnboxedType(boxed *DeclaredType) (*PrimitiveType, error) {
	if err := requireValidType(boxed); err != nil {
		return nil, err
	}
	for kind, d := range b.byPrimitive {
		if d.Equal(boxed) {
			return GetPrimitiveType(PrimitiveKind(kind)), nil
		}
	}
	return nil, newInvalidArgument("%s is not a boxed primitive type", boxed)
}
