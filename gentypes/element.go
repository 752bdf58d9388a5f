package gentypes

// DeclarationKind classifies a TypeDeclaration the way JLS classifies a
// top-level or nested type declaration.
type DeclarationKind int

const (
	ClassDeclaration DeclarationKind = iota
	InterfaceDeclaration
	EnumDeclaration
	AnnotationDeclaration
)

// Element is implemented by TypeDeclaration and TypeParameter, the two kinds
// of declaration-graph vertex a Type can reference (spec.md §3.2).
type Element interface {
	isElement()
	Equal(other Element) bool
}

// TypeDeclaration represents a class or interface declaration: a qualified
// name, its formal type parameters, its single superclass, its
// superinterfaces, and an optional enclosing declaration for nested types.
//
// A TypeDeclaration is expected to be interned by its DeclarationProvider:
// two TypeDeclaration values that name the same underlying class must be
// the same *TypeDeclaration pointer, since the shortest-path search in
// ResolveActualTypeArguments keys its visited set by TypeDeclaration
// equality (spec.md §4.5, §9 "Declaration graph identity").
type TypeDeclaration struct {
	QualifiedName string
	SimpleName    string
	Kind          DeclarationKind

	TypeParameters    []*TypeParameter
	Superclass        Type // *DeclaredType or *NoneType
	Superinterfaces   []*DeclaredType
	EnclosingDecl     *TypeDeclaration // nil if top-level

	prototypical *DeclaredType // populated lazily by AsType, write-once
}

func (*TypeDeclaration) isElement() {}

// Equal compares TypeDeclarations by identity of the underlying key. Since
// providers are required to intern declarations (spec.md §4.2), pointer
// equality is the semantic equality relation; this method also tolerates
// distinct instances that happen to share a qualified name, for providers
// that do not intern (a looser but still sound fallback).
func (d *TypeDeclaration) Equal(other Element) bool {
	o, ok := other.(*TypeDeclaration)
	if !ok {
		return false
	}
	if d == o {
		return true
	}
	return d.QualifiedName == o.QualifiedName && d.Kind == o.Kind
}

// AsType returns the prototypical Declared invocation of this declaration on
// its own formal type parameters' prototypical TypeVariables (spec.md §3.3
// "Prototypical type identity"). The result is cached: repeated calls return
// the same *DeclaredType so pointer-heavy callers (e.g. raw-type propagation
// in ResolveActualTypeArguments) observe a stable value.
func (d *TypeDeclaration) AsType() *DeclaredType {
	if d.prototypical != nil {
		return d.prototypical
	}
	args := make([]Type, len(d.TypeParameters))
	for i, p := range d.TypeParameters {
		args[i] = p.AsType()
	}
	var enclosing Type = theNoneType
	if d.EnclosingDecl != nil {
		enclosing = d.EnclosingDecl.AsType()
	}
	declared, err := Declared(enclosing, d, args...)
	if err != nil {
		// AsType only ever builds a well-formed invocation (argument count
		// always matches TypeParameters), so this cannot happen unless the
		// provider handed out a torn declaration.
		panic(newIllegalState("declaration %s produced an invalid prototypical type: %v", d.QualifiedName, err))
	}
	d.prototypical = declared
	return declared
}

// DirectSupertypes returns [Superclass if Declared] ++ Superinterfaces, with
// an interface declaration lacking explicit superinterfaces reporting
// Object as its sole direct supertype (spec.md §4.5). objectType is supplied
// by the caller because the core has no privileged notion of "the" Object
// declaration; it is whatever DeclaredType the DeclarationProvider considers
// the root of the class hierarchy.
func (d *TypeDeclaration) DirectSupertypes(objectType *DeclaredType) []*DeclaredType {
	var out []*DeclaredType
	if sc, ok := d.Superclass.(*DeclaredType); ok {
		out = append(out, sc)
	}
	out = append(out, d.Superinterfaces...)
	if d.Kind == InterfaceDeclaration && len(d.Superinterfaces) == 0 && objectType != nil {
		out = append(out, objectType)
	}
	return out
}

// AsElement returns the Element a Declared or TypeVariable type refers back
// to: its TypeDeclaration or TypeParameter, respectively. Every other Type
// variant has no corresponding declaration-graph vertex, and ok is false.
func AsElement(t Type) (Element, bool) {
	switch v := t.(type) {
	case *DeclaredType:
		return v.Declaration, true
	case *TypeVariable:
		return v.Parameter, true
	default:
		return nil, false
	}
}
