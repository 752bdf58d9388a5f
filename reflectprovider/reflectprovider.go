// Package reflectprovider is a reference gentypes.DeclarationProvider backed
// by Go's reflect package, grounded in original_source's
// net.florianschoppmann.java.reflect.ReflectionTypes: the original binds the
// same core algorithms to javax.lang.model.Class objects; this binds them to
// reflect.Type values for named struct and interface types instead.
//
// Go's reflect API does not expose generic type parameters or an interface
// type's embedded-interface list the way javax.lang.model exposes a
// TypeElement's formal parameters and an interface's extends clause. Every
// TypeDeclaration materialized here is therefore non-generic
// (TypeParameters is always empty); the provider exists to give a
// non-generic Superclass/Superinterfaces chain something concrete to
// exercise, not to demonstrate capture conversion or wildcard projection
// (gentypes' own tests use hand-built declarations for that).
package reflectprovider

import (
	"reflect"

	"github.com/fschopp/java-types/gentypes"
)

// Provider materializes TypeDeclarations from reflect.Type values. The zero
// value is not usable; construct one with New.
type Provider struct {
	object       *gentypes.DeclaredType
	cloneable    *gentypes.DeclaredType
	serializable *gentypes.DeclaredType

	// interfaces are the reflect.Types this provider recognizes as possible
	// superinterfaces of a struct. reflect cannot enumerate "the interfaces
	// a struct implements" on its own; a caller registers the interfaces it
	// cares about up front, mirroring how ReflectionTypes is handed a
	// concrete Class object rather than discovering the universe of
	// interfaces on its own.
	interfaces []reflect.Type

	decls map[reflect.Type]*gentypes.TypeDeclaration
}

// New constructs a Provider. object, cloneable, and serializable must be
// interface types (typically object is (*any)(nil)'s element type, i.e.
// reflect.TypeOf((*any)(nil)).Elem()); interfaces lists every interface type
// the provider should recognize as a candidate superinterface when
// materializing a struct's declaration.
func New(object, cloneable, serializable reflect.Type, interfaces []reflect.Type) (*Provider, error) {
	if object == nil || cloneable == nil || serializable == nil {
		return nil, &gentypes.MissingOperandError{Operand: "object, cloneable, and serializable reflect.Type"}
	}
	p := &Provider{interfaces: interfaces, decls: make(map[reflect.Type]*gentypes.TypeDeclaration)}

	objectDecl, err := p.declarationFor(object)
	if err != nil {
		return nil, err
	}
	cloneableDecl, err := p.declarationFor(cloneable)
	if err != nil {
		return nil, err
	}
	serializableDecl, err := p.declarationFor(serializable)
	if err != nil {
		return nil, err
	}
	p.object = objectDecl.AsType()
	p.cloneable = cloneableDecl.AsType()
	p.serializable = serializableDecl.AsType()
	return p, nil
}

func (p *Provider) ObjectType() *gentypes.DeclaredType       { return p.object }
func (p *Provider) CloneableType() *gentypes.DeclaredType    { return p.cloneable }
func (p *Provider) SerializableType() *gentypes.DeclaredType { return p.serializable }

// Declaration resolves key, which must be a reflect.Type naming a struct or
// interface type, to its TypeDeclaration.
func (p *Provider) Declaration(key any) (*gentypes.TypeDeclaration, error) {
	rt, ok := key.(reflect.Type)
	if !ok {
		return nil, &gentypes.UnsupportedError{Operation: "declaration key is not a reflect.Type"}
	}
	return p.declarationFor(rt)
}

func (p *Provider) declarationFor(rt reflect.Type) (*gentypes.TypeDeclaration, error) {
	if decl, ok := p.decls[rt]; ok {
		return decl, nil
	}
	if rt.Kind() != reflect.Struct && rt.Kind() != reflect.Interface {
		return nil, &gentypes.UnsupportedError{Operation: "reflect kind " + rt.Kind().String() + " is not a struct or interface"}
	}

	kind := gentypes.ClassDeclaration
	if rt.Kind() == reflect.Interface {
		kind = gentypes.InterfaceDeclaration
	}
	decl := &gentypes.TypeDeclaration{
		QualifiedName: qualifiedName(rt),
		SimpleName:    rt.Name(),
		Kind:          kind,
		Superclass:    gentypes.GetNoneType(),
	}
	// Cache before resolving supertypes: a struct embedding itself
	// indirectly (through a pointer field, which reflect would never
	// present as an anonymous struct field) cannot occur, but interning
	// before recursion is the same discipline the declaration graph relies
	// on throughout gentypes.
	p.decls[rt] = decl

	if rt.Kind() == reflect.Interface {
		// reflect flattens an interface's method set and does not expose
		// which methods came from an embedded interface, so every
		// interface materialized here has no explicit superinterfaces and
		// DirectSupertypes reports Object as its sole direct supertype (the
		// JLS default); when Object is itself an interface, this includes
		// Object.
		return decl, nil
	}

	if superclass := embeddedStructSuperclass(rt); superclass != nil {
		superDecl, err := p.declarationFor(superclass)
		if err != nil {
			return nil, &gentypes.UnsupportedError{
				Operation: "resolving embedded superclass " + qualifiedName(superclass) + " of " + decl.QualifiedName,
				Cause:     err,
			}
		}
		decl.Superclass = superDecl.AsType()
	} else if p.object != nil {
		// p.object is nil only while New is still bootstrapping the root
		// declarations themselves; every struct materialized afterward
		// without an embedded superclass field falls back to Object.
		decl.Superclass = p.object
	}

	for _, iface := range p.interfaces {
		if rt.Implements(iface) {
			ifaceDecl, err := p.declarationFor(iface)
			if err != nil {
				return nil, err
			}
			decl.Superinterfaces = append(decl.Superinterfaces, ifaceDecl.AsType())
		}
	}

	return decl, nil
}

// embeddedStructSuperclass returns the reflect.Type of rt's first anonymous
// struct field, or nil if it has none. This is the closest Go analogue to a
// single superclass: composition-by-embedding, not inheritance, but it
// plays the same structural role for DirectSupertypes.
func embeddedStructSuperclass(rt reflect.Type) reflect.Type {
	for i := 0; i < rt.NumField(); i++ {
		field := rt.Field(i)
		if field.Anonymous && field.Type.Kind() == reflect.Struct {
			return field.Type
		}
	}
	return nil
}

func qualifiedName(rt reflect.Type) string {
	if rt.PkgPath() == "" {
		return rt.Name()
	}
	return rt.PkgPath() + "." + rt.Name()
}
