package conformance

import (
	"testing"

	"github.com/fschopp/java-types/gentypes"
)

// A minimal DeclarationProvider used only to prove the suite itself runs
// clean against a conforming implementation. Real callers run Run against
// their own provider, e.g. reflectprovider.Provider.
type minimalProvider struct {
	object, cloneable, serializable *gentypes.DeclaredType
}

func (p *minimalProvider) Declaration(any) (*gentypes.TypeDeclaration, error) {
	return nil, &gentypes.UnsupportedError{Operation: "minimalProvider resolves no declarations by key"}
}
func (p *minimalProvider) ObjectType() *gentypes.DeclaredType       { return p.object }
func (p *minimalProvider) CloneableType() *gentypes.DeclaredType    { return p.cloneable }
func (p *minimalProvider) SerializableType() *gentypes.DeclaredType { return p.serializable }

func buildFixtures() (*minimalProvider, Fixtures) {
	object := &gentypes.TypeDeclaration{QualifiedName: "Object", SimpleName: "Object", Kind: gentypes.ClassDeclaration, Superclass: gentypes.GetNoneType()}
	objectType := object.AsType()

	cloneable := &gentypes.TypeDeclaration{QualifiedName: "Cloneable", SimpleName: "Cloneable", Kind: gentypes.InterfaceDeclaration, Superclass: gentypes.GetNoneType()}
	serializable := &gentypes.TypeDeclaration{QualifiedName: "Serializable", SimpleName: "Serializable", Kind: gentypes.InterfaceDeclaration, Superclass: gentypes.GetNoneType()}

	comparable := &gentypes.TypeDeclaration{QualifiedName: "Comparable", SimpleName: "Comparable", Kind: gentypes.InterfaceDeclaration, Superclass: gentypes.GetNoneType()}
	comparableT := &gentypes.TypeParameter{Declaring: comparable, Name: "T", Bounds: []gentypes.Type{objectType}}
	comparable.TypeParameters = []*gentypes.TypeParameter{comparableT}

	number := &gentypes.TypeDeclaration{QualifiedName: "Number", SimpleName: "Number", Kind: gentypes.ClassDeclaration, Superclass: objectType}

	integer := &gentypes.TypeDeclaration{QualifiedName: "Integer", SimpleName: "Integer", Kind: gentypes.ClassDeclaration, Superclass: number.AsType()}
	integerType := integer.AsType()
	comparableOfInteger, err := gentypes.Declared(gentypes.GetNoneType(), comparable, integerType)
	if err != nil {
		panic(err)
	}
	integer.Superinterfaces = []*gentypes.DeclaredType{comparableOfInteger}

	provider := &minimalProvider{object: objectType, cloneable: cloneable.AsType(), serializable: serializable.AsType()}
	fixtures := Fixtures{
		Sub:              integer,
		Super:            number,
		GenericInterface: comparable,
		SelfInvocation:   integer,
	}
	return provider, fixtures
}

func TestRun_PassesAgainstConformingProvider(t *testing.T) {
	provider, fixtures := buildFixtures()
	Run(t, provider, fixtures)
}
