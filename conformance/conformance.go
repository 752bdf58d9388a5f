// Package conformance is an exported contract-test suite that any
// gentypes.DeclarationProvider implementation can run against its own
// declarations to check it satisfies the provider contract (spec.md §6:
// "Any alternative provider implementation must pass that suite to be
// interoperable"). It is grounded in original_source's
// AbstractTypesContract/AbstractTypesProvider pattern: an abstract test
// class parameterized by a provider, ported here to a plain function taking
// *testing.T plus a small fixture bundle instead of subclassing.
package conformance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fschopp/java-types/gentypes"
)

// Fixtures names the declarations a provider must supply for the suite to
// exercise generic inheritance, projection, and erasure end to end. Super
// must be reachable from Sub (Sub is a subtype of Super, and Super is not
// equal to Sub); GenericInterface must have exactly one type
// parameter; SelfInvocation must directly implement or extend
// GenericInterface invoked with itself as the sole type argument (the
// "Comparable<Self>" shape).
type Fixtures struct {
	Sub, Super       *gentypes.TypeDeclaration
	GenericInterface *gentypes.TypeDeclaration
	SelfInvocation   *gentypes.TypeDeclaration
}

// Run exercises provider against fixtures, failing t on any violation of the
// provider contract documented on gentypes.DeclarationProvider.
func Run(t *testing.T, provider gentypes.DeclarationProvider, fixtures Fixtures) {
	t.Run("ObjectTypeIsNonNilAndNonGeneric", func(t *testing.T) {
		object := provider.ObjectType()
		require.NotNil(t, object)
		assert.Empty(t, object.Declaration.TypeParameters)
	})

	t.Run("CloneableAndSerializableAreDistinctFromObject", func(t *testing.T) {
		object := provider.ObjectType()
		assert.False(t, provider.CloneableType().Equal(object))
		assert.False(t, provider.SerializableType().Equal(object))
	})

	t.Run("SubIsSubtypeOfSuperAndOfObject", func(t *testing.T) {
		ok, err := gentypes.IsSubtype(provider, fixtures.Sub.AsType(), fixtures.Super.AsType())
		require.NoError(t, err)
		assert.True(t, ok, "%s must be a subtype of %s", fixtures.Sub.QualifiedName, fixtures.Super.QualifiedName)

		ok, err = gentypes.IsSubtype(provider, fixtures.Sub.AsType(), provider.ObjectType())
		require.NoError(t, err)
		assert.True(t, ok, "every reference type must be a subtype of Object")
	})

	t.Run("SubtypingIsReflexive", func(t *testing.T) {
		for _, decl := range []*gentypes.TypeDeclaration{fixtures.Sub, fixtures.Super, fixtures.GenericInterface} {
			ok, err := gentypes.IsSubtype(provider, decl.AsType(), decl.AsType())
			require.NoError(t, err)
			assert.True(t, ok, "%s is not reflexively a subtype of itself", decl.QualifiedName)
		}
	})

	t.Run("ResolveActualTypeArgumentsProjectsSelfInvocation", func(t *testing.T) {
		require.Len(t, fixtures.GenericInterface.TypeParameters, 1,
			"GenericInterface fixture must declare exactly one type parameter")

		args, ok := gentypes.ResolveActualTypeArguments(provider, fixtures.GenericInterface, fixtures.SelfInvocation.AsType())
		require.True(t, ok, "%s must be resolvable against %s",
			fixtures.SelfInvocation.QualifiedName, fixtures.GenericInterface.QualifiedName)
		require.Len(t, args, 1)
		assert.True(t, args[0].Equal(fixtures.SelfInvocation.AsType()),
			"expected %s to project to itself as the sole type argument, got %s",
			fixtures.SelfInvocation.QualifiedName, args[0])
	})

	t.Run("ErasureOfParameterizedInvocationDropsArguments", func(t *testing.T) {
		invocation, err := gentypes.Declared(gentypes.GetNoneType(), fixtures.GenericInterface, fixtures.Sub.AsType())
		require.NoError(t, err)

		erased, err := gentypes.Erasure(invocation)
		require.NoError(t, err)

		raw, err := gentypes.Declared(gentypes.GetNoneType(), fixtures.GenericInterface)
		require.NoError(t, err)
		assert.True(t, erased.Equal(raw), "expected erasure to drop type arguments, got %s", erased)
	})

	t.Run("SubstituteWithEmptyMappingIsIdentity", func(t *testing.T) {
		result, err := gentypes.Substitute(fixtures.Sub.AsType(), gentypes.Substitution{})
		require.NoError(t, err)
		assert.True(t, result.Equal(fixtures.Sub.AsType()))
	})
}
