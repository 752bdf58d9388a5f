package gentypes

// Capture computes the capture conversion of t (JLS §5.1.10, spec.md §4.7).
// Capture conversion on anything other than a Declared type with at least
// one wildcard type argument is an identity conversion.
//
// For each wildcard argument position i, a fresh TypeVariable S_i is
// substituted for the formal parameter A_i, with bounds derived from the
// wildcard and from A_i's declared upper bound U_i:
//
//	T_i = ?             -> upper = U_i,                   lower = null
//	T_i = ? extends B_i -> upper = glb(B_i, U_i),         lower = null
//	T_i = ? super B_i   -> upper = U_i,                   lower = B_i
//
// where glb(V_1, ..., V_m) flattens to the intersection V_1 & ... & V_m
// (spec.md §9 "Intersection bounds flattening"). Because U_i may itself
// reference other formal parameters captured in the same conversion (e.g.
// Enum<E extends Enum<E>>), the fresh variables' bounds are produced by
// building an interim, non-fresh TypeVariable per position and letting
// Substitute's fresh-variable pre-allocation (substitution.go) resolve the
// mutual recursion in one pass.
//
// Fails with InvalidArgumentError if t is a foreign Type, or
// MissingOperandError if t is nil.
func Capture(t Type) (Type, error) {
	if t == nil {
		return nil, newMissingOperand("type")
	}
	if err := requireValidType(t); err != nil {
		return nil, err
	}

	declared, ok := t.(*DeclaredType)
	if !ok || len(declared.TypeArguments) == 0 {
		return t, nil
	}

	declaration := declared.Declaration
	newArguments := make([]Type, len(declared.TypeArguments))
	substitutions := make(Substitution, len(declared.TypeArguments))

	for i, argument := range declared.TypeArguments {
		parameter := declaration.TypeParameters[i]
		wildcard, isWildcard := argument.(*WildcardType)
		if !isWildcard {
			newArguments[i] = argument
			substitutions[parameter] = argument
			continue
		}
		// The intermediate declared type carries the formal parameter's own
		// prototypical variable in this slot; only that exact variable
		// instance is recognized as substitutable below.
		newArguments[i] = parameter.AsType()
		interim, err := captureWildcardArgument(wildcard, parameter)
		if err != nil {
			// wildcard and parameter both originate from validated,
			// already-constructed types, so this cannot fail.
			panic(newIllegalState("%v", wrapf(err, "unexpected failure capturing wildcard argument")))
		}
		substitutions[parameter] = interim
	}

	intermediate := &DeclaredType{
		EnclosingType: declared.EnclosingType,
		Declaration:   declaration,
		TypeArguments: newArguments,
	}

	result, err := Substitute(intermediate, substitutions)
	if err != nil {
		panic(newIllegalState("%v", wrapf(err, "unexpected failure substituting captured type variables")))
	}
	return result, nil
}

// captureWildcardArgument returns the interim (non-fresh) TypeVariable
// standing in for parameter's actual type argument, per JLS §5.1.10. Its
// bounds may reference parameter.AsType() recursively; Capture relies on
// Substitute to replace those self-references with the eventual fresh
// variable.
func captureWildcardArgument(wildcard *WildcardType, parameter *TypeParameter) (*TypeVariable, error) {
	originalUpper := parameter.AsType().UpperBound()

	var newUpper, newLower Type
	switch {
	case wildcard.IsUnbounded():
		newUpper = originalUpper
		newLower = theNullType

	case wildcard.HasExtendsBound():
		bounds := append([]Type{wildcard.ExtendsBound}, flattenIntersection(originalUpper)...)
		intersection, err := Intersection(bounds...)
		if err != nil {
			return nil, err
		}
		newUpper = intersection
		newLower = theNullType

	default: // HasSuperBound
		newUpper = originalUpper
		newLower = wildcard.SuperBound
	}

	return GetTypeVariable(parameter, newUpper, newLower, wildcard)
}
