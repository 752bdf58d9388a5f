package gentypes

// vertexState tracks Dijkstra state for one TypeDeclaration during shortest-
// path search, mirroring AbstractTypes.TypeDeclarationVertexState.
type vertexState struct {
	distance int
	visited  bool
	decl     *TypeDeclaration
	// asFound is the DeclaredType as it appeared in the direct-supertype
	// list of the predecessor on the shortest path (or the search root
	// itself, for the root's own vertex).
	asFound  *DeclaredType
	previous *vertexState
}

func (v *vertexState) toPath(root *DeclaredType) []*DeclaredType {
	path := make([]*DeclaredType, v.distance+1)
	count := len(path)
	current := v
	for current.previous != nil {
		count--
		path[count] = current.asFound
		current = current.previous
	}
	path[0] = root
	return path
}

// shortestPathToSuperType returns the shortest sequence of DeclaredTypes
// p0..pk with p0 = derived, pk.Declaration == target, and each p_{i+1}
// appearing in the direct supertypes of p_i.Declaration (spec.md §4.5).
// Ties are broken by insertion order of each declaration's direct-supertype
// list, matching the boundary traversal order below; this is observable and
// intentionally deterministic (spec.md §4.5 "Shortest-path determinism").
//
// Returns nil if there is no such path.
func shortestPathToSuperType(provider DeclarationProvider, target *TypeDeclaration, derived *DeclaredType) []*DeclaredType {
	root := derived.Declaration

	state := map[*TypeDeclaration]*vertexState{
		root: {distance: 0, decl: root, asFound: derived},
	}
	// boundary preserves insertion order, mirroring the Java
	// implementation's LinkedHashSet; ties in minimal distance are broken
	// by earliest insertion.
	var boundary []*TypeDeclaration
	boundary = append(boundary, root)

	for len(boundary) > 0 {
		bestIdx := 0
		best := state[boundary[0]]
		for i := 1; i < len(boundary); i++ {
			candidate := state[boundary[i]]
			if candidate.distance < best.distance {
				best = candidate
				bestIdx = i
			}
		}

		if best.decl == target {
			return best.toPath(derived)
		}

		boundary = append(boundary[:bestIdx], boundary[bestIdx+1:]...)
		best.visited = true

		objectType := provider.ObjectType()
		for _, superType := range best.decl.DirectSupertypes(objectType) {
			superDecl := superType.Declaration
			superState, ok := state[superDecl]
			if !ok {
				superState = &vertexState{distance: maxDistance, decl: superDecl, asFound: superType}
				state[superDecl] = superState
			}

			alt := best.distance + 1
			if !superState.visited && alt < superState.distance {
				superState.distance = alt
				superState.previous = best
				superState.asFound = superType
				if !containsDecl(boundary, superDecl) {
					boundary = append(boundary, superDecl)
				}
			}
		}
	}
	return nil
}

const maxDistance = int(^uint(0) >> 1)

func containsDecl(boundary []*TypeDeclaration, d *TypeDeclaration) bool {
	for _, b := range boundary {
		if b == d {
			return true
		}
	}
	return false
}

// ResolveActualTypeArguments returns the actual type arguments that
// target's formal parameters take on when viewed through subType (spec.md
// §4.5). ok is false ("NotASubtype", the spec's return-value sentinel) when
// subType is not a Declared type or no inheritance path from subType to
// target exists.
func ResolveActualTypeArguments(provider DeclarationProvider, target *TypeDeclaration, subType Type) (args []Type, ok bool) {
	if target == nil || subType == nil || provider == nil {
		return nil, false
	}
	declaredSubType, isDeclared := subType.(*DeclaredType)
	if !isDeclared {
		return nil, false
	}

	path := shortestPathToSuperType(provider, target, declaredSubType)
	if path == nil {
		return nil, false
	}

	// Early exit only after the reachability check above, so an
	// unreachable target still reports "no projection" rather than an
	// empty (but successful) result.
	if len(target.TypeParameters) == 0 {
		return []Type{}, true
	}

	current := path[0]
	for i := 1; i < len(path); i++ {
		currentDecl := current.Declaration

		// If current is a raw type, continue from the prototypical
		// invocation of current's own declaration instead, so the next path
		// element's arguments keep the formal-parameter placeholders they
		// were declared with (spec.md §4.5 step 4).
		if len(current.TypeArguments) == 0 && len(currentDecl.TypeParameters) != 0 {
			current = currentDecl.AsType()
		}

		mapping := make(Substitution, len(currentDecl.TypeParameters))
		for idx, param := range currentDecl.TypeParameters {
			mapping[param] = current.TypeArguments[idx]
		}

		next, err := Substitute(path[i], mapping)
		if err != nil {
			// path[i] and mapping are both built from previously-validated
			// values, so substitution cannot fail here.
			panic(newIllegalState("%v", wrapf(err, "unexpected failure projecting inheritance path")))
		}
		current = next.(*DeclaredType)
	}
	return current.TypeArguments, true
}
