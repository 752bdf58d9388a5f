package gentypes

// This file builds a small, fixed declaration graph shared by the tests in
// this package: a java.lang/java.util-flavored hierarchy (Object, Cloneable,
// Serializable, Comparable, Iterable/Collection/List/ArrayList, Number,
// Integer, Enum), a Delayed/Future/ScheduledFuture hierarchy, a mutually
// F-bounded ConvertibleTo/ReprChange pair, and a raw-vs-parameterized
// DiamondA/DiamondB pair — enough to exercise every scenario in spec §8
// without pulling in a real reflective source.

type fixtureProvider struct {
	byName map[string]*TypeDeclaration
	object *DeclaredType
	clone  *DeclaredType
	serial *DeclaredType
}

func (p *fixtureProvider) Declaration(key any) (*TypeDeclaration, error) {
	name, ok := key.(string)
	if !ok {
		return nil, newUnsupported("declaration key is not a fixture name")
	}
	decl, ok := p.byName[name]
	if !ok {
		return nil, newUnsupported("no fixture declaration named " + name)
	}
	return decl, nil
}

func (p *fixtureProvider) ObjectType() *DeclaredType       { return p.object }
func (p *fixtureProvider) CloneableType() *DeclaredType    { return p.clone }
func (p *fixtureProvider) SerializableType() *DeclaredType { return p.serial }

// fixtureDeclarations holds the individual declarations built by newFixtures,
// for tests that need to name one directly rather than look it up by string.
type fixtureDeclarations struct {
	object, cloneable, serializable                   *TypeDeclaration
	comparable, iterable, collection, list, arrayList *TypeDeclaration
	number, integer, enum                             *TypeDeclaration
	delayed, future, scheduledFuture                  *TypeDeclaration
	convertibleTo, reprChange, amount                 *TypeDeclaration
	diamondA, diamondB                                *TypeDeclaration
}

func newFixtures() (*fixtureProvider, *fixtureDeclarations) {
	object := &TypeDeclaration{QualifiedName: "Object", SimpleName: "Object", Kind: ClassDeclaration, Superclass: theNoneType}
	objectType := object.AsType()

	cloneable := &TypeDeclaration{QualifiedName: "Cloneable", SimpleName: "Cloneable", Kind: InterfaceDeclaration, Superclass: theNoneType}
	serializable := &TypeDeclaration{QualifiedName: "Serializable", SimpleName: "Serializable", Kind: InterfaceDeclaration, Superclass: theNoneType}

	comparable := &TypeDeclaration{QualifiedName: "Comparable", SimpleName: "Comparable", Kind: InterfaceDeclaration, Superclass: theNoneType}
	comparableT := &TypeParameter{Declaring: comparable, Name: "T", Bounds: []Type{objectType}}
	comparable.TypeParameters = []*TypeParameter{comparableT}

	iterable := &TypeDeclaration{QualifiedName: "Iterable", SimpleName: "Iterable", Kind: InterfaceDeclaration, Superclass: theNoneType}
	iterableT := &TypeParameter{Declaring: iterable, Name: "T", Bounds: []Type{objectType}}
	iterable.TypeParameters = []*TypeParameter{iterableT}

	collection := &TypeDeclaration{QualifiedName: "Collection", SimpleName: "Collection", Kind: InterfaceDeclaration, Superclass: theNoneType}
	collectionT := &TypeParameter{Declaring: collection, Name: "T", Bounds: []Type{objectType}}
	collection.TypeParameters = []*TypeParameter{collectionT}
	iterableOfCollectionT := must(Declared(theNoneType, iterable, collectionT.AsType()))
	collection.Superinterfaces = []*DeclaredType{iterableOfCollectionT}

	list := &TypeDeclaration{QualifiedName: "List", SimpleName: "List", Kind: InterfaceDeclaration, Superclass: theNoneType}
	listT := &TypeParameter{Declaring: list, Name: "T", Bounds: []Type{objectType}}
	list.TypeParameters = []*TypeParameter{listT}
	collectionOfListT := must(Declared(theNoneType, collection, listT.AsType()))
	list.Superinterfaces = []*DeclaredType{collectionOfListT}

	arrayList := &TypeDeclaration{QualifiedName: "ArrayList", SimpleName: "ArrayList", Kind: ClassDeclaration, Superclass: objectType}
	arrayListT := &TypeParameter{Declaring: arrayList, Name: "T", Bounds: []Type{objectType}}
	arrayList.TypeParameters = []*TypeParameter{arrayListT}
	arrayList.Superinterfaces = []*DeclaredType{must(Declared(theNoneType, list, arrayListT.AsType()))}

	number := &TypeDeclaration{QualifiedName: "Number", SimpleName: "Number", Kind: ClassDeclaration, Superclass: objectType}

	integer := &TypeDeclaration{QualifiedName: "Integer", SimpleName: "Integer", Kind: ClassDeclaration, Superclass: number.AsType()}
	integer.Superinterfaces = []*DeclaredType{must(Declared(theNoneType, comparable, integer.AsType()))}

	// Enum<E extends Enum<E>>: E's bound refers back to E's own prototypical
	// variable, so the parameter's Bounds and its prototypical TypeVariable
	// must be wired together before either is exposed (spec.md §9 "Cyclic
	// bounds without cycles in construction").
	enum := &TypeDeclaration{QualifiedName: "Enum", SimpleName: "Enum", Kind: ClassDeclaration, Superclass: objectType}
	enumE := &TypeParameter{Declaring: enum, Name: "E"}
	enum.TypeParameters = []*TypeParameter{enumE}
	enumETV := newUnfrozenTypeVariable(enumE, nil)
	enumE.prototypical = enumETV
	enumOfE := must(Declared(theNoneType, enum, enumETV))
	enumE.Bounds = []Type{enumOfE}
	enumETV.freeze(enumOfE, theNullType)

	delayed := &TypeDeclaration{QualifiedName: "Delayed", SimpleName: "Delayed", Kind: InterfaceDeclaration, Superclass: theNoneType}
	delayed.Superinterfaces = []*DeclaredType{must(Declared(theNoneType, comparable, delayed.AsType()))}

	future := &TypeDeclaration{QualifiedName: "Future", SimpleName: "Future", Kind: InterfaceDeclaration, Superclass: theNoneType}
	futureV := &TypeParameter{Declaring: future, Name: "V", Bounds: []Type{objectType}}
	future.TypeParameters = []*TypeParameter{futureV}

	scheduledFuture := &TypeDeclaration{QualifiedName: "ScheduledFuture", SimpleName: "ScheduledFuture", Kind: InterfaceDeclaration, Superclass: theNoneType}
	scheduledFutureV := &TypeParameter{Declaring: scheduledFuture, Name: "V", Bounds: []Type{objectType}}
	scheduledFuture.TypeParameters = []*TypeParameter{scheduledFutureV}
	scheduledFuture.Superinterfaces = []*DeclaredType{
		must(Declared(theNoneType, future, scheduledFutureV.AsType())),
		delayed.AsType(),
	}

	// ConvertibleTo/ReprChange: T extends ConvertibleTo<S>, S extends
	// ConvertibleTo<T> — a mutually F-bounded pair, wired the same way as
	// Enum<E> but crossing two sibling parameters instead of one.
	convertibleTo := &TypeDeclaration{QualifiedName: "ConvertibleTo", SimpleName: "ConvertibleTo", Kind: InterfaceDeclaration, Superclass: theNoneType}
	convertibleToT := &TypeParameter{Declaring: convertibleTo, Name: "T", Bounds: []Type{objectType}}
	convertibleTo.TypeParameters = []*TypeParameter{convertibleToT}

	amount := &TypeDeclaration{QualifiedName: "Amount", SimpleName: "Amount", Kind: ClassDeclaration, Superclass: objectType}
	amount.Superinterfaces = []*DeclaredType{must(Declared(theNoneType, convertibleTo, amount.AsType()))}

	reprChange := &TypeDeclaration{QualifiedName: "ReprChange", SimpleName: "ReprChange", Kind: ClassDeclaration, Superclass: objectType}
	reprT := &TypeParameter{Declaring: reprChange, Name: "T"}
	reprS := &TypeParameter{Declaring: reprChange, Name: "S"}
	reprChange.TypeParameters = []*TypeParameter{reprT, reprS}
	reprTTV := newUnfrozenTypeVariable(reprT, nil)
	reprSTV := newUnfrozenTypeVariable(reprS, nil)
	reprT.prototypical = reprTTV
	reprS.prototypical = reprSTV
	boundT := must(Declared(theNoneType, convertibleTo, reprSTV))
	boundS := must(Declared(theNoneType, convertibleTo, reprTTV))
	reprT.Bounds = []Type{boundT}
	reprS.Bounds = []Type{boundS}
	reprTTV.freeze(boundT, theNullType)
	reprSTV.freeze(boundS, theNullType)

	// DiamondA<T, U>, DiamondB<T> extends DiamondA<T[], Integer[]>: used
	// raw, its superclass argument T[] does not structurally equal
	// Object[], but is contained by "? extends Object[]" (spec §8 scenario 8).
	diamondA := &TypeDeclaration{QualifiedName: "DiamondA", SimpleName: "DiamondA", Kind: ClassDeclaration, Superclass: objectType}
	arrayOfObject := must(Array(objectType))
	diamondAT := &TypeParameter{Declaring: diamondA, Name: "T", Bounds: []Type{arrayOfObject}}
	diamondAU := &TypeParameter{Declaring: diamondA, Name: "U", Bounds: []Type{arrayOfObject}}
	diamondA.TypeParameters = []*TypeParameter{diamondAT, diamondAU}

	diamondB := &TypeDeclaration{QualifiedName: "DiamondB", SimpleName: "DiamondB", Kind: ClassDeclaration}
	diamondBT := &TypeParameter{Declaring: diamondB, Name: "T", Bounds: []Type{objectType}}
	diamondB.TypeParameters = []*TypeParameter{diamondBT}
	integerArray := must(Array(integer.AsType()))
	diamondB.Superclass = must(Declared(theNoneType, diamondA, must(Array(diamondBT.AsType())), integerArray))

	byName := map[string]*TypeDeclaration{
		"Object": object, "Cloneable": cloneable, "Serializable": serializable,
		"Comparable": comparable, "Iterable": iterable, "Collection": collection,
		"List": list, "ArrayList": arrayList, "Number": number, "Integer": integer,
		"Enum": enum, "Delayed": delayed, "Future": future, "ScheduledFuture": scheduledFuture,
		"ConvertibleTo": convertibleTo, "ReprChange": reprChange, "Amount": amount,
		"DiamondA": diamondA, "DiamondB": diamondB,
	}

	provider := &fixtureProvider{
		byName: byName,
		object: objectType,
		clone:  cloneable.AsType(),
		serial: serializable.AsType(),
	}
	decls := &fixtureDeclarations{
		object: object, cloneable: cloneable, serializable: serializable,
		comparable: comparable, iterable: iterable, collection: collection,
		list: list, arrayList: arrayList, number: number, integer: integer, enum: enum,
		delayed: delayed, future: future, scheduledFuture: scheduledFuture,
		convertibleTo: convertibleTo, reprChange: reprChange, amount: amount,
		diamondA: diamondA, diamondB: diamondB,
	}
	return provider, decls
}

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}
