package terms

import "fmt"

// Table is a hash-consed term and type table: structurally equal terms (or
// types) always resolve to the same handle. This is the concrete
// implementation of the underlying logical-term table, kept external to
// the core: the stack never constructs a node
// itself, it only calls exported Table methods with already-coerced
// arguments.
type Table struct {
	termNodes []node
	termKey   map[string]Term

	typeNodes []typeNode
	typeKey   map[string]Type

	freshCounter uint32

	boolTy, intTy, realTy Type
	trueTerm, falseTerm   Term
}

// NewTable constructs a table pre-populated with the Boolean/Int/Real
// primitive types and the true/false constants, mirroring the way the
// original term/type tables this core was designed against always have
// those built in before any push/evaluate call happens.
func NewTable() *Table {
	t := &Table{
		termNodes: make([]node, 1), // index 0 is the null term
		termKey:   make(map[string]Term),
		typeNodes: make([]typeNode, 1), // index 0 is the null type
		typeKey:   make(map[string]Type),
	}
	t.boolTy = t.internType(typeNode{kind: TypeKindBool})
	t.intTy = t.internType(typeNode{kind: TypeKindInt})
	t.realTy = t.internType(typeNode{kind: TypeKindReal})
	t.trueTerm = t.internTerm(node{kind: KindTrue, typ: t.boolTy})
	t.falseTerm = t.internTerm(node{kind: KindFalse, typ: t.boolTy})
	return t
}

func (t *Table) internTerm(n node) Term {
	key := n.key()
	if id, ok := t.termKey[key]; ok {
		return id
	}
	t.termNodes = append(t.termNodes, n)
	id := Term(len(t.termNodes) - 1)
	t.termKey[key] = id
	return id
}

func (t *Table) internType(n typeNode) Type {
	key := n.key()
	if id, ok := t.typeKey[key]; ok {
		return id
	}
	t.typeNodes = append(t.typeNodes, n)
	id := Type(len(t.typeNodes) - 1)
	t.typeKey[key] = id
	return id
}

// True returns the canonical Boolean constant true.
func (t *Table) True() Term { return t.trueTerm }

// False returns the canonical Boolean constant false.
func (t *Table) False() Term { return t.falseTerm }

// BoolType returns the canonical Boolean type.
func (t *Table) BoolType() Type { return t.boolTy }

// IntType returns the canonical integer type.
func (t *Table) IntType() Type { return t.intTy }

// RealType returns the canonical real type.
func (t *Table) RealType() Type { return t.realTy }

// BVType returns the canonical bit-vector type of the given width.
func (t *Table) BVType(bitsize uint32) Type {
	return t.internType(typeNode{kind: TypeKindBV, bitsize: bitsize})
}

// FreshTypeVariable allocates a distinct uninterpreted type, used by
// DECLARE_TYPE_VAR and by DEFINE_TYPE when no explicit type is given.
func (t *Table) FreshTypeVariable(display string) Type {
	t.freshCounter++
	return t.internType(typeNode{kind: TypeKindUninterpreted, names: []string{fmt.Sprintf("%s$%d", display, t.freshCounter)}})
}

// ScalarType constructs an enumerated scalar type with the given element
// names, which must already have been checked for duplicates by the
// caller.
func (t *Table) ScalarType(names []string) Type {
	cp := append([]string(nil), names...)
	return t.internType(typeNode{kind: TypeKindScalar, names: cp})
}

// TupleType constructs a tuple type from its component types.
func (t *Table) TupleType(components []Type) Type {
	cp := append([]Type(nil), components...)
	return t.internType(typeNode{kind: TypeKindTuple, children: cp})
}

// FunType constructs a function type from a (non-empty) domain and a
// codomain.
func (t *Table) FunType(domain []Type, codomain Type) Type {
	cp := append([]Type(nil), domain...)
	return t.internType(typeNode{kind: TypeKindFun, children: cp, codomain: codomain})
}

// AppType applies a type macro (named by a fresh identity here, since the
// core's macro table is the name registry, not this one) to a list of
// argument types. In the absence of a richer macro-expansion facility,
// application is modeled as tagging the argument list onto the macro's
// identity so that two applications of the same macro to the same
// arguments are consed to the same handle.
func (t *Table) AppType(macro int32, args []Type) Type {
	cp := append([]Type(nil), args...)
	return t.internType(typeNode{kind: TypeKindUninterpreted, bitsize: uint32(macro), children: cp, names: []string{"@macro"}})
}

// FreshUninterpreted allocates a distinct uninterpreted term of type tau,
// used by DEFINE_TERM (no value given) and DECLARE_VAR.
func (t *Table) FreshUninterpreted(tau Type) Term {
	t.freshCounter++
	return t.internTerm(node{kind: KindUninterpreted, name: fmt.Sprintf("$fresh%d", t.freshCounter), typ: tau})
}

// UninterpretedNamed allocates (or returns the existing handle for) a
// named uninterpreted term of type tau. Distinct from FreshUninterpreted
// so that two pushes of the same primitive symbol (e.g. a pre-declared
// SMT-LIB symbol) resolve to the same term.
func (t *Table) UninterpretedNamed(name string, tau Type) Term {
	return t.internTerm(node{kind: KindUninterpreted, name: name, typ: tau})
}

// TypeOf returns the type of term a.
func (t *Table) TypeOf(a Term) Type {
	return t.termNodes[a].typ
}

// Kind returns the node kind of term a.
func (t *Table) Kind(a Term) Kind {
	return t.termNodes[a].kind
}

// IsConstant reports whether a term is a compile-time constant (true,
// false, a rational literal, or a bit-vector literal).
func (t *Table) IsConstant(a Term) bool {
	switch t.termNodes[a].kind {
	case KindTrue, KindFalse, KindRational, KindBVConst:
		return true
	default:
		return false
	}
}
