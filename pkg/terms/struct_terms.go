package terms

import "fmt"

// Apply applies fn (a function-typed term) to args, checking arity and
// each argument's subtype against fn's domain.
func (t *Table) Apply(fn Term, args []Term) (Term, error) {
	tau := t.TypeOf(fn)
	if !t.IsFunction(tau) {
		return NullTerm, fmt.Errorf("terms: apply target is not a function")
	}
	domain := t.Domain(tau)
	if len(domain) != len(args) {
		return NullTerm, fmt.Errorf("terms: apply arity mismatch: expected %d arguments, got %d", len(domain), len(args))
	}
	for i, a := range args {
		if !t.IsSubtype(t.TypeOf(a), domain[i]) {
			return NullTerm, fmt.Errorf("terms: apply argument %d has wrong type", i)
		}
	}
	children := append([]Term{fn}, args...)
	return t.internTerm(node{kind: KindApply, children: children, typ: t.Codomain(tau)}), nil
}

// Tuple constructs a tuple term from its components.
func (t *Table) Tuple(args []Term) (Term, error) {
	if len(args) == 0 {
		return NullTerm, fmt.Errorf("terms: tuple requires at least one component")
	}
	types := make([]Type, len(args))
	for i, a := range args {
		types[i] = t.TypeOf(a)
	}
	return t.internTerm(node{kind: KindTuple, children: append([]Term(nil), args...), typ: t.TupleType(types)}), nil
}

// Select returns the i'th (1-based) component of
// tuple-typed term a.
func (t *Table) Select(a Term, i int32) (Term, error) {
	tau := t.TypeOf(a)
	components := t.TupleComponents(tau)
	if t.typeNodes[tau].kind != TypeKindTuple {
		return NullTerm, fmt.Errorf("terms: select target is not a tuple")
	}
	if i < 1 || int(i) > len(components) {
		return NullTerm, fmt.Errorf("terms: select index %d out of range for tuple of size %d", i, len(components))
	}
	if n := t.termNodes[a]; n.kind == KindTuple {
		return n.children[i-1], nil
	}
	return t.internTerm(node{kind: KindSelect, children: []Term{a}, aux: i, typ: components[i-1]}), nil
}

// TupleUpdate returns a tuple equal to a except its i'th (1-based)
// component is replaced by v.
func (t *Table) TupleUpdate(a Term, i int32, v Term) (Term, error) {
	tau := t.TypeOf(a)
	if t.typeNodes[tau].kind != TypeKindTuple {
		return NullTerm, fmt.Errorf("terms: tuple-update target is not a tuple")
	}
	components := t.TupleComponents(tau)
	if i < 1 || int(i) > len(components) {
		return NullTerm, fmt.Errorf("terms: tuple-update index %d out of range for tuple of size %d", i, len(components))
	}
	if !t.IsSubtype(t.TypeOf(v), components[i-1]) {
		return NullTerm, fmt.Errorf("terms: tuple-update value has wrong type")
	}
	if n := t.termNodes[a]; n.kind == KindTuple {
		cp := append([]Term(nil), n.children...)
		cp[i-1] = v
		return t.internTerm(node{kind: KindTuple, children: cp, typ: tau}), nil
	}
	return t.internTerm(node{kind: KindTupleUpdate, children: []Term{a, v}, aux: i, typ: tau}), nil
}

// Update returns a function equal to fn except that fn(args...) is
// replaced by v, the functional-array update.
func (t *Table) Update(fn Term, args []Term, v Term) (Term, error) {
	tau := t.TypeOf(fn)
	if !t.IsFunction(tau) {
		return NullTerm, fmt.Errorf("terms: update target is not a function")
	}
	domain := t.Domain(tau)
	if len(domain) != len(args) {
		return NullTerm, fmt.Errorf("terms: update arity mismatch: expected %d arguments, got %d", len(domain), len(args))
	}
	if !t.IsSubtype(t.TypeOf(v), t.Codomain(tau)) {
		return NullTerm, fmt.Errorf("terms: update value has wrong type")
	}
	children := append([]Term{fn, v}, args...)
	return t.internTerm(node{kind: KindUpdate, children: children, typ: tau}), nil
}

// quantifier is the shared shape of Forall/Exists: bound variables must be
// uninterpreted terms (freshly declared by the caller for the quantifier's
// scope), and the body must be Boolean.
func (t *Table) quantifier(kind Kind, vars []Term, body Term) (Term, error) {
	if len(vars) == 0 {
		return NullTerm, fmt.Errorf("terms: quantifier requires at least one bound variable")
	}
	for _, v := range vars {
		if t.termNodes[v].kind != KindUninterpreted {
			return NullTerm, fmt.Errorf("terms: quantifier bound variable must be a fresh uninterpreted term")
		}
	}
	if err := t.expectBool(body); err != nil {
		return NullTerm, err
	}
	children := append(append([]Term(nil), vars...), body)
	return t.internTerm(node{kind: kind, children: children, typ: t.boolTy}), nil
}

// Forall constructs a universally quantified term over vars.
func (t *Table) Forall(vars []Term, body Term) (Term, error) {
	return t.quantifier(KindForall, vars, body)
}

// Exists constructs an existentially quantified term over vars.
func (t *Table) Exists(vars []Term, body Term) (Term, error) {
	return t.quantifier(KindExists, vars, body)
}

// Lambda constructs a function term over vars with the given body,
// producing a term of function type (domain of vars' types, codomain the
// body's type).
func (t *Table) Lambda(vars []Term, body Term) (Term, error) {
	if len(vars) == 0 {
		return NullTerm, fmt.Errorf("terms: lambda requires at least one bound variable")
	}
	domain := make([]Type, len(vars))
	for i, v := range vars {
		if t.termNodes[v].kind != KindUninterpreted {
			return NullTerm, fmt.Errorf("terms: lambda bound variable must be a fresh uninterpreted term")
		}
		domain[i] = t.TypeOf(v)
	}
	funTy := t.FunType(domain, t.TypeOf(body))
	children := append(append([]Term(nil), vars...), body)
	return t.internTerm(node{kind: KindLambda, children: children, typ: funTy}), nil
}
