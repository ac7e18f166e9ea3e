package terms

import "fmt"

// Not returns the negation of a, with the standard double-negation and
// constant simplifications folded in immediately (a hash-consed table
// gains nothing by keeping Not(Not(x)) as a distinct node from x).
func (t *Table) Not(a Term) (Term, error) {
	if err := t.expectBool(a); err != nil {
		return NullTerm, err
	}
	switch a {
	case t.trueTerm:
		return t.falseTerm, nil
	case t.falseTerm:
		return t.trueTerm, nil
	}
	if n := t.termNodes[a]; n.kind == KindNot {
		return n.children[0], nil
	}
	return t.internTerm(node{kind: KindNot, children: []Term{a}, typ: t.boolTy}), nil
}

// Or returns the disjunction of args (n >= 1), following the convention
// that associative operators accept a single argument as identity: a
// single argument is returned unchanged.
func (t *Table) Or(args []Term) (Term, error) {
	return t.boolAssoc(KindOr, args, t.falseTerm, t.trueTerm)
}

// And returns the conjunction of args (n >= 1).
func (t *Table) And(args []Term) (Term, error) {
	return t.boolAssoc(KindAnd, args, t.trueTerm, t.falseTerm)
}

// boolAssoc implements the shared shape of Or/And: drop the absorbing
// identity element, short-circuit on the annihilator, and deduplicate.
func (t *Table) boolAssoc(kind Kind, args []Term, identity, annihilator Term) (Term, error) {
	if len(args) == 0 {
		return NullTerm, fmt.Errorf("terms: %v requires at least one argument", kind)
	}
	kept := make([]Term, 0, len(args))
	seen := make(map[Term]bool, len(args))
	for _, a := range args {
		if err := t.expectBool(a); err != nil {
			return NullTerm, err
		}
		if a == annihilator {
			return annihilator, nil
		}
		if a == identity || seen[a] {
			continue
		}
		seen[a] = true
		kept = append(kept, a)
	}
	if len(kept) == 0 {
		return identity, nil
	}
	if len(kept) == 1 {
		return kept[0], nil
	}
	return t.internTerm(node{kind: kind, children: kept, typ: t.boolTy}), nil
}

// Xor returns the exclusive-or of args (n >= 1).
func (t *Table) Xor(args []Term) (Term, error) {
	if len(args) == 0 {
		return NullTerm, fmt.Errorf("terms: xor requires at least one argument")
	}
	neg := false
	kept := make([]Term, 0, len(args))
	for _, a := range args {
		if err := t.expectBool(a); err != nil {
			return NullTerm, err
		}
		if a == t.trueTerm {
			neg = !neg
			continue
		}
		if a == t.falseTerm {
			continue
		}
		kept = append(kept, a)
	}
	var result Term
	switch len(kept) {
	case 0:
		result = t.falseTerm
	case 1:
		result = kept[0]
	default:
		result = t.internTerm(node{kind: KindXor, children: kept, typ: t.boolTy})
	}
	if neg {
		return t.Not(result)
	}
	return result, nil
}

// Iff returns a <=> b.
func (t *Table) Iff(a, b Term) (Term, error) {
	if err := t.expectBool(a); err != nil {
		return NullTerm, err
	}
	if err := t.expectBool(b); err != nil {
		return NullTerm, err
	}
	if a == b {
		return t.trueTerm, nil
	}
	return t.internTerm(node{kind: KindIff, children: []Term{a, b}, typ: t.boolTy}), nil
}

// Implies returns a => b.
func (t *Table) Implies(a, b Term) (Term, error) {
	if err := t.expectBool(a); err != nil {
		return NullTerm, err
	}
	if err := t.expectBool(b); err != nil {
		return NullTerm, err
	}
	if a == t.falseTerm || b == t.trueTerm {
		return t.trueTerm, nil
	}
	return t.internTerm(node{kind: KindImplies, children: []Term{a, b}, typ: t.boolTy}), nil
}

// Ite returns (if c then a else b); a and b must share a type, the
// codomain of the result.
func (t *Table) Ite(c, a, b Term) (Term, error) {
	if err := t.expectBool(c); err != nil {
		return NullTerm, err
	}
	tauA, tauB := t.TypeOf(a), t.TypeOf(b)
	if !t.IsSubtype(tauA, tauB) && !t.IsSubtype(tauB, tauA) {
		return NullTerm, fmt.Errorf("terms: ite branches have incompatible types")
	}
	resultTy := tauA
	if t.IsSubtype(tauA, tauB) {
		resultTy = tauB
	}
	if c == t.trueTerm {
		return a, nil
	}
	if c == t.falseTerm {
		return b, nil
	}
	if a == b {
		return a, nil
	}
	return t.internTerm(node{kind: KindIte, children: []Term{c, a, b}, typ: resultTy}), nil
}

// Eq returns a == b. Numeric and bit-vector equalities use the same node
// kind; the caller is responsible for having already checked the two
// arguments share a type (the caller's own check functions do this before
// eval ever calls Eq).
func (t *Table) Eq(a, b Term) (Term, error) {
	if a == b {
		return t.trueTerm, nil
	}
	return t.internTerm(node{kind: KindEq, children: []Term{a, b}, typ: t.boolTy}), nil
}

// Distinct returns a term asserting every element of args is pairwise
// distinct from every other element (n >= 1; n == 1 is trivially true).
func (t *Table) Distinct(args []Term) (Term, error) {
	if len(args) == 0 {
		return NullTerm, fmt.Errorf("terms: distinct requires at least one argument")
	}
	if len(args) == 1 {
		return t.trueTerm, nil
	}
	return t.internTerm(node{kind: KindDistinct, children: append([]Term(nil), args...), typ: t.boolTy}), nil
}

func (t *Table) expectBool(a Term) error {
	if t.TypeOf(a) != t.boolTy {
		return fmt.Errorf("terms: expected a boolean term, got type %v", t.TypeOf(a))
	}
	return nil
}
