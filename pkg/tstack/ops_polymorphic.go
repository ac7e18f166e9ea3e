package tstack

import "github.com/smtcore/tstack/pkg/terms"

func registerPolymorphicOps(t *OpTable) {
	t.Register(MK_APPLY, false, checkAtLeast1, evalMkApply)
	t.Register(MK_TUPLE, false, checkAtLeast1, evalMkTuple)
	t.Register(MK_SELECT, false, checkArity2, evalMkSelect)
	t.Register(MK_TUPLE_UPDATE, false, checkArity3, evalMkTupleUpdate)
	t.Register(MK_UPDATE, false, checkAtLeast2, evalMkUpdate)
	t.Register(MK_FORALL, false, checkAtLeast2, evalMkForall)
	t.Register(MK_EXISTS, false, checkAtLeast2, evalMkExists)
	t.Register(MK_LAMBDA, false, checkAtLeast2, evalMkLambda)
}

// evalMkApply applies the first argument (the function term) to the rest.
// Apply itself rejects a non-function first argument, so no duplicate
// check is needed here.
func evalMkApply(s *Stack, f, n uint32) {
	loc := s.elems[s.frame].Loc
	fn := s.coerceTerm(s.argCell(f, 0))
	args := s.argTermsRange(f, 1, n)
	t, err := s.table.Apply(fn, args)
	s.finishTerm(s.mustTerm(loc, t, err))
}

func evalMkTuple(s *Stack, f, n uint32) {
	loc := s.elems[s.frame].Loc
	t, err := s.table.Tuple(s.argTerms(f, n))
	s.finishTerm(s.mustTerm(loc, t, err))
}

func evalMkSelect(s *Stack, f, n uint32) {
	loc := s.elems[s.frame].Loc
	a := s.coerceTerm(s.argCell(f, 0))
	i := s.coerceInt32(s.argCell(f, 1))
	t, err := s.table.Select(a, i)
	s.finishTerm(s.mustTerm(loc, t, err))
}

func evalMkTupleUpdate(s *Stack, f, n uint32) {
	loc := s.elems[s.frame].Loc
	a := s.coerceTerm(s.argCell(f, 0))
	i := s.coerceInt32(s.argCell(f, 1))
	v := s.coerceTerm(s.argCell(f, 2))
	t, err := s.table.TupleUpdate(a, i, v)
	s.finishTerm(s.mustTerm(loc, t, err))
}

// evalMkUpdate reads MK_UPDATE(fn, args..., v); the update value sits
// last, mirroring MK_TUPLE_UPDATE's value-last convention.
func evalMkUpdate(s *Stack, f, n uint32) {
	loc := s.elems[s.frame].Loc
	fn := s.coerceTerm(s.argCell(f, 0))
	args := s.argTermsRange(f, 1, n-1)
	v := s.coerceTerm(s.argCell(f, n-1))
	t, err := s.table.Update(fn, args, v)
	s.finishTerm(s.mustTerm(loc, t, err))
}

// checkDistinctVars fails KindDuplicateVarName if the same bound variable
// appears twice in a binder list. A named variable hash-cones to one Term
// handle per (name, type) pair, so two occurrences of the same name in the
// list collapse to the same handle; this is the mirror of evalLet's
// symbol-keyed duplicate check, keyed on term identity instead since a
// binder-list argument carries no symbol of its own by the time it
// reaches here.
func checkDistinctVars(s *Stack, vars []terms.Term, loc Location) {
	seen := make(map[terms.Term]bool, len(vars))
	for _, v := range vars {
		if seen[v] {
			s.fail(KindDuplicateVarName, loc, s.table.Describe(v), "duplicate bound name in binder list")
		}
		seen[v] = true
	}
}

func evalMkForall(s *Stack, f, n uint32) {
	loc := s.elems[s.frame].Loc
	vars := s.argTermsRange(f, 0, n-1)
	checkDistinctVars(s, vars, loc)
	body := s.coerceTerm(s.argCell(f, n-1))
	t, err := s.table.Forall(vars, body)
	s.finishTerm(s.mustTerm(loc, t, err))
}

func evalMkExists(s *Stack, f, n uint32) {
	loc := s.elems[s.frame].Loc
	vars := s.argTermsRange(f, 0, n-1)
	checkDistinctVars(s, vars, loc)
	body := s.coerceTerm(s.argCell(f, n-1))
	t, err := s.table.Exists(vars, body)
	s.finishTerm(s.mustTerm(loc, t, err))
}

func evalMkLambda(s *Stack, f, n uint32) {
	loc := s.elems[s.frame].Loc
	vars := s.argTermsRange(f, 0, n-1)
	checkDistinctVars(s, vars, loc)
	body := s.coerceTerm(s.argCell(f, n-1))
	t, err := s.table.Lambda(vars, body)
	s.finishTerm(s.mustTerm(loc, t, err))
}
