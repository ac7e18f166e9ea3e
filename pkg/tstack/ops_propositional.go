package tstack

import "github.com/smtcore/tstack/pkg/terms"

func registerPropositionalOps(t *OpTable) {
	t.Register(MK_NOT, false, checkArity1, evalMkNot)
	t.Register(MK_OR, true, checkAtLeast1, evalMkOr)
	t.Register(MK_AND, true, checkAtLeast1, evalMkAnd)
	t.Register(MK_XOR, true, checkAtLeast1, evalMkXor)
	t.Register(MK_IFF, false, checkArity2, evalMkIff)
	t.Register(MK_IMPLIES, false, checkArity2, evalMkImplies)
	t.Register(MK_ITE, false, checkArity3, evalMkIte)
	t.Register(MK_EQ, false, checkArity2, evalMkEq)
	t.Register(MK_DISEQ, false, checkArity2, evalMkDiseq)
	t.Register(MK_DISTINCT, true, checkAtLeast1, evalMkDistinct)
}

func checkArity2(s *Stack, f, n uint32) { checkArgCount(s, n, 2) }
func checkArity3(s *Stack, f, n uint32) { checkArgCount(s, n, 3) }

func (s *Stack) argTerms(f, n uint32) []terms.Term {
	return s.argTermsRange(f, 0, n)
}

// argTermsRange coerces arguments [lo, hi) of a frame whose first argument
// sits at index f.
func (s *Stack) argTermsRange(f, lo, hi uint32) []terms.Term {
	args := make([]terms.Term, 0, hi-lo)
	for i := lo; i < hi; i++ {
		args = append(args, s.coerceTerm(s.argCell(f, i)))
	}
	return args
}

func evalMkNot(s *Stack, f, n uint32) {
	loc := s.argCell(f, 0).Loc
	a := s.coerceTerm(s.argCell(f, 0))
	t, err := s.table.Not(a)
	s.finishTerm(s.mustTerm(loc, t, err))
}

func evalMkOr(s *Stack, f, n uint32) {
	loc := s.elems[s.frame].Loc
	t, err := s.table.Or(s.argTerms(f, n))
	s.finishTerm(s.mustTerm(loc, t, err))
}

func evalMkAnd(s *Stack, f, n uint32) {
	loc := s.elems[s.frame].Loc
	t, err := s.table.And(s.argTerms(f, n))
	s.finishTerm(s.mustTerm(loc, t, err))
}

func evalMkXor(s *Stack, f, n uint32) {
	loc := s.elems[s.frame].Loc
	t, err := s.table.Xor(s.argTerms(f, n))
	s.finishTerm(s.mustTerm(loc, t, err))
}

func evalMkIff(s *Stack, f, n uint32) {
	loc := s.elems[s.frame].Loc
	a, b := s.coerceTerm(s.argCell(f, 0)), s.coerceTerm(s.argCell(f, 1))
	t, err := s.table.Iff(a, b)
	s.finishTerm(s.mustTerm(loc, t, err))
}

func evalMkImplies(s *Stack, f, n uint32) {
	loc := s.elems[s.frame].Loc
	a, b := s.coerceTerm(s.argCell(f, 0)), s.coerceTerm(s.argCell(f, 1))
	t, err := s.table.Implies(a, b)
	s.finishTerm(s.mustTerm(loc, t, err))
}

func evalMkIte(s *Stack, f, n uint32) {
	loc := s.elems[s.frame].Loc
	c := s.coerceTerm(s.argCell(f, 0))
	a := s.coerceTerm(s.argCell(f, 1))
	b := s.coerceTerm(s.argCell(f, 2))
	t, err := s.table.Ite(c, a, b)
	s.finishTerm(s.mustTerm(loc, t, err))
}

func evalMkEq(s *Stack, f, n uint32) {
	loc := s.elems[s.frame].Loc
	a, b := s.coerceTerm(s.argCell(f, 0)), s.coerceTerm(s.argCell(f, 1))
	t, err := s.table.Eq(a, b)
	s.finishTerm(s.mustTerm(loc, t, err))
}

func evalMkDiseq(s *Stack, f, n uint32) {
	loc := s.elems[s.frame].Loc
	a, b := s.coerceTerm(s.argCell(f, 0)), s.coerceTerm(s.argCell(f, 1))
	eq, err := s.table.Eq(a, b)
	eq = s.mustTerm(loc, eq, err)
	t, err := s.table.Not(eq)
	s.finishTerm(s.mustTerm(loc, t, err))
}

func evalMkDistinct(s *Stack, f, n uint32) {
	loc := s.elems[s.frame].Loc
	t, err := s.table.Distinct(s.argTerms(f, n))
	s.finishTerm(s.mustTerm(loc, t, err))
}
