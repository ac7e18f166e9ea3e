package tstack

func registerBVAtomOps(t *OpTable) {
	t.Register(MK_BV_GE, false, checkArity2, evalMkBVGe)
	t.Register(MK_BV_GT, false, checkArity2, evalMkBVGt)
	t.Register(MK_BV_LE, false, checkArity2, evalMkBVLe)
	t.Register(MK_BV_LT, false, checkArity2, evalMkBVLt)
	t.Register(MK_BV_SGE, false, checkArity2, evalMkBVSge)
	t.Register(MK_BV_SGT, false, checkArity2, evalMkBVSgt)
	t.Register(MK_BV_SLE, false, checkArity2, evalMkBVSle)
	t.Register(MK_BV_SLT, false, checkArity2, evalMkBVSlt)
}

// evalMkBVGe and its seven siblings compare two bit-vectors of equal
// width, unsigned (GE/GT/LE/LT) or two's-complement signed (SGE/SGT/SLE/
// SLT).
func evalMkBVGe(s *Stack, f, n uint32) {
	loc := s.elems[s.frame].Loc
	a, b := s.coerceTerm(s.argCell(f, 0)), s.coerceTerm(s.argCell(f, 1))
	t, err := s.table.BVGe(a, b)
	s.finishTerm(s.mustTerm(loc, t, err))
}

func evalMkBVGt(s *Stack, f, n uint32) {
	loc := s.elems[s.frame].Loc
	a, b := s.coerceTerm(s.argCell(f, 0)), s.coerceTerm(s.argCell(f, 1))
	t, err := s.table.BVGt(a, b)
	s.finishTerm(s.mustTerm(loc, t, err))
}

func evalMkBVLe(s *Stack, f, n uint32) {
	loc := s.elems[s.frame].Loc
	a, b := s.coerceTerm(s.argCell(f, 0)), s.coerceTerm(s.argCell(f, 1))
	t, err := s.table.BVLe(a, b)
	s.finishTerm(s.mustTerm(loc, t, err))
}

func evalMkBVLt(s *Stack, f, n uint32) {
	loc := s.elems[s.frame].Loc
	a, b := s.coerceTerm(s.argCell(f, 0)), s.coerceTerm(s.argCell(f, 1))
	t, err := s.table.BVLt(a, b)
	s.finishTerm(s.mustTerm(loc, t, err))
}

func evalMkBVSge(s *Stack, f, n uint32) {
	loc := s.elems[s.frame].Loc
	a, b := s.coerceTerm(s.argCell(f, 0)), s.coerceTerm(s.argCell(f, 1))
	t, err := s.table.BVSge(a, b)
	s.finishTerm(s.mustTerm(loc, t, err))
}

func evalMkBVSgt(s *Stack, f, n uint32) {
	loc := s.elems[s.frame].Loc
	a, b := s.coerceTerm(s.argCell(f, 0)), s.coerceTerm(s.argCell(f, 1))
	t, err := s.table.BVSgt(a, b)
	s.finishTerm(s.mustTerm(loc, t, err))
}

func evalMkBVSle(s *Stack, f, n uint32) {
	loc := s.elems[s.frame].Loc
	a, b := s.coerceTerm(s.argCell(f, 0)), s.coerceTerm(s.argCell(f, 1))
	t, err := s.table.BVSle(a, b)
	s.finishTerm(s.mustTerm(loc, t, err))
}

func evalMkBVSlt(s *Stack, f, n uint32) {
	loc := s.elems[s.frame].Loc
	a, b := s.coerceTerm(s.argCell(f, 0)), s.coerceTerm(s.argCell(f, 1))
	t, err := s.table.BVSlt(a, b)
	s.finishTerm(s.mustTerm(loc, t, err))
}
