package tstack

import (
	"github.com/smtcore/tstack/pkg/terms"
	"github.com/smtcore/tstack/pkg/terms/bvconst"
)

// RegisterSMTLIB1Dialect re-registers the handful of opcodes whose
// argument order and arity SMT-LIB 1.2 (and the dialects descended from
// it) disagree with the predefined core on: MK_BV_CONST takes the value
// before the size, MK_BV_ROTATE_LEFT/RIGHT, MK_BV_REPEAT and
// MK_BV_SIGN_EXTEND/MK_BV_ZERO_EXTEND take their count before the
// bit-vector, and MK_EQ generalizes to n-ary chained equality. Everything
// else keeps the core's check/eval pair: this works by registering
// replacements under the same opcode numbers after construction, exactly
// the extension mechanism OpTable.Register itself exists for.
func RegisterSMTLIB1Dialect(t *OpTable) {
	t.Register(MK_BV_CONST, false, checkArity2, evalMkBVConstSMTLIB1)
	t.Register(MK_BV_ROTATE_LEFT, false, checkArity2, evalMkBVRotateLeftSMTLIB1)
	t.Register(MK_BV_ROTATE_RIGHT, false, checkArity2, evalMkBVRotateRightSMTLIB1)
	t.Register(MK_BV_REPEAT, false, checkArity2, evalMkBVRepeatSMTLIB1)
	t.Register(MK_BV_SIGN_EXTEND, false, checkArity2, evalMkBVSignExtendSMTLIB1)
	t.Register(MK_BV_ZERO_EXTEND, false, checkArity2, evalMkBVZeroExtendSMTLIB1)
	t.Register(MK_EQ, true, checkAtLeast2, evalMkEqNary)
}

// evalMkBVConstSMTLIB1 reads MK_BV_CONST(value, size), the reverse of the
// core's (size, value).
func evalMkBVConstSMTLIB1(s *Stack, f, n uint32) {
	value := s.coerceRational(s.argCell(f, 0))
	bitsize := s.coercePositiveBitsize(s.argCell(f, 1))
	if !value.IsInt() {
		s.fail(KindNotAnInteger, s.argCell(f, 0).Loc, "", "MK_BV_CONST value must be an integer")
	}
	s.finishTerm(s.table.BVConst(bvconst.NewFromBigInt(bitsize, value.Num())))
}

func evalMkBVRotateLeftSMTLIB1(s *Stack, f, n uint32) {
	loc := s.elems[s.frame].Loc
	amt := s.coerceUint32(s.argCell(f, 0))
	a := s.coerceTerm(s.argCell(f, 1))
	t, err := s.table.BVRotateLeft(a, amt)
	s.finishTerm(s.mustTerm(loc, t, err))
}

func evalMkBVRotateRightSMTLIB1(s *Stack, f, n uint32) {
	loc := s.elems[s.frame].Loc
	amt := s.coerceUint32(s.argCell(f, 0))
	a := s.coerceTerm(s.argCell(f, 1))
	t, err := s.table.BVRotateRight(a, amt)
	s.finishTerm(s.mustTerm(loc, t, err))
}

func evalMkBVRepeatSMTLIB1(s *Stack, f, n uint32) {
	loc := s.elems[s.frame].Loc
	count := s.coerceUint32(s.argCell(f, 0))
	a := s.coerceTerm(s.argCell(f, 1))
	t, err := s.table.BVRepeat(a, count)
	s.finishTerm(s.mustTerm(loc, t, err))
}

func evalMkBVSignExtendSMTLIB1(s *Stack, f, n uint32) {
	loc := s.elems[s.frame].Loc
	count := s.coerceUint32(s.argCell(f, 0))
	a := s.coerceTerm(s.argCell(f, 1))
	t, err := s.table.BVSignExtend(a, count)
	s.finishTerm(s.mustTerm(loc, t, err))
}

func evalMkBVZeroExtendSMTLIB1(s *Stack, f, n uint32) {
	loc := s.elems[s.frame].Loc
	count := s.coerceUint32(s.argCell(f, 0))
	a := s.coerceTerm(s.argCell(f, 1))
	t, err := s.table.BVZeroExtend(a, count)
	s.finishTerm(s.mustTerm(loc, t, err))
}

// evalMkEqNary builds the conjunction of every consecutive pair, the
// standard chained-equality reading of an n-ary MK_EQ.
func evalMkEqNary(s *Stack, f, n uint32) {
	loc := s.elems[s.frame].Loc
	args := s.argTerms(f, n)
	conjuncts := make([]terms.Term, 0, n-1)
	for i := 0; i+1 < len(args); i++ {
		eq, err := s.table.Eq(args[i], args[i+1])
		conjuncts = append(conjuncts, s.mustTerm(loc, eq, err))
	}
	if len(conjuncts) == 1 {
		s.finishTerm(conjuncts[0])
		return
	}
	t, err := s.table.And(conjuncts)
	s.finishTerm(s.mustTerm(loc, t, err))
}
