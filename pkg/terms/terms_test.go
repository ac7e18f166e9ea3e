package terms

import (
	"math/big"
	"testing"

	"github.com/smtcore/tstack/pkg/terms/bvconst"
	"github.com/stretchr/testify/assert"
)

func TestHashConsingDeduplicatesTypes(t *testing.T) {
	tbl := NewTable()
	a := tbl.BVType(8)
	b := tbl.BVType(8)
	assert.Equal(t, a, b)
	c := tbl.BVType(16)
	assert.NotEqual(t, a, c)
}

func TestHashConsingDeduplicatesTerms(t *testing.T) {
	tbl := NewTable()
	x := tbl.FreshUninterpreted(tbl.IntType())
	y, _ := tbl.Add([]Term{x, x})
	z, _ := tbl.Add([]Term{x, x})
	assert.Equal(t, y, z)
}

func TestNotDoubleNegationElimination(t *testing.T) {
	tbl := NewTable()
	x := tbl.FreshUninterpreted(tbl.BoolType())
	n1, err := tbl.Not(x)
	assert.NoError(t, err)
	n2, err := tbl.Not(n1)
	assert.NoError(t, err)
	assert.Equal(t, x, n2)
}

func TestNotOnConstants(t *testing.T) {
	tbl := NewTable()
	f, _ := tbl.Not(tbl.True())
	assert.Equal(t, tbl.False(), f)
	tr, _ := tbl.Not(tbl.False())
	assert.Equal(t, tbl.True(), tr)
}

func TestAndAnnihilatorAndIdentity(t *testing.T) {
	tbl := NewTable()
	x := tbl.FreshUninterpreted(tbl.BoolType())
	r, err := tbl.And([]Term{x, tbl.False()})
	assert.NoError(t, err)
	assert.Equal(t, tbl.False(), r)

	r2, err := tbl.And([]Term{x, tbl.True()})
	assert.NoError(t, err)
	assert.Equal(t, x, r2)
}

func TestOrDeduplicatesArguments(t *testing.T) {
	tbl := NewTable()
	x := tbl.FreshUninterpreted(tbl.BoolType())
	y := tbl.FreshUninterpreted(tbl.BoolType())
	r1, _ := tbl.Or([]Term{x, y, x})
	r2, _ := tbl.Or([]Term{x, y})
	assert.Equal(t, r1, r2)
}

func TestEqReflexive(t *testing.T) {
	tbl := NewTable()
	x := tbl.FreshUninterpreted(tbl.IntType())
	r, _ := tbl.Eq(x, x)
	assert.Equal(t, tbl.True(), r)
}

func TestDistinctSingleton(t *testing.T) {
	tbl := NewTable()
	x := tbl.FreshUninterpreted(tbl.IntType())
	r, err := tbl.Distinct([]Term{x})
	assert.NoError(t, err)
	assert.Equal(t, tbl.True(), r)
}

func TestIteConstantCondition(t *testing.T) {
	tbl := NewTable()
	x := tbl.FreshUninterpreted(tbl.IntType())
	y := tbl.FreshUninterpreted(tbl.IntType())
	a, _ := tbl.Ite(tbl.True(), x, y)
	assert.Equal(t, x, a)
	b, _ := tbl.Ite(tbl.False(), x, y)
	assert.Equal(t, y, b)
}

func TestRationalConstIntVsReal(t *testing.T) {
	tbl := NewTable()
	intVal := tbl.RationalConst(big.NewRat(3, 1))
	assert.Equal(t, tbl.IntType(), tbl.TypeOf(intVal))
	realVal := tbl.RationalConst(big.NewRat(1, 2))
	assert.Equal(t, tbl.RealType(), tbl.TypeOf(realVal))
}

func TestAddJoinsToReal(t *testing.T) {
	tbl := NewTable()
	i := tbl.RationalConst(big.NewRat(1, 1))
	r := tbl.RationalConst(big.NewRat(1, 2))
	sum, err := tbl.Add([]Term{i, r})
	assert.NoError(t, err)
	assert.Equal(t, tbl.RealType(), tbl.TypeOf(sum))
}

func TestNegCancelsNeg(t *testing.T) {
	tbl := NewTable()
	x := tbl.FreshUninterpreted(tbl.IntType())
	n1, _ := tbl.Neg(x)
	n2, _ := tbl.Neg(n1)
	assert.Equal(t, x, n2)
}

func TestSubRequiresTwoArgs(t *testing.T) {
	tbl := NewTable()
	x := tbl.FreshUninterpreted(tbl.IntType())
	_, err := tbl.Sub([]Term{x})
	assert.Error(t, err)
}

func TestBVConstWidthMismatchError(t *testing.T) {
	tbl := NewTable()
	a := tbl.BVConst(bvconst.NewFromUint64(4, 0b1010))
	b := tbl.BVConst(bvconst.NewFromUint64(8, 0))
	_, err := tbl.BVAdd([]Term{a, b})
	assert.Error(t, err)
}

func TestBVAddConstantFolding(t *testing.T) {
	tbl := NewTable()
	a := tbl.BVConst(bvconst.NewFromUint64(4, 0b1111))
	b := tbl.BVConst(bvconst.NewFromUint64(4, 0b0001))
	sum, err := tbl.BVAdd([]Term{a, b})
	assert.NoError(t, err)
	v := tbl.bvConstOf(sum)
	u, _ := v.Uint64()
	assert.Equal(t, uint64(0), u)
}

func TestBVAddMixedConstantAndSymbolic(t *testing.T) {
	tbl := NewTable()
	x := tbl.FreshUninterpreted(tbl.BVType(4))
	zero := tbl.BVConst(bvconst.NewFromUint64(4, 0))
	sum, err := tbl.BVAdd([]Term{x, zero})
	assert.NoError(t, err)
	assert.Equal(t, x, sum)
}

func TestBVNotInvolution(t *testing.T) {
	tbl := NewTable()
	x := tbl.FreshUninterpreted(tbl.BVType(4))
	n1, _ := tbl.BVNot(x)
	n2, _ := tbl.BVNot(n1)
	assert.Equal(t, x, n2)
}

func TestBVExtractWholeRangeIsIdentity(t *testing.T) {
	tbl := NewTable()
	x := tbl.FreshUninterpreted(tbl.BVType(8))
	r, err := tbl.BVExtract(x, 7, 0)
	assert.NoError(t, err)
	assert.Equal(t, x, r)
}

func TestBVExtractOutOfRange(t *testing.T) {
	tbl := NewTable()
	x := tbl.FreshUninterpreted(tbl.BVType(8))
	_, err := tbl.BVExtract(x, 8, 0)
	assert.Error(t, err)
}

func TestBVConcatConstantFolding(t *testing.T) {
	tbl := NewTable()
	a := tbl.BVConst(bvconst.NewFromUint64(4, 0b1010))
	b := tbl.BVConst(bvconst.NewFromUint64(4, 0b0101))
	r, err := tbl.BVConcat([]Term{a, b})
	assert.NoError(t, err)
	v := tbl.bvConstOf(r)
	u, _ := v.Uint64()
	assert.Equal(t, uint64(0b10100101), u)
}

func TestBVSignExtendZeroWidthIsNoop(t *testing.T) {
	tbl := NewTable()
	x := tbl.FreshUninterpreted(tbl.BVType(4))
	r, err := tbl.BVSignExtend(x, 0)
	assert.NoError(t, err)
	assert.Equal(t, x, r)
}

func TestBVCompareConstants(t *testing.T) {
	tbl := NewTable()
	a := tbl.BVConst(bvconst.NewFromUint64(4, 3))
	b := tbl.BVConst(bvconst.NewFromUint64(4, 5))
	lt, err := tbl.BVLt(a, b)
	assert.NoError(t, err)
	assert.Equal(t, tbl.True(), lt)
}

func TestSelectOnTupleLiteral(t *testing.T) {
	tbl := NewTable()
	x := tbl.FreshUninterpreted(tbl.IntType())
	y := tbl.FreshUninterpreted(tbl.BoolType())
	tup, err := tbl.Tuple([]Term{x, y})
	assert.NoError(t, err)
	s1, err := tbl.Select(tup, 1)
	assert.NoError(t, err)
	assert.Equal(t, x, s1)
	s2, err := tbl.Select(tup, 2)
	assert.NoError(t, err)
	assert.Equal(t, y, s2)
}

func TestSelectOutOfRange(t *testing.T) {
	tbl := NewTable()
	x := tbl.FreshUninterpreted(tbl.IntType())
	tup, _ := tbl.Tuple([]Term{x})
	_, err := tbl.Select(tup, 2)
	assert.Error(t, err)
}

func TestApplyArityMismatch(t *testing.T) {
	tbl := NewTable()
	fnTy := tbl.FunType([]Type{tbl.IntType(), tbl.IntType()}, tbl.BoolType())
	f := tbl.FreshUninterpreted(fnTy)
	x := tbl.FreshUninterpreted(tbl.IntType())
	_, err := tbl.Apply(f, []Term{x})
	assert.Error(t, err)
}

func TestApplyWellTyped(t *testing.T) {
	tbl := NewTable()
	fnTy := tbl.FunType([]Type{tbl.IntType()}, tbl.BoolType())
	f := tbl.FreshUninterpreted(fnTy)
	x := tbl.FreshUninterpreted(tbl.IntType())
	r, err := tbl.Apply(f, []Term{x})
	assert.NoError(t, err)
	assert.Equal(t, tbl.BoolType(), tbl.TypeOf(r))
}

func TestForallRequiresUninterpretedVars(t *testing.T) {
	tbl := NewTable()
	notAVar := tbl.True()
	_, err := tbl.Forall([]Term{notAVar}, tbl.True())
	assert.Error(t, err)
}

func TestLambdaProducesFunctionType(t *testing.T) {
	tbl := NewTable()
	v := tbl.FreshUninterpreted(tbl.IntType())
	body, _ := tbl.Ge(v, tbl.RationalConst(big.NewRat(0, 1)))
	f, err := tbl.Lambda([]Term{v}, body)
	assert.NoError(t, err)
	assert.True(t, tbl.IsFunction(tbl.TypeOf(f)))
}

func TestIsSubtypeIntReal(t *testing.T) {
	tbl := NewTable()
	assert.True(t, tbl.IsSubtype(tbl.IntType(), tbl.RealType()))
	assert.False(t, tbl.IsSubtype(tbl.RealType(), tbl.IntType()))
}
