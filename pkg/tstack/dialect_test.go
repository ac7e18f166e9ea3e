package tstack

import (
	"testing"

	"github.com/smtcore/tstack/pkg/terms"
	"github.com/smtcore/tstack/pkg/terms/bvconst"
	"github.com/smtcore/tstack/pkg/tnames"
	"github.com/stretchr/testify/assert"
)

func newSMTLIB1TestStack(t *testing.T) *Stack {
	t.Helper()
	table := terms.NewTable()
	ops := NewOpTable(numPredefinedOpsForTest())
	RegisterSMTLIB1Dialect(ops)
	names := tnames.NewRegistry()
	return New(ops, table, names)
}

func TestDialectMkBVConstTakesValueBeforeSize(t *testing.T) {
	s := newSMTLIB1TestStack(t)
	require := assert.New(t)
	require.NoError(s.PushOp(BUILD_TERM, here))
	require.NoError(s.PushOp(MK_BV_CONST, here))
	s.PushInteger(10, here)
	s.PushInteger(8, here)
	require.NoError(s.Evaluate())
	require.NoError(s.Evaluate())
	assert.Equal(t, s.table.BVConst(bvconst.NewFromUint64(8, 10)), s.ResultTerm())
}

func TestDialectMkBVRotateLeftTakesAmountBeforeOperand(t *testing.T) {
	s := newSMTLIB1TestStack(t)
	require := assert.New(t)
	require.NoError(s.PushOp(BUILD_TERM, here))
	require.NoError(s.PushOp(MK_BV_ROTATE_LEFT, here))
	s.PushInteger(1, here)
	s.PushBVBin("1000", here)
	require.NoError(s.Evaluate())
	require.NoError(s.Evaluate())
	want, err := s.table.BVRotateLeft(s.table.BVConst(bvconst.NewFromUint64(4, 0b1000)), 1)
	require.NoError(err)
	assert.Equal(t, want, s.ResultTerm())
}

func TestDialectMkBVSignExtendTakesCountBeforeOperand(t *testing.T) {
	s := newSMTLIB1TestStack(t)
	require := assert.New(t)
	require.NoError(s.PushOp(BUILD_TERM, here))
	require.NoError(s.PushOp(MK_BV_SIGN_EXTEND, here))
	s.PushInteger(4, here)
	s.PushBVBin("1000", here)
	require.NoError(s.Evaluate())
	require.NoError(s.Evaluate())
	want, err := s.table.BVSignExtend(s.table.BVConst(bvconst.NewFromUint64(4, 0b1000)), 4)
	require.NoError(err)
	assert.Equal(t, want, s.ResultTerm())
}

func TestDialectMkEqNaryChainsConsecutivePairs(t *testing.T) {
	s := newSMTLIB1TestStack(t)
	require := assert.New(t)
	x := s.table.FreshUninterpreted(s.table.IntType())
	require.NoError(s.PushOp(BUILD_TERM, here))
	require.NoError(s.PushOp(MK_EQ, here))
	s.PushTerm(x, here)
	s.PushTerm(x, here)
	s.PushTerm(x, here)
	require.NoError(s.Evaluate())
	require.NoError(s.Evaluate())
	assert.Equal(t, s.table.True(), s.ResultTerm())
}

func TestDialectMkEqNaryOnTwoArgsIsPlainEquality(t *testing.T) {
	s := newSMTLIB1TestStack(t)
	require := assert.New(t)
	x := s.table.FreshUninterpreted(s.table.IntType())
	y := s.table.FreshUninterpreted(s.table.IntType())
	require.NoError(s.PushOp(BUILD_TERM, here))
	require.NoError(s.PushOp(MK_EQ, here))
	s.PushTerm(x, here)
	s.PushTerm(y, here)
	require.NoError(s.Evaluate())
	require.NoError(s.Evaluate())
	want, err := s.table.Eq(x, y)
	require.NoError(err)
	assert.Equal(t, want, s.ResultTerm())
}
