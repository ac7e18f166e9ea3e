package tstack

import (
	"testing"

	"github.com/smtcore/tstack/pkg/terms"
	"github.com/stretchr/testify/assert"
)

func TestEvalMkBVTypeBuildsWidthType(t *testing.T) {
	s := newTestStack(t)
	require := assert.New(t)
	require.NoError(s.PushOp(BUILD_TYPE, here))
	require.NoError(s.PushOp(MK_BV_TYPE, here))
	s.PushInteger(8, here)
	require.NoError(s.Evaluate())
	require.NoError(s.Evaluate())
	assert.Equal(t, s.table.BVType(8), s.ResultType())
}

func TestEvalMkScalarTypeBuildsEnumeration(t *testing.T) {
	s := newTestStack(t)
	require := assert.New(t)
	require.NoError(s.PushOp(BUILD_TYPE, here))
	require.NoError(s.PushOp(MK_SCALAR_TYPE, here))
	s.PushSymbol("red", here)
	s.PushSymbol("green", here)
	require.NoError(s.Evaluate())
	require.NoError(s.Evaluate())
	assert.Equal(t, s.table.ScalarType([]string{"red", "green"}), s.ResultType())
}

func TestEvalMkScalarTypeDuplicateNameFails(t *testing.T) {
	s := newTestStack(t)
	require := assert.New(t)
	require.NoError(s.PushOp(MK_SCALAR_TYPE, here))
	s.PushSymbol("red", here)
	s.PushSymbol("red", here)
	err := s.Evaluate()
	require.Error(err)
	var target *Error
	assert.ErrorAs(t, err, &target)
	assert.Equal(t, KindDuplicateScalarName, target.Kind)
}

func TestEvalMkTupleTypeBuildsComponentType(t *testing.T) {
	s := newTestStack(t)
	require := assert.New(t)
	require.NoError(s.PushOp(BUILD_TYPE, here))
	require.NoError(s.PushOp(MK_TUPLE_TYPE, here))
	s.PushType(s.table.IntType(), here)
	s.PushType(s.table.BoolType(), here)
	require.NoError(s.Evaluate())
	require.NoError(s.Evaluate())
	want := s.table.TupleType([]terms.Type{s.table.IntType(), s.table.BoolType()})
	assert.Equal(t, want, s.ResultType())
}

func TestEvalMkFunTypeSplitsDomainFromTrailingCodomain(t *testing.T) {
	s := newTestStack(t)
	require := assert.New(t)
	require.NoError(s.PushOp(BUILD_TYPE, here))
	require.NoError(s.PushOp(MK_FUN_TYPE, here))
	s.PushType(s.table.IntType(), here)
	s.PushType(s.table.IntType(), here)
	s.PushType(s.table.BoolType(), here)
	require.NoError(s.Evaluate())
	require.NoError(s.Evaluate())
	want := s.table.FunType([]terms.Type{s.table.IntType(), s.table.IntType()}, s.table.BoolType())
	assert.Equal(t, want, s.ResultType())
}

func TestEvalMkAppTypeAppliesMacroToArguments(t *testing.T) {
	s := newTestStack(t)
	require := assert.New(t)
	require.NoError(s.PushOp(BUILD_TYPE, here))
	require.NoError(s.PushOp(MK_APP_TYPE, here))
	s.PushMacro(7, here)
	s.PushType(s.table.IntType(), here)
	require.NoError(s.Evaluate())
	require.NoError(s.Evaluate())
	want := s.table.AppType(7, []terms.Type{s.table.IntType()})
	assert.Equal(t, want, s.ResultType())
}
