package tstack

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorStringIncludesLocationAndKind(t *testing.T) {
	e := newError(KindDivideByZero, Location{Line: 3, Column: 7}, MK_DIVISION, "", "")
	assert.Contains(t, e.Error(), "3:7")
	assert.Contains(t, e.Error(), "DIVIDE_BY_ZERO")
}

func TestErrorStringIncludesSymbolAndDetail(t *testing.T) {
	e := newError(KindTermNameRedef, here, DEFINE_TERM, "x", "already bound")
	msg := e.Error()
	assert.Contains(t, msg, `"x"`)
	assert.Contains(t, msg, "already bound")
}

func TestRunProtectedRecoversFail(t *testing.T) {
	s := newTestStack(t)
	err := s.runProtected(func() {
		s.fail(KindInternal, here, "", "boom")
	})
	assert.Error(t, err)
	var target *Error
	assert.ErrorAs(t, err, &target)
	assert.Equal(t, KindInternal, target.Kind)
}

func TestRunProtectedPropagatesForeignPanic(t *testing.T) {
	s := newTestStack(t)
	assert.Panics(t, func() {
		_ = s.runProtected(func() {
			panic("not a *Error")
		})
	})
}

func TestKindStringUnknown(t *testing.T) {
	assert.Equal(t, "UNKNOWN", Kind(255).String())
}
