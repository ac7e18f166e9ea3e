package tstack

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckArgCountPasses(t *testing.T) {
	s := newTestStack(t)
	assert.NotPanics(t, func() {
		checkArgCount(s, 2, 2)
	})
}

func TestCheckArgCountFails(t *testing.T) {
	s := newTestStack(t)
	err := s.runProtected(func() {
		checkArgCount(s, 1, 2)
	})
	assert.Error(t, err)
}

func TestCheckArgCountAtLeastFails(t *testing.T) {
	s := newTestStack(t)
	err := s.runProtected(func() {
		checkArgCountAtLeast(s, 0, 1)
	})
	assert.Error(t, err)
}

func TestCheckArgCountRange(t *testing.T) {
	s := newTestStack(t)
	assert.NotPanics(t, func() {
		checkArgCountRange(s, 2, 1, 3)
	})
	err := s.runProtected(func() {
		checkArgCountRange(s, 4, 1, 3)
	})
	assert.Error(t, err)
}
