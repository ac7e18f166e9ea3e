package tstack

import (
	"testing"

	"github.com/smtcore/tstack/pkg/terms"
	"github.com/smtcore/tstack/pkg/tnames"
)

// newTestStack builds a fresh Stack over a fresh term table, operator
// table and name registry: the fixture every test in this package starts
// from.
func newTestStack(t *testing.T) *Stack {
	t.Helper()
	table := terms.NewTable()
	ops := NewOpTable(numPredefinedOpsForTest())
	names := tnames.NewRegistry()
	return New(ops, table, names)
}

// numPredefinedOpsForTest mirrors the capacity callers would pass to
// NewOpTable in production; Register grows the table on demand anyway, so
// this only matters for avoiding a reallocation during construction.
func numPredefinedOpsForTest() uint32 {
	return uint32(numPredefinedOps)
}

var here = Location{Line: 1, Column: 1}
