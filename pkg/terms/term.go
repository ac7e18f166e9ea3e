// Package terms implements the hash-consed term and type table that the
// term-stack core treats as external infrastructure: given a
// fully-coerced set of arguments, the stack asks this package to produce a
// canonical term or type handle, and never inspects a handle's internal
// representation itself.
package terms

import (
	"fmt"
	"math/big"

	"github.com/smtcore/tstack/pkg/terms/bvconst"
)

// Term is an opaque handle into a Table. The zero value, NullTerm, never
// denotes a real term.
type Term int32

// NullTerm is the invalid term handle.
const NullTerm Term = 0

// Type is an opaque handle into a Table. The zero value, NullType, never
// denotes a real type.
type Type int32

// NullType is the invalid type handle.
const NullType Type = 0

// Kind identifies the syntactic shape of a term node.
type Kind uint8

// Term node kinds. Boolean and core term constructors come first, followed
// by linear arithmetic, then bit-vector arithmetic, then bit-vector logic.
const (
	KindTrue Kind = iota
	KindFalse
	KindUninterpreted
	KindNot
	KindOr
	KindAnd
	KindXor
	KindIff
	KindImplies
	KindIte
	KindEq
	KindDistinct
	KindApply
	KindTuple
	KindSelect
	KindTupleUpdate
	KindUpdate
	KindForall
	KindExists
	KindLambda
	KindRational
	KindAdd
	KindSub
	KindNeg
	KindMul
	KindDivision
	KindPow
	KindGe
	KindGt
	KindLe
	KindLt
	KindBVConst
	KindBVAdd
	KindBVSub
	KindBVNeg
	KindBVMul
	KindBVPow
	KindBVDiv
	KindBVRem
	KindBVSDiv
	KindBVSRem
	KindBVSMod
	KindBVNot
	KindBVAnd
	KindBVOr
	KindBVXor
	KindBVNand
	KindBVNor
	KindBVXnor
	KindBVShiftLeft0
	KindBVShiftLeft1
	KindBVShiftRight0
	KindBVShiftRight1
	KindBVAShiftRight
	KindBVRotateLeft
	KindBVRotateRight
	KindBVShl
	KindBVLshr
	KindBVAshr
	KindBVExtract
	KindBVConcat
	KindBVRepeat
	KindBVSignExtend
	KindBVZeroExtend
	KindBVRedAnd
	KindBVRedOr
	KindBVComp
	KindBVGe
	KindBVGt
	KindBVLe
	KindBVLt
	KindBVSge
	KindBVSgt
	KindBVSle
	KindBVSlt
)

// node is the single internal representation for every term shape. Not
// every field is meaningful for every Kind; see the comment on each
// constructor function for which fields it populates. Using one struct
// (rather than one Go type per Kind) keeps hash-consing, which needs a
// uniform canonical key across all shapes, a single function instead of
// a big type switch duplicated at every call site.
type node struct {
	kind     Kind
	children []Term
	name     string
	rat      *big.Rat
	bv       *bvconst.Value
	aux      int32
	aux2     int32
	typ      Type
}

func (n *node) key() string {
	return fmt.Sprintf("%d|%v|%s|%s|%s|%d|%d|%d",
		n.kind, n.children, n.name, ratKey(n.rat), bvKey(n.bv), n.aux, n.aux2, n.typ)
}

func ratKey(r *big.Rat) string {
	if r == nil {
		return ""
	}
	return r.RatString()
}

func bvKey(v *bvconst.Value) string {
	if v == nil {
		return ""
	}
	return fmt.Sprintf("%d:%s", v.Bitsize, v.BigInt().String())
}
