// Package tstack implements the operator-evaluation stack: a push-down
// container that accumulates typed literals, symbols and partially built
// expressions, then applies registered constructors to produce canonical
// term and type handles from the term/type table in pkg/terms.
package tstack

import (
	"math/big"

	"github.com/smtcore/tstack/pkg/terms"
	"github.com/smtcore/tstack/pkg/terms/bvconst"
)

// Location identifies a source position for diagnostics.
type Location struct {
	Line, Column uint32
}

// Tag identifies which payload variant a Cell carries.
type Tag uint8

const (
	TagNone Tag = iota
	TagOp
	TagSymbol
	TagString
	TagBVSmall
	TagBVWide
	TagRational
	TagTerm
	TagType
	TagMacro
	TagTermBinding
)

// opPayload is the frame-marker payload: opcode identity, the associative
// multiplicity counter, and the chain link to the enclosing frame.
type opPayload struct {
	Opcode       int32
	Multiplicity uint32
	Prev         uint32
}

// bvSmallPayload carries a <=64-bit bit-vector constant inline, avoiding a
// pool buffer for the common case.
type bvSmallPayload struct {
	Bitsize uint32
	Value   uint64
}

// termBindingPayload is produced by BIND: a name together with the term it
// was bound to, plus whatever Registry.BindTerm displaced, so the frame
// can drive Registry.UnbindTerm with the right LIFO-restore arguments on
// pop.
type termBindingPayload struct {
	Symbol   string
	Term     terms.Term
	Prior    terms.Term
	HadPrior bool
}

// Cell is one entry in the stack's value array.
type Cell struct {
	Tag      Tag
	Loc      Location
	op       opPayload
	symbol   string
	bvSmall  bvSmallPayload
	bvWide   *bvconst.Value
	rational *big.Rat
	term     terms.Term
	typ      terms.Type
	macro    int32
	termBind termBindingPayload
}

func opCell(opcode int32, prev uint32, loc Location) Cell {
	return Cell{Tag: TagOp, Loc: loc, op: opPayload{Opcode: opcode, Prev: prev}}
}

func symbolCell(s string, loc Location) Cell {
	return Cell{Tag: TagSymbol, Loc: loc, symbol: s}
}

func stringCell(s string, loc Location) Cell {
	return Cell{Tag: TagString, Loc: loc, symbol: s}
}

func bvSmallCell(bitsize uint32, value uint64, loc Location) Cell {
	return Cell{Tag: TagBVSmall, Loc: loc, bvSmall: bvSmallPayload{Bitsize: bitsize, Value: value}}
}

func bvWideCell(v *bvconst.Value, loc Location) Cell {
	return Cell{Tag: TagBVWide, Loc: loc, bvWide: v}
}

func rationalCell(r *big.Rat, loc Location) Cell {
	return Cell{Tag: TagRational, Loc: loc, rational: r}
}

func termCell(t terms.Term, loc Location) Cell {
	return Cell{Tag: TagTerm, Loc: loc, term: t}
}

func typeCell(tau terms.Type, loc Location) Cell {
	return Cell{Tag: TagType, Loc: loc, typ: tau}
}

func macroCell(id int32, loc Location) Cell {
	return Cell{Tag: TagMacro, Loc: loc, macro: id}
}

func termBindingCell(symbol string, t terms.Term, prior terms.Term, hadPrior bool, loc Location) Cell {
	return Cell{Tag: TagTermBinding, Loc: loc, termBind: termBindingPayload{Symbol: symbol, Term: t, Prior: prior, HadPrior: hadPrior}}
}

// bitsizeOf returns the bit-vector width carried by a cell, if any.
func (c *Cell) bitsizeOf() (uint32, bool) {
	switch c.Tag {
	case TagBVSmall:
		return c.bvSmall.Bitsize, true
	case TagBVWide:
		return c.bvWide.Bitsize, true
	default:
		return 0, false
	}
}
