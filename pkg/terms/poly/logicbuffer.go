package poly

import (
	"github.com/bits-and-blooms/bitset"
)

// LogicBuffer represents a bit-vector as an array of individual bits, each
// of which is either a Boolean constant or a symbolic term. It backs the
// bitwise bit-vector operators MK_BV_AND/OR/XOR/NAND/NOR/XNOR. It also
// offers per-bit shift, rotate and extract operations, but no evaluator
// calls them: shifts (including constant-amount MK_BV_SHL/LSHR/ASHR),
// rotates, extract, concat, repeat, extend and reduce are built by the
// term table's own constructors instead.
//
// constVal.Test(i) holds the constant value of bit i when symbolic.Test(i)
// is false; when symbolic.Test(i) is true, the bit's value is the term
// named by bits[i] instead.
type LogicBuffer struct {
	Bitsize  uint32
	symbolic *bitset.BitSet
	constVal *bitset.BitSet
	bits     []TermRef
}

// NewLogicBuffer constructs a buffer of the given width with every bit set
// to the constant 0.
func NewLogicBuffer(bitsize uint32) *LogicBuffer {
	b := &LogicBuffer{}
	b.Resize(bitsize)
	return b
}

// Resize clears the buffer to all-zero and sets its width, so it can be
// reused from the pool.
func (b *LogicBuffer) Resize(bitsize uint32) {
	b.Bitsize = bitsize
	b.symbolic = bitset.New(uint(bitsize))
	b.constVal = bitset.New(uint(bitsize))
	b.bits = make([]TermRef, bitsize)
}

// SetConstBit sets bit i to a Boolean constant.
func (b *LogicBuffer) SetConstBit(i uint32, value bool) {
	b.symbolic.Clear(uint(i))
	if value {
		b.constVal.Set(uint(i))
	} else {
		b.constVal.Clear(uint(i))
	}
}

// SetTermBit sets bit i to a symbolic term.
func (b *LogicBuffer) SetTermBit(i uint32, term TermRef) {
	b.symbolic.Set(uint(i))
	b.bits[i] = term
}

// IsSymbolic reports whether bit i is symbolic (not a compile-time
// constant).
func (b *LogicBuffer) IsSymbolic(i uint32) bool {
	return b.symbolic.Test(uint(i))
}

// ConstBit returns the constant value of bit i. The result is meaningful
// only when IsSymbolic(i) is false.
func (b *LogicBuffer) ConstBit(i uint32) bool {
	return b.constVal.Test(uint(i))
}

// TermBit returns the term naming bit i. The result is meaningful only
// when IsSymbolic(i) is true.
func (b *LogicBuffer) TermBit(i uint32) TermRef {
	return b.bits[i]
}

// IsConstant reports whether every bit is a compile-time constant.
func (b *LogicBuffer) IsConstant() bool {
	return b.symbolic.None()
}

// ConstantBits returns the buffer's value as a bool slice, most
// significant bit first. Only meaningful when IsConstant() holds.
func (b *LogicBuffer) ConstantBits() []bool {
	out := make([]bool, b.Bitsize)
	for i := uint32(0); i < b.Bitsize; i++ {
		out[b.Bitsize-1-i] = b.ConstBit(i)
	}
	return out
}

// FromConstantBits loads the buffer from a bool slice, most significant
// bit first.
func (b *LogicBuffer) FromConstantBits(bits []bool) {
	n := uint32(len(bits))
	for i := uint32(0); i < n; i++ {
		b.SetConstBit(i, bits[n-1-i])
	}
}

// ShiftLeft shifts the buffer left by amt bits, filling vacated low bits
// with fill, truncating high bits that shift out. This is the "shift by
// constant amount" operation, handled directly by the logic buffer
// rather than via the term builder.
func (b *LogicBuffer) ShiftLeft(amt uint32, fill bool) {
	n := b.Bitsize
	if amt >= n {
		for i := uint32(0); i < n; i++ {
			b.SetConstBit(i, fill)
		}
		return
	}
	for i := n; i > 0; i-- {
		idx := i - 1
		if idx >= amt {
			b.copyBit(idx, idx-amt)
		} else {
			b.SetConstBit(idx, fill)
		}
	}
}

// ShiftRight shifts the buffer right (logically) by amt bits, filling
// vacated high bits with fill.
func (b *LogicBuffer) ShiftRight(amt uint32, fill bool) {
	n := b.Bitsize
	if amt >= n {
		for i := uint32(0); i < n; i++ {
			b.SetConstBit(i, fill)
		}
		return
	}
	for i := uint32(0); i < n; i++ {
		src := i + amt
		if src < n {
			b.copyBit(i, src)
		} else {
			b.SetConstBit(i, fill)
		}
	}
}

// RotateLeft rotates the buffer left by amt bits, 0 <= amt <= Bitsize.
func (b *LogicBuffer) RotateLeft(amt uint32) {
	n := b.Bitsize
	if n == 0 || amt == 0 || amt == n {
		return
	}
	amt %= n
	saved := b.snapshot()
	for i := uint32(0); i < n; i++ {
		src := (i + n - amt) % n
		b.restoreBit(i, saved, src)
	}
}

// RotateRight rotates the buffer right by amt bits, 0 <= amt <= Bitsize.
func (b *LogicBuffer) RotateRight(amt uint32) {
	n := b.Bitsize
	if n == 0 {
		return
	}
	b.RotateLeft(n - amt%n)
}

type bitSnapshot struct {
	symbolic []bool
	constVal []bool
	terms    []TermRef
}

func (b *LogicBuffer) snapshot() bitSnapshot {
	s := bitSnapshot{
		symbolic: make([]bool, b.Bitsize),
		constVal: make([]bool, b.Bitsize),
		terms:    make([]TermRef, b.Bitsize),
	}
	for i := uint32(0); i < b.Bitsize; i++ {
		s.symbolic[i] = b.IsSymbolic(i)
		s.constVal[i] = b.ConstBit(i)
		s.terms[i] = b.bits[i]
	}
	return s
}

func (b *LogicBuffer) restoreBit(dst uint32, s bitSnapshot, src uint32) {
	if s.symbolic[src] {
		b.SetTermBit(dst, s.terms[src])
	} else {
		b.SetConstBit(dst, s.constVal[src])
	}
}

func (b *LogicBuffer) copyBit(dst, src uint32) {
	if b.IsSymbolic(src) {
		b.SetTermBit(dst, b.bits[src])
	} else {
		b.SetConstBit(dst, b.ConstBit(src))
	}
}

// Extract returns a new buffer holding bits [low, high] of b (inclusive).
func (b *LogicBuffer) Extract(high, low uint32) *LogicBuffer {
	out := NewLogicBuffer(high - low + 1)
	for i := uint32(0); i+low <= high; i++ {
		out.copyFrom(i, b, low+i)
	}
	return out
}

func (out *LogicBuffer) copyFrom(dst uint32, src *LogicBuffer, srcIdx uint32) {
	if src.IsSymbolic(srcIdx) {
		out.SetTermBit(dst, src.bits[srcIdx])
	} else {
		out.SetConstBit(dst, src.ConstBit(srcIdx))
	}
}

// Concat concatenates buffers high-to-low: parts[0] becomes the
// most-significant bits of the result.
func Concat(parts ...*LogicBuffer) *LogicBuffer {
	total := uint32(0)
	for _, p := range parts {
		total += p.Bitsize
	}
	out := NewLogicBuffer(total)
	pos := total
	for _, p := range parts {
		for i := uint32(0); i < p.Bitsize; i++ {
			pos--
			out.copyFrom(pos, p, p.Bitsize-1-i)
		}
	}
	return out
}

// Not complements every bit of b in place.
func (b *LogicBuffer) Not(negate func(TermRef) TermRef) {
	for i := uint32(0); i < b.Bitsize; i++ {
		if b.IsSymbolic(i) {
			b.SetTermBit(i, negate(b.bits[i]))
		} else {
			b.SetConstBit(i, !b.ConstBit(i))
		}
	}
}
