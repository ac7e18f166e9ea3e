// Package bvconst implements fixed-width bit-vector constant arithmetic
// backed by arbitrary-precision integers.  It is the bignum collaborator
// that the term-stack core treats as external: the core never manipulates
// words directly, it only calls into this package once an argument has
// been coerced to a constant.
package bvconst

import (
	"fmt"
	"math/big"
	"strings"
)

// Value is a bit-vector constant of a fixed width.  The backing integer is
// always kept normalized to the half-open range [0, 2^Bitsize).
type Value struct {
	Bitsize uint32
	bits    *big.Int
}

// NewFromBigInt constructs a constant of the given width, reducing v modulo
// 2^bitsize (negative values wrap around, matching two's-complement
// truncation).
func NewFromBigInt(bitsize uint32, v *big.Int) *Value {
	r := &Value{Bitsize: bitsize, bits: new(big.Int)}
	r.bits.Set(v)
	r.normalize()
	return r
}

// NewFromUint64 constructs a constant of the given width (<= 64) from a
// native value, truncating any bits above bitsize.
func NewFromUint64(bitsize uint32, v uint64) *Value {
	return NewFromBigInt(bitsize, new(big.Int).SetUint64(v))
}

// Zero constructs the zero constant of the given width.
func Zero(bitsize uint32) *Value {
	return NewFromBigInt(bitsize, big.NewInt(0))
}

// FromBinaryString parses a string of '0'/'1' characters (most significant
// bit first, no prefix) into a constant whose width equals the string's
// length.  Returns an error if the string is empty or contains a character
// other than '0' or '1'.
func FromBinaryString(s string) (*Value, error) {
	if len(s) == 0 {
		return nil, fmt.Errorf("bvconst: empty binary literal")
	}
	bits := new(big.Int)
	for _, c := range s {
		var bit uint
		switch c {
		case '0':
			bit = 0
		case '1':
			bit = 1
		default:
			return nil, fmt.Errorf("bvconst: invalid binary digit %q", c)
		}
		bits.Lsh(bits, 1)
		if bit == 1 {
			bits.SetBit(bits, 0, 1)
		}
	}
	return NewFromBigInt(uint32(len(s)), bits), nil
}

// FromHexString parses a string of hexadecimal digits (no prefix) into a
// constant whose width is 4 * len(s): the core does not pad
// non-multiple-of-four widths itself.
func FromHexString(s string) (*Value, error) {
	if len(s) == 0 {
		return nil, fmt.Errorf("bvconst: empty hex literal")
	}
	bits, ok := new(big.Int).SetString(s, 16)
	if !ok {
		return nil, fmt.Errorf("bvconst: invalid hex literal %q", s)
	}
	return NewFromBigInt(uint32(4*len(s)), bits), nil
}

func (v *Value) normalize() {
	mask := new(big.Int).Lsh(big.NewInt(1), uint(v.Bitsize))
	mask.Sub(mask, big.NewInt(1))
	v.bits.And(v.bits, mask)
}

// BigInt returns the unsigned value as a big.Int; the caller must not
// mutate the result.
func (v *Value) BigInt() *big.Int {
	return v.bits
}

// Uint64 returns the value truncated to 64 bits along with whether Bitsize
// <= 64 (i.e. whether the truncation is lossless).
func (v *Value) Uint64() (uint64, bool) {
	return v.bits.Uint64(), v.Bitsize <= 64
}

// IsZero reports whether this constant is the all-zero bit pattern.
func (v *Value) IsZero() bool {
	return v.bits.Sign() == 0
}

// IsAllOnes reports whether this constant has every bit set.
func (v *Value) IsAllOnes() bool {
	ones := new(big.Int).Lsh(big.NewInt(1), uint(v.Bitsize))
	ones.Sub(ones, big.NewInt(1))
	return v.bits.Cmp(ones) == 0
}

// Equal reports whether a and b denote the same bit pattern at the same
// width.
func Equal(a, b *Value) bool {
	return a.Bitsize == b.Bitsize && a.bits.Cmp(b.bits) == 0
}

func sameWidth(a, b *Value) error {
	if a.Bitsize != b.Bitsize {
		return fmt.Errorf("bvconst: incompatible widths %d and %d", a.Bitsize, b.Bitsize)
	}
	return nil
}

// Add returns a + b, truncated to the common width.
func Add(a, b *Value) (*Value, error) {
	if err := sameWidth(a, b); err != nil {
		return nil, err
	}
	return NewFromBigInt(a.Bitsize, new(big.Int).Add(a.bits, b.bits)), nil
}

// Sub returns a - b, truncated to the common width.
func Sub(a, b *Value) (*Value, error) {
	if err := sameWidth(a, b); err != nil {
		return nil, err
	}
	return NewFromBigInt(a.Bitsize, new(big.Int).Sub(a.bits, b.bits)), nil
}

// Mul returns a * b, truncated to the common width.
func Mul(a, b *Value) (*Value, error) {
	if err := sameWidth(a, b); err != nil {
		return nil, err
	}
	return NewFromBigInt(a.Bitsize, new(big.Int).Mul(a.bits, b.bits)), nil
}

// Neg returns the two's-complement negation of a.
func Neg(a *Value) *Value {
	return NewFromBigInt(a.Bitsize, new(big.Int).Neg(a.bits))
}

// Pow returns a raised to the non-negative power k, truncated to a's
// width.  The caller is responsible for rejecting negative exponents
// before calling Pow.
func Pow(a *Value, k uint64) *Value {
	r := big.NewInt(1)
	base := new(big.Int).Set(a.bits)
	mask := new(big.Int).Lsh(big.NewInt(1), uint(a.Bitsize))
	mask.Sub(mask, big.NewInt(1))
	one := big.NewInt(1)
	mask.Add(mask, one)
	for ; k > 0; k >>= 1 {
		if k&1 == 1 {
			r.Mul(r, base)
			r.Mod(r, mask)
		}
		base.Mul(base, base)
		base.Mod(base, mask)
	}
	return NewFromBigInt(a.Bitsize, r)
}

func bitwise(a, b *Value, f func(x, y *big.Int) *big.Int) (*Value, error) {
	if err := sameWidth(a, b); err != nil {
		return nil, err
	}
	return NewFromBigInt(a.Bitsize, f(a.bits, b.bits)), nil
}

// And returns the bitwise AND of a and b.
func And(a, b *Value) (*Value, error) {
	return bitwise(a, b, func(x, y *big.Int) *big.Int { return new(big.Int).And(x, y) })
}

// Or returns the bitwise OR of a and b.
func Or(a, b *Value) (*Value, error) {
	return bitwise(a, b, func(x, y *big.Int) *big.Int { return new(big.Int).Or(x, y) })
}

// Xor returns the bitwise XOR of a and b.
func Xor(a, b *Value) (*Value, error) {
	return bitwise(a, b, func(x, y *big.Int) *big.Int { return new(big.Int).Xor(x, y) })
}

// Not returns the bitwise complement of a.
func Not(a *Value) *Value {
	return NewFromBigInt(a.Bitsize, new(big.Int).Not(a.bits))
}

// Nand returns the bitwise NAND of a and b.
func Nand(a, b *Value) (*Value, error) {
	r, err := And(a, b)
	if err != nil {
		return nil, err
	}
	return Not(r), nil
}

// Nor returns the bitwise NOR of a and b.
func Nor(a, b *Value) (*Value, error) {
	r, err := Or(a, b)
	if err != nil {
		return nil, err
	}
	return Not(r), nil
}

// Xnor returns the bitwise XNOR of a and b.
func Xnor(a, b *Value) (*Value, error) {
	r, err := Xor(a, b)
	if err != nil {
		return nil, err
	}
	return Not(r), nil
}

// ShiftLeft0 shifts a left by amt bits, padding with 0 bits, truncated to
// a's width. Shifting by >= Bitsize yields zero.
func ShiftLeft0(a *Value, amt uint32) *Value {
	if amt >= a.Bitsize {
		return Zero(a.Bitsize)
	}
	return NewFromBigInt(a.Bitsize, new(big.Int).Lsh(a.bits, uint(amt)))
}

// ShiftLeft1 shifts a left by amt bits, padding with 1 bits.
func ShiftLeft1(a *Value, amt uint32) *Value {
	shifted := ShiftLeft0(a, amt)
	if amt == 0 {
		return shifted
	}
	pad := new(big.Int).Lsh(big.NewInt(1), uint(min32(amt, a.Bitsize)))
	pad.Sub(pad, big.NewInt(1))
	return NewFromBigInt(a.Bitsize, new(big.Int).Or(shifted.bits, pad))
}

// ShiftRight0 shifts a right (logically) by amt bits, padding with 0 bits.
func ShiftRight0(a *Value, amt uint32) *Value {
	if amt >= a.Bitsize {
		return Zero(a.Bitsize)
	}
	return NewFromBigInt(a.Bitsize, new(big.Int).Rsh(a.bits, uint(amt)))
}

// ShiftRight1 shifts a right (logically) by amt bits, padding with 1 bits.
func ShiftRight1(a *Value, amt uint32) *Value {
	if amt >= a.Bitsize {
		return NewFromBigInt(a.Bitsize, allOnes(a.Bitsize))
	}
	shifted := new(big.Int).Rsh(a.bits, uint(amt))
	pad := new(big.Int).Lsh(big.NewInt(1), uint(a.Bitsize))
	pad.Sub(pad, new(big.Int).Lsh(big.NewInt(1), uint(a.Bitsize-amt)))
	return NewFromBigInt(a.Bitsize, new(big.Int).Or(shifted, pad))
}

// AShiftRight shifts a right arithmetically (sign-extending) by amt bits.
func AShiftRight(a *Value, amt uint32) *Value {
	if a.SignBit() {
		return ShiftRight1(a, amt)
	}
	return ShiftRight0(a, amt)
}

// RotateLeft rotates a left by amt bits, 0 <= amt <= Bitsize (amt ==
// Bitsize is the identity rotation).
func RotateLeft(a *Value, amt uint32) (*Value, error) {
	if amt > a.Bitsize {
		return nil, fmt.Errorf("bvconst: rotate amount %d exceeds width %d", amt, a.Bitsize)
	}
	if amt == 0 || amt == a.Bitsize {
		return NewFromBigInt(a.Bitsize, a.bits), nil
	}
	left := new(big.Int).Lsh(a.bits, uint(amt))
	right := new(big.Int).Rsh(a.bits, uint(a.Bitsize-amt))
	return NewFromBigInt(a.Bitsize, new(big.Int).Or(left, right)), nil
}

// RotateRight rotates a right by amt bits, 0 <= amt <= Bitsize.
func RotateRight(a *Value, amt uint32) (*Value, error) {
	if amt > a.Bitsize {
		return nil, fmt.Errorf("bvconst: rotate amount %d exceeds width %d", amt, a.Bitsize)
	}
	if amt == 0 || amt == a.Bitsize {
		return NewFromBigInt(a.Bitsize, a.bits), nil
	}
	return RotateLeft(a, a.Bitsize-amt)
}

// Extract returns bits [low, high] of a (inclusive, low <= high < a.Bitsize)
// as a constant of width high-low+1.
func Extract(a *Value, high, low uint32) (*Value, error) {
	if low > high || high >= a.Bitsize {
		return nil, fmt.Errorf("bvconst: invalid extract [%d:%d] of width %d", high, low, a.Bitsize)
	}
	shifted := new(big.Int).Rsh(a.bits, uint(low))
	return NewFromBigInt(high-low+1, shifted), nil
}

// Concat concatenates constants high-to-low: the first argument becomes the
// most-significant bits of the result.
func Concat(parts ...*Value) *Value {
	total := uint32(0)
	for _, p := range parts {
		total += p.Bitsize
	}
	acc := new(big.Int)
	for _, p := range parts {
		acc.Lsh(acc, uint(p.Bitsize))
		acc.Or(acc, p.bits)
	}
	return NewFromBigInt(total, acc)
}

// Repeat concatenates n copies of a.
func Repeat(a *Value, n uint32) (*Value, error) {
	if n == 0 {
		return nil, fmt.Errorf("bvconst: repeat count must be positive")
	}
	parts := make([]*Value, n)
	for i := range parts {
		parts[i] = a
	}
	return Concat(parts...), nil
}

// SignExtend extends a by n bits, replicating its sign bit.
func SignExtend(a *Value, n uint32) *Value {
	if n == 0 {
		return NewFromBigInt(a.Bitsize, a.bits)
	}
	if a.SignBit() {
		pad := allOnes(n)
		return Concat(NewFromBigInt(n, pad), a)
	}
	return Concat(Zero(n), a)
}

// ZeroExtend extends a by n zero bits.
func ZeroExtend(a *Value, n uint32) *Value {
	if n == 0 {
		return NewFromBigInt(a.Bitsize, a.bits)
	}
	return Concat(Zero(n), a)
}

// RedAnd reduces a's bits with AND, returning a 1-bit constant.
func RedAnd(a *Value) *Value {
	if a.IsAllOnes() {
		return NewFromUint64(1, 1)
	}
	return Zero(1)
}

// RedOr reduces a's bits with OR, returning a 1-bit constant.
func RedOr(a *Value) *Value {
	if a.IsZero() {
		return Zero(1)
	}
	return NewFromUint64(1, 1)
}

// Comp returns a 1-bit constant: 1 if a == b bitwise, 0 otherwise.
func Comp(a, b *Value) (*Value, error) {
	if err := sameWidth(a, b); err != nil {
		return nil, err
	}
	if a.bits.Cmp(b.bits) == 0 {
		return NewFromUint64(1, 1), nil
	}
	return Zero(1), nil
}

// SignBit reports whether a's most-significant bit is set.
func (v *Value) SignBit() bool {
	return v.bits.Bit(int(v.Bitsize) - 1) == 1
}

// Signed returns a's value interpreted as a two's-complement signed
// integer.
func (v *Value) Signed() *big.Int {
	if !v.SignBit() {
		return new(big.Int).Set(v.bits)
	}
	full := new(big.Int).Lsh(big.NewInt(1), uint(v.Bitsize))
	return new(big.Int).Sub(v.bits, full)
}

// CompareUnsigned returns -1, 0 or 1 comparing a and b as unsigned
// integers of the same width.
func CompareUnsigned(a, b *Value) (int, error) {
	if err := sameWidth(a, b); err != nil {
		return 0, err
	}
	return a.bits.Cmp(b.bits), nil
}

// CompareSigned returns -1, 0 or 1 comparing a and b as two's-complement
// signed integers of the same width.
func CompareSigned(a, b *Value) (int, error) {
	if err := sameWidth(a, b); err != nil {
		return 0, err
	}
	return a.Signed().Cmp(b.Signed()), nil
}

// Div returns the unsigned quotient of a / b. Following SMT-LIB's
// bit-vector division semantics, division by zero returns the
// all-ones constant rather than an error.
func Div(a, b *Value) (*Value, error) {
	if err := sameWidth(a, b); err != nil {
		return nil, err
	}
	if b.IsZero() {
		return NewFromBigInt(a.Bitsize, allOnes(a.Bitsize)), nil
	}
	return NewFromBigInt(a.Bitsize, new(big.Int).Div(a.bits, b.bits)), nil
}

// Rem returns the unsigned remainder of a / b. Division by zero returns a.
func Rem(a, b *Value) (*Value, error) {
	if err := sameWidth(a, b); err != nil {
		return nil, err
	}
	if b.IsZero() {
		return NewFromBigInt(a.Bitsize, a.bits), nil
	}
	return NewFromBigInt(a.Bitsize, new(big.Int).Mod(a.bits, b.bits)), nil
}

// SDiv returns the signed (truncating) quotient of a / b.
func SDiv(a, b *Value) (*Value, error) {
	if err := sameWidth(a, b); err != nil {
		return nil, err
	}
	if b.IsZero() {
		if a.SignBit() {
			return NewFromUint64(a.Bitsize, 1), nil
		}
		return NewFromBigInt(a.Bitsize, allOnes(a.Bitsize)), nil
	}
	q := new(big.Int).Quo(a.Signed(), b.Signed())
	return NewFromBigInt(a.Bitsize, q), nil
}

// SRem returns the signed remainder of a / b (sign follows the dividend).
func SRem(a, b *Value) (*Value, error) {
	if err := sameWidth(a, b); err != nil {
		return nil, err
	}
	if b.IsZero() {
		return NewFromBigInt(a.Bitsize, a.bits), nil
	}
	r := new(big.Int).Rem(a.Signed(), b.Signed())
	return NewFromBigInt(a.Bitsize, r), nil
}

// SMod returns the signed modulus of a / b (sign follows the divisor).
func SMod(a, b *Value) (*Value, error) {
	if err := sameWidth(a, b); err != nil {
		return nil, err
	}
	if b.IsZero() {
		return NewFromBigInt(a.Bitsize, a.bits), nil
	}
	as, bs := a.Signed(), b.Signed()
	m := new(big.Int).Mod(as, bs)
	if m.Sign() != 0 && (m.Sign() < 0) != (bs.Sign() < 0) {
		m.Add(m, bs)
	}
	return NewFromBigInt(a.Bitsize, m), nil
}

func allOnes(bitsize uint32) *big.Int {
	ones := new(big.Int).Lsh(big.NewInt(1), uint(bitsize))
	return ones.Sub(ones, big.NewInt(1))
}

func min32(a, b uint32) uint32 {
	if a < b {
		return a
	}
	return b
}

// String renders the constant as a binary literal, most significant bit
// first, e.g. "0b0100".
func (v *Value) String() string {
	var sb strings.Builder
	sb.WriteString("0b")
	for i := int(v.Bitsize) - 1; i >= 0; i-- {
		if v.bits.Bit(i) == 1 {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}
