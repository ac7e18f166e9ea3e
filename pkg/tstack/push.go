package tstack

import (
	"math/big"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/smtcore/tstack/pkg/terms"
	"github.com/smtcore/tstack/pkg/terms/bvconst"
)

// PushOp pushes an operator at loc: an associative re-push of the same
// opcode folds into the current frame via the multiplicity counter
// instead of opening a new one. BIND is the one opcode that never opens
// an arena scope of its own:
// a bound symbol must outlive the BIND cell's own pop and remain valid
// while the enclosing LET's body is evaluated.
func (s *Stack) PushOp(opcode int32, loc Location) error {
	return s.runProtected(func() { s.pushOp(opcode, loc) })
}

func (s *Stack) pushOp(opcode int32, loc Location) {
	if !s.ops.Valid(opcode) {
		s.fail(KindInvalidOp, loc, "", "opcode %d is not registered", opcode)
	}
	if s.ops.Assoc(opcode) && opcode == s.topOp {
		s.cellAt(s.frame).op.Multiplicity++
		log.Debugf("tstack: fold opcode %d, multiplicity now %d", opcode, s.cellAt(s.frame).op.Multiplicity)
		return
	}
	prev := s.frame
	s.push(opCell(opcode, prev, loc))
	s.frame = s.top()
	s.topOp = opcode
	if opcode != BIND {
		s.arena.PushScope()
	}
	log.Debugf("tstack: open frame for opcode %d at index %d", opcode, s.frame)
}

// PushString pushes a string literal.
func (s *Stack) PushString(text string, loc Location) {
	s.push(stringCell(s.arena.Allocate(text), loc))
}

// PushSymbol pushes a bare symbol, e.g. the name half of a BIND pair.
func (s *Stack) PushSymbol(name string, loc Location) {
	s.push(symbolCell(s.arena.Allocate(name), loc))
}

// PushTermByName resolves name against the registry and pushes the
// resulting term, failing UNDEF_TERM if it is unbound.
func (s *Stack) PushTermByName(name string, loc Location) error {
	return s.runProtected(func() {
		t, ok := s.names.Term(name)
		if !ok {
			s.fail(KindUndefTerm, loc, name, "")
		}
		s.push(termCell(t, loc))
	})
}

// PushTypeByName resolves name against the registry and pushes the
// resulting type, failing UNDEF_TYPE if it is unbound.
func (s *Stack) PushTypeByName(name string, loc Location) error {
	return s.runProtected(func() {
		tau, ok := s.names.Type(name)
		if !ok {
			s.fail(KindUndefType, loc, name, "")
		}
		s.push(typeCell(tau, loc))
	})
}

// PushMacroByName resolves name against the registry and pushes the
// resulting macro identity, failing UNDEF_MACRO if it is unbound.
func (s *Stack) PushMacroByName(name string, loc Location) error {
	return s.runProtected(func() {
		id, ok := s.names.Macro(name)
		if !ok {
			s.fail(KindUndefMacro, loc, name, "")
		}
		s.push(macroCell(id, loc))
	})
}

// PushFreeTermName checks name is not already a defined term and pushes it
// as a symbol, failing TERMNAME_REDEF if it is taken. Used by DEFINE_TERM
// and DECLARE_VAR's name argument.
func (s *Stack) PushFreeTermName(name string, loc Location) error {
	return s.runProtected(func() {
		if _, ok := s.names.Term(name); ok {
			s.fail(KindTermNameRedef, loc, name, "")
		}
		s.PushSymbol(name, loc)
	})
}

// PushFreeTypeName checks name is not already a defined type and pushes it
// as a symbol, failing TYPENAME_REDEF if it is taken.
func (s *Stack) PushFreeTypeName(name string, loc Location) error {
	return s.runProtected(func() {
		if _, ok := s.names.Type(name); ok {
			s.fail(KindTypeNameRedef, loc, name, "")
		}
		s.PushSymbol(name, loc)
	})
}

// PushFreeMacroName checks name is not already a defined macro and pushes
// it as a symbol, failing MACRO_REDEF if it is taken.
func (s *Stack) PushFreeMacroName(name string, loc Location) error {
	return s.runProtected(func() {
		if _, ok := s.names.Macro(name); ok {
			s.fail(KindMacroRedef, loc, name, "")
		}
		s.PushSymbol(name, loc)
	})
}

// PushTrue pushes the Boolean constant true.
func (s *Stack) PushTrue(loc Location) {
	s.push(termCell(s.table.True(), loc))
}

// PushFalse pushes the Boolean constant false.
func (s *Stack) PushFalse(loc Location) {
	s.push(termCell(s.table.False(), loc))
}

// PushBoolType, PushIntType and PushRealType push the corresponding
// primitive type literal.
func (s *Stack) PushBoolType(loc Location) { s.push(typeCell(s.table.BoolType(), loc)) }
func (s *Stack) PushIntType(loc Location)  { s.push(typeCell(s.table.IntType(), loc)) }
func (s *Stack) PushRealType(loc Location) { s.push(typeCell(s.table.RealType(), loc)) }

// PushInteger pushes a machine integer as a unit-denominator rational,
// the carrier coerceInt32 reads back out wherever an argument must be a
// plain integer rather than a general rational.
func (s *Stack) PushInteger(v int32, loc Location) {
	s.push(rationalCell(big.NewRat(int64(v), 1), loc))
}

// PushTerm pushes an already-built term handle.
func (s *Stack) PushTerm(t terms.Term, loc Location) {
	s.push(termCell(t, loc))
}

// PushType pushes an already-built type handle.
func (s *Stack) PushType(tau terms.Type, loc Location) {
	s.push(typeCell(tau, loc))
}

// PushMacro pushes a macro identity directly.
func (s *Stack) PushMacro(id int32, loc Location) {
	s.push(macroCell(id, loc))
}

// PushRational parses text as a decimal integer or a/b fraction and pushes
// the result, failing RATIONAL_FORMAT on a malformed literal and
// DIVIDE_BY_ZERO on a zero denominator. A '.' in text is never accepted
// here; that is PushFloat's job, a distinct parse path with its own
// rounding rules.
func (s *Stack) PushRational(text string, loc Location) error {
	return s.runProtected(func() {
		if strings.Contains(text, ".") {
			s.fail(KindRationalFormat, loc, "", "rational literal %q contains a decimal point", text)
		}
		if idx := strings.IndexByte(text, '/'); idx >= 0 {
			num, den := text[:idx], text[idx+1:]
			n, ok1 := new(big.Int).SetString(num, 10)
			d, ok2 := new(big.Int).SetString(den, 10)
			if !ok1 || !ok2 {
				s.fail(KindRationalFormat, loc, "", "malformed fraction %q", text)
			}
			if d.Sign() == 0 {
				s.fail(KindDivideByZero, loc, "", "zero denominator in %q", text)
			}
			r := new(big.Rat).SetFrac(n, d)
			s.push(rationalCell(r, loc))
			return
		}
		n, ok := new(big.Int).SetString(text, 10)
		if !ok {
			s.fail(KindRationalFormat, loc, "", "malformed integer literal %q", text)
		}
		s.push(rationalCell(new(big.Rat).SetInt(n), loc))
	})
}

// PushFloat parses text as a decimal-point literal (e.g. "12.375") and
// pushes the resulting rational, failing FLOAT_FORMAT on a malformed
// literal. A '/' in text is rejected; fractions go through PushRational.
func (s *Stack) PushFloat(text string, loc Location) error {
	return s.runProtected(func() {
		if strings.Contains(text, "/") {
			s.fail(KindFloatFormat, loc, "", "float literal %q contains a fraction slash", text)
		}
		f, ok := new(big.Float).SetString(text)
		if !ok {
			s.fail(KindFloatFormat, loc, "", "malformed float literal %q", text)
		}
		r := new(big.Rat)
		if _, _, err := ratSetFloatString(r, f, text); err != nil {
			s.fail(KindFloatFormat, loc, "", "malformed float literal %q", text)
		}
		s.push(rationalCell(r, loc))
	})
}

func ratSetFloatString(r *big.Rat, f *big.Float, text string) (*big.Rat, bool, error) {
	dot := strings.IndexByte(text, '.')
	if dot < 0 {
		n, ok := new(big.Int).SetString(text, 10)
		if !ok {
			return nil, false, strconv.ErrSyntax
		}
		r.SetInt(n)
		return r, true, nil
	}
	intPart, fracPart := text[:dot], text[dot+1:]
	combined := intPart + fracPart
	n, ok := new(big.Int).SetString(combined, 10)
	if !ok {
		return nil, false, strconv.ErrSyntax
	}
	den := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(len(fracPart))), nil)
	r.SetFrac(n, den)
	return r, true, nil
}

// PushBVBin parses a string of '0'/'1' digits (MSB first) and pushes the
// resulting bit-vector constant, failing BVBIN_FORMAT on a malformed
// literal.
func (s *Stack) PushBVBin(text string, loc Location) error {
	return s.runProtected(func() {
		v, err := bvconst.FromBinaryString(text)
		if err != nil {
			s.fail(KindBVBinFormat, loc, "", "%v", err)
		}
		s.pushBVConstCell(v, loc)
	})
}

// PushBVHex parses a string of hexadecimal digits and pushes the
// resulting bit-vector constant (bitsize = 4 * len(text), unpadded per the
// Open Question decision), failing BVHEX_FORMAT on a malformed literal.
func (s *Stack) PushBVHex(text string, loc Location) error {
	return s.runProtected(func() {
		v, err := bvconst.FromHexString(text)
		if err != nil {
			s.fail(KindBVHexFormat, loc, "", "%v", err)
		}
		s.pushBVConstCell(v, loc)
	})
}

func (s *Stack) pushBVConstCell(v *bvconst.Value, loc Location) {
	if v.Bitsize <= 64 {
		u, _ := v.Uint64()
		s.push(bvSmallCell(v.Bitsize, u, loc))
		return
	}
	s.push(bvWideCell(v, loc))
}
