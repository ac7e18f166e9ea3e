package main

import (
	"fmt"

	"github.com/segmentio/encoding/json"
	"github.com/smtcore/tstack/pkg/tstack"
)

// step is one instruction in a push/eval script. Exactly one field is
// expected to be set per step; which one determines which Stack method
// the step drives. This mirrors the original's token-at-a-time command
// stream, flattened into JSON since there is no lexer/grammar driver in
// this repository's scope.
type step struct {
	Op            string `json:"op,omitempty"`
	Eval          bool   `json:"eval,omitempty"`
	Reset         bool   `json:"reset,omitempty"`
	Symbol        string `json:"symbol,omitempty"`
	String        string `json:"string,omitempty"`
	Int           *int32 `json:"int,omitempty"`
	Macro         *int32 `json:"macro,omitempty"`
	Rational      string `json:"rational,omitempty"`
	Float         string `json:"float,omitempty"`
	BVBin         string `json:"bv_bin,omitempty"`
	BVHex         string `json:"bv_hex,omitempty"`
	True          bool   `json:"true,omitempty"`
	False         bool   `json:"false,omitempty"`
	BoolType      bool   `json:"bool_type,omitempty"`
	IntType       bool   `json:"int_type,omitempty"`
	RealType      bool   `json:"real_type,omitempty"`
	TermByName    string `json:"term_by_name,omitempty"`
	TypeByName    string `json:"type_by_name,omitempty"`
	MacroByName   string `json:"macro_by_name,omitempty"`
	FreeTermName  string `json:"free_term_name,omitempty"`
	FreeTypeName  string `json:"free_type_name,omitempty"`
	FreeMacroName string `json:"free_macro_name,omitempty"`
}

// parseScript decodes a push/eval script from bytes.
func parseScript(data []byte) ([]step, error) {
	var steps []step
	if err := json.Unmarshal(data, &steps); err != nil {
		return nil, fmt.Errorf("malformed script: %w", err)
	}
	return steps, nil
}

// runStep drives one script step against s, assigning it the source
// location of its own position in the script (scripts carry no finer
// grained position information than "which step").
func runStep(s *tstack.Stack, i int, st step) error {
	loc := tstack.Location{Line: uint32(i + 1), Column: 1}
	switch {
	case st.Op != "":
		opcode, ok := tstack.OpcodeByName(st.Op)
		if !ok {
			return fmt.Errorf("step %d: unknown opcode %q", i+1, st.Op)
		}
		return s.PushOp(opcode, loc)
	case st.Eval:
		return s.Evaluate()
	case st.Reset:
		s.Reset()
		return nil
	case st.Symbol != "":
		s.PushSymbol(st.Symbol, loc)
		return nil
	case st.String != "":
		s.PushString(st.String, loc)
		return nil
	case st.Int != nil:
		s.PushInteger(*st.Int, loc)
		return nil
	case st.Macro != nil:
		s.PushMacro(*st.Macro, loc)
		return nil
	case st.Rational != "":
		return s.PushRational(st.Rational, loc)
	case st.Float != "":
		return s.PushFloat(st.Float, loc)
	case st.BVBin != "":
		return s.PushBVBin(st.BVBin, loc)
	case st.BVHex != "":
		return s.PushBVHex(st.BVHex, loc)
	case st.True:
		s.PushTrue(loc)
		return nil
	case st.False:
		s.PushFalse(loc)
		return nil
	case st.BoolType:
		s.PushBoolType(loc)
		return nil
	case st.IntType:
		s.PushIntType(loc)
		return nil
	case st.RealType:
		s.PushRealType(loc)
		return nil
	case st.TermByName != "":
		return s.PushTermByName(st.TermByName, loc)
	case st.TypeByName != "":
		return s.PushTypeByName(st.TypeByName, loc)
	case st.MacroByName != "":
		return s.PushMacroByName(st.MacroByName, loc)
	case st.FreeTermName != "":
		return s.PushFreeTermName(st.FreeTermName, loc)
	case st.FreeTypeName != "":
		return s.PushFreeTypeName(st.FreeTypeName, loc)
	case st.FreeMacroName != "":
		return s.PushFreeMacroName(st.FreeMacroName, loc)
	default:
		return fmt.Errorf("step %d: empty instruction", i+1)
	}
}
