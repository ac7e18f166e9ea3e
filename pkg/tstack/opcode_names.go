package tstack

// opcodeNames maps every predefined opcode to the name a push/eval script
// (or any other textual front end) refers to it by. Built once from
// opcodeIDs so the two can never drift apart.
var opcodeNames = invertOpcodeIDs()

// opcodeIDs maps a script-level opcode name to its numeric identity.
// BUILD_TERM and BUILD_TYPE are included even though they are usually
// driven implicitly by a command-terminal helper, since a script replaying
// a raw push/eval trace still needs to name them explicitly.
var opcodeIDs = map[string]int32{
	"DEFINE_TYPE":         DEFINE_TYPE,
	"DEFINE_TERM":         DEFINE_TERM,
	"BIND":                BIND,
	"LET":                 LET,
	"DECLARE_VAR":         DECLARE_VAR,
	"DECLARE_TYPE_VAR":    DECLARE_TYPE_VAR,
	"MK_BV_TYPE":          MK_BV_TYPE,
	"MK_SCALAR_TYPE":      MK_SCALAR_TYPE,
	"MK_TUPLE_TYPE":       MK_TUPLE_TYPE,
	"MK_FUN_TYPE":         MK_FUN_TYPE,
	"MK_APP_TYPE":         MK_APP_TYPE,
	"MK_NOT":              MK_NOT,
	"MK_OR":               MK_OR,
	"MK_AND":              MK_AND,
	"MK_XOR":              MK_XOR,
	"MK_IFF":              MK_IFF,
	"MK_IMPLIES":          MK_IMPLIES,
	"MK_ITE":              MK_ITE,
	"MK_EQ":               MK_EQ,
	"MK_DISEQ":            MK_DISEQ,
	"MK_DISTINCT":         MK_DISTINCT,
	"MK_APPLY":            MK_APPLY,
	"MK_TUPLE":            MK_TUPLE,
	"MK_SELECT":           MK_SELECT,
	"MK_TUPLE_UPDATE":     MK_TUPLE_UPDATE,
	"MK_UPDATE":           MK_UPDATE,
	"MK_FORALL":           MK_FORALL,
	"MK_EXISTS":           MK_EXISTS,
	"MK_LAMBDA":           MK_LAMBDA,
	"MK_ADD":              MK_ADD,
	"MK_SUB":              MK_SUB,
	"MK_NEG":              MK_NEG,
	"MK_MUL":              MK_MUL,
	"MK_DIVISION":         MK_DIVISION,
	"MK_POW":              MK_POW,
	"MK_GE":                MK_GE,
	"MK_GT":                MK_GT,
	"MK_LE":                MK_LE,
	"MK_LT":                MK_LT,
	"MK_BV_CONST":         MK_BV_CONST,
	"MK_BV_ADD":           MK_BV_ADD,
	"MK_BV_SUB":           MK_BV_SUB,
	"MK_BV_NEG":           MK_BV_NEG,
	"MK_BV_MUL":           MK_BV_MUL,
	"MK_BV_POW":           MK_BV_POW,
	"MK_BV_DIV":           MK_BV_DIV,
	"MK_BV_REM":           MK_BV_REM,
	"MK_BV_SDIV":          MK_BV_SDIV,
	"MK_BV_SREM":          MK_BV_SREM,
	"MK_BV_SMOD":          MK_BV_SMOD,
	"MK_BV_NOT":           MK_BV_NOT,
	"MK_BV_AND":           MK_BV_AND,
	"MK_BV_OR":            MK_BV_OR,
	"MK_BV_XOR":           MK_BV_XOR,
	"MK_BV_NAND":          MK_BV_NAND,
	"MK_BV_NOR":           MK_BV_NOR,
	"MK_BV_XNOR":          MK_BV_XNOR,
	"MK_BV_SHIFT_LEFT0":   MK_BV_SHIFT_LEFT0,
	"MK_BV_SHIFT_LEFT1":   MK_BV_SHIFT_LEFT1,
	"MK_BV_SHIFT_RIGHT0":  MK_BV_SHIFT_RIGHT0,
	"MK_BV_SHIFT_RIGHT1":  MK_BV_SHIFT_RIGHT1,
	"MK_BV_ASHIFT_RIGHT":  MK_BV_ASHIFT_RIGHT,
	"MK_BV_ROTATE_LEFT":   MK_BV_ROTATE_LEFT,
	"MK_BV_ROTATE_RIGHT":  MK_BV_ROTATE_RIGHT,
	"MK_BV_SHL":           MK_BV_SHL,
	"MK_BV_LSHR":          MK_BV_LSHR,
	"MK_BV_ASHR":          MK_BV_ASHR,
	"MK_BV_EXTRACT":       MK_BV_EXTRACT,
	"MK_BV_CONCAT":        MK_BV_CONCAT,
	"MK_BV_REPEAT":        MK_BV_REPEAT,
	"MK_BV_SIGN_EXTEND":   MK_BV_SIGN_EXTEND,
	"MK_BV_ZERO_EXTEND":   MK_BV_ZERO_EXTEND,
	"MK_BV_REDAND":        MK_BV_REDAND,
	"MK_BV_REDOR":         MK_BV_REDOR,
	"MK_BV_COMP":          MK_BV_COMP,
	"MK_BV_GE":            MK_BV_GE,
	"MK_BV_GT":            MK_BV_GT,
	"MK_BV_LE":            MK_BV_LE,
	"MK_BV_LT":            MK_BV_LT,
	"MK_BV_SGE":           MK_BV_SGE,
	"MK_BV_SGT":           MK_BV_SGT,
	"MK_BV_SLE":           MK_BV_SLE,
	"MK_BV_SLT":           MK_BV_SLT,
	"BUILD_TERM":          BUILD_TERM,
	"BUILD_TYPE":          BUILD_TYPE,
}

func invertOpcodeIDs() map[int32]string {
	names := make(map[int32]string, len(opcodeIDs))
	for name, id := range opcodeIDs {
		names[id] = name
	}
	return names
}

// OpcodeByName resolves a script-level opcode name to its numeric
// identity, the name table's read side.
func OpcodeByName(name string) (int32, bool) {
	id, ok := opcodeIDs[name]
	return id, ok
}

// OpcodeName renders opcode back to the name it was registered under,
// for diagnostic output. Returns "" if opcode is not one of the
// predefined opcodes.
func OpcodeName(opcode int32) string {
	return opcodeNames[opcode]
}
