package isa

// Table holds the bit patterns the encoder packs into words.
// Decoders only read from it.
type Table struct {
	// Opcodes maps an instruction class to its opcode tag.
	Opcodes map[Class]uint16
	// ALU maps ALU mnemonics to their operation bits.
	ALU map[string]uint16
	// Jump maps jump mnemonics to condition codes.
	Jump map[string]uint16
	// IO maps I/O sub-commands to their sub-opcode bits.
	IO map[IOCommand]uint16
	// SysFlag is ORed into every sys command word.
	SysFlag uint16
}

// Default returns a fresh copy of the Syzygy B100 tables.
func Default() *Table {
	return &Table{
		Opcodes: map[Class]uint16{
			ClassPush: OPPUSH,
			ClassCopy: OPCOPY,
			ClassJump: OPJUMP,
			ClassALU:  OPALU,
			ClassIO:   OPIO,
			ClassSys:  OPSYS,
		},
		ALU: map[string]uint16{
			"add": ALUADD,
			"sub": ALUSUB,
			"and": ALUAND,
			"or":  ALUOR,
			"xor": ALUXOR,
			"not": ALUNOT,
			"neg": ALUNEG,
			"inc": ALUINC,
			"dec": ALUDEC,
			"shl": ALUSHL,
			"shr": ALUSHR,
			"rol": ALUROL,
			"ror": ALUROR,
			"cmp": ALUCMP,
		},
		Jump: map[string]uint16{
			"jmp": JMP,
			"jeq": JEQ,
			"jne": JNE,
			"jlt": JLT,
			"jle": JLE,
			"jgt": JGT,
			"jge": JGE,
		},
		IO: map[IOCommand]uint16{
			IOExecute:     IOEX,
			IOSetRegister: IOSR,
			IOGetRegister: IOGR,
		},
		SysFlag: SYSFLAG,
	}
}

// Opcode returns the opcode tag for a class.
func (t *Table) Opcode(c Class) uint16 {
	return t.Opcodes[c]
}

// ClassOf returns the class whose opcode tag is carried by word.
// PUSH is identified by bit 15 alone.
func (t *Table) ClassOf(word uint16) (Class, bool) {
	if word&OPPUSH != 0 {
		return ClassPush, true
	}
	for c, tag := range t.Opcodes {
		if c != ClassPush && word&ClassMask == tag {
			return c, true
		}
	}
	return 0, false
}
