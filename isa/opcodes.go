package isa

// Class identifies an instruction class by its opcode tag.
type Class int

const (
	// ClassPush pushes a 15-bit immediate.
	ClassPush Class = iota
	// ClassCopy copies one register into another.
	ClassCopy
	// ClassJump is a conditional or unconditional jump.
	ClassJump
	// ClassALU is a zero-operand ALU operation.
	ClassALU
	// ClassIO talks to a peripheral.
	ClassIO
	// ClassSys is a system command.
	ClassSys
)

func (c Class) String() string {
	switch c {
	case ClassPush:
		return "push"
	case ClassCopy:
		return "copy"
	case ClassJump:
		return "jump"
	case ClassALU:
		return "alu"
	case ClassIO:
		return "io"
	case ClassSys:
		return "sys"
	}
	return "unknown"
}

// Opcode tags for each instruction class.
const (
	OPPUSH = 0x8000 // PUSH, bits 0-14 hold the value
	OPCOPY = 0x1000 // COPY
	OPJUMP = 0x2000 // JUMP
	OPALU  = 0x3000 // ALU
	OPIO   = 0x4000 // IO
	OPSYS  = 0x5000 // SYS
)

// Jump condition codes. Bit 0 is "greater", bit 1 "equal", bit 2 "less".
const (
	JGT = 0x0001
	JEQ = 0x0002
	JGE = 0x0003
	JLT = 0x0004
	JNE = 0x0005
	JLE = 0x0006
	JMP = 0x0007
)

// ALU operations.
const (
	ALUADD = 0x0000
	ALUSUB = 0x0001
	ALUAND = 0x0002
	ALUOR  = 0x0003
	ALUXOR = 0x0004
	ALUNOT = 0x0005
	ALUNEG = 0x0006
	ALUINC = 0x0007
	ALUDEC = 0x0008
	ALUSHL = 0x0009
	ALUSHR = 0x000A
	ALUROL = 0x000B
	ALUROR = 0x000C
	ALUCMP = 0x000D
)

// IOCommand is an I/O sub-command.
type IOCommand string

// I/O sub-commands.
const (
	IOExecute     IOCommand = "ioex"
	IOSetRegister IOCommand = "iosr"
	IOGetRegister IOCommand = "iogr"
)

// I/O sub-opcode bits. Reading a register is the absence of the write flag.
const (
	IOEX = 0x0800 // execute
	IOSR = 0x0001 // write flag
	IOGR = 0x0000
)

// SYSFLAG marks a sys word as a command index.
const SYSFLAG = 0x0100

// Field positions and widths.
const (
	PushValueMask = 0x7FFF

	CopySrcShift = 8
	CopyDstShift = 4
	RegisterMask = 0x0F
	MaxRegister  = 15

	IOPeripheralShift = 8
	IOPeripheralMask  = 0x07
	MaxPeripheral     = 7
	IORegisterShift   = 4

	SysCommandMask = 0xFF
	MaxSysCommand  = 255

	ClassMask = 0xF000
)
