package assembler

import (
	"strings"

	"github.com/Urethramancer/syzasm/isa"
)

// assembleSys handles sys cmd <index>.
func (e *encoder) assembleSys(operands string) (uint16, *Error) {
	fields := strings.Fields(operands)
	if len(fields) != 2 {
		return 0, errorf(SyntaxError, "sys expects a command and one argument")
	}
	if fields[0] != "cmd" {
		return 0, errorf(UnknownMnemonic, "unrecognized system command %q", fields[0])
	}

	tok := strings.ToLower(fields[1])
	idx, derr := decodeShort(tok)
	if derr != nil {
		v, err := e.resolveConfig(tok)
		if err != nil {
			return 0, err
		}
		idx = v
	}
	if idx < 0 || idx > isa.MaxSysCommand {
		return 0, errorf(RegisterOutOfRange, "command index %d must be between 0 and %d", idx, isa.MaxSysCommand)
	}

	return e.isa.Opcode(isa.ClassSys) | e.isa.SysFlag | uint16(idx), nil
}
