package assembler

import (
	"regexp"
	"strings"

	"github.com/Urethramancer/syzasm/isa"
)

var reIOExecute = regexp.MustCompile(`^(\d{1,2}|\$conf\.\w+\.\w+)$`)

// assembleIO handles ioex <id>, iosr <id>,<reg> and iogr <id>,<reg>.
func (e *encoder) assembleIO(mnemonic, operands string) (uint16, *Error) {
	cmd := isa.IOCommand(mnemonic)
	sub, ok := e.isa.IO[cmd]
	if !ok {
		return 0, errorf(UnknownMnemonic, "%q is not an I/O command", mnemonic)
	}

	operands = strings.TrimSpace(operands)
	comma := strings.IndexByte(operands, ',')
	idTok := operands
	if comma >= 0 {
		idTok = operands[:comma]
	}
	pid, err := e.resolveIndex(strings.ToLower(strings.TrimSpace(idTok)))
	if err != nil {
		return 0, err
	}
	if pid < 0 || pid > isa.MaxPeripheral {
		return 0, errorf(RegisterOutOfRange, "peripheral %d must be between 0 and %d", pid, isa.MaxPeripheral)
	}

	word := e.isa.Opcode(isa.ClassIO) | uint16(pid)<<isa.IOPeripheralShift

	if cmd == isa.IOExecute {
		if !reIOExecute.MatchString(operands) {
			return 0, errorf(SyntaxError, "ioex takes a single peripheral (got %q)", operands)
		}
		return word | sub, nil
	}

	if comma < 0 {
		return 0, errorf(SyntaxError, "%s expects <peripheral>,<register>", mnemonic)
	}
	regTok := strings.ToLower(strings.TrimSpace(operands[comma+1:]))
	reg, err := e.resolveIndex(regTok)
	if err != nil {
		return 0, err
	}
	if reg < 0 || reg > isa.MaxRegister {
		return 0, errorf(RegisterOutOfRange, "peripheral register %d must be between 0 and %d", reg, isa.MaxRegister)
	}

	return word | uint16(reg)<<isa.IORegisterShift | sub, nil
}
