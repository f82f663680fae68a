package assembler_test

import (
	"encoding/hex"
	"errors"
	"strings"
	"testing"

	"github.com/Urethramancer/syzasm/assembler"
	"github.com/Urethramancer/syzasm/config"
)

func testConfig() config.Values {
	v := config.Values{}
	v.Set("$conf.mem.base", "0x100")
	v.Set("$conf.io.uart", "2")
	v.Set("$conf.io.status", "12")
	v.Set("$conf.sys.halt", "255")
	v.Set("$conf.sys.big", "300")
	v.Set("$conf.mem.neg", "-4")
	v.Set("$conf.mem.junk", "banana")
	return v
}

// Assembles source and checks against an expected byte sequence (in hex).
func assembleAndMatchHex(t *testing.T, name, src, expectedHex string) {
	t.Helper()

	expectedHex = strings.ToLower(strings.Join(strings.Fields(expectedHex), ""))
	expected, err := hex.DecodeString(expectedHex)
	if err != nil {
		t.Fatalf("[%s] invalid expected hex string: %v", name, err)
	}

	asm := assembler.New(nil, testConfig())
	prog, err := asm.Assemble(src)
	if err != nil {
		t.Fatalf("[%s] failed to assemble:\n%s\nerror: %v", name, src, err)
	}
	code := prog.Bytes()
	if len(code) != len(expected) {
		t.Fatalf("[%s] expected %d bytes, got %d\nexpected: % X\ngot:      % X",
			name, len(expected), len(code), expected, code)
	}
	for i := range code {
		if code[i] != expected[i] {
			t.Errorf("[%s] mismatch at byte %d\nexpected: % X\ngot:      % X",
				name, i, expected, code)
			break
		}
	}
}

// Assembles source that must fail and checks the error kind and line.
func assembleAndExpectError(t *testing.T, name, src string, kind assembler.Kind, line int) {
	t.Helper()

	asm := assembler.New(nil, testConfig())
	_, err := asm.Assemble(src)
	if err == nil {
		t.Fatalf("[%s] expected %s, assembled without error", name, kind)
	}
	var aerr *assembler.Error
	if !errors.As(err, &aerr) {
		t.Fatalf("[%s] expected *assembler.Error, got %T: %v", name, err, err)
	}
	if aerr.Kind != kind {
		t.Errorf("[%s] expected %s, got %s (%v)", name, kind, aerr.Kind, err)
	}
	if aerr.Line != line {
		t.Errorf("[%s] expected line %d, got %d", name, line, aerr.Line)
	}
	if !strings.Contains(err.Error(), "line ") {
		t.Errorf("[%s] message lacks line number: %v", name, err)
	}
}

func TestBasicEncodings(t *testing.T) {
	tests := []struct {
		name, src, hex string
	}{
		{"PUSH", "push 5", "80 05"},
		{"PUSH_Max", "push 0x7FFF", "FF FF"},
		{"PUSH_Hash", "push #10", "80 10"},
		{"PUSH_Octal", "push 010", "80 08"},
		{"PUSH_Upper", "PUSH 5", "80 05"},
		{"PUSH_Tab", "push\t5", "80 05"},
		{"PUSH_Config", "push $conf.mem.base", "81 00"},
		{"COPY", "copy 3,9", "13 90"},
		{"COPY_Spaces", "copy  15 , 0 ", "1F 00"},
		{"COPY_Mixed", "Copy 1,2", "11 20"},
		{"JMP", "jmp", "20 07"},
		{"JEQ", "jeq", "20 02"},
		{"JNE", "jne", "20 05"},
		{"JLT", "jlt", "20 04"},
		{"JLE", "jle", "20 06"},
		{"JGT", "jgt", "20 01"},
		{"JGE", "jge", "20 03"},
		{"ADD", "add", "30 00"},
		{"CMP", "cmp", "30 0D"},
		{"IOEX", "ioex 3", "4B 00"},
		{"IOEX_Config", "ioex $conf.io.uart", "4A 00"},
		{"IOSR", "iosr 2,5", "42 51"},
		{"IOSR_Hex", "iosr 0x2, 0xa", "42 A1"},
		{"IOSR_Config", "iosr $conf.io.uart,$conf.io.status", "42 C1"},
		{"IOGR", "iogr 7,15", "47 F0"},
		{"SYS", "sys cmd 10", "51 0A"},
		{"SYS_Hex", "sys cmd 0xff", "51 FF"},
		{"SYS_Config", "sys cmd $conf.sys.halt", "51 FF"},
	}
	for _, tc := range tests {
		assembleAndMatchHex(t, tc.name, tc.src, tc.hex)
	}
}

func TestLabels(t *testing.T) {
	src := `# demo program
:START
push $lbl.END
jmp

:LOOP
add
push $lbl.LOOP
push $lbl.START
jne
:END
`
	assembleAndMatchHex(t, "Labels", src, "80 06 20 07 30 00 80 02 80 00 20 05")
}

func TestLabelRedefinitionKeepsLast(t *testing.T) {
	src := ":A\npush 1\n:A\npush $lbl.A"
	assembleAndMatchHex(t, "Redefine", src, "80 01 80 01")
}

func TestLabelAddressTooWide(t *testing.T) {
	src := strings.Repeat("add\n", 0x8000) + ":FAR\npush $lbl.FAR"
	assembleAndExpectError(t, "FarLabel", src, assembler.RegisterOutOfRange, 0x8002)
}

func TestErrors(t *testing.T) {
	tests := []struct {
		name, src string
		kind      assembler.Kind
	}{
		{"CopyRange", "copy 16,0", assembler.RegisterOutOfRange},
		{"CopyDstRange", "copy 0,99", assembler.RegisterOutOfRange},
		{"CopySemicolon", "copy 3;9", assembler.SyntaxError},
		{"CopyThreeDigits", "copy 123,4", assembler.SyntaxError},
		{"CopyOneReg", "copy 3", assembler.SyntaxError},
		{"JumpUnknown", "jxx", assembler.UnknownMnemonic},
		{"BareUnknown", "frob", assembler.UnknownMnemonic},
		{"UnknownWithOperand", "frob 1", assembler.UnknownMnemonic},
		{"PushNegative", "push -1", assembler.NegativeOperand},
		{"PushConfigNegative", "push $conf.mem.neg", assembler.NegativeOperand},
		{"PushUnknownLabel", "push $lbl.NOPE", assembler.UnknownLabel},
		{"PushUnresolved", "push nothing", assembler.InvalidOperand},
		{"PushTooBig", "push 40000", assembler.InvalidOperand},
		{"PushConfigJunk", "push $conf.mem.junk", assembler.InvalidOperand},
		{"PushTwoOperands", "push 1 2", assembler.SyntaxError},
		{"IOPeripheralRange", "ioex 8", assembler.RegisterOutOfRange},
		{"IOExecuteGrammar", "ioex 0x3", assembler.SyntaxError},
		{"IOExecuteTwoArgs", "ioex 3,4", assembler.SyntaxError},
		{"IORegisterRange", "iosr 1,16", assembler.RegisterOutOfRange},
		{"IONegativeRegister", "iogr 1,-1", assembler.RegisterOutOfRange},
		{"IOMissingRegister", "iosr 1", assembler.SyntaxError},
		{"IOUnresolved", "iogr uart,1", assembler.InvalidOperand},
		{"IOUnknown", "iozz 1", assembler.UnknownMnemonic},
		{"SysRange", "sys cmd 300", assembler.RegisterOutOfRange},
		{"SysConfigRange", "sys cmd $conf.sys.big", assembler.RegisterOutOfRange},
		{"SysNegative", "sys cmd -1", assembler.RegisterOutOfRange},
		{"SysMissingArg", "sys cmd", assembler.SyntaxError},
		{"SysTooMany", "sys cmd 1 2", assembler.SyntaxError},
		{"SysUnknown", "sys run 1", assembler.UnknownMnemonic},
		{"SysUnresolved", "sys cmd bogus", assembler.InvalidOperand},
	}
	for _, tc := range tests {
		assembleAndExpectError(t, tc.name, tc.src, tc.kind, 1)
	}
}

func TestErrorCarriesSourceLine(t *testing.T) {
	src := "# comment\n\n:L\npush 1\ncopy 16,0\npush 2"
	assembleAndExpectError(t, "Line", src, assembler.RegisterOutOfRange, 5)
}

func TestFirstErrorStopsAssembly(t *testing.T) {
	asm := assembler.New(nil, nil)
	prog, err := asm.Assemble("push 1\njxx\npush $lbl.NOPE")
	if err == nil {
		t.Fatal("expected an error")
	}
	if prog != nil {
		t.Errorf("no partial program expected, got %v", prog)
	}
	var aerr *assembler.Error
	if errors.As(err, &aerr) && aerr.Kind != assembler.UnknownMnemonic {
		t.Errorf("expected first error to win, got %v", err)
	}
}

func TestOutputLength(t *testing.T) {
	src := `# header
:top
push 1
push 2
add
x
copy 1,2
:bottom
jmp
`
	asm := assembler.New(nil, nil)
	prog, err := asm.Assemble(src)
	if err != nil {
		t.Fatal(err)
	}
	// "x" is a single character, so it classifies as a comment.
	if len(prog.Bytes()) != 2*5 {
		t.Errorf("expected %d bytes, got %d", 2*5, len(prog.Bytes()))
	}
	if got := asm.Labels()["bottom"]; got != 4 {
		t.Errorf("bottom = %d, want 4", got)
	}
}

func TestAssembleFile(t *testing.T) {
	asm := assembler.New(nil, nil)
	_, err := asm.AssembleFile(t.TempDir() + "/missing.syz")
	var aerr *assembler.Error
	if !errors.As(err, &aerr) || aerr.Kind != assembler.IOFailure {
		t.Fatalf("expected IOFailure, got %v", err)
	}
}

func TestConfigLookupTrace(t *testing.T) {
	type lookup struct {
		key, value string
		ok         bool
	}
	var got []lookup

	asm := assembler.New(nil, testConfig())
	asm.TraceConfig = func(key, value string, ok bool) {
		got = append(got, lookup{key, value, ok})
	}
	if _, err := asm.Assemble("push 5\nioex $conf.io.uart\nsys cmd $conf.sys.halt"); err != nil {
		t.Fatal(err)
	}
	_, err := asm.Assemble("push $conf.nope")
	if err == nil {
		t.Fatal("expected an error for an unknown key")
	}

	want := []lookup{
		{"$conf.io.uart", "2", true},
		{"$conf.sys.halt", "255", true},
		{"$conf.nope", "", false},
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d lookups, got %v", len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("lookup %d: got %+v, want %+v", i, got[i], want[i])
		}
	}
}
