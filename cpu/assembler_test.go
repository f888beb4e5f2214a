package cpu

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assemble(t *testing.T, program ...string) (prog *Program) {
	asm := &Assembler{}

	prog, err := asm.Parse(strings.NewReader(strings.Join(program, "\n")))
	require.NoError(t, err)

	return
}

func TestAssembler(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}

	prog, err := asm.Parse(strings.NewReader(""))
	assert.NoError(err)
	assert.Equal(0, len(prog.Opcodes))
	assert.Equal(0, len(prog.Binary()))

	assert.Equal("0", asm.Equate["LINENO"])
	assert.Equal(fmt.Sprintf("%#x", MEMORY_SIZE), asm.Equate["MEMORY_SIZE"])
	assert.Equal(fmt.Sprintf("%#x", STACK_RESET), asm.Equate["STACK_RESET"])
	assert.Equal(fmt.Sprintf("%#x", FRAMEBUFFER_START), asm.Equate["FRAMEBUFFER_START"])
	assert.Equal(fmt.Sprintf("%#x", FRAMEBUFFER_END), asm.Equate["FRAMEBUFFER_END"])
}

func TestAssemblerProgram(t *testing.T) {
	assert := assert.New(t)

	prog := assemble(t,
		"; count down",
		".equ COUNT 5",
		"start: MVI B,COUNT   ; load",
		"loop:  DCR B",
		"       JNZ loop",
		"       CALL sub",
		"       HLT",
		"sub:   RET",
	)

	expected := []byte{
		0x06, 0x05, // MVI B,5
		0x05,             // DCR B
		0xc2, 0x02, 0x00, // JNZ 0x0002
		0xcd, 0x0a, 0x00, // CALL 0x000a
		0x76, // HLT
		0xc9, // RET
	}
	assert.Equal(expected, prog.Binary())

	assert.Equal(6, len(prog.Opcodes))
	assert.Equal(Opcode{
		LineNo:  6,
		Address: 6,
		Words:   []string{"CALL", "sub"},
		Data:    []byte{0xcd, 0x0a, 0x00},
		Links:   []Link{{Offset: 1, Size: 2, Label: "sub"}},
	}, prog.Opcodes[3])

	cpu := runImage(t, prog.Binary())
	assert.Equal(uint8(0), cpu.B)
	assert.True(cpu.Flags.Zero)
	assert.Equal(uint16(10), cpu.PC)
	assert.Equal(uint16(STACK_RESET), cpu.SP)
}

func TestAssemblerEncoding(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		line string
		data []byte
	}){
		{"nop", []byte{0x00}},
		{"MOV A,M", []byte{0x7e}},
		{"mov m,a", []byte{0x77}},
		{"LXI SP,0x2400", []byte{0x31, 0x00, 0x24}},
		{"LXI H, $1234", []byte{0x21, 0x34, 0x12}},
		{"PUSH PSW", []byte{0xf5}},
		{"POP B", []byte{0xc1}},
		{"DAD D", []byte{0x19}},
		{"STAX D", []byte{0x12}},
		{"MVI A,-1", []byte{0x3e, 0xff}},
		{"MVI A,0ffh", []byte{0x3e, 0xff}},
		{"CPI 'a'", []byte{0xfe, 0x61}},
		{"ADI '\\n'", []byte{0xc6, 0x0a}},
		{"RST 7", []byte{0xff}},
		{"RM", []byte{0xf8}},
		{"JPE 0x100", []byte{0xea, 0x00, 0x01}},
		{"CC 0x100", []byte{0xdc, 0x00, 0x01}},
		{"OUT 3", []byte{0xd3, 0x03}},
		{"IN 0x10", []byte{0xdb, 0x10}},
		{"SHLD FRAMEBUFFER_START", []byte{0x22, 0x00, 0x24}},
		{"LXI SP,STACK_RESET", []byte{0x31, 0xfe, 0xff}},
		{"MVI A,$(3 * 4 + 1)", []byte{0x3e, 0x0d}},
		{"JMP $(HERE)", []byte{0xc3, 0x00, 0x00}},
		{".db 1, 2, 'A'", []byte{0x01, 0x02, 0x41}},
		{".dw 0x1234, 5", []byte{0x34, 0x12, 0x05, 0x00}},
		{".ds 3", []byte{0x00, 0x00, 0x00}},
	}

	for _, entry := range table {
		prog := assemble(t, entry.line)
		assert.Equal(entry.data, prog.Binary(), entry.line)
	}
}

func TestAssemblerDisassembly(t *testing.T) {
	assert := assert.New(t)

	// Every opcode that the assembler prefers must round trip through
	// the disassembler.
	for key, opcode := range asmTable {
		memory := [MEMORY_SIZE]byte{opcode, 0x34, 0x12}
		code := Decode(&memory, 0)

		prog := assemble(t, code.String())
		assert.Equal(code.Bytes(), prog.Binary(), key)
	}
}

func TestAssemblerOrg(t *testing.T) {
	assert := assert.New(t)

	prog := assemble(t,
		"    JMP main",
		".org 0x10",
		"data: .db 0x55, end",
		".dw data",
		"main: LDA data",
		"end: HLT",
	)

	binary := prog.Binary()
	assert.Equal(0x18, len(binary))
	assert.Equal([]byte{0xc3, 0x14, 0x00}, binary[0:3])
	assert.Equal(make([]byte, 0x10-3), binary[3:0x10])
	assert.Equal([]byte{0x55, 0x17, 0x10, 0x00, 0x3a, 0x10, 0x00, 0x76}, binary[0x10:])

	dbg := prog.Debug(0x15)
	require.NotNil(t, dbg.Opcode)
	assert.Equal(5, dbg.LineNo)
	assert.Equal(1, dbg.Index)

	dbg = prog.Debug(0x05)
	assert.Nil(dbg.Opcode)

	count := 0
	for addr, value := range prog.Codes() {
		assert.Equal(binary[addr], value)
		count++
	}
	assert.Equal(3+2+2+3+1, count)
}

func TestAssemblerMacro(t *testing.T) {
	assert := assert.New(t)

	prog := assemble(t,
		".macro delay n",
		"    MVI C,n",
		"@loop: DCR C",
		"    JNZ @loop",
		".endm",
		"    delay 3",
		"    delay 2",
		"    HLT",
	)

	expected := []byte{
		0x0e, 0x03, 0x0d, 0xc2, 0x02, 0x00,
		0x0e, 0x02, 0x0d, 0xc2, 0x08, 0x00,
		0x76,
	}
	assert.Equal(expected, prog.Binary())
}

func TestAssemblerPredefine(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}
	asm.Predefine("VALUE", "7")
	asm.Predefine("VALUE", "8")

	prog, err := asm.Parse(strings.NewReader("MVI A,VALUE\nMVI B,$(VALUE+1)"))
	assert.NoError(err)
	assert.Equal([]byte{0x3e, 0x08, 0x06, 0x09}, prog.Binary())
}

func TestAssemblerErrors(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		program string
		lineno  int
		err     error
	}){
		{"MOV A", 1, ErrInstructionInvalid},
		{"NOP\nFOO A,B", 2, ErrInstructionInvalid},
		{"HLT 5", 1, ErrOpcodeExtraArgs},
		{"MVI A", 1, ErrOpcodeValueMissing},
		{"MVI A,256", 1, ErrValueRange},
		{"LXI H,0x10000", 1, ErrValueRange},
		{"x: NOP\nx: NOP", 2, ErrLabelDuplicate},
		{"1x: NOP", 1, ErrLabelInvalid},
		{".equ A\n", 1, ErrEquateSyntax},
		{".equ A 1\n.equ A 2\n", 2, ErrEquateDuplicate},
		{".org\n", 1, ErrOrgSyntax},
		{".org 0x10000\n", 1, ErrValueRange},
		{".db\n", 1, ErrOpcodeValueMissing},
		{".ds\n", 1, ErrDataSyntax},
		{".org 4\nNOP\n.org 4\nHLT\n", 4, ErrImageOverlap},
		{".macro A B\n.macro C\n.endm\n.endm", 2, ErrMacroNesting},
		{".macro A B\n.endm\n.macro A\n.endm\n", 3, ErrMacroDuplicate},
		{".macro A B\n.endm\n.endm\n", 3, ErrMacroLonelyEndm},
		{".macro A\nNOP\n", 2, ErrMacroLonely},
		{".macro A B C\n.endm\nA 1\n", 3, ErrMacroSyntax},
		{".macro A B\nMVI A,B\n.endm\nA 300\n", 4, ErrValueRange},
		{"MVI A,$(1 +)", 1, nil},
	}

	for _, entry := range table {
		asm := &Assembler{}
		_, err := asm.Parse(strings.NewReader(entry.program))
		assert.Error(err, entry.program)

		var syntax *ErrSyntax
		if assert.True(errors.As(err, &syntax), entry.program) {
			assert.Equal(entry.lineno, syntax.LineNo, entry.program)
		}
		if entry.err != nil {
			assert.ErrorIs(err, entry.err, entry.program)
		}
	}
}

func TestAssemblerLabelMissing(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}
	_, err := asm.Parse(strings.NewReader("NOP\nJMP nowhere\n"))

	var missing ErrLabelMissing
	assert.True(errors.As(err, &missing))
	assert.Equal(ErrLabelMissing("nowhere"), missing)

	var syntax *ErrSyntax
	assert.True(errors.As(err, &syntax))
	assert.Equal(2, syntax.LineNo)
}

func TestParseValue(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		word  string
		value int
		ok    bool
	}){
		{"10", 10, true},
		{"-1", -1, true},
		{"0x1f", 0x1f, true},
		{"0b101", 5, true},
		{"$2400", 0x2400, true},
		{"2400h", 0x2400, true},
		{"0FFH", 0xff, true},
		{"h", 0, false},
		{"$", 0, false},
		{"label", 0, false},
		{"1x", 0, false},
	}

	for _, entry := range table {
		value, err := ParseValue(entry.word)
		if entry.ok {
			assert.NoError(err, entry.word)
			assert.Equal(entry.value, value, entry.word)
		} else {
			assert.ErrorIs(err, ErrParseNumber(entry.word), entry.word)
		}
	}
}
