package cpu

import (
	"fmt"
	"strings"
)

// CodeOp is the kind of operation an opcode performs.
type CodeOp int

//go:generate go tool stringer -linecomment -type=CodeOp
const (
	OP_INVALID = CodeOp(iota) // ???
	OP_NOP                    // NOP
	OP_LXI                    // LXI
	OP_STAX                   // STAX
	OP_SHLD                   // SHLD
	OP_STA                    // STA
	OP_INX                    // INX
	OP_INR                    // INR
	OP_DCR                    // DCR
	OP_MVI                    // MVI
	OP_RLC                    // RLC
	OP_RRC                    // RRC
	OP_RAL                    // RAL
	OP_RAR                    // RAR
	OP_DAD                    // DAD
	OP_LDAX                   // LDAX
	OP_LHLD                   // LHLD
	OP_LDA                    // LDA
	OP_DCX                    // DCX
	OP_DAA                    // DAA
	OP_CMA                    // CMA
	OP_STC                    // STC
	OP_CMC                    // CMC
	OP_MOV                    // MOV
	OP_HLT                    // HLT
	OP_ADD                    // ADD
	OP_ADC                    // ADC
	OP_SUB                    // SUB
	OP_SBB                    // SBB
	OP_ANA                    // ANA
	OP_XRA                    // XRA
	OP_ORA                    // ORA
	OP_CMP                    // CMP
	OP_RCC                    // R
	OP_RET                    // RET
	OP_POP                    // POP
	OP_JCC                    // J
	OP_JMP                    // JMP
	OP_CCC                    // C
	OP_CALL                   // CALL
	OP_PUSH                   // PUSH
	OP_ADI                    // ADI
	OP_ACI                    // ACI
	OP_SUI                    // SUI
	OP_SBI                    // SBI
	OP_ANI                    // ANI
	OP_XRI                    // XRI
	OP_ORI                    // ORI
	OP_CPI                    // CPI
	OP_RST                    // RST
	OP_OUT                    // OUT
	OP_IN                     // IN
	OP_XTHL                   // XTHL
	OP_PCHL                   // PCHL
	OP_XCHG                   // XCHG
	OP_DI                     // DI
	OP_SPHL                   // SPHL
	OP_EI                     // EI
)

// Affects returns the condition flags the operation writes.
func (op CodeOp) Affects() FlagMask {
	switch op {
	case OP_ADD, OP_ADC, OP_SUB, OP_SBB, OP_ANA, OP_XRA, OP_ORA, OP_CMP,
		OP_ADI, OP_ACI, OP_SUI, OP_SBI, OP_ANI, OP_XRI, OP_ORI, OP_CPI:
		return FLAG_ALL
	case OP_INR, OP_DCR:
		return FLAG_ALL &^ FLAG_CARRY
	case OP_DAD, OP_RLC, OP_RRC, OP_RAL, OP_RAR, OP_STC, OP_CMC:
		return FLAG_CARRY
	}

	return 0
}

// CodeArg is an instruction operand encoded in the opcode, or the kind of
// data bytes that follow it.
type CodeArg int

//go:generate go tool stringer -linecomment -type=CodeArg
const (
	ARG_NONE = CodeArg(iota) // -
	ARG_B                    // B
	ARG_C                    // C
	ARG_D                    // D
	ARG_E                    // E
	ARG_H                    // H
	ARG_L                    // L
	ARG_M                    // M
	ARG_A                    // A
	ARG_BC                   // B
	ARG_DE                   // D
	ARG_HL                   // H
	ARG_SP                   // SP
	ARG_PSW                  // PSW
	ARG_NZ                   // NZ
	ARG_Z                    // Z
	ARG_NC                   // NC
	ARG_CY                   // C
	ARG_PO                   // PO
	ARG_PE                   // PE
	ARG_P                    // P
	ARG_MI                   // M
	ARG_N0                   // 0
	ARG_N1                   // 1
	ARG_N2                   // 2
	ARG_N3                   // 3
	ARG_N4                   // 4
	ARG_N5                   // 5
	ARG_N6                   // 6
	ARG_N7                   // 7
	ARG_D8                   // d8
	ARG_D16                  // d16
	ARG_ADR                  // adr
)

// IsRegister is true for the eight 8-bit operands, including M.
func (arg CodeArg) IsRegister() bool {
	return arg >= ARG_B && arg <= ARG_A
}

// IsPair is true for register pair operands.
func (arg CodeArg) IsPair() bool {
	return arg >= ARG_BC && arg <= ARG_PSW
}

// IsCondition is true for the condition operands of Jcc, Ccc and Rcc.
func (arg CodeArg) IsCondition() bool {
	return arg >= ARG_NZ && arg <= ARG_MI
}

// IsData is true for operands that are encoded in the bytes after the opcode.
func (arg CodeArg) IsData() bool {
	return arg >= ARG_D8
}

// Vector returns the restart vector address of an RST operand.
func (arg CodeArg) Vector() uint16 {
	return uint16(arg-ARG_N0) * 8
}

// Instruction describes one opcode: its operation, encoded length and operands.
type Instruction struct {
	Op   CodeOp
	Size int
	Arg1 CodeArg
	Arg2 CodeArg
}

// Mnemonic returns the assembler mnemonic, with the condition folded in for
// conditional jumps, calls and returns.
func (inst Instruction) Mnemonic() string {
	switch inst.Op {
	case OP_JCC, OP_CCC, OP_RCC:
		return inst.Op.String() + inst.Arg1.String()
	}
	return inst.Op.String()
}

// Operands returns the operands that are written out in assembly, excluding
// data bytes.
func (inst Instruction) Operands() (args []CodeArg) {
	for _, arg := range []CodeArg{inst.Arg1, inst.Arg2} {
		if arg == ARG_NONE || arg.IsData() || arg.IsCondition() {
			continue
		}
		args = append(args, arg)
	}
	return
}

// Data returns the kind of data bytes following the opcode, or ARG_NONE.
func (inst Instruction) Data() CodeArg {
	for _, arg := range []CodeArg{inst.Arg1, inst.Arg2} {
		if arg.IsData() {
			return arg
		}
	}
	return ARG_NONE
}

// Lookup returns the table entry for an opcode byte.
func Lookup(opcode byte) Instruction {
	return opcodeTable[opcode]
}

// Code is an instruction as fetched from memory.
type Code struct {
	Address uint16  // Address of the opcode byte.
	Opcode  byte    // Opcode byte.
	Data    [2]byte // Data bytes, low byte first. Unused bytes are zero.
}

// Decode reads the instruction at addr. Reads past the top of memory wrap.
func Decode(memory *[MEMORY_SIZE]byte, addr uint16) (code Code) {
	code.Address = addr
	code.Opcode = memory[addr]

	size := opcodeTable[code.Opcode].Size
	for n := 1; n < size; n++ {
		code.Data[n-1] = memory[addr+uint16(n)]
	}

	return
}

// Disassemble decodes the instruction at addr without executing it, and
// returns its assembly text and encoded length.
func Disassemble(memory *[MEMORY_SIZE]byte, addr uint16) (text string, size int) {
	code := Decode(memory, addr)
	return code.String(), code.Size()
}

// Instruction returns the table entry for the code's opcode.
func (code Code) Instruction() Instruction {
	return opcodeTable[code.Opcode]
}

// Size is the encoded length of the instruction, in bytes.
func (code Code) Size() int {
	size := code.Instruction().Size
	if size == 0 {
		size = 1
	}
	return size
}

// D8 returns the 8-bit immediate.
func (code Code) D8() byte {
	return code.Data[0]
}

// D16 returns the 16-bit immediate or address.
func (code Code) D16() uint16 {
	return uint16(code.Data[1])<<8 | uint16(code.Data[0])
}

// Bytes returns the encoded instruction.
func (code Code) Bytes() []byte {
	return append([]byte{code.Opcode}, code.Data[:code.Size()-1]...)
}

// String returns the assembly language representation of this instruction.
func (code Code) String() string {
	inst := code.Instruction()
	if inst.Op == OP_INVALID {
		return fmt.Sprintf(".db 0x%02x", code.Opcode)
	}

	var operands []string
	for _, arg := range inst.Operands() {
		operands = append(operands, arg.String())
	}

	switch inst.Data() {
	case ARG_D8:
		operands = append(operands, fmt.Sprintf("0x%02x", code.D8()))
	case ARG_D16, ARG_ADR:
		operands = append(operands, fmt.Sprintf("0x%04x", code.D16()))
	}

	if len(operands) == 0 {
		return inst.Mnemonic()
	}

	return inst.Mnemonic() + " " + strings.Join(operands, ",")
}

// opcodeTable maps every opcode byte to its instruction. Unassigned encodings
// are NOP aliases.
var opcodeTable = [256]Instruction{
	0x00: {OP_NOP, 1, ARG_NONE, ARG_NONE},
	0x01: {OP_LXI, 3, ARG_BC, ARG_D16},
	0x02: {OP_STAX, 1, ARG_BC, ARG_NONE},
	0x03: {OP_INX, 1, ARG_BC, ARG_NONE},
	0x04: {OP_INR, 1, ARG_B, ARG_NONE},
	0x05: {OP_DCR, 1, ARG_B, ARG_NONE},
	0x06: {OP_MVI, 2, ARG_B, ARG_D8},
	0x07: {OP_RLC, 1, ARG_NONE, ARG_NONE},
	0x08: {OP_NOP, 1, ARG_NONE, ARG_NONE},
	0x09: {OP_DAD, 1, ARG_BC, ARG_NONE},
	0x0A: {OP_LDAX, 1, ARG_BC, ARG_NONE},
	0x0B: {OP_DCX, 1, ARG_BC, ARG_NONE},
	0x0C: {OP_INR, 1, ARG_C, ARG_NONE},
	0x0D: {OP_DCR, 1, ARG_C, ARG_NONE},
	0x0E: {OP_MVI, 2, ARG_C, ARG_D8},
	0x0F: {OP_RRC, 1, ARG_NONE, ARG_NONE},
	0x10: {OP_NOP, 1, ARG_NONE, ARG_NONE},
	0x11: {OP_LXI, 3, ARG_DE, ARG_D16},
	0x12: {OP_STAX, 1, ARG_DE, ARG_NONE},
	0x13: {OP_INX, 1, ARG_DE, ARG_NONE},
	0x14: {OP_INR, 1, ARG_D, ARG_NONE},
	0x15: {OP_DCR, 1, ARG_D, ARG_NONE},
	0x16: {OP_MVI, 2, ARG_D, ARG_D8},
	0x17: {OP_RAL, 1, ARG_NONE, ARG_NONE},
	0x18: {OP_NOP, 1, ARG_NONE, ARG_NONE},
	0x19: {OP_DAD, 1, ARG_DE, ARG_NONE},
	0x1A: {OP_LDAX, 1, ARG_DE, ARG_NONE},
	0x1B: {OP_DCX, 1, ARG_DE, ARG_NONE},
	0x1C: {OP_INR, 1, ARG_E, ARG_NONE},
	0x1D: {OP_DCR, 1, ARG_E, ARG_NONE},
	0x1E: {OP_MVI, 2, ARG_E, ARG_D8},
	0x1F: {OP_RAR, 1, ARG_NONE, ARG_NONE},
	0x20: {OP_NOP, 1, ARG_NONE, ARG_NONE},
	0x21: {OP_LXI, 3, ARG_HL, ARG_D16},
	0x22: {OP_SHLD, 3, ARG_ADR, ARG_NONE},
	0x23: {OP_INX, 1, ARG_HL, ARG_NONE},
	0x24: {OP_INR, 1, ARG_H, ARG_NONE},
	0x25: {OP_DCR, 1, ARG_H, ARG_NONE},
	0x26: {OP_MVI, 2, ARG_H, ARG_D8},
	0x27: {OP_DAA, 1, ARG_NONE, ARG_NONE},
	0x28: {OP_NOP, 1, ARG_NONE, ARG_NONE},
	0x29: {OP_DAD, 1, ARG_HL, ARG_NONE},
	0x2A: {OP_LHLD, 3, ARG_ADR, ARG_NONE},
	0x2B: {OP_DCX, 1, ARG_HL, ARG_NONE},
	0x2C: {OP_INR, 1, ARG_L, ARG_NONE},
	0x2D: {OP_DCR, 1, ARG_L, ARG_NONE},
	0x2E: {OP_MVI, 2, ARG_L, ARG_D8},
	0x2F: {OP_CMA, 1, ARG_NONE, ARG_NONE},
	0x30: {OP_NOP, 1, ARG_NONE, ARG_NONE},
	0x31: {OP_LXI, 3, ARG_SP, ARG_D16},
	0x32: {OP_STA, 3, ARG_ADR, ARG_NONE},
	0x33: {OP_INX, 1, ARG_SP, ARG_NONE},
	0x34: {OP_INR, 1, ARG_M, ARG_NONE},
	0x35: {OP_DCR, 1, ARG_M, ARG_NONE},
	0x36: {OP_MVI, 2, ARG_M, ARG_D8},
	0x37: {OP_STC, 1, ARG_NONE, ARG_NONE},
	0x38: {OP_NOP, 1, ARG_NONE, ARG_NONE},
	0x39: {OP_DAD, 1, ARG_SP, ARG_NONE},
	0x3A: {OP_LDA, 3, ARG_ADR, ARG_NONE},
	0x3B: {OP_DCX, 1, ARG_SP, ARG_NONE},
	0x3C: {OP_INR, 1, ARG_A, ARG_NONE},
	0x3D: {OP_DCR, 1, ARG_A, ARG_NONE},
	0x3E: {OP_MVI, 2, ARG_A, ARG_D8},
	0x3F: {OP_CMC, 1, ARG_NONE, ARG_NONE},
	0x40: {OP_MOV, 1, ARG_B, ARG_B},
	0x41: {OP_MOV, 1, ARG_B, ARG_C},
	0x42: {OP_MOV, 1, ARG_B, ARG_D},
	0x43: {OP_MOV, 1, ARG_B, ARG_E},
	0x44: {OP_MOV, 1, ARG_B, ARG_H},
	0x45: {OP_MOV, 1, ARG_B, ARG_L},
	0x46: {OP_MOV, 1, ARG_B, ARG_M},
	0x47: {OP_MOV, 1, ARG_B, ARG_A},
	0x48: {OP_MOV, 1, ARG_C, ARG_B},
	0x49: {OP_MOV, 1, ARG_C, ARG_C},
	0x4A: {OP_MOV, 1, ARG_C, ARG_D},
	0x4B: {OP_MOV, 1, ARG_C, ARG_E},
	0x4C: {OP_MOV, 1, ARG_C, ARG_H},
	0x4D: {OP_MOV, 1, ARG_C, ARG_L},
	0x4E: {OP_MOV, 1, ARG_C, ARG_M},
	0x4F: {OP_MOV, 1, ARG_C, ARG_A},
	0x50: {OP_MOV, 1, ARG_D, ARG_B},
	0x51: {OP_MOV, 1, ARG_D, ARG_C},
	0x52: {OP_MOV, 1, ARG_D, ARG_D},
	0x53: {OP_MOV, 1, ARG_D, ARG_E},
	0x54: {OP_MOV, 1, ARG_D, ARG_H},
	0x55: {OP_MOV, 1, ARG_D, ARG_L},
	0x56: {OP_MOV, 1, ARG_D, ARG_M},
	0x57: {OP_MOV, 1, ARG_D, ARG_A},
	0x58: {OP_MOV, 1, ARG_E, ARG_B},
	0x59: {OP_MOV, 1, ARG_E, ARG_C},
	0x5A: {OP_MOV, 1, ARG_E, ARG_D},
	0x5B: {OP_MOV, 1, ARG_E, ARG_E},
	0x5C: {OP_MOV, 1, ARG_E, ARG_H},
	0x5D: {OP_MOV, 1, ARG_E, ARG_L},
	0x5E: {OP_MOV, 1, ARG_E, ARG_M},
	0x5F: {OP_MOV, 1, ARG_E, ARG_A},
	0x60: {OP_MOV, 1, ARG_H, ARG_B},
	0x61: {OP_MOV, 1, ARG_H, ARG_C},
	0x62: {OP_MOV, 1, ARG_H, ARG_D},
	0x63: {OP_MOV, 1, ARG_H, ARG_E},
	0x64: {OP_MOV, 1, ARG_H, ARG_H},
	0x65: {OP_MOV, 1, ARG_H, ARG_L},
	0x66: {OP_MOV, 1, ARG_H, ARG_M},
	0x67: {OP_MOV, 1, ARG_H, ARG_A},
	0x68: {OP_MOV, 1, ARG_L, ARG_B},
	0x69: {OP_MOV, 1, ARG_L, ARG_C},
	0x6A: {OP_MOV, 1, ARG_L, ARG_D},
	0x6B: {OP_MOV, 1, ARG_L, ARG_E},
	0x6C: {OP_MOV, 1, ARG_L, ARG_H},
	0x6D: {OP_MOV, 1, ARG_L, ARG_L},
	0x6E: {OP_MOV, 1, ARG_L, ARG_M},
	0x6F: {OP_MOV, 1, ARG_L, ARG_A},
	0x70: {OP_MOV, 1, ARG_M, ARG_B},
	0x71: {OP_MOV, 1, ARG_M, ARG_C},
	0x72: {OP_MOV, 1, ARG_M, ARG_D},
	0x73: {OP_MOV, 1, ARG_M, ARG_E},
	0x74: {OP_MOV, 1, ARG_M, ARG_H},
	0x75: {OP_MOV, 1, ARG_M, ARG_L},
	0x76: {OP_HLT, 1, ARG_NONE, ARG_NONE},
	0x77: {OP_MOV, 1, ARG_M, ARG_A},
	0x78: {OP_MOV, 1, ARG_A, ARG_B},
	0x79: {OP_MOV, 1, ARG_A, ARG_C},
	0x7A: {OP_MOV, 1, ARG_A, ARG_D},
	0x7B: {OP_MOV, 1, ARG_A, ARG_E},
	0x7C: {OP_MOV, 1, ARG_A, ARG_H},
	0x7D: {OP_MOV, 1, ARG_A, ARG_L},
	0x7E: {OP_MOV, 1, ARG_A, ARG_M},
	0x7F: {OP_MOV, 1, ARG_A, ARG_A},
	0x80: {OP_ADD, 1, ARG_B, ARG_NONE},
	0x81: {OP_ADD, 1, ARG_C, ARG_NONE},
	0x82: {OP_ADD, 1, ARG_D, ARG_NONE},
	0x83: {OP_ADD, 1, ARG_E, ARG_NONE},
	0x84: {OP_ADD, 1, ARG_H, ARG_NONE},
	0x85: {OP_ADD, 1, ARG_L, ARG_NONE},
	0x86: {OP_ADD, 1, ARG_M, ARG_NONE},
	0x87: {OP_ADD, 1, ARG_A, ARG_NONE},
	0x88: {OP_ADC, 1, ARG_B, ARG_NONE},
	0x89: {OP_ADC, 1, ARG_C, ARG_NONE},
	0x8A: {OP_ADC, 1, ARG_D, ARG_NONE},
	0x8B: {OP_ADC, 1, ARG_E, ARG_NONE},
	0x8C: {OP_ADC, 1, ARG_H, ARG_NONE},
	0x8D: {OP_ADC, 1, ARG_L, ARG_NONE},
	0x8E: {OP_ADC, 1, ARG_M, ARG_NONE},
	0x8F: {OP_ADC, 1, ARG_A, ARG_NONE},
	0x90: {OP_SUB, 1, ARG_B, ARG_NONE},
	0x91: {OP_SUB, 1, ARG_C, ARG_NONE},
	0x92: {OP_SUB, 1, ARG_D, ARG_NONE},
	0x93: {OP_SUB, 1, ARG_E, ARG_NONE},
	0x94: {OP_SUB, 1, ARG_H, ARG_NONE},
	0x95: {OP_SUB, 1, ARG_L, ARG_NONE},
	0x96: {OP_SUB, 1, ARG_M, ARG_NONE},
	0x97: {OP_SUB, 1, ARG_A, ARG_NONE},
	0x98: {OP_SBB, 1, ARG_B, ARG_NONE},
	0x99: {OP_SBB, 1, ARG_C, ARG_NONE},
	0x9A: {OP_SBB, 1, ARG_D, ARG_NONE},
	0x9B: {OP_SBB, 1, ARG_E, ARG_NONE},
	0x9C: {OP_SBB, 1, ARG_H, ARG_NONE},
	0x9D: {OP_SBB, 1, ARG_L, ARG_NONE},
	0x9E: {OP_SBB, 1, ARG_M, ARG_NONE},
	0x9F: {OP_SBB, 1, ARG_A, ARG_NONE},
	0xA0: {OP_ANA, 1, ARG_B, ARG_NONE},
	0xA1: {OP_ANA, 1, ARG_C, ARG_NONE},
	0xA2: {OP_ANA, 1, ARG_D, ARG_NONE},
	0xA3: {OP_ANA, 1, ARG_E, ARG_NONE},
	0xA4: {OP_ANA, 1, ARG_H, ARG_NONE},
	0xA5: {OP_ANA, 1, ARG_L, ARG_NONE},
	0xA6: {OP_ANA, 1, ARG_M, ARG_NONE},
	0xA7: {OP_ANA, 1, ARG_A, ARG_NONE},
	0xA8: {OP_XRA, 1, ARG_B, ARG_NONE},
	0xA9: {OP_XRA, 1, ARG_C, ARG_NONE},
	0xAA: {OP_XRA, 1, ARG_D, ARG_NONE},
	0xAB: {OP_XRA, 1, ARG_E, ARG_NONE},
	0xAC: {OP_XRA, 1, ARG_H, ARG_NONE},
	0xAD: {OP_XRA, 1, ARG_L, ARG_NONE},
	0xAE: {OP_XRA, 1, ARG_M, ARG_NONE},
	0xAF: {OP_XRA, 1, ARG_A, ARG_NONE},
	0xB0: {OP_ORA, 1, ARG_B, ARG_NONE},
	0xB1: {OP_ORA, 1, ARG_C, ARG_NONE},
	0xB2: {OP_ORA, 1, ARG_D, ARG_NONE},
	0xB3: {OP_ORA, 1, ARG_E, ARG_NONE},
	0xB4: {OP_ORA, 1, ARG_H, ARG_NONE},
	0xB5: {OP_ORA, 1, ARG_L, ARG_NONE},
	0xB6: {OP_ORA, 1, ARG_M, ARG_NONE},
	0xB7: {OP_ORA, 1, ARG_A, ARG_NONE},
	0xB8: {OP_CMP, 1, ARG_B, ARG_NONE},
	0xB9: {OP_CMP, 1, ARG_C, ARG_NONE},
	0xBA: {OP_CMP, 1, ARG_D, ARG_NONE},
	0xBB: {OP_CMP, 1, ARG_E, ARG_NONE},
	0xBC: {OP_CMP, 1, ARG_H, ARG_NONE},
	0xBD: {OP_CMP, 1, ARG_L, ARG_NONE},
	0xBE: {OP_CMP, 1, ARG_M, ARG_NONE},
	0xBF: {OP_CMP, 1, ARG_A, ARG_NONE},
	0xC0: {OP_RCC, 1, ARG_NZ, ARG_NONE},
	0xC1: {OP_POP, 1, ARG_BC, ARG_NONE},
	0xC2: {OP_JCC, 3, ARG_NZ, ARG_ADR},
	0xC3: {OP_JMP, 3, ARG_ADR, ARG_NONE},
	0xC4: {OP_CCC, 3, ARG_NZ, ARG_ADR},
	0xC5: {OP_PUSH, 1, ARG_BC, ARG_NONE},
	0xC6: {OP_ADI, 2, ARG_D8, ARG_NONE},
	0xC7: {OP_RST, 1, ARG_N0, ARG_NONE},
	0xC8: {OP_RCC, 1, ARG_Z, ARG_NONE},
	0xC9: {OP_RET, 1, ARG_NONE, ARG_NONE},
	0xCA: {OP_JCC, 3, ARG_Z, ARG_ADR},
	0xCB: {OP_NOP, 1, ARG_NONE, ARG_NONE},
	0xCC: {OP_CCC, 3, ARG_Z, ARG_ADR},
	0xCD: {OP_CALL, 3, ARG_ADR, ARG_NONE},
	0xCE: {OP_ACI, 2, ARG_D8, ARG_NONE},
	0xCF: {OP_RST, 1, ARG_N1, ARG_NONE},
	0xD0: {OP_RCC, 1, ARG_NC, ARG_NONE},
	0xD1: {OP_POP, 1, ARG_DE, ARG_NONE},
	0xD2: {OP_JCC, 3, ARG_NC, ARG_ADR},
	0xD3: {OP_OUT, 2, ARG_D8, ARG_NONE},
	0xD4: {OP_CCC, 3, ARG_NC, ARG_ADR},
	0xD5: {OP_PUSH, 1, ARG_DE, ARG_NONE},
	0xD6: {OP_SUI, 2, ARG_D8, ARG_NONE},
	0xD7: {OP_RST, 1, ARG_N2, ARG_NONE},
	0xD8: {OP_RCC, 1, ARG_CY, ARG_NONE},
	0xD9: {OP_NOP, 1, ARG_NONE, ARG_NONE},
	0xDA: {OP_JCC, 3, ARG_CY, ARG_ADR},
	0xDB: {OP_IN, 2, ARG_D8, ARG_NONE},
	0xDC: {OP_CCC, 3, ARG_CY, ARG_ADR},
	0xDD: {OP_NOP, 1, ARG_NONE, ARG_NONE},
	0xDE: {OP_SBI, 2, ARG_D8, ARG_NONE},
	0xDF: {OP_RST, 1, ARG_N3, ARG_NONE},
	0xE0: {OP_RCC, 1, ARG_PO, ARG_NONE},
	0xE1: {OP_POP, 1, ARG_HL, ARG_NONE},
	0xE2: {OP_JCC, 3, ARG_PO, ARG_ADR},
	0xE3: {OP_XTHL, 1, ARG_NONE, ARG_NONE},
	0xE4: {OP_CCC, 3, ARG_PO, ARG_ADR},
	0xE5: {OP_PUSH, 1, ARG_HL, ARG_NONE},
	0xE6: {OP_ANI, 2, ARG_D8, ARG_NONE},
	0xE7: {OP_RST, 1, ARG_N4, ARG_NONE},
	0xE8: {OP_RCC, 1, ARG_PE, ARG_NONE},
	0xE9: {OP_PCHL, 1, ARG_NONE, ARG_NONE},
	0xEA: {OP_JCC, 3, ARG_PE, ARG_ADR},
	0xEB: {OP_XCHG, 1, ARG_NONE, ARG_NONE},
	0xEC: {OP_CCC, 3, ARG_PE, ARG_ADR},
	0xED: {OP_NOP, 1, ARG_NONE, ARG_NONE},
	0xEE: {OP_XRI, 2, ARG_D8, ARG_NONE},
	0xEF: {OP_RST, 1, ARG_N5, ARG_NONE},
	0xF0: {OP_RCC, 1, ARG_P, ARG_NONE},
	0xF1: {OP_POP, 1, ARG_PSW, ARG_NONE},
	0xF2: {OP_JCC, 3, ARG_P, ARG_ADR},
	0xF3: {OP_DI, 1, ARG_NONE, ARG_NONE},
	0xF4: {OP_CCC, 3, ARG_P, ARG_ADR},
	0xF5: {OP_PUSH, 1, ARG_PSW, ARG_NONE},
	0xF6: {OP_ORI, 2, ARG_D8, ARG_NONE},
	0xF7: {OP_RST, 1, ARG_N6, ARG_NONE},
	0xF8: {OP_RCC, 1, ARG_MI, ARG_NONE},
	0xF9: {OP_SPHL, 1, ARG_NONE, ARG_NONE},
	0xFA: {OP_JCC, 3, ARG_MI, ARG_ADR},
	0xFB: {OP_EI, 1, ARG_NONE, ARG_NONE},
	0xFC: {OP_CCC, 3, ARG_MI, ARG_ADR},
	0xFD: {OP_NOP, 1, ARG_NONE, ARG_NONE},
	0xFE: {OP_CPI, 2, ARG_D8, ARG_NONE},
	0xFF: {OP_RST, 1, ARG_N7, ARG_NONE},
}
