package cpu

import (
	"errors"
	"fmt"
	"log"
)

// ErrImageSize is returned when a program image does not fit in memory.
var ErrImageSize = errors.New(f("image larger than memory"))

// State is the architectural state of the processor.
type State struct {
	A, B, C, D, E, H, L uint8  // Registers.
	SP                  uint16 // Stack pointer.
	PC                  uint16 // Program counter.
	Flags               Flags  // Condition codes.

	Running           bool // Run flag. Cleared by HLT.
	InterruptsEnabled bool // Set by EI, cleared by DI. Nothing consumes it.

	Memory [MEMORY_SIZE]byte // Flat memory, code and data alike.
}

// Cpu is the simulation context for an 8080.
type Cpu struct {
	Verbose bool // Set to enable an instruction trace on the log.

	State

	Steps int // Instructions executed since reset.
}

// NewCpu creates a CPU in its reset state.
func NewCpu() (cpu *Cpu) {
	cpu = &Cpu{}
	cpu.Reset()
	return
}

// Reset the CPU state.
// - Clears memory, the registers and the flags.
// - Sets SP to STACK_RESET and PC to zero.
// - Clears the run flag.
func (cpu *Cpu) Reset() {
	if cpu.Verbose {
		log.Printf("cpu: reset")
	}

	cpu.State = State{SP: STACK_RESET}
	cpu.Steps = 0
}

// Load resets the CPU and copies the image into memory at address zero.
func (cpu *Cpu) Load(image []byte) (err error) {
	if len(image) > MEMORY_SIZE {
		err = ErrImageSize
		return
	}

	cpu.Reset()
	copy(cpu.Memory[:], image)

	if cpu.Verbose {
		log.Printf("cpu: loaded %d bytes", len(image))
	}

	return
}

// Snapshot returns a copy of the processor state.
func (cpu *Cpu) Snapshot() State {
	return cpu.State
}

// Restore replaces the processor state with a snapshot.
func (cpu *Cpu) Restore(state State) {
	cpu.State = state
}

// Reg returns an 8-bit operand. ARG_M reads memory at H:L.
func (cpu *Cpu) Reg(arg CodeArg) byte {
	switch arg {
	case ARG_A:
		return cpu.A
	case ARG_B:
		return cpu.B
	case ARG_C:
		return cpu.C
	case ARG_D:
		return cpu.D
	case ARG_E:
		return cpu.E
	case ARG_H:
		return cpu.H
	case ARG_L:
		return cpu.L
	case ARG_M:
		return cpu.Memory[cpu.Pair(ARG_HL)]
	}

	panic(fmt.Sprintf("cpu: %v is not a register", arg))
}

// SetReg sets an 8-bit operand. ARG_M writes memory at H:L.
func (cpu *Cpu) SetReg(arg CodeArg, value byte) {
	switch arg {
	case ARG_A:
		cpu.A = value
	case ARG_B:
		cpu.B = value
	case ARG_C:
		cpu.C = value
	case ARG_D:
		cpu.D = value
	case ARG_E:
		cpu.E = value
	case ARG_H:
		cpu.H = value
	case ARG_L:
		cpu.L = value
	case ARG_M:
		cpu.Memory[cpu.Pair(ARG_HL)] = value
	default:
		panic(fmt.Sprintf("cpu: %v is not a register", arg))
	}
}

// Pair returns a register pair, high byte first. ARG_PSW is the accumulator
// over the status byte.
func (cpu *Cpu) Pair(arg CodeArg) uint16 {
	switch arg {
	case ARG_BC:
		return uint16(cpu.B)<<8 | uint16(cpu.C)
	case ARG_DE:
		return uint16(cpu.D)<<8 | uint16(cpu.E)
	case ARG_HL:
		return uint16(cpu.H)<<8 | uint16(cpu.L)
	case ARG_SP:
		return cpu.SP
	case ARG_PSW:
		return uint16(cpu.A)<<8 | uint16(cpu.Flags.PSW())
	}

	panic(fmt.Sprintf("cpu: %v is not a register pair", arg))
}

// SetPair sets a register pair from a 16-bit value.
func (cpu *Cpu) SetPair(arg CodeArg, value uint16) {
	hi, lo := byte(value>>8), byte(value)

	switch arg {
	case ARG_BC:
		cpu.B, cpu.C = hi, lo
	case ARG_DE:
		cpu.D, cpu.E = hi, lo
	case ARG_HL:
		cpu.H, cpu.L = hi, lo
	case ARG_SP:
		cpu.SP = value
	case ARG_PSW:
		cpu.A = hi
		cpu.Flags.SetPSW(lo)
	default:
		panic(fmt.Sprintf("cpu: %v is not a register pair", arg))
	}
}

// Condition evaluates a condition operand against the flags.
func (cpu *Cpu) Condition(arg CodeArg) bool {
	fl := &cpu.Flags

	switch arg {
	case ARG_NZ:
		return !fl.Zero
	case ARG_Z:
		return fl.Zero
	case ARG_NC:
		return !fl.Carry
	case ARG_CY:
		return fl.Carry
	case ARG_PO:
		return !fl.Parity
	case ARG_PE:
		return fl.Parity
	case ARG_P:
		return !fl.Sign
	case ARG_MI:
		return fl.Sign
	}

	panic(fmt.Sprintf("cpu: %v is not a condition", arg))
}

// String returns the current CPU state as a string.
func (cpu *Cpu) String() (text string) {
	regs := []string{
		"pc", "sp",
		"a", "b", "c", "d", "e", "h", "l",
		"flags", "run",
	}
	for _, reg := range regs {
		var strval string
		switch reg {
		case "pc":
			strval = fmt.Sprintf("%04X  %v", cpu.PC, Decode(&cpu.Memory, cpu.PC))
		case "sp":
			strval = fmt.Sprintf("%04X  [%04X]", cpu.SP, cpu.Peek())
		case "a", "b", "c", "d", "e", "h", "l":
			val := cpu.Reg(ARG_B + CodeArg(regIndex[reg[0]]))
			strval = fmt.Sprintf("%02X", val)
		case "flags":
			strval = cpu.Flags.String()
		case "run":
			strval = "halted"
			if cpu.Running {
				strval = "running"
			}
		}
		text += fmt.Sprintf("% 5s: %v\n", reg, strval)
	}

	return
}

// regIndex is the operand encoding of each register name.
var regIndex = map[byte]int{'b': 0, 'c': 1, 'd': 2, 'e': 3, 'h': 4, 'l': 5, 'm': 6, 'a': 7}

// FetchCode fetches the instruction at PC.
func (cpu *Cpu) FetchCode() (code Code, err error) {
	code = Decode(&cpu.Memory, cpu.PC)
	if code.Instruction().Op == OP_INVALID {
		err = ErrUnimplementedOpcode{Opcode: code.Opcode, Address: code.Address}
	}
	return
}

// Step executes a single instruction.
func (cpu *Cpu) Step() (err error) {
	code, err := cpu.FetchCode()
	if err != nil {
		return
	}

	err = cpu.Execute(code)
	return
}

// Execute executes a single decoded instruction.
func (cpu *Cpu) Execute(code Code) (err error) {
	inst := code.Instruction()

	if cpu.Verbose {
		log.Printf("%04x: %v", code.Address, code)
	}

	// PC moves past the whole instruction before any condition is tested,
	// so an untaken branch falls through to the next instruction.
	cpu.PC = code.Address + uint16(inst.Size)

	var fl Flags
	var result uint16

	switch inst.Op {
	case OP_NOP, OP_DAA:
		// pass
	case OP_IN, OP_OUT:
		// No port devices; the port byte is consumed.
	case OP_LXI:
		cpu.SetPair(inst.Arg1, code.D16())
	case OP_STAX:
		cpu.Write(cpu.Pair(inst.Arg1), cpu.A)
	case OP_LDAX:
		cpu.A = cpu.Read(cpu.Pair(inst.Arg1))
	case OP_SHLD:
		cpu.Write16(code.D16(), cpu.Pair(ARG_HL))
	case OP_LHLD:
		cpu.SetPair(ARG_HL, cpu.Read16(code.D16()))
	case OP_STA:
		cpu.Write(code.D16(), cpu.A)
	case OP_LDA:
		cpu.A = cpu.Read(code.D16())
	case OP_INX:
		cpu.SetPair(inst.Arg1, cpu.Pair(inst.Arg1)+1)
	case OP_DCX:
		cpu.SetPair(inst.Arg1, cpu.Pair(inst.Arg1)-1)
	case OP_INR, OP_DCR:
		delta := byte(1)
		if inst.Op == OP_DCR {
			delta = 0xff
		}
		var output byte
		output, fl = doIncDec(cpu.Reg(inst.Arg1), delta)
		cpu.SetReg(inst.Arg1, output)
	case OP_MVI:
		cpu.SetReg(inst.Arg1, code.D8())
	case OP_RLC, OP_RRC, OP_RAL, OP_RAR:
		cpu.A, fl.Carry = doRotate(inst.Op, cpu.A, cpu.Flags.Carry)
	case OP_DAD:
		sum := uint32(cpu.Pair(ARG_HL)) + uint32(cpu.Pair(inst.Arg1))
		cpu.SetPair(ARG_HL, uint16(sum))
		fl.Carry = sum > 0xffff
	case OP_CMA:
		cpu.A = ^cpu.A
	case OP_STC:
		fl.Carry = true
	case OP_CMC:
		fl.Carry = !cpu.Flags.Carry
	case OP_MOV:
		cpu.SetReg(inst.Arg1, cpu.Reg(inst.Arg2))
	case OP_HLT:
		cpu.Running = false
		if cpu.Verbose {
			log.Printf("cpu: halted at %04x", code.Address)
		}
	case OP_ADD, OP_ADC, OP_SUB, OP_SBB, OP_ANA, OP_XRA, OP_ORA:
		result, fl = doAlu(inst.Op, cpu.A, cpu.Reg(inst.Arg1), cpu.Flags.Carry)
		cpu.A = byte(result)
	case OP_CMP:
		_, fl = doAlu(inst.Op, cpu.A, cpu.Reg(inst.Arg1), cpu.Flags.Carry)
	case OP_ADI, OP_ACI, OP_SUI, OP_SBI, OP_ANI, OP_XRI, OP_ORI:
		result, fl = doAlu(inst.Op, cpu.A, code.D8(), cpu.Flags.Carry)
		cpu.A = byte(result)
	case OP_CPI:
		_, fl = doAlu(inst.Op, cpu.A, code.D8(), cpu.Flags.Carry)
	case OP_RCC:
		if cpu.Condition(inst.Arg1) {
			cpu.ret()
		}
	case OP_RET:
		cpu.ret()
	case OP_POP:
		cpu.SetPair(inst.Arg1, cpu.Pop())
	case OP_PUSH:
		cpu.Push(cpu.Pair(inst.Arg1))
	case OP_JCC:
		if cpu.Condition(inst.Arg1) {
			cpu.PC = code.D16()
		}
	case OP_JMP:
		cpu.PC = code.D16()
	case OP_CCC:
		if cpu.Condition(inst.Arg1) {
			cpu.call(code.D16())
		}
	case OP_CALL:
		cpu.call(code.D16())
	case OP_RST:
		cpu.call(inst.Arg1.Vector())
	case OP_XTHL:
		hl := cpu.Pair(ARG_HL)
		cpu.SetPair(ARG_HL, cpu.Peek())
		cpu.Write16(cpu.SP, hl)
	case OP_PCHL:
		cpu.PC = cpu.Pair(ARG_HL)
	case OP_XCHG:
		de := cpu.Pair(ARG_DE)
		cpu.SetPair(ARG_DE, cpu.Pair(ARG_HL))
		cpu.SetPair(ARG_HL, de)
	case OP_SPHL:
		cpu.SP = cpu.Pair(ARG_HL)
	case OP_DI:
		cpu.InterruptsEnabled = false
	case OP_EI:
		cpu.InterruptsEnabled = true
	default:
		cpu.PC = code.Address
		err = ErrUnimplementedOpcode{Opcode: code.Opcode, Address: code.Address}
		return
	}

	cpu.Flags.Update(fl, inst.Op.Affects())
	cpu.Steps++

	return
}
