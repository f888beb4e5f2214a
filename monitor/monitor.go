// Package monitor is an interactive debugger for the emulator: breakpoints,
// registers, memory and single stepping, driven one command line at a time.
package monitor

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/ezrec/i8080/cpu"
	"github.com/ezrec/i8080/emulator"
	"github.com/ezrec/i8080/translate"
)

var f = translate.From

var (
	ErrCommandInvalid = errors.New(f("not a valid command"))
	ErrRegisterName   = errors.New(f("not a register"))
)

// ErrUsage reports a command with the wrong arguments.
type ErrUsage string

func (err ErrUsage) Error() string {
	return f("usage: %v", string(err))
}

// Action is what the caller should do after a command.
type Action int

const (
	ACTION_NONE     = Action(iota) // Read the next command.
	ACTION_CONTINUE                // Leave the monitor and resume the emulator.
	ACTION_QUIT                    // Leave the monitor and exit.
)

const (
	MEM_COUNT = 64 // Default bytes dumped by 'mem'.
	DIS_COUNT = 8  // Default instructions listed by 'dis'.
)

// LineReader reads a line of input. golang.org/x/term.Terminal is one.
type LineReader interface {
	ReadLine() (line string, err error)
}

type scanReader struct {
	scanner *bufio.Scanner
}

func (sr *scanReader) ReadLine() (line string, err error) {
	if !sr.scanner.Scan() {
		err = sr.scanner.Err()
		if err == nil {
			err = io.EOF
		}
		return
	}

	line = sr.scanner.Text()
	return
}

// NewScanReader reads command lines from a plain stream.
func NewScanReader(input io.Reader) LineReader {
	return &scanReader{scanner: bufio.NewScanner(input)}
}

// Monitor is a debugger attached to an emulator.
type Monitor struct {
	Emulator *emulator.Emulator
	Input    LineReader
	Output   io.Writer

	lastcmd []string
}

// NewMonitor creates a monitor for an emulator.
func NewMonitor(emu *emulator.Emulator, input LineReader, output io.Writer) *Monitor {
	return &Monitor{
		Emulator: emu,
		Input:    input,
		Output:   output,
	}
}

func (mon *Monitor) printf(format string, args ...any) {
	fmt.Fprintf(mon.Output, format, args...)
}

// Run reads and executes commands until one leaves the monitor.
// End of input is the same as 'quit'.
func (mon *Monitor) Run() (action Action, err error) {
	for {
		var line string
		line, err = mon.Input.ReadLine()
		if errors.Is(err, io.EOF) {
			err = nil
			action = ACTION_QUIT
			return
		}
		if err != nil {
			return
		}

		var cerr error
		action, cerr = mon.Exec(line)
		if cerr != nil {
			mon.printf("error: %v\n", cerr)
		}
		if action != ACTION_NONE {
			return
		}
	}
}

// Exec executes a single command line. An empty line repeats the last command.
func (mon *Monitor) Exec(line string) (action Action, err error) {
	args := strings.Fields(line)

	if len(args) == 0 {
		if len(mon.lastcmd) == 0 {
			return
		}
		args = mon.lastcmd
	} else {
		mon.lastcmd = args
	}

	cmd := args[0]
	args = args[1:]

	switch cmd {
	case "b", "bp", "break":
		err = mon.doBreak(args)
	case "r", "reg", "regs":
		err = mon.doReg(args)
	case "m", "mem", "memory":
		err = mon.doMem(args)
	case "set":
		err = mon.doSet(args)
	case "d", "dis", "disassemble":
		err = mon.doDis(args)
	case "s", "n", "step", "next":
		err = mon.doStep(args)
	case "c", "cont", "continue":
		mon.Emulator.Resume()
		action = ACTION_CONTINUE
	case "reset":
		mon.Emulator.Reset()
		mon.printf("%v", mon.Emulator.Cpu)
	case "q", "quit", "exit":
		action = ACTION_QUIT
	case "h", "help", "?":
		mon.printf("%v", helpText)
	default:
		err = fmt.Errorf("'%v' %w", cmd, ErrCommandInvalid)
	}

	return
}

const helpText = `break [add ADDR|list|rm ADDR|clear]
reg [NAME [VALUE]]
mem [ADDR] [COUNT]
set ADDR VALUE...
dis [ADDR] [COUNT]
step [COUNT]
continue
reset
quit
`

// value parses a number, or the name of a define.
func (mon *Monitor) value(word string) (value int, err error) {
	value, err = cpu.ParseValue(word)
	if err == nil {
		return
	}

	for name, define := range mon.Emulator.Defines() {
		if name != word {
			continue
		}
		return cpu.ParseValue(define)
	}

	return
}

func (mon *Monitor) address(word string) (addr uint16, err error) {
	value, err := mon.value(word)
	if err != nil {
		return
	}

	if value < 0 || value >= cpu.MEMORY_SIZE {
		err = fmt.Errorf("%w: %v", cpu.ErrValueRange, word)
		return
	}

	addr = uint16(value)
	return
}

func (mon *Monitor) doBreak(args []string) (err error) {
	const usage = "break [add ADDR|list|rm ADDR|clear]"

	emu := mon.Emulator

	if len(args) == 0 {
		args = []string{"list"}
	}

	cmd := args[0]
	args = args[1:]

	switch cmd {
	case "a", "add":
		if len(args) != 1 {
			err = ErrUsage("break add ADDR")
			return
		}
		var addr uint16
		addr, err = mon.address(args[0])
		if err != nil {
			return
		}
		emu.AddBreakpoint(addr)
		mon.printf("breakpoint added [%04X]\n", addr)
	case "l", "ls", "list":
		for n, addr := range emu.Breakpoints() {
			text, _ := cpu.Disassemble(&emu.Cpu.Memory, addr)
			mon.printf("#%d: %04X  %v\n", n, addr, text)
		}
	case "r", "rm", "remove":
		if len(args) != 1 {
			err = ErrUsage("break rm ADDR")
			return
		}
		var addr uint16
		addr, err = mon.address(args[0])
		if err != nil {
			return
		}
		if emu.RemoveBreakpoint(addr) {
			mon.printf("breakpoint removed [%04X]\n", addr)
		} else {
			mon.printf("no breakpoint at [%04X]\n", addr)
		}
	case "clear":
		emu.ClearBreakpoints()
		mon.printf("breakpoints cleared\n")
	default:
		err = ErrUsage(usage)
	}

	return
}

// Registers by name, and their width in bytes.
var _registers = map[string](struct {
	arg  cpu.CodeArg
	size int
}){
	"A":   {cpu.ARG_A, 1},
	"B":   {cpu.ARG_B, 1},
	"C":   {cpu.ARG_C, 1},
	"D":   {cpu.ARG_D, 1},
	"E":   {cpu.ARG_E, 1},
	"H":   {cpu.ARG_H, 1},
	"L":   {cpu.ARG_L, 1},
	"M":   {cpu.ARG_M, 1},
	"BC":  {cpu.ARG_BC, 2},
	"DE":  {cpu.ARG_DE, 2},
	"HL":  {cpu.ARG_HL, 2},
	"SP":  {cpu.ARG_SP, 2},
	"PSW": {cpu.ARG_PSW, 2},
	"PC":  {cpu.ARG_NONE, 2},
}

func (mon *Monitor) doReg(args []string) (err error) {
	c := mon.Emulator.Cpu

	if len(args) == 0 {
		mon.printf("%v", c)
		return
	}

	if len(args) > 2 {
		err = ErrUsage("reg [NAME [VALUE]]")
		return
	}

	name := strings.ToUpper(args[0])
	reg, ok := _registers[name]
	if !ok {
		err = fmt.Errorf("'%v' %w", args[0], ErrRegisterName)
		return
	}

	if len(args) == 2 {
		var value int
		value, err = mon.value(args[1])
		if err != nil {
			return
		}
		if value < -(1<<(8*reg.size-1)) || value >= 1<<(8*reg.size) {
			err = fmt.Errorf("%w: %v", cpu.ErrValueRange, args[1])
			return
		}
		switch {
		case name == "PC":
			c.PC = uint16(value)
		case reg.size == 1:
			c.SetReg(reg.arg, byte(value))
		default:
			c.SetPair(reg.arg, uint16(value))
		}
	}

	switch {
	case name == "PC":
		mon.printf("%v: %04X\n", name, c.PC)
	case reg.size == 1:
		mon.printf("%v: %02X\n", name, c.Reg(reg.arg))
	default:
		mon.printf("%v: %04X\n", name, c.Pair(reg.arg))
	}

	return
}

func (mon *Monitor) doMem(args []string) (err error) {
	c := mon.Emulator.Cpu

	if len(args) > 2 {
		err = ErrUsage("mem [ADDR] [COUNT]")
		return
	}

	addr := c.PC
	count := MEM_COUNT

	if len(args) > 0 {
		addr, err = mon.address(args[0])
		if err != nil {
			return
		}
	}

	if len(args) > 1 {
		count, err = mon.value(args[1])
		if err != nil {
			return
		}
	}

	mon.dump(addr, count)

	return
}

// dump prints memory, 16 bytes per line. Addresses wrap.
func (mon *Monitor) dump(addr uint16, count int) {
	c := mon.Emulator.Cpu

	var line strings.Builder
	for n := range count {
		here := addr + uint16(n)
		if n%16 == 0 {
			if n != 0 {
				mon.printf("%v\n", line.String())
				line.Reset()
			}
			fmt.Fprintf(&line, "%04X:", here)
		}
		fmt.Fprintf(&line, " %02X", c.Read(here))
	}

	if line.Len() != 0 {
		mon.printf("%v\n", line.String())
	}
}

func (mon *Monitor) doSet(args []string) (err error) {
	if len(args) < 2 {
		err = ErrUsage("set ADDR VALUE...")
		return
	}

	addr, err := mon.address(args[0])
	if err != nil {
		return
	}

	data := make([]byte, 0, len(args)-1)
	for _, arg := range args[1:] {
		var value int
		value, err = mon.value(arg)
		if err != nil {
			return
		}
		if value < -128 || value > 0xff {
			err = fmt.Errorf("%w: %v", cpu.ErrValueRange, arg)
			return
		}
		data = append(data, byte(value))
	}

	for n, value := range data {
		mon.Emulator.Cpu.Write(addr+uint16(n), value)
	}

	mon.dump(addr, len(data))

	return
}

func (mon *Monitor) doDis(args []string) (err error) {
	emu := mon.Emulator

	if len(args) > 2 {
		err = ErrUsage("dis [ADDR] [COUNT]")
		return
	}

	addr := emu.Cpu.PC
	count := DIS_COUNT

	if len(args) > 0 {
		addr, err = mon.address(args[0])
		if err != nil {
			return
		}
	}

	if len(args) > 1 {
		count, err = mon.value(args[1])
		if err != nil {
			return
		}
	}

	for range count {
		addr += mon.listing(addr)
	}

	return
}

// listing prints one disassembled instruction, and returns its size.
func (mon *Monitor) listing(addr uint16) uint16 {
	emu := mon.Emulator

	code := cpu.Decode(&emu.Cpu.Memory, addr)

	mark := ' '
	if addr == emu.Cpu.PC {
		mark = '>'
	}
	brk := ' '
	for _, bp := range emu.Breakpoints() {
		if bp == addr {
			brk = '*'
			break
		}
	}

	var hex []string
	for _, value := range code.Bytes() {
		hex = append(hex, fmt.Sprintf("%02X", value))
	}

	mon.printf("%c%c%04X  %-8v  %v\n", brk, mark, addr, strings.Join(hex, " "), code)

	return uint16(code.Size())
}

func (mon *Monitor) doStep(args []string) (err error) {
	emu := mon.Emulator

	if len(args) > 1 {
		err = ErrUsage("step [COUNT]")
		return
	}

	count := 1
	if len(args) == 1 {
		count, err = mon.value(args[0])
		if err != nil {
			return
		}
	}

	for range count {
		err = emu.Step()
		if err != nil {
			return
		}
		if emu.AtBreakpoint() {
			break
		}
	}

	emu.Pause()
	mon.listing(emu.Cpu.PC)

	return
}
