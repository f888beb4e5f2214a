// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"context"
	"fmt"
	"iter"
	"log"
	"maps"
	"slices"

	"github.com/ezrec/i8080/cpu"
	"github.com/ezrec/i8080/internal"
)

const (
	SCREEN_WIDTH  = 224 // Displayed width, after rotation.
	SCREEN_HEIGHT = 256 // Displayed height, after rotation.

	STEPS_PER_FRAME = 1000 // Default host throttle, in instructions per frame.
)

var _emulator_defines = map[string]string{
	"SCREEN_WIDTH":  fmt.Sprintf("%v", SCREEN_WIDTH),
	"SCREEN_HEIGHT": fmt.Sprintf("%v", SCREEN_HEIGHT),
}

// Emulator is the host driver. It owns the CPU and a set of breakpoints,
// and decides when the CPU steps.
type Emulator struct {
	Verbose  bool         // If set, enables verbose logging.
	*cpu.Cpu              // Reference to the CPU simulation.
	Program  *cpu.Program // Listing of the loaded image, if it was assembled.

	image       []byte
	breakpoints map[uint16]struct{}
}

// NewEmulator creates a new emulator.
func NewEmulator() (emu *Emulator) {
	emu = &Emulator{
		Cpu:         cpu.NewCpu(),
		Program:     &cpu.Program{},
		breakpoints: map[uint16]struct{}{},
	}

	return
}

// Defines returns an iterator over all of the defines
func (emu *Emulator) Defines() iter.Seq2[string, string] {
	return internal.ConcatSeq2(maps.All(_emulator_defines),
		emu.Cpu.Defines(),
	)
}

// Load copies a program image into memory, and resets the CPU.
// The CPU is left paused.
func (emu *Emulator) Load(image []byte) (err error) {
	emu.Cpu.Verbose = emu.Verbose

	err = emu.Cpu.Load(image)
	if err != nil {
		return
	}

	emu.image = slices.Clone(image)
	emu.Program = &cpu.Program{}

	return
}

// LoadProgram loads an assembled program, and keeps its listing for LineNo.
func (emu *Emulator) LoadProgram(prog *cpu.Program) (err error) {
	err = emu.Load(prog.Binary())
	if err != nil {
		return
	}

	emu.Program = prog

	return
}

// Reset reloads the last image. Breakpoints are kept.
func (emu *Emulator) Reset() {
	emu.Cpu.Verbose = emu.Verbose

	emu.Cpu.Reset()
	copy(emu.Cpu.Memory[:], emu.image)
}

// Pause clears the run flag.
func (emu *Emulator) Pause() {
	if emu.Verbose && emu.Cpu.Running {
		log.Printf("emulator: paused at %04x", emu.Cpu.PC)
	}
	emu.Cpu.Running = false
}

// Resume sets the run flag.
func (emu *Emulator) Resume() {
	emu.Cpu.Running = true
}

// AddBreakpoint adds a breakpoint address.
func (emu *Emulator) AddBreakpoint(addr uint16) {
	emu.breakpoints[addr] = struct{}{}
}

// RemoveBreakpoint removes a breakpoint address, returning false if it
// was not set.
func (emu *Emulator) RemoveBreakpoint(addr uint16) (ok bool) {
	_, ok = emu.breakpoints[addr]
	delete(emu.breakpoints, addr)
	return
}

// ToggleBreakpoint adds or removes a breakpoint, and returns true if it is now set.
func (emu *Emulator) ToggleBreakpoint(addr uint16) bool {
	if emu.RemoveBreakpoint(addr) {
		return false
	}
	emu.AddBreakpoint(addr)
	return true
}

// ClearBreakpoints removes all breakpoints.
func (emu *Emulator) ClearBreakpoints() {
	clear(emu.breakpoints)
}

// Breakpoints returns the breakpoint addresses in ascending order.
func (emu *Emulator) Breakpoints() []uint16 {
	return slices.Sorted(maps.Keys(emu.breakpoints))
}

// AtBreakpoint is true when PC is on a breakpoint.
func (emu *Emulator) AtBreakpoint() bool {
	_, ok := emu.breakpoints[emu.Cpu.PC]
	return ok
}

// LineNo returns the current line number for the executing opcode.
func (emu *Emulator) LineNo() int {
	dbg := emu.Program.Debug(emu.Cpu.PC)
	if dbg.Opcode == nil {
		return 0
	}

	return dbg.LineNo
}

// Step executes one instruction, regardless of the run flag. A breakpoint
// at the new PC clears the run flag.
func (emu *Emulator) Step() (err error) {
	// Set CPU verbosity
	emu.Cpu.Verbose = emu.Verbose

	pc := emu.Cpu.PC
	lineno := emu.LineNo()

	err = emu.Cpu.Step()
	if err != nil {
		emu.Cpu.Running = false
		err = &ErrRuntime{Address: pc, LineNo: lineno, Err: err}
		return
	}

	if emu.AtBreakpoint() {
		if emu.Verbose {
			log.Printf("emulator: breakpoint at %04x", emu.Cpu.PC)
		}
		emu.Cpu.Running = false
	}

	return
}

// Tick performs a single step of the emulator, if it is running.
// done is set once the run flag is clear, by a halt, a breakpoint
// or an error.
func (emu *Emulator) Tick() (done bool, err error) {
	if !emu.Cpu.Running {
		done = true
		return
	}

	err = emu.Step()
	done = !emu.Cpu.Running

	return
}

// Run ticks the emulator until the run flag clears, the context is
// cancelled or limit instructions have executed. A limit of zero or less
// is unlimited.
func (emu *Emulator) Run(ctx context.Context, limit int) (steps int, err error) {
	for limit <= 0 || steps < limit {
		if steps%1024 == 0 {
			err = ctx.Err()
			if err != nil {
				return
			}
		}

		if !emu.Cpu.Running {
			return
		}

		err = emu.Step()
		if err != nil {
			return
		}

		steps++
	}

	return
}
