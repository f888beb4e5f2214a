package display

import (
	"errors"
	"log"

	"github.com/ezrec/i8080/emulator"
	"github.com/ezrec/i8080/translate"
)

var f = translate.From

var (
	ErrNoDisplay = errors.New(f("built without a display"))
)

// Command is a keyboard action on the window.
type Command int

const (
	CMD_NONE  = Command(iota)
	CMD_PAUSE // Toggle pause and resume.
	CMD_STEP  // Single step while paused.
	CMD_BREAK // Toggle a breakpoint at PC.
	CMD_QUIT  // Close the window.
)

// Window shows the framebuffer of an emulator, and drives it one frame at
// a time.
type Window struct {
	Verbose       bool
	Emulator      *emulator.Emulator
	StepsPerFrame int // Instructions per frame. Zero selects emulator.STEPS_PER_FRAME.
	Scale         int // Window scale factor. Zero is one.

	pix []byte
	err error
}

// NewWindow creates a window for an emulator.
func NewWindow(emu *emulator.Emulator) (w *Window) {
	w = &Window{
		Emulator: emu,
		pix:      make([]byte, emulator.SCREEN_WIDTH*emulator.SCREEN_HEIGHT*PIXEL_BYTES),
	}

	return
}

// Err returns the runtime error that stopped the emulator, if any.
func (w *Window) Err() error {
	return w.err
}

// Command performs a keyboard action. quit is set by CMD_QUIT.
func (w *Window) Command(cmd Command) (quit bool, err error) {
	emu := w.Emulator

	switch cmd {
	case CMD_PAUSE:
		if emu.Cpu.Running {
			emu.Pause()
		} else {
			emu.Resume()
		}
	case CMD_STEP:
		if emu.Cpu.Running {
			break
		}
		err = emu.Step()
		// A single step never leaves the CPU running.
		emu.Pause()
	case CMD_BREAK:
		set := emu.ToggleBreakpoint(emu.Cpu.PC)
		if w.Verbose {
			log.Printf("display: breakpoint %04x %v", emu.Cpu.PC, set)
		}
	case CMD_QUIT:
		quit = true
	}

	if err != nil {
		w.err = err
	}

	return
}

// Frame runs up to StepsPerFrame instructions while the emulator is running.
func (w *Window) Frame() (err error) {
	steps := w.StepsPerFrame
	if steps <= 0 {
		steps = emulator.STEPS_PER_FRAME
	}

	for range steps {
		var done bool
		done, err = w.Emulator.Tick()
		if err != nil {
			w.err = err
			return
		}
		if done {
			break
		}
	}

	return
}

// Pixels returns the decoded framebuffer as RGBA.
func (w *Window) Pixels() []byte {
	Decode(w.Emulator.Framebuffer(), w.pix)
	return w.pix
}
