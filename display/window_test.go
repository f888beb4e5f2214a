package display

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/i8080/cpu"
	"github.com/ezrec/i8080/emulator"
)

func newWindow(t *testing.T, image []byte) *Window {
	emu := emulator.NewEmulator()
	assert.NoError(t, emu.Load(image))
	return NewWindow(emu)
}

func TestWindowFrame(t *testing.T) {
	assert := assert.New(t)

	// loop: INX B; JMP loop
	w := newWindow(t, []byte{0x03, 0xc3, 0x00, 0x00})
	w.StepsPerFrame = 10

	// Paused, nothing runs.
	assert.NoError(w.Frame())
	assert.Equal(0, w.Emulator.Cpu.Steps)

	w.Emulator.Resume()
	assert.NoError(w.Frame())
	assert.Equal(10, w.Emulator.Cpu.Steps)
	assert.Equal(uint16(5), w.Emulator.Cpu.Pair(cpu.ARG_BC))

	w.StepsPerFrame = 0
	assert.NoError(w.Frame())
	assert.Equal(10+emulator.STEPS_PER_FRAME, w.Emulator.Cpu.Steps)
	assert.NoError(w.Err())
}

func TestWindowCommand(t *testing.T) {
	assert := assert.New(t)

	// MVI A,1; MVI A,2; HLT
	w := newWindow(t, []byte{0x3e, 0x01, 0x3e, 0x02, 0x76})

	quit, err := w.Command(CMD_STEP)
	assert.False(quit)
	assert.NoError(err)
	assert.Equal(uint8(1), w.Emulator.Cpu.A)
	assert.False(w.Emulator.Cpu.Running)

	quit, err = w.Command(CMD_BREAK)
	assert.NoError(err)
	assert.False(quit)
	assert.Equal([]uint16{0x0002}, w.Emulator.Breakpoints())

	quit, err = w.Command(CMD_BREAK)
	assert.NoError(err)
	assert.Empty(w.Emulator.Breakpoints())

	_, err = w.Command(CMD_PAUSE)
	assert.NoError(err)
	assert.True(w.Emulator.Cpu.Running)

	// Stepping is ignored while running.
	_, err = w.Command(CMD_STEP)
	assert.NoError(err)
	assert.Equal(uint8(1), w.Emulator.Cpu.A)

	assert.NoError(w.Frame())
	assert.Equal(uint8(2), w.Emulator.Cpu.A)
	assert.False(w.Emulator.Cpu.Running)
	assert.Equal(uint16(5), w.Emulator.Cpu.PC)

	_, err = w.Command(CMD_PAUSE)
	assert.NoError(err)
	assert.True(w.Emulator.Cpu.Running)
	_, err = w.Command(CMD_PAUSE)
	assert.NoError(err)
	assert.False(w.Emulator.Cpu.Running)

	quit, err = w.Command(CMD_QUIT)
	assert.True(quit)
	assert.NoError(err)
}

func TestWindowPixels(t *testing.T) {
	assert := assert.New(t)

	// MVI A,0x80; STA 0x2400; HLT
	w := newWindow(t, []byte{0x3e, 0x80, 0x32, 0x00, 0x24, 0x76})
	w.Emulator.Resume()
	assert.NoError(w.Frame())

	pix := w.Pixels()
	assert.Equal(PixelOn[:], pixelAt(pix, 0, emulator.SCREEN_HEIGHT-1))
}
