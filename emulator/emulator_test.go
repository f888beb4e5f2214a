package emulator

import (
	"context"
	"errors"
	"maps"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ezrec/i8080/cpu"
)

func TestEmulator(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()

	assert.False(emu.Verbose)
	assert.False(emu.Cpu.Running)
	assert.Equal(uint16(cpu.STACK_RESET), emu.Cpu.SP)
	assert.Empty(emu.Breakpoints())
	assert.Equal(0, emu.LineNo())

	defines := maps.Collect(emu.Defines())
	assert.Equal("224", defines["SCREEN_WIDTH"])
	assert.Equal("256", defines["SCREEN_HEIGHT"])
	assert.Equal("0x2400", defines["FRAMEBUFFER_START"])
}

func loadSource(t *testing.T, emu *Emulator, program ...string) {
	asm := &cpu.Assembler{}
	prog, err := asm.Parse(strings.NewReader(strings.Join(program, "\n")))
	require.NoError(t, err)
	require.NoError(t, emu.LoadProgram(prog))
}

func TestEmulatorRun(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()
	assert.NoError(emu.Load([]byte{0x06, 0x05, 0x3c, 0x76}))
	assert.False(emu.Cpu.Running)

	// Paused, so nothing runs.
	steps, err := emu.Run(context.Background(), 0)
	assert.NoError(err)
	assert.Equal(0, steps)

	emu.Resume()
	steps, err = emu.Run(context.Background(), 0)
	assert.NoError(err)
	assert.Equal(3, steps)
	assert.Equal(uint8(5), emu.Cpu.B)
	assert.Equal(uint8(1), emu.Cpu.A)
	assert.Equal(uint16(4), emu.Cpu.PC)
	assert.False(emu.Cpu.Running)
}

func TestEmulatorTick(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()
	assert.NoError(emu.Load([]byte{0x00, 0x76}))

	done, err := emu.Tick()
	assert.NoError(err)
	assert.True(done)
	assert.Equal(uint16(0), emu.Cpu.PC)

	emu.Resume()
	done, err = emu.Tick()
	assert.NoError(err)
	assert.False(done)
	assert.Equal(uint16(1), emu.Cpu.PC)

	done, err = emu.Tick()
	assert.NoError(err)
	assert.True(done)
	assert.Equal(uint16(2), emu.Cpu.PC)
}

func TestEmulatorLimit(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()
	loadSource(t, emu, "loop: JMP loop")
	emu.Resume()

	steps, err := emu.Run(context.Background(), 100)
	assert.NoError(err)
	assert.Equal(100, steps)
	assert.True(emu.Cpu.Running)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	steps, err = emu.Run(ctx, 0)
	assert.ErrorIs(err, context.Canceled)
	assert.Equal(0, steps)
}

func TestEmulatorBreakpoints(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()
	loadSource(t, emu,
		"       MVI B,3",
		"loop:  DCR B",
		"       JNZ loop",
		"       HLT",
	)

	emu.AddBreakpoint(0x0002)
	emu.AddBreakpoint(0x0006)
	emu.AddBreakpoint(0x0002)
	assert.Equal([]uint16{0x0002, 0x0006}, emu.Breakpoints())

	emu.Resume()
	steps, err := emu.Run(context.Background(), 0)
	assert.NoError(err)
	assert.Equal(1, steps)
	assert.True(emu.AtBreakpoint())
	assert.False(emu.Cpu.Running)
	assert.Equal(2, emu.LineNo())

	// Resuming steps off the breakpoint before checking again.
	emu.Resume()
	steps, err = emu.Run(context.Background(), 0)
	assert.NoError(err)
	assert.Equal(2, steps)
	assert.Equal(uint16(0x0002), emu.Cpu.PC)
	assert.Equal(uint8(2), emu.Cpu.B)

	assert.False(emu.ToggleBreakpoint(0x0002))
	emu.Resume()
	_, err = emu.Run(context.Background(), 0)
	assert.NoError(err)
	assert.Equal(uint16(0x0006), emu.Cpu.PC)
	assert.Equal(uint8(0), emu.Cpu.B)
	assert.Equal(4, emu.LineNo())

	assert.True(emu.RemoveBreakpoint(0x0006))
	assert.False(emu.RemoveBreakpoint(0x0006))
	assert.True(emu.ToggleBreakpoint(0x0008))
	assert.Equal([]uint16{0x0008}, emu.Breakpoints())

	emu.ClearBreakpoints()
	assert.Empty(emu.Breakpoints())
}

func TestEmulatorReset(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()
	assert.NoError(emu.Load([]byte{0x3e, 0x42, 0x32, 0x00, 0x00, 0x76}))
	emu.AddBreakpoint(0x0005)

	emu.Resume()
	_, err := emu.Run(context.Background(), 0)
	assert.NoError(err)
	assert.Equal(uint8(0x42), emu.Cpu.Memory[0])

	emu.Reset()
	assert.Equal(uint8(0x3e), emu.Cpu.Memory[0])
	assert.Equal(uint16(0), emu.Cpu.PC)
	assert.Equal(uint8(0), emu.Cpu.A)
	assert.False(emu.Cpu.Running)
	assert.Equal([]uint16{0x0005}, emu.Breakpoints())
}

func TestEmulatorPause(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()
	loadSource(t, emu, "loop: JMP loop")
	emu.Resume()
	assert.True(emu.Cpu.Running)

	emu.Pause()
	done, err := emu.Tick()
	assert.True(done)
	assert.NoError(err)
}

func TestEmulatorFramebuffer(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()
	loadSource(t, emu,
		"    MVI A,0x81",
		"    STA FRAMEBUFFER_START",
		"    STA $(FRAMEBUFFER_END - 1)",
		"    HLT",
	)
	emu.Resume()
	_, err := emu.Run(context.Background(), 0)
	assert.NoError(err)

	fb := emu.Framebuffer()
	assert.Equal(SCREEN_WIDTH*SCREEN_HEIGHT/8, len(fb))
	assert.Equal(uint8(0x81), fb[0])
	assert.Equal(uint8(0x81), fb[len(fb)-1])
}

func TestErrRuntime(t *testing.T) {
	assert := assert.New(t)

	inner := cpu.ErrUnimplementedOpcode{Opcode: 0x08, Address: 0x1234}
	var err error = &ErrRuntime{Address: 0x1234, Err: inner}

	assert.ErrorIs(err, cpu.ErrUnimplementedOpcode{})
	assert.Contains(err.Error(), "0x1234")

	var runtime *ErrRuntime
	assert.True(errors.As(err, &runtime))
	assert.Equal(uint16(0x1234), runtime.Address)

	err = &ErrRuntime{Address: 0x10, LineNo: 7, Err: inner}
	assert.Contains(err.Error(), "line 7")
}
