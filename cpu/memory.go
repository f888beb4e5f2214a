package cpu

import (
	"fmt"
	"iter"
	"maps"
)

const (
	MEMORY_SIZE = 0x10000 // Bytes of addressable memory.
	STACK_RESET = 0xfffe  // Stack pointer after a reset.

	FRAMEBUFFER_START = 0x2400 // First byte of display memory.
	FRAMEBUFFER_END   = 0x4000 // One past the last byte of display memory.
)

var memoryMap = map[string]string{
	"MEMORY_SIZE":       fmt.Sprintf("%#x", MEMORY_SIZE),
	"STACK_RESET":       fmt.Sprintf("%#x", STACK_RESET),
	"FRAMEBUFFER_START": fmt.Sprintf("%#x", FRAMEBUFFER_START),
	"FRAMEBUFFER_END":   fmt.Sprintf("%#x", FRAMEBUFFER_END),
}

// Defines returns an iterator over the memory map, as assembler equates.
func (cpu *Cpu) Defines() iter.Seq2[string, string] {
	return maps.All(memoryMap)
}

// Read returns the byte at addr.
func (cpu *Cpu) Read(addr uint16) byte {
	return cpu.Memory[addr]
}

// Write sets the byte at addr.
func (cpu *Cpu) Write(addr uint16, value byte) {
	cpu.Memory[addr] = value
}

// Read16 returns the little-endian word at addr. The high byte wraps to 0x0000.
func (cpu *Cpu) Read16(addr uint16) uint16 {
	return uint16(cpu.Memory[addr+1])<<8 | uint16(cpu.Memory[addr])
}

// Write16 stores a little-endian word at addr.
func (cpu *Cpu) Write16(addr uint16, value uint16) {
	cpu.Memory[addr] = byte(value)
	cpu.Memory[addr+1] = byte(value >> 8)
}

// Framebuffer returns display memory. The slice aliases CPU memory.
func (cpu *Cpu) Framebuffer() []byte {
	return cpu.Memory[FRAMEBUFFER_START:FRAMEBUFFER_END]
}
