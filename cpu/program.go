package cpu

import (
	"iter"
)

// Link is a reference to a label that is patched in after parsing.
type Link struct {
	Offset int    // Offset of the value in the opcode's data.
	Size   int    // Size of the value, one or two bytes.
	Label  string // Label to resolve.
}

// Opcode represents a line of assembled code with its source location and
// generated bytes.
type Opcode struct {
	LineNo  int
	Address int
	Words   []string
	Data    []byte
	Links   []Link
}

// Program is an assembled program listing.
type Program struct {
	Opcodes []Opcode
}

// Debug locates an address within a program listing.
type Debug struct {
	*Opcode
	Index int
}

// Debug returns the opcode that generated the byte at addr. The Opcode is
// nil if no line of the program covers addr.
func (prog *Program) Debug(addr uint16) (dbg Debug) {
	for n, op := range prog.Opcodes {
		if int(addr) >= op.Address && int(addr) < op.Address+len(op.Data) {
			dbg = Debug{
				Opcode: &prog.Opcodes[n],
				Index:  int(addr) - op.Address,
			}
			break
		}
	}

	return
}

// Binary returns the memory image of the program, starting at address zero.
// Gaps left by .org are zero filled.
func (prog *Program) Binary() (image []byte) {
	size := 0
	for _, op := range prog.Opcodes {
		size = max(size, op.Address+len(op.Data))
	}

	image = make([]byte, size)
	for addr, value := range prog.Codes() {
		image[addr] = value
	}

	return
}

// Codes iterates over every assembled byte and its address.
func (prog *Program) Codes() iter.Seq2[uint16, byte] {
	return func(yield func(addr uint16, value byte) bool) {
		for _, op := range prog.Opcodes {
			for n, value := range op.Data {
				if !yield(uint16(op.Address+n), value) {
					return
				}
			}
		}
	}
}
