package cpu

// Push stores value below SP, high byte at SP-1 and low byte at SP-2, then
// moves SP down by two.
func (cpu *Cpu) Push(value uint16) {
	cpu.Memory[cpu.SP-1] = byte(value >> 8)
	cpu.Memory[cpu.SP-2] = byte(value)
	cpu.SP -= 2
}

// Pop reads the low byte at SP and the high byte at SP+1, then moves SP up by two.
func (cpu *Cpu) Pop() (value uint16) {
	value = cpu.Read16(cpu.SP)
	cpu.SP += 2
	return
}

// Peek returns the word at the top of the stack without moving SP.
func (cpu *Cpu) Peek() uint16 {
	return cpu.Read16(cpu.SP)
}

// call pushes the address of the next instruction and jumps to target.
func (cpu *Cpu) call(target uint16) {
	cpu.Push(cpu.PC)
	cpu.PC = target
}

// ret returns to the address on the top of the stack.
func (cpu *Cpu) ret() {
	cpu.PC = cpu.Pop()
}
