// Package cpu implements an Intel 8080 instruction set interpreter and an
// assembler for it.
//
// The processor has seven 8-bit registers (A, B, C, D, E, H, L), of which
// B:C, D:E and H:L pair up as 16-bit registers, a 16-bit stack pointer and
// program counter, five condition flags and 64KiB of flat memory. Step fetches,
// decodes and executes one instruction through a table indexed by the opcode
// byte; all arithmetic wraps.
//
// The assembler accepts Intel mnemonics, with labels, equates, macros and
// compile-time expression evaluation.
package cpu
