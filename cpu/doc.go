// Package cpu implements the detonator microprocessor, its program ROM, and assembler.
//
// The CPU has four 16-bit signed general-purpose registers (r0-r3), five
// device registers (tms, vel, hit, prx, bam) written by the host or the
// program, a packed status word holding the program counter and ALU flags,
// and a 512-byte RAM reached through LDR/SDR.
//
// Programs are held in a Rom of at most 256 fixed-width lines. Each Line is
// four 16-bit fields: the opcode word, the result-or-jump-address (Roja)
// field, and two operands that are either register indices or immediates.
//
// The assembler reads a line-oriented text format with `.label:` definitions,
// `#` immediates, `.equ` constants and compile-time `$(...)` expressions.
package cpu
