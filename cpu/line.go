package cpu

import (
	"fmt"
	"strings"
)

// LINE_SIZE is the size in bytes of a packed line.
const LINE_SIZE = 8

// Line is one fixed-width instruction: opcode word, result-or-jump-address, and two operands.
type Line struct {
	Opcode Opcode
	Roja   int16 // Destination register, or jump target line for jumps.
	Arg1   int16
	Arg2   int16
}

// MakeLine builds a line from its decoded parts.
func MakeLine(op Instruction, roja int16, arg1 int16, arg1Imm bool, arg2 int16, arg2Imm bool) Line {
	return Line{
		Opcode: MakeOpcode(op, arg1Imm, arg2Imm),
		Roja:   roja,
		Arg1:   arg1,
		Arg2:   arg2,
	}
}

// Pack returns the line as a single 64-bit word, opcode in the low 16 bits.
func (line Line) Pack() uint64 {
	return uint64(line.Opcode) |
		uint64(uint16(line.Roja))<<16 |
		uint64(uint16(line.Arg1))<<32 |
		uint64(uint16(line.Arg2))<<48
}

// UnpackLine is the inverse of Line.Pack.
func UnpackLine(word uint64) Line {
	return Line{
		Opcode: Opcode(word & 0xffff),
		Roja:   int16(word >> 16),
		Arg1:   int16(word >> 32),
		Arg2:   int16(word >> 48),
	}
}

// operand renders a register-or-immediate operand.
func operand(value int16, imm bool) string {
	if imm {
		return fmt.Sprintf("#%d", value)
	}
	reg := Register(value)
	if !reg.Valid() {
		return fmt.Sprintf("?%d", value)
	}
	return reg.String()
}

// Text disassembles the line back into assembler syntax.
// Jump targets are rendered as literal line numbers.
func (line Line) Text() string {
	op, arg1Imm, arg2Imm := line.Opcode.Decode()
	if !op.Valid() {
		return fmt.Sprintf("?%#04x", uint16(line.Opcode))
	}

	words := []string{op.String()}
	arity := op.Arity()
	if arity > 0 {
		if op.IsJump() {
			words = append(words, fmt.Sprintf("#%d", line.Roja))
		} else {
			words = append(words, operand(line.Roja, false))
		}
	}
	if arity > 1 {
		words = append(words, operand(line.Arg1, arg1Imm))
	}
	if arity > 2 {
		words = append(words, operand(line.Arg2, arg2Imm))
	}

	return strings.Join(words, " ")
}

// String describes the line with the role of each field.
func (line Line) String() string {
	op, arg1Imm, arg2Imm := line.Opcode.Decode()

	roja := "register"
	if op.IsJump() {
		roja = "label"
	}
	mode := func(imm bool) string {
		if imm {
			return "literal"
		}
		return "register"
	}

	return fmt.Sprintf("%v %s(%d) %s(%d) %s(%d)", op, roja, line.Roja, mode(arg1Imm), line.Arg1, mode(arg2Imm), line.Arg2)
}
