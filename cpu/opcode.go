package cpu

import (
	"strings"
)

// Instruction is an operation code.
type Instruction int

//go:generate go tool stringer -linecomment -type=Instruction
const (
	OP_NOP = Instruction(0)  // nop
	OP_MOV = Instruction(1)  // mov
	OP_JMP = Instruction(2)  // jmp
	OP_JE  = Instruction(3)  // je
	OP_JNE = Instruction(4)  // jne
	OP_JZ  = Instruction(5)  // jz
	OP_JNZ = Instruction(6)  // jnz
	OP_JG  = Instruction(7)  // jg
	OP_JL  = Instruction(8)  // jl
	OP_JGE = Instruction(9)  // jge
	OP_JLE = Instruction(10) // jle
	OP_JS  = Instruction(11) // js
	OP_ADD = Instruction(12) // add
	OP_SUB = Instruction(13) // sub
	OP_MUL = Instruction(14) // mul
	OP_DIV = Instruction(15) // div
	OP_AND = Instruction(16) // and
	OP_ORR = Instruction(17) // orr
	OP_NOT = Instruction(18) // not
	OP_XOR = Instruction(19) // xor
	OP_LDR = Instruction(20) // ldr
	OP_SDR = Instruction(21) // sdr
)

// Opcode word layout.
const (
	OPCODE_ARG1_IMMEDIATE = uint16(1 << 15) // Arg1 is an immediate.
	OPCODE_ARG2_IMMEDIATE = uint16(1 << 14) // Arg2 is an immediate.
	OPCODE_OP_MASK        = uint16(1<<14 - 1)
)

// Valid returns true if the instruction is a known operation.
func (op Instruction) Valid() bool {
	return op >= OP_NOP && op <= OP_SDR
}

// IsJump returns true if Roja is a jump target line rather than a register.
func (op Instruction) IsJump() bool {
	return op >= OP_JMP && op <= OP_JS
}

// IsMath returns true if the instruction writes a computed result to Roja.
func (op Instruction) IsMath() bool {
	return op == OP_MOV || (op >= OP_ADD && op <= OP_XOR)
}

// IsMemory returns true for RAM load and store.
func (op Instruction) IsMemory() bool {
	return op == OP_LDR || op == OP_SDR
}

// Arity returns the number of arguments the instruction takes, including Roja.
func (op Instruction) Arity() int {
	switch op {
	case OP_NOP:
		return 0
	case OP_JMP, OP_JZ, OP_JNZ, OP_JS:
		return 1
	case OP_MOV, OP_NOT, OP_LDR, OP_SDR:
		return 2
	default:
		return 3
	}
}

// ParseInstruction finds an instruction by its case-insensitive mnemonic.
func ParseInstruction(mnemonic string) (op Instruction, ok bool) {
	mnemonic = strings.ToLower(mnemonic)
	for op = OP_NOP; op <= OP_SDR; op++ {
		if op.String() == mnemonic {
			ok = true
			return
		}
	}

	op = OP_NOP
	return
}

// Opcode is the packed 16-bit opcode word of a line.
type Opcode uint16

// MakeOpcode packs an operation and its operand immediate flags.
func MakeOpcode(op Instruction, arg1Imm, arg2Imm bool) Opcode {
	if uint(op) > uint(OPCODE_OP_MASK) {
		panic("operation code exceeds 14 bits")
	}

	word := uint16(op)
	if arg1Imm {
		word |= OPCODE_ARG1_IMMEDIATE
	}
	if arg2Imm {
		word |= OPCODE_ARG2_IMMEDIATE
	}

	return Opcode(word)
}

// Decode splits the opcode word into operation and immediate flags.
func (code Opcode) Decode() (op Instruction, arg1Imm, arg2Imm bool) {
	word := uint16(code)
	op = Instruction(word & OPCODE_OP_MASK)
	arg1Imm = (word & OPCODE_ARG1_IMMEDIATE) != 0
	arg2Imm = (word & OPCODE_ARG2_IMMEDIATE) != 0
	return
}

// Op returns the operation code.
func (code Opcode) Op() Instruction {
	return Instruction(uint16(code) & OPCODE_OP_MASK)
}

// IsArg1Immediate returns true if Arg1 holds a literal.
func (code Opcode) IsArg1Immediate() bool {
	return (uint16(code) & OPCODE_ARG1_IMMEDIATE) != 0
}

// IsArg2Immediate returns true if Arg2 holds a literal.
func (code Opcode) IsArg2Immediate() bool {
	return (uint16(code) & OPCODE_ARG2_IMMEDIATE) != 0
}
