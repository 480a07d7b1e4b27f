package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOpcodeRoundTrip(t *testing.T) {
	assert := assert.New(t)

	for op := OP_NOP; op <= OP_SDR; op++ {
		for _, arg1Imm := range []bool{false, true} {
			for _, arg2Imm := range []bool{false, true} {
				code := MakeOpcode(op, arg1Imm, arg2Imm)
				dop, d1, d2 := code.Decode()
				assert.Equal(op, dop, op.String())
				assert.Equal(arg1Imm, d1, op.String())
				assert.Equal(arg2Imm, d2, op.String())
				assert.Equal(op, code.Op())
				assert.Equal(arg1Imm, code.IsArg1Immediate())
				assert.Equal(arg2Imm, code.IsArg2Immediate())
			}
		}
	}
}

func TestOpcodeBits(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(Opcode(0x8000|12), MakeOpcode(OP_ADD, true, false))
	assert.Equal(Opcode(0x4000|13), MakeOpcode(OP_SUB, false, true))
	assert.Equal(Opcode(0xc000), MakeOpcode(OP_NOP, true, true))

	assert.Panics(func() { MakeOpcode(Instruction(1<<14), false, false) })
}

func FuzzOpcode(f *testing.F) {
	f.Add(uint16(0))
	f.Add(uint16(0x800c))
	f.Add(uint16(0xffff))

	f.Fuzz(func(t *testing.T, word uint16) {
		code := Opcode(word)
		op, arg1Imm, arg2Imm := code.Decode()
		if op > Instruction(OPCODE_OP_MASK) {
			t.Fatalf("%v: decoded operation %d out of range", word, op)
		}
		if MakeOpcode(op, arg1Imm, arg2Imm) != code {
			t.Fatalf("%#04x: did not round trip", word)
		}
	})
}

func TestInstruction(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		mnemonic string
		op       Instruction
		arity    int
		jump     bool
		math     bool
	}){
		{"nop", OP_NOP, 0, false, false},
		{"MOV", OP_MOV, 2, false, true},
		{"jmp", OP_JMP, 1, true, false},
		{"je", OP_JE, 3, true, false},
		{"jne", OP_JNE, 3, true, false},
		{"Jz", OP_JZ, 1, true, false},
		{"jnz", OP_JNZ, 1, true, false},
		{"jg", OP_JG, 3, true, false},
		{"jl", OP_JL, 3, true, false},
		{"jge", OP_JGE, 3, true, false},
		{"jle", OP_JLE, 3, true, false},
		{"js", OP_JS, 1, true, false},
		{"add", OP_ADD, 3, false, true},
		{"sub", OP_SUB, 3, false, true},
		{"mul", OP_MUL, 3, false, true},
		{"div", OP_DIV, 3, false, true},
		{"and", OP_AND, 3, false, true},
		{"orr", OP_ORR, 3, false, true},
		{"not", OP_NOT, 2, false, true},
		{"xor", OP_XOR, 3, false, true},
		{"ldr", OP_LDR, 2, false, false},
		{"sdr", OP_SDR, 2, false, false},
	}

	for _, entry := range table {
		op, ok := ParseInstruction(entry.mnemonic)
		assert.True(ok, entry.mnemonic)
		assert.Equal(entry.op, op, entry.mnemonic)
		assert.Equal(entry.arity, op.Arity(), entry.mnemonic)
		assert.Equal(entry.jump, op.IsJump(), entry.mnemonic)
		assert.Equal(entry.math, op.IsMath(), entry.mnemonic)
		assert.Equal(op == OP_LDR || op == OP_SDR, op.IsMemory(), entry.mnemonic)
		assert.True(op.Valid(), entry.mnemonic)
	}

	_, ok := ParseInstruction("halt")
	assert.False(ok)
	assert.False(Instruction(22).Valid())
}
