package cpu

import (
	"testing"

	"github.com/ezrec/nade/mem"
	"github.com/stretchr/testify/assert"
)

// boot assembles a program and inserts it into a fresh Cpu.
func boot(t *testing.T, program string) (cpu *Cpu) {
	asm := &Assembler{}
	rom, err := asm.Assemble(program)
	if err != nil {
		t.Fatal(err)
	}

	cpu = NewCpu(nil)
	cpu.Rom = rom
	cpu.Reset()
	return
}

// steps executes count lines, failing the test on any error.
func steps(t *testing.T, cpu *Cpu, count int) {
	for range count {
		err := cpu.Step()
		if err != nil {
			t.Fatal(err)
		}
	}
}

func TestCpuEmpty(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu(nil)
	assert.NotNil(cpu.Ram)
	err := cpu.Step()
	assert.ErrorIs(err, ErrRomEmpty)
	assert.Equal(0, cpu.Ticks)
}

func TestCpuTimer(t *testing.T) {
	assert := assert.New(t)

	cpu := boot(t, `
mov r0 #2
.timer:
    nop
    sub r0 r0 #1
    jnz .timer
    mov bam #1
`)
	assert.Equal(5, cpu.Rom.NumLines())

	decrements := 0
	for cpu.Register[REG_BAM] == 0 {
		if cpu.Ticks > 100 {
			t.Fatal("timer did not expire")
		}
		if cpu.Pc() == 2 {
			decrements++
		}
		err := cpu.Step()
		assert.NoError(err)
	}

	assert.Equal(2, decrements)
	assert.Equal(int16(0), cpu.Register[REG_R0])
	assert.Equal(int16(1), cpu.Register[REG_BAM])
	assert.Equal(8, cpu.Ticks)
	assert.Equal(int16(5), cpu.Pc())
}

func TestCpuFlags(t *testing.T) {
	assert := assert.New(t)

	cpu := boot(t, `
mov r0 #32767
mov r1 #1
add r2 r0 r1
mov r0 #0
sub r0 r0 #1
`)

	steps(t, cpu, 3)
	assert.Equal(int16(-32768), cpu.Register[REG_R2])
	assert.True(cpu.Status.Flag(STATUS_OVERFLOW))
	assert.False(cpu.Status.Flag(STATUS_CARRY))

	steps(t, cpu, 1)
	assert.True(cpu.Status.Flag(STATUS_ZERO))
	assert.False(cpu.Status.Flag(STATUS_OVERFLOW))

	steps(t, cpu, 1)
	assert.Equal(int16(-1), cpu.Register[REG_R0])
	assert.True(cpu.Status.Flag(STATUS_SIGN))
	assert.False(cpu.Status.Flag(STATUS_ZERO))
	assert.True(cpu.Status.Flag(STATUS_CARRY))
}

func TestCpuAlu(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		program string
		result  int16
	}){
		{"mov r0 #-5", -5},
		{"mov r1 #7\nmov r0 r1", 7},
		{"add r0 #3 #4", 7},
		{"sub r0 #3 #4", -1},
		{"mul r0 #-3 #4", -12},
		{"div r0 #13 #4", 3},
		{"div r0 #-13 #4", -3},
		{"and r0 #12 #10", 8},
		{"orr r0 #12 #10", 14},
		{"xor r0 #12 #10", 6},
		{"not r0 #0", -1},
		{"mov r0 #0xffff", -1},
		{"mul r0 #256 #256", 0},
	}

	for _, entry := range table {
		cpu := boot(t, entry.program)
		steps(t, cpu, cpu.Rom.NumLines())
		assert.Equal(entry.result, cpu.Register[REG_R0], entry.program)
	}
}

func TestCpuJump(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		program string
		taken   bool
	}){
		{"mov r0 #0\njnz .there\nnop\n.there: nop", false},
		{"mov r0 #1\njnz .there\nnop\n.there: nop", true},
		{"mov r0 #0\njz .there\nnop\n.there: nop", true},
		{"mov r0 #0\njmp .there\nnop\n.there: nop", true},
		{"mov r0 #1\njmp .there\nnop\n.there: nop", true},
		{"sub r0 #0 #1\njs .there\nnop\n.there: nop", true},
		{"add r0 #0 #1\njs .there\nnop\n.there: nop", false},
		{"mov r0 #3\nje .there r0 #3\nnop\n.there: nop", true},
		{"mov r0 #3\njne .there r0 #3\nnop\n.there: nop", false},
		{"mov r0 #-1\njg .there r0 #0\nnop\n.there: nop", false},
		{"mov r0 #-1\njl .there r0 #0\nnop\n.there: nop", true},
		{"mov r0 #0\njge .there r0 #0\nnop\n.there: nop", true},
		{"mov r0 #1\njle .there r0 #0\nnop\n.there: nop", false},
	}

	for _, entry := range table {
		cpu := boot(t, entry.program)
		steps(t, cpu, 2)
		if entry.taken {
			assert.Equal(int16(3), cpu.Pc(), entry.program)
		} else {
			assert.Equal(int16(2), cpu.Pc(), entry.program)
		}
	}
}

func TestCpuJumpLazy(t *testing.T) {
	assert := assert.New(t)

	cpu := boot(t, "jmp #100\nnop")

	err := cpu.Step()
	assert.NoError(err)
	assert.Equal(int16(100), cpu.Pc())

	err = cpu.Step()
	assert.ErrorIs(err, ErrPcRange)
	assert.ErrorIs(err, ErrRomRange)
}

func TestCpuLabelMissing(t *testing.T) {
	assert := assert.New(t)

	cpu := boot(t, "jmp .nowhere")
	line, err := cpu.Rom.Line(0)
	assert.NoError(err)
	assert.Equal(int16(32767), line.Roja)

	assert.NoError(cpu.Step())
	assert.ErrorIs(cpu.Step(), ErrPcRange)
}

func TestCpuRegisterInvalid(t *testing.T) {
	assert := assert.New(t)

	cpu := boot(t, "mov r9 #1")
	err := cpu.Step()
	assert.ErrorIs(err, ErrRegisterInvalid)
	assert.ErrorIs(err, ErrLine{})
	assert.Equal(0, cpu.Ticks)

	cpu = boot(t, "mov r0 r9")
	err = cpu.Step()
	assert.ErrorIs(err, ErrOpcodeArg1)
	assert.ErrorIs(err, ErrRegisterInvalid)
}

func TestCpuDivideByZero(t *testing.T) {
	assert := assert.New(t)

	cpu := boot(t, "div r0 #1 #0")
	err := cpu.Step()
	assert.ErrorIs(err, ErrDivideByZero)
	assert.Equal(int16(0), cpu.Pc())
}

func TestCpuMemory(t *testing.T) {
	assert := assert.New(t)

	cpu := boot(t, `
mov r1 #4
sdr r1 #-7
ldr r2 #4
mov r1 #256
sdr r1 #1
`)
	steps(t, cpu, 3)
	assert.Equal(int16(-7), cpu.Register[REG_R2])

	value, err := mem.Load[uint8](cpu.Ram, 8)
	assert.NoError(err)
	assert.Equal(uint8(0xf9), value)

	steps(t, cpu, 1)
	err = cpu.Step()
	assert.ErrorIs(err, ErrRamRange)
	assert.ErrorIs(err, mem.ErrRange)
}

func TestCpuReset(t *testing.T) {
	assert := assert.New(t)

	cpu := boot(t, "mov r0 #5\nmov tms #1")
	steps(t, cpu, 2)
	cpu.Reset()

	assert.Equal(Registers{}, cpu.Register)
	assert.Equal(Status(0), cpu.Status)
	assert.Equal(0, cpu.Ticks)
	assert.Equal(2, cpu.Rom.NumLines())

	defines := map[string]string{}
	for key, value := range cpu.Defines() {
		defines[key] = value
	}
	assert.Equal("256", defines["ROM_SIZE"])
	assert.Equal("9", defines["REGISTER_COUNT"])
}
