package cpu

import (
	"errors"
	"fmt"
	"iter"
	"log"
	"maps"

	"github.com/ezrec/nade/mem"
)

var _cpu_defines = map[string]string{
	"ROM_SIZE":       fmt.Sprintf("%v", ROM_SIZE),
	"REGISTER_COUNT": fmt.Sprintf("%v", REGISTER_COUNT),
	"LABEL_INVALID":  fmt.Sprintf("%v", LABEL_INVALID),
}

// Cpu is the simulation context for the detonator CPU.
type Cpu struct {
	Verbose bool // Set to enable verbose logging.

	Ram *mem.Ram // RAM reached by LDR and SDR.
	Rom *Rom     // Program store. nil if no program is inserted.

	Register Registers // Register file.
	Status   Status    // Status word, including the program counter.

	Ticks int // Lines executed since reset.
}

// NewCpu creates a new CPU attached to a RAM.
func NewCpu(ram *mem.Ram) (cpu *Cpu) {
	if ram == nil {
		ram = &mem.Ram{}
	}
	cpu = &Cpu{
		Ram: ram,
	}

	return
}

// Defines for the cpu
func (cpu *Cpu) Defines() iter.Seq2[string, string] {
	return maps.All(_cpu_defines)
}

// Reset clears the registers, status word and tick counter.
// The program and RAM are left alone.
func (cpu *Cpu) Reset() {
	if cpu.Verbose {
		log.Printf("cpu: reset")
	}

	clear(cpu.Register[:])
	cpu.Status = 0
	cpu.Ticks = 0
}

// Pc returns the program counter.
func (cpu *Cpu) Pc() int16 {
	return cpu.Status.Pc()
}

// String returns the current CPU state as a string.
func (cpu *Cpu) String() (text string) {
	text = fmt.Sprintf("% 6s: %v\n", "status", cpu.Status)
	for n, val := range cpu.Register {
		text += fmt.Sprintf("% 6s: %6d %04X\n", Register(n), val, uint16(val))
	}

	return
}

// Fetch returns the line at the program counter.
func (cpu *Cpu) Fetch() (line Line, err error) {
	if cpu.Rom == nil {
		err = ErrRomEmpty
		return
	}

	pc := cpu.Pc()
	line, err = cpu.Rom.Line(int(pc))
	if err != nil {
		err = errors.Join(ErrPcRange, err)
		return
	}

	return
}

// Step executes a single line: fetch, decode, execute, and advance the
// program counter.
func (cpu *Cpu) Step() (err error) {
	line, err := cpu.Fetch()
	if err != nil {
		return
	}

	err = cpu.Execute(line)
	if err != nil {
		return
	}

	cpu.Ticks++

	return
}

// value resolves an operand to a literal or a register value.
func (cpu *Cpu) value(arg int16, imm bool) (value int16, err error) {
	if imm {
		value = arg
		return
	}
	return cpu.Register.Get(arg)
}

// Execute executes a single decoded line at the current program counter.
// A jump target is not checked here; a bad target faults on the next fetch.
func (cpu *Cpu) Execute(line Line) (err error) {
	pc := cpu.Pc()
	defer func() {
		if err != nil {
			err = errors.Join(ErrLine{Pc: pc, Line: line}, err)
		}
	}()
	if cpu.Verbose {
		log.Printf("%03d: %v", pc, line.Text())
	}

	op, arg1Imm, arg2Imm := line.Opcode.Decode()
	if !op.Valid() {
		err = ErrOpcodeDecode
		return
	}

	arg1, err := cpu.value(line.Arg1, arg1Imm)
	if err != nil && op.Arity() > 1 {
		err = errors.Join(ErrOpcodeArg1, err)
		return
	}
	arg2, err := cpu.value(line.Arg2, arg2Imm)
	if err != nil && op.Arity() > 2 {
		err = errors.Join(ErrOpcodeArg2, err)
		return
	}
	err = nil

	next_pc := pc + 1
	jumping := false

	switch {
	case op == OP_NOP:
		// pass
	case op.IsMath():
		var signed int32
		var unsigned int64
		signed, unsigned, err = doAlu(op, arg1, arg2)
		if err != nil {
			err = errors.Join(ErrOpcodeAlu, err)
			return
		}
		err = cpu.Register.Set(line.Roja, int16(signed))
		if err != nil {
			err = errors.Join(ErrOpcodeAlu, ErrOpcodeRoja, err)
			return
		}
		cpu.Status.setAlu(signed, unsigned)
	case op == OP_LDR:
		var value int16
		value, err = mem.Load[int16](cpu.Ram, int(arg1))
		if err != nil {
			err = errors.Join(ErrOpcodeMem, ErrRamRange, err)
			return
		}
		err = cpu.Register.Set(line.Roja, value)
		if err != nil {
			err = errors.Join(ErrOpcodeMem, ErrOpcodeRoja, err)
			return
		}
	case op == OP_SDR:
		var addr int16
		addr, err = cpu.Register.Get(line.Roja)
		if err != nil {
			err = errors.Join(ErrOpcodeMem, ErrOpcodeRoja, err)
			return
		}
		err = mem.Save(cpu.Ram, int(addr), arg1)
		if err != nil {
			err = errors.Join(ErrOpcodeMem, ErrRamRange, err)
			return
		}
	case op.IsJump():
		jumping = cpu.isJumping(op, arg1, arg2)
	default:
		err = ErrOpcodeDecode
		return
	}

	if jumping {
		next_pc = line.Roja
	}

	cpu.Status.SetPc(next_pc)

	return
}

// isJumping evaluates a jump condition.
func (cpu *Cpu) isJumping(op Instruction, arg1, arg2 int16) (jumping bool) {
	switch op {
	case OP_JMP:
		jumping = true
	case OP_JE:
		jumping = arg1 == arg2
	case OP_JNE:
		jumping = arg1 != arg2
	case OP_JG:
		jumping = arg1 > arg2
	case OP_JL:
		jumping = arg1 < arg2
	case OP_JGE:
		jumping = arg1 >= arg2
	case OP_JLE:
		jumping = arg1 <= arg2
	case OP_JZ:
		jumping = cpu.Status.Flag(STATUS_ZERO)
	case OP_JNZ:
		jumping = !cpu.Status.Flag(STATUS_ZERO)
	case OP_JS:
		jumping = cpu.Status.Flag(STATUS_SIGN)
	}

	return
}

// doAlu performs the requested ALU action, returning the signed and
// unsigned intermediate results before truncation to 16 bits.
func doAlu(op Instruction, a, b int16) (signed int32, unsigned int64, err error) {
	sa, sb := int32(a), int32(b)
	ua, ub := int64(uint16(a)), int64(uint16(b))

	switch op {
	case OP_MOV:
		signed, unsigned = sa, ua
	case OP_ADD:
		signed, unsigned = sa+sb, ua+ub
	case OP_SUB:
		signed, unsigned = sa-sb, ua-ub
	case OP_MUL:
		signed, unsigned = sa*sb, ua*ub
	case OP_DIV:
		if b == 0 {
			err = ErrDivideByZero
			return
		}
		signed, unsigned = sa/sb, ua/ub
	case OP_AND:
		signed, unsigned = sa&sb, ua&ub
	case OP_ORR:
		signed, unsigned = sa|sb, ua|ub
	case OP_XOR:
		signed, unsigned = sa^sb, ua^ub
	case OP_NOT:
		signed, unsigned = ^sa, int64(^uint16(a))
	default:
		err = ErrOpcodeAlu
	}

	return
}
