package cpu

import (
	"errors"

	"github.com/ezrec/nade/translate"
)

var f = translate.From

var (
	// Cpu errors
	ErrRomEmpty        = errors.New(f("no rom inserted"))
	ErrRomRange        = errors.New(f("rom line out of range"))
	ErrRomFull         = errors.New(f("rom full"))
	ErrPcRange         = errors.New(f("program counter ran off the program"))
	ErrRamRange        = errors.New(f("illegal memory access"))
	ErrRegisterInvalid = errors.New(f("register invalid"))
	ErrDivideByZero    = errors.New(f("divide by zero"))

	// Instruction decode errors
	ErrOpcodeDecode = errors.New(f("decode"))
	ErrOpcodeAlu    = errors.New(f("alu"))
	ErrOpcodeMem    = errors.New(f("mem"))
	ErrOpcodeArg1   = errors.New(f("arg1"))
	ErrOpcodeArg2   = errors.New(f("arg2"))
	ErrOpcodeRoja   = errors.New(f("roja"))

	// Assembler errors
	ErrEquateSyntax       = errors.New(f(".equ syntax"))
	ErrEquateDuplicate    = errors.New(f(".equ duplicated"))
	ErrLabelDuplicate     = errors.New(f("label duplicated"))
	ErrInstructionInvalid = errors.New(f("instruction invalid"))
	ErrTargetInvalid      = errors.New(f("target invalid"))
	ErrRomImage           = errors.New(f("rom image size invalid"))
)

// ErrLabelMissing is the diagnostic for a jump to an undefined label.
type ErrLabelMissing string

func (el ErrLabelMissing) Error() string {
	return f("label %v missing", string(el))
}

// ErrRegisterName is the diagnostic for an unknown register name.
type ErrRegisterName string

func (er ErrRegisterName) Error() string {
	return f("'%v' is not a register", string(er))
}

func (er ErrRegisterName) Unwrap() error {
	return ErrRegisterInvalid
}

// ErrArity is the diagnostic for an instruction given the wrong argument count.
type ErrArity struct {
	Instruction Instruction
	Want        int
	Got         int
}

func (err ErrArity) Error() string {
	return f("%v takes %d arguments, got %d", err.Instruction, err.Want, err.Got)
}

type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a number", string(err))
}

type ErrParseExpression string

func (err ErrParseExpression) Error() string {
	return f("$(%v) is not a valid expression", string(err))
}

// ErrSyntax locates an assembler error or diagnostic in the source text.
type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err ErrSyntax) Unwrap() error {
	return err.Err
}

// ErrLine locates a runtime fault at a program line.
type ErrLine struct {
	Pc   int16
	Line Line
}

func (err ErrLine) Error() string {
	return f("pc %d: %v", err.Pc, err.Line.Text())
}

func (err ErrLine) Is(target error) (ok bool) {
	_, ok = target.(ErrLine)
	return
}
