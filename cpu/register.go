package cpu

// Register is an index into the register file.
type Register int

//go:generate go tool stringer -linecomment -type=Register
const (
	REG_R0  = Register(0) // r0
	REG_R1  = Register(1) // r1
	REG_R2  = Register(2) // r2
	REG_R3  = Register(3) // r3
	REG_TMS = Register(4) // tms
	REG_VEL = Register(5) // vel
	REG_HIT = Register(6) // hit
	REG_PRX = Register(7) // prx
	REG_BAM = Register(8) // bam

	REGISTER_COUNT = 9
)

// Sentinels substituted by the assembler for names it cannot resolve.
const (
	REG_INVALID   = -1     // Unknown register name.
	LABEL_INVALID = 0x7fff // Undefined jump label.
)

// regMap maps register names to register indices.
var regMap = map[string]Register{
	"r0":  REG_R0,
	"r1":  REG_R1,
	"r2":  REG_R2,
	"r3":  REG_R3,
	"tms": REG_TMS,
	"vel": REG_VEL,
	"hit": REG_HIT,
	"prx": REG_PRX,
	"bam": REG_BAM,
}

// LookupRegister resolves a register name, returning REG_INVALID if unknown.
func LookupRegister(name string) (index int16, ok bool) {
	reg, ok := regMap[name]
	if !ok {
		return REG_INVALID, false
	}
	return int16(reg), true
}

// Valid returns true if the index addresses the register file.
func (reg Register) Valid() bool {
	return reg >= REG_R0 && reg < REGISTER_COUNT
}

// Registers is the register file.
type Registers [REGISTER_COUNT]int16

// Get reads a register by its encoded index.
func (regs *Registers) Get(index int16) (value int16, err error) {
	reg := Register(index)
	if !reg.Valid() {
		err = ErrRegisterInvalid
		return
	}
	value = regs[reg]
	return
}

// Set writes a register by its encoded index.
func (regs *Registers) Set(index int16, value int16) (err error) {
	reg := Register(index)
	if !reg.Valid() {
		err = ErrRegisterInvalid
		return
	}
	regs[reg] = value
	return
}
