package cpu

import (
	"fmt"
)

// Status word layout. The program counter lives in the upper 16 bits.
const (
	STATUS_CARRY     = uint32(1 << 0) // Unsigned result left 16 bits.
	STATUS_ZERO      = uint32(1 << 1) // Result was zero.
	STATUS_SIGN      = uint32(1 << 2) // Result was negative.
	STATUS_OVERFLOW  = uint32(1 << 3) // Signed result left 16 bits.
	STATUS_IE0       = uint32(1 << 4) // Interrupt enable 0 (reserved).
	STATUS_IE1       = uint32(1 << 5) // Interrupt enable 1 (reserved).
	STATUS_MODE_MASK = uint32(0b11 << 6)
	STATUS_PC_MASK   = uint32(0xffff << 16)

	STATUS_FLAGS = STATUS_CARRY | STATUS_ZERO | STATUS_SIGN | STATUS_OVERFLOW
)

// Status is the packed status word: mode, program counter, interrupt enables and ALU flags.
type Status uint32

// Flag returns true if every bit of flag is set.
func (st Status) Flag(flag uint32) bool {
	return uint32(st)&flag == flag
}

// SetFlag sets or clears the flag bits.
func (st *Status) SetFlag(flag uint32, value bool) {
	if value {
		*st = Status(uint32(*st) | flag)
	} else {
		*st = Status(uint32(*st) &^ flag)
	}
}

// Pc returns the program counter.
func (st Status) Pc() int16 {
	return int16(uint32(st) >> 16)
}

// SetPc sets the program counter.
func (st *Status) SetPc(pc int16) {
	*st = Status((uint32(*st) &^ STATUS_PC_MASK) | (uint32(uint16(pc)) << 16))
}

// Mode returns the 2-bit execution mode.
func (st Status) Mode() uint8 {
	return uint8((uint32(st) & STATUS_MODE_MASK) >> 6)
}

// SetMode sets the 2-bit execution mode.
func (st *Status) SetMode(mode uint8) {
	*st = Status((uint32(*st) &^ STATUS_MODE_MASK) | ((uint32(mode) << 6) & STATUS_MODE_MASK))
}

// setAlu recomputes the arithmetic flags from the intermediate results of an ALU operation.
func (st *Status) setAlu(signed int32, unsigned int64) {
	st.SetFlag(STATUS_OVERFLOW, signed > 0x7fff || signed < -0x8000)
	st.SetFlag(STATUS_CARRY, unsigned > 0xffff || unsigned < 0)
	st.SetFlag(STATUS_ZERO, signed == 0)
	st.SetFlag(STATUS_SIGN, signed < 0)
}

func (st Status) String() string {
	flags := []byte("----")
	for n, flag := range []uint32{STATUS_OVERFLOW, STATUS_SIGN, STATUS_ZERO, STATUS_CARRY} {
		if st.Flag(flag) {
			flags[n] = "OSZC"[n]
		}
	}
	return fmt.Sprintf("pc=%d mode=%d %s", st.Pc(), st.Mode(), flags)
}
