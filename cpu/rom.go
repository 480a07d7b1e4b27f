package cpu

import (
	"encoding/binary"
	"fmt"
	"iter"
	"strings"
)

// ROM_SIZE is the maximum number of lines in a program.
const ROM_SIZE = 256

// Rom is the read-only program store. It is built once and never edited
// after construction; a new program replaces the whole Rom.
type Rom struct {
	data     [ROM_SIZE]uint64
	numLines int
}

// NewRom builds a Rom from an ordered sequence of lines.
func NewRom(lines ...Line) (rom *Rom, err error) {
	rom = &Rom{}
	for _, line := range lines {
		err = rom.append(line)
		if err != nil {
			rom = nil
			return
		}
	}

	return
}

// append adds a line at the end of the program.
func (rom *Rom) append(line Line) (err error) {
	if rom.numLines >= ROM_SIZE {
		err = ErrRomFull
		return
	}
	rom.data[rom.numLines] = line.Pack()
	rom.numLines++
	return
}

// NumLines returns the number of lines in use.
func (rom *Rom) NumLines() int {
	return rom.numLines
}

// Line returns the line at a line number.
func (rom *Rom) Line(n int) (line Line, err error) {
	if n < 0 || n >= rom.numLines {
		err = ErrRomRange
		return
	}
	line = UnpackLine(rom.data[n])
	return
}

// Lines iterates over the program lines.
func (rom *Rom) Lines() iter.Seq2[int, Line] {
	return func(yield func(n int, line Line) bool) {
		for n := range rom.numLines {
			if !yield(n, UnpackLine(rom.data[n])) {
				return
			}
		}
	}
}

// MarshalBinary packs the program as LINE_SIZE bytes per line, each
// field little-endian with the opcode word first.
func (rom *Rom) MarshalBinary() (data []byte, err error) {
	data = make([]byte, rom.numLines*LINE_SIZE)
	for n := range rom.numLines {
		binary.LittleEndian.PutUint64(data[n*LINE_SIZE:], rom.data[n])
	}
	return
}

// UnmarshalBinary replaces the program with a packed image.
func (rom *Rom) UnmarshalBinary(data []byte) (err error) {
	if len(data)%LINE_SIZE != 0 || len(data)/LINE_SIZE > ROM_SIZE {
		err = ErrRomImage
		return
	}

	*rom = Rom{}
	for n := 0; n < len(data); n += LINE_SIZE {
		rom.data[rom.numLines] = binary.LittleEndian.Uint64(data[n:])
		rom.numLines++
	}

	return
}

// String returns the program listing, one numbered line per instruction.
func (rom *Rom) String() string {
	var text strings.Builder
	for n, line := range rom.Lines() {
		fmt.Fprintf(&text, "%3d: %v\n", n, line.Text())
	}
	return text.String()
}

// Disassemble renders a Rom as assembler text, one line per instruction,
// that assembles back to the same Rom.
func Disassemble(rom *Rom) string {
	var text strings.Builder
	for _, line := range rom.Lines() {
		text.WriteString(line.Text())
		text.WriteByte('\n')
	}
	return text.String()
}
