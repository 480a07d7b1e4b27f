// Package mem implements the fixed-size device RAM.
//
// RAM is a flat byte array. Typed access treats it as an array of the
// requested word type: index n of a T lives at byte n*sizeof(T), little-endian.
package mem

import (
	"encoding/binary"
	"errors"
	"unsafe"

	"github.com/ezrec/nade/translate"
)

var f = translate.From

// RAM_SIZE is the RAM capacity in bytes.
const RAM_SIZE = 512

var (
	ErrRange = errors.New(f("memory access out of range"))
)

// Word is a fixed-width plain value that may be stored in RAM.
type Word interface {
	~int8 | ~uint8 | ~int16 | ~uint16
}

// Ram is the device memory.
type Ram struct {
	data [RAM_SIZE]byte
}

// sizeOf returns the width of T in bytes.
func sizeOf[T Word]() int {
	var t T
	return int(unsafe.Sizeof(t))
}

// span validates an access of count items of T at index and returns its byte range.
func span[T Word](index, count int) (start, end int, err error) {
	size := sizeOf[T]()
	if index < 0 || count < 0 || (index+count)*size > RAM_SIZE {
		err = ErrRange
		return
	}
	start = index * size
	end = (index + count) * size
	return
}

func decode[T Word](b []byte) T {
	if len(b) == 1 {
		return T(b[0])
	}
	return T(binary.LittleEndian.Uint16(b))
}

func encode[T Word](b []byte, value T) {
	if len(b) == 1 {
		b[0] = byte(value)
		return
	}
	binary.LittleEndian.PutUint16(b, uint16(value))
}

// Load reads the item of T at index.
func Load[T Word](ram *Ram, index int) (value T, err error) {
	start, end, err := span[T](index, 1)
	if err != nil {
		return
	}
	value = decode[T](ram.data[start:end])
	return
}

// Save writes value as the item of T at index.
func Save[T Word](ram *Ram, index int, value T) (err error) {
	start, end, err := span[T](index, 1)
	if err != nil {
		return
	}
	encode(ram.data[start:end], value)
	return
}

// Write stores items sequentially starting at index. Nothing is written
// unless every item fits.
func Write[T Word](ram *Ram, index int, items []T) (err error) {
	start, _, err := span[T](index, len(items))
	if err != nil {
		return
	}
	size := sizeOf[T]()
	for n, item := range items {
		at := start + n*size
		encode(ram.data[at:at+size], item)
	}
	return
}

// Reset zeroes the memory.
func (ram *Ram) Reset() {
	clear(ram.data[:])
}

// Bytes returns a copy of the memory contents.
func (ram *Ram) Bytes() []byte {
	return append([]byte(nil), ram.data[:]...)
}
