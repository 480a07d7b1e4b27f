// Package romfile reads and writes detonator ROM image files.
//
// An image is the packed program: cpu.LINE_SIZE bytes per line, each
// field little-endian, opcode word first. There is no header.
package romfile

import (
	"bufio"
	"io"
	"os"

	"github.com/pkg/errors"

	"github.com/ezrec/nade/cpu"
)

// MAX_SIZE is the size in bytes of the largest image.
const MAX_SIZE = cpu.ROM_SIZE * cpu.LINE_SIZE

// Read reads an image from r.
func Read(r io.Reader) (*cpu.Rom, error) {
	data, err := io.ReadAll(io.LimitReader(r, MAX_SIZE+1))
	if err != nil {
		return nil, errors.Wrap(err, "read failed")
	}
	rom := &cpu.Rom{}
	err = rom.UnmarshalBinary(data)
	if err != nil {
		return nil, errors.Wrapf(err, "%d byte image", len(data))
	}
	return rom, nil
}

// Write writes the image of rom to w.
func Write(w io.Writer, rom *cpu.Rom) error {
	data, err := rom.MarshalBinary()
	if err != nil {
		return errors.Wrap(err, "marshal failed")
	}
	_, err = w.Write(data)
	return errors.Wrap(err, "write failed")
}

// Load loads an image from file fileName.
func Load(fileName string) (*cpu.Rom, error) {
	f, err := os.Open(fileName)
	if err != nil {
		return nil, errors.Wrap(err, "open failed")
	}
	defer f.Close()
	st, err := f.Stat()
	if err != nil {
		return nil, errors.Wrap(err, "fstat failed")
	}
	sz := st.Size()
	if sz > MAX_SIZE || sz%cpu.LINE_SIZE != 0 {
		return nil, errors.Errorf("%v: %d bytes is not a rom image", fileName, sz)
	}
	rom, err := Read(bufio.NewReader(f))
	if err != nil {
		return nil, errors.Wrap(err, "load failed")
	}
	return rom, nil
}

// Save saves rom to the image file fileName. On error the file is removed.
func Save(fileName string, rom *cpu.Rom) (err error) {
	f, err := os.Create(fileName)
	if err != nil {
		return errors.Wrap(err, "create failed")
	}
	w := bufio.NewWriter(f)
	defer func() {
		ferr := w.Flush()
		cerr := f.Close()
		if err == nil && ferr != nil {
			err = errors.Wrap(ferr, "flush failed")
		}
		if err == nil && cerr != nil {
			err = errors.Wrap(cerr, "close failed")
		}
		// delete file on error
		if err != nil {
			os.Remove(fileName)
		}
	}()
	err = Write(w, rom)
	if err != nil {
		return errors.Wrap(err, "save failed")
	}
	return nil
}
