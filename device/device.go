// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package device is the detonator as seen by its host: a CPU with its RAM
// and a removable ROM, driven one tick at a time.
package device

import (
	"fmt"
	"iter"
	"log"
	"maps"
	"strings"

	"github.com/ezrec/nade/cpu"
	"github.com/ezrec/nade/internal"
	"github.com/ezrec/nade/mem"
)

var _device_defines = map[string]string{
	"RAM_SIZE":  fmt.Sprintf("%v", mem.RAM_SIZE),
	"RAM_WORDS": fmt.Sprintf("%v", mem.RAM_SIZE/2),
}

// Input is what the host reports to the device on every tick.
type Input struct {
	Elapsed int16 // Milliseconds since the device was armed.
	Speed   int16 // Current speed.
	Hit     bool  // Set if a collision happened since the last tick.
}

// Device state. CPU + RAM + ROM.
type Device struct {
	Verbose bool         // If set, enables verbose logging.
	Cpu     *cpu.Cpu     // Reference to the CPU simulation.
	Ram     mem.Ram      // Device memory.
	Listing *cpu.Listing // Source listing of the inserted ROM, if known.
}

// New creates a new, unarmed device.
func New() (dev *Device) {
	dev = &Device{}
	dev.Cpu = cpu.NewCpu(&dev.Ram)

	return
}

// Defines returns an iterator over all of the defines
func (dev *Device) Defines() iter.Seq2[string, string] {
	return internal.IterSeq2Concat(maps.All(_device_defines),
		dev.Cpu.Defines(),
		internal.IterSeq2Map(internal.IterSeqRange(cpu.REG_R0, cpu.REG_BAM),
			func(reg cpu.Register) (string, string) {
				return "REG_" + strings.ToUpper(reg.String()), fmt.Sprintf("%d", int(reg))
			}),
	)
}

// SwapRom inserts a ROM, returning the ROM it replaces. The CPU state is
// left alone. Inserting nil disarms the device.
func (dev *Device) SwapRom(rom *cpu.Rom) (old *cpu.Rom) {
	old = dev.Cpu.Rom
	dev.Cpu.Rom = rom
	dev.Listing = nil

	if dev.Verbose {
		log.Printf("device: rom swapped, armed=%v", dev.Armed())
	}

	return
}

// InsertRom inserts a ROM.
func (dev *Device) InsertRom(rom *cpu.Rom) {
	dev.SwapRom(rom)
}

// EjectRom removes and returns the ROM.
func (dev *Device) EjectRom() *cpu.Rom {
	return dev.SwapRom(nil)
}

// Rom returns the inserted ROM, or nil.
func (dev *Device) Rom() *cpu.Rom {
	return dev.Cpu.Rom
}

// Armed returns true if a ROM is inserted.
func (dev *Device) Armed() bool {
	return dev.Cpu.Rom != nil
}

// Line returns a line of the inserted ROM.
func (dev *Device) Line(n int) (line cpu.Line, err error) {
	if !dev.Armed() {
		err = cpu.ErrRomEmpty
		return
	}
	return dev.Cpu.Rom.Line(n)
}

// LoadRam resets the RAM and stores words from its start.
func (dev *Device) LoadRam(words []int16) (err error) {
	dev.Ram.Reset()
	return mem.Write(&dev.Ram, 0, words)
}

// Reset resets the CPU. The ROM and RAM are left alone.
func (dev *Device) Reset() {
	dev.Cpu.Verbose = dev.Verbose
	dev.Cpu.Reset()
}

func (dev *Device) register(reg cpu.Register) int16 {
	return dev.Cpu.Register[reg]
}

// Time returns the milliseconds since arming, as last reported.
func (dev *Device) Time() int16 { return dev.register(cpu.REG_TMS) }

// Speed returns the speed, as last reported.
func (dev *Device) Speed() int16 { return dev.register(cpu.REG_VEL) }

// Impact returns non-zero if a collision was reported.
func (dev *Device) Impact() int16 { return dev.register(cpu.REG_HIT) }

// Proximity returns the proximity register.
func (dev *Device) Proximity() int16 { return dev.register(cpu.REG_PRX) }

// Bam returns the detonate register.
func (dev *Device) Bam() int16 { return dev.register(cpu.REG_BAM) }

func (dev *Device) SetTime(v int16) { dev.Cpu.Register[cpu.REG_TMS] = v }

func (dev *Device) SetSpeed(v int16) { dev.Cpu.Register[cpu.REG_VEL] = v }

func (dev *Device) SetImpact(v int16) { dev.Cpu.Register[cpu.REG_HIT] = v }

func (dev *Device) SetProximity(v int16) { dev.Cpu.Register[cpu.REG_PRX] = v }

func (dev *Device) SetBam(v int16) { dev.Cpu.Register[cpu.REG_BAM] = v }

// Ticks returns the lines executed since a reset.
func (dev *Device) Ticks() int {
	return dev.Cpu.Ticks
}

// Pc returns the program counter.
func (dev *Device) Pc() int16 {
	return dev.Cpu.Pc()
}

// LineNo returns the source line number of the program counter, or 0.
func (dev *Device) LineNo() int {
	return dev.Listing.Debug(dev.Cpu.Pc()).LineNo
}

// Tick reports the host input, executes one line, and returns true if the
// device detonates: when the program sets bam, or when the step faults.
// An unarmed device does nothing.
func (dev *Device) Tick(in Input) (detonate bool, err error) {
	if !dev.Armed() {
		return
	}

	dev.Cpu.Verbose = dev.Verbose

	dev.SetTime(in.Elapsed)
	dev.SetSpeed(in.Speed)
	if in.Hit {
		dev.SetImpact(1)
	}

	pc := dev.Cpu.Pc()
	lineno := dev.LineNo()
	err = dev.Cpu.Step()
	if err != nil {
		err = &ErrRuntime{Pc: pc, LineNo: lineno, Err: err}
		detonate = true
		if dev.Verbose {
			log.Printf("device: %v", err)
		}
		return
	}

	detonate = dev.Bam() != 0

	return
}

// Run ticks the device until it detonates or maxTicks ticks have run.
// The input function, if not nil, supplies the host input of each tick.
func (dev *Device) Run(maxTicks int, input func(tick int) Input) (ticks int, detonate bool, err error) {
	for ticks < maxTicks {
		var in Input
		if input != nil {
			in = input(ticks)
		}
		detonate, err = dev.Tick(in)
		ticks++
		if detonate {
			return
		}
	}

	return
}
