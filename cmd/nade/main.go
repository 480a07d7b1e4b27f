// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/davecgh/go-spew/spew"

	"github.com/ezrec/nade/cpu"
	"github.com/ezrec/nade/device"
	"github.com/ezrec/nade/nadesy"
	"github.com/ezrec/nade/romfile"
)

func main() {
	var assemble string
	var compile string
	var image string
	var output string
	var disassemble bool
	var tree bool
	var ticks int
	var tickMs int
	var hit int
	var speed int
	var verbose bool

	flag.StringVar(&assemble, "a", "", ".asm file to assemble")
	flag.StringVar(&compile, "s", "", ".sy NadeSy file to compile")
	flag.StringVar(&image, "i", "", ".rom image to load")
	flag.StringVar(&output, "o", "", ".rom image to write, do not execute")
	flag.BoolVar(&disassemble, "d", false, "Disassemble the rom, do not execute")
	flag.BoolVar(&tree, "t", false, "Dump the NadeSy token tree, do not execute")
	flag.IntVar(&ticks, "n", 1000, "Maximum ticks to run")
	flag.IntVar(&tickMs, "tick", 20, "Milliseconds per tick")
	flag.IntVar(&hit, "hit", -1, "Tick of the collision, if any")
	flag.IntVar(&speed, "speed", 0, "Reported speed")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if flag.NArg() != 0 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	sources := 0
	for _, name := range []string{assemble, compile, image} {
		if len(name) != 0 {
			sources++
		}
	}
	if sources > 1 {
		log.Fatalf("%v: only one of -a, -s or -i may be given", os.Args[0])
	}

	dev := device.New()
	dev.Verbose = verbose

	var rom *cpu.Rom

	// Default to the built-in timer program.
	if sources == 0 {
		var err error
		rom, err = cpu.TimerRom()
		if err != nil {
			log.Fatalf("%v: timer: %v", os.Args[0], err)
		}
		dev.InsertRom(rom)
	}

	// Assemble a program.
	if len(assemble) != 0 {
		inf, err := os.Open(assemble)
		if err != nil {
			log.Fatalf("%v: %v", assemble, err)
		}
		defer inf.Close()

		asm := &cpu.Assembler{Verbose: verbose}
		for equ, value := range dev.Defines() {
			asm.Predefine(equ, value)
		}
		rom, err = asm.Parse(inf)
		if err != nil {
			log.Fatalf("%v: %v", assemble, err)
		}
		dev.InsertRom(rom)
		dev.Listing = asm.Listing
	}

	// Compile a NadeSy program.
	if len(compile) != 0 {
		text, err := os.ReadFile(compile)
		if err != nil {
			log.Fatalf("%v: %v", compile, err)
		}

		cc := &nadesy.Compiler{Verbose: verbose}
		if tree {
			var tr *nadesy.Tree
			tr, err = cc.Parse(string(text))
			if err != nil {
				log.Fatalf("%v: %v", compile, err)
			}
			spew.Dump(tr)
			return
		}

		rom, err = cc.Compile(string(text))
		if err != nil {
			log.Fatalf("%v: %v", compile, err)
		}
		dev.InsertRom(rom)
	}

	// Load a rom image.
	if len(image) != 0 {
		var err error
		rom, err = romfile.Load(image)
		if err != nil {
			log.Fatalf("%v: %v", image, err)
		}
		dev.InsertRom(rom)
	}

	if disassemble {
		fmt.Print(cpu.Disassemble(rom))
		return
	}

	if len(output) != 0 {
		err := romfile.Save(output, rom)
		if err != nil {
			log.Fatalf("%v: %v", output, err)
		}
		return
	}

	dev.Reset()
	ran, detonate, err := dev.Run(ticks, func(tick int) device.Input {
		return device.Input{
			Elapsed: int16(tick * tickMs),
			Speed:   int16(speed),
			Hit:     tick == hit,
		}
	})
	fmt.Print(dev.Cpu)
	if err != nil {
		log.Fatalf("%v: %v", os.Args[0], err)
	}
	if detonate {
		fmt.Printf("bam after %d ticks\n", ran)
	} else {
		fmt.Printf("no detonation after %d ticks\n", ran)
	}
}
