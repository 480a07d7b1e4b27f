package nadesy

import (
	"log"
	"strings"

	"github.com/ezrec/nade/cpu"
)

// Compiler turns NadeSy source into a Rom.
type Compiler struct {
	Verbose bool        // If set, logs every compilation stage.
	Emitter CondEmitter // Code generator for conditionals. Placeholder if nil.

	Diagnostics []error // Assembler diagnostics of the last Compile.
}

// Parse tokenizes source text and builds its tree.
func (cc *Compiler) Parse(source string) (tree *Tree, err error) {
	tokens, err := Tokenize(source)
	if err != nil {
		return
	}

	b := NewBuilder()
	b.Verbose = cc.Verbose
	for _, tok := range tokens {
		err = b.Push(tok)
		if err != nil {
			return
		}
	}

	tree, err = b.Build()
	if err != nil {
		return
	}

	if cc.Verbose {
		log.Printf("nadesy: tree:\n%v", tree)
	}

	return
}

// Concoct lowers source text to assembly text. Labels are numbered from
// zero on every call.
func (cc *Compiler) Concoct(source string) (text string, err error) {
	tree, err := cc.Parse(source)
	if err != nil {
		return
	}

	items, err := Lower(&tree.Global)
	if err != nil {
		return
	}

	var lines []string
	for id, item := range items {
		lines = append(lines, item.Asm(id, cc.Emitter)...)
	}
	text = strings.Join(lines, "\n")

	if cc.Verbose {
		log.Printf("nadesy: assembly:\n%v", text)
	}

	return
}

// Compile compiles source text into a Rom. On any error no Rom is
// produced, and the error is logged.
func (cc *Compiler) Compile(source string) (rom *cpu.Rom, err error) {
	defer func() {
		if err != nil {
			log.Printf("nadesy: compile error: %v: no rom was generated", err)
			rom = nil
		}
	}()

	text, err := cc.Concoct(source)
	if err != nil {
		return
	}

	asm := &cpu.Assembler{Verbose: cc.Verbose}
	rom, err = asm.Assemble(text)
	cc.Diagnostics = asm.Diagnostics

	return
}

// Parse tokenizes source text and builds its tree.
func Parse(source string) (*Tree, error) {
	return (&Compiler{}).Parse(source)
}

// Compile compiles source text into a Rom with placeholder conditionals.
func Compile(source string) (*cpu.Rom, error) {
	return (&Compiler{}).Compile(source)
}
