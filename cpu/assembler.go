// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"maps"
	"regexp"
	"strconv"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Predefined system equates
var sysEquate = map[string]string{
	"LINENO":   "0",
	"ROM_SIZE": fmt.Sprintf("%v", ROM_SIZE),
	"NO_LABEL": fmt.Sprintf("%v", LABEL_INVALID),
}

// Assembler is a two pass assembler for the detonator CPU.
//
// Unresolved labels, unknown registers and argument count mismatches are
// diagnostics: they are logged and collected, and assembly continues with a
// sentinel value. Everything else is an error and produces no Rom.
type Assembler struct {
	Verbose     bool     // If set, verbosely logs the assembler actions.
	Diagnostics []error  // Non-fatal problems found by the last Parse.
	Listing     *Listing // Source of each line from the last Parse.

	predefine map[string]string // Predefines
	Label     map[string]int16  // Map of jump labels to line numbers.
	Equate    map[string]string // Map of equates.
}

// source is a non-blank line of assembly text.
type source struct {
	lineNo int
	line   string
	words  []string
}

// Predefine defines a new equate or redefines an existing equate.
func (asm *Assembler) Predefine(equ string, value string) {
	if asm.predefine == nil {
		asm.predefine = map[string]string{equ: value}
	} else {
		asm.predefine[equ] = value
	}
}

// Assemble parses assembly text into a Rom.
func (asm *Assembler) Assemble(text string) (rom *Rom, err error) {
	return asm.Parse(strings.NewReader(text))
}

// diagnose records a non-fatal problem.
func (asm *Assembler) diagnose(src source, err error) {
	diag := &ErrSyntax{LineNo: src.lineNo, Line: src.line, Err: err}
	log.Printf("asm: %v", diag)
	asm.Diagnostics = append(asm.Diagnostics, diag)
}

// isLabel returns true if word defines a label.
func isLabel(word string) bool {
	return len(word) > 2 && strings.HasPrefix(word, ".") && strings.HasSuffix(word, ":")
}

// Parse parses an input stream into a Rom.
func (asm *Assembler) Parse(input io.Reader) (rom *Rom, err error) {
	scanner := bufio.NewScanner(input)

	var src source

	defer func() {
		if err != nil {
			err = &ErrSyntax{LineNo: src.lineNo, Line: src.line, Err: err}
			rom = nil
		}
	}()

	asm.Label = make(map[string]int16, 16)
	asm.Diagnostics = nil
	asm.Listing = &Listing{}
	asm.Equate = maps.Clone(sysEquate)
	for attr, val := range asm.predefine {
		asm.Equate[attr] = val
	}

	// First pass: collect equates and labels, and drop blank lines.
	var lines []source
	var lineno int
	for scanner.Scan() {
		text := scanner.Text()
		lineno += 1

		if asm.Verbose {
			log.Printf("%v: %v\n", lineno, text)
		}

		line, _, _ := strings.Cut(text, ";")
		line = strings.TrimSpace(line)
		src = source{lineNo: lineno, line: line}
		line, err = asm.expand(line, lineno)
		if err != nil {
			return
		}
		words := strings.Fields(line)
		if len(words) == 0 {
			continue
		}
		src.words = words

		// .equ CONST VALUE
		if words[0] == ".equ" {
			if len(words) != 3 {
				err = ErrEquateSyntax
				return
			}
			_, ok := asm.Equate[words[1]]
			if ok {
				err = ErrEquateDuplicate
				return
			}
			asm.Equate[words[1]] = words[2]
			continue
		}

		for len(src.words) > 0 && isLabel(src.words[0]) {
			label := src.words[0][:len(src.words[0])-1]
			_, ok := asm.Label[label]
			if ok {
				err = ErrLabelDuplicate
				return
			}
			asm.Label[label] = int16(len(lines))
			if asm.Verbose {
				log.Printf("asm: label %v is line %v", label, len(lines))
			}
			src.words = src.words[1:]
		}

		if len(src.words) > 0 {
			lines = append(lines, src)
		}
	}
	err = scanner.Err()
	if err != nil {
		return
	}

	// Second pass: encode the instructions.
	rom = &Rom{}
	for _, src = range lines {
		var line Line
		line, err = asm.parseWords(src)
		if err != nil {
			return
		}

		err = rom.append(line)
		if err != nil {
			return
		}
		asm.Listing.Sources = append(asm.Listing.Sources, Source{LineNo: src.lineNo, Words: src.words})
	}

	return
}

// equate substitutes an equate for a word, if one is defined.
func (asm *Assembler) equate(word string) string {
	value, ok := asm.Equate[word]
	if ok {
		return value
	}
	return word
}

// parseWords encodes one instruction.
func (asm *Assembler) parseWords(src source) (line Line, err error) {
	words := src.words

	op, ok := ParseInstruction(words[0])
	if !ok {
		err = ErrInstructionInvalid
		return
	}

	args := words[1:]
	if len(args) != op.Arity() {
		asm.diagnose(src, ErrArity{Instruction: op, Want: op.Arity(), Got: len(args)})
	}
	if len(args) > 3 {
		args = args[:3]
	}

	var roja, arg1, arg2 int16
	arg1Imm, arg2Imm := true, true

	if len(args) > 0 {
		if op.IsJump() {
			roja, err = asm.target(src, args[0])
		} else {
			roja = asm.register(src, args[0])
		}
		if err != nil {
			return
		}
	}
	if len(args) > 1 {
		arg1, arg1Imm, err = asm.operand(src, args[1])
		if err != nil {
			return
		}
	}
	if len(args) > 2 {
		arg2, arg2Imm, err = asm.operand(src, args[2])
		if err != nil {
			return
		}
	}

	line = MakeLine(op, roja, arg1, arg1Imm, arg2, arg2Imm)

	if asm.Verbose {
		log.Printf("asm: %v", line)
	}

	return
}

// target resolves a jump target: a `.label`, or a `#line` literal.
func (asm *Assembler) target(src source, word string) (value int16, err error) {
	word = asm.equate(word)
	switch {
	case strings.HasPrefix(word, "."):
		var ok bool
		value, ok = asm.Label[word]
		if !ok {
			asm.diagnose(src, ErrLabelMissing(word))
			value = LABEL_INVALID
		}
	case strings.HasPrefix(word, "#"):
		value, err = asm.immediate(word[1:])
	default:
		asm.diagnose(src, fmt.Errorf("%w: %v", ErrTargetInvalid, word))
		value = LABEL_INVALID
	}
	return
}

// register resolves a register name.
func (asm *Assembler) register(src source, word string) (index int16) {
	word = asm.equate(word)
	index, ok := LookupRegister(strings.ToLower(word))
	if !ok {
		asm.diagnose(src, ErrRegisterName(word))
	}
	return
}

// operand resolves a register-or-immediate operand.
func (asm *Assembler) operand(src source, word string) (value int16, imm bool, err error) {
	word = asm.equate(word)
	if !strings.HasPrefix(word, "#") {
		value = asm.register(src, word)
		return
	}

	imm = true
	value, err = asm.immediate(word[1:])
	return
}

// immediate parses a literal or an equate into a 16-bit field.
func (asm *Assembler) immediate(word string) (value int16, err error) {
	word = asm.equate(word)

	v64, err := parseNumber(word)
	if err != nil {
		return
	}

	if v64 < -0x8000 || v64 > 0xffff {
		err = ErrParseNumber(word)
		return
	}

	value = int16(uint16(v64))
	return
}

// parseNumber parses a decimal, hex, octal or binary literal.
func parseNumber(word string) (value int64, err error) {
	value, err = strconv.ParseInt(word, 0, 32)
	if err != nil {
		err = ErrParseNumber(word)
	}
	return
}

var (
	reCharLiteral = regexp.MustCompile(`'\\?[^']'`)
	reParenEval   = regexp.MustCompile(`\$\([^\$]*\)`)
)

// expand replaces 'x' character literals and $(...) evaluations in a line
// with their numeric values.
func (asm *Assembler) expand(line string, lineno int) (expanded string, err error) {
	asm.Equate["LINENO"] = fmt.Sprintf("%v", lineno)

	line = reCharLiteral.ReplaceAllStringFunc(line, func(word string) string {
		str := word[1 : len(word)-1]
		if str[0] == '\\' {
			switch str[1:] {
			case "\\":
				str = "\\"
			case "n":
				str = "\n"
			case "t":
				str = "\t"
			default:
				return word
			}
		}
		return fmt.Sprintf("%v", str[0])
	})

	expanded = reParenEval.ReplaceAllStringFunc(line, func(str string) string {
		value, perr := asm.parenEval(str[2 : len(str)-1])
		if perr != nil {
			err = perr
		}
		return fmt.Sprintf("%v", value)
	})

	return
}

// parenEval does compile-time $(...) evaluations
func (asm *Assembler) parenEval(expr string) (value int64, err error) {
	thread := starlark.Thread{Name: "asm"}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for key, str := range asm.Equate {
		v, perr := parseNumber(str)
		if perr != nil {
			// Ignore non-integer equates. They may be registers
			// or something else.
			continue
		}
		pred[key] = starlark.MakeInt64(v)
	}
	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		err = fmt.Errorf("%w: %v", ErrParseExpression(expr), err)
		return
	}
	st_rc, ok := dict["rc"]
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int, ok := st_rc.(starlark.Int)
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	value, ok = st_int.Int64()
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	return
}
