// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"maps"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Macro represents a macro definition in the assembly language.
type Macro struct {
	LineNo int      // Line number of the macro definition.
	Args   []string // Arguments for the macro.
	Lines  []string // Lines of macro text to expand.
}

// Predefined system equates
var sysEquate = map[string]string{
	"LINENO": "0",
}

// Assembler is a single pass macro assembler for the 8080. Forward label
// references are patched once the whole source has been read.
type Assembler struct {
	Verbose bool     // If set, verbosely logs the assembler actions.
	Opcode  []Opcode // List of generated opcodes.

	predefine map[string]string   // Predefines
	Label     map[string]int      // Map of labels to addresses.
	Equate    map[string]string   // Map of equates.
	Macro     map[string](*Macro) // Map of macros.

	address int // Address of the next generated byte.
}

// Predefine defines a new equate or redefines an existing equate.
func (asm *Assembler) Predefine(equ string, value string) {
	if asm.predefine == nil {
		asm.predefine = map[string]string{equ: value}
	} else {
		asm.predefine[equ] = value
	}
}

// asmTable maps "MNEMONIC OPERANDS" to opcodes. The first opcode with a
// given spelling wins, so NOP aliases never shadow 0x00.
var asmTable = map[string]byte{}

func init() {
	maps.Copy(sysEquate, memoryMap)

	for n, inst := range opcodeTable {
		if inst.Op == OP_INVALID {
			continue
		}
		var operands []string
		for _, arg := range inst.Operands() {
			operands = append(operands, arg.String())
		}
		key := asmKey(inst.Mnemonic(), operands)
		if _, ok := asmTable[key]; !ok {
			asmTable[key] = byte(n)
		}
	}
}

// asmKey is the lookup key for a mnemonic and its operands.
func asmKey(mnemonic string, operands []string) string {
	if len(operands) == 0 {
		return mnemonic
	}
	return mnemonic + " " + strings.Join(operands, ",")
}

var labelRegexp = regexp.MustCompile(`^[A-Za-z_.@][A-Za-z0-9_.@]*$`)

// ParseValue returns the value of a number.
// Accepts Go style prefixes (0x, 0b, 0o), '$' hex prefix and 'h' hex suffix.
func ParseValue(word string) (value int, err error) {
	text := word
	base := 0
	switch {
	case strings.HasPrefix(text, "$") && len(text) > 1:
		text = text[1:]
		base = 16
	case len(text) > 1 && strings.ContainsAny(text[len(text)-1:], "hH") &&
		text[0] >= '0' && text[0] <= '9':
		text = text[:len(text)-1]
		base = 16
	}

	v64, err := strconv.ParseInt(text, base, 32)
	if err != nil {
		err = ErrParseNumber(word)
		return
	}

	value = int(v64)
	return
}

// valueOf returns the value of a simple word.
func (asm *Assembler) valueOf(word string) (value int, err error) {
	return ParseValue(word)
}

// resolve returns the value of a number or a known label. An unknown
// label is returned for linking.
func (asm *Assembler) resolve(word string) (value int, label string, err error) {
	value, err = asm.valueOf(word)
	if err == nil {
		return
	}

	if !labelRegexp.MatchString(word) {
		return
	}

	err = nil
	addr, ok := asm.Label[word]
	if ok {
		value = addr
		return
	}

	label = word
	return
}

// parenEval does compile-time $(...) evaluations
func (asm *Assembler) parenEval(expr string) (value int, err error) {
	thread := starlark.Thread{}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for key, str := range asm.Equate {
		var v int
		v, err = asm.valueOf(str)
		if err != nil {
			// Ignore non-integer equates. They may be registers
			// or something else.
			err = nil
			continue
		}
		pred[key] = starlark.MakeInt(v)
	}
	for key, addr := range asm.Label {
		pred[key] = starlark.MakeInt(addr)
	}
	pred["HERE"] = starlark.MakeInt(asm.address)

	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
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
	st_int64, ok := st_int.Int64()
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	value = int(st_int64)
	return
}

// splitWords splits a line on blanks and commas.
func splitWords(line string) []string {
	return strings.FieldsFunc(line, func(r rune) bool {
		return r == ' ' || r == '\t' || r == ','
	})
}

// parseLine parses a single line as an opcode.
func (asm *Assembler) parseLine(line string, lineno int) (words []string, err error) {
	// Set line number.
	asm.Equate["LINENO"] = fmt.Sprintf("%v", lineno)

	// Do 'x' evaluations
	re := regexp.MustCompile(`'\\?[^']'`)
	line = re.ReplaceAllStringFunc(line, func(word string) string {
		str := word[1 : len(word)-1]
		if str[0] == '\\' {
			str = str[1:]
			switch str {
			case "\\":
				str = "\\"
			case "n":
				str = "\n"
			case "r":
				str = "\r"
			case "e":
				str = "\033"
			case "0":
				str = "\000"
			default:
				return word
			}
		} else if len(str) != 1 {
			return word
		}
		return fmt.Sprintf("%v", str[0])
	})

	// Do $() evaluations
	re = regexp.MustCompile(`\$\([^\$]*\)`)
	line = re.ReplaceAllStringFunc(line, func(str string) string {
		value, _err := asm.parenEval(str[2 : len(str)-1])
		if _err != nil {
			err = _err
		}
		return fmt.Sprintf("%#x", value)
	})
	if err != nil {
		return
	}

	words = splitWords(line)

	if len(words) == 0 {
		return
	}

	// .equ CONST VALUE
	if strings.EqualFold(words[0], ".equ") {
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
		words = words[:0]
		return
	}

	for n, word := range words {
		// Check for equate next
		equate, ok := asm.Equate[word]
		if ok {
			words[n] = equate
		}
	}

	for strings.HasSuffix(words[0], ":") {
		label := words[0][:len(words[0])-1]
		if !labelRegexp.MatchString(label) {
			err = ErrLabelInvalid
			return
		}
		_, ok := asm.Label[label]
		if ok {
			err = ErrLabelDuplicate
			return
		}

		if asm.Label == nil {
			asm.Label = make(map[string]int, 16)
		}
		asm.Label[label] = asm.address
		words = words[1:]
		if len(words) == 0 {
			return
		}
	}

	// .macro processing
	macro, ok := asm.Macro[words[0]]
	if ok {
		name := words[0]

		args := words[1:]
		if len(args) != len(macro.Args) {
			err = ErrMacroSyntax
			return
		}
		// Turn args into equs
		old_equate := maps.Clone(asm.Equate)
		for n, arg := range macro.Args {
			asm.Equate[arg] = words[1+n]
		}
		defer func() { asm.Equate = old_equate }()

		// Local labels are unique to the line that expands the macro.
		local := fmt.Sprintf("%v_%v_", name, lineno)
		for n, text := range macro.Lines {
			bodyno := macro.LineNo + n

			text = strings.ReplaceAll(text, "@", local)
			words, err = asm.parseLine(text, bodyno)
			if err == nil {
				err = asm.parseWords(words, bodyno)
			}
			if err != nil {
				err = &ErrMacro{Macro: name, Line: bodyno, Err: err}
				return
			}
		}
		words = nil
		return
	}

	return
}

// Parse parses an input stream into a Program containing opcodes.
func (asm *Assembler) Parse(input io.Reader) (prog *Program, err error) {

	scanner := bufio.NewScanner(input)

	var line string
	var lineno int
	var macro *Macro

	defer func() {
		if err != nil {
			err = &ErrSyntax{LineNo: lineno, Line: line, Err: err}
		}
	}()

	clear(asm.Label)
	asm.Opcode = asm.Opcode[:0]
	asm.address = 0
	if asm.Macro == nil {
		asm.Macro = make(map[string](*Macro))
	}
	clear(asm.Macro)
	asm.Equate = maps.Clone(sysEquate)
	for attr, val := range asm.predefine {
		asm.Equate[attr] = val
	}

	for scanner.Scan() {
		text := scanner.Text()
		lineno += 1

		if asm.Verbose {
			log.Printf("%v: %v\n", lineno, text)
		}

		text_comment := strings.Split(text, ";")
		line = strings.TrimSpace(text_comment[0])
		words := splitWords(line)

		// .macro NAME arg...
		if len(words) > 0 && strings.EqualFold(words[0], ".macro") {
			if macro != nil {
				err = ErrMacroNesting
				return
			}
			if len(words) < 2 {
				err = ErrMacroSyntax
				return
			}
			_, ok := asm.Macro[words[1]]
			if ok {
				err = ErrMacroDuplicate
				return
			}
			macro = &Macro{
				LineNo: lineno + 1,
			}
			if len(words) > 2 {
				macro.Args = words[2:]
			}
			asm.Macro[words[1]] = macro
			continue
		}

		if len(words) > 0 && strings.EqualFold(words[0], ".endm") {
			if macro == nil {
				err = ErrMacroLonelyEndm
				return
			}
			macro = nil
			continue
		}

		if macro != nil {
			macro.Lines = append(macro.Lines, line)
			continue
		}

		words, err = asm.parseLine(line, lineno)
		if err != nil {
			return
		}

		err = asm.parseWords(words, lineno)
		if err != nil {
			return
		}
	}

	if err = scanner.Err(); err != nil {
		return
	}

	if macro != nil {
		err = ErrMacroLonely
		return
	}

	// Final linking of labels.
	for n := range asm.Opcode {
		op := &asm.Opcode[n]

		for _, link := range op.Links {
			ip, ok := asm.Label[link.Label]
			if !ok {
				lineno = op.LineNo
				line = strings.Join(op.Words, " ")
				err = ErrLabelMissing(link.Label)
				return
			}
			op.Data[link.Offset] = byte(ip)
			if link.Size == 2 {
				op.Data[link.Offset+1] = byte(ip >> 8)
			}
		}
	}

	// Overlap check, for .org going backwards.
	used := make([]bool, MEMORY_SIZE)
	for _, op := range asm.Opcode {
		for n := range op.Data {
			addr := op.Address + n
			if addr >= MEMORY_SIZE || used[addr] {
				lineno = op.LineNo
				line = strings.Join(op.Words, " ")
				err = fmt.Errorf("%w 0x%04x", ErrImageOverlap, addr)
				return
			}
			used[addr] = true
		}
	}

	prog = &Program{
		Opcodes: slices.Clone(asm.Opcode),
	}

	return
}

// parseData encodes the operands of .db (size 1) or .dw (size 2).
func (asm *Assembler) parseData(args []string, size int) (data []byte, links []Link, err error) {
	if len(args) == 0 {
		err = ErrOpcodeValueMissing
		return
	}

	for _, arg := range args {
		var value int
		var label string
		value, label, err = asm.resolve(arg)
		if err != nil {
			return
		}
		if len(label) != 0 {
			links = append(links, Link{Offset: len(data), Size: size, Label: label})
		} else if err = checkRange(value, size); err != nil {
			return
		}
		data = append(data, byte(value))
		if size == 2 {
			data = append(data, byte(value>>8))
		}
	}

	return
}

// checkRange verifies a value fits in size bytes, signed or unsigned.
func checkRange(value int, size int) error {
	limit := 1 << (8 * size)
	if value < -limit/2 || value >= limit {
		return ErrValueRange
	}
	return nil
}

// parseWords evaluates the words in a line of assembly text.
func (asm *Assembler) parseWords(words []string, lineno int) (err error) {
	var data []byte
	var links []Link

	// no-op
	if len(words) == 0 {
		return
	}

	initial_words := words
	address := asm.address

	defer func() {
		if err != nil || len(data) == 0 {
			return
		}
		opcode := Opcode{LineNo: lineno, Address: address, Words: initial_words, Data: data, Links: links}
		asm.Opcode = append(asm.Opcode, opcode)
		asm.address += len(data)
	}()

	mnemonic := strings.ToUpper(words[0])
	args := words[1:]

	switch mnemonic {
	case ".ORG":
		if len(args) != 1 {
			err = ErrOrgSyntax
			return
		}
		var value int
		value, err = asm.valueOf(args[0])
		if err != nil {
			return
		}
		if value < 0 || value >= MEMORY_SIZE {
			err = ErrValueRange
			return
		}
		asm.address = value
		return
	case ".DB":
		data, links, err = asm.parseData(args, 1)
		return
	case ".DW":
		data, links, err = asm.parseData(args, 2)
		return
	case ".DS":
		if len(args) != 1 {
			err = ErrDataSyntax
			return
		}
		var count int
		count, err = asm.valueOf(args[0])
		if err != nil {
			return
		}
		if count < 0 || asm.address+count > MEMORY_SIZE {
			err = ErrValueRange
			return
		}
		data = make([]byte, count)
		return
	}

	operands := make([]string, len(args))
	for n, arg := range args {
		operands[n] = strings.ToUpper(arg)
	}

	// All operands are registers, or none at all.
	if opcode, ok := asmTable[asmKey(mnemonic, operands)]; ok {
		if Lookup(opcode).Data() != ARG_NONE {
			err = ErrOpcodeValueMissing
			return
		}
		data = []byte{opcode}
		return
	}

	if len(args) == 0 {
		err = ErrInstructionInvalid
		return
	}

	// Trailing operand is data.
	last := len(args) - 1
	opcode, ok := asmTable[asmKey(mnemonic, operands[:last])]
	if !ok {
		err = ErrInstructionInvalid
		return
	}

	size := 1
	switch Lookup(opcode).Data() {
	case ARG_NONE:
		err = ErrOpcodeExtraArgs
		return
	case ARG_D16, ARG_ADR:
		size = 2
	}

	var value int
	var label string
	value, label, err = asm.resolve(args[last])
	if err != nil {
		return
	}

	if len(label) != 0 {
		links = append(links, Link{Offset: 1, Size: size, Label: label})
	} else if err = checkRange(value, size); err != nil {
		return
	}

	data = []byte{opcode, byte(value)}
	if size == 2 {
		data = append(data, byte(value>>8))
	}

	return
}
