// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package chip

import (
	"bufio"
	"io"
	"log"
	"maps"
	"math"
	"os"
	"regexp"
	"strconv"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/ic10/device"
	"github.com/ezrec/ic10/grammar"
)

// register unwraps a REGISTER pair to its only child.
func register(pair *grammar.Pair) (inner *grammar.Pair, err error) {
	inner = pair
	if pair.Rule == grammar.RULE_REGISTER {
		inner, err = pair.Only()
	}
	return
}

// ruleKind is the argument kind a literal of a rule would produce.
func ruleKind(rule grammar.Rule) ArgKind {
	switch rule {
	case grammar.RULE_MEMORY:
		return ARG_MEMORY
	case grammar.RULE_DEVICE:
		return ARG_DEVICE
	case grammar.RULE_NUMBER:
		return ARG_VALUE
	default:
		return ARG_TOKEN
	}
}

// registerIndex splits `<prefix>r*<digits>` into the count of 'r' after
// the prefix, and the base.
func registerIndex(text string) (count uint, base uint, err error) {
	rest := text[1:]
	digits := strings.TrimLeft(rest, "r")
	value, err := strconv.ParseUint(digits, 10, 32)
	if err != nil {
		err = ErrParseNumber(text)
		return
	}

	count = uint(len(rest) - len(digits))
	base = uint(value)
	return
}

// parseNumber parses a numeric literal.
func parseNumber(text string) (number float64, err error) {
	number, err = strconv.ParseFloat(text, 64)
	if err != nil {
		err = ErrParseNumber(text)
		return
	}
	return
}

// MemoryRefFromPair builds a memory reference from a MEMORY or IDENTIFIER pair.
func MemoryRefFromPair(pair *grammar.Pair) (ref MemoryRef, err error) {
	pair, err = register(pair)
	if err != nil {
		return
	}

	switch pair.Rule {
	case grammar.RULE_MEMORY:
		ref.Indirections, ref.Base, err = registerIndex(pair.Str())
	case grammar.RULE_IDENTIFIER:
		ref = MemoryAlias(pair.Str())
	default:
		err = &ErrArgument{Want: SHAPE_MEMORY, Got: ruleKind(pair.Rule)}
	}

	return
}

// DeviceRefFromPair builds a device reference from a DEVICE or IDENTIFIER pair.
func DeviceRefFromPair(pair *grammar.Pair) (ref DeviceRef, err error) {
	pair, err = register(pair)
	if err != nil {
		return
	}

	switch pair.Rule {
	case grammar.RULE_DEVICE:
		ref.Indirections, ref.Base, err = registerIndex(pair.Str())
	case grammar.RULE_IDENTIFIER:
		ref = DeviceAlias(pair.Str())
	default:
		err = &ErrArgument{Want: SHAPE_DEVICE, Got: ruleKind(pair.Rule)}
	}

	return
}

// ValueFromPair builds a value from a NUMBER, MEMORY or IDENTIFIER pair.
func ValueFromPair(pair *grammar.Pair) (val Value, err error) {
	pair, err = register(pair)
	if err != nil {
		return
	}

	switch pair.Rule {
	case grammar.RULE_NUMBER:
		val.Number, err = parseNumber(pair.Str())
	case grammar.RULE_MEMORY, grammar.RULE_IDENTIFIER:
		var ref MemoryRef
		ref, err = MemoryRefFromPair(pair)
		val = RefValue(ref)
	default:
		err = &ErrArgument{Want: SHAPE_VALUE, Got: ruleKind(pair.Rule)}
	}

	return
}

// ArgumentFromPair builds the argument of a shape from a pair.
func ArgumentFromPair(pair *grammar.Pair, shape Shape) (arg Argument, err error) {
	switch shape {
	case SHAPE_MEMORY:
		arg.Kind = ARG_MEMORY
		arg.Memory, err = MemoryRefFromPair(pair)
	case SHAPE_DEVICE:
		arg.Kind = ARG_DEVICE
		arg.Device, err = DeviceRefFromPair(pair)
	case SHAPE_VALUE:
		arg.Kind = ARG_VALUE
		arg.Value, err = ValueFromPair(pair)
	case SHAPE_TOKEN:
		var inner *grammar.Pair
		inner, err = register(pair)
		if err != nil {
			return
		}
		if inner.Rule != grammar.RULE_IDENTIFIER {
			err = &ErrArgument{Want: shape, Got: ruleKind(inner.Rule)}
			return
		}
		arg = TokenArg(inner.Str())
	case SHAPE_REF:
		var inner *grammar.Pair
		inner, err = register(pair)
		if err != nil {
			return
		}
		switch inner.Rule {
		case grammar.RULE_DEVICE:
			arg.Kind = ARG_DEVICE
			arg.Device, err = DeviceRefFromPair(inner)
		case grammar.RULE_MEMORY, grammar.RULE_IDENTIFIER:
			arg.Kind = ARG_MEMORY
			arg.Memory, err = MemoryRefFromPair(inner)
		default:
			err = &ErrArgument{Want: shape, Got: ruleKind(inner.Rule)}
		}
	default:
		err = ErrInstructionInvalid
	}

	return
}

// InstructionFromPair builds an instruction from an INSTRUCTION or LABEL pair.
// An opcode name that is not known keeps its arguments as raw tokens.
func InstructionFromPair(pair *grammar.Pair) (ins Instruction, err error) {
	if pair.Rule == grammar.RULE_LABEL {
		var name *grammar.Pair
		name, err = pair.Only()
		if err != nil {
			return
		}
		ins = NewInstruction(OP_LABEL, TokenArg(name.Str()))
		return
	}

	if pair.Rule != grammar.RULE_INSTRUCTION || len(pair.Children) == 0 {
		err = &grammar.ErrRule{Rule: grammar.RULE_INSTRUCTION, Span: pair.Span, Text: pair.Str()}
		return
	}

	name := pair.Children[0].Str()
	args := pair.Children[1:]

	op, ok := LookupOpcode(name)
	if !ok {
		ins = Instruction{Opcode: OP_UNKNOWN, Name: name}
		for _, arg := range args {
			ins.Args = append(ins.Args, TokenArg(arg.Str()))
		}
		return
	}

	shapes := op.Shapes()
	switch {
	case len(args) < len(shapes):
		err = ErrOpcodeValueMissing
		return
	case len(args) > len(shapes):
		err = ErrOpcodeExtraArgs
		return
	}

	ins.Opcode = op
	ins.Args = make([]Argument, len(args))
	for n, shape := range shapes {
		ins.Args[n], err = ArgumentFromPair(args[n], shape)
		if err != nil {
			err = &ErrOperand{Index: n, Err: err}
			return
		}
	}

	return
}

// lineInstruction builds the instruction of a LINE pair. Blank and
// comment-only lines are OP_NONE.
func lineInstruction(line *grammar.Pair) (ins Instruction, err error) {
	for _, child := range line.Children {
		switch child.Rule {
		case grammar.RULE_INSTRUCTION, grammar.RULE_LABEL:
			ins, err = InstructionFromPair(child)
			return
		}
	}

	return
}

// ProgramFromPair builds a program from a PROGRAM pair.
func ProgramFromPair(pair *grammar.Pair) (prog *Program, err error) {
	prog = &Program{}
	for _, line := range pair.Children {
		var ins Instruction
		ins, err = lineInstruction(line)
		if err != nil {
			err = &ErrSyntax{LineNo: line.Line, Line: line.Str(), Err: err}
			prog = nil
			return
		}
		if ins.Opcode == OP_NONE {
			continue
		}
		err = prog.Add(uint(line.Line), ins)
		if err != nil {
			prog = nil
			return
		}
	}

	return
}

// ParseInstruction parses a single line of program text.
func ParseInstruction(text string) (ins Instruction, err error) {
	line, err := grammar.Parse(text, grammar.RULE_LINE)
	if err != nil {
		return
	}

	return lineInstruction(line)
}

// ParseProgram parses program text.
func ParseProgram(text string) (prog *Program, err error) {
	pair, err := grammar.Parse(text, grammar.RULE_PROGRAM)
	if err != nil {
		if rule_err, ok := err.(*grammar.ErrRule); ok {
			lineno := strings.Count(text[:rule_err.Span.Start], "\n")
			err = &ErrSyntax{LineNo: lineno, Line: rule_err.Text, Err: err}
		}
		return
	}

	return ProgramFromPair(pair)
}

// ReadProgram parses program text from a reader.
func ReadProgram(input io.Reader) (prog *Program, err error) {
	text, err := io.ReadAll(input)
	if err != nil {
		return
	}

	return ParseProgram(string(text))
}

// ReadProgramFile parses program text from a file.
func ReadProgramFile(path string) (prog *Program, err error) {
	file, err := os.Open(path)
	if err != nil {
		return
	}
	defer file.Close()

	return ReadProgram(file)
}

// Predefined system equates.
var sysEquate = map[string]float64{
	"LINENO":     0,
	"STACK_SIZE": STACK_SIZE,
}

var (
	reHash  = regexp.MustCompile(`HASH\("([^"]*)"\)`)
	reParen = regexp.MustCompile(`\$\([^\$]*\)`)
)

// Assembler expands compile-time expressions in program text before it
// is parsed: `HASH("name")` is replaced by the prefab hash of name, and
// `$(expr)` by the value of a Starlark expression. Expressions see the
// predefines, LINENO, and every numeric `define` of earlier lines.
type Assembler struct {
	Verbose bool // If set, verbosely logs the assembler actions.

	predefine map[string]float64 // Predefines
	Equate    map[string]float64 // Map of equates.
}

// Predefine defines a new equate or redefines an existing equate.
func (asm *Assembler) Predefine(equ string, value float64) {
	if asm.predefine == nil {
		asm.predefine = map[string]float64{equ: value}
	} else {
		asm.predefine[equ] = value
	}
}

// starlarkNumber converts an equate to the most natural Starlark value.
func starlarkNumber(value float64) starlark.Value {
	if value == math.Trunc(value) && math.Abs(value) < 1<<53 {
		return starlark.MakeInt64(int64(value))
	}
	return starlark.Float(value)
}

// parenEval does compile-time $(...) evaluations.
func (asm *Assembler) parenEval(expr string) (value float64, err error) {
	thread := starlark.Thread{}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for key, equ := range asm.Equate {
		pred[key] = starlarkNumber(equ)
	}

	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		err = &ErrEval{Expr: expr, Err: err}
		return
	}

	value, ok := starlark.AsFloat(dict["rc"])
	if !ok {
		err = &ErrEval{Expr: expr, Err: ErrExpression}
		return
	}

	return
}

// Expand performs the compile-time substitutions of one line.
func (asm *Assembler) Expand(line string, lineno int) (text string, err error) {
	if asm.Equate == nil {
		asm.Reset()
	}
	asm.Equate["LINENO"] = float64(lineno)

	// Only the code is expanded; the comment is kept as written.
	code, comment, commented := strings.Cut(line, "#")

	text = reHash.ReplaceAllStringFunc(code, func(str string) string {
		name := reHash.FindStringSubmatch(str)[1]
		return strconv.FormatInt(device.Hash(name), 10)
	})

	text = reParen.ReplaceAllStringFunc(text, func(str string) string {
		value, _err := asm.parenEval(str[2 : len(str)-1])
		if _err != nil {
			if err == nil {
				err = _err
			}
			return str
		}
		return formatNumber(value)
	})
	if err != nil {
		return
	}

	// Record `define NAME number` for later expressions.
	words := strings.Fields(text)
	if len(words) == 3 && words[0] == OP_DEFINE.String() {
		if value, _err := parseNumber(words[2]); _err == nil {
			asm.Equate[words[1]] = value
		}
	}

	if commented {
		text += "#" + comment
	}

	return
}

// Reset clears the equates of a previous run, keeping the predefines.
func (asm *Assembler) Reset() {
	asm.Equate = maps.Clone(sysEquate)
	for attr, val := range asm.predefine {
		asm.Equate[attr] = val
	}
}

// Parse expands and parses an input stream into a Program.
func (asm *Assembler) Parse(input io.Reader) (prog *Program, err error) {
	scanner := bufio.NewScanner(input)

	var line string
	var lineno int

	asm.Reset()

	var lines []string
	for scanner.Scan() {
		line = scanner.Text()

		if asm.Verbose {
			log.Printf("asm: %v: %v\n", lineno, line)
		}

		var text string
		text, err = asm.Expand(line, lineno)
		if err != nil {
			err = &ErrSyntax{LineNo: lineno, Line: line, Err: err}
			return
		}

		lines = append(lines, text)
		lineno++
	}
	err = scanner.Err()
	if err != nil {
		return
	}

	prog, err = ParseProgram(strings.Join(lines, "\n"))
	return
}
