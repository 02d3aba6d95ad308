package chip

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ezrec/ic10/device"
	"github.com/ezrec/ic10/grammar"
)

func TestParseRoundTrip(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		text string
		want string
	}){
		{"move r0 6", "move r0 6"},
		{"  add   rr1 r2 -1.5  # sum", "add rr1 r2 -1.5"},
		{"l r0 d0 Setting", "l r0 d0 Setting"},
		{"s drr2 On 1", "s drr2 On 1"},
		{"alias x r0", "alias x r0"},
		{"alias light d1", "alias light d1"},
		{"define limit 1e3", "define limit 1000"},
		{"beq r0 1 nan", "beq r0 1 nan"},
		{"j loop", "j loop"},
		{"loop:", "loop:"},
		{"push 0.5", "push 0.5"},
		{"frob a 1 r2", "frob a 1 r2"},
		{"# just a comment", ""},
		{"", ""},
		{"hcf", "hcf"},
	}

	for _, entry := range table {
		ins, err := ParseInstruction(entry.text)
		assert.NoError(err, entry.text)
		assert.Equal(entry.want, ins.String(), entry.text)

		again, err := ParseInstruction(ins.String())
		assert.NoError(err, entry.text)
		assert.Equal(ins.String(), again.String(), entry.text)
	}
}

func TestParseOperands(t *testing.T) {
	assert := assert.New(t)

	ins, err := ParseInstruction("add rrr3 r0 d5")
	assert.ErrorIs(err, ErrArgWrongKind)
	var op_err *ErrOperand
	assert.ErrorAs(err, &op_err)
	assert.Equal(2, op_err.Index)

	ins, err = ParseInstruction("add rrr3 r0 x")
	assert.NoError(err)
	assert.Equal(MemoryRef{Base: 3, Indirections: 2}, ins.Args[0].Memory)
	assert.Equal(RefValue(MemoryRef{Base: 0}), ins.Args[1].Value)
	assert.Equal(RefValue(MemoryAlias("x")), ins.Args[2].Value)

	ins, err = ParseInstruction("l r0 drr7 On")
	assert.NoError(err)
	assert.Equal(DeviceRef{Base: 7, Indirections: 2}, ins.Args[1].Device)

	_, err = ParseInstruction("move r0 1.2.3")
	assert.ErrorIs(err, ErrParseNumber("1.2.3"))

	_, err = ParseInstruction("move r99999999999 1")
	var num_err ErrParseNumber
	assert.ErrorAs(err, &num_err)

	_, err = ParseInstruction("move r0")
	assert.ErrorIs(err, ErrOpcodeValueMissing)

	_, err = ParseInstruction("move r0 1 2")
	assert.ErrorIs(err, ErrOpcodeExtraArgs)

	_, err = ParseInstruction("alias 5 r0")
	assert.ErrorIs(err, ErrArgWrongKind)

	_, err = ParseInstruction("alias x 5")
	assert.ErrorIs(err, ErrArgWrongKind)

	_, err = ParseInstruction("move r0 @")
	assert.ErrorIs(err, grammar.ErrUnexpected)
}

func TestFromPair(t *testing.T) {
	assert := assert.New(t)

	pair, err := grammar.Parse("rr4", grammar.RULE_REGISTER)
	assert.NoError(err)
	mem, err := MemoryRefFromPair(pair)
	assert.NoError(err)
	assert.Equal(MemoryRef{Base: 4, Indirections: 1}, mem)

	_, err = DeviceRefFromPair(pair)
	assert.ErrorIs(err, ErrArgWrongKind)

	pair, err = grammar.Parse("d3", grammar.RULE_DEVICE)
	assert.NoError(err)
	dev, err := DeviceRefFromPair(pair)
	assert.NoError(err)
	assert.Equal(DeviceRef{Base: 3}, dev)

	pair, err = grammar.Parse("-2.25", grammar.RULE_NUMBER)
	assert.NoError(err)
	val, err := ValueFromPair(pair)
	assert.NoError(err)
	assert.Equal(Number(-2.25), val)

	_, err = MemoryRefFromPair(pair)
	var arg_err *ErrArgument
	assert.ErrorAs(err, &arg_err)
	assert.Equal(ARG_VALUE, arg_err.Got)

	arg, err := ArgumentFromPair(pair, SHAPE_VALUE)
	assert.NoError(err)
	assert.Equal(ARG_VALUE, arg.Kind)

	pair, err = grammar.Parse("sensor", grammar.RULE_IDENTIFIER)
	assert.NoError(err)
	arg, err = ArgumentFromPair(pair, SHAPE_DEVICE)
	assert.NoError(err)
	assert.Equal(DeviceArg(DeviceAlias("sensor")), arg)

	pair, err = grammar.Parse("loop:", grammar.RULE_LABEL)
	assert.NoError(err)
	ins, err := InstructionFromPair(pair)
	assert.NoError(err)
	assert.Equal(NewInstruction(OP_LABEL, TokenArg("loop")), ins)
}

func TestParseProgram(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	text := "alias x r0\n\n# count\nloop:\nadd x x 1\nblt x 3 loop\n"
	prog, err := ParseProgram(text)
	require.NoError(err)

	var indices []uint
	for index := range prog.Instructions() {
		indices = append(indices, index)
	}
	assert.Equal([]uint{0, 3, 4, 5}, indices)
	assert.Equal(uint(6), prog.Len())
	assert.NoError(prog.Validate())
	assert.Equal("alias x r0\n\n\nloop:\nadd x x 1\nblt x 3 loop", prog.String())

	_, err = ParseProgram("move r0 1\nmove r0\n")
	assert.ErrorIs(err, ErrOpcodeValueMissing)
	var syntax_err *ErrSyntax
	assert.ErrorAs(err, &syntax_err)
	assert.Equal(1, syntax_err.LineNo)
	assert.Equal("move r0", syntax_err.Line)

	_, err = ParseProgram("yield\nyield\nmove r0 !\n")
	assert.ErrorIs(err, grammar.ErrUnexpected)
	assert.ErrorAs(err, &syntax_err)
	assert.Equal(2, syntax_err.LineNo)

	prog, err = ReadProgram(strings.NewReader("yield\r\nhcf\r\n"))
	assert.NoError(err)
	assert.Equal(2, len(prog.Lines))
}

func TestReadProgramFile(t *testing.T) {
	assert := assert.New(t)

	path := filepath.Join(t.TempDir(), "blink.ic10")
	err := os.WriteFile(path, []byte("loop:\ns d0 On 1\nyield\nj loop\n"), 0o644)
	assert.NoError(err)

	prog, err := ReadProgramFile(path)
	assert.NoError(err)
	assert.Equal(uint(4), prog.Len())

	_, err = ReadProgramFile(filepath.Join(t.TempDir(), "missing.ic10"))
	assert.ErrorIs(err, os.ErrNotExist)
}

func TestAssembler(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	asm := &Assembler{}
	asm.Predefine("BASE", 100)

	text := strings.Join([]string{
		"define width 4",
		"move r0 $(width * 2)",
		"move r1 $(BASE + width)",
		"move r2 $(LINENO)",
		"move r3 $(1 / 4)",
		`move r4 HASH("StructureLight")`,
		"move r5 $(STACK_SIZE)",
	}, "\n")

	prog, err := asm.Parse(strings.NewReader(text))
	require.NoError(err)

	want := strings.Join([]string{
		"define width 4",
		"move r0 8",
		"move r1 104",
		"move r2 3",
		"move r3 0.25",
		"move r4 " + formatNumber(float64(device.Hash("StructureLight"))),
		"move r5 512",
	}, "\n")
	assert.Equal(want, prog.String())

	// Defines do not leak between runs.
	_, err = asm.Parse(strings.NewReader("move r0 $(width)"))
	assert.ErrorIs(err, ErrExpression)

	_, err = asm.Parse(strings.NewReader("move r0 $(\"text\")"))
	assert.ErrorIs(err, ErrExpression)

	// Comments are neither expanded nor evaluated.
	text, err = asm.Expand(`move r0 $(2 * 3) # was $(bogus +) HASH("x")`, 0)
	assert.NoError(err)
	assert.Equal(`move r0 6 # was $(bogus +) HASH("x")`, text)

	prog, err = asm.Parse(strings.NewReader("# $(1 +)\nyield # $(nope)"))
	assert.NoError(err)
	assert.Equal("\nyield", prog.String())

	_, err = asm.Parse(strings.NewReader("move r0 $(1 +)"))
	var syntax_err *ErrSyntax
	assert.ErrorAs(err, &syntax_err)
	assert.Equal(0, syntax_err.LineNo)
}

func FuzzParseInstruction(f *testing.F) {
	f.Add("move r0 6")
	f.Add("alias x drr3")
	f.Add("brlt r0 r1 -2")
	f.Add("l r0 d0 Setting # read")
	f.Add("move r0 1.2.3")
	f.Add("loop:")

	f.Fuzz(func(t *testing.T, text string) {
		ins, err := ParseInstruction(text)
		if err != nil {
			return
		}

		again, err := ParseInstruction(ins.String())
		if err != nil {
			t.Fatalf("%q: reparse of %q: %v", text, ins.String(), err)
		}
		if again.String() != ins.String() {
			t.Fatalf("%q: %q != %q", text, again.String(), ins.String())
		}

		chip := NewDefaultChip()
		_, _ = chip.Execute(&ins)
	})
}
