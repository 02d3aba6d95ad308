package grammar

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rules(pairs []*Pair) (out []Rule) {
	for _, pair := range pairs {
		out = append(out, pair.Rule)
	}
	return
}

func TestParseProgram(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	text := "alias x r0\n\n# comment\nloop:\nmove x 6 # six\r\nj loop"

	prog, err := Parse(text, RULE_PROGRAM)
	require.NoError(err)
	require.Equal(6, len(prog.Children))

	for n, line := range prog.Children {
		assert.Equal(RULE_LINE, line.Rule)
		assert.Equal(n, line.Line)
	}

	assert.Equal([]Rule{RULE_INSTRUCTION}, rules(prog.Children[0].Children))
	assert.Empty(prog.Children[1].Children)
	assert.Equal([]Rule{RULE_COMMENT}, rules(prog.Children[2].Children))
	assert.Equal([]Rule{RULE_LABEL}, rules(prog.Children[3].Children))
	assert.Equal([]Rule{RULE_INSTRUCTION, RULE_COMMENT}, rules(prog.Children[4].Children))
	assert.Equal("move x 6 # six", prog.Children[4].Str())
	assert.Equal("# six", prog.Children[4].Children[1].Str())

	label, err := prog.Children[3].Only()
	require.NoError(err)
	name, err := label.Only()
	require.NoError(err)
	assert.Equal(RULE_IDENTIFIER, name.Rule)
	assert.Equal("loop", name.Str())
}

func TestParseInstruction(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	ins, err := Parse("  add r0 rr1 -1.5 d2 dr3 foo", RULE_INSTRUCTION)
	require.NoError(err)

	assert.Equal([]Rule{
		RULE_OPCODE,
		RULE_REGISTER,
		RULE_REGISTER,
		RULE_NUMBER,
		RULE_REGISTER,
		RULE_REGISTER,
		RULE_REGISTER,
	}, rules(ins.Children))
	assert.Equal("add", ins.Children[0].Str())
	assert.Equal(Span{2, 28}, ins.Span)

	inner := []Rule{}
	for _, arg := range ins.Children[1:] {
		if arg.Rule != RULE_REGISTER {
			continue
		}
		child, err := arg.Only()
		require.NoError(err)
		inner = append(inner, child.Rule)
	}
	assert.Equal([]Rule{RULE_MEMORY, RULE_MEMORY, RULE_DEVICE, RULE_DEVICE, RULE_IDENTIFIER}, inner)
}

func TestParseWord(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		text string
		rule Rule
		ok   bool
	}){
		{"r0", RULE_MEMORY, true},
		{"rrr12", RULE_MEMORY, true},
		{"r", RULE_MEMORY, false},
		{"d5", RULE_DEVICE, true},
		{"drr0", RULE_DEVICE, true},
		{"d", RULE_DEVICE, false},
		{"sp", RULE_IDENTIFIER, true},
		{"r1a", RULE_IDENTIFIER, true},
		{"_x9", RULE_IDENTIFIER, true},
		{"12.5", RULE_NUMBER, true},
		{"-3", RULE_NUMBER, true},
		{"1.2.3", RULE_NUMBER, true},
		{"r0", RULE_NUMBER, false},
		{"r0", RULE_REGISTER, true},
		{"5", RULE_REGISTER, false},
		{" r0 ", RULE_MEMORY, true},
		{"r0 r1", RULE_MEMORY, false},
		{"d0.Setting", RULE_REGISTER, false},
		{"", RULE_MEMORY, false},
		{"r0\n", RULE_MEMORY, false},
		{"move", RULE_OPCODE, true},
		{"9move", RULE_OPCODE, false},
	}

	for _, entry := range table {
		pair, err := Parse(entry.text, entry.rule)
		if entry.ok {
			assert.NoError(err, entry.text)
			if err == nil {
				assert.Equal(entry.rule, pair.Rule, entry.text)
			}
		} else {
			assert.Error(err, entry.text)
			assert.True(errors.Is(err, ErrUnexpected), entry.text)
		}
	}
}

func TestParseLabel(t *testing.T) {
	assert := assert.New(t)

	pair, err := Parse("start: # entry", RULE_LABEL)
	assert.NoError(err)
	assert.Equal("start:", pair.Str())

	_, err = Parse("move r0 1", RULE_LABEL)
	assert.ErrorIs(err, ErrUnexpected)

	_, err = Parse("9bad:", RULE_LINE)
	assert.ErrorIs(err, ErrUnexpected)

	_, err = Parse("a:\nb:", RULE_LABEL)
	assert.ErrorIs(err, ErrUnexpected)
}

func TestParseComment(t *testing.T) {
	assert := assert.New(t)

	pair, err := Parse("# hello", RULE_COMMENT)
	assert.NoError(err)
	assert.Equal("# hello", pair.Str())

	_, err = Parse("yield # hello", RULE_COMMENT)
	assert.ErrorIs(err, ErrUnexpected)
}

func TestParseErrors(t *testing.T) {
	assert := assert.New(t)

	_, err := Parse("move r0 @", RULE_PROGRAM)
	var rule_err *ErrRule
	assert.True(errors.As(err, &rule_err))
	if rule_err != nil {
		assert.Equal(RULE_PROGRAM, rule_err.Rule)
		assert.Equal(Span{8, 9}, rule_err.Span)
		assert.Equal("@", rule_err.Text)
	}

	// Words must be separated by whitespace.
	_, err = Parse("move r0.5 1", RULE_LINE)
	rule_err = nil
	assert.True(errors.As(err, &rule_err))
	if rule_err != nil {
		assert.Equal(Span{7, 9}, rule_err.Span)
		assert.Equal(".5", rule_err.Text)
	}

	_, err = Parse("yield\nj 0\nmove r0 1 x:", RULE_PROGRAM)
	rule_err = nil
	assert.True(errors.As(err, &rule_err))
	if rule_err != nil {
		assert.Equal("x:", rule_err.Text)
	}

	_, err = Parse("r0", Rule(99))
	assert.ErrorIs(err, ErrRuleUnsupported)
}

func TestPairOnly(t *testing.T) {
	assert := assert.New(t)

	pair, err := Parse("x", RULE_IDENTIFIER)
	assert.NoError(err)

	_, err = pair.Only()
	assert.ErrorIs(err, ErrInsufficientPairs)
}

func TestPairInner(t *testing.T) {
	assert := assert.New(t)

	ins, err := Parse("add r0 1 2", RULE_INSTRUCTION)
	assert.NoError(err)

	count := 0
	for arg := range ins.Inner(RULE_NUMBER) {
		assert.Equal(RULE_NUMBER, arg.Rule)
		count++
	}
	assert.Equal(2, count)
	assert.Equal(`number(7..8 "1")`, ins.Children[2].String())
}

func FuzzParse(f *testing.F) {
	f.Add("move r0 1")
	f.Add("loop:\nj loop # back")
	f.Add("\r\n\t#")
	f.Add("add rr0 d5 -1.5e3")

	f.Fuzz(func(t *testing.T, text string) {
		prog, err := Parse(text, RULE_PROGRAM)
		if err != nil {
			return
		}
		for _, line := range prog.Children {
			_ = line.Str()
			for _, child := range line.Children {
				_ = child.Str()
			}
		}
	})
}
