package grammar

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// ic10Lexer splits program text into words. Rules are tried in order.
var ic10Lexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comment", Pattern: `#[^\r\n]*`},
	{Name: "Newline", Pattern: `\n`},
	{Name: "Whitespace", Pattern: `[ \t\r\v\f]+`},
	{Name: "Label", Pattern: `[A-Za-z_][A-Za-z0-9_]*:`},
	{Name: "Memory", Pattern: `r+[0-9]+\b`},
	{Name: "Device", Pattern: `dr*[0-9]+\b`},
	{Name: "Ident", Pattern: `[A-Za-z_][A-Za-z0-9_]*`},
	{Name: "Number", Pattern: `[-+.0-9][^ \t\r\n\v\f#]*`},
	{Name: "Invalid", Pattern: `[^ \t\r\n\v\f#]+`},
})

type programNode struct {
	Lines []*lineNode `parser:"@@? ( Newline @@? )*"`
}

type lineNode struct {
	Pos lexer.Position

	Label       *labelNode       `parser:"( ( @@"`
	Instruction *instructionNode `parser:"  | @@ )"`
	Comment     *commentNode     `parser:"  @@? | @@ )"`
}

type labelNode struct {
	Pos  lexer.Position
	Text string `parser:"@Label"`
}

type instructionNode struct {
	Pos    lexer.Position
	Opcode string      `parser:"@Ident"`
	Args   []*wordNode `parser:"@@*"`
}

type wordNode struct {
	Pos    lexer.Position
	Memory string `parser:"  @Memory"`
	Device string `parser:"| @Device"`
	Ident  string `parser:"| @Ident"`
	Number string `parser:"| @Number"`
}

type commentNode struct {
	Pos  lexer.Position
	Text string `parser:"@Comment"`
}

var (
	programParser = participle.MustBuild[programNode](
		participle.Lexer(ic10Lexer),
		participle.Elide("Whitespace"),
	)
	wordParser = participle.MustBuild[wordNode](
		participle.Lexer(ic10Lexer),
		participle.Elide("Whitespace"),
	)
)

// rule is the rule tag of the word, and its text.
func (word *wordNode) rule() (rule Rule, text string) {
	switch {
	case len(word.Memory) != 0:
		return RULE_MEMORY, word.Memory
	case len(word.Device) != 0:
		return RULE_DEVICE, word.Device
	case len(word.Ident) != 0:
		return RULE_IDENTIFIER, word.Ident
	default:
		return RULE_NUMBER, word.Number
	}
}

// span is the input covered by the word.
func (word *wordNode) span() Span {
	_, text := word.rule()
	return Span{word.Pos.Offset, word.Pos.Offset + len(text)}
}
