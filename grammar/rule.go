package grammar

// Rule tags a node of the parse tree.
type Rule int

//go:generate go tool stringer -linecomment -type=Rule
const (
	RULE_PROGRAM     = Rule(0)  // program
	RULE_LINE        = Rule(1)  // line
	RULE_INSTRUCTION = Rule(2)  // instruction
	RULE_LABEL       = Rule(3)  // label
	RULE_OPCODE      = Rule(4)  // opcode
	RULE_REGISTER    = Rule(5)  // register
	RULE_MEMORY      = Rule(6)  // memory
	RULE_DEVICE      = Rule(7)  // device
	RULE_IDENTIFIER  = Rule(8)  // identifier
	RULE_NUMBER      = Rule(9)  // number
	RULE_COMMENT     = Rule(10) // comment
)
