package grammar

import (
	"errors"
	"strings"

	"github.com/alecthomas/participle/v2"
)

// Parse parses text as the requested rule.
//
// RULE_PROGRAM accepts any number of lines. RULE_LINE, RULE_INSTRUCTION,
// RULE_LABEL and RULE_COMMENT accept a single line. The remaining rules
// accept a single word, with surrounding whitespace ignored.
func Parse(text string, rule Rule) (pair *Pair, err error) {
	switch rule {
	case RULE_PROGRAM:
		pair, err = parseProgram(text, rule)
	case RULE_LINE, RULE_INSTRUCTION, RULE_LABEL, RULE_COMMENT:
		if strings.IndexByte(text, '\n') >= 0 {
			err = &ErrRule{Rule: rule, Span: Span{0, len(text)}, Text: text}
			return
		}
		var program *Pair
		program, err = parseProgram(text, rule)
		if err != nil {
			return
		}
		line := program.Children[0]
		if rule == RULE_LINE {
			pair = line
			return
		}
		for _, child := range line.Children {
			if child.Rule == rule {
				pair = child
			} else if rule != RULE_COMMENT && child.Rule == RULE_COMMENT {
				continue
			} else {
				pair = nil
				break
			}
		}
		if pair == nil {
			err = &ErrRule{Rule: rule, Span: line.Span, Text: line.Str()}
		}
	case RULE_OPCODE, RULE_REGISTER, RULE_MEMORY, RULE_DEVICE, RULE_IDENTIFIER, RULE_NUMBER:
		pair, err = parseWord(text, rule)
	default:
		err = ErrRuleUnsupported
	}

	return
}

// ruleError converts a parser failure into an ErrRule that covers the
// offending word.
func ruleError(text string, rule Rule, err error) *ErrRule {
	start := 0
	var parse_err participle.Error
	if errors.As(err, &parse_err) {
		start = min(max(parse_err.Position().Offset, 0), len(text))
	}

	end := start
	for end < len(text) && !isSpace(text[end]) && text[end] != '\n' && text[end] != '#' {
		end++
	}

	return &ErrRule{Rule: rule, Span: Span{start, end}, Text: text[start:end]}
}

// parseProgram parses text, and returns one LINE pair per line of it.
func parseProgram(text string, rule Rule) (program *Pair, err error) {
	node, err := programParser.ParseString("", text)
	if err != nil {
		err = ruleError(text, rule, err)
		return
	}

	program = &Pair{Rule: RULE_PROGRAM, Span: Span{0, len(text)}, input: text}

	start := 0
	for lineno := 0; ; lineno++ {
		end := strings.IndexByte(text[start:], '\n')
		last := end < 0
		if last {
			end = len(text)
		} else {
			end += start
		}

		program.Children = append(program.Children, &Pair{
			Rule:  RULE_LINE,
			Span:  Span{start, trimEnd(text, start, end)},
			Line:  lineno,
			input: text,
		})

		if last {
			break
		}
		start = end + 1
	}

	for _, line := range node.Lines {
		lineno := line.Pos.Line - 1
		if lineno < 0 || lineno >= len(program.Children) {
			err = &ErrRule{Rule: rule, Span: Span{line.Pos.Offset, line.Pos.Offset}}
			program = nil
			return
		}
		err = fillLine(program.Children[lineno], line, rule)
		if err != nil {
			program = nil
			return
		}
	}

	return
}

// trimEnd drops a trailing carriage return from a line.
func trimEnd(text string, start, end int) int {
	if end > start && text[end-1] == '\r' {
		end--
	}
	return end
}

// fillLine adds the label, instruction and comment of a line.
func fillLine(pair *Pair, line *lineNode, rule Rule) (err error) {
	input := pair.input
	lineno := pair.Line

	if label := line.Label; label != nil {
		span := Span{label.Pos.Offset, label.Pos.Offset + len(label.Text)}
		name := &Pair{Rule: RULE_IDENTIFIER, Span: Span{span.Start, span.End - 1}, Line: lineno, input: input}
		pair.Children = append(pair.Children,
			&Pair{Rule: RULE_LABEL, Span: span, Line: lineno, input: input, Children: []*Pair{name}})
	}

	if ins := line.Instruction; ins != nil {
		opcode := &Pair{
			Rule:  RULE_OPCODE,
			Span:  Span{ins.Pos.Offset, ins.Pos.Offset + len(ins.Opcode)},
			Line:  lineno,
			input: input,
		}
		instruction := &Pair{
			Rule:     RULE_INSTRUCTION,
			Span:     opcode.Span,
			Line:     lineno,
			input:    input,
			Children: []*Pair{opcode},
		}
		for _, word := range ins.Args {
			span := word.span()
			// Words are whitespace separated; `r0.5` is not `r0 .5`.
			if span.Start == instruction.Span.End {
				err = &ErrRule{Rule: rule, Span: span, Text: input[span.Start:span.End]}
				return
			}
			instruction.Children = append(instruction.Children, wordPair(input, word, lineno))
			instruction.Span.End = span.End
		}
		pair.Children = append(pair.Children, instruction)
	}

	if comment := line.Comment; comment != nil {
		span := Span{comment.Pos.Offset, comment.Pos.Offset + len(comment.Text)}
		pair.Children = append(pair.Children, &Pair{Rule: RULE_COMMENT, Span: span, Line: lineno, input: input})
	}

	return
}

// wordPair builds the pair of an operand word. Everything except a
// number is wrapped in a REGISTER.
func wordPair(input string, word *wordNode, lineno int) *Pair {
	rule, _ := word.rule()
	leaf := &Pair{Rule: rule, Span: word.span(), Line: lineno, input: input}
	if rule == RULE_NUMBER {
		return leaf
	}

	return &Pair{Rule: RULE_REGISTER, Span: leaf.Span, Line: lineno, input: input, Children: []*Pair{leaf}}
}

// parseWord parses text as a single word of the given rule.
func parseWord(text string, rule Rule) (pair *Pair, err error) {
	word, err := wordParser.ParseString("", text)
	if err != nil {
		err = ruleError(text, rule, err)
		return
	}

	kind, _ := word.rule()
	span := word.span()
	switch {
	case rule == RULE_OPCODE && kind == RULE_IDENTIFIER:
		pair = &Pair{Rule: RULE_OPCODE, Span: span, input: text}
	case rule == RULE_REGISTER && kind != RULE_NUMBER:
		pair = wordPair(text, word, 0)
	case rule == kind:
		pair = &Pair{Rule: kind, Span: span, input: text}
	default:
		err = &ErrRule{Rule: rule, Span: span, Text: text[span.Start:span.End]}
	}

	return
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\v' || c == '\f'
}
