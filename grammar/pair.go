package grammar

import (
	"fmt"
	"iter"
)

// Span is a half-open byte range of the parsed input.
type Span struct {
	Start int
	End   int
}

// Pair is a node of the parse tree.
type Pair struct {
	Rule     Rule
	Span     Span
	Line     int // Source line of the node, from 0.
	Children []*Pair

	input string
}

// Str returns the input text covered by the pair.
func (p *Pair) Str() string {
	return p.input[p.Span.Start:p.Span.End]
}

// Only returns the first child of the pair.
func (p *Pair) Only() (child *Pair, err error) {
	if len(p.Children) == 0 {
		err = ErrInsufficientPairs
		return
	}

	child = p.Children[0]
	return
}

// Inner iterates over the children tagged with rule.
func (p *Pair) Inner(rule Rule) iter.Seq[*Pair] {
	return func(yield func(*Pair) bool) {
		for _, child := range p.Children {
			if child.Rule != rule {
				continue
			}
			if !yield(child) {
				return
			}
		}
	}
}

// String returns a debug form of the pair.
func (p *Pair) String() string {
	return fmt.Sprintf("%v(%d..%d %q)", p.Rule, p.Span.Start, p.Span.End, p.Str())
}
