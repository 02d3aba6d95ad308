// Package grammar turns IC10 program text into a tree of rule-tagged pairs.
//
// Every Pair carries the Rule that produced it and the Span of the input it
// covers. The tree for a program is:
//
//	program
//	  line*              one per source line, blank lines included
//	    label            `name:`
//	      identifier
//	    instruction
//	      opcode
//	      register       wraps one of memory, device or identifier
//	      number
//	    comment          `# ...` through end of line
//
// The grammar is declared with participle, in syntax.go; Parse adapts the
// participle nodes into pairs.
//
// The grammar only decides the shape of each word. Whether a number is well
// formed, or whether an identifier names memory or a device, is left to the
// consumer of the tree.
package grammar
