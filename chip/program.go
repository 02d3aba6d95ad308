package chip

import (
	"iter"
	"slices"
	"strings"
)

// Line is an instruction at a line index of the program text.
type Line struct {
	Index       uint
	Instruction Instruction
}

// Program is a sparse list of instructions, ordered by line index.
// Blank and comment-only lines leave gaps.
type Program struct {
	Lines []Line
}

// Add appends an instruction. Line indices must be strictly increasing.
func (prog *Program) Add(index uint, ins Instruction) (err error) {
	if count := len(prog.Lines); count > 0 && prog.Lines[count-1].Index >= index {
		err = &ErrSyntax{LineNo: int(index), Line: ins.String(), Err: ErrProgramOrder}
		return
	}

	prog.Lines = append(prog.Lines, Line{Index: index, Instruction: ins})
	return
}

// Len is the number of text lines covered by the program.
func (prog *Program) Len() uint {
	if len(prog.Lines) == 0 {
		return 0
	}
	return prog.Lines[len(prog.Lines)-1].Index + 1
}

// Lookup finds the instruction at a line index.
func (prog *Program) Lookup(index uint) (ins *Instruction, ok bool) {
	n, ok := slices.BinarySearchFunc(prog.Lines, index, func(line Line, index uint) int {
		switch {
		case line.Index < index:
			return -1
		case line.Index > index:
			return 1
		}
		return 0
	})
	if ok {
		ins = &prog.Lines[n].Instruction
	}

	return
}

// Instructions iterates the instructions with their line indices.
func (prog *Program) Instructions() iter.Seq2[uint, *Instruction] {
	return func(yield func(index uint, ins *Instruction) bool) {
		for n := range prog.Lines {
			line := &prog.Lines[n]
			if !yield(line.Index, &line.Instruction) {
				return
			}
		}
	}
}

// Flatten returns one instruction per text line, filling the gaps with
// OP_NONE.
func (prog *Program) Flatten() (lines []Instruction) {
	lines = make([]Instruction, prog.Len())
	for index, ins := range prog.Instructions() {
		lines[index] = *ins
	}

	return
}

// Validate checks the line order, and each instruction's arguments.
func (prog *Program) Validate() (err error) {
	for n, line := range prog.Lines {
		if n > 0 && prog.Lines[n-1].Index >= line.Index {
			err = &ErrSyntax{LineNo: int(line.Index), Line: line.Instruction.String(), Err: ErrProgramOrder}
			return
		}
		err = line.Instruction.Validate()
		if err != nil {
			err = &ErrSyntax{LineNo: int(line.Index), Line: line.Instruction.String(), Err: err}
			return
		}
	}

	return
}

// String returns the program text, with gaps as blank lines.
func (prog *Program) String() string {
	var text strings.Builder
	for n, ins := range prog.Flatten() {
		if n > 0 {
			text.WriteByte('\n')
		}
		text.WriteString(ins.String())
	}

	return text.String()
}
