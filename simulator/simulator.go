// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package simulator

import (
	"fmt"
	"iter"
	"log"

	"github.com/ezrec/ic10/chip"
	"github.com/ezrec/ic10/internal"
)

// Status is the outcome of a step.
type Status struct {
	Finished bool // Set when the program counter has left the program.
	Line     uint // Next line to execute, or where execution finished.
}

// Running is the status of a simulator that will execute line next.
func Running(line uint) Status {
	return Status{Line: line}
}

// Finished is the status of a simulator that ran off the program at line.
func Finished(line uint) Status {
	return Status{Finished: true, Line: line}
}

func (status Status) String() string {
	if status.Finished {
		return fmt.Sprintf("finished(%d)", status.Line)
	}
	return fmt.Sprintf("running(%d)", status.Line)
}

// Simulator state. Chip + the program it runs.
type Simulator struct {
	Verbose    bool          // If set, enables verbose logging.
	*chip.Chip               // Reference to the chip state.
	Program    *chip.Program // Reference to the currently loaded program listing.

	Ticks int // Steps taken, including those spent waiting.

	lines  []chip.Instruction // One instruction per program line.
	labels map[string]uint    // Labels found by LoadProgram.
}

// NewSimulator creates a simulator with a stock chip and no program.
func NewSimulator() (sim *Simulator) {
	sim = &Simulator{
		Chip:    chip.NewDefaultChip(),
		Program: &chip.Program{},
	}

	return
}

// LoadState replaces the chip. The labels of the loaded program are
// bound in its alias table. The chip must come from chip.NewChip, or
// have at least the sp and ra memory cells.
func (sim *Simulator) LoadState(state *chip.Chip) (err error) {
	if state == nil || len(state.Memory) < 2 {
		err = chip.ErrChipInvalid
		return
	}

	sim.Chip = state
	sim.bindLabels()

	return
}

// LoadProgram replaces the program. The gaps of the program are filled
// with blank lines, and every label is bound before execution starts,
// so that jumps may go forward.
func (sim *Simulator) LoadProgram(prog *chip.Program) (err error) {
	err = prog.Validate()
	if err != nil {
		return
	}

	lines := prog.Flatten()
	labels := map[string]uint{}
	for index, ins := range lines {
		if ins.Opcode != chip.OP_LABEL {
			continue
		}
		var name string
		name, err = ins.Token(0)
		if err != nil {
			err = &ErrLabel{LineNo: index, Err: err}
			return
		}
		if _, ok := labels[name]; ok {
			err = &ErrLabel{Name: name, LineNo: index, Err: ErrLabelDuplicate}
			return
		}
		labels[name] = uint(index)
	}

	if sim.Verbose {
		log.Printf("sim: %d lines, %d labels", len(lines), len(labels))
	}

	sim.Program = prog
	sim.lines = lines
	sim.labels = labels
	sim.bindLabels()

	return
}

func (sim *Simulator) bindLabels() {
	if sim.Chip.Aliases == nil {
		sim.Chip.Aliases = make(map[string]chip.Binding, len(sim.labels))
	}
	for name, index := range sim.labels {
		sim.Chip.Aliases[name] = chip.LineLabel(index)
	}
}

// Labels iterates the labels of the loaded program, in name order.
func (sim *Simulator) Labels() iter.Seq2[string, uint] {
	return internal.IterSorted(sim.labels)
}

// Reset the chip state, and rebind the labels. The program is kept.
func (sim *Simulator) Reset() {
	sim.Chip.Verbose = sim.Verbose
	sim.Chip.Reset()
	sim.Ticks = 0
	sim.bindLabels()
}

// Len returns the number of program lines.
func (sim *Simulator) Len() int {
	return len(sim.lines)
}

// Instruction returns the instruction of a program line.
func (sim *Simulator) Instruction(index uint) (ins *chip.Instruction, err error) {
	if index >= uint(len(sim.lines)) {
		err = ErrLineIndexOutOfRange
		return
	}

	ins = &sim.lines[index]
	return
}

// IsFinished returns true once the program counter has left the program.
func (sim *Simulator) IsFinished() bool {
	return sim.Chip.Pc >= uint(len(sim.lines))
}

func (sim *Simulator) status() Status {
	if sim.IsFinished() {
		return Finished(sim.Chip.Pc)
	}
	return Running(sim.Chip.Pc)
}

// Step executes one line, or burns one tick of a sleep.
func (sim *Simulator) Step() (status Status, err error) {
	sim.Chip.Verbose = sim.Verbose

	pc := sim.Chip.Pc
	if sim.IsFinished() {
		status = Finished(pc)
		return
	}

	defer func() {
		if err != nil {
			err = &ErrRuntime{LineNo: int(pc), Err: err}
		}
	}()

	sim.Ticks++

	if sim.Chip.Wait > 0 {
		sim.Chip.Wait--
		status = Running(pc)
		return
	}

	jumped, err := sim.Chip.Execute(&sim.lines[pc])
	if err != nil {
		status = Running(pc)
		return
	}

	if !jumped {
		sim.Chip.Pc++
	}

	status = sim.status()
	if sim.Verbose && status.Finished {
		log.Printf("sim: %v after %d ticks", status, sim.Ticks)
	}

	return
}

// StepN performs up to n steps, stopping early when the program finishes
// or a step fails.
func (sim *Simulator) StepN(n int) (status Status, err error) {
	status = sim.status()
	for range n {
		status, err = sim.Step()
		if err != nil || status.Finished {
			return
		}
	}

	return
}

// RunUntilFinished steps until the program finishes, or a step fails.
// A program that never finishes never returns; use StepN to bound it.
func (sim *Simulator) RunUntilFinished() (status Status, err error) {
	for {
		status, err = sim.Step()
		if err != nil || status.Finished {
			return
		}
	}
}
