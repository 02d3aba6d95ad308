package simulator

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ezrec/ic10/chip"
	"github.com/ezrec/ic10/device"
)

func load(t *testing.T, program ...string) (sim *Simulator) {
	prog, err := chip.ParseProgram(strings.Join(program, "\n"))
	require.NoError(t, err)

	sim = NewSimulator()
	require.NoError(t, sim.LoadProgram(prog))
	return
}

func TestSimulator(t *testing.T) {
	assert := assert.New(t)

	sim := NewSimulator()

	assert.False(sim.Verbose)
	assert.NotNil(sim.Chip)
	assert.True(sim.IsFinished())

	status, err := sim.Step()
	assert.NoError(err)
	assert.Equal(Finished(0), status)
	assert.Equal(0, sim.Ticks)
}

func TestSimulatorStraightLine(t *testing.T) {
	assert := assert.New(t)

	sim := load(t,
		"move r0 1",
		"add r0 r0 1",
		"",
		"# comment",
		"mul r0 r0 10",
	)
	assert.Equal(5, sim.Len())

	status, err := sim.RunUntilFinished()
	assert.NoError(err)
	assert.Equal(Finished(5), status)
	assert.Equal(5, sim.Ticks)
	assert.Equal(20.0, sim.Chip.Memory[0])
	assert.True(sim.IsFinished())
}

func TestSimulatorAliasMove(t *testing.T) {
	assert := assert.New(t)

	sim := load(t, "alias x r0", "move x 6")

	status, err := sim.Step()
	assert.NoError(err)
	assert.Equal(Running(1), status)
	assert.Equal(chip.MemorySlot(0), sim.Chip.Aliases["x"])

	status, err = sim.Step()
	assert.NoError(err)
	assert.Equal(Finished(2), status)
	assert.Equal(6.0, sim.Chip.Memory[0])
}

func TestSimulatorLoop(t *testing.T) {
	assert := assert.New(t)

	sim := load(t,
		"move r0 0",
		"loop:",
		"add r0 r0 1",
		"blt r0 3 loop",
	)

	status, err := sim.RunUntilFinished()
	assert.NoError(err)
	assert.Equal(Finished(4), status)
	assert.Equal(3.0, sim.Chip.Memory[0])
	// move, then three passes of label+add+blt.
	assert.Equal(10, sim.Ticks)
}

func TestSimulatorForwardJump(t *testing.T) {
	assert := assert.New(t)

	sim := load(t,
		"j done",
		"move r0 1",
		"done:",
		"move r1 2",
	)

	labels := map[string]uint{}
	for name, index := range sim.Labels() {
		labels[name] = index
	}
	assert.Equal(map[string]uint{"done": 2}, labels)

	status, err := sim.Step()
	assert.NoError(err)
	assert.Equal(Running(2), status)

	status, err = sim.RunUntilFinished()
	assert.NoError(err)
	assert.Equal(Finished(4), status)
	assert.Equal(0.0, sim.Chip.Memory[0])
	assert.Equal(2.0, sim.Chip.Memory[1])
}

func TestSimulatorLink(t *testing.T) {
	assert := assert.New(t)

	sim := load(t,
		"jal sub",
		"move r1 1",
		"j end",
		"sub:",
		"move r0 5",
		"j ra",
		"end:",
	)

	status, err := sim.RunUntilFinished()
	assert.NoError(err)
	assert.Equal(Finished(7), status)
	assert.Equal(5.0, sim.Chip.Memory[0])
	assert.Equal(1.0, sim.Chip.Memory[1])
	assert.Equal(1.0, sim.Chip.Memory[sim.Chip.ReturnAddress()])
}

func TestSimulatorStepN(t *testing.T) {
	assert := assert.New(t)

	sim := load(t, "loop:", "add r0 r0 1", "j loop")

	status, err := sim.StepN(0)
	assert.NoError(err)
	assert.Equal(Running(0), status)

	status, err = sim.StepN(30)
	assert.NoError(err)
	assert.Equal(Running(0), status)
	assert.Equal(30, sim.Ticks)
	assert.Equal(10.0, sim.Chip.Memory[0])
}

func TestSimulatorSleep(t *testing.T) {
	assert := assert.New(t)

	sim := load(t, "sleep 1", "move r0 1")

	status, err := sim.Step()
	assert.NoError(err)
	assert.Equal(Running(1), status)
	assert.Equal(uint(2), sim.Chip.Wait)

	// Two ticks of waiting, then the move.
	for range 2 {
		status, err = sim.Step()
		assert.NoError(err)
		assert.Equal(Running(1), status)
		assert.Equal(0.0, sim.Chip.Memory[0])
	}

	status, err = sim.Step()
	assert.NoError(err)
	assert.Equal(Finished(2), status)
	assert.Equal(1.0, sim.Chip.Memory[0])
	assert.Equal(4, sim.Ticks)
}

func TestSimulatorError(t *testing.T) {
	assert := assert.New(t)

	sim := load(t, "move r0 7", "add r0 r0 r42", "move r1 1")

	status, err := sim.RunUntilFinished()
	assert.ErrorIs(err, chip.ErrOutOfBounds)
	var rt_err *ErrRuntime
	assert.ErrorAs(err, &rt_err)
	assert.Equal(1, rt_err.LineNo)
	assert.Equal(Running(1), status)
	assert.Equal(uint(1), sim.Chip.Pc)
	assert.Equal(7.0, sim.Chip.Memory[0])

	// The failure repeats; nothing was committed.
	_, err = sim.Step()
	assert.ErrorIs(err, chip.ErrOutOfBounds)
	assert.Equal(uint(1), sim.Chip.Pc)

	sim = load(t, "hcf")
	_, err = sim.Step()
	assert.ErrorIs(err, chip.ErrHaltCatchFire)
}

func TestSimulatorInstruction(t *testing.T) {
	assert := assert.New(t)

	sim := load(t, "yield", "", "hcf")

	ins, err := sim.Instruction(1)
	assert.NoError(err)
	assert.Equal(chip.OP_NONE, ins.Opcode)

	ins, err = sim.Instruction(2)
	assert.NoError(err)
	assert.Equal(chip.OP_HCF, ins.Opcode)

	_, err = sim.Instruction(3)
	assert.ErrorIs(err, ErrLineIndexOutOfRange)
}

func TestSimulatorLoad(t *testing.T) {
	assert := assert.New(t)

	sim := load(t, "a:", "j a")

	prog, err := chip.ParseProgram("a:\nyield\na:")
	assert.NoError(err)
	err = sim.LoadProgram(prog)
	assert.ErrorIs(err, ErrLabelDuplicate)
	var label_err *ErrLabel
	assert.ErrorAs(err, &label_err)
	assert.Equal(2, label_err.LineNo)
	// The previous program is kept.
	assert.Equal(2, sim.Len())

	bad := &chip.Program{Lines: []chip.Line{{Index: 0, Instruction: chip.NewInstruction(chip.OP_MOVE)}}}
	assert.ErrorIs(sim.LoadProgram(bad), chip.ErrOpcodeValueMissing)

	// A new chip gets the labels of the loaded program.
	state := chip.NewChip(4, 2)
	assert.NoError(sim.LoadState(state))
	assert.Same(state, sim.Chip)
	assert.Equal(chip.LineLabel(0), state.Aliases["a"])

	state.Memory[0] = 3
	sim.Ticks = 9
	sim.Reset()
	assert.Equal(0.0, state.Memory[0])
	assert.Equal(0, sim.Ticks)
	assert.Equal(chip.LineLabel(0), state.Aliases["a"])

	// A chip without its sp and ra cells is refused.
	assert.ErrorIs(sim.LoadState(nil), chip.ErrChipInvalid)
	assert.ErrorIs(sim.LoadState(&chip.Chip{}), chip.ErrChipInvalid)
	assert.Same(state, sim.Chip)

	// A sized chip without an alias table gets one.
	bare := &chip.Chip{Memory: make([]float64, 4)}
	assert.NoError(sim.LoadState(bare))
	assert.Equal(chip.LineLabel(0), bare.Aliases["a"])
	status, err := sim.StepN(3)
	assert.NoError(err)
	assert.Equal(Running(1), status)
}

func TestSimulatorDevice(t *testing.T) {
	assert := assert.New(t)

	cat := &device.Catalogue{}
	assert.NoError(cat.Add(&device.Kind{
		Name: "StructureWallLight",
		Params: []device.ParameterDecl{
			{Kind: device.PERM_READ_WRITE, Name: "On"},
		},
	}))
	light, err := cat.New("StructureWallLight")
	assert.NoError(err)

	sim := load(t,
		"alias lamp d0",
		"bdns lamp 5",
		"l r0 lamp On",
		"seqz r0 r0",
		"s lamp On r0",
	)
	assert.NoError(sim.Chip.SetDevice(0, light))

	status, err := sim.RunUntilFinished()
	assert.NoError(err)
	assert.Equal(Finished(5), status)
	assert.Equal(1.0, light.Parameters["On"].Value)

	// Devices survive a reset, so a second run toggles the light back.
	sim.Reset()
	_, err = sim.RunUntilFinished()
	assert.NoError(err)
	assert.Equal(0.0, light.Parameters["On"].Value)

	// An empty pin skips to the end.
	assert.NoError(sim.Chip.SetDevice(0, nil))
	sim.Reset()
	status, err = sim.RunUntilFinished()
	assert.NoError(err)
	assert.Equal(Finished(5), status)
	assert.Equal(2, sim.Ticks)
}
