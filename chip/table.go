package chip

import (
	"math"
)

// effect applies an instruction to the chip. It resolves every operand
// before it writes any state.
type effect func(chip *Chip, ins *Instruction) (jumped bool, err error)

// descriptor is the decoding of an opcode.
type descriptor struct {
	Family Family
	Shapes []Shape
	effect effect
}

var opcodeTable = [OP_COUNT]descriptor{
	OP_NONE:    {FAMILY_NONE, []Shape{}, doNoop},
	OP_UNKNOWN: {FAMILY_NONE, []Shape{}, doUnknown},
	OP_LABEL:   {FAMILY_MISC, []Shape{SHAPE_TOKEN}, doLabel},
	OP_L:       {FAMILY_DEVICE_IO, []Shape{SHAPE_MEMORY, SHAPE_DEVICE, SHAPE_TOKEN}, doLoad},
	OP_S:       {FAMILY_DEVICE_IO, []Shape{SHAPE_DEVICE, SHAPE_TOKEN, SHAPE_VALUE}, doStore},
	OP_LS:      {FAMILY_DEVICE_IO, []Shape{SHAPE_MEMORY, SHAPE_DEVICE, SHAPE_VALUE, SHAPE_TOKEN}, doUnsupported},
	OP_SS:      {FAMILY_DEVICE_IO, []Shape{SHAPE_DEVICE, SHAPE_VALUE, SHAPE_TOKEN, SHAPE_VALUE}, doUnsupported},
	OP_LR:      {FAMILY_DEVICE_IO, []Shape{SHAPE_MEMORY, SHAPE_DEVICE, SHAPE_TOKEN, SHAPE_VALUE}, doUnsupported},
	OP_LB:      {FAMILY_DEVICE_IO, []Shape{SHAPE_MEMORY, SHAPE_VALUE, SHAPE_TOKEN, SHAPE_VALUE}, doUnsupported},
	OP_LBN:     {FAMILY_DEVICE_IO, []Shape{SHAPE_MEMORY, SHAPE_VALUE, SHAPE_VALUE, SHAPE_TOKEN, SHAPE_VALUE}, doUnsupported},
	OP_LBS:     {FAMILY_DEVICE_IO, []Shape{SHAPE_MEMORY, SHAPE_VALUE, SHAPE_VALUE, SHAPE_TOKEN, SHAPE_VALUE}, doUnsupported},
	OP_LBNS:    {FAMILY_DEVICE_IO, []Shape{SHAPE_MEMORY, SHAPE_VALUE, SHAPE_VALUE, SHAPE_VALUE, SHAPE_TOKEN, SHAPE_VALUE}, doUnsupported},
	OP_SB:      {FAMILY_DEVICE_IO, []Shape{SHAPE_VALUE, SHAPE_TOKEN, SHAPE_VALUE}, doUnsupported},
	OP_SBN:     {FAMILY_DEVICE_IO, []Shape{SHAPE_VALUE, SHAPE_VALUE, SHAPE_TOKEN, SHAPE_VALUE}, doUnsupported},
	OP_SBS:     {FAMILY_DEVICE_IO, []Shape{SHAPE_VALUE, SHAPE_VALUE, SHAPE_TOKEN, SHAPE_VALUE}, doUnsupported},
	OP_J:       {FAMILY_BRANCH, []Shape{SHAPE_VALUE}, branch(0, condAlways, JUMP_ABSOLUTE, false)},
	OP_JAL:     {FAMILY_BRANCH, []Shape{SHAPE_VALUE}, branch(0, condAlways, JUMP_ABSOLUTE, true)},
	OP_JR:      {FAMILY_BRANCH, []Shape{SHAPE_VALUE}, branch(0, condAlways, JUMP_RELATIVE, false)},
	OP_BEQ:     {FAMILY_BRANCH, []Shape{SHAPE_VALUE, SHAPE_VALUE, SHAPE_VALUE}, branch(2, condEq, JUMP_ABSOLUTE, false)},
	OP_BEQAL:   {FAMILY_BRANCH, []Shape{SHAPE_VALUE, SHAPE_VALUE, SHAPE_VALUE}, branch(2, condEq, JUMP_ABSOLUTE, true)},
	OP_BREQ:    {FAMILY_BRANCH, []Shape{SHAPE_VALUE, SHAPE_VALUE, SHAPE_VALUE}, branch(2, condEq, JUMP_RELATIVE, false)},
	OP_BEQZ:    {FAMILY_BRANCH, []Shape{SHAPE_VALUE, SHAPE_VALUE}, branch(1, condEqz, JUMP_ABSOLUTE, false)},
	OP_BEQZAL:  {FAMILY_BRANCH, []Shape{SHAPE_VALUE, SHAPE_VALUE}, branch(1, condEqz, JUMP_ABSOLUTE, true)},
	OP_BREQZ:   {FAMILY_BRANCH, []Shape{SHAPE_VALUE, SHAPE_VALUE}, branch(1, condEqz, JUMP_RELATIVE, false)},
	OP_BNE:     {FAMILY_BRANCH, []Shape{SHAPE_VALUE, SHAPE_VALUE, SHAPE_VALUE}, branch(2, condNe, JUMP_ABSOLUTE, false)},
	OP_BNEAL:   {FAMILY_BRANCH, []Shape{SHAPE_VALUE, SHAPE_VALUE, SHAPE_VALUE}, branch(2, condNe, JUMP_ABSOLUTE, true)},
	OP_BRNE:    {FAMILY_BRANCH, []Shape{SHAPE_VALUE, SHAPE_VALUE, SHAPE_VALUE}, branch(2, condNe, JUMP_RELATIVE, false)},
	OP_BNEZ:    {FAMILY_BRANCH, []Shape{SHAPE_VALUE, SHAPE_VALUE}, branch(1, condNez, JUMP_ABSOLUTE, false)},
	OP_BNEZAL:  {FAMILY_BRANCH, []Shape{SHAPE_VALUE, SHAPE_VALUE}, branch(1, condNez, JUMP_ABSOLUTE, true)},
	OP_BRNEZ:   {FAMILY_BRANCH, []Shape{SHAPE_VALUE, SHAPE_VALUE}, branch(1, condNez, JUMP_RELATIVE, false)},
	OP_BGT:     {FAMILY_BRANCH, []Shape{SHAPE_VALUE, SHAPE_VALUE, SHAPE_VALUE}, branch(2, condGt, JUMP_ABSOLUTE, false)},
	OP_BGTAL:   {FAMILY_BRANCH, []Shape{SHAPE_VALUE, SHAPE_VALUE, SHAPE_VALUE}, branch(2, condGt, JUMP_ABSOLUTE, true)},
	OP_BRGT:    {FAMILY_BRANCH, []Shape{SHAPE_VALUE, SHAPE_VALUE, SHAPE_VALUE}, branch(2, condGt, JUMP_RELATIVE, false)},
	OP_BGTZ:    {FAMILY_BRANCH, []Shape{SHAPE_VALUE, SHAPE_VALUE}, branch(1, condGtz, JUMP_ABSOLUTE, false)},
	OP_BGTZAL:  {FAMILY_BRANCH, []Shape{SHAPE_VALUE, SHAPE_VALUE}, branch(1, condGtz, JUMP_ABSOLUTE, true)},
	OP_BRGTZ:   {FAMILY_BRANCH, []Shape{SHAPE_VALUE, SHAPE_VALUE}, branch(1, condGtz, JUMP_RELATIVE, false)},
	OP_BGE:     {FAMILY_BRANCH, []Shape{SHAPE_VALUE, SHAPE_VALUE, SHAPE_VALUE}, branch(2, condGe, JUMP_ABSOLUTE, false)},
	OP_BGEAL:   {FAMILY_BRANCH, []Shape{SHAPE_VALUE, SHAPE_VALUE, SHAPE_VALUE}, branch(2, condGe, JUMP_ABSOLUTE, true)},
	OP_BRGE:    {FAMILY_BRANCH, []Shape{SHAPE_VALUE, SHAPE_VALUE, SHAPE_VALUE}, branch(2, condGe, JUMP_RELATIVE, false)},
	OP_BGEZ:    {FAMILY_BRANCH, []Shape{SHAPE_VALUE, SHAPE_VALUE}, branch(1, condGez, JUMP_ABSOLUTE, false)},
	OP_BGEZAL:  {FAMILY_BRANCH, []Shape{SHAPE_VALUE, SHAPE_VALUE}, branch(1, condGez, JUMP_ABSOLUTE, true)},
	OP_BRGEZ:   {FAMILY_BRANCH, []Shape{SHAPE_VALUE, SHAPE_VALUE}, branch(1, condGez, JUMP_RELATIVE, false)},
	OP_BLT:     {FAMILY_BRANCH, []Shape{SHAPE_VALUE, SHAPE_VALUE, SHAPE_VALUE}, branch(2, condLt, JUMP_ABSOLUTE, false)},
	OP_BLTAL:   {FAMILY_BRANCH, []Shape{SHAPE_VALUE, SHAPE_VALUE, SHAPE_VALUE}, branch(2, condLt, JUMP_ABSOLUTE, true)},
	OP_BRLT:    {FAMILY_BRANCH, []Shape{SHAPE_VALUE, SHAPE_VALUE, SHAPE_VALUE}, branch(2, condLt, JUMP_RELATIVE, false)},
	OP_BLTZ:    {FAMILY_BRANCH, []Shape{SHAPE_VALUE, SHAPE_VALUE}, branch(1, condLtz, JUMP_ABSOLUTE, false)},
	OP_BLTZAL:  {FAMILY_BRANCH, []Shape{SHAPE_VALUE, SHAPE_VALUE}, branch(1, condLtz, JUMP_ABSOLUTE, true)},
	OP_BRLTZ:   {FAMILY_BRANCH, []Shape{SHAPE_VALUE, SHAPE_VALUE}, branch(1, condLtz, JUMP_RELATIVE, false)},
	OP_BLE:     {FAMILY_BRANCH, []Shape{SHAPE_VALUE, SHAPE_VALUE, SHAPE_VALUE}, branch(2, condLe, JUMP_ABSOLUTE, false)},
	OP_BLEAL:   {FAMILY_BRANCH, []Shape{SHAPE_VALUE, SHAPE_VALUE, SHAPE_VALUE}, branch(2, condLe, JUMP_ABSOLUTE, true)},
	OP_BRLE:    {FAMILY_BRANCH, []Shape{SHAPE_VALUE, SHAPE_VALUE, SHAPE_VALUE}, branch(2, condLe, JUMP_RELATIVE, false)},
	OP_BLEZ:    {FAMILY_BRANCH, []Shape{SHAPE_VALUE, SHAPE_VALUE}, branch(1, condLez, JUMP_ABSOLUTE, false)},
	OP_BLEZAL:  {FAMILY_BRANCH, []Shape{SHAPE_VALUE, SHAPE_VALUE}, branch(1, condLez, JUMP_ABSOLUTE, true)},
	OP_BRLEZ:   {FAMILY_BRANCH, []Shape{SHAPE_VALUE, SHAPE_VALUE}, branch(1, condLez, JUMP_RELATIVE, false)},
	OP_BAP:     {FAMILY_BRANCH, []Shape{SHAPE_VALUE, SHAPE_VALUE, SHAPE_VALUE, SHAPE_VALUE}, branch(3, condAp, JUMP_ABSOLUTE, false)},
	OP_BAPAL:   {FAMILY_BRANCH, []Shape{SHAPE_VALUE, SHAPE_VALUE, SHAPE_VALUE, SHAPE_VALUE}, branch(3, condAp, JUMP_ABSOLUTE, true)},
	OP_BRAP:    {FAMILY_BRANCH, []Shape{SHAPE_VALUE, SHAPE_VALUE, SHAPE_VALUE, SHAPE_VALUE}, branch(3, condAp, JUMP_RELATIVE, false)},
	OP_BAPZ:    {FAMILY_BRANCH, []Shape{SHAPE_VALUE, SHAPE_VALUE, SHAPE_VALUE}, branch(2, condApz, JUMP_ABSOLUTE, false)},
	OP_BAPZAL:  {FAMILY_BRANCH, []Shape{SHAPE_VALUE, SHAPE_VALUE, SHAPE_VALUE}, branch(2, condApz, JUMP_ABSOLUTE, true)},
	OP_BRAPZ:   {FAMILY_BRANCH, []Shape{SHAPE_VALUE, SHAPE_VALUE, SHAPE_VALUE}, branch(2, condApz, JUMP_RELATIVE, false)},
	OP_BNA:     {FAMILY_BRANCH, []Shape{SHAPE_VALUE, SHAPE_VALUE, SHAPE_VALUE, SHAPE_VALUE}, branch(3, condNa, JUMP_ABSOLUTE, false)},
	OP_BNAAL:   {FAMILY_BRANCH, []Shape{SHAPE_VALUE, SHAPE_VALUE, SHAPE_VALUE, SHAPE_VALUE}, branch(3, condNa, JUMP_ABSOLUTE, true)},
	OP_BRNA:    {FAMILY_BRANCH, []Shape{SHAPE_VALUE, SHAPE_VALUE, SHAPE_VALUE, SHAPE_VALUE}, branch(3, condNa, JUMP_RELATIVE, false)},
	OP_BNAZ:    {FAMILY_BRANCH, []Shape{SHAPE_VALUE, SHAPE_VALUE, SHAPE_VALUE}, branch(2, condNaz, JUMP_ABSOLUTE, false)},
	OP_BNAZAL:  {FAMILY_BRANCH, []Shape{SHAPE_VALUE, SHAPE_VALUE, SHAPE_VALUE}, branch(2, condNaz, JUMP_ABSOLUTE, true)},
	OP_BRNAZ:   {FAMILY_BRANCH, []Shape{SHAPE_VALUE, SHAPE_VALUE, SHAPE_VALUE}, branch(2, condNaz, JUMP_RELATIVE, false)},
	OP_BNAN:    {FAMILY_BRANCH, []Shape{SHAPE_VALUE, SHAPE_VALUE}, branch(1, condNan, JUMP_ABSOLUTE, false)},
	OP_BRNAN:   {FAMILY_BRANCH, []Shape{SHAPE_VALUE, SHAPE_VALUE}, branch(1, condNan, JUMP_RELATIVE, false)},
	OP_BDSE:    {FAMILY_BRANCH, []Shape{SHAPE_DEVICE, SHAPE_VALUE}, branchDevice(true, JUMP_ABSOLUTE, false)},
	OP_BDSEAL:  {FAMILY_BRANCH, []Shape{SHAPE_DEVICE, SHAPE_VALUE}, branchDevice(true, JUMP_ABSOLUTE, true)},
	OP_BRDSE:   {FAMILY_BRANCH, []Shape{SHAPE_DEVICE, SHAPE_VALUE}, branchDevice(true, JUMP_RELATIVE, false)},
	OP_BDNS:    {FAMILY_BRANCH, []Shape{SHAPE_DEVICE, SHAPE_VALUE}, branchDevice(false, JUMP_ABSOLUTE, false)},
	OP_BDNSAL:  {FAMILY_BRANCH, []Shape{SHAPE_DEVICE, SHAPE_VALUE}, branchDevice(false, JUMP_ABSOLUTE, true)},
	OP_BRDNS:   {FAMILY_BRANCH, []Shape{SHAPE_DEVICE, SHAPE_VALUE}, branchDevice(false, JUMP_RELATIVE, false)},
	OP_SEQ:     {FAMILY_SELECT, []Shape{SHAPE_MEMORY, SHAPE_VALUE, SHAPE_VALUE}, setIf(2, condEq)},
	OP_SEQZ:    {FAMILY_SELECT, []Shape{SHAPE_MEMORY, SHAPE_VALUE}, setIf(1, condEqz)},
	OP_SNE:     {FAMILY_SELECT, []Shape{SHAPE_MEMORY, SHAPE_VALUE, SHAPE_VALUE}, setIf(2, condNe)},
	OP_SNEZ:    {FAMILY_SELECT, []Shape{SHAPE_MEMORY, SHAPE_VALUE}, setIf(1, condNez)},
	OP_SGT:     {FAMILY_SELECT, []Shape{SHAPE_MEMORY, SHAPE_VALUE, SHAPE_VALUE}, setIf(2, condGt)},
	OP_SGTZ:    {FAMILY_SELECT, []Shape{SHAPE_MEMORY, SHAPE_VALUE}, setIf(1, condGtz)},
	OP_SGE:     {FAMILY_SELECT, []Shape{SHAPE_MEMORY, SHAPE_VALUE, SHAPE_VALUE}, setIf(2, condGe)},
	OP_SGEZ:    {FAMILY_SELECT, []Shape{SHAPE_MEMORY, SHAPE_VALUE}, setIf(1, condGez)},
	OP_SLT:     {FAMILY_SELECT, []Shape{SHAPE_MEMORY, SHAPE_VALUE, SHAPE_VALUE}, setIf(2, condLt)},
	OP_SLTZ:    {FAMILY_SELECT, []Shape{SHAPE_MEMORY, SHAPE_VALUE}, setIf(1, condLtz)},
	OP_SLE:     {FAMILY_SELECT, []Shape{SHAPE_MEMORY, SHAPE_VALUE, SHAPE_VALUE}, setIf(2, condLe)},
	OP_SLEZ:    {FAMILY_SELECT, []Shape{SHAPE_MEMORY, SHAPE_VALUE}, setIf(1, condLez)},
	OP_SAP:     {FAMILY_SELECT, []Shape{SHAPE_MEMORY, SHAPE_VALUE, SHAPE_VALUE, SHAPE_VALUE}, setIf(3, condAp)},
	OP_SAPZ:    {FAMILY_SELECT, []Shape{SHAPE_MEMORY, SHAPE_VALUE, SHAPE_VALUE}, setIf(2, condApz)},
	OP_SNA:     {FAMILY_SELECT, []Shape{SHAPE_MEMORY, SHAPE_VALUE, SHAPE_VALUE, SHAPE_VALUE}, setIf(3, condNa)},
	OP_SNAZ:    {FAMILY_SELECT, []Shape{SHAPE_MEMORY, SHAPE_VALUE, SHAPE_VALUE}, setIf(2, condNaz)},
	OP_SNAN:    {FAMILY_SELECT, []Shape{SHAPE_MEMORY, SHAPE_VALUE}, setIf(1, condNan)},
	OP_SNANZ:   {FAMILY_SELECT, []Shape{SHAPE_MEMORY, SHAPE_VALUE}, setIf(1, condNotNan)},
	OP_SDSE:    {FAMILY_SELECT, []Shape{SHAPE_MEMORY, SHAPE_DEVICE}, setIfDevice(true)},
	OP_SDNS:    {FAMILY_SELECT, []Shape{SHAPE_MEMORY, SHAPE_DEVICE}, setIfDevice(false)},
	OP_SELECT:  {FAMILY_SELECT, []Shape{SHAPE_MEMORY, SHAPE_VALUE, SHAPE_VALUE, SHAPE_VALUE}, doSelect},
	OP_ABS:     {FAMILY_MATH, []Shape{SHAPE_MEMORY, SHAPE_VALUE}, unary(math.Abs)},
	OP_ACOS:    {FAMILY_MATH, []Shape{SHAPE_MEMORY, SHAPE_VALUE}, unary(math.Acos)},
	OP_ASIN:    {FAMILY_MATH, []Shape{SHAPE_MEMORY, SHAPE_VALUE}, unary(math.Asin)},
	OP_ATAN:    {FAMILY_MATH, []Shape{SHAPE_MEMORY, SHAPE_VALUE}, unary(math.Atan)},
	OP_CEIL:    {FAMILY_MATH, []Shape{SHAPE_MEMORY, SHAPE_VALUE}, unary(math.Ceil)},
	OP_COS:     {FAMILY_MATH, []Shape{SHAPE_MEMORY, SHAPE_VALUE}, unary(math.Cos)},
	OP_EXP:     {FAMILY_MATH, []Shape{SHAPE_MEMORY, SHAPE_VALUE}, unary(math.Exp)},
	OP_FLOOR:   {FAMILY_MATH, []Shape{SHAPE_MEMORY, SHAPE_VALUE}, unary(math.Floor)},
	OP_LOG:     {FAMILY_MATH, []Shape{SHAPE_MEMORY, SHAPE_VALUE}, unary(math.Log)},
	OP_ROUND:   {FAMILY_MATH, []Shape{SHAPE_MEMORY, SHAPE_VALUE}, unary(math.RoundToEven)},
	OP_SIN:     {FAMILY_MATH, []Shape{SHAPE_MEMORY, SHAPE_VALUE}, unary(math.Sin)},
	OP_SQRT:    {FAMILY_MATH, []Shape{SHAPE_MEMORY, SHAPE_VALUE}, unary(math.Sqrt)},
	OP_TAN:     {FAMILY_MATH, []Shape{SHAPE_MEMORY, SHAPE_VALUE}, unary(math.Tan)},
	OP_TRUNC:   {FAMILY_MATH, []Shape{SHAPE_MEMORY, SHAPE_VALUE}, unary(math.Trunc)},
	OP_ADD:     {FAMILY_MATH, []Shape{SHAPE_MEMORY, SHAPE_VALUE, SHAPE_VALUE}, binary(mathAdd)},
	OP_SUB:     {FAMILY_MATH, []Shape{SHAPE_MEMORY, SHAPE_VALUE, SHAPE_VALUE}, binary(mathSub)},
	OP_MUL:     {FAMILY_MATH, []Shape{SHAPE_MEMORY, SHAPE_VALUE, SHAPE_VALUE}, binary(mathMul)},
	OP_DIV:     {FAMILY_MATH, []Shape{SHAPE_MEMORY, SHAPE_VALUE, SHAPE_VALUE}, binary(mathDiv)},
	OP_MOD:     {FAMILY_MATH, []Shape{SHAPE_MEMORY, SHAPE_VALUE, SHAPE_VALUE}, binary(mathMod)},
	OP_MAX:     {FAMILY_MATH, []Shape{SHAPE_MEMORY, SHAPE_VALUE, SHAPE_VALUE}, binary(math.Max)},
	OP_MIN:     {FAMILY_MATH, []Shape{SHAPE_MEMORY, SHAPE_VALUE, SHAPE_VALUE}, binary(math.Min)},
	OP_ATAN2:   {FAMILY_MATH, []Shape{SHAPE_MEMORY, SHAPE_VALUE, SHAPE_VALUE}, binary(math.Atan2)},
	OP_RAND:    {FAMILY_MATH, []Shape{SHAPE_MEMORY}, doRandom},
	OP_AND:     {FAMILY_LOGIC, []Shape{SHAPE_MEMORY, SHAPE_VALUE, SHAPE_VALUE}, setIf(2, condAnd)},
	OP_OR:      {FAMILY_LOGIC, []Shape{SHAPE_MEMORY, SHAPE_VALUE, SHAPE_VALUE}, setIf(2, condOr)},
	OP_XOR:     {FAMILY_LOGIC, []Shape{SHAPE_MEMORY, SHAPE_VALUE, SHAPE_VALUE}, setIf(2, condXor)},
	OP_NOR:     {FAMILY_LOGIC, []Shape{SHAPE_MEMORY, SHAPE_VALUE, SHAPE_VALUE}, setIf(2, condNor)},
	OP_NOT:     {FAMILY_LOGIC, []Shape{SHAPE_MEMORY, SHAPE_VALUE}, setIf(1, condNot)},
	OP_PUSH:    {FAMILY_STACK, []Shape{SHAPE_VALUE}, doPush},
	OP_POP:     {FAMILY_STACK, []Shape{SHAPE_MEMORY}, doPop},
	OP_PEEK:    {FAMILY_STACK, []Shape{SHAPE_MEMORY}, doPeek},
	OP_ALIAS:   {FAMILY_MISC, []Shape{SHAPE_TOKEN, SHAPE_REF}, doAlias},
	OP_DEFINE:  {FAMILY_MISC, []Shape{SHAPE_TOKEN, SHAPE_VALUE}, doDefine},
	OP_HCF:     {FAMILY_MISC, []Shape{}, doHcf},
	OP_MOVE:    {FAMILY_MISC, []Shape{SHAPE_MEMORY, SHAPE_VALUE}, doMove},
	OP_SLEEP:   {FAMILY_MISC, []Shape{SHAPE_VALUE}, doSleep},
	OP_YIELD:   {FAMILY_MISC, []Shape{}, doYield},
}
