package chip

// Family groups opcodes the way the in-game instruction reference does.
type Family int

//go:generate go tool stringer -linecomment -type=Family
const (
	FAMILY_NONE      = Family(0) // none
	FAMILY_DEVICE_IO = Family(1) // device-io
	FAMILY_BRANCH    = Family(2) // branch
	FAMILY_SELECT    = Family(3) // select
	FAMILY_MATH      = Family(4) // math
	FAMILY_LOGIC     = Family(5) // logic
	FAMILY_STACK     = Family(6) // stack
	FAMILY_MISC      = Family(7) // misc
)

// Shape is the operand form an opcode expects at an argument position.
type Shape int

//go:generate go tool stringer -linecomment -type=Shape
const (
	SHAPE_MEMORY = Shape(0) // r?
	SHAPE_DEVICE = Shape(1) // d?
	SHAPE_VALUE  = Shape(2) // value
	SHAPE_TOKEN  = Shape(3) // name
	SHAPE_REF    = Shape(4) // r?|d?
)

// Opcode names the operation of an instruction.
type Opcode int

//go:generate go tool stringer -linecomment -type=Opcode
const (
	OP_NONE    = Opcode(0)   // -
	OP_UNKNOWN = Opcode(1)   // ?
	OP_LABEL   = Opcode(2)   // label
	OP_L       = Opcode(3)   // l
	OP_S       = Opcode(4)   // s
	OP_LS      = Opcode(5)   // ls
	OP_SS      = Opcode(6)   // ss
	OP_LR      = Opcode(7)   // lr
	OP_LB      = Opcode(8)   // lb
	OP_LBN     = Opcode(9)   // lbn
	OP_LBS     = Opcode(10)  // lbs
	OP_LBNS    = Opcode(11)  // lbns
	OP_SB      = Opcode(12)  // sb
	OP_SBN     = Opcode(13)  // sbn
	OP_SBS     = Opcode(14)  // sbs
	OP_J       = Opcode(15)  // j
	OP_JAL     = Opcode(16)  // jal
	OP_JR      = Opcode(17)  // jr
	OP_BEQ     = Opcode(18)  // beq
	OP_BEQAL   = Opcode(19)  // beqal
	OP_BREQ    = Opcode(20)  // breq
	OP_BEQZ    = Opcode(21)  // beqz
	OP_BEQZAL  = Opcode(22)  // beqzal
	OP_BREQZ   = Opcode(23)  // breqz
	OP_BNE     = Opcode(24)  // bne
	OP_BNEAL   = Opcode(25)  // bneal
	OP_BRNE    = Opcode(26)  // brne
	OP_BNEZ    = Opcode(27)  // bnez
	OP_BNEZAL  = Opcode(28)  // bnezal
	OP_BRNEZ   = Opcode(29)  // brnez
	OP_BGT     = Opcode(30)  // bgt
	OP_BGTAL   = Opcode(31)  // bgtal
	OP_BRGT    = Opcode(32)  // brgt
	OP_BGTZ    = Opcode(33)  // bgtz
	OP_BGTZAL  = Opcode(34)  // bgtzal
	OP_BRGTZ   = Opcode(35)  // brgtz
	OP_BGE     = Opcode(36)  // bge
	OP_BGEAL   = Opcode(37)  // bgeal
	OP_BRGE    = Opcode(38)  // brge
	OP_BGEZ    = Opcode(39)  // bgez
	OP_BGEZAL  = Opcode(40)  // bgezal
	OP_BRGEZ   = Opcode(41)  // brgez
	OP_BLT     = Opcode(42)  // blt
	OP_BLTAL   = Opcode(43)  // bltal
	OP_BRLT    = Opcode(44)  // brlt
	OP_BLTZ    = Opcode(45)  // bltz
	OP_BLTZAL  = Opcode(46)  // bltzal
	OP_BRLTZ   = Opcode(47)  // brltz
	OP_BLE     = Opcode(48)  // ble
	OP_BLEAL   = Opcode(49)  // bleal
	OP_BRLE    = Opcode(50)  // brle
	OP_BLEZ    = Opcode(51)  // blez
	OP_BLEZAL  = Opcode(52)  // blezal
	OP_BRLEZ   = Opcode(53)  // brlez
	OP_BAP     = Opcode(54)  // bap
	OP_BAPAL   = Opcode(55)  // bapal
	OP_BRAP    = Opcode(56)  // brap
	OP_BAPZ    = Opcode(57)  // bapz
	OP_BAPZAL  = Opcode(58)  // bapzal
	OP_BRAPZ   = Opcode(59)  // brapz
	OP_BNA     = Opcode(60)  // bna
	OP_BNAAL   = Opcode(61)  // bnaal
	OP_BRNA    = Opcode(62)  // brna
	OP_BNAZ    = Opcode(63)  // bnaz
	OP_BNAZAL  = Opcode(64)  // bnazal
	OP_BRNAZ   = Opcode(65)  // brnaz
	OP_BNAN    = Opcode(66)  // bnan
	OP_BRNAN   = Opcode(67)  // brnan
	OP_BDSE    = Opcode(68)  // bdse
	OP_BDSEAL  = Opcode(69)  // bdseal
	OP_BRDSE   = Opcode(70)  // brdse
	OP_BDNS    = Opcode(71)  // bdns
	OP_BDNSAL  = Opcode(72)  // bdnsal
	OP_BRDNS   = Opcode(73)  // brdns
	OP_SEQ     = Opcode(74)  // seq
	OP_SEQZ    = Opcode(75)  // seqz
	OP_SNE     = Opcode(76)  // sne
	OP_SNEZ    = Opcode(77)  // snez
	OP_SGT     = Opcode(78)  // sgt
	OP_SGTZ    = Opcode(79)  // sgtz
	OP_SGE     = Opcode(80)  // sge
	OP_SGEZ    = Opcode(81)  // sgez
	OP_SLT     = Opcode(82)  // slt
	OP_SLTZ    = Opcode(83)  // sltz
	OP_SLE     = Opcode(84)  // sle
	OP_SLEZ    = Opcode(85)  // slez
	OP_SAP     = Opcode(86)  // sap
	OP_SAPZ    = Opcode(87)  // sapz
	OP_SNA     = Opcode(88)  // sna
	OP_SNAZ    = Opcode(89)  // snaz
	OP_SNAN    = Opcode(90)  // snan
	OP_SNANZ   = Opcode(91)  // snanz
	OP_SDSE    = Opcode(92)  // sdse
	OP_SDNS    = Opcode(93)  // sdns
	OP_SELECT  = Opcode(94)  // select
	OP_ABS     = Opcode(95)  // abs
	OP_ACOS    = Opcode(96)  // acos
	OP_ASIN    = Opcode(97)  // asin
	OP_ATAN    = Opcode(98)  // atan
	OP_CEIL    = Opcode(99)  // ceil
	OP_COS     = Opcode(100) // cos
	OP_EXP     = Opcode(101) // exp
	OP_FLOOR   = Opcode(102) // floor
	OP_LOG     = Opcode(103) // log
	OP_ROUND   = Opcode(104) // round
	OP_SIN     = Opcode(105) // sin
	OP_SQRT    = Opcode(106) // sqrt
	OP_TAN     = Opcode(107) // tan
	OP_TRUNC   = Opcode(108) // trunc
	OP_ADD     = Opcode(109) // add
	OP_SUB     = Opcode(110) // sub
	OP_MUL     = Opcode(111) // mul
	OP_DIV     = Opcode(112) // div
	OP_MOD     = Opcode(113) // mod
	OP_MAX     = Opcode(114) // max
	OP_MIN     = Opcode(115) // min
	OP_ATAN2   = Opcode(116) // atan2
	OP_RAND    = Opcode(117) // rand
	OP_AND     = Opcode(118) // and
	OP_OR      = Opcode(119) // or
	OP_XOR     = Opcode(120) // xor
	OP_NOR     = Opcode(121) // nor
	OP_NOT     = Opcode(122) // not
	OP_PUSH    = Opcode(123) // push
	OP_POP     = Opcode(124) // pop
	OP_PEEK    = Opcode(125) // peek
	OP_ALIAS   = Opcode(126) // alias
	OP_DEFINE  = Opcode(127) // define
	OP_HCF     = Opcode(128) // hcf
	OP_MOVE    = Opcode(129) // move
	OP_SLEEP   = Opcode(130) // sleep
	OP_YIELD   = Opcode(131) // yield
)

// OP_COUNT is the number of opcodes.
const OP_COUNT = 132

// opcodeNames maps opcode text to the opcode. OP_NONE, OP_UNKNOWN and
// OP_LABEL have no text form.
var opcodeNames = func() map[string]Opcode {
	names := make(map[string]Opcode, OP_COUNT)
	for op := OP_L; op < OP_COUNT; op++ {
		names[op.String()] = op
	}
	return names
}()

// LookupOpcode finds an opcode by name.
func LookupOpcode(name string) (op Opcode, ok bool) {
	op, ok = opcodeNames[name]
	return
}

// Family returns the family of the opcode.
func (op Opcode) Family() Family {
	if op < 0 || op >= OP_COUNT {
		return FAMILY_NONE
	}
	return opcodeTable[op].Family
}

// Shapes returns the operand shapes of the opcode.
// OP_UNKNOWN accepts any number of tokens, and reports none.
func (op Opcode) Shapes() []Shape {
	if op < 0 || op >= OP_COUNT {
		return nil
	}
	return opcodeTable[op].Shapes
}
