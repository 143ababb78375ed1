package disasm

// NewCodePage0 builds the dispatch table for VM "codepage 0": the full
// 256-entry root table plus every secondary sub-table the layout in §4.1
// calls for. The group boundaries and the opcode-to-mnemonic assignment
// below are transcribed from the VM specification's opcode appendix, via
// original_source/tvm_linker/src/disasm/handlers.rs (§ SPEC_FULL.md C):
// this function is the Go rendering of that file's Handlers::new_code_page_0.
//
// Construction is a single chain of Set/SetRange/AddSubset calls exactly as
// §4.1 prescribes ("a declarative, literal layout that mirrors the opcode
// specification"); any conflicting registration panics immediately, which
// is the intended behavior for a static bug caught at process startup.
func NewCodePage0() *Node {
	n := NewNode()
	n.addStack().
		addTuple().
		addConstant().
		addArithmetic().
		addComparison().
		addCell().
		addControlFlow().
		addExceptions().
		addDictionaries().
		addGasRandConfig().
		addBlockchain().
		addCrypto().
		addDebug().
		AddSubset(0xFF, NewNode().
			SetRange(0x00, 0xF0, loadSetcp).
			Set(0xF0, loadSetcpx).
			SetRange(0xF1, 0xFF, loadSetcp).
			Set(0xFF, loadSetcp))
	return n
}

func (n *Node) addStack() *Node {
	return n.
		Set(0x00, loadNop).
		SetRange(0x01, 0x10, op("XCHG_SIMPLE")).
		Set(0x10, op("XCHG_STD")).
		Set(0x11, loadXchgLong).
		SetRange(0x12, 0x20, op("XCHG_SIMPLE")).
		SetRange(0x20, 0x30, op("PUSH_SIMPLE")).
		SetRange(0x30, 0x40, op("POP_SIMPLE")).
		SetRange(0x40, 0x50, op("XCHG3")).
		Set(0x50, op("XCHG2")).
		Set(0x51, op("XCPU")).
		Set(0x52, op("PUXC")).
		Set(0x53, op("PUSH2")).
		AddSubset(0x54, NewNode().
			SetRange(0x00, 0x10, op("XCHG3")).
			SetRange(0x10, 0x20, op("XC2PU")).
			SetRange(0x20, 0x30, op("XCPUXC")).
			SetRange(0x30, 0x40, op("XCPU2")).
			SetRange(0x40, 0x50, op("PUXC2")).
			SetRange(0x50, 0x60, op("PUXCPU")).
			SetRange(0x60, 0x70, op("PU2XC")).
			SetRange(0x70, 0x80, op("PUSH3"))).
		Set(0x55, op("BLKSWAP")).
		Set(0x56, op("PUSH")).
		Set(0x57, op("POP")).
		Set(0x58, op("ROT")).
		Set(0x59, op("ROTREV")).
		Set(0x5A, op("SWAP2")).
		Set(0x5B, op("DROP2")).
		Set(0x5C, op("DUP2")).
		Set(0x5D, op("OVER2")).
		Set(0x5E, op("REVERSE")).
		AddSubset(0x5F, NewNode().
			SetRange(0x00, 0x10, op("BLKDROP")).
			SetRange(0x10, 0xFF, op("BLKPUSH")).
			Set(0xFF, op("BLKPUSH"))).
		Set(0x60, op("PICK")).
		Set(0x61, op("ROLLX")).
		Set(0x62, op("ROLLREVX")).
		Set(0x63, op("BLKSWX")).
		Set(0x64, op("REVX")).
		Set(0x65, op("DROPX")).
		Set(0x66, op("TUCK")).
		Set(0x67, op("XCHGX")).
		Set(0x68, op("DEPTH")).
		Set(0x69, op("CHKDEPTH")).
		Set(0x6A, op("ONLYTOPX")).
		Set(0x6B, op("ONLYX")).
		AddSubset(0x6C, NewNode().
			SetRange(0x10, 0xFF, op("BLKDROP2")).
			Set(0xFF, op("BLKDROP2")))
}

func (n *Node) addTuple() *Node {
	return n.
		Set(0x6D, op("NULL")).
		Set(0x6E, op("ISNULL")).
		AddSubset(0x6F, NewNode().
			SetRange(0x00, 0x10, op("TUPLE_CREATE")).
			SetRange(0x10, 0x20, op("TUPLE_INDEX")).
			SetRange(0x20, 0x30, op("TUPLE_UN")).
			SetRange(0x30, 0x40, op("TUPLE_UNPACKFIRST")).
			SetRange(0x40, 0x50, op("TUPLE_EXPLODE")).
			SetRange(0x50, 0x60, op("TUPLE_SETINDEX")).
			SetRange(0x60, 0x70, op("TUPLE_INDEX_QUIET")).
			SetRange(0x70, 0x80, op("TUPLE_SETINDEX_QUIET")).
			Set(0x80, op("TUPLE_CREATEVAR")).
			Set(0x81, op("TUPLE_INDEXVAR")).
			Set(0x82, op("TUPLE_UNTUPLEVAR")).
			Set(0x83, op("TUPLE_UNPACKFIRSTVAR")).
			Set(0x84, op("TUPLE_EXPLODEVAR")).
			Set(0x85, op("TUPLE_SETINDEXVAR")).
			Set(0x86, op("TUPLE_INDEXVAR_QUIET")).
			Set(0x87, op("TUPLE_SETINDEXVAR_QUIET")).
			Set(0x88, op("TUPLE_LEN")).
			Set(0x89, op("TUPLE_LEN_QUIET")).
			Set(0x8A, op("ISTUPLE")).
			Set(0x8B, op("TUPLE_LAST")).
			Set(0x8C, op("TUPLE_PUSH")).
			Set(0x8D, op("TUPLE_POP")).
			Set(0xA0, op("NULLSWAPIF")).
			Set(0xA1, op("NULLSWAPIFNOT")).
			Set(0xA2, op("NULLROTRIF")).
			Set(0xA3, op("NULLROTRIFNOT")).
			Set(0xA4, op("NULLSWAPIF2")).
			Set(0xA5, op("NULLSWAPIFNOT2")).
			Set(0xA6, op("NULLROTRIF2")).
			Set(0xA7, op("NULLROTRIFNOT2")).
			SetRange(0xB0, 0xC0, op("TUPLE_INDEX2")).
			SetRange(0xC0, 0xFF, op("TUPLE_INDEX3")).
			Set(0xFF, op("TUPLE_INDEX3")))
}

func (n *Node) addConstant() *Node {
	return n.
		SetRange(0x70, 0x82, loadPushint).
		Set(0x82, op("PUSHINT_BIG")).
		AddSubset(0x83, NewNode().
			SetRange(0x00, 0xFF, op("PUSHPOW2")).
			Set(0xFF, loadPushnan)).
		Set(0x84, op("PUSHPOW2DEC")).
		Set(0x85, op("PUSHNEGPOW2")).
		Set(0x88, op("PUSHREF")).
		Set(0x89, op("PUSHREFSLICE")).
		Set(0x8A, op("PUSHREFCONT")).
		Set(0x8B, op("PUSHSLICE_SHORT")).
		Set(0x8C, op("PUSHSLICE_MID")).
		Set(0x8D, op("PUSHSLICE_LONG")).
		SetRange(0x8E, 0x90, op("PUSHCONT_LONG")).
		SetRange(0x90, 0xA0, op("PUSHCONT_SHORT"))
}

func (n *Node) addArithmetic() *Node {
	return n.
		Set(0xA0, loadAdd(Signaling)).
		Set(0xA1, loadSub(Signaling)).
		Set(0xA2, opVariant("SUBR", Signaling)).
		Set(0xA3, opVariant("NEGATE", Signaling)).
		Set(0xA4, opVariant("INC", Signaling)).
		Set(0xA5, opVariant("DEC", Signaling)).
		Set(0xA6, opVariant("ADDCONST", Signaling)).
		Set(0xA7, opVariant("MULCONST", Signaling)).
		Set(0xA8, loadMul(Signaling)).
		Set(0xA9, loadDivmod(Signaling)).
		Set(0xAA, opVariant("LSHIFT", Signaling)).
		Set(0xAB, opVariant("RSHIFT", Signaling)).
		Set(0xAC, opVariant("LSHIFT", Signaling)).
		Set(0xAD, opVariant("RSHIFT", Signaling)).
		Set(0xAE, opVariant("POW2", Signaling)).
		Set(0xB0, opVariant("AND", Signaling)).
		Set(0xB1, opVariant("OR", Signaling)).
		Set(0xB2, opVariant("XOR", Signaling)).
		Set(0xB3, opVariant("NOT", Signaling)).
		Set(0xB4, opVariant("FITS", Signaling)).
		Set(0xB5, opVariant("UFITS", Signaling)).
		AddSubset(0xB6, NewNode().
			Set(0x00, opVariant("FITSX", Signaling)).
			Set(0x01, opVariant("UFITSX", Signaling)).
			Set(0x02, opVariant("BITSIZE", Signaling)).
			Set(0x03, opVariant("UBITSIZE", Signaling)).
			Set(0x08, opVariant("MIN", Signaling)).
			Set(0x09, opVariant("MAX", Signaling)).
			Set(0x0A, opVariant("MINMAX", Signaling)).
			Set(0x0B, opVariant("ABS", Signaling))).
		AddSubset(0xB7, NewNode().
			Set(0xA0, loadAdd(Quiet)).
			Set(0xA1, loadSub(Quiet)).
			Set(0xA2, opVariant("SUBR", Quiet)).
			Set(0xA3, opVariant("NEGATE", Quiet)).
			Set(0xA4, opVariant("INC", Quiet)).
			Set(0xA5, opVariant("DEC", Quiet)).
			Set(0xA6, opVariant("ADDCONST", Quiet)).
			Set(0xA7, opVariant("MULCONST", Quiet)).
			Set(0xA8, loadMul(Quiet)).
			Set(0xA9, loadDivmod(Quiet)).
			Set(0xAA, opVariant("LSHIFT", Quiet)).
			Set(0xAB, opVariant("RSHIFT", Quiet)).
			Set(0xAC, opVariant("LSHIFT", Quiet)).
			Set(0xAD, opVariant("RSHIFT", Quiet)).
			Set(0xAE, opVariant("POW2", Quiet)).
			Set(0xB0, opVariant("AND", Quiet)).
			Set(0xB1, opVariant("OR", Quiet)).
			Set(0xB2, opVariant("XOR", Quiet)).
			Set(0xB3, opVariant("NOT", Quiet)).
			Set(0xB4, opVariant("FITS", Quiet)).
			Set(0xB5, opVariant("UFITS", Quiet)).
			AddSubset(0xB6, NewNode().
				Set(0x00, opVariant("FITSX", Quiet)).
				Set(0x01, opVariant("UFITSX", Quiet)).
				Set(0x02, opVariant("BITSIZE", Quiet)).
				Set(0x03, opVariant("UBITSIZE", Quiet)).
				Set(0x08, opVariant("MIN", Quiet)).
				Set(0x09, opVariant("MAX", Quiet)).
				Set(0x0A, opVariant("MINMAX", Quiet)).
				Set(0x0B, opVariant("ABS", Quiet))).
			Set(0xB8, opVariant("SGN", Quiet)).
			Set(0xB9, opVariant("LESS", Quiet)).
			Set(0xBA, opVariant("EQUAL", Quiet)).
			Set(0xBB, opVariant("LEQ", Quiet)).
			Set(0xBC, opVariant("GREATER", Quiet)).
			Set(0xBD, opVariant("NEQ", Quiet)).
			Set(0xBE, opVariant("GEQ", Quiet)).
			Set(0xBF, opVariant("CMP", Quiet)).
			Set(0xC0, opVariant("EQINT", Quiet)).
			Set(0xC1, opVariant("LESSINT", Quiet)).
			Set(0xC2, opVariant("GTINT", Quiet)).
			Set(0xC3, opVariant("NEQINT", Quiet)))
}

func (n *Node) addComparison() *Node {
	return n.
		Set(0xB8, opVariant("SGN", Signaling)).
		Set(0xB9, opVariant("LESS", Signaling)).
		Set(0xBA, opVariant("EQUAL", Signaling)).
		Set(0xBB, opVariant("LEQ", Signaling)).
		Set(0xBC, opVariant("GREATER", Signaling)).
		Set(0xBD, opVariant("NEQ", Signaling)).
		Set(0xBE, opVariant("GEQ", Signaling)).
		Set(0xBF, opVariant("CMP", Signaling)).
		Set(0xC0, opVariant("EQINT", Signaling)).
		Set(0xC1, opVariant("LESSINT", Signaling)).
		Set(0xC2, opVariant("GTINT", Signaling)).
		Set(0xC3, opVariant("NEQINT", Signaling)).
		Set(0xC4, op("ISNAN")).
		Set(0xC5, op("CHKNAN")).
		AddSubset(0xC7, NewNode().
			Set(0x00, op("SEMPTY")).
			Set(0x01, op("SDEMPTY")).
			Set(0x02, op("SREMPTY")).
			Set(0x03, op("SDFIRST")).
			Set(0x04, op("SDLEXCMP")).
			Set(0x05, op("SDEQ")).
			Set(0x08, op("SDPFX")).
			Set(0x09, op("SDPFXREV")).
			Set(0x0A, op("SDPPFX")).
			Set(0x0B, op("SDPPFXREV")).
			Set(0x0C, op("SDSFX")).
			Set(0x0D, op("SDSFXREV")).
			Set(0x0E, op("SDPSFX")).
			Set(0x0F, op("SDPSFXREV")).
			Set(0x10, op("SDCNTLEAD0")).
			Set(0x11, op("SDCNTLEAD1")).
			Set(0x12, op("SDCNTTRAIL0")).
			Set(0x13, op("SDCNTTRAIL1")))
}

func (n *Node) addCell() *Node {
	return n.
		Set(0xC8, op("NEWC")).
		Set(0xC9, op("ENDC")).
		Set(0xCA, op("STI")).
		Set(0xCB, op("STU")).
		Set(0xCC, op("STREF")).
		Set(0xCD, op("ENDCST")).
		Set(0xCE, op("STSLICE")).
		AddSubset(0xCF, NewNode().
			Set(0x00, op("STIX")).
			Set(0x01, op("STUX")).
			Set(0x02, op("STIXR")).
			Set(0x03, op("STUXR")).
			Set(0x04, op("STIXQ")).
			Set(0x05, op("STUXQ")).
			Set(0x06, op("STIXRQ")).
			Set(0x07, op("STUXRQ")).
			Set(0x08, op("STI")).
			Set(0x09, op("STU")).
			Set(0x0A, op("STIR")).
			Set(0x0B, op("STUR")).
			Set(0x0C, op("STIQ")).
			Set(0x0D, op("STUQ")).
			Set(0x0E, op("STIRQ")).
			Set(0x0F, op("STURQ")).
			Set(0x10, op("STREF")).
			Set(0x11, op("STBREF")).
			Set(0x12, op("STSLICE")).
			Set(0x13, op("STB")).
			Set(0x14, op("STREFR")).
			Set(0x15, op("ENDCST")).
			Set(0x16, op("STSLICER")).
			Set(0x17, op("STBR")).
			Set(0x18, op("STREFQ")).
			Set(0x19, op("STBREFQ")).
			Set(0x1A, op("STSLICEQ")).
			Set(0x1B, op("STBQ")).
			Set(0x1C, op("STREFRQ")).
			Set(0x1D, op("STBREFRQ")).
			Set(0x1E, op("STSLICERQ")).
			Set(0x1F, op("STBRQ")).
			Set(0x20, op("STREFCONST")).
			Set(0x21, op("STREF2CONST")).
			Set(0x23, op("ENDXC")).
			Set(0x28, op("STILE4")).
			Set(0x29, op("STULE4")).
			Set(0x2A, op("STILE8")).
			Set(0x2B, op("STULE8")).
			Set(0x30, op("BDEPTH")).
			Set(0x31, op("BBITS")).
			Set(0x32, op("BREFS")).
			Set(0x33, op("BBITREFS")).
			Set(0x35, op("BREMBITS")).
			Set(0x36, op("BREMREFS")).
			Set(0x37, op("BREMBITREFS")).
			Set(0x38, op("BCHKBITS_SHORT")).
			Set(0x39, op("BCHKBITS_LONG")).
			Set(0x3A, op("BCHKREFS")).
			Set(0x3B, op("BCHKBITREFS")).
			Set(0x3C, op("BCHKBITSQ_SHORT")).
			Set(0x3D, op("BCHKBITSQ_LONG")).
			Set(0x3E, op("BCHKREFSQ")).
			Set(0x3F, op("BCHKBITREFSQ")).
			Set(0x40, op("STZEROES")).
			Set(0x41, op("STONES")).
			Set(0x42, op("STSAME")).
			SetRange(0x80, 0xFF, op("STSLICECONST")).
			Set(0xFF, op("STSLICECONST"))).
		Set(0xD0, op("CTOS")).
		Set(0xD1, op("ENDS")).
		Set(0xD2, op("LDI")).
		Set(0xD3, op("LDU")).
		Set(0xD4, op("LDREF")).
		Set(0xD5, op("LDREFRTOS")).
		Set(0xD6, op("LDSLICE")).
		AddSubset(0xD7, NewNode().
			Set(0x00, op("LDIX")).
			Set(0x01, op("LDUX")).
			Set(0x02, op("PLDIX")).
			Set(0x03, op("PLDUX")).
			Set(0x04, op("LDIXQ")).
			Set(0x05, op("LDUXQ")).
			Set(0x06, op("PLDIXQ")).
			Set(0x07, op("PLDUXQ")).
			Set(0x08, op("LDI")).
			Set(0x09, op("LDU")).
			Set(0x0A, op("PLDI")).
			Set(0x0B, op("PLDU")).
			Set(0x0C, op("LDIQ")).
			Set(0x0D, op("LDUQ")).
			Set(0x0E, op("PLDIQ")).
			Set(0x0F, op("PLDUQ")).
			SetRange(0x10, 0x18, op("PLDUZ")).
			Set(0x18, op("LDSLICEX")).
			Set(0x19, op("PLDSLICEX")).
			Set(0x1A, op("LDSLICEXQ")).
			Set(0x1B, op("PLDSLICEXQ")).
			Set(0x1C, op("LDSLICE")).
			Set(0x1D, op("PLDSLICE")).
			Set(0x1E, op("LDSLICEQ")).
			Set(0x1F, op("PLDSLICEQ")).
			Set(0x20, op("PLDSLICEX")).
			Set(0x21, op("SDSKIPFIRST")).
			Set(0x22, op("SDCUTLAST")).
			Set(0x23, op("SDSKIPLAST")).
			Set(0x24, op("SDSUBSTR")).
			Set(0x26, op("SDBEGINSX")).
			Set(0x27, op("SDBEGINSXQ")).
			SetRange(0x28, 0x2C, op("SDBEGINS")).
			SetRange(0x2C, 0x30, op("SDBEGINSQ")).
			Set(0x30, op("SCUTFIRST")).
			Set(0x31, op("SSKIPFIRST")).
			Set(0x32, op("SCUTLAST")).
			Set(0x33, op("SSKIPLAST")).
			Set(0x34, op("SUBSLICE")).
			Set(0x36, op("SPLIT")).
			Set(0x37, op("SPLITQ")).
			Set(0x39, op("XCTOS")).
			Set(0x3A, op("XLOAD")).
			Set(0x3B, op("XLOADQ")).
			Set(0x41, op("SCHKBITS")).
			Set(0x42, op("SCHKREFS")).
			Set(0x43, op("SCHKBITREFS")).
			Set(0x45, op("SCHKBITSQ")).
			Set(0x46, op("SCHKREFSQ")).
			Set(0x47, op("SCHKBITREFSQ")).
			Set(0x48, op("PLDREFVAR")).
			Set(0x49, op("SBITS")).
			Set(0x4A, op("SREFS")).
			Set(0x4B, op("SBITREFS")).
			Set(0x4C, op("PLDREF")).
			SetRange(0x4D, 0x50, op("PLDREFIDX")).
			Set(0x50, op("LDILE4")).
			Set(0x51, op("LDULE4")).
			Set(0x52, op("LDILE8")).
			Set(0x53, op("LDULE8")).
			Set(0x54, op("PLDILE4")).
			Set(0x55, op("PLDULE4")).
			Set(0x56, op("PLDILE8")).
			Set(0x57, op("PLDULE8")).
			Set(0x58, op("LDILE4Q")).
			Set(0x59, op("LDULE4Q")).
			Set(0x5A, op("LDILE8Q")).
			Set(0x5B, op("LDULE8Q")).
			Set(0x5C, op("PLDILE4Q")).
			Set(0x5D, op("PLDULE4Q")).
			Set(0x5E, op("PLDILE8Q")).
			Set(0x5F, op("PLDULE8Q")).
			Set(0x60, op("LDZEROES")).
			Set(0x61, op("LDONES")).
			Set(0x62, op("LDSAME")).
			Set(0x64, op("SDEPTH")).
			Set(0x65, op("CDEPTH")))
}

func (n *Node) addControlFlow() *Node {
	return n.
		Set(0xD8, op("CALLX")).
		Set(0xD9, op("JMPX")).
		Set(0xDA, op("CALLXARGS")).
		AddSubset(0xDB, NewNode().
			SetRange(0x00, 0x10, op("CALLXARGS")).
			SetRange(0x10, 0x20, op("JMPXARGS")).
			SetRange(0x20, 0x30, op("RETARGS")).
			Set(0x30, op("RET")).
			Set(0x31, op("RETALT")).
			Set(0x32, op("RETBOOL")).
			Set(0x34, op("CALLCC")).
			Set(0x35, op("JMPXDATA")).
			Set(0x36, op("CALLCCARGS")).
			Set(0x38, op("CALLXVA")).
			Set(0x39, op("RETVA")).
			Set(0x3A, op("JMPXVA")).
			Set(0x3B, op("CALLCCVA")).
			Set(0x3C, op("CALLREF")).
			Set(0x3D, op("JMPREF")).
			Set(0x3E, op("JMPREFDATA")).
			Set(0x3F, op("RETDATA"))).
		Set(0xDE, op("IF")).
		Set(0xDC, op("IFRET")).
		Set(0xDD, op("IFNOTRET")).
		Set(0xDF, op("IFNOT")).
		Set(0xE0, op("IFJMP")).
		Set(0xE1, op("IFNOTJMP")).
		Set(0xE2, op("IFELSE")).
		AddSubset(0xE3, NewNode().
			Set(0x00, op("IFREF")).
			Set(0x01, op("IFNOTREF")).
			Set(0x02, op("IFJMPREF")).
			Set(0x03, op("IFNOTJMPREF")).
			Set(0x04, op("CONDSEL")).
			Set(0x05, op("CONDSELCHK")).
			Set(0x08, op("IFRETALT")).
			Set(0x09, op("IFNOTRETALT")).
			Set(0x0D, op("IFREFELSE")).
			Set(0x0E, op("IFELSEREF")).
			Set(0x0F, op("IFREFELSEREF")).
			Set(0x14, op("REPEAT_BREAK")).
			Set(0x15, op("REPEATEND_BREAK")).
			Set(0x16, op("UNTIL_BREAK")).
			Set(0x17, op("UNTILEND_BREAK")).
			Set(0x18, op("WHILE_BREAK")).
			Set(0x19, op("WHILEEND_BREAK")).
			Set(0x1A, op("AGAIN_BREAK")).
			Set(0x1B, op("AGAINEND_BREAK")).
			SetRange(0x80, 0xA0, op("IFBITJMP")).
			SetRange(0xA0, 0xC0, op("IFNBITJMP")).
			SetRange(0xC0, 0xE0, op("IFBITJMPREF")).
			SetRange(0xE0, 0xFF, op("IFNBITJMPREF")).
			Set(0xFF, op("IFNBITJMPREF"))).
		Set(0xE4, op("REPEAT")).
		Set(0xE5, op("REPEATEND")).
		Set(0xE6, op("UNTIL")).
		Set(0xE7, op("UNTILEND")).
		Set(0xE8, op("WHILE")).
		Set(0xE9, op("WHILEEND")).
		Set(0xEA, op("AGAIN")).
		Set(0xEB, op("AGAINEND")).
		Set(0xEC, op("SETCONTARGS")).
		AddSubset(0xED, NewNode().
			SetRange(0x00, 0x10, op("RETURNARGS")).
			Set(0x10, op("RETURNVA")).
			Set(0x11, op("SETCONTVA")).
			Set(0x12, op("SETNUMVA")).
			Set(0x1E, op("BLESS")).
			Set(0x1F, op("BLESSVA")).
			SetRange(0x40, 0x50, op("PUSHCTR")).
			SetRange(0x50, 0x60, op("POPCTR")).
			SetRange(0x60, 0x70, op("SETCONTCTR")).
			SetRange(0x70, 0x80, op("SETRETCTR")).
			SetRange(0x80, 0x90, op("SETALTCTR")).
			SetRange(0x90, 0xA0, op("POPSAVE")).
			SetRange(0xA0, 0xB0, op("SAVE")).
			SetRange(0xB0, 0xC0, op("SAVEALT")).
			SetRange(0xC0, 0xD0, op("SAVEBOTH")).
			Set(0xE0, op("PUSHCTRX")).
			Set(0xE1, op("POPCTRX")).
			Set(0xE2, op("SETCONTCTRX")).
			Set(0xF0, op("COMPOS")).
			Set(0xF1, op("COMPOSALT")).
			Set(0xF2, op("COMPOSBOTH")).
			Set(0xF3, op("ATEXIT")).
			Set(0xF4, op("ATEXITALT")).
			Set(0xF5, op("SETEXITALT")).
			Set(0xF6, op("THENRET")).
			Set(0xF7, op("THENRETALT")).
			Set(0xF8, op("INVERT")).
			Set(0xF9, op("BOOLEVAL")).
			Set(0xFA, op("SAMEALT")).
			Set(0xFB, op("SAMEALT_SAVE"))).
		Set(0xEE, op("BLESSARGS")).
		Set(0xF0, op("CALL_SHORT")).
		AddSubset(0xF1, NewNode().
			SetRange(0x00, 0x40, op("CALL_LONG")).
			SetRange(0x40, 0x80, op("JMP")).
			SetRange(0x80, 0xC0, op("PREPARE")))
}

func (n *Node) addExceptions() *Node {
	return n.
		AddSubset(0xF2, NewNode().
			SetRange(0x00, 0x40, op("THROW_SHORT")).
			SetRange(0x40, 0x80, op("THROWIF_SHORT")).
			SetRange(0x80, 0xC0, op("THROWIFNOT_SHORT")).
			SetRange(0xC0, 0xC8, op("THROW_LONG")).
			SetRange(0xC8, 0xD0, op("THROWARG")).
			SetRange(0xD0, 0xD8, op("THROWIF_LONG")).
			SetRange(0xD8, 0xE0, op("THROWARGIF")).
			SetRange(0xE0, 0xE8, op("THROWIFNOT_LONG")).
			SetRange(0xE8, 0xF0, op("THROWARGIFNOT")).
			Set(0xF0, op("THROWANY")).
			Set(0xF1, op("THROWARGANY")).
			Set(0xF2, op("THROWANYIF")).
			Set(0xF3, op("THROWARGANYIF")).
			Set(0xF4, op("THROWANYIFNOT")).
			Set(0xF5, op("THROWARGANYIFNOT")).
			Set(0xFF, op("TRY"))).
		Set(0xF3, op("TRYARGS"))
}

func (n *Node) addBlockchain() *Node {
	return n.
		AddSubset(0xFA, NewNode().
			Set(0x00, op("LDGRAMS")).
			Set(0x01, op("LDVARINT16")).
			Set(0x02, op("STGRAMS")).
			Set(0x03, op("STVARINT16")).
			Set(0x04, op("LDVARUINT32")).
			Set(0x05, op("LDVARINT32")).
			Set(0x06, op("STVARUINT32")).
			Set(0x07, op("STVARINT32")).
			Set(0x40, opVariant("LDMSGADDR", Signaling)).
			Set(0x41, opVariant("LDMSGADDR", Quiet)).
			Set(0x42, opVariant("PARSEMSGADDR", Signaling)).
			Set(0x43, opVariant("PARSEMSGADDR", Quiet)).
			Set(0x44, opVariant("REWRITE_STD_ADDR", Signaling)).
			Set(0x45, opVariant("REWRITE_STD_ADDR", Quiet)).
			Set(0x46, opVariant("REWRITE_VAR_ADDR", Signaling)).
			Set(0x47, opVariant("REWRITE_VAR_ADDR", Quiet))).
		AddSubset(0xFB, NewNode().
			Set(0x00, op("SENDRAWMSG")).
			Set(0x02, op("RAWRESERVE")).
			Set(0x03, op("RAWRESERVEX")).
			Set(0x04, op("SETCODE")).
			Set(0x06, op("SETLIBCODE")).
			Set(0x07, op("CHANGELIB")))
}

func (n *Node) addDictionaries() *Node {
	return n.AddSubset(0xF4, NewNode().
		Set(0x00, op("STDICT")).
		Set(0x01, op("SKIPDICT")).
		Set(0x02, op("LDDICTS")).
		Set(0x03, op("PLDDICTS")).
		Set(0x04, op("LDDICT")).
		Set(0x05, op("PLDDICT")).
		Set(0x06, op("LDDICTQ")).
		Set(0x07, op("PLDDICTQ")).
		Set(0x0A, op("DICTGET")).
		Set(0x0B, op("DICTGETREF")).
		Set(0x0C, op("DICTIGET")).
		Set(0x0D, op("DICTIGETREF")).
		Set(0x0E, op("DICTUGET")).
		Set(0x0F, op("DICTUGETREF")).
		Set(0x12, op("DICTSET")).
		Set(0x13, op("DICTSETREF")).
		Set(0x14, op("DICTISET")).
		Set(0x15, op("DICTISETREF")).
		Set(0x16, op("DICTUSET")).
		Set(0x17, op("DICTUSETREF")).
		Set(0x1A, op("DICTSETGET")).
		Set(0x1B, op("DICTSETGETREF")).
		Set(0x1C, op("DICTISETGET")).
		Set(0x1D, op("DICTISETGETREF")).
		Set(0x1E, op("DICTUSETGET")).
		Set(0x1F, op("DICTUSETGETREF")).
		Set(0x22, op("DICTREPLACE")).
		Set(0x23, op("DICTREPLACEREF")).
		Set(0x24, op("DICTIREPLACE")).
		Set(0x25, op("DICTIREPLACEREF")).
		Set(0x26, op("DICTUREPLACE")).
		Set(0x27, op("DICTUREPLACEREF")).
		Set(0x2A, op("DICTREPLACEGET")).
		Set(0x2B, op("DICTREPLACEGETREF")).
		Set(0x2C, op("DICTIREPLACEGET")).
		Set(0x2D, op("DICTIREPLACEGETREF")).
		Set(0x2E, op("DICTUREPLACEGET")).
		Set(0x2F, op("DICTUREPLACEGETREF")).
		Set(0x32, op("DICTADD")).
		Set(0x33, op("DICTADDREF")).
		Set(0x34, op("DICTIADD")).
		Set(0x35, op("DICTIADDREF")).
		Set(0x36, op("DICTUADD")).
		Set(0x37, op("DICTUADDREF")).
		Set(0x3A, op("DICTADDGET")).
		Set(0x3B, op("DICTADDGETREF")).
		Set(0x3C, op("DICTIADDGET")).
		Set(0x3D, op("DICTIADDGETREF")).
		Set(0x3E, op("DICTUADDGET")).
		Set(0x3F, op("DICTUADDGETREF")).
		Set(0x41, op("DICTSETB")).
		Set(0x42, op("DICTISETB")).
		Set(0x43, op("DICTUSETB")).
		Set(0x45, op("DICTSETGETB")).
		Set(0x46, op("DICTISETGETB")).
		Set(0x47, op("DICTUSETGETB")).
		Set(0x49, op("DICTREPLACEB")).
		Set(0x4A, op("DICTIREPLACEB")).
		Set(0x4B, op("DICTUREPLACEB")).
		Set(0x4D, op("DICTREPLACEGETB")).
		Set(0x4E, op("DICTIREPLACEGETB")).
		Set(0x4F, op("DICTUREPLACEGETB")).
		Set(0x51, op("DICTADDB")).
		Set(0x52, op("DICTIADDB")).
		Set(0x53, op("DICTUADDB")).
		Set(0x55, op("DICTADDGETB")).
		Set(0x56, op("DICTIADDGETB")).
		Set(0x57, op("DICTUADDGETB")).
		Set(0x59, op("DICTDEL")).
		Set(0x5A, op("DICTIDEL")).
		Set(0x5B, op("DICTUDEL")).
		Set(0x62, op("DICTDELGET")).
		Set(0x63, op("DICTDELGETREF")).
		Set(0x64, op("DICTIDELGET")).
		Set(0x65, op("DICTIDELGETREF")).
		Set(0x66, op("DICTUDELGET")).
		Set(0x67, op("DICTUDELGETREF")).
		Set(0x69, op("DICTGETOPTREF")).
		Set(0x6A, op("DICTIGETOPTREF")).
		Set(0x6B, op("DICTUGETOPTREF")).
		Set(0x6D, op("DICTSETGETOPTREF")).
		Set(0x6E, op("DICTISETGETOPTREF")).
		Set(0x6F, op("DICTUSETGETOPTREF")).
		Set(0x70, op("PFXDICTSET")).
		Set(0x71, op("PFXDICTREPLACE")).
		Set(0x72, op("PFXDICTADD")).
		Set(0x73, op("PFXDICTDEL")).
		Set(0x74, op("DICTGETNEXT")).
		Set(0x75, op("DICTGETNEXTEQ")).
		Set(0x76, op("DICTGETPREV")).
		Set(0x77, op("DICTGETPREVEQ")).
		Set(0x78, op("DICTIGETNEXT")).
		Set(0x79, op("DICTIGETNEXTEQ")).
		Set(0x7A, op("DICTIGETPREV")).
		Set(0x7B, op("DICTIGETPREVEQ")).
		Set(0x7C, op("DICTUGETNEXT")).
		Set(0x7D, op("DICTUGETNEXTEQ")).
		Set(0x7E, op("DICTUGETPREV")).
		Set(0x7F, op("DICTUGETPREVEQ")).
		Set(0x82, op("DICTMIN")).
		Set(0x83, op("DICTMINREF")).
		Set(0x84, op("DICTIMIN")).
		Set(0x85, op("DICTIMINREF")).
		Set(0x86, op("DICTUMIN")).
		Set(0x87, op("DICTUMINREF")).
		Set(0x8A, op("DICTMAX")).
		Set(0x8B, op("DICTMAXREF")).
		Set(0x8C, op("DICTIMAX")).
		Set(0x8D, op("DICTIMAXREF")).
		Set(0x8E, op("DICTUMAX")).
		Set(0x8F, op("DICTUMAXREF")).
		Set(0x92, op("DICTREMMIN")).
		Set(0x93, op("DICTREMMINREF")).
		Set(0x94, op("DICTIREMMIN")).
		Set(0x95, op("DICTIREMMINREF")).
		Set(0x96, op("DICTUREMMIN")).
		Set(0x97, op("DICTUREMMINREF")).
		Set(0x9A, op("DICTREMMAX")).
		Set(0x9B, op("DICTREMMAXREF")).
		Set(0x9C, op("DICTIREMMAX")).
		Set(0x9D, op("DICTIREMMAXREF")).
		Set(0x9E, op("DICTUREMMAX")).
		Set(0x9F, op("DICTUREMMAXREF")).
		Set(0xA0, op("DICTIGETJMP")).
		Set(0xA1, op("DICTUGETJMP")).
		Set(0xA2, op("DICTIGETEXEC")).
		Set(0xA3, op("DICTUGETEXEC")).
		SetRange(0xA4, 0xA8, op("DICTPUSHCONST")).
		Set(0xA8, op("PFXDICTGETQ")).
		Set(0xA9, op("PFXDICTGET")).
		Set(0xAA, op("PFXDICTGETJMP")).
		Set(0xAB, op("PFXDICTGETEXEC")).
		SetRange(0xAC, 0xAF, op("PFXDICTSWITCH")).
		Set(0xAF, op("PFXDICTSWITCH")).
		Set(0xB1, op("SUBDICTGET")).
		Set(0xB2, op("SUBDICTIGET")).
		Set(0xB3, op("SUBDICTUGET")).
		Set(0xB5, op("SUBDICTRPGET")).
		Set(0xB6, op("SUBDICTIRPGET")).
		Set(0xB7, op("SUBDICTURPGET")).
		Set(0xBC, op("DICTIGETJMPZ")).
		Set(0xBD, op("DICTUGETJMPZ")).
		Set(0xBE, op("DICTIGETEXECZ")).
		Set(0xBF, op("DICTUGETEXECZ")))
}

func (n *Node) addGasRandConfig() *Node {
	return n.AddSubset(0xF8, NewNode().
		Set(0x00, op("ACCEPT")).
		Set(0x01, op("SETGASLIMIT")).
		Set(0x02, op("BUYGAS")).
		Set(0x04, op("GRAMTOGAS")).
		Set(0x05, op("GASTOGRAM")).
		Set(0x0F, op("COMMIT")).
		Set(0x10, op("RANDU256")).
		Set(0x11, op("RAND")).
		Set(0x14, op("SETRAND")).
		Set(0x15, op("ADDRAND")).
		Set(0x20, op("GETPARAM")).
		Set(0x21, op("GETPARAM")).
		Set(0x22, op("GETPARAM")).
		Set(0x23, op("NOW")).
		Set(0x24, op("BLOCKLT")).
		Set(0x25, op("LTIME")).
		Set(0x26, op("RANDSEED")).
		Set(0x27, op("BALANCE")).
		Set(0x28, op("MY_ADDR")).
		Set(0x29, op("CONFIG_ROOT")).
		Set(0x30, op("CONFIG_DICT")).
		Set(0x32, op("CONFIG_REF_PARAM")).
		Set(0x33, op("CONFIG_OPT_PARAM")).
		Set(0x40, op("GETGLOBVAR")).
		SetRange(0x41, 0x5F, op("GETGLOB")).
		Set(0x5F, op("GETGLOB")).
		Set(0x60, op("SETGLOBVAR")).
		SetRange(0x61, 0x7F, op("SETGLOB")).
		Set(0x7F, op("SETGLOB")))
}

func (n *Node) addCrypto() *Node {
	return n.AddSubset(0xF9, NewNode().
		Set(0x00, op("HASHCU")).
		Set(0x01, op("HASHSU")).
		Set(0x02, op("SHA256U")).
		Set(0x10, op("CHKSIGNU")).
		Set(0x11, op("CHKSIGNS")).
		Set(0x40, op("CDATASIZEQ")).
		Set(0x41, op("CDATASIZE")).
		Set(0x42, op("SDATASIZEQ")).
		Set(0x43, op("SDATASIZE")))
}

func (n *Node) addDebug() *Node {
	return n.AddSubset(0xFE, NewNode().
		Set(0x00, op("DUMP_STACK")).
		SetRange(0x01, 0x0F, op("DUMP_STACK_TOP")).
		Set(0x10, op("DUMP_HEX")).
		Set(0x11, op("PRINT_HEX")).
		Set(0x12, op("DUMP_BIN")).
		Set(0x13, op("PRINT_BIN")).
		Set(0x14, op("DUMP_STR")).
		Set(0x15, op("PRINT_STR")).
		Set(0x1E, op("DEBUG_OFF")).
		Set(0x1F, op("DEBUG_ON")).
		SetRange(0x20, 0x2F, op("DUMP_VAR")).
		SetRange(0x30, 0x3F, op("PRINT_VAR")).
		SetRange(0xF0, 0xFF, op("DUMP_STRING")).
		Set(0xFF, op("DUMP_STRING")))
}
