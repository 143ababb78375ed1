// Package disasm implements the opcode dispatch core: a hierarchical,
// prefix-coded dispatch table that maps a VM bytecode prefix to the loader
// responsible for decoding the instruction it introduces (§4.1).
package disasm

import "github.com/tonlabs/tvmtool/cell"

// Variant distinguishes the signaling and quiet flavors of the opcodes that
// come in both forms (§4.1 "Quiet/Signaling variants"). Per §9's
// "Variant parameterization" note, this is carried as a tag on a single
// loader implementation rather than as two distinct loader identities; the
// two realizations of the same mnemonic are still separate Loader closures
// (over different Variant constants), told apart by the Variant field of the
// Instruction they produce.
type Variant int

const (
	// Signaling is the variant that faults on overflow or invalid input.
	Signaling Variant = iota
	// Quiet is the variant that produces a NaN/null sentinel instead.
	Quiet
)

func (v Variant) String() string {
	if v == Quiet {
		return "quiet"
	}
	return "signaling"
}

// Instruction is the structured record a Loader produces: a mnemonic plus
// whatever operands its opcode carries. The dispatch core never inspects
// its contents (§3): loaders populate it, callers consume it.
type Instruction struct {
	Mnemonic string
	Variant  Variant
	Operands []int64
}

// Loader decodes the instruction body starting at the current cursor of s,
// which has already had its dispatch-prefix bytes consumed. It returns a
// decoding failure rather than panicking on malformed input; construction
// faults (duplicate registration) are a separate, non-recoverable class
// handled at table-build time, not here (§4.1 "Failure modes").
type Loader func(s *cell.Slice) (Instruction, error)
