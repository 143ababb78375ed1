// Package cell implements the bit-addressable, reference-linked binary
// containers ("cells") that VM bytecode and persistent data are organized
// into, along with the reader/writer abstractions the disassembler and
// assembler build on.
package cell

import "fmt"

// MaxBits is the maximum payload capacity of a single cell, in bits.
const MaxBits = 1023

// MaxRefs is the maximum number of references a single cell may hold.
const MaxRefs = 4

// Cell is an immutable container of up to MaxBits bits of payload and up to
// MaxRefs references to other cells.
type Cell struct {
	bits    []byte // packed big-endian, bitLen significant bits
	bitLen  int
	refs    []*Cell
}

// BitLen reports the number of significant payload bits in the cell.
func (c *Cell) BitLen() int { return c.bitLen }

// Refs returns the cell's references, in order. The returned slice must not
// be mutated.
func (c *Cell) Refs() []*Cell { return c.refs }

// Bits returns the packed payload bits (big-endian, c.BitLen() significant
// bits, zero-padded to a byte boundary). The returned slice must not be
// mutated.
func (c *Cell) Bits() []byte { return c.bits }

// Slice returns a fresh read cursor positioned at the start of the cell.
func (c *Cell) Slice() *Slice {
	return &Slice{data: c.bits, bitLen: c.bitLen, refs: c.refs}
}

func (c *Cell) String() string {
	return fmt.Sprintf("Cell{%d bits, %d refs}", c.bitLen, len(c.refs))
}
