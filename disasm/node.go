package disasm

import (
	"fmt"

	"github.com/tonlabs/tvmtool/cell"
)

// LoadUnknown is the sentinel loader denoting "no instruction assigned to
// this code" (§3). It is registered in every slot at construction time and
// is never reachable from a successfully-resolved dispatch: reaching it
// would mean a Node was queried directly instead of through GetHandler's
// Unknown-slot check, which never happens from this package's own API.
func LoadUnknown(s *cell.Slice) (Instruction, error) {
	return Instruction{}, fmt.Errorf("disasm: load_unknown invoked directly")
}

type slotKind uint8

const (
	slotUnknown slotKind = iota
	slotDirect
	slotSubset
)

type slot struct {
	kind      slotKind
	loader    Loader
	subsetIdx int
}

// Node is a fixed-size, 256-slot dispatch table covering one byte's worth
// of opcode space. Child Nodes reached via Subset slots are owned by their
// parent Node and stored in that parent's flat, append-only list referenced
// by index; a nested child (e.g. 0xB7 then 0xB6) sits in its own parent's
// list, not the root's (§9 "Self-referential dispatch tree"): this keeps
// construction allocation-
// simple and avoids self-referential pointers, exactly as the Rust original
// this was ported from does with its own `subsets: Vec<Handlers>`.
//
// A Node is mutable only during construction (via Set/SetRange/AddSubset);
// once installed into a parent's subset list or handed to a reader via
// GetHandler it must not be mutated further (§3 "Lifecycles").
type Node struct {
	directs [256]slot
	subsets []*Node
}

// NewNode returns a Node with every slot defaulted to Unknown.
func NewNode() *Node {
	n := &Node{}
	for i := range n.directs {
		n.directs[i] = slot{kind: slotUnknown, loader: LoadUnknown}
	}
	return n
}

// Set registers loader as the Direct handler for code. It panics if the
// slot is already occupied (Direct or Subset): per §4.1/§7, construction
// conflicts are static bugs in the opcode table, never runtime input, and
// are treated as process-abort conditions rather than returned errors.
func (n *Node) Set(code byte, loader Loader) *Node {
	n.register(code, loader)
	return n
}

// SetRange registers loader as the Direct handler for every byte in the
// half-open range [lo, hi). hi may be 256 to reach 0xFF inclusive without
// byte-arithmetic overflow.
func (n *Node) SetRange(lo, hi int, loader Loader) *Node {
	if lo < 0 || hi > 256 || lo > hi {
		panic(fmt.Sprintf("disasm: invalid range [%#x, %#x)", lo, hi))
	}
	for code := lo; code < hi; code++ {
		n.register(byte(code), loader)
	}
	return n
}

// AddSubset installs child at slot code, meaning "consume another byte and
// descend". Ownership of child transfers to n: child is relocated into n's
// flat subset list and must not be used independently afterwards. It panics
// if the slot is already occupied.
func (n *Node) AddSubset(code byte, child *Node) *Node {
	cur := n.directs[code]
	if cur.kind != slotUnknown {
		panic(fmt.Sprintf("disasm: subset slot %#02x is already occupied", code))
	}
	idx := len(n.subsets)
	n.subsets = append(n.subsets, child)
	n.directs[code] = slot{kind: slotSubset, subsetIdx: idx}
	return n
}

func (n *Node) register(code byte, loader Loader) {
	cur := n.directs[code]
	if cur.kind != slotUnknown {
		panic(fmt.Sprintf("disasm: slot %#02x is already registered", code))
	}
	n.directs[code] = slot{kind: slotDirect, loader: loader}
}

// GetHandler consumes one or more whole bytes from s — one per dispatch
// level, tail-recursing through Subset slots — and returns the Loader
// registered for the resulting prefix. An Unknown slot or a slice underrun
// produces a *DecodeError carrying the bytes read so far.
func (n *Node) GetHandler(s *cell.Slice) (Loader, error) {
	return n.getHandler(s, nil)
}

func (n *Node) getHandler(s *cell.Slice, prefix []byte) (Loader, error) {
	b, err := s.NextByte()
	if err != nil {
		return nil, &DecodeError{Prefix: prefix, Cause: err}
	}
	prefix = append(prefix, b)
	sl := n.directs[b]
	switch sl.kind {
	case slotDirect:
		return sl.loader, nil
	case slotSubset:
		return n.subsets[sl.subsetIdx].getHandler(s, prefix)
	default:
		return nil, &DecodeError{Prefix: prefix}
	}
}

// Decode is a convenience wrapper: it resolves the handler for the current
// position of s and immediately invokes it, returning the decoded
// Instruction. This is the shape a caller (a VM loader loop, or the `disasm`
// CLI subcommand) actually drives.
func (n *Node) Decode(s *cell.Slice) (Instruction, error) {
	loader, err := n.GetHandler(s)
	if err != nil {
		return Instruction{}, err
	}
	return loader(s)
}
