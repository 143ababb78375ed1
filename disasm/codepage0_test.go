package disasm

import (
	"testing"

	"github.com/tonlabs/tvmtool/cell"
)

func sliceOf(t *testing.T, bs ...byte) *cell.Slice {
	t.Helper()
	b := cell.NewBuilder()
	for _, v := range bs {
		if err := b.AppendUint(uint64(v), 8); err != nil {
			t.Fatalf("AppendUint: %v", err)
		}
	}
	c, err := b.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	return c.Slice()
}

func TestNopDecodesAtRoot(t *testing.T) {
	n := NewCodePage0()
	ins, err := n.Decode(sliceOf(t, 0x00))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if ins.Mnemonic != "NOP" {
		t.Fatalf("mnemonic = %q, want NOP", ins.Mnemonic)
	}
}

func TestPushnanBehindTwoLevelSubset(t *testing.T) {
	n := NewCodePage0()
	ins, err := n.Decode(sliceOf(t, 0x83, 0xFF))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if ins.Mnemonic != "PUSHNAN" {
		t.Fatalf("mnemonic = %q, want PUSHNAN", ins.Mnemonic)
	}
}

func TestXchgLongConsumesOperandByte(t *testing.T) {
	n := NewCodePage0()
	ins, err := n.Decode(sliceOf(t, 0x11, 0x07))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if ins.Mnemonic != "XCHG_LONG" || len(ins.Operands) != 1 || ins.Operands[0] != 7 {
		t.Fatalf("got %+v", ins)
	}
}

func TestPushintDecodesSignedOperand(t *testing.T) {
	n := NewCodePage0()
	ins, err := n.Decode(sliceOf(t, 0x70, 0xFF))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if ins.Mnemonic != "PUSHINT" || ins.Operands[0] != -1 {
		t.Fatalf("got %+v", ins)
	}
}

func TestSignalingAndQuietAddAreDistinctVariants(t *testing.T) {
	n := NewCodePage0()
	sig, err := n.Decode(sliceOf(t, 0xA0))
	if err != nil {
		t.Fatalf("Decode signaling: %v", err)
	}
	quiet, err := n.Decode(sliceOf(t, 0xB7, 0xA0))
	if err != nil {
		t.Fatalf("Decode quiet: %v", err)
	}
	if sig.Mnemonic != "ADD" || sig.Variant != Signaling {
		t.Fatalf("signaling got %+v", sig)
	}
	if quiet.Mnemonic != "ADD" || quiet.Variant != Quiet {
		t.Fatalf("quiet got %+v", quiet)
	}
}

func TestUnknownOpcodeAtRootIsAnError(t *testing.T) {
	n := NewCodePage0()
	_, err := n.Decode(sliceOf(t, 0xF5))
	if err == nil {
		t.Fatal("expected error for unassigned root opcode 0xF5")
	}
	var de *DecodeError
	if !asDecodeError(err, &de) {
		t.Fatalf("expected *DecodeError, got %T: %v", err, err)
	}
	if len(de.Prefix) != 1 || de.Prefix[0] != 0xF5 {
		t.Fatalf("prefix = % x, want [f5]", de.Prefix)
	}
}

func TestSliceUnderrunDuringDispatchIsReported(t *testing.T) {
	n := NewCodePage0()
	_, err := n.Decode(sliceOf(t, 0x83))
	if err == nil {
		t.Fatal("expected error: subset 0x83 needs a second byte that isn't present")
	}
}

func TestEveryRegisteredRootByteResolvesWithoutFault(t *testing.T) {
	n := NewCodePage0()
	for code := 0; code < 256; code++ {
		sl := n.directs[code]
		if sl.kind == slotUnknown {
			continue
		}
		if sl.kind == slotDirect && sl.loader == nil {
			t.Fatalf("direct slot %#02x has nil loader", code)
		}
		// Behind a subset, follow the first registered byte of each level
		// until a direct slot is reached, then resolve the whole prefix.
		prefix := []byte{byte(code)}
		node := n
		for node.directs[prefix[len(prefix)-1]].kind == slotSubset {
			node = node.subsets[node.directs[prefix[len(prefix)-1]].subsetIdx]
			next := -1
			for b := 0; b < 256; b++ {
				if node.directs[b].kind != slotUnknown {
					next = b
					break
				}
			}
			if next < 0 {
				t.Fatalf("subset behind % x has no registered byte", prefix)
			}
			prefix = append(prefix, byte(next))
		}
		loader, err := n.GetHandler(sliceOf(t, prefix...))
		if err != nil {
			t.Fatalf("GetHandler(% x): %v", prefix, err)
		}
		if loader == nil {
			t.Fatalf("GetHandler(% x) returned a nil loader", prefix)
		}
	}
}

func TestSetcpxAtCodepageSwitchSubset(t *testing.T) {
	n := NewCodePage0()
	ins, err := n.Decode(sliceOf(t, 0xFF, 0xF0, 0x05))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if ins.Mnemonic != "SETCPX" || ins.Operands[0] != 5 {
		t.Fatalf("got %+v", ins)
	}
}

func asDecodeError(err error, target **DecodeError) bool {
	de, ok := err.(*DecodeError)
	if !ok {
		return false
	}
	*target = de
	return true
}
