package cell

import "testing"

func TestBuilderAppendIntRoundTrip(t *testing.T) {
	cases := []struct {
		v     int64
		width int
	}{
		{1, 2}, {2, 4}, {-1, 1}, {-128, 1}, {127, 1}, {1 << 20, 4}, {-70000, 4},
	}
	for _, c := range cases {
		b := NewBuilder()
		if err := b.AppendInt(c.v, c.width); err != nil {
			t.Fatalf("AppendInt(%d,%d): %v", c.v, c.width, err)
		}
		cl, err := b.Build()
		if err != nil {
			t.Fatal(err)
		}
		if cl.BitLen() != c.width*8 {
			t.Fatalf("expected %d bits, got %d", c.width*8, cl.BitLen())
		}
		s := cl.Slice()
		got, err := s.GetInt(c.width * 8)
		if err != nil {
			t.Fatal(err)
		}
		if got != c.v {
			t.Fatalf("round trip mismatch: want %d got %d", c.v, got)
		}
	}
}

func TestBuilderInvalidWidth(t *testing.T) {
	b := NewBuilder()
	if err := b.AppendInt(1, 3); err == nil {
		t.Fatal("expected error for invalid data value width")
	}
}

func TestBuilderOverflow(t *testing.T) {
	b := NewBuilder()
	for i := 0; i < MaxBits/64; i++ {
		if err := b.AppendUint(0, 64); err != nil {
			t.Fatalf("unexpected overflow at iteration %d: %v", i, err)
		}
	}
	if err := b.AppendUint(0, MaxBits%64+1); err == nil {
		t.Fatal("expected overflow error")
	}
}

func TestBuilderRefOverflow(t *testing.T) {
	b := NewBuilder()
	leaf, _ := NewBuilder().Build()
	for i := 0; i < MaxRefs; i++ {
		if err := b.AppendReference(leaf); err != nil {
			t.Fatalf("unexpected error appending ref %d: %v", i, err)
		}
	}
	if err := b.AppendReference(leaf); err == nil {
		t.Fatal("expected reference overflow error")
	}
}
