package cell

import "testing"

func TestSliceNextByte(t *testing.T) {
	s := NewSlice([]byte{0x00, 0x83, 0xFF}, 24, nil)
	for _, want := range []byte{0x00, 0x83, 0xFF} {
		got, err := s.NextByte()
		if err != nil {
			t.Fatal(err)
		}
		if got != want {
			t.Fatalf("want %02x got %02x", want, got)
		}
	}
	if _, err := s.NextByte(); err == nil {
		t.Fatal("expected underrun error")
	}
}

func TestSliceGetIntSigned(t *testing.T) {
	// 0xFF as an 8-bit signed value is -1.
	s := NewSlice([]byte{0xFF}, 8, nil)
	v, err := s.GetInt(8)
	if err != nil {
		t.Fatal(err)
	}
	if v != -1 {
		t.Fatalf("want -1 got %d", v)
	}
}

func TestSliceRefs(t *testing.T) {
	leaf, _ := NewBuilder().Build()
	s := NewSlice(nil, 0, []*Cell{leaf})
	if s.RemainingRefs() != 1 {
		t.Fatalf("want 1 remaining ref, got %d", s.RemainingRefs())
	}
	r, err := s.NextRef()
	if err != nil {
		t.Fatal(err)
	}
	if r != leaf {
		t.Fatal("wrong ref returned")
	}
	if _, err := s.NextRef(); err == nil {
		t.Fatal("expected error on exhausted refs")
	}
}
