package cell

import "testing"

func TestDictSetGet(t *testing.T) {
	d := NewDict(64)
	vals := map[uint64]int64{0: 1, 1: 2, 2: -3, 17: 400}
	for k, v := range vals {
		b := NewBuilder()
		if err := b.AppendInt(v, 2); err != nil {
			t.Fatal(err)
		}
		if err := d.Set(k, b); err != nil {
			t.Fatalf("Set(%d): %v", k, err)
		}
	}
	if d.Len() != len(vals) {
		t.Fatalf("want %d entries, got %d", len(vals), d.Len())
	}
	for k, v := range vals {
		got, ok := d.Get(k)
		if !ok {
			t.Fatalf("key %d missing", k)
		}
		cl, err := got.Build()
		if err != nil {
			t.Fatal(err)
		}
		gv, err := cl.Slice().GetInt(16)
		if err != nil {
			t.Fatal(err)
		}
		if gv != v {
			t.Fatalf("key %d: want %d got %d", k, v, gv)
		}
	}
	if _, ok := d.Get(999); ok {
		t.Fatal("expected missing key to report absent")
	}
}

func TestDictOverwrite(t *testing.T) {
	d := NewDict(8)
	b1 := NewBuilder()
	b1.AppendInt(1, 1)
	if err := d.Set(5, b1); err != nil {
		t.Fatal(err)
	}
	b2 := NewBuilder()
	b2.AppendInt(2, 1)
	if err := d.Set(5, b2); err != nil {
		t.Fatal(err)
	}
	if d.Len() != 1 {
		t.Fatalf("overwrite should not grow count, got %d", d.Len())
	}
	got, _ := d.Get(5)
	cl, _ := got.Build()
	v, _ := cl.Slice().GetInt(8)
	if v != 2 {
		t.Fatalf("want overwritten value 2, got %d", v)
	}
}

func TestDictRootSerializesToSingleReference(t *testing.T) {
	d := NewDict(64)
	b := NewBuilder()
	b.AppendInt(1, 2)
	if err := d.Set(0, b); err != nil {
		t.Fatal(err)
	}
	root, err := d.Root()
	if err != nil {
		t.Fatal(err)
	}
	if root.BitLen() != 0 {
		t.Fatalf("wrapper cell should carry no payload bits, got %d", root.BitLen())
	}
	if len(root.Refs()) != 1 {
		t.Fatalf("wrapper cell should carry exactly one reference, got %d", len(root.Refs()))
	}
}

func TestEmptyDictRoot(t *testing.T) {
	d := NewDict(64)
	root, err := d.Root()
	if err != nil {
		t.Fatal(err)
	}
	if len(root.Refs()) != 1 {
		t.Fatalf("even an empty dict wraps an (empty) dictionary cell")
	}
}
