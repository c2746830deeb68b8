package bitfield

import (
	"bytes"
	"testing"

	"github.com/dsnet/bitio"
)

func TestUnitReadWrite(t *testing.T) {
	r := bitio.NewReader(bytes.NewReader([]byte{0xFF}))
	var u Unit
	if err := u.ReadFrom(r); err != nil {
		t.Fatalf("ReadFrom: %v", err)
	}
	if r.BitsRead() != 0 {
		t.Errorf("BitsRead() = %d, want 0", r.BitsRead())
	}

	var buf bytes.Buffer
	w := bitio.NewWriter(&buf)
	if err := u.WriteTo(w); err != nil {
		t.Fatalf("WriteTo: %v", err)
	}
	if err := w.Finalize(); err != nil {
		t.Fatalf("Finalize: %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("output = %v, want empty", buf.Bytes())
	}
}

func TestUintRoundTrip(t *testing.T) {
	var vectors = []struct {
		bits int
		val  uint64
	}{
		{1, 1},
		{4, 0xA},
		{8, 0xA5},
		{12, 0xABC},
		{64, 0xDEADBEEFCAFEBABE},
	}
	for _, v := range vectors {
		var buf bytes.Buffer
		w := bitio.NewWriter(&buf)
		in := Uint{Bits: v.bits, Value: v.val}
		if err := in.WriteTo(w); err != nil {
			t.Fatalf("bits=%d: WriteTo: %v", v.bits, err)
		}
		if err := w.Finalize(); err != nil {
			t.Fatalf("bits=%d: Finalize: %v", v.bits, err)
		}

		r := bitio.NewReader(bytes.NewReader(buf.Bytes()))
		out := Uint{Bits: v.bits}
		if err := out.ReadFrom(r); err != nil {
			t.Fatalf("bits=%d: ReadFrom: %v", v.bits, err)
		}
		if out.Value != v.val {
			t.Errorf("bits=%d: got %#x, want %#x", v.bits, out.Value, v.val)
		}
	}
}

func TestUintReadFromPanicsOnBadWidth(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for Bits=0")
		}
	}()
	u := Uint{Bits: 0}
	_ = u.ReadFrom(bitio.NewReader(bytes.NewReader(nil)))
}
