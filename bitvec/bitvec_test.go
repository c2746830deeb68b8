package bitvec

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFromBytesOrder(t *testing.T) {
	// 0xA5 == 1010 0101, MSB-first.
	v := FromBytes([]byte{0xA5})
	want := "10100101"
	if got := v.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	if v.Len() != 8 {
		t.Errorf("Len() = %d, want 8", v.Len())
	}
}

func TestAppend(t *testing.T) {
	var v Vec
	for _, bit := range []int{1, 0, 1, 0, 0, 1, 0, 1} {
		v.Append(bit)
	}
	if got, want := v.Bytes(), []byte{0xA5}; !cmp.Equal(got, want) {
		t.Errorf("Bytes() = %v, want %v", got, want)
	}
}

func TestSplit(t *testing.T) {
	var vectors = []struct {
		in       Vec
		n        int
		wantHead string
		wantTail string
	}{
		{FromBytes([]byte{0xA5}), 0, "", "10100101"},
		{FromBytes([]byte{0xA5}), 4, "1010", "0101"},
		{FromBytes([]byte{0xA5}), 8, "10100101", ""},
	}
	for i, v := range vectors {
		head, tail := v.in.Split(v.n)
		if got := head.String(); got != v.wantHead {
			t.Errorf("test %d, head = %q, want %q", i, got, v.wantHead)
		}
		if got := tail.String(); got != v.wantTail {
			t.Errorf("test %d, tail = %q, want %q", i, got, v.wantTail)
		}
	}
}

func TestAppendVec(t *testing.T) {
	a, _ := FromBytes([]byte{0xF0}).Split(4) // "1111"
	b, tail := FromBytes([]byte{0x01}).Split(4)
	_ = tail
	a.AppendVec(b)
	if got, want := a.String(), "11110000"; got != want {
		t.Errorf("AppendVec() = %q, want %q", got, want)
	}
}

func TestPadToByte(t *testing.T) {
	v, _ := FromBytes([]byte{0xA0}).Split(3) // "101"
	added := v.PadToByte()
	if added != 5 {
		t.Errorf("PadToByte() added = %d, want 5", added)
	}
	if got, want := v.Bytes(), []byte{0xA0}; !cmp.Equal(got, want) {
		t.Errorf("Bytes() = %v, want %v", got, want)
	}
}

func TestEqual(t *testing.T) {
	a := FromBytes([]byte{0xA5, 0x5A})
	b := FromBytes([]byte{0xA5, 0x5A})
	c := FromBytes([]byte{0xA5, 0x5B})
	if !Equal(a, b) {
		t.Errorf("Equal(a, b) = false, want true")
	}
	if Equal(a, c) {
		t.Errorf("Equal(a, c) = true, want false")
	}
}

func TestBytesPanicsOnUnaligned(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("Bytes() on unaligned Vec did not panic")
		}
	}()
	v, _ := FromBytes([]byte{0xFF}).Split(3)
	_ = v.Bytes()
}
