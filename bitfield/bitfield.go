// Package bitfield provides small, composable Value implementations for use
// with bitio.Reader and bitio.Writer: a no-op Unit and a fixed-width Uint.
// It mirrors the role the Rust original's DekuRead/DekuWrite traits play for
// primitive field types, expressed as a single Go interface instead of a
// pair of generic traits.
package bitfield

import (
	"fmt"

	"github.com/dsnet/bitio"
	"github.com/dsnet/bitio/bitvec"
)

// Value is implemented by field types that know how to read themselves from
// a bitio.Reader and write themselves to a bitio.Writer.
type Value interface {
	ReadFrom(r *bitio.Reader) error
	WriteTo(w *bitio.Writer) error
}

// Unit is a zero-width field: reading it consumes nothing and always
// succeeds; writing it emits nothing. It plays the same role as the Rust
// original's impl for the unit type ().
type Unit struct{}

// ReadFrom implements Value. It never touches r.
func (Unit) ReadFrom(r *bitio.Reader) error { return nil }

// WriteTo implements Value. It never touches w.
func (Unit) WriteTo(w *bitio.Writer) error { return nil }

// Uint is a fixed-width unsigned integer field, up to 64 bits wide, packed
// most-significant-bit-first like every other bitio field.
type Uint struct {
	Bits  int // width in bits, must be in [1, 64]
	Value uint64
}

// ReadFrom implements Value: it reads Bits bits from r and stores the
// resulting value, most-significant-bit first.
func (u *Uint) ReadFrom(r *bitio.Reader) error {
	if u.Bits < 1 || u.Bits > 64 {
		panic(fmt.Sprintf("bitfield: Uint.ReadFrom: Bits=%d out of range [1,64]", u.Bits))
	}
	v, err := r.ReadBits(u.Bits)
	if err != nil {
		return err
	}
	u.Value = vecToUint64(v)
	return nil
}

// WriteTo implements Value: it writes the low Bits bits of Value to w,
// most-significant-bit first.
func (u Uint) WriteTo(w *bitio.Writer) error {
	if u.Bits < 1 || u.Bits > 64 {
		panic(fmt.Sprintf("bitfield: Uint.WriteTo: Bits=%d out of range [1,64]", u.Bits))
	}
	return w.WriteBits(uint64ToVec(u.Value, u.Bits))
}

func vecToUint64(v bitvec.Vec) uint64 {
	var out uint64
	for i := 0; i < v.Len(); i++ {
		out = out<<1 | uint64(v.Bit(i))
	}
	return out
}

func uint64ToVec(val uint64, n int) bitvec.Vec {
	var v bitvec.Vec
	for i := n - 1; i >= 0; i-- {
		v.Append(int(val>>uint(i)) & 1)
	}
	return v
}
