package bitio

import (
	"io"

	"github.com/dsnet/golib/errs"

	"github.com/dsnet/bitio/bitvec"
)

// Writer accepts bits or bytes from upstream serialization code, buffers
// any residue shorter than a byte, and flushes whole bytes to a
// byte-oriented output. Bytes are packed most-significant-bit-first within
// each emitted byte: the first bit written becomes the 0x80 bit of the
// first byte.
type Writer struct {
	wr          io.Writer
	leftover    bitvec.Vec
	bitsWritten int // size, in bits, of the most recent flush (not cumulative)
}

// NewWriter wraps w. The initial leftover is empty.
func NewWriter(w io.Writer) *Writer {
	return &Writer{wr: w}
}

// BitsWritten reports the size, in bits, of the most recent flush to the
// underlying output stream. It is not a cumulative total; tests and
// callers use it to detect that a flush occurred.
func (w *Writer) BitsWritten() int { return w.bitsWritten }

// WriteBits appends bits to the writer. If the combined leftover+bits
// total fewer than 8 bits, it is accumulated into leftover and no write
// occurs. Otherwise the maximal whole-byte prefix is flushed to the
// output stream and the remainder becomes the new leftover. Fails with
// *WriteError if the output stream fails; on failure the adapter's state
// is unspecified.
func (w *Writer) WriteBits(bits bitvec.Vec) (err error) {
	defer errs.Recover(&err)

	total := w.leftover.Len() + bits.Len()
	if total < 8 {
		w.leftover.AppendVec(bits)
		debugf("write_bits: buffered %d bits, %d leftover", bits.Len(), w.leftover.Len())
		return nil
	}

	combined := w.leftover
	combined.AppendVec(bits)
	nbytes := total / 8
	head, tail := combined.Split(nbytes * 8)
	out := head.Bytes()
	if _, werr := w.wr.Write(out); werr != nil {
		errs.Panic(&WriteError{Err: werr})
	}
	w.bitsWritten = len(out) * 8
	w.leftover = tail
	debugf("write_bits: flushed %d bytes, %d leftover", len(out), w.leftover.Len())
	return nil
}

// WriteBytes writes buf. When leftover is empty, buf is written whole to
// the output (fast path). Otherwise buf is treated as the bit-vector
// 8*len(buf) bits and delegated to WriteBits.
func (w *Writer) WriteBytes(buf []byte) (err error) {
	if w.leftover.Len() != 0 {
		return w.WriteBits(bitvec.FromBytes(buf))
	}

	defer errs.Recover(&err)
	if _, werr := w.wr.Write(buf); werr != nil {
		errs.Panic(&WriteError{Err: werr})
	}
	w.bitsWritten = len(buf) * 8
	debugf("write_bytes: wrote %d bytes (aligned)", len(buf))
	return nil
}

// Finalize flushes any buffered leftover, padding on the right with zero
// bits to the next byte boundary. It is a no-op if leftover is already
// empty. Finalize must be called exactly once to flush a partial trailing
// byte; it is idempotent only when leftover was already empty.
func (w *Writer) Finalize() (err error) {
	if w.leftover.Len() == 0 {
		return nil
	}

	defer errs.Recover(&err)
	padded := w.leftover
	padded.PadToByte()
	out := padded.Bytes()
	if _, werr := w.wr.Write(out); werr != nil {
		errs.Panic(&WriteError{Err: werr})
	}
	w.bitsWritten = len(out) * 8
	w.leftover = bitvec.Vec{}
	debugf("finalize: flushed %d bytes", len(out))
	return nil
}
