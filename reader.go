package bitio

import (
	"io"

	"github.com/dsnet/golib/errs"
	"github.com/dsnet/golib/ioutil"

	"github.com/dsnet/bitio/bitvec"
)

// maxScratchBytes is the number of whole bytes needed to cover MaxBits.
const maxScratchBytes = (MaxBits + 7) / 8

// byteReader is the minimal interface Reader needs from its input: a
// plain byte source, promoted to io.ByteReader if it does not already
// implement one.
type byteReader interface {
	io.Reader
	io.ByteReader
}

// Reader pulls bits or bytes from a byte-oriented input, buffering any
// residue shorter than a byte between calls. It exclusively owns its
// underlying io.Reader for its lifetime; see Inner.
type Reader struct {
	rd       io.Reader
	brd      byteReader
	leftover bitvec.Vec
	bitsRead int64
}

// NewReader wraps r. The initial leftover is empty and the bit counter
// starts at zero.
func NewReader(r io.Reader) *Reader {
	rd := &Reader{rd: r}
	if br, ok := r.(byteReader); ok {
		rd.brd = br
	} else {
		rd.brd = &ioutil.ByteReader{Reader: r}
	}
	return rd
}

// BitsRead reports the total number of bits returned to the caller since
// construction (or since the last SkipBits call), excluding any buffered
// leftover.
func (r *Reader) BitsRead() int64 { return r.bitsRead }

// Inner consumes r and returns the underlying io.Reader. Any buffered
// residue is discarded, not pushed back onto the stream; callers who need
// byte-accurate reclaiming of the stream should finish all bit-level reads
// first and avoid calling AtEnd at a byte boundary (AtEnd's one-byte
// lookahead would otherwise be lost here too).
func (r *Reader) Inner() io.Reader {
	r.leftover = bitvec.Vec{}
	return r.rd
}

// AtEnd reports whether the stream has no more data and no buffered
// residue. It may advance the input by up to one byte: if leftover is
// empty, it attempts a one-byte read and, on success, caches those 8 bits
// into leftover (so a subsequent byte-aligned read takes the slow bit
// path). A non-EOF I/O error is treated as "not at end"; the error
// resurfaces on the next real read.
func (r *Reader) AtEnd() bool {
	if r.leftover.Len() > 0 {
		debugf("at_end: leftover present, not end")
		return false
	}
	b, err := r.brd.ReadByte()
	switch err {
	case io.EOF:
		debugf("at_end: end")
		return true
	case nil:
		r.leftover = bitvec.FromBytes([]byte{b})
		debugf("at_end: buffered lookahead byte, not end")
		return false
	default:
		debugf("at_end: transient read error, treated as not end: %v", err)
		return false
	}
}

// SkipBits consumes and discards n bits, then resets the bit counter to
// zero. It is meant to be used once at the start of a decode to align an
// initial offset without counting the skipped prefix.
func (r *Reader) SkipBits(n int) error {
	if _, err := r.ReadBits(n); err != nil {
		return err
	}
	r.bitsRead = 0
	debugf("skip_bits: skipped %d bits, counter reset", n)
	return nil
}

// ReadBits returns exactly n bits (n must be in [0, MaxBits]) and
// increments the bit counter by n. If n is 0, it returns the zero Vec
// without touching the stream or counter. It fails with *IncompleteError
// if the stream ends (or errors) before n bits are available; on failure
// the adapter's state is unspecified and must be discarded.
func (r *Reader) ReadBits(n int) (bits bitvec.Vec, err error) {
	if n == 0 {
		return bitvec.Vec{}, nil
	}
	if n < 0 || n > MaxBits {
		panic("bitio: ReadBits: n out of range [0, MaxBits]")
	}
	defer errs.Recover(&err)

	l := r.leftover.Len()
	switch {
	case n == l:
		bits = r.leftover
		r.leftover = bitvec.Vec{}
	case n < l:
		bits, r.leftover = r.leftover.Split(n)
	default: // n > l
		need := n - l
		nbytes := (need + 7) / 8
		var scratch [maxScratchBytes]byte
		buf := scratch[:nbytes]
		if _, rerr := io.ReadFull(r.rd, buf); rerr != nil {
			errs.Panic(&IncompleteError{Need: n})
		}
		head, tail := bitvec.FromBytes(buf).Split(need)
		bits = r.leftover
		bits.AppendVec(head)
		r.leftover = tail
	}
	r.bitsRead += int64(n)
	debugf("read_bits: returned %d bits", n)
	return bits, nil
}

// ReadBytesResult distinguishes the two outcomes of ReadBytes.
type ReadBytesResult int

const (
	// ReadBytesToBuf means the requested bytes were written directly into
	// the caller's buf; the returned Vec is the zero Vec.
	ReadBytesToBuf ReadBytesResult = iota
	// ReadBytesToBits means the adapter was not byte-aligned; the
	// requested data is in the returned Vec instead of buf.
	ReadBytesToBits
)

// ReadBytes reads n bytes. When the adapter is byte-aligned (leftover
// empty), it reads n bytes directly into buf[:n], increments the bit
// counter by 8n, and returns ReadBytesToBuf. When not byte-aligned, it
// delegates to ReadBits(8n) and returns ReadBytesToBits with the result
// bit-vector. Fails with *IncompleteError on a short read (8n needed
// bits), or if len(buf) < n on the byte-aligned path.
func (r *Reader) ReadBytes(n int, buf []byte) (result ReadBytesResult, bits bitvec.Vec, err error) {
	if r.leftover.Len() != 0 {
		bits, err = r.ReadBits(8 * n)
		return ReadBytesToBits, bits, err
	}

	defer errs.Recover(&err)
	errs.Assert(len(buf) >= n, &IncompleteError{Need: 8 * n})
	if _, rerr := io.ReadFull(r.rd, buf[:n]); rerr != nil {
		errs.Panic(&IncompleteError{Need: 8 * n})
	}
	r.bitsRead += int64(8 * n)
	debugf("read_bytes: read %d bytes (aligned)", n)
	return ReadBytesToBuf, bitvec.Vec{}, nil
}
