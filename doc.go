// Package bitio adapts a byte-oriented io.Reader or io.Writer so that
// higher-level deserialization/serialization code can consume or produce
// values measured in bits instead of bytes.
//
// Reader buffers the fractional byte left over between requests and
// reports precise progress in bits; Writer buffers the fractional byte not
// yet flushed and pads the trailing partial byte with zeros when Finalize
// is called. Bits are ordered most-significant-bit-first within each byte
// (see the bitvec package, which both adapters are built on): the on-wire
// byte 0xA5 is the bit sequence 1 0 1 0 0 1 0 1.
//
// Both adapters are single-threaded and non-reentrant: there is no
// suspension point, no background work, and no cancellation protocol
// beyond dropping the adapter. Reader exclusively owns its underlying
// io.Reader for its lifetime; Inner reclaims it, discarding any buffered
// residue.
package bitio
