// Package verify implements a differential round-trip check for bitio: it
// repacks data through a Writer/Reader pair and confirms the result is
// byte-identical, then cross-checks a CRC-32 computed two different ways
// (one pass over the whole buffer vs. combining two partial checksums) as a
// second, independent correctness signal.
package verify

import (
	"bytes"
	"fmt"
	"hash/crc32"

	"github.com/dsnet/golib/hashutil"

	"github.com/dsnet/bitio"
)

// Mismatch describes a failed round-trip.
type Mismatch struct {
	Want, Got []byte
}

func (m *Mismatch) Error() string {
	return fmt.Sprintf("verify: round-trip mismatch: want %d bytes, got %d bytes", len(m.Want), len(m.Got))
}

// RoundTrip reads the 8*len(want) bits of want through a fresh Reader in
// chunks of at most chunkBits (a chunkBits outside [1, bitio.MaxBits] is
// replaced by bitio.MaxBits), writes each chunk to a fresh Writer, and
// reports whether the Writer's output is byte-identical to want.
func RoundTrip(want []byte, chunkBits int) error {
	if chunkBits <= 0 || chunkBits > bitio.MaxBits {
		chunkBits = bitio.MaxBits
	}

	var buf bytes.Buffer
	w := bitio.NewWriter(&buf)
	src := bitio.NewReader(bytes.NewReader(want))
	totalBits := 8 * len(want)
	for read := 0; read < totalBits; {
		n := chunkBits
		if n > totalBits-read {
			n = totalBits - read
		}
		bits, err := src.ReadBits(n)
		if err != nil {
			return err
		}
		if err := w.WriteBits(bits); err != nil {
			return err
		}
		read += n
	}
	if err := w.Finalize(); err != nil {
		return err
	}

	got := buf.Bytes()
	if !bytes.Equal(got, want) {
		return &Mismatch{Want: want, Got: got}
	}
	return checkCombinedCRC(got)
}

// checkCombinedCRC splits buf at its midpoint, computes a CRC-32 over each
// half independently, combines them with hashutil.CombineCRC32, and
// compares the result against a single-pass CRC-32 over the whole buffer.
// Both checksums are computed over the same bytes, so a mismatch can only
// come from the combine step.
func checkCombinedCRC(buf []byte) error {
	mid := len(buf) / 2
	crc1 := crc32.ChecksumIEEE(buf[:mid])
	crc2 := crc32.ChecksumIEEE(buf[mid:])
	combined := hashutil.CombineCRC32(crc32.IEEE, crc1, crc2, int64(len(buf)-mid))
	want := crc32.ChecksumIEEE(buf)
	if combined != want {
		return fmt.Errorf("verify: combined CRC-32 %#08x != whole-buffer CRC-32 %#08x", combined, want)
	}
	return nil
}
