// Package bench measures the throughput of bitio.Writer and bitio.Reader
// when layered beneath a real streaming compressor, so that the cost of the
// bit-packing layer itself can be judged against codecs the ecosystem
// already considers fast.
package bench

import (
	"bufio"
	"bytes"
	"io"
	"runtime"
	"testing"

	"github.com/klauspost/compress/flate"
	"github.com/ulikunitz/xz"

	"github.com/dsnet/bitio"
)

// Codec names a compressor family exercised beneath the bit-packing layer.
type Codec int

const (
	CodecFlate Codec = iota
	CodecXZ
)

// Pipeline repacks input through a bitio.Writer in chunkBits-sized pieces,
// compresses the result with the given codec, then decompresses and
// unpacks it back through a bitio.Reader in the same chunking, returning the
// round-tripped bytes.
func Pipeline(codec Codec, input []byte, chunkBits int) ([]byte, error) {
	packed, err := pack(input, chunkBits)
	if err != nil {
		return nil, err
	}

	var compressed bytes.Buffer
	if err := compress(codec, &compressed, packed); err != nil {
		return nil, err
	}

	unpacked, err := decompress(codec, compressed.Bytes())
	if err != nil {
		return nil, err
	}
	return unpack(unpacked, chunkBits, len(input))
}

func pack(input []byte, chunkBits int) ([]byte, error) {
	if chunkBits > bitio.MaxBits {
		chunkBits = bitio.MaxBits
	}
	var buf bytes.Buffer
	w := bitio.NewWriter(&buf)
	r := bitio.NewReader(bytes.NewReader(input))
	for !r.AtEnd() {
		n := chunkBits
		if remaining := 8 * (len(input)) - int(r.BitsRead()); n > remaining {
			n = remaining
		}
		if n <= 0 {
			break
		}
		bits, err := r.ReadBits(n)
		if err != nil {
			return nil, err
		}
		if err := w.WriteBits(bits); err != nil {
			return nil, err
		}
	}
	if err := w.Finalize(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func unpack(packed []byte, chunkBits, wantBytes int) ([]byte, error) {
	if chunkBits > bitio.MaxBits {
		chunkBits = bitio.MaxBits
	}
	var buf bytes.Buffer
	w := bitio.NewWriter(&buf)
	r := bitio.NewReader(bytes.NewReader(packed))
	remainingBits := 8 * wantBytes
	for remainingBits > 0 {
		n := chunkBits
		if n > remainingBits {
			n = remainingBits
		}
		bits, err := r.ReadBits(n)
		if err != nil {
			return nil, err
		}
		if err := w.WriteBits(bits); err != nil {
			return nil, err
		}
		remainingBits -= n
	}
	if err := w.Finalize(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func compress(codec Codec, dst io.Writer, src []byte) error {
	switch codec {
	case CodecFlate:
		fw, err := flate.NewWriter(dst, flate.DefaultCompression)
		if err != nil {
			return err
		}
		if _, err := fw.Write(src); err != nil {
			return err
		}
		return fw.Close()
	case CodecXZ:
		xw, err := xz.NewWriter(dst)
		if err != nil {
			return err
		}
		if _, err := xw.Write(src); err != nil {
			return err
		}
		return xw.Close()
	default:
		panic("bench: unknown codec")
	}
}

func decompress(codec Codec, src []byte) ([]byte, error) {
	var rd io.Reader
	switch codec {
	case CodecFlate:
		rd = flate.NewReader(bytes.NewReader(src))
	case CodecXZ:
		xr, err := xz.NewReader(bufio.NewReader(bytes.NewReader(src)))
		if err != nil {
			return nil, err
		}
		rd = xr
	default:
		panic("bench: unknown codec")
	}
	return io.ReadAll(rd)
}

// Result reports the measured throughput of a single benchmark run.
type Result struct {
	MBPerSec float64
}

// Run benchmarks Pipeline on input for the given codec and chunk size.
func Run(codec Codec, input []byte, chunkBits int) Result {
	r := testing.Benchmark(func(b *testing.B) {
		b.StopTimer()
		runtime.GC()
		b.StartTimer()
		for i := 0; i < b.N; i++ {
			if _, err := Pipeline(codec, input, chunkBits); err != nil {
				b.Fatalf("unexpected error: %v", err)
			}
			b.SetBytes(int64(len(input)))
		}
	})
	if r.N == 0 {
		return Result{}
	}
	us := (float64(r.T.Nanoseconds()) / 1e3) / float64(r.N)
	return Result{MBPerSec: float64(r.Bytes) / us}
}
