package bench

import (
	"bytes"
	"testing"
)

func TestPipelineRoundTrip(t *testing.T) {
	input := bytes.Repeat([]byte("the quick brown fox jumps over the lazy dog"), 64)
	for _, codec := range []Codec{CodecFlate, CodecXZ} {
		for _, chunkBits := range []int{1, 7, 8, 32, 128} {
			got, err := Pipeline(codec, input, chunkBits)
			if err != nil {
				t.Fatalf("codec=%d chunkBits=%d: %v", codec, chunkBits, err)
			}
			if !bytes.Equal(got, input) {
				t.Errorf("codec=%d chunkBits=%d: round-trip mismatch", codec, chunkBits)
			}
		}
	}
}
