// Command bitiobench measures the throughput of repacking a file through
// bitio.Writer/Reader underneath a compressor, across a few chunk-size and
// codec combinations.
//
// Example usage:
//
//	$ go build -o bitiobench ./cmd/bitiobench
//	$ ./bitiobench -codecs flate,xz -chunks 1,7,32,128 -file testdata/twain.txt
package main

import (
	"flag"
	"regexp"
	"strconv"

	"github.com/charmbracelet/log"
	dsstrconv "github.com/dsnet/golib/strconv"

	"github.com/dsnet/bitio/internal/bench"
	"github.com/dsnet/bitio/internal/testutil"
)

var sep = regexp.MustCompile("[,:]")

var codecsByName = map[string]bench.Codec{
	"flate": bench.CodecFlate,
	"xz":    bench.CodecXZ,
}

func main() {
	fFile := flag.String("file", "", "input file to benchmark (required)")
	fCodecs := flag.String("codecs", "flate,xz", "list of codecs to benchmark")
	fChunks := flag.String("chunks", "1,7,8,32,128", "list of chunk sizes (bits) to benchmark")
	flag.Parse()

	if *fFile == "" {
		log.Fatal("bitiobench: -file is required")
	}
	input, err := testutil.LoadFile(*fFile, -1)
	if err != nil {
		log.Fatal("bitiobench: failed to load input file", "file", *fFile, "err", err)
	}

	var codecs []bench.Codec
	for _, s := range sep.Split(*fCodecs, -1) {
		c, ok := codecsByName[s]
		if !ok {
			log.Fatal("bitiobench: unknown codec", "codec", s)
		}
		codecs = append(codecs, c)
	}

	var chunks []int
	for _, s := range sep.Split(*fChunks, -1) {
		n, err := strconv.Atoi(s)
		if err != nil {
			log.Fatal("bitiobench: invalid chunk size", "chunk", s)
		}
		chunks = append(chunks, n)
	}

	log.Info("bitiobench: starting run", "file", *fFile, "bytes", len(input), "codecs", *fCodecs, "chunks", *fChunks)

	for name, codec := range codecsByName {
		found := false
		for _, c := range codecs {
			if c == codec {
				found = true
			}
		}
		if !found {
			continue
		}
		for _, chunkBits := range chunks {
			r := bench.Run(codec, input, chunkBits)
			rate := dsstrconv.FormatPrefix(r.MBPerSec*1e6, dsstrconv.Base1024, 2)
			log.Info("bitiobench: result", "codec", name, "chunk_bits", chunkBits, "rate", rate+"B/s")
		}
	}
}
