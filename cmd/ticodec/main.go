// Command ticodec is a thin CLI front end for the tiwave wavelet/SPIHT
// image codec: it reads a PGM/PPM file, encodes or decodes it, and
// writes the result back out.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/asimakov/tiwave/codec"
	"github.com/asimakov/tiwave/imageio"
	"github.com/asimakov/tiwave/tiwave"
)

// minEncodeSize is a coarse, type-agnostic floor on -s, checked before
// the input is read. tiwave.Codec.Encode separately enforces its own
// per-type minimum (container.HeaderSize+2 bytes for grayscale,
// container.HeaderSize+6 for truecolor).
const minEncodeSize = 26

func usage() {
	fmt.Fprint(os.Stderr, `ticodec - lossy image compressor based on tiwave

Usage: ticodec [options]
  -e               encode image
  -d               decode image
  -i <filename>    input file name
  -o <filename>    output file name
  -s <num>         desired encoded file size in bytes (encode only)
  -B               use Butterworth wavelet transform
  -D               use Daubechies 9/7 wavelet transform (default)
  -l <num>         number of DWT transform levels (default: automatic)
  -y <num>         bit budget (in %) for the Y channel (default 90)
  -b <num>         bit budget (in %) for the Cb channel (default 5)
  -r <num>         bit budget (in %) for the Cr channel (default 5)

Note: -y, -b and -r must either all be omitted or sum to 100.

Examples:
  ticodec -e -i foobar.ppm -o foobar.ti -s 7777
  ticodec -d -i somefile.ti -o somefile.pgm
  ticodec -e -i test.ppm -o test.ti -s 10000 -B -l 9 -y 70 -b 20 -r 10
`)
	os.Exit(1)
}

type cliArgs struct {
	encode, decode       bool
	input, output        string
	size                 int
	butterworth, daub    bool
	levels               int
	lum, cb, cr          int
	lumSet, cbSet, crSet bool
}

func parseArgs() cliArgs {
	var a cliArgs
	var lumFlag, cbFlag, crFlag = -1, -1, -1

	flag.BoolVar(&a.encode, "e", false, "encode image")
	flag.BoolVar(&a.decode, "d", false, "decode image")
	flag.StringVar(&a.input, "i", "", "input file name")
	flag.StringVar(&a.output, "o", "", "output file name")
	flag.IntVar(&a.size, "s", 0, "desired encoded file size in bytes")
	flag.BoolVar(&a.butterworth, "B", false, "use Butterworth wavelet transform")
	flag.BoolVar(&a.daub, "D", false, "use Daubechies 9/7 wavelet transform")
	flag.IntVar(&a.levels, "l", 0, "number of DWT transform levels")
	flag.IntVar(&lumFlag, "y", -1, "bit budget (in %) for the Y channel")
	flag.IntVar(&cbFlag, "b", -1, "bit budget (in %) for the Cb channel")
	flag.IntVar(&crFlag, "r", -1, "bit budget (in %) for the Cr channel")
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() != 0 {
		usage()
	}

	if lumFlag >= 0 {
		a.lum, a.lumSet = lumFlag, true
	}
	if cbFlag >= 0 {
		a.cb, a.cbSet = cbFlag, true
	}
	if crFlag >= 0 {
		a.cr, a.crSet = crFlag, true
	}

	if !validateArgs(a) {
		usage()
	}

	return a
}

// validateArgs reports whether a describes a coherent invocation. It
// is kept free of flag/os so it can be exercised directly by tests.
func validateArgs(a cliArgs) bool {
	if a.encode == a.decode {
		return false
	}
	if a.input == "" || a.output == "" {
		return false
	}
	if a.butterworth && a.daub {
		return false
	}

	ratioFlagsSet := 0
	for _, set := range []bool{a.lumSet, a.cbSet, a.crSet} {
		if set {
			ratioFlagsSet++
		}
	}

	if a.encode {
		if a.size < minEncodeSize {
			return false
		}
		if ratioFlagsSet != 0 && ratioFlagsSet != 3 {
			return false
		}
		if ratioFlagsSet == 3 {
			if a.lum <= 0 || a.cb <= 0 || a.cr <= 0 {
				return false
			}
			if a.lum+a.cb+a.cr != 100 {
				return false
			}
		}
		return true
	}

	return a.size == 0 && a.levels == 0 && ratioFlagsSet == 0 && !a.butterworth && !a.daub
}

func main() {
	a := parseArgs()

	if a.encode {
		compressFile(a)
	} else {
		decompressFile(a)
	}
}

func compressFile(a cliArgs) {
	in, err := os.Open(a.input)
	if err != nil {
		log.Fatalf("open input: %v", err)
	}
	defer in.Close()

	hdr, err := imageio.ReadHeader(in)
	if err != nil {
		log.Fatalf("read image header: %v", err)
	}

	pixels := make([]byte, hdr.Width*hdr.Height*hdr.Components())
	if _, err := io.ReadFull(in, pixels); err != nil {
		log.Fatalf("read pixel data: %v", err)
	}

	wavelet := tiwave.WaveletDaub97
	if a.butterworth {
		wavelet = tiwave.WaveletButterworth
	}

	opts := &tiwave.Options{
		Wavelet:     wavelet,
		DesiredSize: a.size,
		Scales:      a.levels,
		LumRatio:    a.lum,
		CbRatio:     a.cb,
		CrRatio:     a.cr,
	}

	c := tiwave.NewCodec()
	encoded, err := c.Encode(codec.EncodeParams{
		PixelData:  pixels,
		Width:      hdr.Width,
		Height:     hdr.Height,
		Components: hdr.Components(),
		BitDepth:   8,
		Options:    opts,
	})
	if err != nil {
		log.Fatalf("TiCompress failed: %v", err)
	}

	out, err := os.Create(a.output)
	if err != nil {
		log.Fatalf("create output: %v", err)
	}
	defer out.Close()

	if _, err := out.Write(encoded); err != nil {
		log.Fatalf("write output: %v", err)
	}

	p := message.NewPrinter(language.English)
	p.Printf("encoded %d bytes -> %d bytes\n", len(pixels), len(encoded))
}

func decompressFile(a cliArgs) {
	data, err := os.ReadFile(a.input)
	if err != nil {
		log.Fatalf("read input: %v", err)
	}

	c := tiwave.NewCodec()
	result, err := c.Decode(data)
	if err != nil {
		log.Fatalf("TiDecompress failed: %v", err)
	}

	out, err := os.Create(a.output)
	if err != nil {
		log.Fatalf("create output: %v", err)
	}
	defer out.Close()

	typ := byte(imageio.PGM)
	if result.Components == 3 {
		typ = imageio.PPM
	}

	if err := imageio.WriteHeader(out, typ, result.Width, result.Height); err != nil {
		log.Fatalf("write image header: %v", err)
	}
	if _, err := out.Write(result.PixelData); err != nil {
		log.Fatalf("write pixel data: %v", err)
	}

	p := message.NewPrinter(language.English)
	p.Printf("decoded %d bytes -> %dx%d, %d bytes\n", len(data), result.Width, result.Height, len(result.PixelData))
}
