// Command radix4 encodes or decodes Radix4 text from stdin to stdout.
package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/pflag"
	"github.com/vstakhov/radix4"
)

func main() {
	var decode = pflag.BoolP("decode", "d", false, "Decode Radix4 input instead of encoding.")
	var streaming = pflag.BoolP("stream", "s", false, "Use stream mode instead of block mode.")
	var optimistic = pflag.BoolP("optimistic", "o", true, "Copy a leading radix-free prefix through without radix characters, followed by a terminator marker.")
	var terminated = pflag.BoolP("terminated", "t", true, "Append a trailing terminator byte.")
	var lineLength = pflag.IntP("line-length", "l", 0, "Insert a line break after this many output characters. 0 disables line breaks.")
	var terminator = pflag.StringP("terminator", "T", ".", "Terminator character.")

	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "radix4 - a Radix4 binary-to-text codec.\n\n")
		fmt.Fprintf(os.Stderr, "Usage: radix4 [options] < input > output\n\n")
		pflag.PrintDefaults()
	}
	pflag.Parse()

	if len(*terminator) != 1 {
		log.Fatalf("radix4: --terminator must be exactly one character, got %q", *terminator)
	}

	builder := radix4.NewBuilder().
		Streaming(*streaming).
		Optimistic(*optimistic).
		Terminated(*terminated).
		Terminator((*terminator)[0])
	if *lineLength > 0 {
		builder = builder.LineLength(*lineLength)
	}

	codec, err := builder.Build()
	if err != nil {
		log.Fatalf("radix4: invalid configuration: %v", err)
	}

	input, err := io.ReadAll(os.Stdin)
	if err != nil {
		log.Fatalf("radix4: reading stdin: %v", err)
	}

	if *decode {
		out, err := codec.DecodeFromBytes(input)
		if err != nil {
			log.Fatalf("radix4: decode failed: %v", err)
		}
		os.Stdout.Write(out)
		return
	}

	out, err := codec.EncodeToBytes(input)
	if err != nil {
		log.Fatalf("radix4: encode failed: %v", err)
	}
	os.Stdout.Write(out)
}
