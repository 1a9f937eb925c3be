package main

import (
	"bytes"
	"encoding/hex"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/edsrzf/mmap-go"
	"github.com/wbrown/proquint"
)

type countingReader struct {
	reader io.Reader
	count  uint64
}

func (cr *countingReader) Read(p []byte) (int, error) {
	n, err := cr.reader.Read(p)
	cr.count += uint64(n)
	return n, err
}

func main() {
	sep := flag.String("sep", proquint.DEFAULT_SEP,
		"separator between quints")
	inputFile := flag.String("input", "",
		"read input from a file instead of the data argument")
	verbose := flag.Bool("verbose", false,
		"report sizes and timing to stderr")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(),
			"Usage: %s [flags] encode|decode <data>\n"+
				"  encode: data is a hex string, or '-' to read raw "+
				"bytes from stdin\n"+
				"  decode: data is proquint text, or '-' to read it "+
				"from stdin\n",
			os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	args := flag.Args()
	if len(args) < 1 {
		flag.Usage()
		log.Fatal("Must provide an action: encode or decode")
	}
	action := args[0]
	if action != "encode" && action != "decode" {
		flag.Usage()
		log.Fatalf("Unknown action: %s", action)
	}
	if *inputFile == "" && len(args) < 2 {
		flag.Usage()
		log.Fatal("Must provide data, '-' for stdin, or -input")
	}

	codec := &proquint.Codec{Separator: *sep}
	start := time.Now()

	// Resolve the input into a reader for stream-shaped sources, or into
	// bytes for the small command-line arguments.
	var reader io.Reader
	var argBytes []byte
	switch {
	case *inputFile != "":
		file, err := os.Open(*inputFile)
		if err != nil {
			log.Fatal(err)
		}
		defer file.Close()
		fileMmap, mmapErr := mmap.Map(file, mmap.RDONLY, 0)
		if mmapErr != nil {
			log.Fatalf("error trying to mmap file: %s", mmapErr)
		}
		defer fileMmap.Unmap()
		reader = bytes.NewReader(fileMmap)
	case args[1] == "-":
		reader = os.Stdin
	case action == "encode":
		hexBytes, err := hex.DecodeString(args[1])
		if err != nil {
			log.Fatalf("error parsing hex data: %s", err)
		}
		argBytes = hexBytes
	default:
		argBytes = []byte(args[1])
	}

	counted := &countingReader{reader: reader}
	var outBytes uint64
	switch action {
	case "encode":
		var encoded string
		var err error
		if reader != nil {
			encoded, err = codec.EncodeReader(counted)
		} else {
			counted.count = uint64(len(argBytes))
			encoded, err = codec.Encode(argBytes)
		}
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println(encoded)
		outBytes = uint64(len(encoded))
	case "decode":
		var text string
		if reader != nil {
			raw, err := io.ReadAll(counted)
			if err != nil {
				log.Fatal(err)
			}
			text = string(raw)
		} else {
			counted.count = uint64(len(argBytes))
			text = string(argBytes)
		}
		payload, err := codec.Decode(strings.TrimSpace(text))
		if err != nil {
			log.Fatal(err)
		}
		if _, err := os.Stdout.Write(payload); err != nil {
			log.Fatal(err)
		}
		outBytes = uint64(len(payload))
	}

	if *verbose {
		log.Printf("%s: %s in, %s out in %v", action,
			humanize.Bytes(counted.count), humanize.Bytes(outBytes),
			time.Since(start))
	}
}
