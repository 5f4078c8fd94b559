// This tool prints the chunk layout and the fmt fields of the passed wav file.
package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/quikka/quikka"
	"github.com/sirupsen/logrus"
)

const missingPathMessage = "You must pass the path of the file to inspect"

var errMissingPath = errors.New("missing path argument")

func main() {
	err := run(os.Args[1:], os.Stdout)
	if err == nil {
		return
	}

	if errors.Is(err, errMissingPath) {
		fmt.Println(missingPathMessage)
		os.Exit(1)
	}

	logrus.Fatal(err)
}

func run(args []string, out io.Writer) error {
	if len(args) < 1 {
		return errMissingPath
	}

	buf, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}

	chunks, err := quikka.ListChunks(bytes.NewReader(buf))
	if err != nil {
		return err
	}

	fmt.Fprintln(out, "Chunks:")

	for _, c := range chunks {
		fmt.Fprintf(out, "\t%s\n", c)
	}

	w, err := quikka.Decode(buf)
	if err != nil {
		return fmt.Errorf("not a canonical PCM wav: %w", err)
	}

	fmt.Fprintf(out, "Channels: %d\n", w.Format.NumChannels)
	fmt.Fprintf(out, "SampleRate: %d\n", w.Format.SampleRate)
	fmt.Fprintf(out, "ByteRate: %d\n", w.Format.ByteRate)
	fmt.Fprintf(out, "BlockAlign: %d\n", w.Format.BlockAlign)
	fmt.Fprintf(out, "BitsPerSample: %d\n", w.Format.BitsPerSample)
	fmt.Fprintf(out, "Frames: %d\n", w.Frames())
	fmt.Fprintf(out, "Duration: %s\n", w.Duration())

	if err := w.Validate(); err != nil {
		fmt.Fprintf(out, "Warning: %v\n", err)
	}

	return nil
}
