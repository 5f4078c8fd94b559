// This tool writes a 16-bit PCM sine tone, handy as input for quikka.
package main

import (
	"encoding/binary"
	"flag"
	"fmt"
	"math"
	"os"

	"github.com/quikka/quikka"
	"github.com/sirupsen/logrus"
)

func main() {
	err := run(os.Args[1:])
	if err != nil {
		logrus.Fatal(err)
	}
}

func run(args []string) error {
	flagSet := flag.NewFlagSet("gen-sine", flag.ContinueOnError)

	output := flagSet.String("output", "output.wav", "filename to write to")
	frequency := flagSet.Float64("frequency", 440, "frequency in hertz to generate")
	length := flagSet.Float64("length", 5, "length in seconds of output file")
	channels := flagSet.Int("channels", 2, "number of identical channels")
	sampleRate := flagSet.Int("rate", 44100, "sample rate in hertz")

	err := flagSet.Parse(args)
	if err != nil {
		return err
	}

	if *channels < 1 || *sampleRate < 1 || !(*length >= 0) {
		return fmt.Errorf("channels (%d) and rate (%d) must be positive, length (%f) must not be negative", *channels, *sampleRate, *length)
	}

	logrus.WithFields(logrus.Fields{
		"length":    *length,
		"frequency": *frequency,
		"channels":  *channels,
		"rate":      *sampleRate,
	}).Info("generating sine wav")

	numChans := *channels
	numFrames := int(float64(*sampleRate) * *length)
	data := make([]byte, 0, numFrames*numChans*2)

	for i := range numFrames {
		fv := math.Sin(float64(i) / float64(*sampleRate) * *frequency * 2 * math.Pi)
		v := uint16(int16(math.Round(fv * 32767)))

		for range numChans {
			data = binary.LittleEndian.AppendUint16(data, v)
		}
	}

	w := quikka.New(numChans, *sampleRate, 16, data)

	if err := os.WriteFile(*output, w.Encode(), 0o644); err != nil {
		return fmt.Errorf("error creating %s: %w", *output, err)
	}

	return nil
}
