// This tool applies a named transform to a PCM wav file and writes the result
// as <stem>_quikka.wav into the output directory.
//
//	quikka [flags] <operation> <file>
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/quikka/quikka"
	"github.com/sirupsen/logrus"
)

const (
	missingFilenameMessage = "Please provide a filename!"
	outputSuffix           = "_quikka"
	logLevelEnv            = "QUIKKA_LOG_LEVEL"
)

var (
	errMissingFilename = errors.New("missing filename argument")
	errInteractiveMode = errors.New("interactive mode is not implemented, pass an operation and a file")
)

func main() {
	err := run(os.Args[1:], os.Stdout)
	if err == nil {
		return
	}

	if errors.Is(err, errMissingFilename) {
		fmt.Println(missingFilenameMessage)
		os.Exit(1)
	}

	logrus.Fatal(err)
}

func run(args []string, out io.Writer) error {
	flagSet := flag.NewFlagSet("quikka", flag.ContinueOnError)

	verbose := flagSet.Bool("v", false, "enable debug logging")
	writeAIFF := flagSet.Bool("aiff", false, "also write the result as <stem>_quikka.aif")
	list := flagSet.Bool("list", false, "list the available operations and exit")
	outDir := flagSet.String("out-dir", ".", "directory to write the output files to")

	if err := flagSet.Parse(args); err != nil {
		return err
	}

	if err := configureLogging(*verbose); err != nil {
		return err
	}

	registry := quikka.NewOperationRegistry()

	if *list {
		for _, op := range registry.Operations() {
			fmt.Fprintf(out, "%s\t%s\n", op.Name, op.Description)
		}

		return nil
	}

	rest := flagSet.Args()
	if len(rest) == 0 {
		return errInteractiveMode
	}

	op, err := registry.Lookup(rest[0])
	if err != nil {
		return err
	}

	if len(rest) < 2 {
		return errMissingFilename
	}

	inPath := rest[1]

	buf, err := os.ReadFile(inPath)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", inPath, err)
	}

	if err := op.Attach(buf); err != nil {
		return fmt.Errorf("%s: %w", inPath, err)
	}

	if err := op.Apply(); err != nil {
		return err
	}

	stem := outputStem(inPath)

	wavPath := filepath.Join(*outDir, stem+".wav")
	if err := op.WriteFile(wavPath); err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{
		"operation": op.Name,
		"input":     inPath,
		"output":    wavPath,
	}).Info("transformed wav")
	fmt.Fprintln(out, wavPath)

	if !*writeAIFF {
		return nil
	}

	aiffPath := filepath.Join(*outDir, stem+".aif")
	if err := writeAIFFFile(aiffPath, op.Wav()); err != nil {
		return err
	}

	fmt.Fprintln(out, aiffPath)

	return nil
}

// outputStem returns the input file name without directory and extension,
// with the output suffix appended.
func outputStem(path string) string {
	base := filepath.Base(path)

	return strings.TrimSuffix(base, filepath.Ext(base)) + outputSuffix
}

func writeAIFFFile(path string, w *quikka.Wav) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating %s: %w", path, err)
	}
	defer file.Close()

	if err := w.WriteAIFF(file); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	return file.Close()
}

func configureLogging(verbose bool) error {
	logrus.SetOutput(os.Stderr)
	logrus.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	level := logrus.InfoLevel

	if env := os.Getenv(logLevelEnv); env != "" {
		parsed, err := logrus.ParseLevel(env)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", logLevelEnv, err)
		}

		level = parsed
	}

	if verbose {
		level = logrus.DebugLevel
	}

	logrus.SetLevel(level)
	quikka.SetLogger(logrus.WithField("cmd", "quikka"))

	return nil
}
