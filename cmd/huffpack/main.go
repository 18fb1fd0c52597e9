package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/op/go-logging"

	"github.com/chronos-tachyon/huffpack"
)

const progName = "huffpack"

const usageMessageRaw = `
Usage: huffpack OPTIONS SUBCOMMAND...

Subcommands:
  compress INPUT OUTPUT
	Compress the file INPUT and write the compressed blob to OUTPUT,
	reporting the space saved.

  decompress INPUT OUTPUT
	Decompress a blob produced by the compress subcommand and write
	the recovered bytes to OUTPUT.

  sample PATH
	Create a small demonstration file at PATH if it does not already
	exist, suitable as input for the compress subcommand.

Options:
`

var log = logging.MustGetLogger(progName)

var ourFlags *flag.FlagSet

func usageMessage() string {
	return strings.TrimLeft(usageMessageRaw, "\n")
}

func usageErrorf(detailFmt string, detailArgs ...interface{}) {
	detail := fmt.Sprintf(detailFmt, detailArgs...)
	fmt.Fprintf(os.Stderr, "%s: %s\n%s", progName, detail, usageMessage())
	ourFlags.PrintDefaults()
	os.Exit(64)
}

func exitError(err error) {
	fmt.Fprintf(os.Stderr, "%s: %s\n", progName, err.Error())
	os.Exit(1)
}

var argI int = 0

func nextArg(expected string) string {
	if !(argI < ourFlags.NArg()) {
		usageErrorf("not enough arguments; expected %s", expected)
	}
	arg := ourFlags.Arg(argI)
	argI++
	return arg
}

func endOfArgs() {
	if argI < ourFlags.NArg() {
		usageErrorf("too many arguments at %d (\"%s\")", argI, ourFlags.Arg(argI))
	}
}

func startLogging(debug bool) {
	backend := logging.NewLogBackend(os.Stderr, progName+": ", 0)
	formatSpec := "%{level:8s} | %{message}"
	formatter := logging.MustStringFormatter(formatSpec)
	formatted := logging.NewBackendFormatter(backend, formatter)
	leveled := logging.AddModuleLevel(formatted)
	if debug {
		leveled.SetLevel(logging.DEBUG, "")
	} else {
		leveled.SetLevel(logging.INFO, "")
	}
	logging.SetBackend(leveled)
}

func runCompress(inPath, outPath string) error {
	input, err := os.ReadFile(inPath)
	if err != nil {
		return err
	}
	blob, err := huffpack.Compress(input)
	if err != nil {
		return err
	}
	if err := os.WriteFile(outPath, blob, 0666); err != nil {
		_ = os.Remove(outPath)
		return err
	}

	before, after := len(input), len(blob)
	log.Infof("compressed %s (%d bytes) -> %s (%d bytes)", inPath, before, outPath, after)
	saved := 100.0 * (1.0 - float64(after)/float64(before))
	log.Infof("space saved: %.2f%%", saved)
	if after >= before {
		log.Noticef("output is not smaller than input; the %d-byte header dominates small or high-entropy files", huffpack.HeaderSize)
	}
	return nil
}

func runDecompress(inPath, outPath string) error {
	blob, err := os.ReadFile(inPath)
	if err != nil {
		return err
	}
	output, err := huffpack.Decompress(blob)
	if err != nil {
		return err
	}
	if err := os.WriteFile(outPath, output, 0666); err != nil {
		_ = os.Remove(outPath)
		return err
	}
	log.Infof("decompressed %s (%d bytes) -> %s (%d bytes)", inPath, len(blob), outPath, len(output))
	return nil
}

const sampleText = "This is a sample file for Huffman compression demonstration.\n" +
	"abracadabra abracadabra abracadabra abracadabra abracadabra\n" +
	"aaaaaaaaaabbbbbcccdde aaaaaaaaaabbbbbcccdde aaaaaaaaaabbbbbcccdde\n"

func runSample(path string) error {
	if _, err := os.Stat(path); err == nil {
		log.Infof("sample file %s already exists, leaving it alone", path)
		return nil
	}
	if err := os.WriteFile(path, []byte(sampleText), 0666); err != nil {
		return err
	}
	log.Infof("created sample file %s (%d bytes)", path, len(sampleText))
	return nil
}

func main() {
	ourFlags = flag.NewFlagSet(progName, flag.ExitOnError)
	debug := ourFlags.Bool("debug", false, "enable debug logging")
	ourFlags.Usage = func() {
		fmt.Fprint(os.Stderr, usageMessage())
		ourFlags.PrintDefaults()
	}
	_ = ourFlags.Parse(os.Args[1:])
	startLogging(*debug)

	var err error
	switch subcommand := nextArg("subcommand"); subcommand {
	case "compress":
		inPath := nextArg("input path")
		outPath := nextArg("output path")
		endOfArgs()
		err = runCompress(inPath, outPath)
	case "decompress":
		inPath := nextArg("input path")
		outPath := nextArg("output path")
		endOfArgs()
		err = runDecompress(inPath, outPath)
	case "sample":
		path := nextArg("sample path")
		endOfArgs()
		err = runSample(path)
	default:
		usageErrorf("unknown subcommand \"%s\"", subcommand)
	}
	if err != nil {
		exitError(err)
	}
}
