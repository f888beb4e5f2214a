package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/ezrec/i8080/cpu"
	"github.com/ezrec/i8080/emulator"
	"github.com/ezrec/i8080/io"
	"github.com/ezrec/i8080/translate"
)

var f = translate.From

var ErrDefineSyntax = errors.New(f("define must be NAME=VALUE"))

// defineList collects repeated -D flags.
type defineList [][2]string

func (dl *defineList) String() string {
	var list []string
	for _, def := range *dl {
		list = append(list, def[0]+"="+def[1])
	}
	return strings.Join(list, ",")
}

func (dl *defineList) Set(text string) (err error) {
	name, value, ok := strings.Cut(text, "=")
	if !ok || len(name) == 0 {
		err = fmt.Errorf("%w: %v", ErrDefineSyntax, text)
		return
	}

	*dl = append(*dl, [2]string{name, value})
	return
}

// outputPath picks the output file name from the source name.
func outputPath(source string, hex bool) string {
	ext := ".bin"
	if hex {
		ext = ".hex"
	}

	return strings.TrimSuffix(source, filepath.Ext(source)) + ext
}

// assemble parses a source file into a memory image. The emulator's
// defines are visible to the source, and defines override them.
func assemble(source string, defines defineList, verbose bool) (image []byte, err error) {
	inf, err := os.Open(source)
	if err != nil {
		return
	}
	defer inf.Close()

	asm := &cpu.Assembler{Verbose: verbose}
	for name, value := range emulator.NewEmulator().Defines() {
		asm.Predefine(name, value)
	}
	for _, def := range defines {
		asm.Predefine(def[0], def[1])
	}

	prog, err := asm.Parse(inf)
	if err != nil {
		err = fmt.Errorf("%v:%w", source, err)
		return
	}

	image = prog.Binary()
	return
}

func main() {
	var output string
	var hex bool
	var verbose bool
	var defines defineList

	log.SetFlags(0)
	log.SetPrefix(filepath.Base(os.Args[0]) + ": ")

	flag.StringVar(&output, "o", "", "output file (default: source with .bin or .hex)")
	flag.BoolVar(&hex, "t", false, "write hex text instead of raw binary")
	flag.Var(&defines, "D", "predefine NAME=VALUE (repeatable)")
	flag.BoolVar(&verbose, "v", false, "verbose assembly")

	flag.Parse()

	if flag.NArg() != 1 {
		log.Fatalf("usage: %v [-t] [-o out] [-D NAME=VALUE]... source.asm", os.Args[0])
	}

	source := flag.Arg(0)
	if len(output) == 0 {
		output = outputPath(source, hex)
	}

	image, err := assemble(source, defines, verbose)
	if err != nil {
		log.Fatalf("%v", err)
	}

	err = io.SaveFile(output, hex, image)
	if err != nil {
		log.Fatalf("%v", err)
	}

	if verbose {
		log.Printf("%v: %d bytes", output, len(image))
	}
}
