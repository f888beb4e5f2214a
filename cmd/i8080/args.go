package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/ezrec/i8080/cpu"
	"github.com/ezrec/i8080/emulator"
	"github.com/ezrec/i8080/translate"
)

var f = translate.From

var ErrInvalidArguments = errors.New(f("invalid arguments"))

// breakList collects repeated -break flags.
type breakList []uint16

func (bl *breakList) String() string {
	var list []string
	for _, addr := range *bl {
		list = append(list, fmt.Sprintf("%04X", addr))
	}
	return strings.Join(list, ",")
}

func (bl *breakList) Set(text string) (err error) {
	value, err := cpu.ParseValue(text)
	if err != nil {
		return
	}

	if value < 0 || value >= cpu.MEMORY_SIZE {
		err = fmt.Errorf("%w: %v", cpu.ErrValueRange, text)
		return
	}

	*bl = append(*bl, uint16(value))
	return
}

type config struct {
	path     string    // Image to load.
	hex      bool      // Image is hex text, not raw binary.
	verbose  bool      // Trace every instruction.
	headless bool      // No window; Ctrl-C enters the monitor.
	breaks   breakList // Initial breakpoints.
	steps    int       // Instructions per displayed frame.
	scale    int       // Window scale.
	stats    bool      // Serve runtime statistics.
	limit    int       // Instruction limit, 0 for none.
}

// parseArgs parses the command line, without the program name.
func parseArgs(name string, args []string, output io.Writer) (conf config, err error) {
	var binPath, hexPath string

	flags := flag.NewFlagSet(name, flag.ContinueOnError)
	flags.SetOutput(output)
	flags.Usage = func() {
		fmt.Fprintf(output, "usage: %v [options] (-b image.bin | -t image.hex)\n", name)
		flags.PrintDefaults()
	}

	flags.StringVar(&binPath, "b", "", "raw binary image to run")
	flags.StringVar(&hexPath, "t", "", "hex text image to run")
	flags.BoolVar(&conf.verbose, "v", false, "verbose instruction trace")
	flags.BoolVar(&conf.headless, "headless", false, "run without a window; Ctrl-C enters the monitor")
	flags.Var(&conf.breaks, "break", "breakpoint address (repeatable)")
	flags.IntVar(&conf.steps, "steps", emulator.STEPS_PER_FRAME, "instructions per displayed frame")
	flags.IntVar(&conf.scale, "scale", 2, "window scale")
	flags.BoolVar(&conf.stats, "stats", false, "serve runtime statistics")
	flags.IntVar(&conf.limit, "max", 0, "headless: stop after this many instructions (0 is unlimited)")

	err = flags.Parse(args)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		err = fmt.Errorf("%w: %w", ErrInvalidArguments, err)
		return
	}

	switch {
	case flags.NArg() != 0:
		err = fmt.Errorf("%w: unknown arguments %v", ErrInvalidArguments, flags.Args())
	case len(binPath) != 0 && len(hexPath) != 0:
		err = fmt.Errorf("%w: -b and -t are exclusive", ErrInvalidArguments)
	case len(binPath) != 0:
		conf.path = binPath
	case len(hexPath) != 0:
		conf.path = hexPath
		conf.hex = true
	default:
		err = fmt.Errorf("%w: one of -b or -t is required", ErrInvalidArguments)
	}
	if err != nil {
		return
	}

	if conf.steps <= 0 || conf.scale <= 0 || conf.limit < 0 {
		err = fmt.Errorf("%w: -steps and -scale must be positive, -max not negative", ErrInvalidArguments)
		return
	}

	return
}
