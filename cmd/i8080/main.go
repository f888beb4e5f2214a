package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/ezrec/i8080/display"
	"github.com/ezrec/i8080/emulator"
	"github.com/ezrec/i8080/io"
	"github.com/ezrec/i8080/monitor"
)

func main() {
	name := filepath.Base(os.Args[0])

	log.SetFlags(0)
	log.SetPrefix(name + ": ")

	conf, err := parseArgs(name, os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		log.Fatalf("%v", err)
	}

	err = run(conf)
	if err != nil {
		log.Fatalf("%v", err)
	}
}

func run(conf config) (err error) {
	image, err := io.LoadFile(conf.path, conf.hex)
	if err != nil {
		return
	}

	emu := emulator.NewEmulator()
	emu.Verbose = conf.verbose

	err = emu.Load(image)
	if err != nil {
		return
	}

	for _, addr := range conf.breaks {
		emu.AddBreakpoint(addr)
	}

	if conf.stats {
		launchStats(os.Stderr)
	}

	emu.Resume()

	if !conf.headless {
		win := display.NewWindow(emu)
		win.Verbose = conf.verbose
		win.StepsPerFrame = conf.steps
		win.Scale = conf.scale

		err = win.Run()
		if !errors.Is(err, display.ErrNoDisplay) {
			return
		}
		log.Printf("%v, running headless", err)
	}

	return runHeadless(emu, conf.limit)
}

// runHeadless runs the emulator until it halts. Ctrl-C, a breakpoint or a
// runtime error enters the monitor.
func runHeadless(emu *emulator.Emulator, limit int) (err error) {
	total := 0

	for {
		remain := 0
		if limit > 0 {
			remain = limit - total
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		steps, rerr := emu.Run(ctx, remain)
		stop()

		total += steps

		switch {
		case errors.Is(rerr, context.Canceled):
			emu.Pause()
			fmt.Printf("\ninterrupted at %04X\n", emu.Cpu.PC)
		case rerr != nil:
			fmt.Printf("%v\n", rerr)
		case emu.Cpu.Running:
			log.Printf("stopped after %d instructions", total)
			return
		case emu.AtBreakpoint():
			fmt.Printf("breakpoint at %04X\n", emu.Cpu.PC)
		default:
			fmt.Printf("%v", emu.Cpu)
			return
		}

		var action monitor.Action
		action, err = runMonitor(emu)
		if err != nil || action == monitor.ACTION_QUIT {
			return
		}
	}
}
