package main

import (
	"io"
	"os"

	"golang.org/x/term"

	"github.com/ezrec/i8080/emulator"
	"github.com/ezrec/i8080/monitor"
)

const PROMPT = "(i8080) "

// runMonitor runs one monitor session on the controlling terminal.
// Without a terminal, commands are read from stdin as plain lines.
func runMonitor(emu *emulator.Emulator) (action monitor.Action, err error) {
	fd := int(os.Stdin.Fd())

	if !term.IsTerminal(fd) {
		mon := monitor.NewMonitor(emu, monitor.NewScanReader(os.Stdin), os.Stdout)
		return mon.Run()
	}

	state, err := term.MakeRaw(fd)
	if err != nil {
		return
	}
	defer func() { _ = term.Restore(fd, state) }()

	screen := struct {
		io.Reader
		io.Writer
	}{os.Stdin, os.Stdout}

	terminal := term.NewTerminal(screen, PROMPT)
	if width, height, serr := term.GetSize(fd); serr == nil {
		_ = terminal.SetSize(width, height)
	}

	mon := monitor.NewMonitor(emu, terminal, terminal)
	return mon.Run()
}
