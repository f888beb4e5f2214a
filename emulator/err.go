package emulator

import (
	"github.com/ezrec/i8080/translate"
)

var f = translate.From

// ErrRuntime indicates the location of a runtime error.
type ErrRuntime struct {
	Address uint16 // Address of the failing instruction.
	LineNo  int    // Source line, when the image was assembled.
	Err     error
}

func (err *ErrRuntime) Error() string {
	if err.LineNo > 0 {
		return f("0x%04x (line %d) %v", err.Address, err.LineNo, err.Err)
	}
	return f("0x%04x %v", err.Address, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}
