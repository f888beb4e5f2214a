package io

import (
	"errors"

	"github.com/ezrec/i8080/translate"
)

var f = translate.From

var (
	// Image errors
	ErrImageTooLarge = errors.New(f("image larger than memory"))
	ErrNoOutput      = errors.New(f("channel has no output"))
	ErrNoInput       = errors.New(f("channel has no input"))
)

// ErrToken is a malformed token in a hex text image.
type ErrToken struct {
	Position int    // 1-based token index.
	Token    string // Literal token text.
}

func (err *ErrToken) Error() string {
	return f("failed to parse opcode at: %d '%v'", err.Position, err.Token)
}

// ErrLoad is a failure to load a program image from a file.
type ErrLoad struct {
	Path string
	Err  error
}

func (err *ErrLoad) Error() string {
	return f("%v: %v", err.Path, err.Err)
}

func (err *ErrLoad) Unwrap() error {
	return err.Err
}
