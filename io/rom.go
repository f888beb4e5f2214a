package io

import (
	"bufio"
	"errors"
	"io"
	"iter"
)

// Rom is a raw binary image, loaded verbatim from address zero.
type Rom struct {
	Input  io.Reader
	Output io.Writer
}

var _ Channel = (*Rom)(nil)

// Receive yields the bytes of the input stream.
func (rc *Rom) Receive() iter.Seq2[byte, error] {
	return func(yield func(value byte, err error) bool) {
		if rc.Input == nil {
			yield(0, ErrNoInput)
			return
		}

		input := bufio.NewReader(rc.Input)
		for {
			value, err := input.ReadByte()
			if errors.Is(err, io.EOF) {
				return
			}
			if !yield(value, err) || err != nil {
				return
			}
		}
	}
}

// Send writes the image verbatim.
func (rc *Rom) Send(image []byte) (err error) {
	if rc.Output == nil {
		err = ErrNoOutput
		return
	}

	_, err = rc.Output.Write(image)
	return
}
