// Package io provides program image channels for the i8080 emulator.
// A channel receives an image from a stream in its own format, and sends
// an image back out in the same format: raw binary (Rom) or whitespace
// separated hexadecimal text (Tape).
package io

import (
	"iter"

	"github.com/ezrec/i8080/cpu"
)

// Channel defines the interface for all program image channels.
type Channel interface {
	// Receive returns an iterator that yields image bytes from the channel.
	// The iteration stops after the first error.
	Receive() iter.Seq2[byte, error]
	// Send writes an image to the channel.
	Send(image []byte) error
}

// Load receives a complete image from a channel.
func Load(ch Channel) (image []byte, err error) {
	for value, rerr := range ch.Receive() {
		if rerr != nil {
			err = rerr
			return
		}
		if len(image) == cpu.MEMORY_SIZE {
			err = ErrImageTooLarge
			return
		}
		image = append(image, value)
	}

	return
}
