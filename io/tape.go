package io

import (
	"bufio"
	"fmt"
	"io"
	"iter"
	"slices"
	"strconv"
	"strings"
)

// TAPE_COLUMNS is the default number of tokens per line sent to a tape.
const TAPE_COLUMNS = 16

// Tape is a hex text image: whitespace separated tokens, each one byte
// written as one or two hexadecimal digits.
type Tape struct {
	Input   io.Reader
	Output  io.Writer
	Columns int // Tokens per output line. Zero selects TAPE_COLUMNS.
}

var _ Channel = (*Tape)(nil)

// Receive yields the value of each token in the input stream. A malformed
// token yields an ErrToken.
func (tc *Tape) Receive() iter.Seq2[byte, error] {
	return func(yield func(value byte, err error) bool) {
		if tc.Input == nil {
			yield(0, ErrNoInput)
			return
		}

		scanner := bufio.NewScanner(tc.Input)
		scanner.Split(bufio.ScanWords)

		position := 0
		for scanner.Scan() {
			token := scanner.Text()
			position++

			value, err := strconv.ParseUint(token, 16, 8)
			if err != nil {
				yield(0, &ErrToken{Position: position, Token: token})
				return
			}

			if !yield(byte(value), nil) {
				return
			}
		}

		if err := scanner.Err(); err != nil {
			yield(0, err)
		}
	}
}

// Send writes the image as upper case hex tokens, Columns per line.
func (tc *Tape) Send(image []byte) (err error) {
	if tc.Output == nil {
		err = ErrNoOutput
		return
	}

	columns := tc.Columns
	if columns <= 0 {
		columns = TAPE_COLUMNS
	}

	output := bufio.NewWriter(tc.Output)
	for line := range slices.Chunk(image, columns) {
		tokens := make([]string, len(line))
		for n, value := range line {
			tokens[n] = fmt.Sprintf("%02X", value)
		}
		_, err = fmt.Fprintln(output, strings.Join(tokens, " "))
		if err != nil {
			return
		}
	}

	err = output.Flush()
	return
}
