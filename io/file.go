package io

import (
	"os"
)

// LoadFile loads a program image from path.
func LoadFile(path string, hex bool) (image []byte, err error) {
	defer func() {
		if err != nil {
			err = &ErrLoad{Path: path, Err: err}
		}
	}()

	file, err := os.Open(path)
	if err != nil {
		return
	}
	defer file.Close()

	var ch Channel
	if hex {
		ch = &Tape{Input: file}
	} else {
		ch = &Rom{Input: file}
	}

	image, err = Load(ch)
	return
}

// SaveFile writes a program image to path.
func SaveFile(path string, hex bool, image []byte) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return
	}

	var ch Channel
	if hex {
		ch = &Tape{Output: file}
	} else {
		ch = &Rom{Output: file}
	}

	err = ch.Send(image)
	cerr := file.Close()
	if err == nil {
		err = cerr
	}

	return
}
