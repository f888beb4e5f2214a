// Package display renders the memory mapped framebuffer.
//
// Display memory is 224 columns of 32 bytes. Each column is drawn bottom
// to top, most significant bit first, which turns the 256x224 raster
// into a 224x256 upright screen.
package display

import (
	"github.com/ezrec/i8080/cpu"
	"github.com/ezrec/i8080/emulator"
)

const (
	COLUMN_BYTES = emulator.SCREEN_HEIGHT / 8                  // Bytes per displayed column.
	PIXEL_BYTES  = 4                                           // RGBA
	FRAME_BYTES  = cpu.FRAMEBUFFER_END - cpu.FRAMEBUFFER_START // Bytes of display memory.
)

// Pixel colours, RGBA.
var (
	PixelOn  = [PIXEL_BYTES]byte{0xff, 0xff, 0xff, 0xff}
	PixelOff = [PIXEL_BYTES]byte{0x00, 0x00, 0x00, 0xff}
)

// Decode converts display memory into SCREEN_WIDTH x SCREEN_HEIGHT RGBA
// pixels. pix must hold at least SCREEN_WIDTH*SCREEN_HEIGHT*4 bytes.
// Bytes past the end of fb are drawn as off.
func Decode(fb []byte, pix []byte) {
	for n := range emulator.SCREEN_WIDTH * COLUMN_BYTES {
		var value byte
		if n < len(fb) {
			value = fb[n]
		}

		x := n / COLUMN_BYTES
		for bit := range 8 {
			offset := (n%COLUMN_BYTES)*8 + bit
			y := emulator.SCREEN_HEIGHT - 1 - offset

			colour := PixelOff
			if value&(0x80>>bit) != 0 {
				colour = PixelOn
			}

			index := (y*emulator.SCREEN_WIDTH + x) * PIXEL_BYTES
			copy(pix[index:index+PIXEL_BYTES], colour[:])
		}
	}
}

// Pixel returns true if the display pixel at x, y is lit.
func Pixel(fb []byte, x, y int) bool {
	offset := emulator.SCREEN_HEIGHT - 1 - y
	n := x*COLUMN_BYTES + offset/8
	if n < 0 || n >= len(fb) {
		return false
	}

	return fb[n]&(0x80>>(offset%8)) != 0
}
