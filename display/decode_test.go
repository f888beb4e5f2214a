package display

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/i8080/emulator"
)

func pixelAt(pix []byte, x, y int) []byte {
	index := (y*emulator.SCREEN_WIDTH + x) * PIXEL_BYTES
	return pix[index : index+PIXEL_BYTES]
}

func TestDecode(t *testing.T) {
	assert := assert.New(t)

	fb := make([]byte, FRAME_BYTES)
	pix := make([]byte, emulator.SCREEN_WIDTH*emulator.SCREEN_HEIGHT*PIXEL_BYTES)

	Decode(fb, pix)
	for y := range emulator.SCREEN_HEIGHT {
		for x := range emulator.SCREEN_WIDTH {
			if !assert.Equal(PixelOff[:], pixelAt(pix, x, y), "%d,%d", x, y) {
				return
			}
		}
	}

	table := [](struct {
		name  string
		index int
		value byte
		x, y  int
	}){
		{"first_msb", 0, 0x80, 0, 255},
		{"first_lsb", 0, 0x01, 0, 248},
		{"column_top", 31, 0x01, 0, 0},
		{"second_column", 32, 0x80, 1, 255},
		{"last", FRAME_BYTES - 1, 0x01, 223, 0},
	}

	for _, entry := range table {
		clear(fb)
		fb[entry.index] = entry.value
		Decode(fb, pix)

		assert.Equal(PixelOn[:], pixelAt(pix, entry.x, entry.y), entry.name)
		assert.True(Pixel(fb, entry.x, entry.y), entry.name)

		lit := 0
		for n := 0; n < len(pix); n += PIXEL_BYTES {
			if pix[n] != 0 {
				lit++
			}
		}
		assert.Equal(1, lit, entry.name)
	}
}

func TestDecode_Short(t *testing.T) {
	assert := assert.New(t)

	pix := make([]byte, emulator.SCREEN_WIDTH*emulator.SCREEN_HEIGHT*PIXEL_BYTES)
	Decode([]byte{0xff}, pix)

	assert.Equal(PixelOn[:], pixelAt(pix, 0, 255))
	assert.Equal(PixelOn[:], pixelAt(pix, 0, 248))
	assert.Equal(PixelOff[:], pixelAt(pix, 0, 247))
	assert.False(Pixel([]byte{0xff}, 1, 255))
}
