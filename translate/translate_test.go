package translate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFrom(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("opcode 0x08 at 0x0000", From("opcode 0x%02x at 0x%04x", 8, 0))
	assert.Equal("line 3 'NOP' bad", From("line %d '%v' %v", 3, "NOP", "bad"))
	assert.NotEqual("", Language().String())
}
