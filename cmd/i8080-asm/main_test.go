package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ezrec/i8080/cpu"
	"github.com/ezrec/i8080/io"
)

func TestDefineList(t *testing.T) {
	assert := assert.New(t)

	var defines defineList
	assert.NoError(defines.Set("COUNT=5"))
	assert.NoError(defines.Set("EMPTY="))
	assert.ErrorIs(defines.Set("COUNT"), ErrDefineSyntax)
	assert.ErrorIs(defines.Set("=5"), ErrDefineSyntax)

	assert.Equal(defineList{{"COUNT", "5"}, {"EMPTY", ""}}, defines)
	assert.Equal("COUNT=5,EMPTY=", defines.String())
}

func TestOutputPath(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("game.bin", outputPath("game.asm", false))
	assert.Equal("dir/game.hex", outputPath("dir/game.asm", true))
	assert.Equal("game.bin", outputPath("game", false))
}

func TestAssemble(t *testing.T) {
	assert := assert.New(t)

	dir := t.TempDir()
	source := filepath.Join(dir, "fill.asm")
	require.NoError(t, os.WriteFile(source, []byte(
		"    MVI A,COUNT\n"+
			"    LXI H,FRAMEBUFFER_START\n"+
			"    MVI B,$(SCREEN_WIDTH // 8)\n"+
			"    HLT\n"), 0o644))

	var defines defineList
	require.NoError(t, defines.Set("COUNT=3"))

	image, err := assemble(source, defines, false)
	assert.NoError(err)
	assert.Equal([]byte{0x3e, 0x03, 0x21, 0x00, 0x24, 0x06, 0x1c, 0x76}, image)

	output := outputPath(source, true)
	require.NoError(t, io.SaveFile(output, true, image))
	back, err := io.LoadFile(output, true)
	assert.NoError(err)
	assert.Equal(image, back)

	_, err = assemble(source, nil, false)
	var missing cpu.ErrLabelMissing
	assert.ErrorAs(err, &missing)
	assert.Equal(cpu.ErrLabelMissing("COUNT"), missing)

	_, err = assemble(filepath.Join(dir, "missing.asm"), nil, false)
	assert.ErrorIs(err, os.ErrNotExist)
}
