//go:build !headless

package display

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/ezrec/i8080/emulator"
)

type game struct {
	*Window
	image *ebiten.Image
}

var _keys = map[ebiten.Key]Command{
	ebiten.KeyP:      CMD_PAUSE,
	ebiten.KeyN:      CMD_STEP,
	ebiten.KeyB:      CMD_BREAK,
	ebiten.KeyEscape: CMD_QUIT,
}

func (g *game) Update() error {
	if ebiten.IsWindowBeingClosed() {
		return ebiten.Termination
	}

	for key, cmd := range _keys {
		if !inpututil.IsKeyJustPressed(key) {
			continue
		}
		quit, err := g.Command(cmd)
		if quit {
			return ebiten.Termination
		}
		if err != nil {
			return err
		}
	}

	return g.Frame()
}

func (g *game) Draw(screen *ebiten.Image) {
	if g.image == nil {
		g.image = ebiten.NewImage(emulator.SCREEN_WIDTH, emulator.SCREEN_HEIGHT)
	}

	g.image.WritePixels(g.Pixels())
	screen.DrawImage(g.image, nil)

	emu := g.Emulator
	if !emu.Cpu.Running {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("PAUSED %04X", emu.Cpu.PC))
	}
}

func (g *game) Layout(_, _ int) (int, int) {
	return emulator.SCREEN_WIDTH, emulator.SCREEN_HEIGHT
}

// Run opens the window and runs the emulator until the window is closed
// or the emulator fails.
func (w *Window) Run() (err error) {
	scale := max(w.Scale, 1)

	ebiten.SetWindowSize(emulator.SCREEN_WIDTH*scale, emulator.SCREEN_HEIGHT*scale)
	ebiten.SetWindowTitle("i8080")
	ebiten.SetWindowResizable(true)
	ebiten.SetRunnableOnUnfocused(true)
	ebiten.SetWindowClosingHandled(true)

	err = ebiten.RunGame(&game{Window: w})
	return
}
