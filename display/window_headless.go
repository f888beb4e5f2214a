//go:build headless

package display

// Run is unavailable without a display.
func (w *Window) Run() error {
	return ErrNoDisplay
}
