//go:build !ebiten

package app

import (
	"ctext/internal/texture"

	"github.com/pkg/errors"
)

// Viewer is a placeholder that satisfies the API expected by the GUI build.
type Viewer struct{}

// NewViewer panics to indicate that the ebiten build tag is required for GUI support.
func NewViewer(texture.Config, int64, int, string) *Viewer {
	panic("app.NewViewer requires building with the 'ebiten' tag")
}

// Reset is a no-op placeholder.
func (v *Viewer) Reset(int64) {}

// Update always reports that the GUI build tag is missing.
func (v *Viewer) Update() error {
	return errors.New("app.Viewer.Update requires building with the 'ebiten' tag")
}

// Draw is a no-op placeholder to satisfy the interface shape.
func (v *Viewer) Draw(any) {}

// Layout returns zeros in the headless build.
func (v *Viewer) Layout(int, int) (int, int) { return 0, 0 }
