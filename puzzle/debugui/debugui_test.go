package debugui_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/plus3/stonestack/puzzle"
	"github.com/plus3/stonestack/puzzle/debugui"
)

func TestOverlayHidden(t *testing.T) {
	overlay := debugui.NewOverlay()
	calls := 0
	overlay.Add(func() { calls++ })
	overlay.Input.WantCaptureMouse = true

	scheduler := puzzle.NewScheduler()
	scheduler.Register(overlay)
	scheduler.Once(0.016)

	assert.Zero(t, calls, "hidden overlay renders nothing")
	assert.False(t, overlay.Input.WantCaptureMouse, "hidden overlay never captures input")

	overlay.Toggle()
	assert.True(t, overlay.Visible)
	overlay.Toggle()
	assert.False(t, overlay.Visible)

	stats := scheduler.GetStats()
	assert.Equal(t, "debugui", stats.Systems[0].Name)
}
