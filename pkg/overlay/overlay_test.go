package overlay

import (
	"testing"

	"github.com/rastalab/rasta/pkg/render"
)

func TestDrawStringSetsPixels(t *testing.T) {
	surf := render.NewSurface[render.Vec4f](80, 20)
	clear := render.RGBA(0, 0, 0, 0)
	surf.Clear(clear)

	DrawString(surf, 2, 12, "HUD", render.RGB(1, 1, 1))

	touched := false
	for _, p := range surf.Pixels() {
		if p != clear {
			touched = true
			break
		}
	}
	if !touched {
		t.Fatal("DrawString did not set any pixels")
	}
}

func TestDrawStringClipsToSurfaceBounds(t *testing.T) {
	surf := render.NewSurface[render.Vec4f](4, 4)
	surf.Clear(render.RGBA(0, 0, 0, 0))

	// A long string drawn near the edge must not panic despite most of
	// it falling outside the tiny surface.
	DrawString(surf, 0, 3, "a very long HUD line", render.RGB(1, 1, 1))
}

func TestHUDTickAccumulatesFrames(t *testing.T) {
	h := NewHUD("model.glb", 120)
	for i := 0; i < 5; i++ {
		h.Tick()
	}
	if h.fpsFrames != 5 {
		t.Fatalf("fpsFrames = %d after 5 ticks, want 5", h.fpsFrames)
	}
	surf := render.NewSurface[render.Vec4f](80, 20)
	surf.Clear(render.RGBA(0, 0, 0, 0))
	h.Render(surf, 0, 12, false)
}
