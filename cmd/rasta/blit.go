package main

import (
	"image/color"

	uv "github.com/charmbracelet/ultraviolet"

	"github.com/rastalab/rasta/pkg/render"
)

// blitSurface draws a color Surface onto a terminal screen using the
// half-block technique: each terminal cell covers two Surface rows,
// the upper one as the cell's foreground and the lower as its
// background, via the ▀ glyph. surf.Height() must be 2x the number of
// terminal rows being drawn.
func blitSurface(scr uv.Screen, surf *render.Surface[render.Vec4f], cols, rows int) {
	for row := 0; row < rows; row++ {
		topY := row * 2
		botY := topY + 1
		for col := 0; col < cols && col < surf.Width(); col++ {
			top := vec4fToColor(surf.Get(col, topY))
			var bot color.Color
			if botY < surf.Height() {
				bot = vec4fToColor(surf.Get(col, botY))
			}
			cell := &uv.Cell{
				Content: "▀",
				Width:   1,
				Style:   uv.Style{Fg: top, Bg: bot},
			}
			scr.SetCell(col, row, cell)
		}
	}
}

func vec4fToColor(c render.Vec4f) color.Color {
	if c.A == 0 {
		return nil
	}
	return color.RGBA{
		R: clampChannel(c.R),
		G: clampChannel(c.G),
		B: clampChannel(c.B),
		A: clampChannel(c.A),
	}
}

func clampChannel(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v * 255)
}
