// Package heatmap renders a percentage table as an annotated PNG. It is the
// presentation collaborator of the simulation core: it consumes a finished
// table plus display labels and never computes statistics of its own.
package heatmap

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/jmcgill/tokyo-sim/internal/dice"
)

// Palette selects the sequential color ramp.
type Palette string

const (
	PaletteBlue Palette = "blue" // yellow-green-blue
	PaletteRed  Palette = "red"  // yellow-orange-red
)

// Params describes one heatmap image.
type Params struct {
	Title   string
	Labels  [][]string // same shape as the percentage table
	Palette Palette    // empty defaults to PaletteBlue
	Min     *float64   // color scale clamp; nil auto-scales from the data
	Max     *float64
}

const (
	cellW      = 84
	cellH      = 52
	leftGutter = 64
	titleH     = 36
	headerH    = 28
	pad        = 12
)

// Render writes the heatmap PNG for a percentage table. Rows are hit counts
// (0 at the top), columns are rolls.
func Render(p *dice.PctTable, params Params, path string) error {
	if p == nil || len(p.Cells) == 0 {
		return fmt.Errorf("heatmap: empty percentage table")
	}
	rolls := len(p.Cells)
	counts := len(p.Cells[0])
	if len(params.Labels) != rolls {
		return fmt.Errorf("heatmap: label table has %d columns, want %d", len(params.Labels), rolls)
	}
	for r, col := range params.Labels {
		if len(col) != counts {
			return fmt.Errorf("heatmap: label column %d has %d rows, want %d", r, len(col), counts)
		}
	}

	lo, hi := scale(p, params.Min, params.Max)
	ramp := stops(params.Palette)

	w := leftGutter + rolls*cellW + pad
	h := titleH + headerH + counts*cellH + pad
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)

	drawText(img, params.Title, leftGutter, titleH-12, color.RGBA{20, 20, 20, 255})

	for r := 0; r < rolls; r++ {
		x := leftGutter + r*cellW
		drawTextCentered(img, fmt.Sprintf("Roll %d", r+1), x, cellW, titleH+headerH-10, color.RGBA{20, 20, 20, 255})
	}

	for hits := 0; hits < counts; hits++ {
		y := titleH + headerH + hits*cellH
		drawText(img, fmt.Sprintf("%d", hits), pad, y+cellH/2+4, color.RGBA{20, 20, 20, 255})
		for r := 0; r < rolls; r++ {
			x := leftGutter + r*cellW
			t := normalize(p.Cells[r][hits], lo, hi)
			// 1px white seam between cells
			cell := image.Rect(x, y, x+cellW-1, y+cellH-1)
			draw.Draw(img, cell, &image.Uniform{shade(ramp, t)}, image.Point{}, draw.Src)

			fg := color.RGBA{25, 25, 25, 255}
			if t > 0.55 {
				fg = color.RGBA{245, 245, 245, 255}
			}
			drawTextCentered(img, params.Labels[r][hits], x, cellW, y+cellH/2+4, fg)
		}
	}

	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("heatmap: create %s: %w", path, err)
	}
	defer out.Close()
	if err := png.Encode(out, img); err != nil {
		return fmt.Errorf("heatmap: encode %s: %w", path, err)
	}
	return nil
}

// scale resolves the color scale bounds, auto-scaling from the data where
// the caller left them open.
func scale(p *dice.PctTable, min, max *float64) (float64, float64) {
	lo, hi := 1.0, 0.0
	for _, col := range p.Cells {
		for _, v := range col {
			if v < lo {
				lo = v
			}
			if v > hi {
				hi = v
			}
		}
	}
	if min != nil {
		lo = *min
	}
	if max != nil {
		hi = *max
	}
	if hi <= lo {
		hi = lo + 1 // degenerate scale, render everything at the low end
	}
	return lo, hi
}

func normalize(v, lo, hi float64) float64 {
	t := (v - lo) / (hi - lo)
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}

// stops returns the anchor colors of a ramp, light to dark.
func stops(p Palette) []color.RGBA {
	switch p {
	case PaletteRed:
		return []color.RGBA{
			{255, 255, 204, 255},
			{254, 178, 76, 255},
			{227, 26, 28, 255},
			{128, 0, 38, 255},
		}
	default:
		return []color.RGBA{
			{255, 255, 217, 255},
			{127, 205, 187, 255},
			{34, 94, 168, 255},
			{8, 29, 88, 255},
		}
	}
}

// shade interpolates the ramp at t in [0,1].
func shade(ramp []color.RGBA, t float64) color.RGBA {
	pos := t * float64(len(ramp)-1)
	i := int(pos)
	if i >= len(ramp)-1 {
		return ramp[len(ramp)-1]
	}
	f := pos - float64(i)
	a, b := ramp[i], ramp[i+1]
	lerp := func(x, y uint8) uint8 {
		return uint8(float64(x) + (float64(y)-float64(x))*f)
	}
	return color.RGBA{lerp(a.R, b.R), lerp(a.G, b.G), lerp(a.B, b.B), 255}
}

func drawText(img *image.RGBA, s string, x, y int, c color.RGBA) {
	d := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(c),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(s)
}

func drawTextCentered(img *image.RGBA, s string, x, width, y int, c color.RGBA) {
	w := font.MeasureString(basicfont.Face7x13, s).Ceil()
	drawText(img, s, x+(width-w)/2, y, c)
}
