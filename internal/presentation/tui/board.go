// Package tui renders lattice grids for terminal display.
package tui

import (
	"fmt"
	"hash/fnv"

	"github.com/muesli/termenv"

	"github.com/aretw0/lattice"
)

// Subtle gradient palette (indigo through rose), assigned per value so the
// same piece always draws in the same color.
var palette = []string{
	"#818cf8",
	"#a78bfa",
	"#c084fc",
	"#e879f9",
	"#f472b6",
	"#fb7185",
}

const absentGlyph = "."

// RenderGrid writes one text row per grid row to out: the first rune of each
// occupied value, a dot for absent slots. When maxCols > 0 the view is
// clamped to that many columns (one cell takes two columns, glyph plus
// space) and a trailing ellipsis marks the cut.
func RenderGrid(out *termenv.Output, g *lattice.Grid[string], maxCols int) error {
	p := out.ColorProfile()

	visible := g.Width()
	clamped := false
	if maxCols > 0 && visible*2 > maxCols {
		visible = maxCols / 2
		clamped = true
	}
	if visible < 1 {
		visible = 1
	}

	for y := 0; y < g.Height(); y++ {
		for x := 0; x < visible; x++ {
			glyph := absentGlyph
			// Counters are bounded by the dimensions, so the unchecked
			// read is safe here.
			if v, ok := g.GetUnchecked(x, y).Value(); ok {
				glyph = cellGlyph(v)
				glyph = out.String(glyph).Foreground(p.Color(colorFor(v))).String()
			}
			if _, err := fmt.Fprintf(out, "%s ", glyph); err != nil {
				return err
			}
		}
		if clamped {
			if _, err := fmt.Fprint(out, "…"); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(out); err != nil {
			return err
		}
	}
	return nil
}

func cellGlyph(v string) string {
	for _, r := range v {
		return string(r)
	}
	// Empty string is still a present value; mark it distinctly from absent.
	return "·"
}

func colorFor(v string) string {
	h := fnv.New32a()
	h.Write([]byte(v))
	return palette[int(h.Sum32())%len(palette)]
}
