// Package ssplot draws secondary structure strings as rows of coloured
// boxes and writes them as a png. Each chain gets a label on the left
// and long chains wrap onto extra lines. A legend goes underneath.
package ssplot

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"

	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

type Error string

func (e Error) Error() string { return string(e) }

const ErrEmpty Error = "ssplot: nothing to plot"

// Row is one chain's worth of codes.
type Row struct {
	Label string
	Code  []byte
}

// Geometry in pixels.
const (
	cellW    = 6
	cellH    = 14
	lineGap  = 6
	labelW   = 80
	margin   = 10
	fontSize = 10
	dpi      = 72
)

// DfltWidth is the number of residues on one line.
const DfltWidth = 100

// Colours for each code. Anything else is drawn like coil.
var Colours = map[byte]color.RGBA{
	'H': {R: 220, G: 30, B: 30, A: 255},
	'G': {R: 240, G: 140, B: 40, A: 255},
	'I': {R: 150, G: 40, B: 160, A: 255},
	'E': {R: 240, G: 210, B: 30, A: 255},
	'B': {R: 150, G: 130, B: 20, A: 255},
	'T': {R: 60, G: 110, B: 220, A: 255},
	'S': {R: 60, G: 170, B: 80, A: 255},
	'-': {R: 235, G: 235, B: 235, A: 255},
	'?': {R: 140, G: 140, B: 140, A: 255},
}

const legendOrder = "HGIEBTS-?"

func colour(c byte) color.RGBA {
	if col, ok := Colours[c]; ok {
		return col
	}
	return Colours['-']
}

// nLines is how many lines a code of length n needs.
func nLines(n, width int) int {
	if n == 0 {
		return 1
	}
	return (n + width - 1) / width
}

// cellAt is the box for residue col on picture line line.
func cellAt(line, col int) image.Rectangle {
	x := margin + labelW + col*cellW
	y := margin + line*(cellH+lineGap)
	return image.Rect(x, y, x+cellW, y+cellH)
}

// plotter holds the picture and the font context.
type plotter struct {
	img *image.RGBA
	ctx *freetype.Context
}

func newPlotter(w, h int) (*plotter, error) {
	fnt, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("ssplot font: %w", err)
	}
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)
	ctx := freetype.NewContext()
	ctx.SetDPI(dpi)
	ctx.SetFont(fnt)
	ctx.SetFontSize(fontSize)
	ctx.SetClip(img.Bounds())
	ctx.SetDst(img)
	ctx.SetSrc(image.Black)
	ctx.SetHinting(font.HintingFull)
	return &plotter{img: img, ctx: ctx}, nil
}

// text puts s with its baseline at the bottom of box r.
func (p *plotter) text(s string, x int, r image.Rectangle) error {
	_, err := p.ctx.DrawString(s, freetype.Pt(x, r.Max.Y-2))
	return err
}

func (p *plotter) box(r image.Rectangle, c color.RGBA) {
	draw.Draw(p.img, r, image.NewUniform(c), image.Point{}, draw.Src)
}

// Plot draws rows with width residues per line (0 means DfltWidth) and
// writes a png to w.
func Plot(w io.Writer, rows []Row, width int) error {
	if len(rows) == 0 {
		return ErrEmpty
	}
	if width <= 0 {
		width = DfltWidth
	}
	nl := 0
	for _, r := range rows {
		nl += nLines(len(r.Code), width)
	}
	legendLine := nl + 1
	pw := 2*margin + labelW + width*cellW
	if lw := len(legendOrder) * 3 * cellH; pw < 2*margin+lw {
		pw = 2*margin + lw
	}
	ph := cellAt(legendLine, 0).Max.Y + margin
	p, err := newPlotter(pw, ph)
	if err != nil {
		return err
	}

	line := 0
	for _, r := range rows {
		if err := p.text(r.Label, margin, cellAt(line, 0)); err != nil {
			return err
		}
		for i, c := range r.Code {
			p.box(cellAt(line+i/width, i%width), colour(c))
		}
		line += nLines(len(r.Code), width)
	}

	x := margin
	for i := 0; i < len(legendOrder); i++ {
		c := legendOrder[i]
		r := cellAt(legendLine, 0)
		r = image.Rect(x, r.Min.Y, x+cellH, r.Max.Y)
		p.box(r, colour(c))
		if err := p.text(string(c), x+cellH+3, r); err != nil {
			return err
		}
		x += 3 * cellH
	}
	return png.Encode(w, p.img)
}
