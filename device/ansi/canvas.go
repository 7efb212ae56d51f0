// Package ansi draws surfaces into an in-memory canvas and prints it as
// ANSI-styled lines. It backs the inline (non full-screen) output mode.
package ansi

import (
	"compot/device"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/muesli/ansi"
	"github.com/muesli/termenv"
)

type Canvas struct {
	width, height int
	cells         [][]cell
	theme         device.Theme
	output        *termenv.Output
}

type cell struct {
	text         string
	attr         device.Attr
	set          bool
	continuation bool
}

func NewCanvas(width, height int, theme device.Theme, opts ...termenv.OutputOption) *Canvas {
	c := &Canvas{
		width:  width,
		height: height,
		cells:  make([][]cell, height),
		theme:  theme.Merge(device.DefaultTheme),
		output: termenv.NewOutput(io.Discard, opts...),
	}
	for y := range c.cells {
		c.cells[y] = make([]cell, width)
	}
	return c
}

func (c *Canvas) Size() (width, height int) {
	return c.width, c.height
}

func (c *Canvas) Attr(color device.Color) device.Attr {
	return device.Pairs.Attr(color)
}

func (c *Canvas) NewSurface(x, y, width, height int) (device.Surface, error) {
	return &surface{canvas: c, x: x, y: y, width: width, height: height}, nil
}

// Clear forgets everything drawn so far.
func (c *Canvas) Clear() {
	for y := range c.cells {
		for x := range c.cells[y] {
			c.cells[y][x] = cell{}
		}
	}
}

// Lines returns the styled canvas rows with unset trailing cells trimmed.
func (c *Canvas) Lines() []string {
	lines := make([]string, c.height)
	for y, row := range c.cells {
		end := len(row)
		for end > 0 && !row[end-1].set {
			end--
		}
		lines[y] = c.line(row[:end])
	}
	return lines
}

// Render writes every row padded to the full canvas width.
func (c *Canvas) Render(w io.Writer) error {
	for _, line := range c.Lines() {
		if pad := c.width - ansi.PrintableRuneWidth(line); pad > 0 {
			line += strings.Repeat(" ", pad)
		}
		if _, err := io.WriteString(w, line+"\n"); err != nil {
			return err
		}
	}
	return nil
}

func (c *Canvas) String() string {
	buf := &strings.Builder{}
	_ = c.Render(buf)
	return buf.String()
}

func (c *Canvas) line(row []cell) string {
	buf := &strings.Builder{}
	run := &strings.Builder{}
	var runAttr device.Attr
	runSet := false
	flush := func() {
		if run.Len() == 0 {
			return
		}
		if runSet {
			buf.WriteString(c.style(run.String(), runAttr))
		} else {
			buf.WriteString(run.String())
		}
		run.Reset()
	}
	for _, cell := range row {
		if cell.continuation {
			continue
		}
		if cell.set != runSet || cell.attr != runAttr {
			flush()
			runSet, runAttr = cell.set, cell.attr
		}
		if cell.set {
			run.WriteString(cell.text)
		} else {
			run.WriteByte(' ')
		}
	}
	flush()
	return buf.String()
}

func (c *Canvas) style(text string, attr device.Attr) string {
	if c.output.Profile == termenv.Ascii {
		return text
	}
	fg, bg := c.theme.Pair(attr.Color())
	style := c.output.String(text).
		Foreground(c.output.Color(fg)).
		Background(c.output.Color(bg))
	if attr.Has(device.Bold) {
		style = style.Bold()
	}
	if attr.Has(device.Italic) {
		style = style.Italic()
	}
	if attr.Has(device.Underline) {
		style = style.Underline()
	}
	return style.String()
}

type surface struct {
	canvas        *Canvas
	x, y          int
	width, height int
	text          string
	attr          device.Attr
}

func (s *surface) Write(text string, attr device.Attr) error {
	s.text, s.attr = text, attr
	return nil
}

// Flush copies the surface text into the canvas, clipped to both the
// surface and the canvas.
func (s *surface) Flush() {
	c := s.canvas
	if s.height < 1 || s.y < 0 || s.y >= c.height {
		return
	}
	row := c.cells[s.y]
	col := 0
	last := -1
	for _, r := range s.text {
		width := runewidth.RuneWidth(r)
		x := s.x + col
		if width == 0 {
			if last >= 0 {
				row[last].text += string(r)
			}
			continue
		}
		if col+width > s.width || x+width > c.width {
			break
		}
		if x >= 0 {
			row[x] = cell{text: string(r), attr: s.attr, set: true}
			for i := 1; i < width; i++ {
				row[x+i] = cell{attr: s.attr, set: true, continuation: true}
			}
			last = x
		}
		col += width
	}
}
