package tcell

import (
	"compot/device"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Device paints surfaces into a tcell screen.
type Device struct {
	screen tcell.Screen
	styles map[device.Color]tcell.Style
}

func NewDevice(screen tcell.Screen, theme device.Theme) *Device {
	theme = theme.Merge(device.DefaultTheme)
	d := &Device{screen: screen, styles: map[device.Color]tcell.Style{}}
	for color := device.Info; color <= device.ErrorInverted; color++ {
		fg, bg := theme.Pair(color)
		d.styles[color] = tcell.StyleDefault.
			Foreground(tcell.GetColor(fg)).
			Background(tcell.GetColor(bg))
	}
	return d
}

// Style converts an attribute mask to a tcell style.
func (d *Device) Style(attr device.Attr) tcell.Style {
	return d.styles[attr.Color()].
		Bold(attr.Has(device.Bold)).
		Italic(attr.Has(device.Italic)).
		Underline(attr.Has(device.Underline))
}

func (d *Device) Attr(color device.Color) device.Attr {
	return device.Pairs.Attr(color)
}

func (d *Device) NewSurface(x, y, width, height int) (device.Surface, error) {
	if width < 0 || height < 0 {
		return nil, fmt.Errorf("tcell: invalid surface %dx%d at %d:%d", width, height, x, y)
	}
	return &surface{device: d, x: x, y: y, width: width, height: height}, nil
}

func (d *Device) Show() {
	d.screen.Show()
}

func (d *Device) Sync() {
	d.screen.Sync()
}

type cell struct {
	rune      rune
	combining []rune
	style     tcell.Style
	col       int
}

type surface struct {
	device        *Device
	x, y          int
	width, height int
	cells         []cell
}

// Write lays the text out on the first line of the surface; whatever does
// not fit in the surface width is dropped.
func (s *surface) Write(text string, attr device.Attr) error {
	style := s.device.Style(attr)
	s.cells = s.cells[:0]
	col := 0
	for _, r := range text {
		width := runewidth.RuneWidth(r)
		if width == 0 {
			if len(s.cells) > 0 {
				last := &s.cells[len(s.cells)-1]
				last.combining = append(last.combining, r)
			}
			continue
		}
		if col+width > s.width {
			break
		}
		s.cells = append(s.cells, cell{rune: r, style: style, col: col})
		col += width
	}
	return nil
}

func (s *surface) Flush() {
	if s.height < 1 {
		return
	}
	for _, cell := range s.cells {
		s.device.screen.SetContent(s.x+cell.col, s.y, cell.rune, cell.combining, cell.style)
	}
}
