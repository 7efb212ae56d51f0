package widgets

import (
	"compot/device"
	"fmt"
	"strings"
)

type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

func (a Alignment) String() string {
	switch a {
	case AlignLeft:
		return "Left"
	case AlignCenter:
		return "Center"
	case AlignRight:
		return "Right"
	}
	return fmt.Sprintf("Alignment(%d)", int(a))
}

// TextStyle is the zero-value-defaulted style of a text: Info, left aligned,
// no flags.
type TextStyle struct {
	Color     device.Color
	Align     Alignment
	Bold      bool
	Italic    bool
	Underline bool
}

// Attr combines the palette color with the text flags.
func (s TextStyle) Attr(palette device.Palette) device.Attr {
	attr := palette.Attr(s.Color)
	if s.Bold {
		attr |= device.Bold
	}
	if s.Italic {
		attr |= device.Italic
	}
	if s.Underline {
		attr |= device.Underline
	}
	return attr
}

func (s TextStyle) String() string {
	fields := []string{"color=" + s.Color.String(), "align=" + s.Align.String()}
	if s.Bold {
		fields = append(fields, "bold")
	}
	if s.Italic {
		fields = append(fields, "italic")
	}
	if s.Underline {
		fields = append(fields, "underline")
	}
	return "<" + strings.Join(fields, ", ") + ">"
}
