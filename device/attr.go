package device

import "strings"

// Attr is a renderer-native attribute mask: the color pair id in the low
// byte, text flags above it.
type Attr uint32

const PairMask Attr = 0xff

const (
	Bold Attr = 1 << (8 + iota)
	Italic
	Underline
)

// Pairs is the default palette: a role resolves to its pair id.
var Pairs Palette = pairs{}

type pairs struct{}

func (pairs) Attr(color Color) Attr {
	return Attr(color.ID()) & PairMask
}

// Color returns the role encoded in the pair bits. Masks that carry no
// known pair resolve to Info.
func (a Attr) Color() Color {
	color, _ := ColorByID(int(a & PairMask))
	return color
}

func (a Attr) Has(flag Attr) bool {
	return a&flag == flag
}

func (a Attr) String() string {
	flags := []string{a.Color().String()}
	if a.Has(Bold) {
		flags = append(flags, "Bold")
	}
	if a.Has(Italic) {
		flags = append(flags, "Italic")
	}
	if a.Has(Underline) {
		flags = append(flags, "Underline")
	}
	return strings.Join(flags, ", ")
}
