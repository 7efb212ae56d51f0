package device

import "fmt"

// Color is a functional color role. The zero value is Info.
type Color int

const (
	Info Color = iota
	Ok
	Warning
	Error
	InfoInverted
	OkInverted
	WarningInverted
	ErrorInverted
)

const (
	pairBase     = 8
	invertOffset = 20
)

// ID returns the stable color pair identifier of the role:
// 8..11 for the normal roles and 28..31 for their inverted pairings.
func (c Color) ID() int {
	if c.Inverted() {
		return pairBase + invertOffset + int(c-InfoInverted)
	}
	return pairBase + int(c)
}

func (c Color) Inverted() bool {
	return c >= InfoInverted
}

// Inverse flips between a role and its inverted pairing.
func (c Color) Inverse() Color {
	if c.Inverted() {
		return c - InfoInverted
	}
	return c + InfoInverted
}

// ColorByID is the reverse of Color.ID.
func ColorByID(id int) (Color, bool) {
	switch {
	case id >= pairBase && id <= pairBase+int(Error):
		return Color(id - pairBase), true
	case id >= pairBase+invertOffset && id <= pairBase+invertOffset+int(Error):
		return Color(id-pairBase-invertOffset) + InfoInverted, true
	}
	return Info, false
}

func (c Color) String() string {
	switch c {
	case Info:
		return "Info"
	case Ok:
		return "Ok"
	case Warning:
		return "Warning"
	case Error:
		return "Error"
	case InfoInverted:
		return "InfoInverted"
	case OkInverted:
		return "OkInverted"
	case WarningInverted:
		return "WarningInverted"
	case ErrorInverted:
		return "ErrorInverted"
	}
	return fmt.Sprintf("Color(%d)", int(c))
}
