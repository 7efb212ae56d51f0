package device

// Theme holds the base colors every pairing is made of, as "#rrggbb" strings.
type Theme struct {
	OK      string `yaml:"ok"`
	Warning string `yaml:"warning"`
	Error   string `yaml:"error"`
	BG      string `yaml:"bg"`
	FG      string `yaml:"fg"`
}

var DefaultTheme = Theme{
	OK:      "#50fa7b",
	Warning: "#ffb86c",
	Error:   "#ff5555",
	BG:      "#282a36",
	FG:      "#f8f8f2",
}

// Pair returns the foreground and background of a color role.
func (t Theme) Pair(color Color) (fg, bg string) {
	switch color {
	case Ok:
		return t.OK, t.BG
	case Warning:
		return t.Warning, t.BG
	case Error:
		return t.Error, t.BG
	case InfoInverted:
		return t.BG, t.FG
	case OkInverted:
		return t.BG, t.OK
	case WarningInverted:
		return t.FG, t.Warning
	case ErrorInverted:
		return t.FG, t.Error
	}
	return t.FG, t.BG
}

// Merge fills the empty fields of t from other.
func (t Theme) Merge(other Theme) Theme {
	if t.OK == "" {
		t.OK = other.OK
	}
	if t.Warning == "" {
		t.Warning = other.Warning
	}
	if t.Error == "" {
		t.Error = other.Error
	}
	if t.BG == "" {
		t.BG = other.BG
	}
	if t.FG == "" {
		t.FG = other.FG
	}
	return t
}
