package skillicons

import (
	"strings"

	"github.com/pkg/errors"
)

// Theme selects the icon service's colour scheme.
type Theme string

const (
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"
)

// Alignment controls how the generated markup positions the icons.
type Alignment string

const (
	AlignLeft   Alignment = "left"
	AlignCenter Alignment = "center"
)

// Icons-per-line bounds and the service's implicit default.
const (
	MinPerLine     = 1
	MaxPerLine     = 20
	DefaultPerLine = 15
)

var (
	ErrUnknownTheme      = errors.New("unknown theme")
	ErrUnknownAlignment  = errors.New("unknown alignment")
	ErrPerLineOutOfRange = errors.New("icons per line out of range")
)

// Settings are the three display parameters of the generated output.
type Settings struct {
	Theme     Theme
	PerLine   int
	Alignment Alignment
}

// DefaultSettings returns dark theme, 15 icons per line, left aligned.
func DefaultSettings() Settings {
	return Settings{
		Theme:     ThemeDark,
		PerLine:   DefaultPerLine,
		Alignment: AlignLeft,
	}
}

// Validate checks every field against its domain.
func (s Settings) Validate() error {
	if _, err := ParseTheme(string(s.Theme)); err != nil {
		return err
	}
	if s.PerLine < MinPerLine || s.PerLine > MaxPerLine {
		return errors.Wrapf(ErrPerLineOutOfRange, "%d not in [%d,%d]", s.PerLine, MinPerLine, MaxPerLine)
	}
	if _, err := ParseAlignment(string(s.Alignment)); err != nil {
		return err
	}
	return nil
}

// ParseTheme accepts "dark" or "light", case-insensitively.
func ParseTheme(s string) (Theme, error) {
	switch Theme(strings.ToLower(strings.TrimSpace(s))) {
	case ThemeDark:
		return ThemeDark, nil
	case ThemeLight:
		return ThemeLight, nil
	}
	return "", errors.Wrapf(ErrUnknownTheme, "%q", s)
}

// Toggle flips between dark and light.
func (t Theme) Toggle() Theme {
	if t == ThemeLight {
		return ThemeDark
	}
	return ThemeLight
}

// ParseAlignment accepts "left" or "center", case-insensitively.
func ParseAlignment(s string) (Alignment, error) {
	switch Alignment(strings.ToLower(strings.TrimSpace(s))) {
	case AlignLeft:
		return AlignLeft, nil
	case AlignCenter:
		return AlignCenter, nil
	}
	return "", errors.Wrapf(ErrUnknownAlignment, "%q", s)
}

// Toggle flips between left and center.
func (a Alignment) Toggle() Alignment {
	if a == AlignCenter {
		return AlignLeft
	}
	return AlignCenter
}

// ClampPerLine saturates n into [MinPerLine, MaxPerLine].
func ClampPerLine(n int) int {
	if n < MinPerLine {
		return MinPerLine
	}
	if n > MaxPerLine {
		return MaxPerLine
	}
	return n
}
