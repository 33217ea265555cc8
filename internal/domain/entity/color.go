package entity

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/diegoclair/shift-cycle-bot/internal/domain"
)

// Color is a 32-bit ARGB value (0xAARRGGBB)
type Color uint32

// NamedColor pairs a palette entry with the name users can type
type NamedColor struct {
	Name  string
	Color Color
}

// Palette lists the preset colors offered when editing shifts
var Palette = []NamedColor{
	{Name: "blue", Color: 0xFF2196F3},
	{Name: "purple", Color: 0xFF9C27B0},
	{Name: "green", Color: 0xFF4CAF50},
	{Name: "orange", Color: 0xFFFF9800},
	{Name: "red", Color: 0xFFF44336},
	{Name: "cyan", Color: 0xFF00BCD4},
	{Name: "pink", Color: 0xFFE91E63},
	{Name: "brown", Color: 0xFF795548},
	{Name: "bluegrey", Color: 0xFF607D8B},
	{Name: "grey", Color: 0xFF9E9E9E},
	{Name: "indigo", Color: 0xFF3F51B5},
	{Name: "teal", Color: 0xFF009688},
}

// Alpha returns the alpha channel
func (c Color) Alpha() uint8 { return uint8(c >> 24) }

// Hex renders the color as #RRGGBB when opaque and #AARRGGBB otherwise
func (c Color) Hex() string {
	if c.Alpha() == 0xFF {
		return fmt.Sprintf("#%06X", uint32(c)&0xFFFFFF)
	}
	return fmt.Sprintf("#%08X", uint32(c))
}

// Name returns the palette name of the color, if it has one
func (c Color) Name() (string, bool) {
	for _, nc := range Palette {
		if nc.Color == c {
			return nc.Name, true
		}
	}
	return "", false
}

// ParseColor accepts a palette name, #RRGGBB, #AARRGGBB or the same with a 0x prefix.
// Six-digit values are treated as fully opaque.
func ParseColor(input string) (Color, error) {
	s := strings.ToLower(strings.TrimSpace(input))
	for _, nc := range Palette {
		if nc.Name == s {
			return nc.Color, nil
		}
	}

	hex := strings.TrimPrefix(strings.TrimPrefix(s, "#"), "0x")
	if len(hex) != 6 && len(hex) != 8 {
		return 0, fmt.Errorf("%w: %q", domain.ErrInvalidColor, input)
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", domain.ErrInvalidColor, input)
	}
	if len(hex) == 6 {
		v |= 0xFF000000
	}
	return Color(v), nil
}
