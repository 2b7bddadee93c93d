package types

import (
	"encoding/json"
	"fmt"
	"strings"
)

/////////////////////////////////////////////////////////////////////////////
// CONTROL CODES
/////////////////////////////////////////////////////////////////////////////

const (
	ControlBold          byte = 0x02
	ControlColor         byte = 0x03
	ControlHexColor      byte = 0x04
	ControlReset         byte = 0x0F
	ControlMonospace     byte = 0x11
	ControlReverse       byte = 0x16
	ControlItalic        byte = 0x1D
	ControlStrikethrough byte = 0x1E
	ControlUnderline     byte = 0x1F
)

// ControlNames maps the formatting control codes to their names
var ControlNames = map[byte]string{
	ControlBold:          "BOLD",
	ControlColor:         "COLOR",
	ControlHexColor:      "HEX_COLOR",
	ControlReset:         "RESET",
	ControlMonospace:     "MONOSPACE",
	ControlReverse:       "REVERSE",
	ControlItalic:        "ITALIC",
	ControlStrikethrough: "STRIKETHROUGH",
	ControlUnderline:     "UNDERLINE",
}

// IsControl reports whether b is one of the formatting control codes.
func IsControl(b byte) bool {
	_, ok := ControlNames[b]
	return ok
}

/////////////////////////////////////////////////////////////////////////////
// PALETTE COLOR
/////////////////////////////////////////////////////////////////////////////

// PaletteColor is a legacy mIRC palette index. The zero value means no color.
type PaletteColor struct {
	Set   bool
	Index int
}

// Palette returns a set palette color for index.
func Palette(index int) PaletteColor {
	return PaletteColor{Set: true, Index: index}
}

func (c PaletteColor) String() string {
	if !c.Set {
		return "none"
	}
	return fmt.Sprintf("%d", c.Index)
}

func (c PaletteColor) MarshalJSON() ([]byte, error) {
	if !c.Set {
		return []byte("null"), nil
	}
	return json.Marshal(c.Index)
}

func (c *PaletteColor) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*c = PaletteColor{}
		return nil
	}

	var index int
	if err := json.Unmarshal(data, &index); err != nil {
		return fmt.Errorf("invalid palette color %s: %w", data, err)
	}

	*c = Palette(index)
	return nil
}

// MarshalYAML renders an unset color as null.
func (c PaletteColor) MarshalYAML() (interface{}, error) {
	if !c.Set {
		return nil, nil
	}
	return c.Index, nil
}

/////////////////////////////////////////////////////////////////////////////
// STYLE
/////////////////////////////////////////////////////////////////////////////

// Style is the formatting state active at a point of a message.
// Legacy palette colors and hex colors are tracked independently.
type Style struct {
	Bold          bool         `json:"bold" yaml:"bold"`
	Italic        bool         `json:"italic" yaml:"italic"`
	Underline     bool         `json:"underline" yaml:"underline"`
	Strikethrough bool         `json:"strikethrough" yaml:"strikethrough"`
	Monospace     bool         `json:"monospace" yaml:"monospace"`
	TextColor     PaletteColor `json:"text_color" yaml:"text_color"`
	BgColor       PaletteColor `json:"bg_color" yaml:"bg_color"`
	HexColor      string       `json:"hex_color,omitempty" yaml:"hex_color,omitempty"`
	HexBgColor    string       `json:"hex_bg_color,omitempty" yaml:"hex_bg_color,omitempty"`
}

// NewStyle returns the default style: no flag set, no color.
func NewStyle() Style {
	return Style{}
}

func (s *Style) Reset() {
	*s = NewStyle()
}

// Reverse swaps the palette colors. Hex colors are left as they are.
func (s *Style) Reverse() {
	s.TextColor, s.BgColor = s.BgColor, s.TextColor
}

func (s *Style) ClearColors() {
	s.TextColor = PaletteColor{}
	s.BgColor = PaletteColor{}
}

func (s *Style) ClearHexColors() {
	s.HexColor = ""
	s.HexBgColor = ""
}

func (s Style) IsDefault() bool {
	return s.Equals(NewStyle())
}

func (s Style) Equals(other Style) bool {
	return s == other
}

func (s *Style) String() string {
	var parts []string

	parts = append(parts, fmt.Sprintf("fg:%s", s.TextColor.String()))
	parts = append(parts, fmt.Sprintf("bg:%s", s.BgColor.String()))
	parts = append(parts, fmt.Sprintf("hexfg:%s", hexOrNone(s.HexColor)))
	parts = append(parts, fmt.Sprintf("hexbg:%s", hexOrNone(s.HexBgColor)))
	parts = append(parts, fmt.Sprintf("bold:%t", s.Bold))
	parts = append(parts, fmt.Sprintf("italic:%t", s.Italic))
	parts = append(parts, fmt.Sprintf("underline:%t", s.Underline))
	parts = append(parts, fmt.Sprintf("strikethrough:%t", s.Strikethrough))
	parts = append(parts, fmt.Sprintf("monospace:%t", s.Monospace))

	return strings.Join(parts, ", ")
}

func hexOrNone(hex string) string {
	if hex == "" {
		return "none"
	}
	return hex
}
