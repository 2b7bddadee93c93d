package processor

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/badele/ircstyle/internal/importer/mirc"
	"github.com/badele/ircstyle/internal/types"
)

///////////////////////////////////////////////////////////////////////////////
// mIRC palette
///////////////////////////////////////////////////////////////////////////////

// MIRCPalette holds the RGB values of the 16 base mIRC colors
var MIRCPalette = [16][3]int32{
	{0xFF, 0xFF, 0xFF}, // 0: White
	{0x00, 0x00, 0x00}, // 1: Black
	{0x00, 0x00, 0x7F}, // 2: Blue
	{0x00, 0x93, 0x00}, // 3: Green
	{0xFF, 0x00, 0x00}, // 4: Red
	{0x7F, 0x00, 0x00}, // 5: Brown
	{0x9C, 0x00, 0x9C}, // 6: Magenta
	{0xFC, 0x7F, 0x00}, // 7: Orange
	{0xFF, 0xFF, 0x00}, // 8: Yellow
	{0x00, 0xFC, 0x00}, // 9: Light Green
	{0x00, 0x93, 0x93}, // 10: Cyan
	{0x00, 0xFF, 0xFF}, // 11: Light Cyan
	{0x00, 0x00, 0xFC}, // 12: Light Blue
	{0xFF, 0x00, 0xFF}, // 13: Pink
	{0x7F, 0x7F, 0x7F}, // 14: Grey
	{0xD2, 0xD2, 0xD2}, // 15: Light Grey
}

// defaultColorIndex is the mIRC "default color" index
const defaultColorIndex = 99

// PaletteToColor maps a palette index to a terminal color.
// Indexes above 15 use the terminal 256-color palette.
func PaletteToColor(color types.PaletteColor) tcell.Color {
	switch {
	case !color.Set, color.Index < 0, color.Index >= defaultColorIndex:
		return tcell.ColorDefault
	case color.Index < len(MIRCPalette):
		rgb := MIRCPalette[color.Index]
		return tcell.NewRGBColor(rgb[0], rgb[1], rgb[2])
	default:
		return tcell.PaletteColor(color.Index)
	}
}

// StyleToTcell converts a fragment style to a terminal style.
// Hex colors take precedence over palette colors; monospace has no terminal equivalent.
func StyleToTcell(style types.Style) tcell.Style {
	fg := PaletteToColor(style.TextColor)
	if style.HexColor != "" {
		fg = tcell.GetColor("#" + style.HexColor)
	}

	bg := PaletteToColor(style.BgColor)
	if style.HexBgColor != "" {
		bg = tcell.GetColor("#" + style.HexBgColor)
	}

	return tcell.StyleDefault.
		Foreground(fg).
		Background(bg).
		Bold(style.Bold).
		Italic(style.Italic).
		Underline(style.Underline).
		StrikeThrough(style.Strikethrough)
}

///////////////////////////////////////////////////////////////////////////////
// Screen
///////////////////////////////////////////////////////////////////////////////

// Screen paints fragments on a simulated terminal to preview them
type Screen struct {
	screen     tcell.SimulationScreen
	width      int
	height     int
	cursorX    int
	cursorY    int
	lineWidths []int
}

func NewScreen(width, height int) (*Screen, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid screen size %dx%d", width, height)
	}

	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("error initializing screen: %w", err)
	}

	screen.SetSize(width, height)

	return &Screen{
		screen:     screen,
		width:      width,
		height:     height,
		lineWidths: make([]int, height),
	}, nil
}

func (s *Screen) GetDimensions() (int, int) {
	return s.width, s.height
}

// ApplyFragments writes every fragment at the cursor position
func (s *Screen) ApplyFragments(fragments []types.Fragment) {
	for _, fragment := range fragments {
		s.writeText(fragment.Text, StyleToTcell(fragment.Style))
	}
	s.screen.Show()
}

func (s *Screen) writeText(text string, style tcell.Style) {
	text = strings.ReplaceAll(text, mirc.Placeholder, " ")

	for _, r := range text {
		if s.cursorY >= s.height {
			return
		}

		if r == '\n' {
			s.newLine()
			continue
		}

		w := cellWidth(r)

		// Wrap to next line if the rune does not fit
		if s.cursorX+w > s.width {
			s.newLine()
			if s.cursorY >= s.height {
				return
			}
		}

		s.screen.SetContent(s.cursorX, s.cursorY, r, nil, style)
		s.cursorX += w
		s.lineWidths[s.cursorY] = s.cursorX
	}
}

// cellWidth returns the number of columns used by r, at least one
func cellWidth(r rune) int {
	return max(runewidth.RuneWidth(r), 1)
}

func (s *Screen) newLine() {
	s.cursorX = 0
	s.cursorY++
}

// usedLines returns the number of lines reached by the cursor
func (s *Screen) usedLines() int {
	lines := s.cursorY + 1
	if lines > s.height {
		lines = s.height
	}
	return lines
}

// ExportPlainText exports the written text without styles
func (s *Screen) ExportPlainText() string {
	var builder strings.Builder

	for y := 0; y < s.usedLines(); y++ {
		if y > 0 {
			builder.WriteString("\n")
		}
		for x := 0; x < s.lineWidths[y]; {
			mainc, _, _, _ := s.screen.GetContent(x, y)
			if mainc == 0 {
				mainc = ' '
			}
			builder.WriteRune(mainc)
			x += cellWidth(mainc)
		}
	}

	return builder.String()
}

// ExportANSI exports the written text with SGR sequences, one line per screen row
func (s *Screen) ExportANSI() string {
	return s.exportANSI("\n")
}

// ExportANSIInline exports the written text with SGR sequences on a single line
func (s *Screen) ExportANSIInline() string {
	return s.exportANSI("")
}

func (s *Screen) exportANSI(separator string) string {
	var builder strings.Builder
	current := tcell.StyleDefault

	for y := 0; y < s.usedLines(); y++ {
		if y > 0 {
			builder.WriteString(separator)
		}
		for x := 0; x < s.lineWidths[y]; {
			mainc, _, style, _ := s.screen.GetContent(x, y)
			if mainc == 0 {
				mainc = ' '
			}
			if style != current {
				builder.WriteString(StyleToSGR(style))
				current = style
			}
			builder.WriteRune(mainc)
			x += cellWidth(mainc)
		}
	}

	if current != tcell.StyleDefault {
		builder.WriteString("\x1b[0m")
	}

	return builder.String()
}

// StyleToSGR encodes a style as a reset followed by its attributes,
// so that attributes turned off never need dedicated codes.
func StyleToSGR(style tcell.Style) string {
	fg, bg, attrs := style.Decompose()
	codes := []string{"0"}

	if attrs&tcell.AttrBold != 0 {
		codes = append(codes, "1")
	}
	if attrs&tcell.AttrItalic != 0 {
		codes = append(codes, "3")
	}
	if attrs&tcell.AttrUnderline != 0 {
		codes = append(codes, "4")
	}
	if attrs&tcell.AttrStrikeThrough != 0 {
		codes = append(codes, "9")
	}

	if code := colorToSGR(fg, 38); code != "" {
		codes = append(codes, code)
	}
	if code := colorToSGR(bg, 48); code != "" {
		codes = append(codes, code)
	}

	return fmt.Sprintf("\x1b[%sm", strings.Join(codes, ";"))
}

func colorToSGR(color tcell.Color, base int) string {
	if color == tcell.ColorDefault {
		return ""
	}

	r, g, b := color.RGB()
	if r < 0 || g < 0 || b < 0 {
		return ""
	}

	return fmt.Sprintf("%d;2;%d;%d;%d", base, r, g, b)
}

func (s *Screen) Close() {
	s.screen.Fini()
}
