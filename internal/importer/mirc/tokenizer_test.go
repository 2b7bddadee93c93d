package mirc

import (
	"testing"

	"github.com/ergochat/irc-go/ircfmt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/badele/ircstyle/internal/types"
)

func TestTokenizeText(t *testing.T) {
	fragments := NewMIRCTokenizer("Hello World").Tokenize()

	require.Len(t, fragments, 1)
	assert.Equal(t, "Hello World", fragments[0].Text)
	assert.True(t, fragments[0].Style.IsDefault())
	assert.Equal(t, 0, fragments[0].Start)
	assert.Equal(t, 11, fragments[0].End)
}

func TestTokenizeEmpty(t *testing.T) {
	assert.Empty(t, Parse(""))
}

func TestTokenizeOnlyControlCodes(t *testing.T) {
	assert.Empty(t, Parse("\x02\x1d\x0f\x034,5\x04FFFFFF"))
}

func TestTokenizeTogglesByParity(t *testing.T) {
	fragments := Parse("\x02a\x02b")

	require.Len(t, fragments, 2)
	assert.Equal(t, "a", fragments[0].Text)
	assert.True(t, fragments[0].Bold)
	assert.Equal(t, "b", fragments[1].Text)
	assert.False(t, fragments[1].Bold)
}

func TestTokenizeToggles(t *testing.T) {
	tests := []struct {
		name    string
		code    byte
		checkFn func(types.Style) bool
	}{
		{"Bold", types.ControlBold, func(s types.Style) bool { return s.Bold }},
		{"Italic", types.ControlItalic, func(s types.Style) bool { return s.Italic }},
		{"Underline", types.ControlUnderline, func(s types.Style) bool { return s.Underline }},
		{"Strikethrough", types.ControlStrikethrough, func(s types.Style) bool { return s.Strikethrough }},
		{"Monospace", types.ControlMonospace, func(s types.Style) bool { return s.Monospace }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := string([]byte{tt.code}) + "on" + string([]byte{tt.code}) + "off"
			fragments := Parse(input)

			require.Len(t, fragments, 2)
			assert.True(t, tt.checkFn(fragments[0].Style), "%s should be on for %q", tt.name, fragments[0].Text)
			assert.False(t, tt.checkFn(fragments[1].Style), "%s should be off for %q", tt.name, fragments[1].Text)

			// only the toggled flag is set
			other := fragments[0].Style
			other.Bold, other.Italic, other.Underline, other.Strikethrough, other.Monospace = false, false, false, false, false
			assert.True(t, other.IsDefault())
		})
	}
}

func TestTokenizeLegacyColor(t *testing.T) {
	fragments := Parse("\x034,8hi")

	require.Len(t, fragments, 1)
	assert.Equal(t, "hi", fragments[0].Text)
	assert.Equal(t, types.Palette(4), fragments[0].TextColor)
	assert.Equal(t, types.Palette(8), fragments[0].BgColor)
}

func TestTokenizeColorCodes(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		text   string
		fg, bg types.PaletteColor
	}{
		{"Two digit foreground", "\x0312x", "x", types.Palette(12), types.PaletteColor{}},
		{"Third digit is text", "\x03123", "3", types.Palette(12), types.PaletteColor{}},
		{"Leading zero", "\x0304x", "x", types.Palette(4), types.PaletteColor{}},
		{"Trailing comma is text", "\x034,", ",", types.Palette(4), types.PaletteColor{}},
		{"Comma without digits", "\x034,x", ",x", types.Palette(4), types.PaletteColor{}},
		{"Second comma is text", "\x031,2,3", ",3", types.Palette(1), types.Palette(2)},
		{"Unvalidated index", "\x0399,98x", "x", types.Palette(99), types.Palette(98)},
		{"Background only is text", "\x03,5x", ",5x", types.PaletteColor{}, types.PaletteColor{}},
		{"No digits", "\x03x", "x", types.PaletteColor{}, types.PaletteColor{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fragments := Parse(tt.input)

			require.Len(t, fragments, 1)
			assert.Equal(t, tt.text, fragments[0].Text)
			assert.Equal(t, tt.fg, fragments[0].TextColor)
			assert.Equal(t, tt.bg, fragments[0].BgColor)
		})
	}
}

func TestTokenizeColorKeepsBackground(t *testing.T) {
	fragments := Parse("\x034,8a\x039b")

	require.Len(t, fragments, 2)
	assert.Equal(t, types.Palette(9), fragments[1].TextColor)
	assert.Equal(t, types.Palette(8), fragments[1].BgColor)
}

func TestTokenizeBareColorClears(t *testing.T) {
	fragments := Parse("\x034,8a\x03b")

	require.Len(t, fragments, 2)
	assert.Equal(t, types.Palette(4), fragments[0].TextColor)
	assert.False(t, fragments[1].TextColor.Set)
	assert.False(t, fragments[1].BgColor.Set)
}

func TestTokenizeHexColor(t *testing.T) {
	fragments := Parse("\x04ff0000x")

	require.Len(t, fragments, 1)
	assert.Equal(t, "x", fragments[0].Text)
	assert.Equal(t, "FF0000", fragments[0].HexColor)
	assert.Empty(t, fragments[0].HexBgColor)
}

func TestTokenizeHexColorCodes(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		text   string
		fg, bg string
	}{
		{"Foreground and background", "\x04FF00aa,00ff00x", "x", "FF00AA", "00FF00"},
		{"Seventh hex digit is text", "\x04abcdef1", "1", "ABCDEF", ""},
		{"Short background is text", "\x04abcdef,123x", ",123x", "ABCDEF", ""},
		{"Too few digits", "\x04ff00x", "ff00x", "", ""},
		{"Not hex", "\x04gggggg", "gggggg", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fragments := Parse(tt.input)

			require.Len(t, fragments, 1)
			assert.Equal(t, tt.text, fragments[0].Text)
			assert.Equal(t, tt.fg, fragments[0].HexColor)
			assert.Equal(t, tt.bg, fragments[0].HexBgColor)
		})
	}
}

func TestTokenizeHexColorKeepsBackground(t *testing.T) {
	fragments := Parse("\x04111111,222222a\x04333333b")

	require.Len(t, fragments, 2)
	assert.Equal(t, "333333", fragments[1].HexColor)
	assert.Equal(t, "222222", fragments[1].HexBgColor)
}

func TestTokenizePalettesClearIndependently(t *testing.T) {
	fragments := Parse("\x034,5\x04ABCDEFa\x04b\x03c")

	require.Len(t, fragments, 3)
	assert.Equal(t, "ABCDEF", fragments[0].HexColor)
	assert.Equal(t, types.Palette(4), fragments[0].TextColor)

	assert.Empty(t, fragments[1].HexColor)
	assert.Equal(t, types.Palette(4), fragments[1].TextColor)
	assert.Equal(t, types.Palette(5), fragments[1].BgColor)

	assert.False(t, fragments[2].TextColor.Set)
	assert.False(t, fragments[2].BgColor.Set)
}

func TestTokenizeReverse(t *testing.T) {
	fragments := Parse("\x034,8a\x16b\x16c")

	require.Len(t, fragments, 3)
	assert.Equal(t, types.Palette(8), fragments[1].TextColor)
	assert.Equal(t, types.Palette(4), fragments[1].BgColor)
	assert.Equal(t, types.Palette(4), fragments[2].TextColor)
	assert.Equal(t, types.Palette(8), fragments[2].BgColor)
}

func TestTokenizeReverseForegroundOnly(t *testing.T) {
	fragments := Parse("\x034\x16x")

	require.Len(t, fragments, 1)
	assert.False(t, fragments[0].TextColor.Set)
	assert.Equal(t, types.Palette(4), fragments[0].BgColor)
}

// Reverse only swaps palette colors, hex colors stay where they are.
func TestTokenizeReverseLeavesHexColors(t *testing.T) {
	fragments := Parse("\x04ABCDEF,123456\x16x")

	require.Len(t, fragments, 1)
	assert.Equal(t, "ABCDEF", fragments[0].HexColor)
	assert.Equal(t, "123456", fragments[0].HexBgColor)
}

func TestTokenizeResetClearsAll(t *testing.T) {
	fragments := Parse("\x02\x1d\x034,5\x04ABCDEFa\x0fb")

	require.Len(t, fragments, 2)
	assert.True(t, fragments[0].Bold)
	assert.True(t, fragments[0].Italic)
	assert.Equal(t, "b", fragments[1].Text)
	assert.True(t, fragments[1].Style.IsDefault())
}

func TestTokenizeSuppressesEmptyRuns(t *testing.T) {
	fragments := Parse("\x02\x02a")

	require.Len(t, fragments, 1)
	assert.Equal(t, "a", fragments[0].Text)
	assert.False(t, fragments[0].Bold)
	assert.Equal(t, 0, fragments[0].Start)
	assert.Equal(t, 1, fragments[0].End)
}

func TestTokenizeOffsets(t *testing.T) {
	fragments := Parse("\x02ab\x02cde\x1dé€\x1d")

	require.Len(t, fragments, 3)
	expected := [][2]int{{0, 2}, {2, 5}, {5, 7}}
	for i, fragment := range fragments {
		assert.Equal(t, expected[i][0], fragment.Start, "fragment %d start", i)
		assert.Equal(t, expected[i][1], fragment.End, "fragment %d end", i)
	}
}

func TestTokenizeSanitizesStrayControls(t *testing.T) {
	fragments := Parse("a\x01b\tc\nd\x02e")

	require.Len(t, fragments, 2)
	assert.Equal(t, "a&nbsp;b&nbsp;c\nd", fragments[0].Text)
	assert.Equal(t, 0, fragments[0].Start)
	assert.Equal(t, 17, fragments[0].End)
	assert.Equal(t, "e", fragments[1].Text)
	assert.Equal(t, 17, fragments[1].Start)
}

func TestTokenizeEscapedInput(t *testing.T) {
	input := ircfmt.Unescape("This is a $bcool$b, $c[red]red$r message!")
	fragments := Parse(input)

	require.Len(t, fragments, 5)
	assert.Equal(t, "This is a ", fragments[0].Text)
	assert.Equal(t, "cool", fragments[1].Text)
	assert.True(t, fragments[1].Bold)
	assert.Equal(t, ", ", fragments[2].Text)
	assert.False(t, fragments[2].Bold)
	assert.Equal(t, "red", fragments[3].Text)
	assert.Equal(t, types.Palette(4), fragments[3].TextColor)
	assert.Equal(t, " message!", fragments[4].Text)
	assert.True(t, fragments[4].Style.IsDefault())
	assert.Equal(t, "This is a cool, red message!", types.JoinText(fragments))
}

func TestTokenizeTwiceIsStable(t *testing.T) {
	tok := NewMIRCTokenizer("\x02a\x02b")
	first := tok.Tokenize()
	second := tok.Tokenize()

	assert.Equal(t, first, second)
	assert.Equal(t, 2, tok.GetStats().TotalFragments)
}

func TestTokenizeStats(t *testing.T) {
	tok := NewMIRCTokenizer("\x02a\x02\x034,5b\x03c\x04ABCDEFd\x04e\x01")
	tok.Tokenize()
	stats := tok.GetStats()

	assert.Equal(t, 5, stats.TotalFragments)
	assert.Equal(t, 3, stats.FormattedFragments)
	assert.Equal(t, 2, stats.ControlCodes[types.ControlBold])
	assert.Equal(t, 2, stats.ControlCodes[types.ControlColor])
	assert.Equal(t, 2, stats.ControlCodes[types.ControlHexColor])
	assert.Equal(t, 1, stats.ColorsMatched)
	assert.Equal(t, 1, stats.ColorsCleared)
	assert.Equal(t, 1, stats.HexColorsMatched)
	assert.Equal(t, 1, stats.HexColorsCleared)
	assert.Equal(t, 1, stats.SanitizedBytes)
	assert.Equal(t, 11, stats.TotalTextLength)
	assert.Equal(t, int64(len("\x02a\x02\x034,5b\x03c\x04ABCDEFd\x04e\x01")), stats.InputSize)
}

func TestTokenizeLogsControlCodes(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	tok := NewMIRCTokenizer("\x02a\x02b\x034c", WithLogger(zap.New(core)))
	tok.Tokenize()

	entries := logs.FilterMessage("control code").All()
	require.Len(t, entries, 3)
	assert.Equal(t, "BOLD", entries[0].ContextMap()["code"])
	assert.Equal(t, "COLOR", entries[2].ContextMap()["code"])
}

func TestTokenizeSkipsTraceAboveDebug(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	fragments := NewMIRCTokenizer("\x02a\x02b", WithLogger(zap.New(core))).Tokenize()

	assert.Len(t, fragments, 2)
	assert.Zero(t, logs.Len())
}
