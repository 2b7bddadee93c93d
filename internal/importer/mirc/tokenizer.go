package mirc

// Sources :
// - https://modern.ircdocs.horse/formatting.html
// - https://www.mirc.com/colors.html

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/badele/ircstyle/internal/types"
)

type Tokenizer struct {
	input     string
	pos       int
	start     int
	offset    int
	style     types.Style
	logger    *zap.Logger
	Fragments []types.Fragment    `json:"fragments"`
	Stats     types.FragmentStats `json:"stats"`
}

type Option func(*Tokenizer)

// WithLogger traces every interpreted control code at debug level.
func WithLogger(logger *zap.Logger) Option {
	return func(t *Tokenizer) {
		if logger != nil {
			t.logger = logger
		}
	}
}

func NewMIRCTokenizer(input string, opts ...Option) *Tokenizer {
	t := &Tokenizer{
		input:     input,
		pos:       0,
		start:     0,
		style:     types.NewStyle(),
		logger:    zap.NewNop(),
		Fragments: make([]types.Fragment, 0),
		Stats:     types.NewFragmentStats(len(input)),
	}

	for _, opt := range opts {
		opt(t)
	}

	return t
}

// Parse splits text into styled fragments.
func Parse(text string) []types.Fragment {
	return NewMIRCTokenizer(text).Tokenize()
}

func (t *Tokenizer) Tokenize() []types.Fragment {
	for t.pos < len(t.input) {
		t.nextCharacter()
	}

	// Flush the trailing run
	t.closeFragment()
	t.start = t.pos

	t.calculateStats()

	return t.Fragments
}

func (t *Tokenizer) nextCharacter() {
	c := t.input[t.pos]

	if !types.IsControl(c) {
		t.pos++
		return
	}

	// The pending run keeps the style it was written with
	t.closeFragment()
	t.Stats.ControlCodes[c]++

	switch c {
	case types.ControlReset:
		t.style.Reset()
	case types.ControlBold:
		t.style.Bold = !t.style.Bold
	case types.ControlItalic:
		t.style.Italic = !t.style.Italic
	case types.ControlUnderline:
		t.style.Underline = !t.style.Underline
	case types.ControlStrikethrough:
		t.style.Strikethrough = !t.style.Strikethrough
	case types.ControlMonospace:
		t.style.Monospace = !t.style.Monospace
	case types.ControlReverse:
		t.style.Reverse()
	case types.ControlColor:
		t.parseColor()
	case types.ControlHexColor:
		t.parseHexColor()
	}

	if ce := t.logger.Check(zap.DebugLevel, "control code"); ce != nil {
		ce.Write(
			zap.String("code", types.ControlNames[c]),
			zap.Int("pos", t.pos),
			zap.Stringer("style", &t.style),
		)
	}

	t.start = t.pos + 1
	t.pos++
}

// parseColor reads the optional "fg[,bg]" digits following a COLOR byte.
// On return t.pos points at the last consumed byte.
func (t *Tokenizer) parseColor() {
	fg, bg, size := matchColor(t.input[t.pos+1:])
	if size == 0 {
		t.style.ClearColors()
		t.Stats.ColorsCleared++
		return
	}

	t.style.TextColor = types.Palette(parseNumber(fg))
	if bg != "" {
		t.style.BgColor = types.Palette(parseNumber(bg))
	}

	t.pos += size
	t.Stats.ColorsMatched++
}

func (t *Tokenizer) parseHexColor() {
	fg, bg, size := matchHexColor(t.input[t.pos+1:])
	if size == 0 {
		t.style.ClearHexColors()
		t.Stats.HexColorsCleared++
		return
	}

	t.style.HexColor = strings.ToUpper(fg)
	if bg != "" {
		t.style.HexBgColor = strings.ToUpper(bg)
	}

	t.pos += size
	t.Stats.HexColorsMatched++
}

// closeFragment emits the pending run [start, pos) with the current style.
func (t *Tokenizer) closeFragment() {
	if t.pos <= t.start {
		return
	}

	text, replaced := sanitize(t.input[t.start:t.pos])
	if text == "" {
		return
	}

	start := t.offset
	end := start + utf8.RuneCountInString(text)

	t.Fragments = append(t.Fragments, types.Fragment{
		Text:  text,
		Style: t.style,
		Start: start,
		End:   end,
	})

	t.offset = end
	t.Stats.SanitizedBytes += replaced
}

func (t *Tokenizer) calculateStats() {
	t.Stats.TotalFragments = len(t.Fragments)
	t.Stats.FormattedFragments = 0
	t.Stats.TotalTextLength = t.offset

	for _, fragment := range t.Fragments {
		if fragment.IsFormatted() {
			t.Stats.FormattedFragments++
		}
	}
}

// GetStats returns the statistics collected by the last Tokenize call
func (t *Tokenizer) GetStats() types.FragmentStats {
	return t.Stats
}

// parseNumber converts the one or two digits matched by matchColor
func parseNumber(digits string) int {
	number, err := strconv.Atoi(digits)
	if err != nil {
		return 0
	}
	return number
}
