package types

import "strings"

/////////////////////////////////////////////////////////////////////////////
// FRAGMENT
/////////////////////////////////////////////////////////////////////////////

// Fragment is a run of sanitized text sharing a single style snapshot.
// Start and End are rune offsets into the concatenation of all fragment texts.
type Fragment struct {
	Text  string `json:"text" yaml:"text"`
	Style `yaml:",inline"`
	Start int `json:"start" yaml:"start"`
	End   int `json:"end" yaml:"end"`
}

// IsFormatted reports whether any style is active on the fragment.
func (f Fragment) IsFormatted() bool {
	return !f.Style.IsDefault()
}

func (f Fragment) String() string {
	return "FRAGMENT: " + f.Text + " [" + f.Style.String() + "]"
}

// JoinText concatenates the text of every fragment.
func JoinText(fragments []Fragment) string {
	var builder strings.Builder
	for _, fragment := range fragments {
		builder.WriteString(fragment.Text)
	}
	return builder.String()
}

/////////////////////////////////////////////////////////////////////////////
// FRAGMENT STATS
/////////////////////////////////////////////////////////////////////////////

type FragmentStats struct {
	TotalFragments     int          `json:"total_fragments" yaml:"total_fragments"`
	FormattedFragments int          `json:"formatted_fragments" yaml:"formatted_fragments"`
	ControlCodes       map[byte]int `json:"control_codes" yaml:"control_codes"`
	ColorsMatched      int          `json:"colors_matched" yaml:"colors_matched"`
	ColorsCleared      int          `json:"colors_cleared" yaml:"colors_cleared"`
	HexColorsMatched   int          `json:"hex_colors_matched" yaml:"hex_colors_matched"`
	HexColorsCleared   int          `json:"hex_colors_cleared" yaml:"hex_colors_cleared"`
	SanitizedBytes     int          `json:"sanitized_bytes" yaml:"sanitized_bytes"`
	TotalTextLength    int          `json:"total_text_length" yaml:"total_text_length"`
	InputSize          int64        `json:"input_size" yaml:"input_size"`
}

func NewFragmentStats(inputSize int) FragmentStats {
	return FragmentStats{
		ControlCodes: make(map[byte]int),
		InputSize:    int64(inputSize),
	}
}
