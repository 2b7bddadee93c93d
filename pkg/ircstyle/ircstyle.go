// Package ircstyle provides a public API for parsing mIRC formatted chat text.
//
// This package provides functions to:
//   - Convert chat logs from legacy character encodings (CP437, CP850, ISO-8859-1, Windows-1252)
//   - Decode the "$b", "$c[red]" escape notation into raw control codes
//   - Split formatted text into styled fragments
//   - Render fragments as HTML, plain text or ANSI
//
// Example usage:
//
//	import "github.com/badele/ircstyle/pkg/ircstyle"
//
//	fragments := ircstyle.Parse("\x02bold\x02 and \x034red")
//	html := ircstyle.RenderHTML(fragments, ircstyle.DefaultHTMLOptions())
package ircstyle

import (
	"bytes"
	"fmt"
	"io"

	"github.com/ergochat/irc-go/ircfmt"
	"go.uber.org/zap"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/badele/ircstyle/internal/exporter"
	"github.com/badele/ircstyle/internal/importer/mirc"
	"github.com/badele/ircstyle/internal/types"
)

// Type aliases for public API
type (
	// Fragment is a run of sanitized text sharing one style
	Fragment = types.Fragment

	// Style is the formatting state of a fragment
	Style = types.Style

	// PaletteColor is a legacy mIRC palette index, unset when absent
	PaletteColor = types.PaletteColor

	// FragmentStats contains statistics about a parse
	FragmentStats = types.FragmentStats

	// Tokenizer is the interface for all tokenizers
	Tokenizer = types.Tokenizer

	// TokenizerWithStats is a tokenizer that also provides statistics
	TokenizerWithStats = types.TokenizerWithStats

	// MIRCTokenizer is the tokenizer for mIRC formatted text
	MIRCTokenizer = mirc.Tokenizer

	// HTMLOptions configures RenderHTML
	HTMLOptions = exporter.HTMLOptions
)

// Control code constants
const (
	ControlBold          = types.ControlBold
	ControlColor         = types.ControlColor
	ControlHexColor      = types.ControlHexColor
	ControlReset         = types.ControlReset
	ControlMonospace     = types.ControlMonospace
	ControlReverse       = types.ControlReverse
	ControlItalic        = types.ControlItalic
	ControlStrikethrough = types.ControlStrikethrough
	ControlUnderline     = types.ControlUnderline
)

// Placeholder replaces stray control bytes in fragment text
const Placeholder = mirc.Placeholder

// ControlNames maps control codes to their names
var ControlNames = types.ControlNames

// UTF-8 BOM (Byte Order Mark) sequence
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// stripUTF8BOM removes the UTF-8 BOM if present at the beginning of the data
func stripUTF8BOM(data []byte) []byte {
	if len(data) >= 3 && bytes.Equal(data[:3], utf8BOM) {
		return data[3:]
	}
	return data
}

func decoderFor(sourceEncoding string) (*encoding.Decoder, error) {
	switch sourceEncoding {
	case "cp437":
		return charmap.CodePage437.NewDecoder(), nil
	case "cp850":
		return charmap.CodePage850.NewDecoder(), nil
	case "iso-8859-1":
		return charmap.ISO8859_1.NewDecoder(), nil
	case "windows-1252":
		return charmap.Windows1252.NewDecoder(), nil
	default:
		return nil, fmt.Errorf("unsupported encoding: %s", sourceEncoding)
	}
}

// ConvertToUTF8 converts byte data from a source encoding to UTF-8.
// Supported encodings: "utf8", "cp437", "cp850", "iso-8859-1", "windows-1252"
// The UTF-8 BOM (Byte Order Mark) is automatically stripped if present.
// Control bytes below 0x20 are identical in all of them, so formatting codes survive.
func ConvertToUTF8(data []byte, sourceEncoding string) ([]byte, error) {
	if sourceEncoding == "utf8" {
		return stripUTF8BOM(data), nil
	}

	decoder, err := decoderFor(sourceEncoding)
	if err != nil {
		return nil, err
	}

	reader := transform.NewReader(bytes.NewReader(data), decoder)
	utf8Data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("encoding conversion error: %w", err)
	}

	// Strip BOM if present after conversion
	return stripUTF8BOM(utf8Data), nil
}

// NormalizeLineEndings turns CRLF into LF. A lone CR is a stray control
// byte and is left for the parser to replace with Placeholder.
func NormalizeLineEndings(data []byte) []byte {
	return bytes.ReplaceAll(data, []byte("\r\n"), []byte("\n"))
}

// Unescape converts the "$b", "$i", "$c[red,blue]" notation to raw control codes.
func Unescape(text string) string {
	return ircfmt.Unescape(text)
}

// Escape converts raw control codes to the "$b", "$c[red]" notation.
// Hex colors have no escape and are kept as raw bytes.
func Escape(text string) string {
	return ircfmt.Escape(text)
}

// NewMIRCTokenizer creates a tokenizer for mIRC formatted text.
// The logger may be nil.
func NewMIRCTokenizer(text string, logger *zap.Logger) *MIRCTokenizer {
	return mirc.NewMIRCTokenizer(text, mirc.WithLogger(logger))
}

// Parse splits text into styled fragments.
func Parse(text string) []Fragment {
	return mirc.Parse(text)
}

// Sanitize replaces stray control bytes with Placeholder.
func Sanitize(text string) string {
	return mirc.Sanitize(text)
}

// DefaultHTMLOptions returns the options used by ExportHTML.
func DefaultHTMLOptions() HTMLOptions {
	return exporter.DefaultHTMLOptions()
}

// RenderHTML renders fragments as HTML spans with CSS classes.
func RenderHTML(fragments []Fragment, opts HTMLOptions) string {
	return exporter.RenderHTML(fragments, opts)
}

// StyleToLabels returns the unprefixed CSS labels of a style.
func StyleToLabels(style Style) []string {
	return exporter.StyleToLabels(style)
}

// ExportText returns the fragment text without styles.
func ExportText(fragments []Fragment) string {
	return exporter.ExportText(fragments)
}

// ExportANSI renders fragments for a terminal of the given size.
func ExportANSI(width, nblines int, fragments []Fragment) (string, error) {
	return exporter.ExportANSI(width, nblines, fragments)
}
