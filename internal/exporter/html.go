package exporter

import (
	"fmt"
	"strings"

	"github.com/badele/ircstyle/internal/types"
)

// DefaultClassPrefix is prepended to every CSS class produced by RenderHTML
const DefaultClassPrefix = "irc-"

type HTMLOptions struct {
	ClassPrefix string
	Tag         string
}

func DefaultHTMLOptions() HTMLOptions {
	return HTMLOptions{
		ClassPrefix: DefaultClassPrefix,
		Tag:         "span",
	}
}

// StyleToLabels converts a style to its unprefixed labels.
// Palette and hex labels are independent and may both be present.
func StyleToLabels(style types.Style) []string {
	labels := []string{}

	if style.Bold {
		labels = append(labels, "bold")
	}
	if style.Italic {
		labels = append(labels, "italic")
	}
	if style.Underline {
		labels = append(labels, "underline")
	}
	if style.Strikethrough {
		labels = append(labels, "strikethrough")
	}
	if style.Monospace {
		labels = append(labels, "monospace")
	}

	// Palette colors
	if style.TextColor.Set {
		labels = append(labels, fmt.Sprintf("color-%d", style.TextColor.Index))
	}
	if style.BgColor.Set {
		labels = append(labels, fmt.Sprintf("bg-%d", style.BgColor.Index))
	}

	// Hex colors
	if style.HexColor != "" {
		labels = append(labels, "hex-color-"+style.HexColor)
	}
	if style.HexBgColor != "" {
		labels = append(labels, "hex-bg-"+style.HexBgColor)
	}

	return labels
}

// RenderHTML concatenates fragments, wrapping styled ones in a tag carrying
// their labels as CSS classes. Fragment text is written unchanged.
func RenderHTML(fragments []types.Fragment, opts HTMLOptions) string {
	if opts.Tag == "" {
		opts.Tag = "span"
	}

	var builder strings.Builder

	for _, fragment := range fragments {
		labels := StyleToLabels(fragment.Style)
		if len(labels) == 0 {
			builder.WriteString(fragment.Text)
			continue
		}

		for i, label := range labels {
			labels[i] = opts.ClassPrefix + label
		}

		fmt.Fprintf(&builder, `<%s class="%s">%s</%s>`, opts.Tag, strings.Join(labels, " "), fragment.Text, opts.Tag)
	}

	return builder.String()
}

// ExportHTML renders fragments with the default options
func ExportHTML(fragments []types.Fragment) string {
	return RenderHTML(fragments, DefaultHTMLOptions())
}
