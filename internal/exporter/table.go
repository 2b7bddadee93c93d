package exporter

import (
	"fmt"
	"io"
	"strings"

	"github.com/badele/ircstyle/internal/types"
)

func ExportFragmentsToTable(fragments []types.Fragment, writer io.Writer) error {
	fmt.Fprintln(writer, "\n┌─────────┬────────┬────────┬──────────────────────────────────────────────────┬──────────────────────────────────────┐")
	fmt.Fprintf(writer, "│ %-7s │ %-6s │ %-6s │ %-48s │ %-36s │\n", "Frag", "Start", "End", "Style", "Text")
	fmt.Fprintln(writer, "├─────────┼────────┼────────┼──────────────────────────────────────────────────┼──────────────────────────────────────┤")

	for i, fragment := range fragments {
		style := "-"
		if labels := StyleToLabels(fragment.Style); len(labels) > 0 {
			style = strings.Join(labels, ", ")
		}

		if _, err := fmt.Fprintf(writer, "│ %-7d │ %-6d │ %-6d │ %-48s │ %-36s │\n",
			i+1, fragment.Start, fragment.End, truncate(style, 48), truncate(fragment.Text, 36)); err != nil {
			return fmt.Errorf("error writing table row: %w", err)
		}
	}

	fmt.Fprintln(writer, "└─────────┴────────┴────────┴──────────────────────────────────────────────────┴──────────────────────────────────────┘")

	return nil
}

func truncate(s string, maxLen int) string {
	s = fmt.Sprintf("%q", s)

	// Remove quote added by %q
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}

	if len(s) > maxLen {
		return s[:maxLen-3] + "..."
	}
	return s
}
