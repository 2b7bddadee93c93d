package exporter

import (
	"fmt"
	"io"
	"sort"

	"github.com/badele/ircstyle/internal/types"
)

func ExportStats(fragments []types.Fragment, stats types.FragmentStats, writer io.Writer) {
	fmt.Fprintf(writer, "=== Fragment Statistics ===\n\n")
	fmt.Fprintf(writer, "  Input size: %d bytes\n", stats.InputSize)
	fmt.Fprintf(writer, "  Total fragments: %d\n", stats.TotalFragments)
	fmt.Fprintf(writer, "  Formatted fragments: %d\n", stats.FormattedFragments)
	fmt.Fprintf(writer, "  Text length: %d characters\n", stats.TotalTextLength)
	fmt.Fprintf(writer, "  Sanitized bytes: %d\n", stats.SanitizedBytes)

	if len(stats.ControlCodes) > 0 {
		fmt.Fprintln(writer, "\n--- Control Codes")

		type codeCount struct {
			Code  byte
			Name  string
			Count int
		}
		var codeCounts []codeCount
		for code, count := range stats.ControlCodes {
			codeCounts = append(codeCounts, codeCount{code, types.ControlNames[code], count})
		}
		sort.Slice(codeCounts, func(i, j int) bool {
			if codeCounts[i].Count == codeCounts[j].Count {
				return codeCounts[i].Code < codeCounts[j].Code
			}
			return codeCounts[i].Count > codeCounts[j].Count
		})

		for _, c := range codeCounts {
			fmt.Fprintf(writer, "  0x%02X %-14s: %5d\n", c.Code, c.Name, c.Count)
		}

		fmt.Fprintf(writer, "\n  Colors matched/cleared: %d/%d\n", stats.ColorsMatched, stats.ColorsCleared)
		fmt.Fprintf(writer, "  Hex colors matched/cleared: %d/%d\n", stats.HexColorsMatched, stats.HexColorsCleared)
	}

	labels := make(map[string]int)
	for _, fragment := range fragments {
		for _, label := range StyleToLabels(fragment.Style) {
			labels[label]++
		}
	}

	if len(labels) > 0 {
		fmt.Fprintln(writer, "\n--- Most Used Styles")
		displayTopN(writer, labels, 10)
	}
}

func displayTopN(writer io.Writer, data map[string]int, n int) {
	type entry struct {
		Key   string
		Count int
	}

	var entries []entry
	for k, v := range data {
		entries = append(entries, entry{k, v})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Count == entries[j].Count {
			return entries[i].Key < entries[j].Key
		}
		return entries[i].Count > entries[j].Count
	})

	for i, e := range entries {
		if i >= n {
			break
		}
		fmt.Fprintf(writer, "  %-30s: %5d\n", e.Key, e.Count)
	}
}
