package exporter

import (
	"fmt"

	"github.com/badele/ircstyle/internal/processor"
	"github.com/badele/ircstyle/internal/types"
)

func ExportANSI(width, nblines int, fragments []types.Fragment) (string, error) {
	return exportANSI(width, nblines, fragments, false)
}

// ExportANSIInline renders fragments for a terminal on a single line.
func ExportANSIInline(width, nblines int, fragments []types.Fragment) (string, error) {
	return exportANSI(width, nblines, fragments, true)
}

func exportANSI(width, nblines int, fragments []types.Fragment, inline bool) (string, error) {
	screen, err := processor.NewScreen(width, nblines)
	if err != nil {
		return "", fmt.Errorf("error creating screen: %w", err)
	}
	defer screen.Close()

	screen.ApplyFragments(fragments)

	if inline {
		return screen.ExportANSIInline(), nil
	}

	return screen.ExportANSI(), nil
}
