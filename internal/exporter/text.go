package exporter

import (
	"github.com/badele/ircstyle/internal/types"
)

// ExportText returns the sanitized text without any style
func ExportText(fragments []types.Fragment) string {
	return types.JoinText(fragments)
}
