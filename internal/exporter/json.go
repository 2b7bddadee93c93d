package exporter

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/badele/ircstyle/internal/types"
)

type TokenizerOutput struct {
	Fragments []types.Fragment    `json:"fragments" yaml:"fragments"`
	Stats     types.FragmentStats `json:"stats" yaml:"stats"`
}

func newTokenizerOutput(tok types.TokenizerWithStats) TokenizerOutput {
	return TokenizerOutput{
		Fragments: tok.Tokenize(),
		Stats:     tok.GetStats(),
	}
}

func ExportJSON(tok types.TokenizerWithStats) (string, error) {
	data, err := json.MarshalIndent(newTokenizerOutput(tok), "", "  ")
	if err != nil {
		return "", fmt.Errorf("JSON serialization error: %w", err)
	}

	return string(data), nil
}

func ExportYAML(tok types.TokenizerWithStats) (string, error) {
	data, err := yaml.Marshal(newTokenizerOutput(tok))
	if err != nil {
		return "", fmt.Errorf("YAML serialization error: %w", err)
	}

	return string(data), nil
}
