package exporter

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/badele/ircstyle/internal/importer/mirc"
)

const sample = "\x02bold\x02 \x034,8red\x0f plain\x01"

func TestExportText(t *testing.T) {
	assert.Equal(t, "bold red plain&nbsp;", ExportText(mirc.Parse(sample)))
}

func TestExportJSON(t *testing.T) {
	out, err := ExportJSON(mirc.NewMIRCTokenizer(sample))
	require.NoError(t, err)

	var decoded struct {
		Fragments []map[string]interface{} `json:"fragments"`
		Stats     map[string]interface{}   `json:"stats"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))

	require.Len(t, decoded.Fragments, 4)
	assert.Equal(t, "bold", decoded.Fragments[0]["text"])
	assert.Equal(t, true, decoded.Fragments[0]["bold"])
	assert.Nil(t, decoded.Fragments[0]["text_color"])
	assert.Equal(t, float64(4), decoded.Fragments[2]["text_color"])
	assert.Equal(t, float64(8), decoded.Fragments[2]["bg_color"])
	assert.Equal(t, float64(4), decoded.Stats["total_fragments"])
}

func TestExportYAML(t *testing.T) {
	out, err := ExportYAML(mirc.NewMIRCTokenizer("\x04abcdef,000000x"))
	require.NoError(t, err)

	var decoded struct {
		Fragments []map[string]interface{} `yaml:"fragments"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(out), &decoded))

	require.Len(t, decoded.Fragments, 1)
	assert.Equal(t, "x", decoded.Fragments[0]["text"])
	assert.Equal(t, "ABCDEF", decoded.Fragments[0]["hex_color"])
	assert.Equal(t, "000000", decoded.Fragments[0]["hex_bg_color"])
	assert.Nil(t, decoded.Fragments[0]["text_color"])
}

func TestExportFragmentsToTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, ExportFragmentsToTable(mirc.Parse(sample), &buf))

	out := buf.String()
	assert.Contains(t, out, "color-4, bg-8")
	assert.Contains(t, out, `plain&nbsp;`)
	assert.Equal(t, 2, strings.Count(out, "│ -"))
}

func TestExportStats(t *testing.T) {
	tok := mirc.NewMIRCTokenizer(sample)
	fragments := tok.Tokenize()

	var buf bytes.Buffer
	ExportStats(fragments, tok.GetStats(), &buf)

	out := buf.String()
	assert.Contains(t, out, "Total fragments: 4")
	assert.Contains(t, out, "0x02 BOLD")
	assert.Contains(t, out, "Colors matched/cleared: 1/0")
	assert.Contains(t, out, "color-4")
}
