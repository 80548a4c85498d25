package output

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

type sample struct {
	Name    string   `json:"name" yaml:"name"`
	Clients []string `json:"clients" yaml:"clients"`
	Note    string   `json:"note,omitempty" yaml:"note,omitempty"`
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"", FormatText, false},
		{"text", FormatText, false},
		{"JSON", FormatJSON, false},
		{" yaml ", FormatYAML, false},
		{"xml", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormat_Structured(t *testing.T) {
	assert.False(t, FormatText.Structured())
	assert.True(t, FormatJSON.Structured())
	assert.True(t, FormatYAML.Structured())
}

func TestWrite_YAMLIsMultiLine(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, FormatYAML, sample{Name: "wmii", Clients: []string{"a", "b"}}))

	assert.Greater(t, bytes.Count(buf.Bytes(), []byte("\n")), 1)
	assert.NotContains(t, buf.String(), "note")

	var decoded sample
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, []string{"a", "b"}, decoded.Clients)
}

func TestWrite_JSONDoesNotEscapeHTML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, FormatJSON, sample{Name: "<wmii>"}))

	assert.Contains(t, buf.String(), `"name": "<wmii>"`)
	assert.True(t, json.Valid(buf.Bytes()))
}

func TestWrite_TextUnsupported(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, Write(&buf, FormatText, sample{}))
}
