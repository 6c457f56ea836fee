package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatFromPath(t *testing.T) {
	testCases := []struct {
		path     string
		expected Format
	}{
		{"config.json", FormatJSON},
		{"/etc/app/config.XML", FormatXML},
		{"rows.csv", FormatCSV},
		{"settings.yaml", FormatYAML},
		{"settings.yml", FormatYAML},
		{"params.txt", FormatText},
		{"main.hcl", FormatHCL},
		{"config.ini", FormatUnknown},
		{"no-extension", FormatUnknown},
		{"archive.json.bak", FormatUnknown},
	}

	for _, tc := range testCases {
		t.Run(tc.path, func(t *testing.T) {
			assert.Equal(t, tc.expected, FormatFromPath(tc.path))
		})
	}
}

func TestParseFormat(t *testing.T) {
	assert.Equal(t, FormatText, ParseFormat("text"))
	assert.Equal(t, FormatText, ParseFormat(".TXT"))
	assert.Equal(t, FormatUnknown, ParseFormat(""))
	assert.Equal(t, "unknown", Format(42).String())

	for _, f := range Formats() {
		assert.Equal(t, f, ParseFormat(f.String()), "format name should parse back to itself")
	}
}
