package config

import (
	"path/filepath"
	"strings"
)

// Format tags a serialization format. FormatUnknown is an explicit variant
// for anything outside the supported set.
type Format int

const (
	FormatUnknown Format = iota
	FormatJSON
	FormatXML
	FormatCSV
	FormatYAML
	FormatText
	FormatHCL
)

var formatNames = map[Format]string{
	FormatUnknown: "unknown",
	FormatJSON:    "json",
	FormatXML:     "xml",
	FormatCSV:     "csv",
	FormatYAML:    "yaml",
	FormatText:    "txt",
	FormatHCL:     "hcl",
}

// formatAliases maps file extensions and user-supplied names to a Format.
var formatAliases = map[string]Format{
	"json": FormatJSON,
	"xml":  FormatXML,
	"csv":  FormatCSV,
	"yaml": FormatYAML,
	"yml":  FormatYAML,
	"txt":  FormatText,
	"text": FormatText,
	"hcl":  FormatHCL,
}

// Formats returns every supported format in a stable order.
func Formats() []Format {
	return []Format{FormatJSON, FormatXML, FormatCSV, FormatYAML, FormatText, FormatHCL}
}

func (f Format) String() string {
	if name, ok := formatNames[f]; ok {
		return name
	}
	return formatNames[FormatUnknown]
}

// ParseFormat resolves a format name such as "yaml" or "txt". The lookup is
// case-insensitive and ignores a leading dot.
func ParseFormat(name string) Format {
	key := strings.ToLower(strings.TrimPrefix(strings.TrimSpace(name), "."))
	if f, ok := formatAliases[key]; ok {
		return f
	}
	return FormatUnknown
}

// FormatFromPath selects a format from the file extension of path.
func FormatFromPath(path string) Format {
	return ParseFormat(filepath.Ext(path))
}
