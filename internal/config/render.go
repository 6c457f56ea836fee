package config

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"strconv"
	"strings"

	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/zclconf/go-cty/cty"
	"gopkg.in/yaml.v3"
)

// document is the shared wire shape for the structured formats.
type document struct {
	XMLName xml.Name `json:"-" yaml:"-" xml:"config"`
	N0      int      `json:"n0" yaml:"n0" xml:"n0"`
	H       int      `json:"h" yaml:"h" xml:"h"`
	NK      int      `json:"nk" yaml:"nk" xml:"nk"`
	A       float64  `json:"a" yaml:"a" xml:"a"`
	B       float64  `json:"b" yaml:"b" xml:"b"`
	C       float64  `json:"c" yaml:"c" xml:"c"`
}

// Render formats r as text in the given format. The output is meant for
// display and is not guaranteed to decode back byte-for-byte.
func Render(r Record, f Format) (string, error) {
	doc := document{N0: r.n0, H: r.h, NK: r.nk, A: r.a, B: r.b, C: r.c}

	switch f {
	case FormatJSON:
		out, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return "", err
		}
		return string(out) + "\n", nil

	case FormatYAML:
		out, err := yaml.Marshal(doc)
		if err != nil {
			return "", err
		}
		return string(out), nil

	case FormatXML:
		out, err := xml.MarshalIndent(doc, "", "  ")
		if err != nil {
			return "", err
		}
		return xml.Header + string(out) + "\n", nil

	case FormatCSV:
		var buf bytes.Buffer
		w := csv.NewWriter(&buf)
		header := make([]string, 0, len(Fields))
		for _, field := range Fields {
			header = append(header, field.Name)
		}
		if err := w.Write(header); err != nil {
			return "", err
		}
		if err := w.Write(r.literals()); err != nil {
			return "", err
		}
		w.Flush()
		return buf.String(), w.Error()

	case FormatText:
		literals := r.literals()
		pairs := make([]string, 0, len(Fields))
		for i, field := range Fields {
			pairs = append(pairs, field.Name+"="+literals[i])
		}
		return strings.Join(pairs, " ") + "\n", nil

	case FormatHCL:
		file := hclwrite.NewEmptyFile()
		body := file.Body()
		body.SetAttributeValue("n0", cty.NumberIntVal(int64(r.n0)))
		body.SetAttributeValue("h", cty.NumberIntVal(int64(r.h)))
		body.SetAttributeValue("nk", cty.NumberIntVal(int64(r.nk)))
		body.SetAttributeValue("a", cty.NumberFloatVal(r.a))
		body.SetAttributeValue("b", cty.NumberFloatVal(r.b))
		body.SetAttributeValue("c", cty.NumberFloatVal(r.c))
		return string(file.Bytes()), nil
	}

	return "", &Error{
		Kind:   KindUnsupportedFormat,
		Format: f,
		Err:    fmt.Errorf("no renderer for format %q", f),
	}
}

// literals returns the field values as text in Fields order. Floats always
// carry a decimal point so the text format infers them as floats.
func (r Record) literals() []string {
	return []string{
		strconv.Itoa(r.n0),
		strconv.Itoa(r.h),
		strconv.Itoa(r.nk),
		floatLiteral(r.a),
		floatLiteral(r.b),
		floatLiteral(r.c),
	}
}

func floatLiteral(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.ContainsAny(s, ".eEnN") {
		s += ".0"
	}
	return s
}
