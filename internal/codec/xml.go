package codec

import (
	"context"
	"encoding/xml"
	"errors"
	"io"
	"strings"

	"github.com/vk/rangeeval/internal/config"
	"github.com/vk/rangeeval/internal/ctxlog"
)

type xmlField struct {
	XMLName xml.Name
	Text    string `xml:",chardata"`
}

type xmlRoot struct {
	XMLName  xml.Name
	Children []xmlField `xml:",any"`
}

// DecodeXML maps each immediate child of the root element to one field,
// named by its tag and valued by its trimmed text. When a tag repeats the
// first occurrence wins.
func DecodeXML(ctx context.Context, r io.Reader) (config.RawFieldMap, error) {
	logger := ctxlog.FromContext(ctx)

	var root xmlRoot
	if err := xml.NewDecoder(r).Decode(&root); err != nil {
		if errors.Is(err, io.EOF) {
			err = errors.New("document has no root element")
		}
		return nil, config.NewDecodeError(config.FormatXML, err)
	}

	raw := make(config.RawFieldMap, len(root.Children))
	for _, child := range root.Children {
		name := child.XMLName.Local
		if _, seen := raw[name]; seen {
			logger.Debug("Ignoring repeated XML element.", "element", name)
			continue
		}
		raw[name] = strings.TrimSpace(child.Text)
	}

	logger.Debug("Decoded XML document.", "root", root.XMLName.Local, "elements", len(root.Children))
	return raw, nil
}
