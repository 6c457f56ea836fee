package codec

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/vk/rangeeval/internal/config"
	"github.com/vk/rangeeval/internal/ctxlog"
)

// byteOrderMark is the UTF-8 BOM some spreadsheet exports prepend.
const byteOrderMark = "\ufeff"

// DecodeCSV reads the header row and the first data row. Any further rows
// are ignored. A leading byte order mark is dropped and the first of any
// repeated columns wins.
func DecodeCSV(ctx context.Context, r io.Reader) (config.RawFieldMap, error) {
	logger := ctxlog.FromContext(ctx)

	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			err = errors.New("table is empty")
		}
		return nil, config.NewDecodeError(config.FormatCSV, err)
	}

	row, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			err = errors.New("table has a header but no data row")
		}
		return nil, config.NewDecodeError(config.FormatCSV, err)
	}

	header[0] = strings.TrimPrefix(header[0], byteOrderMark)

	raw := make(config.RawFieldMap, len(header))
	for i, column := range header {
		name := strings.TrimSpace(column)
		if name == "" {
			return nil, config.NewDecodeError(config.FormatCSV, fmt.Errorf("header column %d is empty", i+1))
		}
		if _, seen := raw[name]; seen {
			logger.Debug("Ignoring repeated CSV column.", "column", name)
			continue
		}
		raw[name] = strings.TrimSpace(row[i])
	}

	logger.Debug("Decoded CSV table.", "columns", len(header))
	return raw, nil
}
