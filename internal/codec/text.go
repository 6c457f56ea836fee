package codec

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/vk/rangeeval/internal/config"
	"github.com/vk/rangeeval/internal/ctxlog"
)

// DecodeText reads whitespace-separated key=value tokens from every line.
// Blank lines and lines starting with '#' are skipped. The first occurrence
// of a repeated key wins.
func DecodeText(ctx context.Context, r io.Reader) (config.RawFieldMap, error) {
	logger := ctxlog.FromContext(ctx)

	raw := make(config.RawFieldMap)
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		for _, token := range strings.Fields(line) {
			key, value, ok := strings.Cut(token, "=")
			if !ok || key == "" || strings.Contains(value, "=") {
				return nil, config.NewDecodeError(config.FormatText, fmt.Errorf("line %d: malformed token %q, want key=value", lineNo, token))
			}
			if _, seen := raw[key]; seen {
				logger.Debug("Ignoring repeated key.", "key", key, "line", lineNo)
				continue
			}
			raw[key] = inferLiteral(value)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, config.NewDecodeError(config.FormatText, err)
	}
	if len(raw) == 0 {
		return nil, config.NewDecodeError(config.FormatText, errors.New("no key=value tokens found"))
	}

	logger.Debug("Decoded text source.", "keys", len(raw), "lines", lineNo)
	return raw, nil
}

// inferLiteral decodes a literal with a '.' as float64 and anything else as
// int64. Literals that do not parse stay strings for the validator to reject.
func inferLiteral(lit string) any {
	if strings.Contains(lit, ".") {
		if f, err := strconv.ParseFloat(lit, 64); err == nil {
			return f
		}
		return lit
	}
	if n, err := strconv.ParseInt(lit, 10, 64); err == nil {
		return n
	}
	return lit
}
