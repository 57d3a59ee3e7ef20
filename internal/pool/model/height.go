package model

import (
	"fmt"
	"strconv"
	"strings"
)

// NormalizeHeight drops whitespace, digit group separators and leading zeros so
// "0842,001 " and "842001" compare equal.
func NormalizeHeight(raw string) string {
	var b strings.Builder
	for _, r := range strings.TrimSpace(raw) {
		switch r {
		case ',', '_', ' ', '.', '\'', '\u00a0', '\u202f':
			continue
		}
		b.WriteRune(r)
	}
	normalized := strings.TrimLeft(b.String(), "0")
	if normalized == "" && b.Len() > 0 {
		return "0"
	}
	return normalized
}

// ParseHeight parses a height as rendered by the pool.
func ParseHeight(raw string) (int64, error) {
	normalized := NormalizeHeight(raw)
	if normalized == "" {
		return 0, fmt.Errorf("empty block height %q", raw)
	}
	height, err := strconv.ParseInt(normalized, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse block height %q: %w", raw, err)
	}
	if height < 0 {
		return 0, fmt.Errorf("negative block height %q", raw)
	}
	return height, nil
}
