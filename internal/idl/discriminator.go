package idl

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseValue reads a discriminator initializer such as "UINT64_C(0x2d41...)",
// "0x10ULL" or "42". Hex needs a 0x prefix; anything else is decimal.
func ParseValue(text string) (uint64, error) {
	s := strings.TrimSpace(text)
	if open := strings.Index(s, "("); open >= 0 {
		if end := strings.Index(s[open:], ")"); end >= 0 {
			s = s[open+1 : open+end]
		}
	}
	s = strings.TrimRight(strings.TrimSpace(s), "uUlL")

	base := 10
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		base = 16
		s = s[2:]
	}
	if s == "" {
		return 0, fmt.Errorf("empty value %q", text)
	}

	v, err := strconv.ParseUint(s, base, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid value %q: %w", text, err)
	}
	return v, nil
}
