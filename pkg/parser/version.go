package parser

import (
	"fmt"
	"strconv"
	"strings"

	goversion "github.com/hashicorp/go-version"
)

// Lowest and highest server versions the grammar distinguishes.
const (
	MinServerVersion = 50600
	MaxServerVersion = 80019
)

// ParseServerVersion converts a version string to packed form. It accepts
// dotted versions such as "8.0.17" or "5.7.30-log" and packed integers such
// as "80017".
func ParseServerVersion(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty server version")
	}
	if !strings.Contains(s, ".") {
		n, err := strconv.Atoi(s)
		if err != nil {
			return 0, fmt.Errorf("invalid server version %q: %w", s, err)
		}
		if n < 10000 {
			return 0, fmt.Errorf("invalid server version %q: expected MMmmpp form such as 80017", s)
		}
		return n, nil
	}

	v, err := goversion.NewVersion(s)
	if err != nil {
		return 0, fmt.Errorf("invalid server version %q: %w", s, err)
	}
	seg := v.Segments()
	for len(seg) < 3 {
		seg = append(seg, 0)
	}
	if seg[1] > 99 || seg[2] > 99 {
		return 0, fmt.Errorf("invalid server version %q: minor and patch must be below 100", s)
	}
	return seg[0]*10000 + seg[1]*100 + seg[2], nil
}

// FormatServerVersion renders a packed version as "M.m.p".
func FormatServerVersion(v int) string {
	return fmt.Sprintf("%d.%d.%d", v/10000, v/100%100, v%100)
}
