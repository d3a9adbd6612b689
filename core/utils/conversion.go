package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseInt converts user input to an int. Surrounding whitespace is ignored;
// anything else that is not a base 10 integer is an error.
func ParseInt(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("expected a number, got empty input")
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("expected a number, got %q", s)
	}
	return n, nil
}

// ParseNonNegativeInt is ParseInt restricted to values >= 0.
func ParseNonNegativeInt(s string) (int, error) {
	n, err := ParseInt(s)
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, fmt.Errorf("expected a non-negative number, got %d", n)
	}
	return n, nil
}

// NormalizeLabel trims s and collapses runs of inner whitespace to a single
// space, so "  Home   Appliances " becomes "Home Appliances".
func NormalizeLabel(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
