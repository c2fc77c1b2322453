package output

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"jsonpolish/internal/jsonvalue"
)

// FormatNumber returns the canonical text for a number literal: the float64
// formatting of encoding/json, so 1.0 becomes 1 and 1e3 becomes 1000.
// Negative zero prints as 0 and literals beyond float64 range print as null.
func FormatNumber(n jsonvalue.Number) (string, error) {
	f, err := n.Float64()
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return "", fmt.Errorf("invalid number literal %q", string(n))
	}
	if math.IsInf(f, 0) {
		return "null", nil
	}
	if f == 0 {
		return "0", nil
	}

	b, err := json.Marshal(f)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// isIntegerText reports whether canonical number text has no fraction or exponent.
func isIntegerText(s string) bool {
	return !strings.ContainsAny(s, ".eE")
}
