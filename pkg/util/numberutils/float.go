package numberutils

import (
	"math"
	"strconv"
	"strings"
)

// ToFloat64WithError parses a decimal string, rejecting NaN and infinities.
func ToFloat64WithError(s string) (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, strconv.ErrRange
	}
	return f, nil
}

// IsFloatInRange checks if num is within the inclusive range [min, max].
func IsFloatInRange(num, min, max float64) bool {
	return num >= min && num <= max
}
