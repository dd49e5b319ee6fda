package utils

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// ErrNotNumeric is returned when a token does not contain a plain decimal numeral.
var ErrNotNumeric = errors.New("token is not numeric")

var (
	amountFormatReplacer = strings.NewReplacer("$", "", "(", "", ")", "", ",", "", " ", "")
	numeralRegex         = regexp.MustCompile(`^(?:\d+(?:\.\d*)?|\.\d+)$`)
)

// ParseAmount converts a money token such as "$1,050.25", "(900.10)" or "-20" into a signed
// value. Parentheses or a leading minus make the value negative; zero is returned as 0.
func ParseAmount(token string) (float64, error) {
	t := strings.TrimSpace(token)
	if t == "" {
		return 0, fmt.Errorf("empty token: %w", ErrNotNumeric)
	}

	negative := (strings.HasPrefix(t, "(") && strings.HasSuffix(t, ")")) || strings.HasPrefix(t, "-")

	cleaned := amountFormatReplacer.Replace(t)
	if strings.HasPrefix(cleaned, "-") {
		negative = true
		cleaned = cleaned[1:]
	}
	if !numeralRegex.MatchString(cleaned) {
		return 0, fmt.Errorf("%q: %w", token, ErrNotNumeric)
	}

	value, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, fmt.Errorf("%q: %w", token, ErrNotNumeric)
	}
	if negative && value > 0 {
		return -value, nil
	}
	return value, nil
}

// parseAmountPtr is ParseAmount with absence in place of the error.
func parseAmountPtr(token string) *float64 {
	value, err := ParseAmount(token)
	if err != nil {
		return nil
	}
	return &value
}

// RoundCents rounds half away from zero to two decimal places.
func RoundCents(value float64) float64 {
	return math.Round(value*100) / 100
}
