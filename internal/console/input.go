package console

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/nhle/projects/internal/model"
)

// ParseError reports user input that could not be converted to the
// requested numeric type.
type ParseError struct {
	Input string
	Kind  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s is not a valid %s.", e.Input, e.Kind)
}

// inputError wraps a failure to read from the console itself.
type inputError struct {
	err error
}

func (e *inputError) Error() string { return "reading input: " + e.err.Error() }
func (e *inputError) Unwrap() error { return e.err }

// ParseString trims text and returns nil when nothing but whitespace was
// entered.
func ParseString(text string) *string {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

// ParseInt converts text to an int. Blank input yields nil.
func ParseInt(text string) (*int, error) {
	s := ParseString(text)
	if s == nil {
		return nil, nil
	}
	n, err := strconv.Atoi(*s)
	if err != nil {
		return nil, &ParseError{Input: *s, Kind: "number"}
	}
	return &n, nil
}

// maxExponent bounds the scale of accepted decimals; rescaling a value
// like 1e2000000000 to two digits would not finish.
const maxExponent = 20

// ParseDecimal converts text to an hour value with exactly two fractional
// digits. Blank input yields an invalid (null) value.
func ParseDecimal(text string) (decimal.NullDecimal, error) {
	s := ParseString(text)
	if s == nil {
		return decimal.NullDecimal{}, nil
	}
	d, err := decimal.NewFromString(*s)
	if err != nil || d.Exponent() > maxExponent || d.Exponent() < -maxExponent {
		return decimal.NullDecimal{}, &ParseError{Input: *s, Kind: "decimal number"}
	}
	return model.Hours(d), nil
}
