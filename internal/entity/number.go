package entity

import (
	"bytes"
	"encoding/json"
	"errors"
	"math/big"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Limits of a PostgreSQL NUMERIC value.
const (
	MaxIntegerDigits    = 131072
	MaxFractionalDigits = 16383

	maxNumberLength = MaxIntegerDigits + MaxFractionalDigits + 16
)

// Number is a loosely typed numeric request field read the way JavaScript
// Number() reads a value: JSON numbers, numeric strings (including 0x, 0o
// and 0b prefixes), booleans and null are accepted. Anything else decodes
// without error but is marked as not a number, so callers decide between
// rejecting it and falling back to zero.
type Number struct {
	Value decimal.Decimal
	// Set is false when the field was missing.
	Set bool
	// NaN is true when the field was present but could not be read as a number.
	NaN bool
	// Overflow is true when the value does not fit a NUMERIC column.
	Overflow bool
}

func NewNumber(d decimal.Decimal) Number {
	return Number{Value: d, Set: true}
}

func (n *Number) UnmarshalJSON(b []byte) error {
	*n = Number{}

	b = bytes.TrimSpace(b)

	switch {
	case len(b) == 0:
		return nil
	case bytes.Equal(b, []byte("null")), bytes.Equal(b, []byte("false")):
		*n = NewNumber(decimal.Zero)
		return nil
	case bytes.Equal(b, []byte("true")):
		*n = NewNumber(decimal.NewFromInt(1))
		return nil
	}

	switch b[0] {
	case '"':
		var s string

		err := json.Unmarshal(b, &s)
		if err != nil {
			return err
		}

		*n = parseString(s)
	case '[', '{':
		*n = Number{Set: true, NaN: true}
	default:
		*n = parseDecimal(string(b))
	}

	return nil
}

// Valid reports whether the field was present, numeric and within range.
func (n Number) Valid() bool {
	return n.Set && !n.NaN && !n.Overflow
}

// OrZero returns the value, or zero when the field is missing, not a number
// or out of range.
func (n Number) OrZero() decimal.Decimal {
	if !n.Valid() {
		return decimal.Zero
	}

	return n.Value
}

// InNumericRange reports whether d can be stored in a NUMERIC column.
func InNumericRange(d decimal.Decimal) bool {
	if d.IsZero() {
		return true
	}

	exp := int64(d.Exponent())
	if -exp > MaxFractionalDigits {
		return false
	}

	return int64(d.NumDigits())+exp <= MaxIntegerDigits
}

func parseString(s string) Number {
	s = strings.TrimSpace(s)

	switch s {
	case "":
		return NewNumber(decimal.Zero)
	case "Infinity", "+Infinity", "-Infinity":
		return Number{Set: true, Overflow: true}
	}

	if len(s) > 2 && s[0] == '0' {
		base := 0

		switch s[1] {
		case 'x', 'X':
			base = 16
		case 'o', 'O':
			base = 8
		case 'b', 'B':
			base = 2
		}

		if base != 0 {
			return parseInteger(s[2:], base)
		}
	}

	return parseDecimal(s)
}

func parseInteger(digits string, base int) Number {
	if len(digits) > maxNumberLength || digits[0] == '+' || digits[0] == '-' {
		return Number{Set: true, NaN: true}
	}

	i, ok := new(big.Int).SetString(digits, base)
	if !ok {
		return Number{Set: true, NaN: true}
	}

	return inRange(decimal.NewFromBigInt(i, 0))
}

func parseDecimal(s string) Number {
	if len(s) > maxNumberLength {
		return Number{Set: true, Overflow: true}
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		if exponentTooLarge(s) {
			return Number{Set: true, Overflow: true}
		}

		return Number{Set: true, NaN: true}
	}

	return inRange(d)
}

func inRange(d decimal.Decimal) Number {
	if !InNumericRange(d) {
		return Number{Set: true, Overflow: true}
	}

	return NewNumber(d)
}

// exponentTooLarge reports whether s is a well formed number whose exponent
// does not fit decimal.Decimal.
func exponentTooLarge(s string) bool {
	i := strings.IndexAny(s, "eE")
	if i <= 0 {
		return false
	}

	_, err := decimal.NewFromString(s[:i])
	if err != nil {
		return false
	}

	_, err = strconv.ParseInt(s[i+1:], 10, 64)

	return err == nil || errors.Is(err, strconv.ErrRange)
}
