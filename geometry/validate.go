package geometry

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

const (
	paramRadius = "radius"
	paramAngle  = "angle"

	// FullTurn is the largest accepted sector angle in degrees
	FullTurn = 360.0
)

// ParseRadius coerces v to a real number and validates it as a radius.
//
// Accepted inputs are Go integer and float kinds, numeric strings and values
// with a Float64() (float64, error) method such as json.Number. Anything else
// fails with KindType.
func ParseRadius(v any) (float64, error) {
	r, ok := toReal(v)
	if !ok {
		return 0, typeError(paramRadius)
	}
	return validateRadius(r)
}

// ParseAngle coerces v to a real number and validates it as a sector angle
// in degrees, which must lie in (0, 360].
func ParseAngle(v any) (float64, error) {
	a, ok := toReal(v)
	if !ok {
		return 0, typeError(paramAngle)
	}
	return validateAngle(a)
}

func validateRadius(r float64) (float64, error) {
	if math.IsNaN(r) || math.IsInf(r, 0) {
		return 0, valueError(paramRadius, "must be a finite number")
	}
	if r < 0 {
		return 0, valueError(paramRadius, "cannot be negative")
	}
	return r, nil
}

func validateAngle(a float64) (float64, error) {
	if math.IsNaN(a) || math.IsInf(a, 0) {
		return 0, valueError(paramAngle, "must be a finite number")
	}
	if !(a > 0 && a <= FullTurn) {
		return 0, valueError(paramAngle, "must be in the range (0, 360]")
	}
	return a, nil
}

type floater interface {
	Float64() (float64, error)
}

// toReal reports false when v has no numeric interpretation.
func toReal(v any) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case float32:
		return float64(x), true
	case int:
		return float64(x), true
	case int8:
		return float64(x), true
	case int16:
		return float64(x), true
	case int32:
		return float64(x), true
	case int64:
		return float64(x), true
	case uint:
		return float64(x), true
	case uint8:
		return float64(x), true
	case uint16:
		return float64(x), true
	case uint32:
		return float64(x), true
	case uint64:
		return float64(x), true
	case uintptr:
		return float64(x), true
	case string:
		return parsed(strconv.ParseFloat(strings.TrimSpace(x), 64))
	case floater:
		return parsed(x.Float64())
	}
	return 0, false
}

func parsed(f float64, err error) (float64, bool) {
	if err == nil {
		return f, true
	}
	// Overflow parses to ±Inf, which fails the finiteness check.
	if errors.Is(err, strconv.ErrRange) {
		return f, true
	}
	return 0, false
}
