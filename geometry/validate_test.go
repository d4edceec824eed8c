package geometry

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRadius_AcceptsNumericInputs(t *testing.T) {
	tests := []struct {
		name     string
		input    any
		expected float64
	}{
		{"float64", 2.5, 2.5},
		{"float32", float32(0.5), 0.5},
		{"int", 3, 3},
		{"int8", int8(7), 7},
		{"int64", int64(1 << 40), 1 << 40},
		{"uint16", uint16(65535), 65535},
		{"uint64", uint64(12), 12},
		{"string", "4.2", 4.2},
		{"padded string", "  10 ", 10},
		{"exponent string", "1e3", 1000},
		{"json.Number", json.Number("6.25"), 6.25},
		{"zero", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := ParseRadius(tt.input)
			require.NoError(t, err)
			assert.InDelta(t, tt.expected, r, 1e-12)
		})
	}
}

func TestParseRadius_RejectsNonNumericInputs(t *testing.T) {
	inputs := []any{
		nil,
		"",
		"abc",
		"1.2.3",
		true,
		[]float64{1},
		struct{}{},
		json.Number("twelve"),
	}

	for _, input := range inputs {
		t.Run(fmt.Sprintf("%T/%v", input, input), func(t *testing.T) {
			_, err := ParseRadius(input)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrType)
			assert.NotErrorIs(t, err, ErrValue)
			assert.Equal(t, KindType, KindOf(err))
			assert.EqualError(t, err, "radius must be a real number")
		})
	}
}

func TestParseRadius_RejectsOutOfDomainInputs(t *testing.T) {
	tests := []struct {
		input any
		msg   string
	}{
		{-1, "radius cannot be negative"},
		{"-0.01", "radius cannot be negative"},
		{math.NaN(), "radius must be a finite number"},
		{"inf", "radius must be a finite number"},
		{"NaN", "radius must be a finite number"},
		{"1e400", "radius must be a finite number"},
		{float32(math.Inf(-1)), "radius must be a finite number"},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprint(tt.input), func(t *testing.T) {
			_, err := ParseRadius(tt.input)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrValue)
			assert.Equal(t, KindValue, KindOf(err))
			assert.EqualError(t, err, tt.msg)
		})
	}
}

func TestParseAngle(t *testing.T) {
	a, err := ParseAngle("90")
	require.NoError(t, err)
	assert.Equal(t, 90.0, a)

	a, err = ParseAngle(360)
	require.NoError(t, err)
	assert.Equal(t, 360.0, a)

	_, err = ParseAngle("wide")
	assert.ErrorIs(t, err, ErrType)
	assert.EqualError(t, err, "angle must be a real number")

	_, err = ParseAngle(0)
	assert.ErrorIs(t, err, ErrValue)
	assert.EqualError(t, err, "angle must be in the range (0, 360]")

	_, err = ParseAngle(math.Inf(1))
	assert.EqualError(t, err, "angle must be a finite number")
}

func TestErrorKindSurvivesWrapping(t *testing.T) {
	_, err := CircleArea(-3)
	wrapped := fmt.Errorf("computing disc area: %w", err)

	assert.ErrorIs(t, wrapped, ErrValue)
	assert.Equal(t, KindValue, KindOf(wrapped))

	var gerr *Error
	require.True(t, errors.As(wrapped, &gerr))
	assert.Equal(t, "radius", gerr.Param)
	assert.Equal(t, "value", gerr.Kind.String())
}

func TestKindOf_UnrelatedError(t *testing.T) {
	assert.Equal(t, Kind(0), KindOf(errors.New("boom")))
	assert.Equal(t, Kind(0), KindOf(nil))
	assert.Equal(t, "unknown", Kind(0).String())
}
