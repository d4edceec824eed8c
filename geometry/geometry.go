// Package geometry computes areas and circumferences of circles and circular
// sectors.
//
// Every function validates its inputs before doing any arithmetic. A radius
// must be finite and non-negative; a sector angle is given in degrees and
// must lie in (0, 360]. Rejected inputs are reported as *Error values whose
// Kind distinguishes non-numeric input (KindType) from numeric input outside
// its domain (KindValue).
//
// All functions are pure and safe for concurrent use.
package geometry

import "math"

// CircleArea returns π·r² for the given radius.
func CircleArea(radius float64) (float64, error) {
	r, err := validateRadius(radius)
	if err != nil {
		return 0, err
	}
	return math.Pi * r * r, nil
}

// CircleCircumference returns 2·π·r for the given radius.
func CircleCircumference(radius float64) (float64, error) {
	r, err := validateRadius(radius)
	if err != nil {
		return 0, err
	}
	return 2 * math.Pi * r, nil
}

// SliceArea returns the area of a circular sector with the given radius and
// central angle in degrees. The radius is checked first, so an invalid
// radius is reported even when the angle is also invalid.
func SliceArea(radius, angleDegrees float64) (float64, error) {
	r, err := validateRadius(radius)
	if err != nil {
		return 0, err
	}
	a, err := validateAngle(angleDegrees)
	if err != nil {
		return 0, err
	}
	return (a / FullTurn) * math.Pi * r * r, nil
}
