// Package geo provides great-circle helpers for placing circles on the
// Earth's surface.
package geo

import (
	"errors"
	"fmt"
	"math"

	"github.com/dpup/disclib/geometry"
)

var (
	ErrInvalidCoordinate = errors.New("invalid coordinates: latitude must be [-90, 90], longitude must be [-180, 180]")
	ErrInvalidBearing    = errors.New("bearing must be a finite number")
)

// NewPoint creates a Point from latitude and longitude values with validation
func NewPoint(latitude, longitude float64) (Point, error) {
	point := Point{Latitude: latitude, Longitude: longitude}
	if !IsValid(point) {
		return Point{}, ErrInvalidCoordinate
	}
	return point, nil
}

// IsValid reports whether the point lies within latitude and longitude bounds.
// NaN coordinates fail every comparison and are rejected.
func IsValid(point Point) bool {
	return point.Latitude >= -90 && point.Latitude <= 90 &&
		point.Longitude >= -180 && point.Longitude <= 180
}

// Distance calculates great-circle distance between two points in meters using the Haversine formula
func Distance(p1, p2 Point) (float64, error) {
	if !IsValid(p1) || !IsValid(p2) {
		return 0, ErrInvalidCoordinate
	}

	if p1 == p2 {
		return 0, nil
	}

	lat1 := toRadians(p1.Latitude)
	lon1 := toRadians(p1.Longitude)
	lat2 := toRadians(p2.Latitude)
	lon2 := toRadians(p2.Longitude)

	dlat := lat2 - lat1
	dlon := lon2 - lon1

	a := math.Sin(dlat/2)*math.Sin(dlat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dlon/2)*math.Sin(dlon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadius * c, nil
}

// Destination returns the point reached by travelling distanceMeters from
// origin along the great circle with the given initial bearing (degrees
// clockwise from north). The distance obeys the same rules as a circle
// radius: finite and non-negative.
func Destination(origin Point, bearingDegrees, distanceMeters float64) (Point, error) {
	if !IsValid(origin) {
		return Point{}, ErrInvalidCoordinate
	}
	if _, err := NewBearing(bearingDegrees); err != nil {
		return Point{}, err
	}
	if _, err := geometry.ParseRadius(distanceMeters); err != nil {
		return Point{}, fmt.Errorf("destination distance: %w", err)
	}

	if distanceMeters == 0 {
		return origin, nil
	}

	lat1 := toRadians(origin.Latitude)
	lon1 := toRadians(origin.Longitude)
	theta := toRadians(bearingDegrees)
	delta := distanceMeters / EarthRadius

	sinLat2 := math.Sin(lat1)*math.Cos(delta) + math.Cos(lat1)*math.Sin(delta)*math.Cos(theta)
	lat2 := math.Asin(clamp(sinLat2, -1, 1))
	lon2 := lon1 + math.Atan2(
		math.Sin(theta)*math.Sin(delta)*math.Cos(lat1),
		math.Cos(delta)-math.Sin(lat1)*sinLat2,
	)

	return Point{
		Latitude:  clamp(toDegrees(lat2), -90, 90),
		Longitude: NormalizeLongitude(toDegrees(lon2)),
	}, nil
}

// NormalizeLongitude wraps a longitude in degrees into [-180, 180]
func NormalizeLongitude(lng float64) float64 {
	lng = math.Mod(lng+180, 360)
	if lng < 0 {
		lng += 360
	}
	return lng - 180
}

// NewBearing validates a bearing in degrees and normalizes it into [0, 360)
func NewBearing(bearing float64) (float64, error) {
	if math.IsNaN(bearing) || math.IsInf(bearing, 0) {
		return 0, ErrInvalidBearing
	}
	return NormalizeBearing(bearing), nil
}

// NormalizeBearing wraps a bearing in degrees into [0, 360)
func NormalizeBearing(bearing float64) float64 {
	bearing = math.Mod(bearing, 360)
	if bearing < 0 {
		bearing += 360
	}
	if bearing >= 360 {
		bearing = 0
	}
	return bearing
}

func toRadians(deg float64) float64 { return deg * math.Pi / 180 }

func toDegrees(rad float64) float64 { return rad * 180 / math.Pi }

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
