package outline

import (
	"github.com/twpayne/go-kml"

	"github.com/dpup/disclib/geo"
	"github.com/dpup/disclib/geometry"
)

// Sector is a pie slice of a disc. It opens at Bearing (degrees clockwise
// from north, normalised to [0, 360)) and sweeps Angle degrees clockwise.
type Sector struct {
	Center  geo.Point
	Radius  float64
	Bearing float64
	Angle   float64

	opts      options
	area      float64
	perimeter float64
}

// NewSector validates its inputs in order (center, radius, angle, bearing)
// and returns a Sector.
func NewSector(center geo.Point, radiusMeters, bearingDegrees, angleDegrees float64, opts ...Option) (*Sector, error) {
	if !geo.IsValid(center) {
		return nil, geo.ErrInvalidCoordinate
	}
	area, err := geometry.SliceArea(radiusMeters, angleDegrees)
	if err != nil {
		return nil, err
	}
	bearing, err := geo.NewBearing(bearingDegrees)
	if err != nil {
		return nil, err
	}
	circumference, err := geometry.CircleCircumference(radiusMeters)
	if err != nil {
		return nil, err
	}
	// A full turn has no center point and needs as many segments as a disc.
	minSegments := 1
	if angleDegrees == geometry.FullTurn {
		minSegments = 3
	}
	o, err := buildOptions("sector", minSegments, opts)
	if err != nil {
		return nil, err
	}

	arc := angleDegrees / geometry.FullTurn * circumference
	perimeter := arc + 2*radiusMeters
	if angleDegrees == geometry.FullTurn {
		perimeter = circumference
	}

	return &Sector{
		Center:    center,
		Radius:    radiusMeters,
		Bearing:   bearing,
		Angle:     angleDegrees,
		opts:      o,
		area:      area,
		perimeter: perimeter,
	}, nil
}

// Name returns the placemark name, "sector" unless set with WithName
func (s *Sector) Name() string { return s.opts.name }

// Area returns (angle/360)·π·r² in square meters
func (s *Sector) Area() float64 { return s.area }

// Perimeter returns the arc length plus both radii in meters. A full-turn
// sector has no radial edges and its perimeter is the circumference.
func (s *Sector) Perimeter() float64 { return s.perimeter }

// Segments returns the number of segments along the arc
func (s *Sector) Segments() int { return s.opts.segments }

// IsFullTurn reports whether the sector covers the whole disc
func (s *Sector) IsFullTurn() bool { return s.Angle == geometry.FullTurn }

// Ring returns the closed outline: center, the arc points from Bearing to
// Bearing+Angle, and center again. A full-turn sector omits the center and
// closes on its first arc point.
func (s *Sector) Ring() []geo.Point {
	n := s.opts.segments
	ring := make([]geo.Point, 0, n+3)
	if !s.IsFullTurn() {
		ring = append(ring, s.Center)
	}
	for i := 0; i <= n; i++ {
		bearing := s.Bearing + float64(i)*s.Angle/float64(n)
		// Inputs were validated by NewSector.
		p, _ := geo.Destination(s.Center, bearing, s.Radius)
		ring = append(ring, p)
	}
	if s.IsFullTurn() {
		ring[len(ring)-1] = ring[0]
		return ring
	}
	return append(ring, s.Center)
}

// Polyline returns the ring as a Google encoded polyline
func (s *Sector) Polyline() string {
	return geo.EncodePolyline(s.Ring())
}

// Placemark returns a KML placemark holding the sector polygon
func (s *Sector) Placemark() *kml.CompoundElement {
	return placemark(s)
}
