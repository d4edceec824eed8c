// Package outline places discs and circular sectors on the Earth's surface
// and renders their outlines as encoded polylines and KML placemarks.
//
// Areas and perimeters are planar (square meters and meters) and come from
// the geometry package; outlines are traced along great circles with the geo
// package.
package outline

import (
	"github.com/twpayne/go-kml"

	"github.com/dpup/disclib/geo"
	"github.com/dpup/disclib/geometry"
)

// Shape is a closed outline that can be rendered as KML
type Shape interface {
	Name() string
	Area() float64
	Perimeter() float64
	Ring() []geo.Point
	Placemark() *kml.CompoundElement
}

// Disc is a full circle of Radius meters around Center
type Disc struct {
	Center geo.Point
	Radius float64

	opts      options
	area      float64
	perimeter float64
}

// NewDisc validates center and radius and returns a Disc
func NewDisc(center geo.Point, radiusMeters float64, opts ...Option) (*Disc, error) {
	if !geo.IsValid(center) {
		return nil, geo.ErrInvalidCoordinate
	}
	area, err := geometry.CircleArea(radiusMeters)
	if err != nil {
		return nil, err
	}
	perimeter, err := geometry.CircleCircumference(radiusMeters)
	if err != nil {
		return nil, err
	}
	o, err := buildOptions("disc", 3, opts)
	if err != nil {
		return nil, err
	}
	return &Disc{
		Center:    center,
		Radius:    radiusMeters,
		opts:      o,
		area:      area,
		perimeter: perimeter,
	}, nil
}

// Name returns the placemark name, "disc" unless set with WithName
func (d *Disc) Name() string { return d.opts.name }

// Area returns π·r² in square meters
func (d *Disc) Area() float64 { return d.area }

// Perimeter returns 2·π·r in meters
func (d *Disc) Perimeter() float64 { return d.perimeter }

// Segments returns the number of segments in the ring
func (d *Disc) Segments() int { return d.opts.segments }

// Ring returns the closed outline starting due north and running clockwise.
// The first point is repeated at the end.
func (d *Disc) Ring() []geo.Point {
	n := d.opts.segments
	ring := make([]geo.Point, 0, n+1)
	for i := 0; i < n; i++ {
		bearing := float64(i) * geometry.FullTurn / float64(n)
		// Inputs were validated by NewDisc.
		p, _ := geo.Destination(d.Center, bearing, d.Radius)
		ring = append(ring, p)
	}
	return append(ring, ring[0])
}

// Polyline returns the ring as a Google encoded polyline
func (d *Disc) Polyline() string {
	return geo.EncodePolyline(d.Ring())
}

// Placemark returns a KML placemark holding the disc polygon
func (d *Disc) Placemark() *kml.CompoundElement {
	return placemark(d)
}
