package outline

import (
	"context"
	"fmt"
	"io"

	"github.com/dpup/prefab/logging"
	"github.com/twpayne/go-kml"
)

// WriteKML writes an indented KML document with one placemark per shape
func WriteKML(ctx context.Context, w io.Writer, shapes ...Shape) error {
	ctx = logging.EnsureLogger(ctx)

	placemarks := make([]kml.Element, 0, len(shapes))
	for _, s := range shapes {
		placemarks = append(placemarks, s.Placemark())
	}

	doc := kml.KML(kml.Document(placemarks...))
	if err := doc.WriteIndent(w, "", "  "); err != nil {
		logging.Errorw(ctx, "Outline: failed to write KML document",
			"error", err, "shapes", len(shapes))
		return fmt.Errorf("failed to write KML: %w", err)
	}
	return nil
}

func placemark(s Shape) *kml.CompoundElement {
	ring := s.Ring()
	// KML coordinates are longitude first
	coords := make([]kml.Coordinate, len(ring))
	for i, p := range ring {
		coords[i] = kml.Coordinate{Lon: p.Longitude, Lat: p.Latitude}
	}

	return kml.Placemark(
		kml.Name(s.Name()),
		kml.Description(fmt.Sprintf("area %.2f m², perimeter %.2f m", s.Area(), s.Perimeter())),
		kml.Polygon(
			kml.OuterBoundaryIs(
				kml.LinearRing(
					kml.Coordinates(coords...),
				),
			),
		),
	)
}
