package geo

// EarthRadius is the mean Earth radius in meters
const EarthRadius = 6371000.0

// Point represents a geographic coordinate
type Point struct {
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lng"`
}
