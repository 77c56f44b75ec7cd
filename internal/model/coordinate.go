package model

// Coordinate is a (longitude, latitude) pair in GeoJSON axis order.
// Longitude ranges over [-180, 180], latitude over [-90, 90].
type Coordinate struct {
	Lon float64
	Lat float64
}
