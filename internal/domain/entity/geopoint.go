package entity

// GeoPoint is a WGS-84 (SRID 4326) coordinate pair. The persistence layer
// stores it longitude-first; this struct keeps the two axes named so call
// sites cannot swap them silently.
type GeoPoint struct {
	Latitude  float64
	Longitude float64
}
