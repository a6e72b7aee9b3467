package model

import (
	"database/sql/driver"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/encoding/ewkb"
)

// geoPointSRID is the WGS-84 spatial reference, matching the column type.
const geoPointSRID = 4326

// GeoPoint maps a PostGIS geometry(Point,4326) column through EWKB. The
// underlying orb.Point is longitude-first (X = lon, Y = lat).
type GeoPoint struct {
	orb.Point
}

// GormDataType tells GORM the column type to use in migrations.
func (GeoPoint) GormDataType() string {
	return "geometry(Point,4326)"
}

// Value implements driver.Valuer, encoding the point as EWKB with SRID 4326.
func (p GeoPoint) Value() (driver.Value, error) {
	return ewkb.Value(p.Point, geoPointSRID).Value()
}

// Scan implements sql.Scanner, decoding hex or raw (E)WKB from the database.
func (p *GeoPoint) Scan(src any) error {
	var point orb.Point
	if err := ewkb.Scanner(&point).Scan(src); err != nil {
		return err
	}
	p.Point = point

	return nil
}

// Latitude returns the point's Y axis.
func (p GeoPoint) Latitude() float64 {
	return p.Point.Y()
}

// Longitude returns the point's X axis.
func (p GeoPoint) Longitude() float64 {
	return p.Point.X()
}

// NewGeoPoint builds a GeoPoint from latitude/longitude.
func NewGeoPoint(lat, lon float64) *GeoPoint {
	return &GeoPoint{Point: orb.Point{lon, lat}}
}
