package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeoPoint_RoundTrip(t *testing.T) {
	original := NewGeoPoint(45.4642, 9.1900)

	value, err := original.Value()
	require.NoError(t, err)

	var decoded GeoPoint
	require.NoError(t, decoded.Scan(value))

	assert.InDelta(t, original.Latitude(), decoded.Latitude(), 1e-9)
	assert.InDelta(t, original.Longitude(), decoded.Longitude(), 1e-9)
}

func TestGeoPoint_AxisOrder(t *testing.T) {
	point := NewGeoPoint(41.9028, 12.4964)

	// X carries longitude, Y carries latitude.
	assert.InDelta(t, 12.4964, point.Point.X(), 1e-9)
	assert.InDelta(t, 41.9028, point.Point.Y(), 1e-9)
}

func TestGeoPoint_ScanRejectsGarbage(t *testing.T) {
	var decoded GeoPoint
	assert.Error(t, decoded.Scan([]byte("not-ewkb")))
}
