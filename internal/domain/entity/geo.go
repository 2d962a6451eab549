package entity

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
)

// EarthRadiusKm is the sphere radius of the SQL distance and of the feed bounding box,
// so the prefilter never drops a campaign the exact check would keep.
const EarthRadiusKm = orb.EarthRadius / 1000

// GeoPoint is a WGS84 coordinate in degrees.
type GeoPoint struct {
	Lat float64 `json:"latitude"`
	Lon float64 `json:"longitude"`
}

func (p GeoPoint) orbPoint() orb.Point {
	return orb.Point{p.Lon, p.Lat}
}

// GeoBounds is a lat/lon box used to prefilter candidates before the exact distance check.
type GeoBounds struct {
	MinLat float64
	MaxLat float64
	MinLon float64
	MaxLon float64
}

// BoundsAround returns the box containing every point within radiusKm of center.
func BoundsAround(center GeoPoint, radiusKm float64) GeoBounds {
	bound := geo.NewBoundAroundPoint(center.orbPoint(), radiusKm*1000)

	return GeoBounds{
		MinLat: bound.Min.Lat(),
		MaxLat: bound.Max.Lat(),
		MinLon: bound.Min.Lon(),
		MaxLon: bound.Max.Lon(),
	}
}
