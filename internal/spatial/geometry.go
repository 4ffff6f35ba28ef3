// Package spatial handles zone polygon geometry for the zone catalog.
package spatial

import (
	"fmt"

	"github.com/golang/geo/s2"
)

// Polygon is one zone boundary. Only the outer ring of each GeoJSON
// polygon participates in containment; taxi zones have no holes worth
// modelling.
type Polygon struct {
	rings [][][]float64
	loops []*s2.Loop
}

// NewPolygon builds a polygon from GeoJSON rings ([lon, lat] pairs).
func NewPolygon(rings [][][]float64) (*Polygon, error) {
	if len(rings) == 0 {
		return nil, fmt.Errorf("polygon has no rings")
	}

	p := &Polygon{rings: rings}
	outer := rings[0]
	if len(outer) < 4 {
		return nil, fmt.Errorf("outer ring has %d points, need at least 4", len(outer))
	}

	pts := make([]s2.Point, 0, len(outer))
	for _, coord := range outer {
		if len(coord) < 2 {
			return nil, fmt.Errorf("ring coordinate has %d values, need [lon, lat]", len(coord))
		}
		pts = append(pts, s2.PointFromLatLng(s2.LatLngFromDegrees(coord[1], coord[0])))
	}
	// GeoJSON rings repeat the first point; s2 loops must not.
	if pts[0] == pts[len(pts)-1] {
		pts = pts[:len(pts)-1]
	}

	loop := s2.LoopFromPoints(pts)
	// Winding order in shapefile exports is unreliable; normalize so
	// the loop encloses the zone, not the rest of the sphere.
	loop.Normalize()
	p.loops = append(p.loops, loop)

	return p, nil
}

// Rings returns the raw GeoJSON rings the polygon was built from.
func (p *Polygon) Rings() [][][]float64 {
	return p.rings
}

// Contains reports whether the point (lat, lon in degrees) falls
// inside the zone boundary.
func (p *Polygon) Contains(lat, lon float64) bool {
	pt := s2.PointFromLatLng(s2.LatLngFromDegrees(lat, lon))
	for _, loop := range p.loops {
		if loop.ContainsPoint(pt) {
			return true
		}
	}
	return false
}

// Centroid returns the representative point of the zone as [lon, lat].
func (p *Polygon) Centroid() []float64 {
	if len(p.loops) == 0 {
		return nil
	}
	ll := s2.LatLngFromPoint(p.loops[0].Centroid())
	return []float64{ll.Lng.Degrees(), ll.Lat.Degrees()}
}
