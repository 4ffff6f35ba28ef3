package spatial

import (
	"math"
	"testing"
)

// A small square around Midtown Manhattan, wound clockwise the way
// shapefile exports often come out.
var midtownRing = [][][]float64{{
	{-73.99, 40.75},
	{-73.99, 40.76},
	{-73.98, 40.76},
	{-73.98, 40.75},
	{-73.99, 40.75},
}}

func TestNewPolygon_Containment(t *testing.T) {
	p, err := NewPolygon(midtownRing)
	if err != nil {
		t.Fatalf("NewPolygon failed: %v", err)
	}

	if !p.Contains(40.755, -73.985) {
		t.Error("Expected center point inside polygon")
	}
	if p.Contains(40.70, -74.00) {
		t.Error("Expected downtown point outside polygon")
	}
	if p.Contains(40.755, -73.97) {
		t.Error("Expected point east of polygon to be outside")
	}
}

func TestPolygon_Centroid(t *testing.T) {
	p, err := NewPolygon(midtownRing)
	if err != nil {
		t.Fatalf("NewPolygon failed: %v", err)
	}

	centroid := p.Centroid()
	if len(centroid) != 2 {
		t.Fatalf("Expected [lon lat], got %v", centroid)
	}
	if math.Abs(centroid[0]-(-73.985)) > 0.001 {
		t.Errorf("Centroid longitude %f, want ~-73.985", centroid[0])
	}
	if math.Abs(centroid[1]-40.755) > 0.001 {
		t.Errorf("Centroid latitude %f, want ~40.755", centroid[1])
	}
}

func TestPolygon_RingsRoundTrip(t *testing.T) {
	p, err := NewPolygon(midtownRing)
	if err != nil {
		t.Fatalf("NewPolygon failed: %v", err)
	}
	rings := p.Rings()
	if len(rings) != 1 || len(rings[0]) != 5 {
		t.Errorf("Expected original rings back, got %v", rings)
	}
}

func TestNewPolygon_Invalid(t *testing.T) {
	if _, err := NewPolygon(nil); err == nil {
		t.Error("Expected error for empty ring set")
	}
	if _, err := NewPolygon([][][]float64{{{-73.99, 40.75}, {-73.98, 40.76}}}); err == nil {
		t.Error("Expected error for degenerate ring")
	}
	if _, err := NewPolygon([][][]float64{{{-73.99}, {-73.98, 40.76}, {-73.97, 40.75}, {-73.99}}}); err == nil {
		t.Error("Expected error for malformed coordinate")
	}
}
