package zones

import (
	"sync"
	"testing"
)

const sampleGeoJSON = `{
	"type": "FeatureCollection",
	"features": [
		{
			"properties": {"LocationID": 1, "zone": "Newark Airport", "borough": "EWR"},
			"geometry": {
				"type": "Polygon",
				"coordinates": [[[-74.18, 40.68], [-74.17, 40.68], [-74.17, 40.70], [-74.18, 40.70], [-74.18, 40.68]]]
			}
		},
		{
			"properties": {"LocationID": 2, "zone": "Jamaica Bay", "borough": "Queens"},
			"geometry": {
				"type": "MultiPolygon",
				"coordinates": [[[[-73.83, 40.60], [-73.82, 40.60], [-73.82, 40.62], [-73.83, 40.62], [-73.83, 40.60]]]]
			}
		}
	]
}`

func TestCatalog_Defaults(t *testing.T) {
	c := NewCatalog()

	if c.Count() != 265 {
		t.Errorf("Expected 265 built-in zones, got %d", c.Count())
	}
	if c.GeometryLoaded() {
		t.Error("Expected no geometry before a GeoJSON load")
	}
	if name := c.Name(100); name != "Gravesend" {
		t.Errorf("Expected zone 100 to be Gravesend, got %q", name)
	}
	if name := c.Name(265); name != "Boerum Hill" {
		t.Errorf("Expected zone 265 to be Boerum Hill, got %q", name)
	}
	if !c.Known(1) || !c.Known(265) {
		t.Error("Expected ids 1 and 265 to be known")
	}
	if c.Known(0) || c.Known(266) {
		t.Error("Expected ids outside 1..265 to be unknown")
	}
}

func TestCatalog_NameFallback(t *testing.T) {
	c := NewCatalog()
	if name := c.Name(999); name != "Zone 999" {
		t.Errorf("Expected fallback name Zone 999, got %q", name)
	}
}

func TestCatalog_LoadGeoJSON(t *testing.T) {
	c := NewCatalog()
	if err := c.LoadGeoJSON([]byte(sampleGeoJSON)); err != nil {
		t.Fatalf("LoadGeoJSON failed: %v", err)
	}

	if !c.GeometryLoaded() {
		t.Error("Expected geometry flag after load")
	}
	if c.Count() != 2 {
		t.Errorf("Expected 2 zones after load, got %d", c.Count())
	}

	entry, ok := c.Resolve(1)
	if !ok {
		t.Fatal("Zone 1 missing after load")
	}
	if entry.Name != "Newark Airport" || entry.Borough != "EWR" {
		t.Errorf("Unexpected zone 1 entry: %+v", entry)
	}
	if len(entry.Geometry) == 0 {
		t.Error("Expected polygon rings on zone 1")
	}
	if len(entry.Centroid) != 2 {
		t.Fatalf("Expected [lon lat] centroid, got %v", entry.Centroid)
	}
	if lon := entry.Centroid[0]; lon < -74.18 || lon > -74.17 {
		t.Errorf("Centroid longitude %f outside zone bounds", lon)
	}

	if _, ok := c.Resolve(2); !ok {
		t.Error("Expected MultiPolygon feature to load as zone 2")
	}
	if c.RawGeoJSON() == nil {
		t.Error("Expected raw GeoJSON to be retained")
	}

	all := c.All()
	if len(all) != 2 || all[0].ZoneID != 1 || all[1].ZoneID != 2 {
		t.Errorf("Expected ascending zone order, got %+v", all)
	}
}

func TestCatalog_BadPayloadLeavesSnapshot(t *testing.T) {
	c := NewCatalog()
	before := c.Count()

	cases := [][]byte{
		[]byte(`not json`),
		[]byte(`{"type": "Feature"}`),
		[]byte(`{"type": "FeatureCollection", "features": []}`),
		[]byte(`{"type": "FeatureCollection", "features": [{"properties": {}}]}`),
	}
	for _, payload := range cases {
		if err := c.LoadGeoJSON(payload); err == nil {
			t.Errorf("Expected error for payload %s", payload)
		}
	}

	if c.Count() != before {
		t.Errorf("Failed load changed the catalog: %d zones, want %d", c.Count(), before)
	}
	if c.GeometryLoaded() {
		t.Error("Failed load must not set the geometry flag")
	}
}

func TestCatalog_ConcurrentReload(t *testing.T) {
	c := NewCatalog()

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				c.LoadGeoJSON([]byte(sampleGeoJSON))
			}
		}()
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				// Readers must always see a complete snapshot.
				n := c.Count()
				if n != 2 && n != 265 {
					t.Errorf("Saw torn snapshot with %d zones", n)
					return
				}
				c.Name(1)
				c.All()
			}
		}()
	}
	wg.Wait()
}

func TestCatalog_DefaultNameUsedWhenPropertyMissing(t *testing.T) {
	c := NewCatalog()
	payload := `{
		"type": "FeatureCollection",
		"features": [{"properties": {"LocationID": 100}, "geometry": {"type": "", "coordinates": null}}]
	}`
	if err := c.LoadGeoJSON([]byte(payload)); err != nil {
		t.Fatalf("LoadGeoJSON failed: %v", err)
	}
	if name := c.Name(100); name != "Gravesend" {
		t.Errorf("Expected built-in name fallback, got %q", name)
	}
}
