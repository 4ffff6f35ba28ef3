// Package zones provides the zone catalog: a small immutable lookup
// from zone id to name, borough and boundary geometry. The catalog is
// loaded once at startup; reload builds a fresh snapshot and swaps it
// atomically so concurrent readers never see a half-updated table.
package zones

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"sort"
	"sync/atomic"

	"github.com/sudhirerahul/taxi-analytics-go/internal/models"
	"github.com/sudhirerahul/taxi-analytics-go/internal/spatial"
)

// Catalog resolves zone ids. Safe for concurrent use.
type Catalog struct {
	snapshot atomic.Pointer[snapshot]
}

type snapshot struct {
	zones      map[int]models.ZoneEntry
	geometry   bool
	rawGeoJSON []byte
	orderedIDs []int
}

// NewCatalog returns a catalog preloaded with the built-in NYC zone
// name table. Geometry comes later via LoadGeoJSON when available.
func NewCatalog() *Catalog {
	zones := make(map[int]models.ZoneEntry, len(defaultZoneNames))
	for id, name := range defaultZoneNames {
		zones[id] = models.ZoneEntry{ZoneID: id, Name: name}
	}
	c := &Catalog{}
	c.snapshot.Store(newSnapshot(zones, false, nil))
	return c
}

func newSnapshot(zones map[int]models.ZoneEntry, geometry bool, raw []byte) *snapshot {
	ids := make([]int, 0, len(zones))
	for id := range zones {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return &snapshot{zones: zones, geometry: geometry, rawGeoJSON: raw, orderedIDs: ids}
}

// geoFeature mirrors the subset of GeoJSON the catalog reads.
type geoFeature struct {
	Properties map[string]interface{} `json:"properties"`
	Geometry   struct {
		Type        string          `json:"type"`
		Coordinates json.RawMessage `json:"coordinates"`
	} `json:"geometry"`
}

type geoCollection struct {
	Type     string       `json:"type"`
	Features []geoFeature `json:"features"`
}

// LoadFile loads zone geometry from a GeoJSON file. A missing file is
// not an error; the built-in name table keeps serving lookups.
func (c *Catalog) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		log.Printf("Zone geometry file %s not found, using built-in zone names", path)
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read zone file: %w", err)
	}
	return c.LoadGeoJSON(data)
}

// LoadGeoJSON parses a FeatureCollection and swaps in a new snapshot.
// The current snapshot stays live until the new one is complete, so a
// bad payload leaves the catalog untouched.
func (c *Catalog) LoadGeoJSON(data []byte) error {
	var fc geoCollection
	if err := json.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("failed to parse zone GeoJSON: %w", err)
	}
	if fc.Type != "FeatureCollection" {
		return fmt.Errorf("expected FeatureCollection, got %q", fc.Type)
	}
	if len(fc.Features) == 0 {
		return fmt.Errorf("zone GeoJSON has no features")
	}

	zones := make(map[int]models.ZoneEntry, len(fc.Features))
	for i, f := range fc.Features {
		id, ok := featureZoneID(f.Properties)
		if !ok {
			return fmt.Errorf("feature %d has no zone id property", i)
		}
		entry := models.ZoneEntry{
			ZoneID:  id,
			Name:    featureString(f.Properties, "zone", "Zone", "name", "zone_name"),
			Borough: featureString(f.Properties, "borough", "Borough"),
		}
		if entry.Name == "" {
			entry.Name = defaultZoneNames[id]
		}
		if entry.Name == "" {
			entry.Name = fmt.Sprintf("Zone %d", id)
		}

		rings, err := featureRings(f.Geometry.Type, f.Geometry.Coordinates)
		if err != nil {
			return fmt.Errorf("feature %d (zone %d): %w", i, id, err)
		}
		if len(rings) > 0 {
			poly, err := spatial.NewPolygon(rings)
			if err != nil {
				return fmt.Errorf("feature %d (zone %d): %w", i, id, err)
			}
			entry.Geometry = poly.Rings()
			entry.Centroid = poly.Centroid()
		}
		zones[id] = entry
	}

	c.snapshot.Store(newSnapshot(zones, true, data))
	log.Printf("Zone catalog loaded: %d zones with geometry", len(zones))
	return nil
}

// featureRings extracts the outer rings of a Polygon or the first
// polygon of a MultiPolygon.
func featureRings(geomType string, coords json.RawMessage) ([][][]float64, error) {
	switch geomType {
	case "Polygon":
		var rings [][][]float64
		if err := json.Unmarshal(coords, &rings); err != nil {
			return nil, fmt.Errorf("bad Polygon coordinates: %w", err)
		}
		return rings, nil
	case "MultiPolygon":
		var polys [][][][]float64
		if err := json.Unmarshal(coords, &polys); err != nil {
			return nil, fmt.Errorf("bad MultiPolygon coordinates: %w", err)
		}
		if len(polys) == 0 {
			return nil, nil
		}
		return polys[0], nil
	case "":
		return nil, nil
	default:
		return nil, fmt.Errorf("unsupported geometry type %q", geomType)
	}
}

// featureZoneID tries the property names shapefile exports use.
func featureZoneID(props map[string]interface{}) (int, bool) {
	for _, key := range []string{"LocationID", "OBJECTID", "zone_id", "id"} {
		if v, ok := props[key]; ok {
			switch n := v.(type) {
			case float64:
				return int(n), true
			case string:
				var id int
				if _, err := fmt.Sscanf(n, "%d", &id); err == nil {
					return id, true
				}
			}
		}
	}
	return 0, false
}

func featureString(props map[string]interface{}, keys ...string) string {
	for _, key := range keys {
		if v, ok := props[key].(string); ok && v != "" {
			return v
		}
	}
	return ""
}

// Resolve looks up a zone entry by id.
func (c *Catalog) Resolve(zoneID int) (models.ZoneEntry, bool) {
	s := c.snapshot.Load()
	entry, ok := s.zones[zoneID]
	return entry, ok
}

// Known reports whether a zone id exists in the catalog. Satisfies
// the aggregation engine's ZoneResolver.
func (c *Catalog) Known(zoneID int) bool {
	_, ok := c.snapshot.Load().zones[zoneID]
	return ok
}

// Name returns the display name for a zone id, with the original's
// "Zone N" fallback for ids outside the catalog.
func (c *Catalog) Name(zoneID int) string {
	if entry, ok := c.Resolve(zoneID); ok {
		return entry.Name
	}
	return fmt.Sprintf("Zone %d", zoneID)
}

// All returns every entry in ascending zone-id order.
func (c *Catalog) All() []models.ZoneEntry {
	s := c.snapshot.Load()
	out := make([]models.ZoneEntry, 0, len(s.orderedIDs))
	for _, id := range s.orderedIDs {
		out = append(out, s.zones[id])
	}
	return out
}

// Count returns the number of catalog entries.
func (c *Catalog) Count() int {
	return len(c.snapshot.Load().zones)
}

// GeometryLoaded reports whether polygon geometry has been loaded.
func (c *Catalog) GeometryLoaded() bool {
	return c.snapshot.Load().geometry
}

// RawGeoJSON returns the last loaded FeatureCollection, or nil when
// only the name table is active. Served as-is to map clients.
func (c *Catalog) RawGeoJSON() []byte {
	return c.snapshot.Load().rawGeoJSON
}
