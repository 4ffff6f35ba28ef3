package models

// ZoneEntry is one row of the zone catalog. Immutable after load.
type ZoneEntry struct {
	ZoneID  int    `json:"zone_id"`
	Name    string `json:"name"`
	Borough string `json:"borough,omitempty"`
	// Geometry holds the zone polygon rings as [lon, lat] pairs in the
	// GeoJSON convention. Empty when only the name table is loaded.
	Geometry [][][]float64 `json:"geometry,omitempty"`
	// Centroid is the representative point of the polygon, [lon, lat].
	Centroid []float64 `json:"centroid,omitempty"`
}
