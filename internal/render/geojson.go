// Package render turns a validated render set into GeoJSON for the map
// frontend.
package render

import (
	"github.com/gpswatch/notamview/internal/domain"
)

// FeatureCollection is a standard GeoJSON feature collection.
type FeatureCollection struct {
	Type     string    `json:"type"`
	Features []Feature `json:"features"`
}

// Feature is one geographic feature with geometry and properties.
type Feature struct {
	Type       string         `json:"type"`
	Properties map[string]any `json:"properties"`
	Geometry   Geometry       `json:"geometry"`
}

// Geometry holds a GeoJSON geometry. Coordinates nesting depends on Type:
// []float64 for Point, [][][]float64 for Polygon.
type Geometry struct {
	Type        string `json:"type"`
	Coordinates any    `json:"coordinates"`
}

// GeoJSON converts a render set into a feature collection: one Point feature
// per label and one Polygon feature per boundary circle, in that order,
// preserving record order within each kind. Coordinates follow the GeoJSON
// [lon, lat] convention; polygon rings are closed by repeating the first
// vertex.
func GeoJSON(set domain.RenderSet) FeatureCollection {
	fc := FeatureCollection{
		Type:     "FeatureCollection",
		Features: make([]Feature, 0, len(set.Points)+len(set.Circles)),
	}

	for _, p := range set.Points {
		fc.Features = append(fc.Features, Feature{
			Type: "Feature",
			Properties: map[string]any{
				"ident": p.Ident,
				"kind":  "label",
			},
			Geometry: Geometry{
				Type:        "Point",
				Coordinates: []float64{p.Lon, p.Lat},
			},
		})
	}

	for i, circle := range set.Circles {
		ring := make([][]float64, 0, len(circle)+1)
		for _, pt := range circle {
			ring = append(ring, []float64{pt.Lon, pt.Lat})
		}
		if len(circle) > 0 {
			ring = append(ring, []float64{circle[0].Lon, circle[0].Lat})
		}
		fc.Features = append(fc.Features, Feature{
			Type: "Feature",
			Properties: map[string]any{
				"ident": set.Points[i].Ident,
				"kind":  "boundary",
			},
			Geometry: Geometry{
				Type:        "Polygon",
				Coordinates: [][][]float64{ring},
			},
		})
	}

	return fc
}
