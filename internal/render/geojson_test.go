package render_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gpswatch/notamview/internal/domain"
	"github.com/gpswatch/notamview/internal/render"
)

func TestGeoJSON(t *testing.T) {
	set := domain.BuildRenderSet([]domain.RawRecord{
		{"ident": "10/133", "lat": "393835N", "lon": "1174702W", "rad": "400NM"},
		{"ident": "10/140", "lat": "352119N", "lon": "1163405W", "rad": "87"},
	})

	fc := render.GeoJSON(set)

	assert.Equal(t, "FeatureCollection", fc.Type)
	// Two labels plus two boundaries.
	require.Len(t, fc.Features, 4)

	label := fc.Features[0]
	assert.Equal(t, "Point", label.Geometry.Type)
	assert.Equal(t, "10/133", label.Properties["ident"])
	coords, ok := label.Geometry.Coordinates.([]float64)
	require.True(t, ok)
	require.Len(t, coords, 2)
	// GeoJSON orders lon, lat.
	assert.InDelta(t, -117.78, coords[0], 0.01)
	assert.InDelta(t, 39.64, coords[1], 0.01)

	boundary := fc.Features[2]
	assert.Equal(t, "Polygon", boundary.Geometry.Type)
	assert.Equal(t, "10/133", boundary.Properties["ident"])
	rings, ok := boundary.Geometry.Coordinates.([][][]float64)
	require.True(t, ok)
	require.Len(t, rings, 1)
	// 360 samples plus the closing vertex.
	require.Len(t, rings[0], 361)
	assert.Equal(t, rings[0][0], rings[0][360])
}

func TestGeoJSON_Empty(t *testing.T) {
	fc := render.GeoJSON(domain.RenderSet{})
	assert.Equal(t, "FeatureCollection", fc.Type)
	assert.Empty(t, fc.Features)

	// Marshals to a features array, not null.
	data, err := json.Marshal(fc)
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"FeatureCollection","features":[]}`, string(data))
}
