package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRecord() RawRecord {
	return RawRecord{"ident": "10/133", "lat": "393835N", "lon": "1174702W", "rad": "400NM"}
}

func TestValidateBatch(t *testing.T) {
	t.Run("accepts valid records in order", func(t *testing.T) {
		raws := []RawRecord{
			{"ident": "10/133", "lat": "393835N", "lon": "1174702W", "rad": "400NM"},
			{"ident": "10/140", "lat": "400000S", "lon": "0791500W", "rad": "87"},
		}
		accepted, errs := ValidateBatch(raws)

		require.Empty(t, errs)
		require.Len(t, accepted, 2)
		assert.Equal(t, "10/133", accepted[0].Ident)
		assert.Equal(t, 400, accepted[0].Rad)
		assert.Equal(t, "10/140", accepted[1].Ident)
		assert.Equal(t, -40.0, accepted[1].Lat)
		assert.Equal(t, -79.25, accepted[1].Lon)
	})

	t.Run("empty batch", func(t *testing.T) {
		accepted, errs := ValidateBatch(nil)
		assert.Empty(t, accepted)
		assert.Empty(t, errs)
	})

	t.Run("missing key yields one diagnostic and drops the record", func(t *testing.T) {
		broken := validRecord()
		delete(broken, "rad")
		raws := []RawRecord{broken, validRecord()}

		accepted, errs := ValidateBatch(raws)

		require.Len(t, errs, 1)
		assert.Equal(t, "ERROR: 1st notam missing required key rad.", errs[0])
		// The valid record in the same batch still goes through.
		require.Len(t, accepted, 1)
		assert.Equal(t, "10/133", accepted[0].Ident)
	})

	t.Run("validators do not short-circuit within a record", func(t *testing.T) {
		raws := []RawRecord{
			{"ident": "", "lat": "993835N", "lon": "1174702W", "rad": "NM"},
		}
		accepted, errs := ValidateBatch(raws)

		assert.Empty(t, accepted)
		require.Len(t, errs, 3)
		assert.Equal(t, "ERROR: 1st notam has invalid ident .", errs[0])
		assert.Equal(t, "ERROR: 1st notam has invalid latitude 993835N.", errs[1])
		assert.Equal(t, "ERROR: 1st notam has invalid radius NM.", errs[2])
	})

	t.Run("diagnostics use the ordinal position", func(t *testing.T) {
		bad := validRecord()
		bad["lon"] = "9991500W"
		raws := []RawRecord{validRecord(), validRecord(), bad}

		_, errs := ValidateBatch(raws)

		require.Len(t, errs, 1)
		assert.Equal(t, "ERROR: 3rd notam has invalid longitude 9991500W.", errs[0])
	})

	t.Run("no partial records", func(t *testing.T) {
		bad := validRecord()
		bad["lat"] = "903000N" // 90 degrees with nonzero minutes
		accepted, errs := ValidateBatch([]RawRecord{bad})

		assert.Empty(t, accepted)
		require.Len(t, errs, 1)
		assert.Contains(t, errs[0], "invalid latitude 903000N")
	})
}

func TestBuildRenderSet(t *testing.T) {
	t.Run("points and circles are index-aligned", func(t *testing.T) {
		broken := validRecord()
		delete(broken, "lat")
		raws := []RawRecord{
			{"ident": "10/133", "lat": "393835N", "lon": "1174702W", "rad": "400NM"},
			broken,
			{"ident": "10/140", "lat": "352119N", "lon": "1163405W", "rad": "270NM"},
		}

		set := BuildRenderSet(raws)

		require.Len(t, set.Points, 2)
		require.Len(t, set.Circles, 2)
		require.Len(t, set.Errors, 1)

		assert.Equal(t, "10/133", set.Points[0].Ident)
		assert.Equal(t, "10/140", set.Points[1].Ident)
		for _, circle := range set.Circles {
			assert.Len(t, circle, 360)
		}
	})

	t.Run("empty input", func(t *testing.T) {
		set := BuildRenderSet(nil)
		assert.Empty(t, set.Points)
		assert.Empty(t, set.Circles)
		assert.Empty(t, set.Errors)
	})
}
