package store_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gpswatch/notamview/internal/domain"
	"github.com/gpswatch/notamview/internal/store"
)

const testDay = "2018-10-29"

func record(ident string) domain.RawRecord {
	return domain.RawRecord{"ident": ident, "lat": "393835N", "lon": "1174702W", "rad": "400NM"}
}

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.New(t.TempDir())
	require.NoError(t, err)
	return s
}

func TestStore_LoadMissingDay(t *testing.T) {
	s := newTestStore(t)

	records, err := s.Load(testDay)

	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestStore_SaveAndLoad(t *testing.T) {
	s := newTestStore(t)
	records := []domain.RawRecord{record("10/133"), record("10/134")}

	require.NoError(t, s.Save(testDay, records))

	loaded, err := s.Load(testDay)
	require.NoError(t, err)
	assert.Equal(t, records, loaded)

	// The file lands under the expected day name.
	_, err = os.Stat(filepath.Join(s.Dir(), testDay+"_notams.yaml"))
	assert.NoError(t, err)
}

func TestStore_Add(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.Add(testDay, record("10/133")))
	require.NoError(t, s.Add(testDay, record("10/134"), record("10/135")))

	loaded, err := s.Load(testDay)
	require.NoError(t, err)
	require.Len(t, loaded, 3)
	assert.Equal(t, "10/133", loaded[0]["ident"])
	assert.Equal(t, "10/135", loaded[2]["ident"])
}

func TestStore_AddMissing(t *testing.T) {
	s := newTestStore(t)

	appended, err := s.AddMissing(testDay, record("10/133"), record("10/134"))
	require.NoError(t, err)
	assert.Equal(t, 2, appended)

	// A second sweep delivering the same advisories plus one new record
	// appends only the new one.
	appended, err = s.AddMissing(testDay, record("10/133"), record("10/134"), record("10/135"))
	require.NoError(t, err)
	assert.Equal(t, 1, appended)

	loaded, err := s.Load(testDay)
	require.NoError(t, err)
	require.Len(t, loaded, 3)
	assert.Equal(t, "10/133", loaded[0]["ident"])
	assert.Equal(t, "10/135", loaded[2]["ident"])
}

func TestStore_Delete(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.Save(testDay, []domain.RawRecord{record("10/133"), record("10/134")}))

	t.Run("removes a matching record", func(t *testing.T) {
		found, err := s.Delete(testDay, record("10/133"))
		require.NoError(t, err)
		assert.True(t, found)

		loaded, err := s.Load(testDay)
		require.NoError(t, err)
		require.Len(t, loaded, 1)
		assert.Equal(t, "10/134", loaded[0]["ident"])
	})

	t.Run("reports a miss", func(t *testing.T) {
		found, err := s.Delete(testDay, record("99/999"))
		require.NoError(t, err)
		assert.False(t, found)
	})
}

func TestStore_Update(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.Save(testDay, []domain.RawRecord{record("10/133")}))

	next := record("10/133")
	next["rad"] = "500NM"

	found, err := s.Update(testDay, record("10/133"), next)
	require.NoError(t, err)
	assert.True(t, found)

	loaded, err := s.Load(testDay)
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, "500NM", loaded[0]["rad"])

	found, err = s.Update(testDay, record("99/999"), next)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestStore_DaysAreIndependent(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.Add("2018-10-26", record("10/133")))
	require.NoError(t, s.Add("2018-10-27", record("10/134")))

	day1, err := s.Load("2018-10-26")
	require.NoError(t, err)
	day2, err := s.Load("2018-10-27")
	require.NoError(t, err)

	require.Len(t, day1, 1)
	require.Len(t, day2, 1)
	assert.Equal(t, "10/133", day1[0]["ident"])
	assert.Equal(t, "10/134", day2[0]["ident"])
}
