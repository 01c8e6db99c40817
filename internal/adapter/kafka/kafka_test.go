package kafka

import (
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gpswatch/notamview/internal/domain"
)

func TestSerializeToMessage(t *testing.T) {
	now := time.Date(2025, 7, 4, 15, 10, 0, 0, time.UTC)
	domain.SetClock(clockwork.NewFakeClockAt(now))
	t.Cleanup(func() { domain.SetClock(nil) })

	n := domain.Notam{Ident: "10/133", Lat: 40.0, Lon: -79.25, Rad: 270}

	msg, err := serializeToMessage("2025-07-04", n)
	require.NoError(t, err)

	assert.Equal(t, []byte("10/133"), msg.Key)
	assert.JSONEq(t, `{"ident":"10/133","lat":40,"lon":-79.25,"rad":270}`, string(msg.Value))
	assert.Len(t, msg.Headers, 2)
	assert.Equal(t, "day", msg.Headers[0].Key)
	assert.Equal(t, []byte("2025-07-04"), msg.Headers[0].Value)
	assert.Equal(t, "published_at", msg.Headers[1].Key)
	assert.Equal(t, []byte("2025-07-04T15:10:00Z"), msg.Headers[1].Value)
}
