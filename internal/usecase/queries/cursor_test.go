//go:build unit

package queries_test

import (
	"encoding/base64"
	"testing"
	"time"

	"bay-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCursor(t *testing.T) {
	t.Run("survives encoding at microsecond precision", func(t *testing.T) {
		c := queries.Cursor{
			BookingTime: time.Date(2026, 3, 1, 12, 30, 15, 123456789, time.UTC),
			ID:          uuid.New(),
		}
		got, err := queries.DecodeCursor(c.Encode())
		require.NoError(t, err)
		assert.Equal(t, c.ID, got.ID)
		assert.True(t, got.BookingTime.Equal(c.BookingTime.Truncate(time.Microsecond)))
	})

	t.Run("empty means first page", func(t *testing.T) {
		got, err := queries.DecodeCursor("")
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	enc := func(s string) string { return base64.RawURLEncoding.EncodeToString([]byte(s)) }
	for name, raw := range map[string]string{
		"not base64":     "%%%",
		"wrong version":  enc("v0:1:" + uuid.NewString()),
		"missing parts":  enc("v1:1"),
		"bad timestamp":  enc("v1:abc:" + uuid.NewString()),
		"bad booking id": enc("v1:1:not-a-uuid"),
	} {
		t.Run(name, func(t *testing.T) {
			_, err := queries.DecodeCursor(raw)
			assert.ErrorIs(t, err, queries.ErrInvalidCursor)
		})
	}
}
