//go:build unit

package pgconv_test

import (
	"testing"
	"time"

	"bay-booking/internal/pkg/errs"
	"bay-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
)

func TestNullableConversions(t *testing.T) {
	assert.Nil(t, pgconv.UUIDPtrFromPgtype(pgtype.UUID{}))
	assert.Nil(t, pgconv.StringPtrFromPgtype(pgtype.Text{}))
	assert.Nil(t, pgconv.TimePtrFromPgtype(pgtype.Timestamptz{}))
	assert.False(t, pgconv.UUIDPtrToPgtype(nil).Valid)
	assert.False(t, pgconv.StringPtrToPgtype(nil).Valid)
	assert.False(t, pgconv.OptionalStringToPgtype("").Valid)

	id := uuid.New()
	got := pgconv.UUIDPtrFromPgtype(pgconv.UUIDToPgtype(id))
	if assert.NotNil(t, got) {
		assert.Equal(t, id, *got)
	}

	at := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	ptr := pgconv.TimePtrFromPgtype(pgconv.TimeToPgtype(at))
	if assert.NotNil(t, ptr) {
		assert.True(t, ptr.Equal(at))
	}
	assert.Equal(t, "07700 900123", pgconv.OptionalStringToPgtype("07700 900123").String)
}

func TestIsNoRows(t *testing.T) {
	assert.True(t, pgconv.IsNoRows(pgx.ErrNoRows))
	assert.True(t, pgconv.IsNoRows(errs.Wrap(pgx.ErrNoRows, "find booking")))
	assert.False(t, pgconv.IsNoRows(errs.New("boom")))
}
