//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

func CreateTestBay(t *testing.T, db DBLike, name string) int64 {
	t.Helper()

	var id int64
	err := db.QueryRow(context.Background(),
		"INSERT INTO bays (name, capacity) VALUES ($1, 4) ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name RETURNING id",
		name).Scan(&id)
	require.NoError(t, err)
	return id
}

// CreateTestSlots inserts n consecutive hourly slots starting at start.
func CreateTestSlots(t *testing.T, db DBLike, bayID int64, start time.Time, n int) []int64 {
	t.Helper()

	ids := make([]int64, 0, n)
	for i := range n {
		from := start.Add(time.Duration(i) * time.Hour)
		var id int64
		err := db.QueryRow(context.Background(),
			"INSERT INTO slots (bay_id, start_time, end_time) VALUES ($1, $2, $3) RETURNING id",
			bayID, from, from.Add(time.Hour)).Scan(&id)
		require.NoError(t, err)
		ids = append(ids, id)
	}
	return ids
}

func CreateTestMembership(t *testing.T, db DBLike, userID uuid.UUID, hoursRemaining int, periodEnd time.Time) {
	t.Helper()

	_, err := db.Exec(context.Background(),
		`INSERT INTO memberships (user_id, plan, included_hours, hours_remaining, period_end, status)
		 VALUES ($1, 'standard', $2, $2, $3, 'active')`,
		userID, hoursRemaining, periodEnd)
	require.NoError(t, err)
}

func SlotStatus(t *testing.T, db DBLike, slotID int64) string {
	t.Helper()

	var status string
	err := db.QueryRow(context.Background(), "SELECT status FROM slots WHERE id = $1", slotID).Scan(&status)
	require.NoError(t, err)
	return status
}

func BookingStatus(t *testing.T, db DBLike, bookingID uuid.UUID) string {
	t.Helper()

	var status string
	err := db.QueryRow(context.Background(), "SELECT status FROM bookings WHERE id = $1", bookingID).Scan(&status)
	require.NoError(t, err)
	return status
}

func HoursRemaining(t *testing.T, db DBLike, userID uuid.UUID) int {
	t.Helper()

	var hours int
	err := db.QueryRow(context.Background(), "SELECT hours_remaining FROM memberships WHERE user_id = $1", userID).Scan(&hours)
	require.NoError(t, err)
	return hours
}

// inserts basic reference data needed by tests
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO bays (name, capacity) VALUES
		    ('Bay 1', 4),
		    ('Bay 2', 6)
		ON CONFLICT (name) DO NOTHING;
	`)
	return err
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and reseeds reference data
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}
