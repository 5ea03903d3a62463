package components

import (
	"bay-booking/internal/infra/readstore"
	sqlc "bay-booking/internal/infra/sqlc/generated"
	"bay-booking/internal/infra/uow"
	"bay-booking/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	uowModule,
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
)

// Query-side stores read straight from the pool. Command-side reads and
// writes go through the unit of work.
var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// Bay
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.BayViewQueries)),
		),
		fx.Annotate(
			readstore.NewBayReadStore,
			fx.As(new(queries.BayReadStore)),
		),
		// Slot
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.SlotReadQueries)),
		),
		fx.Annotate(
			readstore.NewSlotReadStore,
			fx.As(new(queries.SlotReadStore)),
		),
		// Booking
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.BookingViewQueries)),
		),
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(queries.BookingReadStore)),
		),
	),
)

var uowModule = fx.Module("persistence/uow",
	fx.Provide(
		uow.NewPostgresUoW,
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *sqlc.Queries {
	return sqlc.New()
}

func NewDBTX(pool *pgxpool.Pool) sqlc.DBTX {
	return pool
}
