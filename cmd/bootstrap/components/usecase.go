package components

import (
	"time"

	"bay-booking/internal/domain/booking"
	"bay-booking/internal/pkg/clock"
	"bay-booking/internal/pkg/config"
	"bay-booking/internal/usecase"
	"bay-booking/internal/usecase/commands"
	"bay-booking/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	fx.Annotate(
		NewPriceCalculator,
		fx.As(new(booking.PriceCalculator)),
	),
	NewBookingSettings,
	NewVenueLocation,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewBookingCommands,
		commands.NewCheckoutCommands,
		commands.NewCleanupCommands,
		commands.NewSlotCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewAvailabilityQueries,
		queries.NewBookingQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)

func NewPriceCalculator(cfg config.Config) *booking.HourlyPriceCalculator {
	return booking.NewHourlyPriceCalculator(cfg.Booking.HourlyRateCents)
}

func NewBookingSettings(cfg config.Config) commands.BookingSettings {
	return commands.BookingSettings{
		PendingTTL:   cfg.Booking.PendingTTL,
		RefundWindow: cfg.Booking.RefundWindow,
		ExtendGrace:  cfg.Booking.ExtendGrace,
	}
}

// NewVenueLocation is the zone calendar days are cut in.
func NewVenueLocation(cfg config.Config) (*time.Location, error) {
	return cfg.Booking.Location()
}
