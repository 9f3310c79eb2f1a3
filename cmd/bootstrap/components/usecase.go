package components

import (
	"hotel-booking/internal/domain/booking"
	"hotel-booking/internal/pkg/clock"
	"hotel-booking/internal/pkg/config"
	"hotel-booking/internal/usecase/commands"
	"hotel-booking/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	fx.Annotate(
		booking.NewDefaultPricingCalculator,
		fx.As(new(booking.PricingCalculator)),
	),
	func(clock clock.Clock, calc booking.PricingCalculator) *booking.Services {
		return &booking.Services{
			Clock:             clock,
			PricingCalculator: calc,
		}
	},
	func(cfg config.Config) queries.AvailabilityPolicy {
		return queries.AvailabilityPolicy{
			MaxStayDays: cfg.Booking.MaxStayDays,
			CacheTTL:    cfg.Redis.CacheTTL,
		}
	},
	func(cfg config.Config) commands.ReservationPolicy {
		return commands.ReservationPolicy{
			MaxStayDays: cfg.Booking.MaxStayDays,
			Timeout:     cfg.Booking.ReserveTimeout,
		}
	},
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewBookingCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewAvailabilityQueries,
		queries.NewHotelQueries,
		queries.NewBookingQueries,
	),
)
