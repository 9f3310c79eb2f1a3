package components

import (
	"hotel-booking/internal/infra/readstore"
	sqlc "hotel-booking/internal/infra/sqlc/generated"
	"hotel-booking/internal/infra/uow"
	"hotel-booking/internal/pkg/config"
	"hotel-booking/internal/usecase/queries"
	"hotel-booking/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	writeModule,
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.HotelLookupQueries)),
		),
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.BookingReadQueries)),
		),
		// Availability
		fx.Annotate(
			readstore.NewAvailabilityReadStore,
			fx.As(new(queries.AvailabilityReadStore)),
		),
		// Hotel
		fx.Annotate(
			readstore.NewHotelReadStore,
			fx.As(new(queries.HotelReadStore)),
		),
		// Booking
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(queries.BookingReadStore)),
		),
	),
)

// Room and booking repositories are created per transaction by the unit of work.
var writeModule = fx.Module("persistence/write",
	fx.Provide(
		fx.Annotate(
			NewUnitOfWork,
			fx.As(new(shared.UnitOfWork)),
		),
	),
)

func NewUnitOfWork(pool *pgxpool.Pool, q *sqlc.Queries, cfg config.Config) *uow.PostgresUoW {
	return uow.NewPostgresUoW(pool, q, uow.OptionsFromConfig(cfg.Booking))
}

func NewSQLQueries(_ *pgxpool.Pool) *sqlc.Queries {
	return sqlc.New()
}

func NewDBTX(pool *pgxpool.Pool) sqlc.DBTX {
	return pool
}
