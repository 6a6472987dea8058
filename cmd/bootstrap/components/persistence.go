package components

import (
	"salonflow/internal/infra/db"
	"salonflow/internal/infra/feed"
	"salonflow/internal/infra/readstore"
	"salonflow/internal/infra/repository"
	"salonflow/internal/usecase/commands"
	"salonflow/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	repositoryModule,
)

var baseOption = fx.Provide(
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(queries.BookingReadStore)),
		),
		fx.Annotate(
			readstore.NewCommissionReadStore,
			fx.As(new(queries.CommissionReadStore)),
		),
		fx.Annotate(
			readstore.NewCatalogReadStore,
			fx.As(new(commands.CatalogReads)),
		),
		fx.Annotate(
			readstore.NewVoucherReadStore,
			fx.As(new(commands.VoucherReads)),
		),
		fx.Annotate(
			readstore.NewGiftCertificateReadStore,
			fx.As(new(commands.GiftCertificateReads)),
		),
	),
)

var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		repository.NewInstanceRepository,
		fx.Annotate(
			func(r *repository.InstanceRepository) *repository.InstanceRepository { return r },
			fx.As(new(commands.InstanceStore)),
		),
		fx.Annotate(
			repository.NewBookingRepository,
			fx.As(new(commands.BookingRepository)),
		),
		fx.Annotate(
			repository.NewVoucherRepository,
			fx.As(new(commands.VoucherRepository)),
		),
		fx.Annotate(
			repository.NewGiftCertificateRepository,
			fx.As(new(commands.GiftCertificateRepository)),
		),
		fx.Annotate(
			func(p *feed.Publisher) *feed.Publisher { return p },
			fx.As(new(commands.FeedPublisher)),
		),
		fx.Annotate(
			func(s *feed.Subscriber) *feed.Subscriber { return s },
			fx.As(new(commands.FeedSubscriber)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
