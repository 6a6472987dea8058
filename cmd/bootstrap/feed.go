package bootstrap

import (
	"context"

	"salonflow/internal/infra/feed"
	"salonflow/internal/pkg/config"

	"go.uber.org/fx"
)

var FeedModule = fx.Module("feed",
	fx.Provide(
		NewFeedPublisher,
		NewFeedSubscriber,
	),
)

func NewFeedPublisher(lc fx.Lifecycle, cfg config.Config) (*feed.Publisher, error) {
	publisher, err := feed.NewPublisher(cfg.Feed)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return publisher.Close()
		},
	})

	return publisher, nil
}

func NewFeedSubscriber(lc fx.Lifecycle, cfg config.Config) (*feed.Subscriber, error) {
	subscriber, err := feed.NewSubscriber(cfg.Feed)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return subscriber.Close()
		},
	})

	return subscriber, nil
}
