package runner

import (
	"context"

	"go.uber.org/fx"
)

func Module() fx.Option {
	return fx.Module("runner",
		fx.Provide(
			New, // *Runner
		),
		fx.Invoke(func(
			lc fx.Lifecycle,
			r *Runner,
			n Notifier,
			ctx context.Context,
		) error {
			if err := r.cfg.Validate(); err != nil {
				return err
			}
			r.SetNotifier(n)
			lc.Append(fx.Hook{
				OnStart: func(_ context.Context) error {
					go r.Start(ctx)
					return nil
				},
			})
			return nil
		}),
	)
}
