package main

import (
	"context"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/deviceinfo/pkg/clientip"
	"github.com/dmitrymomot/deviceinfo/pkg/deviceinfo"
	"github.com/dmitrymomot/deviceinfo/pkg/httpserver"
	"github.com/dmitrymomot/deviceinfo/pkg/logger"
	"github.com/dmitrymomot/deviceinfo/pkg/stats"
)

func newServeCmd(cfg Config, log *slog.Logger, classifier *deviceinfo.Classifier) *cobra.Command {
	return &cobra.Command{
		Use:          "serve",
		Short:        "Serve classification and device statistics over HTTP.",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return serve(cmd.Context(), cfg, log, classifier)
		},
	}
}

func serve(ctx context.Context, cfg Config, log *slog.Logger, classifier *deviceinfo.Classifier) error {
	var (
		rec   stats.Recorder = stats.NewMemoryRecorder()
		ready []func(context.Context) error
	)

	if cfg.Stats.ConnectionURL != "" {
		client, err := stats.Connect(ctx, cfg.Stats)
		if err != nil {
			log.ErrorContext(ctx, "stats storage unavailable", logger.Component("stats"), logger.Error(err))
			return err
		}
		defer client.Close()

		redisRec := stats.NewRedisRecorder(client, cfg.Stats.KeyPrefix)
		rec = redisRec
		ready = append(ready, redisRec.Ping)
		log.InfoContext(ctx, "recording device stats in redis", logger.Component("stats"))
	}

	srv := httpserver.New(
		httpserver.WithAddr(cfg.HTTPAddr),
		httpserver.WithShutdownTimeout(cfg.HTTPShutdownTimeout),
		httpserver.WithLogger(log),
	)
	return srv.Run(ctx, newRouter(classifier, rec, clientip.New(cfg.TrustedProxyHeaders...), log, ready...))
}
