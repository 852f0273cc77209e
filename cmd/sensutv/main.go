// @title         Sensutv
// @version       0.1.0
// @description   Telegram intake bot with a read only status surface

package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"sensutv/internal/platform/config"
	"sensutv/internal/platform/logger"
	phttp "sensutv/internal/platform/net/http"
	"sensutv/internal/platform/store"
	"sensutv/internal/platform/store/file"
	"sensutv/internal/platform/store/s3"

	"sensutv/internal/modkit"
	"sensutv/internal/modkit/module"
	"sensutv/internal/services/api"
	botmod "sensutv/internal/services/bot/module"
	catalog "sensutv/internal/services/catalog/domain"
	catmod "sensutv/internal/services/catalog/module"
	intake "sensutv/internal/services/intake/domain"
	intakemod "sensutv/internal/services/intake/module"
)

func main() {
	// local development convenience, a missing .env is fine
	_ = godotenv.Load()

	// service-scoped config for HTTP etc (CORE_WEB_*)
	root := config.New()
	webCfg := root.Prefix("CORE_WEB_")
	stCfg := root.Prefix("STORAGE_") // backend selection plus backend creds

	// bring up logging early
	l := logger.Get()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// open the platform store (file or s3 blob backend)
	st, err := store.Open(
		ctx,
		store.Config{
			Backend: store.Backend(stCfg.MayEnum("BACKEND", "file", "file", "s3")),
			File: file.Config{
				Dir:         stCfg.MayString("DIR", "/var/data"),
				FallbackDir: stCfg.MayString("FALLBACK_DIR", ""),
			},
			S3: s3.Config{
				Bucket:       stCfg.MayString("BUCKET", "sensutv-media"),
				Region:       stCfg.MayString("REGION", "eu-central-2"),
				Endpoint:     stCfg.MayString("ENDPOINT", ""),
				AccessKey:    stCfg.MayString("ACCESS_KEY", ""),
				SecretKey:    stCfg.MayString("SECRET_KEY", ""),
				UsePathStyle: stCfg.MayBool("PATH_STYLE", true),
			},
		},
		store.WithLogger(*l),
	)
	if err != nil {
		l.Panic().Err(err).Msg("store.Open failed")
	}
	defer func() {
		if err := st.Close(context.Background()); err != nil {
			l.Error().Err(err).Msg("failed to close store")
		}
	}()
	if err := st.Guard(ctx); err != nil {
		l.Panic().Err(err).Msg("store not ready")
	}

	deps := modkit.Deps{
		Log:  *l,
		Cfg:  root,
		Docs: st.Blob,
	}

	// wire the service modules: catalog owns the records, intake owns the
	// conversations, the bot ties both to Telegram
	cat := catmod.New(deps)
	registry := module.MustPortsOf[catalog.RegistryPort](cat)
	planner := module.MustPortsOf[catalog.PlannerPort](cat)

	intk := intakemod.New(deps, registry, planner)
	stepper := module.MustPortsOf[intake.StepperPort](intk)

	bot, err := botmod.New(deps, registry, planner, stepper)
	if err != nil {
		l.Panic().Err(err).Msg("bot bring-up failed")
	}

	// http server (reads CORE_WEB_API_PORT)
	srv := phttp.NewServer(webCfg)

	// mount the read only surface
	api.Mount(
		srv.Router(),
		api.Options{
			Config:         root,
			Docs:           st.Blob,
			Logger:         l,
			Registry:       registry,
			Planner:        planner,
			EnableSwagger:  webCfg.MayBool("SWAGGER", true),
			EnableProfiler: webCfg.MayBool("PROFILER", true),
		},
	)

	errCh := make(chan error, 2)
	go func() { errCh <- bot.Run(ctx) }()
	go func() { errCh <- srv.Run(ctx) }()

	select {
	case <-ctx.Done():
		l.Info().Msg("shutting down")
	case err := <-errCh:
		if err != nil {
			l.Error().Err(err).Msg("service stopped")
		}
		stop()
	}

	shCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shCtx); err != nil {
		l.Error().Err(err).Msg("http shutdown failed")
	}
}
