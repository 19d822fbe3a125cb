package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os/signal"
	"syscall"

	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	seedclient "github.com/zestagio/queue-composer/internal/clients/seed"
	sqsclient "github.com/zestagio/queue-composer/internal/clients/sqs"
	"github.com/zestagio/queue-composer/internal/config"
	"github.com/zestagio/queue-composer/internal/draft"
	"github.com/zestagio/queue-composer/internal/logger"
	draftsrepo "github.com/zestagio/queue-composer/internal/repositories/drafts"
	settingsrepo "github.com/zestagio/queue-composer/internal/repositories/settings"
	composerv1 "github.com/zestagio/queue-composer/internal/server-composer/v1"
	serverdebug "github.com/zestagio/queue-composer/internal/server-debug"
	msgproducer "github.com/zestagio/queue-composer/internal/services/msg-producer"
	"github.com/zestagio/queue-composer/internal/store"
)

var configPath = flag.String("config", "configs/config.toml", "Path to config file")

func main() {
	if err := run(); err != nil {
		log.Fatalf("run app: %v", err)
	}
}

func run() (errReturned error) {
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.ParseAndValidate(*configPath)
	if err != nil {
		return fmt.Errorf("parse and validate config %q: %v", *configPath, err)
	}

	logger.MustInit(logger.NewOptions(
		cfg.Log.Level,
		logger.WithSentryEnv(cfg.Global.Env),
		logger.WithSentryDsn(cfg.Sentry.Dsn),
		logger.WithProductionMode(cfg.Global.IsProduction()),
	))
	defer logger.Sync()

	lg := zap.L().Named("main")

	if cfg.Global.IsProduction() && cfg.Stores.SQLite.Debug {
		lg.Warn("sqlite client in the debug mode")
	}

	// Store.
	db, err := store.NewSQLiteClient(store.NewSQLiteOptions(
		cfg.Stores.SQLite.Path,
		store.WithDebug(cfg.Stores.SQLite.Debug),
	))
	if err != nil {
		return fmt.Errorf("create store client: %v", err)
	}
	defer multierr.AppendInvoke(&errReturned, multierr.Close(db))

	// Migrations.
	if err := store.Migrate(ctx, db); err != nil {
		return fmt.Errorf("migrate: %v", err)
	}

	// Repositories.
	settingsRepo, err := settingsrepo.New(settingsrepo.NewOptions(db))
	if err != nil {
		return fmt.Errorf("create settings repo: %v", err)
	}

	seeded, err := settingsRepo.SaveIfEmpty(ctx, settingsrepo.Connection{
		Region:          cfg.Connection.Region,
		AccessKeyID:     cfg.Connection.AccessKeyID,
		SecretAccessKey: cfg.Connection.SecretAccessKey,
		SessionToken:    cfg.Connection.SessionToken,
		QueueURL:        cfg.Connection.QueueURL,
	})
	if err != nil {
		return fmt.Errorf("seed connection settings: %v", err)
	}
	if seeded {
		lg.Info("connection settings initialized from config")
	}

	// Clients.
	seedClient, err := seedclient.New(seedclient.NewOptions(
		seedclient.WithDebugMode(cfg.Seed.DebugMode),
	))
	if err != nil {
		return fmt.Errorf("create seed client: %v", err)
	}
	if cfg.Global.IsProduction() && cfg.Seed.DebugMode {
		lg.Warn("seed client in the debug mode")
	}

	raws, err := seedClient.Load(ctx, cfg.Seed.Source)
	if err != nil {
		return fmt.Errorf("load seed %q: %v", cfg.Seed.Source, err)
	}
	draftsRepo := draftsrepo.New(draft.ImportAll(raws))
	lg.Info("drafts imported", zap.Int("seed_records", len(raws)))

	sqsFactory, err := sqsclient.NewFactory(sqsclient.NewFactoryOptions(
		cfg.Clients.SQS.Endpoint,
		cfg.Clients.SQS.DebugMode,
	))
	if err != nil {
		return fmt.Errorf("create sqs client factory: %v", err)
	}
	if cfg.Global.IsProduction() && cfg.Clients.SQS.DebugMode {
		lg.Warn("sqs client in the debug mode")
	}

	// Services.
	var journal *msgproducer.Service
	if c := cfg.Services.MsgProducer; c.Enabled() {
		journal, err = msgproducer.New(msgproducer.NewOptions(
			msgproducer.NewKafkaWriter(c.Brokers, c.Topic, c.BatchSize),
			msgproducer.WithEncryptKey(c.EncryptKey),
		))
		if err != nil {
			return fmt.Errorf("create msg producer: %v", err)
		}
		defer multierr.AppendInvoke(&errReturned, multierr.Close(journal))
	} else {
		lg.Info("sent messages journal is disabled")
	}

	// Servers.
	composerV1Swagger, err := composerv1.GetSwagger()
	if err != nil {
		return fmt.Errorf("get composer v1 swagger: %v", err)
	}

	srvComposer, err := initServerComposer(
		cfg.Global.IsProduction(),
		cfg.Servers.Composer.Addr,
		cfg.Servers.Composer.AllowOrigins,
		composerV1Swagger,
		draftsRepo,
		settingsRepo,
		sqsFactory,
		journal,
	)
	if err != nil {
		return fmt.Errorf("init composer server: %v", err)
	}

	srvDebug, err := serverdebug.New(serverdebug.NewOptions(
		cfg.Servers.Debug.Addr,
		composerV1Swagger,
	))
	if err != nil {
		return fmt.Errorf("init debug server: %v", err)
	}

	eg, ctx := errgroup.WithContext(ctx)

	// Run servers.
	eg.Go(func() error { return srvComposer.Run(ctx) })
	eg.Go(func() error { return srvDebug.Run(ctx) })

	if err = eg.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("wait app stop: %v", err)
	}

	return nil
}
