package bootstrap

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	brandservice "agencyx/contexts/campaign-studio/brand-service"
	brandpostgres "agencyx/contexts/campaign-studio/brand-service/adapters/postgres"
	orchestratorservice "agencyx/contexts/campaign-studio/orchestrator-service"
	brandadapter "agencyx/contexts/campaign-studio/orchestrator-service/adapters/brand"
	financeadapter "agencyx/contexts/campaign-studio/orchestrator-service/adapters/finance"
	gatewayadapter "agencyx/contexts/campaign-studio/orchestrator-service/adapters/gateway"
	orchestratorpostgres "agencyx/contexts/campaign-studio/orchestrator-service/adapters/postgres"
	orchestratorworkers "agencyx/contexts/campaign-studio/orchestrator-service/application/workers"
	templateservice "agencyx/contexts/campaign-studio/template-service"
	templatepostgres "agencyx/contexts/campaign-studio/template-service/adapters/postgres"
	creditledgerservice "agencyx/contexts/finance-core/credit-ledger-service"
	ledgerpostgres "agencyx/contexts/finance-core/credit-ledger-service/adapters/postgres"
	ledgerworkers "agencyx/contexts/finance-core/credit-ledger-service/application/workers"
	"agencyx/internal/platform/aigateway"
	"agencyx/internal/platform/config"
	"agencyx/internal/platform/db"
	"agencyx/internal/platform/httpserver"
	"agencyx/internal/platform/messaging"
	"agencyx/internal/platform/objectstore"
)

// Package bootstrap is the composition root.
// Keep construction/wiring here so module code stays framework-agnostic.

type APIApp struct {
	server   *httpserver.Server
	postgres *db.Postgres
	logger   *slog.Logger
}

type WorkerApp struct {
	postgres      *db.Postgres
	campaignRelay orchestratorworkers.OutboxRelay
	ledgerRelay   ledgerworkers.OutboxRelay
	relayEnabled  bool
	pollInterval  time.Duration
	logger        *slog.Logger
}

func BuildAPI() (*APIApp, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger := slog.Default().With("service", cfg.ServiceName, "process", "api")
	if strings.TrimSpace(cfg.PostgresDSN) == "" {
		return nil, errors.New("POSTGRES_DSN is required")
	}
	if strings.TrimSpace(cfg.GatewayAPIKey) == "" {
		return nil, errors.New("AI_GATEWAY_API_KEY is required")
	}

	pg, err := db.Connect(cfg.PostgresDSN)
	if err != nil {
		return nil, err
	}

	gatewayClient, err := aigateway.New(aigateway.Config{
		BaseURL: cfg.GatewayBaseURL,
		APIKey:  cfg.GatewayAPIKey,
		Timeout: cfg.GatewayTimeout,
		Logger:  logger,
	})
	if err != nil {
		return nil, err
	}
	completions := gatewayadapter.CompletionAdapter{
		Client:     gatewayClient,
		ImageModel: cfg.ImageModel,
	}

	storeCfg := objectstore.Config{
		Endpoint:      cfg.MinioEndpoint,
		AccessKey:     cfg.MinioAccessKey,
		SecretKey:     cfg.MinioSecretKey,
		UseSSL:        cfg.MinioUseSSL,
		Region:        cfg.MinioRegion,
		BucketUploads: cfg.BucketUploads,
		BucketAssets:  cfg.BucketAssets,
	}
	if err := storeCfg.Validate(); err != nil {
		return nil, err
	}
	minioClient, err := objectstore.NewMinIOClient(storeCfg)
	if err != nil {
		return nil, err
	}
	if err := objectstore.EnsureBuckets(context.Background(), minioClient, storeCfg); err != nil {
		return nil, err
	}
	uploads := objectstore.NewStore(minioClient, storeCfg)

	ledgerRepo := ledgerpostgres.NewRepository(pg.DB, logger)
	ledgerModule := creditledgerservice.NewModule(creditledgerservice.Dependencies{
		Repo:   ledgerRepo,
		Outbox: ledgerRepo,
		Clock:  ledgerpostgres.SystemClock{},
		IDGen:  ledgerpostgres.UUIDGenerator{},
		Logger: logger,
	})
	ledgerBridge := financeadapter.LedgerAdapter{Service: ledgerModule.Service}

	brandRepo := brandpostgres.NewRepository(pg.DB, logger)
	brandModule := brandservice.NewModule(brandservice.Dependencies{
		Repo:   brandRepo,
		Clock:  orchestratorpostgres.SystemClock{},
		Logger: logger,
	})

	templateRepo := templatepostgres.NewRepository(pg.DB, logger)
	templateModule := templateservice.NewModule(templateservice.Dependencies{
		Repo:          templateRepo,
		Store:         uploads,
		Ledger:        ledgerBridge,
		Clock:         orchestratorpostgres.SystemClock{},
		IDGen:         orchestratorpostgres.UUIDGenerator{},
		RewardCredits: cfg.TemplateRewardCredits,
		Logger:        logger,
	})

	campaignRepo := orchestratorpostgres.NewRepository(pg.DB, logger)
	orchestratorModule := orchestratorservice.NewModule(orchestratorservice.Dependencies{
		Gateway: completions,
		Images:  completions,
		Ledger:  ledgerBridge,
		Archive: campaignRepo,
		Brands:  brandadapter.DirectoryAdapter{Service: brandModule.Service},
		Uploads: uploads,
		Outbox:  campaignRepo,
		Clock:   orchestratorpostgres.SystemClock{},
		IDGen:   orchestratorpostgres.UUIDGenerator{},
		Models: orchestratorservice.ModelConfig{
			Intent:    cfg.IntentModel,
			Strategy:  cfg.StrategyModel,
			Planner:   cfg.PlannerModel,
			Synthesis: cfg.SynthesisModel,
		},
		CreditCost:      cfg.CampaignCreditCost,
		RefundOnFailure: cfg.RefundOnFailure,
		Logger:          logger,
	})

	server := httpserver.New(
		orchestratorModule,
		ledgerModule,
		brandModule,
		templateModule,
		logger,
		normalizeAddr(cfg.HTTPPort),
	)
	return &APIApp{
		server:   server,
		postgres: pg,
		logger:   logger,
	}, nil
}

func BuildWorker() (*WorkerApp, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger := slog.Default().With("service", cfg.ServiceName, "process", "worker")
	if strings.TrimSpace(cfg.PostgresDSN) == "" {
		return nil, errors.New("POSTGRES_DSN is required")
	}

	pg, err := db.Connect(cfg.PostgresDSN)
	if err != nil {
		return nil, err
	}

	kafka, err := messaging.NewKafka(cfg.KafkaBrokers, logger)
	if err != nil {
		return nil, err
	}

	campaignRepo := orchestratorpostgres.NewRepository(pg.DB, logger)
	ledgerRepo := ledgerpostgres.NewRepository(pg.DB, logger)
	return &WorkerApp{
		postgres: pg,
		campaignRelay: orchestratorworkers.OutboxRelay{
			Outbox:    campaignRepo,
			Publisher: kafka,
			Clock:     orchestratorpostgres.SystemClock{},
			Topic:     "campaign-studio.campaigns",
			BatchSize: 100,
			Logger:    logger,
		},
		ledgerRelay: ledgerworkers.OutboxRelay{
			Outbox:    ledgerRepo,
			Publisher: kafka,
			Clock:     ledgerpostgres.SystemClock{},
			Topic:     "finance-core.credits",
			BatchSize: 100,
			Logger:    logger,
		},
		relayEnabled: cfg.EnableOutboxRelay,
		pollInterval: 2 * time.Second,
		logger:       logger,
	}, nil
}

func (a *APIApp) Run(_ context.Context) error {
	if a.logger != nil {
		a.logger.Info("api app started",
			"event", "bootstrap_api_started",
			"module", "internal/app/bootstrap",
			"layer", "platform",
		)
	}
	return a.server.Start()
}

func (a *APIApp) Close() error {
	if a.postgres != nil {
		return a.postgres.Close()
	}
	return nil
}

func (w *WorkerApp) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()

	w.logger.Info("worker app started",
		"event", "bootstrap_worker_started",
		"module", "internal/app/bootstrap",
		"layer", "platform",
		"poll_interval", w.pollInterval.String(),
		"relay_enabled", w.relayEnabled,
	)

	if !w.relayEnabled {
		<-ctx.Done()
		return nil
	}

	for {
		if err := w.campaignRelay.RunOnce(ctx); err != nil {
			return err
		}
		if err := w.ledgerRelay.RunOnce(ctx); err != nil {
			return err
		}
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

func (w *WorkerApp) Close() error {
	if w.postgres != nil {
		return w.postgres.Close()
	}
	return nil
}

func normalizeAddr(port string) string {
	value := strings.TrimSpace(port)
	if value == "" {
		return ":8080"
	}
	if strings.HasPrefix(value, ":") {
		return value
	}
	return ":" + value
}
