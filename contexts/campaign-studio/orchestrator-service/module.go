package orchestratorservice

import (
	"context"
	"log/slog"
	"time"

	httpadapter "agencyx/contexts/campaign-studio/orchestrator-service/adapters/http"
	"agencyx/contexts/campaign-studio/orchestrator-service/adapters/memory"
	"agencyx/contexts/campaign-studio/orchestrator-service/application/commands"
	"agencyx/contexts/campaign-studio/orchestrator-service/application/queries"
	"agencyx/contexts/campaign-studio/orchestrator-service/application/stages"
	"agencyx/contexts/campaign-studio/orchestrator-service/ports"

	"github.com/google/uuid"
)

// ModelConfig names the upstream model used by each pipeline stage.
type ModelConfig struct {
	Intent    string
	Strategy  string
	Planner   string
	Synthesis string
}

type Module struct {
	Generate      commands.GenerateCampaignUseCase
	UploadRequest commands.RequestInspirationUploadUseCase
	GetCampaign   queries.GetCampaignUseCase
	ListCampaigns queries.ListCampaignsUseCase
	Handler       httpadapter.Handler
	Store         *memory.Store
	Gateway       *memory.CannedGateway
}

type Dependencies struct {
	Gateway         ports.CompletionGateway
	Images          ports.ImageSynthesizer
	Ledger          ports.CreditLedger
	Archive         ports.CampaignArchive
	Brands          ports.BrandDirectory
	Uploads         ports.ObjectStore
	Outbox          ports.OutboxWriter
	Clock           ports.Clock
	IDGen           ports.IDGenerator
	Models          ModelConfig
	CreditCost      int
	RefundOnFailure bool
	Logger          *slog.Logger
}

func NewModule(deps Dependencies) Module {
	generate := commands.GenerateCampaignUseCase{
		Ledger:      deps.Ledger,
		Archive:     deps.Archive,
		Brands:      deps.Brands,
		Images:      deps.Images,
		Outbox:      deps.Outbox,
		Clock:       deps.Clock,
		IDGenerator: deps.IDGen,
		Intent: stages.IntentClassifier{
			Gateway: deps.Gateway,
			Model:   deps.Models.Intent,
			Logger:  deps.Logger,
		},
		Strategy: stages.StrategyBuilder{
			Gateway: deps.Gateway,
			Model:   deps.Models.Strategy,
			Logger:  deps.Logger,
		},
		Planners: stages.ContentPlanners{
			Gateway: deps.Gateway,
			Model:   deps.Models.Planner,
			Logger:  deps.Logger,
		},
		Synthesis: stages.MasterSynthesizer{
			Gateway: deps.Gateway,
			Model:   deps.Models.Synthesis,
			Logger:  deps.Logger,
		},
		CreditCost:      deps.CreditCost,
		RefundOnFailure: deps.RefundOnFailure,
		Logger:          deps.Logger,
	}
	upload := commands.RequestInspirationUploadUseCase{
		Store:       deps.Uploads,
		IDGenerator: deps.IDGen,
		Clock:       deps.Clock,
		Logger:      deps.Logger,
	}
	getCampaign := queries.GetCampaignUseCase{
		Archive: deps.Archive,
		Logger:  deps.Logger,
	}
	listCampaigns := queries.ListCampaignsUseCase{
		Archive: deps.Archive,
		Logger:  deps.Logger,
	}
	return Module{
		Generate:      generate,
		UploadRequest: upload,
		GetCampaign:   getCampaign,
		ListCampaigns: listCampaigns,
		Handler: httpadapter.Handler{
			Generate:      generate,
			UploadRequest: upload,
			GetCampaign:   getCampaign,
			ListCampaigns: listCampaigns,
			Logger:        deps.Logger,
		},
	}
}

// NewInMemoryModule wires the pipeline against the canned gateway and the
// in-memory archive. Ledger must still be provided so credit-gate behavior
// stays real in tests.
func NewInMemoryModule(ledger ports.CreditLedger, logger *slog.Logger) Module {
	store := memory.NewStore()
	gateway := memory.NewCannedGateway()
	module := NewModule(Dependencies{
		Gateway:         gateway,
		Images:          gateway,
		Ledger:          ledger,
		Archive:         store,
		Uploads:         memory.Presigner{},
		Outbox:          store,
		Clock:           systemClock{},
		IDGen:           uuidGenerator{},
		RefundOnFailure: true,
		Logger:          logger,
	})
	module.Store = store
	module.Gateway = gateway
	return module
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now().UTC() }

type uuidGenerator struct{}

func (uuidGenerator) NewID(_ context.Context) (string, error) {
	return uuid.NewString(), nil
}
