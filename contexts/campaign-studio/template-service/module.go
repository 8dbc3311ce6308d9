package templateservice

import (
	"context"
	"log/slog"
	"time"

	httpadapter "agencyx/contexts/campaign-studio/template-service/adapters/http"
	"agencyx/contexts/campaign-studio/template-service/adapters/memory"
	"agencyx/contexts/campaign-studio/template-service/application"
	"agencyx/contexts/campaign-studio/template-service/ports"

	"github.com/google/uuid"
)

type Module struct {
	Service application.Service
	Handler httpadapter.Handler
	Store   *memory.Store
}

type Dependencies struct {
	Repo          ports.Repository
	Store         ports.ObjectStore
	Ledger        ports.CreditLedger
	Clock         ports.Clock
	IDGen         ports.IDGenerator
	RewardCredits int
	Logger        *slog.Logger
}

func NewModule(deps Dependencies) Module {
	service := application.Service{
		Repo:          deps.Repo,
		Store:         deps.Store,
		Ledger:        deps.Ledger,
		Clock:         deps.Clock,
		IDGen:         deps.IDGen,
		RewardCredits: deps.RewardCredits,
		Logger:        deps.Logger,
	}
	return Module{
		Service: service,
		Handler: httpadapter.Handler{
			Service: service,
			Logger:  deps.Logger,
		},
	}
}

func NewInMemoryModule(ledger ports.CreditLedger, logger *slog.Logger) Module {
	store := memory.NewStore()
	module := NewModule(Dependencies{
		Repo:   store,
		Store:  store,
		Ledger: ledger,
		Clock:  systemClock{},
		IDGen:  uuidGenerator{},
		Logger: logger,
	})
	module.Store = store
	return module
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now().UTC() }

type uuidGenerator struct{}

func (uuidGenerator) NewID(_ context.Context) (string, error) {
	return uuid.NewString(), nil
}
