package creditledgerservice

import (
	"context"
	"log/slog"
	"time"

	httpadapter "agencyx/contexts/finance-core/credit-ledger-service/adapters/http"
	"agencyx/contexts/finance-core/credit-ledger-service/adapters/memory"
	"agencyx/contexts/finance-core/credit-ledger-service/application"
	"agencyx/contexts/finance-core/credit-ledger-service/ports"

	"github.com/google/uuid"
)

type Module struct {
	Service application.Service
	Handler httpadapter.Handler
	Store   *memory.Store
}

type Dependencies struct {
	Repo   ports.Repository
	Outbox ports.OutboxWriter
	Clock  ports.Clock
	IDGen  ports.IDGenerator
	Logger *slog.Logger
}

func NewModule(deps Dependencies) Module {
	service := application.Service{
		Repo:   deps.Repo,
		Outbox: deps.Outbox,
		Clock:  deps.Clock,
		IDGen:  deps.IDGen,
		Logger: deps.Logger,
	}
	return Module{
		Service: service,
		Handler: httpadapter.Handler{
			Service: service,
			Logger:  deps.Logger,
		},
	}
}

func NewInMemoryModule(seed map[string]int, logger *slog.Logger) Module {
	store := memory.NewStore(seed)
	module := NewModule(Dependencies{
		Repo:   store,
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
