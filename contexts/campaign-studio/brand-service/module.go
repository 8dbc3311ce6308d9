package brandservice

import (
	"log/slog"
	"time"

	httpadapter "agencyx/contexts/campaign-studio/brand-service/adapters/http"
	"agencyx/contexts/campaign-studio/brand-service/adapters/memory"
	"agencyx/contexts/campaign-studio/brand-service/application"
	"agencyx/contexts/campaign-studio/brand-service/ports"
)

type Module struct {
	Service application.Service
	Handler httpadapter.Handler
	Store   *memory.Store
}

type Dependencies struct {
	Repo   ports.Repository
	Clock  ports.Clock
	Logger *slog.Logger
}

func NewModule(deps Dependencies) Module {
	service := application.Service{
		Repo:   deps.Repo,
		Clock:  deps.Clock,
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

func NewInMemoryModule(logger *slog.Logger) Module {
	store := memory.NewStore()
	module := NewModule(Dependencies{
		Repo:   store,
		Clock:  systemClock{},
		Logger: logger,
	})
	module.Store = store
	return module
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now().UTC() }
