package workers

import (
	"github.com/MKhiriev/go-algo-wallet/internal/config"
	"github.com/MKhiriev/go-algo-wallet/internal/logger"
	"github.com/MKhiriev/go-algo-wallet/internal/service"
	"github.com/MKhiriev/go-algo-wallet/models"
)

type Workers struct {
	workers []Worker
}

// NewWorkers assembles the daemon's background workers.
func NewWorkers(
	sessions service.SessionService,
	transport service.Transport,
	cfg config.Workers,
	logger *logger.Logger,
) *Workers {
	return &Workers{
		workers: []Worker{
			newSessionJanitor(sessions, transport, models.DefaultNetworks(), cfg.JanitorInterval, logger),
		},
	}
}

func (w *Workers) Run() {
	for _, worker := range w.workers {
		worker.Run()
	}
}
