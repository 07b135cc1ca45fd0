package api

import (
	"time"

	"go.uber.org/zap"

	"github.com/praxislabs/praxis/internal/services"
	"github.com/praxislabs/praxis/internal/store"
)

// Handler carries the store handle and the derived-computation services.
// now is injectable so tests can pin invoice dates.
type Handler struct {
	store     *store.Store
	billing   *services.BillingService
	resources *services.ResourceService
	pipeline  *services.PipelineService
	reports   *services.ReportService
	logger    *zap.Logger
	now       func() time.Time
}

// NewHandler wires the services over the store. A nil store handle is the
// one hard failure in the whole surface.
func NewHandler(dataStore *store.Store, logger *zap.Logger) (*Handler, error) {
	if dataStore == nil {
		return nil, store.ErrNotInitialized
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{
		store:     dataStore,
		billing:   services.NewBillingService(dataStore),
		resources: services.NewResourceService(dataStore, dataStore),
		pipeline:  services.NewPipelineService(dataStore),
		reports:   services.NewReportService(dataStore, dataStore, dataStore),
		logger:    logger,
		now:       time.Now,
	}, nil
}
