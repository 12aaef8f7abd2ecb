package catalog

import (
	"context"
	"sync"
	"time"

	cardset "github.com/KirkDiggler/chaos-room/internal/catalog"
	"github.com/KirkDiggler/chaos-room/internal/errors"
	"github.com/KirkDiggler/chaos-room/internal/pkg/clock"
)

// InMemoryConfig contains configuration for the in-memory repository
type InMemoryConfig struct {
	Clock clock.Clock
}

type inMemoryRepository struct {
	mu       sync.RWMutex
	clock    clock.Clock
	catalog  *cardset.Catalog
	storedAt time.Time
}

// NewInMemory creates a repository that keeps the card set in process memory
func NewInMemory(cfg *InMemoryConfig) Repository {
	c := clock.New()
	if cfg != nil && cfg.Clock != nil {
		c = cfg.Clock
	}
	return &inMemoryRepository{clock: c}
}

func (r *inMemoryRepository) Store(_ context.Context, input StoreInput) (*StoreOutput, error) {
	if input.Definitions == nil {
		return nil, errors.InvalidArgument(errDefinitionsNil)
	}

	built, err := cardset.Build(input.Definitions)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.catalog = built
	r.storedAt = r.clock.Now()

	return &StoreOutput{StoredAt: r.storedAt}, nil
}

func (r *inMemoryRepository) Load(_ context.Context, _ LoadInput) (*LoadOutput, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.catalog == nil {
		return nil, errors.NotFound(errNothingStored)
	}

	return &LoadOutput{Catalog: r.catalog, StoredAt: r.storedAt}, nil
}

func (r *inMemoryRepository) GetMonster(_ context.Context, input GetMonsterInput) (*GetMonsterOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errMonsterIDEmpty)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.catalog == nil {
		return nil, errors.NotFound(errNothingStored)
	}

	m, ok := r.catalog.Monster(input.ID)
	if !ok {
		return nil, errors.NotFoundf("monster with ID %s not found", input.ID)
	}

	return &GetMonsterOutput{Monster: m}, nil
}
