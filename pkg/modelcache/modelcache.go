package modelcache

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	// Packages
	openai "github.com/mutablelogic/go-openai"
	schema "github.com/mutablelogic/go-openai/pkg/schema"
	types "github.com/mutablelogic/go-server/pkg/types"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type modelts struct {
	ts    time.Time
	model schema.Model
}

// ModelCache holds models by ID for a fixed duration
type ModelCache struct {
	mu    sync.Mutex
	ttl   time.Duration
	model map[string]modelts
	list  time.Time
}

type GetModelFunc func(context.Context, string) (*schema.Model, error)
type ListModelsFunc func(context.Context) ([]schema.Model, error)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

func NewModelCache(ttl time.Duration, cap int) *ModelCache {
	self := new(ModelCache)

	// Set the TTL for each model
	if ttl > 0 {
		self.ttl = ttl
	}

	// Set model cache capacity
	self.model = make(map[string]modelts, cap)

	// Return the model cache
	return self
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// GetModel returns a cached model, or calls fn and caches the result
func (mc *ModelCache) GetModel(ctx context.Context, id string, fn GetModelFunc) (*schema.Model, error) {
	mc.mu.Lock()
	if entry, ok := mc.model[id]; ok {
		if time.Since(entry.ts) < mc.ttl {
			mc.mu.Unlock()
			return types.Ptr(entry.model), nil
		}
		delete(mc.model, id)
	}
	mc.mu.Unlock()

	// Fetch model without holding the lock
	model, err := fn(ctx, id)

	mc.mu.Lock()
	defer mc.mu.Unlock()
	if err != nil {
		// If model no longer exists, ensure cache is invalidated
		if errors.Is(err, openai.ErrNotFound) {
			delete(mc.model, id)
		}
		return nil, err
	}
	mc.model[model.ID] = modelts{ts: time.Now(), model: types.Value(model)}

	// Return model
	return model, nil
}

// ListModels returns all models sorted by ID. The cached list is returned
// while it is fresh, otherwise fn is called and the cache replaced.
func (mc *ModelCache) ListModels(ctx context.Context, fn ListModelsFunc) ([]schema.Model, error) {
	mc.mu.Lock()
	if mc.ttl > 0 && !mc.list.IsZero() && time.Since(mc.list) < mc.ttl {
		now := time.Now()
		cached := make([]schema.Model, 0, len(mc.model))
		for id, entry := range mc.model {
			if now.Sub(entry.ts) < mc.ttl {
				cached = append(cached, entry.model)
			} else {
				delete(mc.model, id)
			}
		}
		mc.mu.Unlock()
		sortModels(cached)
		return cached, nil
	}
	mc.mu.Unlock()

	// Fetch models
	models, err := fn(ctx)
	if err != nil {
		return nil, err
	}

	// Replace the cache
	mc.mu.Lock()
	now := time.Now()
	mc.model = make(map[string]modelts, len(models))
	for _, model := range models {
		mc.model[model.ID] = modelts{ts: now, model: model}
	}
	mc.list = now
	mc.mu.Unlock()

	// Return sorted list of models
	sortModels(models)
	return models, nil
}

// Delete evicts a model from the cache
func (mc *ModelCache) Delete(id string) {
	mc.mu.Lock()
	defer mc.mu.Unlock()
	delete(mc.model, id)
}

// Flush empties the cache
func (mc *ModelCache) Flush() {
	mc.mu.Lock()
	defer mc.mu.Unlock()
	mc.model = make(map[string]modelts, len(mc.model))
	mc.list = time.Time{}
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func sortModels(models []schema.Model) {
	sort.Slice(models, func(i, j int) bool { return models[i].ID < models[j].ID })
}
