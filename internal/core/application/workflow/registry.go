package workflow

import (
	"log/slog"
	"sync"

	"logistics/internal/metrics"
	"logistics/internal/pkg/errs"

	"github.com/google/uuid"
)

// Registry keeps the open workflow instances. Each instance has its own catalog
// snapshot, so concurrent workflows never observe each other's reloads.
type Registry struct {
	deps   Dependencies
	logger *slog.Logger

	mu        sync.RWMutex
	instances map[uuid.UUID]*Controller
}

// NewRegistry validates deps once for every instance it will create.
func NewRegistry(deps Dependencies) (*Registry, error) {
	if err := deps.validate(); err != nil {
		return nil, err
	}
	if deps.Logger == nil {
		deps.Logger = slog.New(slog.DiscardHandler)
	}

	return &Registry{
		deps:      deps,
		logger:    deps.Logger.With("component", "workflow_registry"),
		instances: make(map[uuid.UUID]*Controller),
	}, nil
}

// Open creates and registers an Idle instance. Closing it removes it from the registry
// before hooks.OnClose runs.
func (r *Registry) Open(hooks Hooks) (*Controller, error) {
	var id uuid.UUID
	onClose := hooks.OnClose
	hooks.OnClose = func() {
		r.remove(id)
		if onClose != nil {
			onClose()
		}
	}

	c, err := NewController(r.deps, hooks)
	if err != nil {
		return nil, err
	}
	id = c.ID()

	r.mu.Lock()
	r.instances[id] = c
	n := len(r.instances)
	r.mu.Unlock()

	metrics.OpenWorkflows.Set(float64(n))
	r.logger.Debug("workflow registered", "workflow_id", id.String(), "open", n)
	return c, nil
}

// Get returns an open instance.
func (r *Registry) Get(id uuid.UUID) (*Controller, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.instances[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("workflow_id", id)
	}
	return c, nil
}

// Close closes and forgets an instance.
func (r *Registry) Close(id uuid.UUID) error {
	c, err := r.Get(id)
	if err != nil {
		return err
	}
	c.Close()
	return nil
}

// CloseAll closes every open instance, e.g. on logout or shutdown.
func (r *Registry) CloseAll() {
	r.mu.RLock()
	open := make([]*Controller, 0, len(r.instances))
	for _, c := range r.instances {
		open = append(open, c)
	}
	r.mu.RUnlock()

	for _, c := range open {
		c.Close()
	}
}

// Len returns the number of open instances.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.instances)
}

func (r *Registry) remove(id uuid.UUID) {
	r.mu.Lock()
	delete(r.instances, id)
	n := len(r.instances)
	r.mu.Unlock()

	metrics.OpenWorkflows.Set(float64(n))
}
