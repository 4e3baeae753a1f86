// Package entity binds Go types to their Redmine resource names and JSON
// codecs.
//
// A [Registry] is filled once at startup and then only read, so a single
// registry may be shared by any number of transports and goroutines.
package entity

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/bft-labs/redmine/pkg/apierr"
	"github.com/bft-labs/redmine/pkg/codec"
)

// Identifiable is implemented by entities addressed by a numeric id.
type Identifiable interface {
	GetID() int
}

// Config describes how one entity type maps onto the REST API.
type Config[T any] struct {
	// SingleName is the envelope key for one object, e.g. "project".
	SingleName string
	// PluralName is the collection path segment and listing key, e.g. "projects".
	PluralName string
	Writer     codec.Writer[T]
	Parser     codec.Parser[T]
}

func (c Config[T]) validate() error {
	if strings.TrimSpace(c.SingleName) == "" || strings.TrimSpace(c.PluralName) == "" {
		return fmt.Errorf("single and plural names are required")
	}
	if c.Writer == nil || c.Parser == nil {
		return fmt.Errorf("writer and parser are required")
	}
	return nil
}

// Registry maps entity types to their configs.
type Registry struct {
	mu      sync.RWMutex
	configs map[reflect.Type]any
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{configs: map[reflect.Type]any{}}
}

// Register adds the config for T. Registering a type twice is an error.
func Register[T any](r *Registry, cfg Config[T]) error {
	typ := reflect.TypeOf((*T)(nil)).Elem()
	if r == nil {
		return apierr.Internal("entity: registry is nil")
	}
	if err := cfg.validate(); err != nil {
		return apierr.Internal("entity: invalid config for %s: %v", typ, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.configs[typ]; exists {
		return apierr.Internal("entity: %s already registered", typ)
	}
	r.configs[typ] = cfg
	return nil
}

// MustRegister is like Register but panics on error. Intended for
// registries built during program initialization.
func MustRegister[T any](r *Registry, cfg Config[T]) {
	if err := Register(r, cfg); err != nil {
		panic(err)
	}
}

// Lookup returns the config registered for T. An unregistered type is a
// programming error and is reported with apierr.KindInternal.
func Lookup[T any](r *Registry) (Config[T], error) {
	typ := reflect.TypeOf((*T)(nil)).Elem()
	if r == nil {
		return Config[T]{}, apierr.Internal("entity: registry is nil")
	}

	r.mu.RLock()
	cfg, ok := r.configs[typ]
	r.mu.RUnlock()
	if !ok {
		return Config[T]{}, apierr.Internal("entity: unsupported type %s", typ)
	}
	return cfg.(Config[T]), nil
}
