package anim

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// ErrUnknown is returned by New for names nobody registered.
var ErrUnknown = errors.New("unknown animation")

// Factory builds a strategy bound to its host.
type Factory func(host Host, opts Options) Strategy

var (
	mu        sync.RWMutex
	factories = map[string]Factory{}
)

func init() {
	Register("default", newInstant)
	Register("fade", newFade)
	Register("slide", newSlide)
}

// Register makes a strategy available under name, replacing any previous one.
func Register(name string, f Factory) {
	mu.Lock()
	defer mu.Unlock()
	factories[name] = f
}

// New builds the strategy registered under name.
func New(name string, host Host, opts Options) (Strategy, error) {
	if name == "" {
		name = "default"
	}
	mu.RLock()
	f, ok := factories[name]
	mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknown, name)
	}
	return f(host, opts.withDefaults()), nil
}

// Names lists registered strategies in sorted order.
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()
	names := make([]string, 0, len(factories))
	for name := range factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
