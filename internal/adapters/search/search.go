// Package search provides the search capability handle attached to worker
// pools. The engine never interprets search semantics; the handle only
// names the provider the agent runtime is expected to expose as a tool.
package search

import (
	"fmt"
	"sort"
	"sync"
)

// Provider is a named search capability.
type Provider struct {
	name string
}

// Name identifies the provider in worker status and trace output.
func (p *Provider) Name() string { return p.name }

var (
	mu    sync.RWMutex
	known = map[string]struct{}{
		"web_search": {},
		"duckduckgo": {},
		"tavily":     {},
	}
)

// Register adds a provider name to the known set.
func Register(name string) {
	mu.Lock()
	defer mu.Unlock()
	known[name] = struct{}{}
}

// New returns the provider handle for name, or an error naming the known
// providers when the name is unrecognized.
func New(name string) (*Provider, error) {
	mu.RLock()
	defer mu.RUnlock()
	if _, ok := known[name]; !ok {
		return nil, fmt.Errorf("unknown search provider %q (known: %v)", name, providerNames())
	}
	return &Provider{name: name}, nil
}

// Default returns the standard provider used when configuration does not
// name one.
func Default() *Provider {
	return &Provider{name: "web_search"}
}

func providerNames() []string {
	names := make([]string, 0, len(known))
	for name := range known {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
