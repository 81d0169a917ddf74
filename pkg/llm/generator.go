// Package llm holds the text-generation providers used to produce domain
// name suggestions.
package llm

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"github.com/vit0-9/namegen_api/pkg/naming"
)

// Generator sends a prompt to one external text-generation provider and
// returns the raw response text. Implementations own transport and auth only;
// they never interpret the text.
type Generator interface {
	Name() string
	Flavor() naming.Flavor
	Generate(ctx context.Context, prompt string) (string, error)
}

var (
	ErrGeneratorNotFound   = errors.New("generator not found")
	ErrGeneratorRegistered = errors.New("generator already registered")
	ErrGeneratorInvalid    = errors.New("generator name is required")
)

// Registry maps provider identifiers (the aiModel request field) to generators.
type Registry struct {
	mu          sync.RWMutex
	generators  map[string]Generator
	defaultName string
}

func NewRegistry(defaultName string) *Registry {
	return &Registry{
		generators:  map[string]Generator{},
		defaultName: normalizeName(defaultName),
	}
}

func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Register adds a generator under its own name.
func (r *Registry) Register(g Generator) error {
	if g == nil {
		return errors.New("generator is nil")
	}
	key := normalizeName(g.Name())
	if key == "" {
		return ErrGeneratorInvalid
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.generators[key]; exists {
		return ErrGeneratorRegistered
	}
	r.generators[key] = g
	return nil
}

// Get returns the generator registered under name.
func (r *Registry) Get(name string) (Generator, bool) {
	key := normalizeName(name)
	if key == "" {
		return nil, false
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	g, ok := r.generators[key]
	return g, ok
}

// Resolve returns the generator for name, or the default generator when name
// is empty or unknown. The second result reports whether name was honored.
func (r *Registry) Resolve(name string) (Generator, bool, error) {
	if g, ok := r.Get(name); ok {
		return g, true, nil
	}
	if g, ok := r.Get(r.defaultName); ok {
		return g, normalizeName(name) == "", nil
	}
	return nil, false, ErrGeneratorNotFound
}

// DefaultName returns the provider used when a request names none.
func (r *Registry) DefaultName() string {
	return r.defaultName
}

// Names returns all registered provider names.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.generators))
	for name := range r.generators {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
