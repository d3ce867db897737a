package gomap

import (
	"sync"

	"github.com/signadot/troupe/schema"
)

var (
	defaultMu       sync.RWMutex
	defaultRegistry = schema.NewRegistry()
)

// SetDefaultRegistry sets the registry used when nil is passed to NewMapper.
func SetDefaultRegistry(reg *schema.Registry) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultRegistry = reg
}

// DefaultRegistry returns the current default registry.
func DefaultRegistry() *schema.Registry {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultRegistry
}

// Mapper converts between Go values and documents using a registry for
// discriminator names. A Mapper is safe for concurrent use.
type Mapper struct {
	registry *schema.Registry
}

// NewMapper creates a new Mapper with the given registry, or the default
// registry if reg is nil.
func NewMapper(reg *schema.Registry) *Mapper {
	if reg == nil {
		reg = DefaultRegistry()
	}
	return &Mapper{registry: reg}
}

// DefaultMapper returns a Mapper using the default registry.
func DefaultMapper() *Mapper {
	return NewMapper(nil)
}

func (m *Mapper) Registry() *schema.Registry {
	return m.registry
}
