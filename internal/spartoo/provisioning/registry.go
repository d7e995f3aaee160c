package provisioning

import (
	"fmt"
	"io/fs"
	"strings"
	"sync"
	"sync/atomic"

	"spartoo_api/pkg/logger"
)

// Registry holds the active catalog and swaps it atomically on a language
// switch. Each language is read from disk once; readers holding the previous
// catalog keep a consistent view of it.
type Registry struct {
	fsys    fs.FS
	current atomic.Pointer[Catalog]
	log     logger.Logger

	mu     sync.Mutex
	loaded map[string]*Catalog
}

func NewRegistry(fsys fs.FS, log logger.Logger) *Registry {
	if log == nil {
		log = logger.Nop{}
	}
	return &Registry{
		fsys:   fsys,
		log:    log,
		loaded: make(map[string]*Catalog),
	}
}

// Current returns the active catalog, or nil before the first Switch.
func (r *Registry) Current() *Catalog {
	return r.current.Load()
}

// Get returns the catalog of lang without making it the active one.
func (r *Registry) Get(lang string) (*Catalog, error) {
	key := strings.ToLower(lang)

	r.mu.Lock()
	defer r.mu.Unlock()

	if c, ok := r.loaded[key]; ok {
		return c, nil
	}
	c, err := Load(r.fsys, key)
	if err != nil {
		r.log.Log("failed to load provisionning for %s: %v", key, err)
		return nil, fmt.Errorf("failed to load catalog %s: %w", key, err)
	}
	r.loaded[key] = c
	r.log.Log("loaded provisionning for %s", key)
	return c, nil
}

// Switch makes lang the active catalog. On error the active catalog is kept.
func (r *Registry) Switch(lang string) (*Catalog, error) {
	c, err := r.Get(lang)
	if err != nil {
		return nil, err
	}
	r.current.Store(c)
	return c, nil
}

// Install registers an already built catalog and makes it active.
func (r *Registry) Install(c *Catalog) {
	r.mu.Lock()
	r.loaded[c.Language()] = c
	r.mu.Unlock()
	r.current.Store(c)
}
