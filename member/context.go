package member

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/containerd/errdefs"
	lru "github.com/hashicorp/golang-lru/v2"
)

const (
	defaultCacheSize  = 256
	defaultOrdinalTag = "ordinal"
)

// Context owns the configuration and caches behind collection construction.
// Collections built by one context never mix with another's: naming strategy
// and ordinal tag key are baked into the descriptors at build time.
//
// A context keeps two caches. The LRU cache bounds memory for ad hoc lookups
// and supports eviction callbacks; the precompiled map pins hot types outside
// the LRU budget so they are never evicted. All methods are safe for
// concurrent use.
type Context struct {
	naming     NamingStrategy
	ordinalTag string
	cacheSize  int
	onEvict    func(reflect.Type, *Collection)

	cache *lru.Cache[reflect.Type, *Collection]

	precompiledMu sync.RWMutex
	precompiled   map[reflect.Type]*Collection
}

// Option configures a Context at construction.
type Option func(*Context)

// WithNamingStrategy overrides the alias and entity-set naming strategy.
func WithNamingStrategy(strategy NamingStrategy) Option {
	return func(c *Context) {
		if strategy != nil {
			c.naming = strategy
		}
	}
}

// WithOrdinalTag overrides the struct tag key read by Descriptor.Ordinal.
// An empty key keeps the default.
func WithOrdinalTag(key string) Option {
	return func(c *Context) {
		if key != "" {
			c.ordinalTag = key
		}
	}
}

// WithCacheSize bounds the LRU collection cache. Sizes below one keep the
// default.
func WithCacheSize(size int) Option {
	return func(c *Context) {
		if size > 0 {
			c.cacheSize = size
		}
	}
}

// WithEvictionCallback registers a callback invoked whenever a collection
// falls out of the LRU cache. Precompiled collections never trigger it.
func WithEvictionCallback(onEvict func(reflect.Type, *Collection)) Option {
	return func(c *Context) {
		c.onEvict = onEvict
	}
}

// New creates a Context with the given options. Defaults: snake_case naming
// with pluralized type names, ordinal tag key "ordinal", LRU cache of 256
// types, no eviction callback.
func New(options ...Option) *Context {
	c := &Context{
		naming:      DefaultNamingStrategy(),
		ordinalTag:  defaultOrdinalTag,
		cacheSize:   defaultCacheSize,
		precompiled: make(map[reflect.Type]*Collection),
	}
	for _, opt := range options {
		opt(c)
	}

	// Size is validated by the options, so construction cannot fail.
	cache, _ := lru.NewWithEvict[reflect.Type, *Collection](c.cacheSize, c.onEvict)
	c.cache = cache
	return c
}

// Collection returns the member collection for t, building and caching it on
// first use. Pointer types resolve to their element type's collection.
//
// Parameters:
//   - t: the type to describe, must not be nil
//
// Returns the shared collection instance or an InvalidArgument error for a
// nil type. Concurrent first lookups of the same type may each build a
// collection; the instances are equivalent and one of them wins the cache.
func (c *Context) Collection(t reflect.Type) (*Collection, error) {
	t, err := normalizeType(t)
	if err != nil {
		return nil, err
	}

	c.precompiledMu.RLock()
	col, pinned := c.precompiled[t]
	c.precompiledMu.RUnlock()
	if pinned {
		return col, nil
	}

	if col, ok := c.cache.Get(t); ok {
		return col, nil
	}

	col, err = buildCollection(t, c)
	if err != nil {
		return nil, err
	}
	c.cache.Add(t, col)
	return col, nil
}

// Precompile builds the collection for t and pins it outside the LRU budget.
// Pinned collections survive Purge and never fire the eviction callback.
func (c *Context) Precompile(t reflect.Type) (*Collection, error) {
	t, err := normalizeType(t)
	if err != nil {
		return nil, err
	}

	c.precompiledMu.Lock()
	defer c.precompiledMu.Unlock()
	if col, ok := c.precompiled[t]; ok {
		return col, nil
	}
	col, err := buildCollection(t, c)
	if err != nil {
		return nil, err
	}
	c.precompiled[t] = col
	return col, nil
}

// Purge empties the LRU cache, firing the eviction callback for every entry.
// Precompiled collections stay pinned.
func (c *Context) Purge() {
	c.cache.Purge()
}

// Len returns the number of LRU-cached collections, excluding pinned ones.
func (c *Context) Len() int {
	return c.cache.Len()
}

// ClearPrecompiled unpins every precompiled collection.
func (c *Context) ClearPrecompiled() {
	c.precompiledMu.Lock()
	defer c.precompiledMu.Unlock()
	clear(c.precompiled)
}

// PrecompiledCount returns the number of pinned collections.
func (c *Context) PrecompiledCount() int {
	c.precompiledMu.RLock()
	defer c.precompiledMu.RUnlock()
	return len(c.precompiled)
}

// normalizeType rejects nil and unwraps pointers so *T and T share one cache
// entry.
func normalizeType(t reflect.Type) (reflect.Type, error) {
	if t == nil {
		return nil, fmt.Errorf("member: cannot describe nil type: %w", errdefs.ErrInvalidArgument)
	}
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t, nil
}

// ============================================================================
// Package-level API
// ============================================================================

// defaultContext backs the package-level functions. It uses the default
// naming strategy, ordinal tag and cache size.
var defaultContext = New()

// Of returns the cached member collection for t from the default context.
func Of(t reflect.Type) (*Collection, error) {
	return defaultContext.Collection(t)
}

// For returns the cached member collection for T from the default context.
func For[T any]() (*Collection, error) {
	return defaultContext.Collection(reflect.TypeFor[T]())
}

// Precompile builds T's collection in the default context and pins it so it
// is never evicted. Call it during startup for hot types.
func Precompile[T any]() *Collection {
	col, _ := defaultContext.Precompile(reflect.TypeFor[T]())
	return col
}

// ClearCache empties the default context's LRU cache. Precompiled
// collections stay pinned.
func ClearCache() {
	defaultContext.Purge()
}

// ClearPrecompiled unpins every collection precompiled in the default
// context.
func ClearPrecompiled() {
	defaultContext.ClearPrecompiled()
}

// CacheLen returns the number of collections in the default context's LRU
// cache.
func CacheLen() int {
	return defaultContext.Len()
}

// PrecompiledCount returns the number of collections pinned in the default
// context.
func PrecompiledCount() int {
	return defaultContext.PrecompiledCount()
}
