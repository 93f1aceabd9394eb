package terminology

import (
	"context"

	"github.com/gofhir/models/pkg/cache"
)

// CachedProvider wraps a Provider and remembers its answers in an LRU
// cache. Failed lookups are not cached.
type CachedProvider struct {
	inner Provider
	codes *cache.Cache[codeKey, bool]
	sets  *cache.Cache[codeKey, setAnswer]
}

type codeKey struct {
	system, code, valueSet string
}

type setAnswer struct {
	valid, found bool
}

// NewCachedProvider caches up to size answers from p per lookup kind. A
// non-positive size selects cache.DefaultCapacity.
func NewCachedProvider(p Provider, size int) *CachedProvider {
	return &CachedProvider{
		inner: p,
		codes: cache.New[codeKey, bool](size),
		sets:  cache.New[codeKey, setAnswer](size),
	}
}

// ValidateCode implements Provider.
func (c *CachedProvider) ValidateCode(ctx context.Context, system, code string) (bool, error) {
	return c.codes.GetOrLoad(codeKey{system: system, code: code}, func() (bool, error) {
		return c.inner.ValidateCode(ctx, system, code)
	})
}

// ValidateCodeInValueSet implements Provider.
func (c *CachedProvider) ValidateCodeInValueSet(ctx context.Context, system, code, valueSetURL string) (bool, bool, error) {
	a, err := c.sets.GetOrLoad(codeKey{system, code, valueSetURL}, func() (setAnswer, error) {
		valid, found, err := c.inner.ValidateCodeInValueSet(ctx, system, code, valueSetURL)
		return setAnswer{valid: valid, found: found}, err
	})
	return a.valid, a.found, err
}

// Stats returns the statistics of the code system and value set caches.
func (c *CachedProvider) Stats() (codes, valueSets cache.Stats) {
	return c.codes.Stats(), c.sets.Stats()
}

var _ Provider = (*CachedProvider)(nil)
