package mock

import "github.com/solace-dev/solace/cache"

var _ cache.Invalidator = (*Invalidator)(nil)

// Invalidator is a test double for cache.Invalidator.
type Invalidator struct {
	InvalidateFn func(keys ...cache.Key)
}

func (i *Invalidator) Invalidate(keys ...cache.Key) {
	if i.InvalidateFn != nil {
		i.InvalidateFn(keys...)
	}
}
