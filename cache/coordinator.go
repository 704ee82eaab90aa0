package cache

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// DefaultAlertRefreshInterval is how often the active-alerts key is marked
// stale regardless of mutations, to catch externally-generated alerts.
const DefaultAlertRefreshInterval = 30 * time.Second

// FetchFunc loads the current value for a key from the remote service.
type FetchFunc func(ctx context.Context) (any, error)

// Entry is a point-in-time snapshot of one cached value.
type Entry struct {
	// Value is the last successfully fetched value, nil before the first
	// successful fetch.
	Value any
	// Err is the error of the most recent fetch, nil on success.
	Err error
	// FetchedAt is when Value was fetched.
	FetchedAt time.Time
	// Loading reports an in-flight fetch for the current generation.
	Loading bool
	// Stale reports that Value must be refetched before being trusted.
	Stale bool
}

type entry struct {
	value     any
	err       error
	fetchedAt time.Time
	loading   bool
	stale     bool
	fetched   bool
	// gen is bumped by every invalidation. A fetch started under an older
	// generation is discarded on completion, so the most recent
	// invalidation's fetch always wins.
	gen uint64
}

// Coordinator maps named keys to cached entries and keeps them consistent
// with mutations. It is the single owner of cached state: values change only
// through fetch completions, and staleness only through Invalidate.
// Coordinator is safe for concurrent use.
type Coordinator struct {
	logger       *slog.Logger
	refreshEvery time.Duration

	group singleflight.Group

	mu       sync.Mutex
	fetchers map[Key]FetchFunc
	entries  map[Key]*entry
	updates  chan Key
}

// Option configures a [Coordinator].
type Option func(*Coordinator)

// WithLogger sets the logger. Defaults to slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(c *Coordinator) { c.logger = l }
}

// WithAlertRefreshInterval overrides the background alert refresh interval.
// Useful for testing.
func WithAlertRefreshInterval(d time.Duration) Option {
	return func(c *Coordinator) { c.refreshEvery = d }
}

// New creates a Coordinator with no registered fetchers.
func New(opts ...Option) *Coordinator {
	c := &Coordinator{
		logger:       slog.Default(),
		refreshEvery: DefaultAlertRefreshInterval,
		fetchers:     make(map[Key]FetchFunc),
		entries:      make(map[Key]*entry),
		updates:      make(chan Key, 16),
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Register installs the fetcher for a key. Registering again replaces the
// previous fetcher.
func (c *Coordinator) Register(key Key, fn FetchFunc) {
	c.mu.Lock()
	c.fetchers[key] = fn
	c.mu.Unlock()
}

// Read returns the current snapshot for key. When the entry is missing or
// stale and no fetch is in flight, Read starts one asynchronously; the
// returned snapshot still carries the last-known value so callers can show
// stale-but-available data while the fetch runs.
func (c *Coordinator) Read(key Key) Entry {
	c.mu.Lock()
	e := c.ensureLocked(key)
	if fn := c.fetchers[key]; fn != nil && (!e.fetched || e.stale) && !e.loading {
		e.loading = true
		gen := e.gen
		go func() {
			if err := c.fetch(context.Background(), key, gen, fn); err != nil {
				c.logger.Warn("background fetch failed", "key", key, "error", err)
			}
		}()
	}
	snap := snapshot(e)
	c.mu.Unlock()
	return snap
}

// Sync blocks until the key holds a value no older than the most recent
// invalidation, fetching as needed, and returns the fresh snapshot. If an
// invalidation lands while a fetch is in flight, Sync fetches again.
func (c *Coordinator) Sync(ctx context.Context, key Key) (Entry, error) {
	for {
		if err := ctx.Err(); err != nil {
			return c.Peek(key), err
		}

		c.mu.Lock()
		e := c.ensureLocked(key)
		fn := c.fetchers[key]
		if fn == nil {
			c.mu.Unlock()
			return Entry{}, fmt.Errorf("cache: no fetcher registered for %q", key)
		}
		if e.fetched && !e.stale {
			snap := snapshot(e)
			c.mu.Unlock()
			return snap, nil
		}
		gen := e.gen
		e.loading = true
		c.mu.Unlock()

		if err := c.fetch(ctx, key, gen, fn); err != nil {
			return c.Peek(key), err
		}
	}
}

// Peek returns the current snapshot without triggering a fetch.
func (c *Coordinator) Peek(key Key) Entry {
	c.mu.Lock()
	snap := snapshot(c.ensureLocked(key))
	c.mu.Unlock()
	return snap
}

// Invalidate marks the given keys stale. In-flight fetches for those keys are
// disowned: their results are discarded on completion and a new fetch starts
// on the next read.
func (c *Coordinator) Invalidate(keys ...Key) {
	c.mu.Lock()
	for _, key := range keys {
		e := c.ensureLocked(key)
		e.stale = true
		e.gen++
		e.loading = false
	}
	c.mu.Unlock()
	for _, key := range keys {
		c.notify(key)
	}
}

// Updates returns a channel that receives a key whenever its entry changes
// (fetch completion or invalidation). Notifications are best-effort: when the
// consumer lags, intermediate notifications are dropped.
func (c *Coordinator) Updates() <-chan Key {
	return c.updates
}

// RunAlertRefresh marks the active-alerts key stale on a fixed interval,
// independent of mutation-triggered invalidation, so alerts generated outside
// this client are eventually observed. It blocks until ctx is done.
func (c *Coordinator) RunAlertRefresh(ctx context.Context) {
	t := time.NewTicker(c.refreshEvery)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			c.Invalidate(KeyActiveAlerts)
		}
	}
}

// fetch runs the fetcher for key under the given generation, deduplicating
// concurrent fetches of the same key and generation, and applies the result
// unless a newer invalidation superseded it.
func (c *Coordinator) fetch(ctx context.Context, key Key, gen uint64, fn FetchFunc) error {
	sfKey := string(key) + "#" + strconv.FormatUint(gen, 10)
	v, err, _ := c.group.Do(sfKey, func() (any, error) {
		return fn(ctx)
	})

	c.mu.Lock()
	e := c.entries[key]
	if e == nil || e.gen != gen {
		c.mu.Unlock()
		c.logger.Debug("discarding superseded fetch", "key", key, "gen", gen)
		return err
	}
	e.loading = false
	e.err = err
	if err == nil {
		e.value = v
		e.fetchedAt = time.Now()
		e.fetched = true
		e.stale = false
	}
	c.mu.Unlock()
	c.notify(key)
	return err
}

func (c *Coordinator) ensureLocked(key Key) *entry {
	e, ok := c.entries[key]
	if !ok {
		e = &entry{}
		c.entries[key] = e
	}
	return e
}

func (c *Coordinator) notify(key Key) {
	select {
	case c.updates <- key:
	default:
	}
}

func snapshot(e *entry) Entry {
	return Entry{
		Value:     e.value,
		Err:       e.err,
		FetchedAt: e.fetchedAt,
		Loading:   e.loading,
		Stale:     e.stale,
	}
}
