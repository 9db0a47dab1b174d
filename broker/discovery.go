package broker

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
)

// ErrNoActiveBroker is returned by discovery when no broker application
// is known.
var ErrNoActiveBroker = errors.New("no active broker")

// DiscoveryClient resolves the active broker identity for this process.
type DiscoveryClient interface {
	ActiveBroker(ctx context.Context) (*Identity, error)
}

// Prober inspects the host for installed broker candidates. It stands in
// for platform package-manager queries and is injected by the host SDK.
type Prober interface {
	Probe(ctx context.Context) (*Identity, error)
}

// discoveryClient is the full implementation: cache first, then probe,
// caching a successful probe for the next call.
type discoveryClient struct {
	cache  *ActiveBrokerCache
	prober Prober
}

func (d *discoveryClient) ActiveBroker(ctx context.Context) (*Identity, error) {
	cached, err := d.cache.Get(ctx)
	if err != nil {
		return nil, err
	}
	if cached != nil {
		return cached, nil
	}
	if d.prober == nil {
		return nil, ErrNoActiveBroker
	}

	probed, err := d.prober.Probe(ctx)
	if err != nil {
		return nil, err
	}
	if probed == nil || !probed.complete() {
		return nil, ErrNoActiveBroker
	}
	if err := d.cache.Set(ctx, *probed); err != nil {
		return nil, err
	}
	return copyIdentity(probed), nil
}

// legacyDiscoveryClient is the fallback used when the new discovery mode
// is disabled: it consults only the persisted cache and never probes.
type legacyDiscoveryClient struct {
	cache *ActiveBrokerCache
}

func (d *legacyDiscoveryClient) ActiveBroker(ctx context.Context) (*Identity, error) {
	cached, err := d.cache.Get(ctx)
	if err != nil {
		return nil, err
	}
	if cached == nil {
		return nil, ErrNoActiveBroker
	}
	return cached, nil
}

// ClientFactory lazily builds one process-wide DiscoveryClient, choosing
// between the full and legacy implementations on a feature flag. The warm
// path is a single atomic load; construction is double-checked under the
// mutex so concurrent first use builds exactly once.
type ClientFactory struct {
	cache  *ActiveBrokerCache
	prober Prober

	newDiscoveryEnabled atomic.Bool
	instance            atomic.Pointer[clientHolder]
	mu                  sync.Mutex
}

type clientHolder struct {
	client DiscoveryClient
}

// NewClientFactory builds a factory over the given cache and prober. The
// new discovery mode starts enabled.
func NewClientFactory(cache *ActiveBrokerCache, prober Prober) *ClientFactory {
	f := &ClientFactory{cache: cache, prober: prober}
	f.newDiscoveryEnabled.Store(true)
	return f
}

// Client returns the singleton, constructing it on first use.
func (f *ClientFactory) Client() DiscoveryClient {
	if holder := f.instance.Load(); holder != nil {
		return holder.client
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if holder := f.instance.Load(); holder != nil {
		return holder.client
	}

	var client DiscoveryClient
	if f.newDiscoveryEnabled.Load() {
		client = &discoveryClient{cache: f.cache, prober: f.prober}
	} else {
		client = &legacyDiscoveryClient{cache: f.cache}
	}
	f.instance.Store(&clientHolder{client: client})
	return client
}

// SetNewDiscoveryEnabled flips the feature flag and invalidates the
// current singleton so the next Client call rebuilds under the new mode.
func (f *ClientFactory) SetNewDiscoveryEnabled(enabled bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.newDiscoveryEnabled.Store(enabled)
	f.instance.Store(nil)
}

// Reset drops the singleton without changing the flag. The next Client
// call reconstructs it.
func (f *ClientFactory) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.instance.Store(nil)
}
