package broker

import (
	"context"
	"sync"
)

// Side names the process a cache instance belongs to. Each side owns its
// own lock and storage namespace.
type Side string

const (
	// BrokerSide is the cache scoped to the broker process.
	BrokerSide Side = "broker"
	// SDKSide is the cache scoped to the consuming SDK process.
	SDKSide Side = "sdk"
)

// Persisted keys for the two halves of the active broker identity.
const (
	packageNameKey   = "active.broker.package.name"
	signatureHashKey = "active.broker.signature.hash"
)

// Identity is the (package name, signature hash) pair of the active
// broker application.
type Identity struct {
	PackageName   string
	SignatureHash string
}

func (id Identity) complete() bool {
	return id.PackageName != "" && id.SignatureHash != ""
}

// lockRegistry hands out one RWMutex per logical namespace. All cache
// instances of a side share that side's lock; the two sides never share.
type lockRegistry struct {
	mu    sync.Mutex
	locks map[Side]*sync.RWMutex
}

var registry = &lockRegistry{locks: make(map[Side]*sync.RWMutex)}

func (r *lockRegistry) lockFor(side Side) *sync.RWMutex {
	r.mu.Lock()
	defer r.mu.Unlock()
	if lock, ok := r.locks[side]; ok {
		return lock
	}
	lock := &sync.RWMutex{}
	r.locks[side] = lock
	return lock
}

// ActiveBrokerCache caches the active broker identity with an in-memory
// fast path over persistent storage. Persisted state is authoritative only
// on cold start; once loaded, the in-memory value wins until Clear.
type ActiveBrokerCache struct {
	side    Side
	storage Storage
	lock    *sync.RWMutex

	// Guarded by lock. memory non-nil means loaded has been decided.
	memory *Identity
	loaded bool
}

// NewCache builds a cache for the given side backed by storage. Instances
// of the same side share one reader/writer lock.
func NewCache(side Side, storage Storage) *ActiveBrokerCache {
	return &ActiveBrokerCache{
		side:    side,
		storage: storage,
		lock:    registry.lockFor(side),
	}
}

// Get returns the cached identity, reading through to storage on first
// use. Absence or blankness of either persisted key means no cached
// value. Concurrent Gets proceed in parallel once the value is loaded.
func (c *ActiveBrokerCache) Get(ctx context.Context) (*Identity, error) {
	c.lock.RLock()
	if c.loaded {
		identity := c.memory
		c.lock.RUnlock()
		return copyIdentity(identity), nil
	}
	c.lock.RUnlock()

	c.lock.Lock()
	defer c.lock.Unlock()
	if c.loaded {
		return copyIdentity(c.memory), nil
	}

	packageName, err := c.storage.Get(ctx, packageNameKey)
	if err != nil {
		return nil, err
	}
	signatureHash, err := c.storage.Get(ctx, signatureHashKey)
	if err != nil {
		return nil, err
	}

	identity := Identity{PackageName: packageName, SignatureHash: signatureHash}
	c.loaded = true
	if !identity.complete() {
		c.memory = nil
		return nil, nil
	}
	c.memory = &identity
	return copyIdentity(c.memory), nil
}

// Set persists both keys and then refreshes the in-memory copy. The
// stored value is a defensive copy, never the caller's instance.
func (c *ActiveBrokerCache) Set(ctx context.Context, identity Identity) error {
	c.lock.Lock()
	defer c.lock.Unlock()

	if err := c.storage.Put(ctx, packageNameKey, identity.PackageName); err != nil {
		return err
	}
	if err := c.storage.Put(ctx, signatureHashKey, identity.SignatureHash); err != nil {
		return err
	}

	stored := identity
	c.memory = &stored
	c.loaded = true
	return nil
}

// Clear removes both persisted keys and drops the in-memory value.
func (c *ActiveBrokerCache) Clear(ctx context.Context) error {
	c.lock.Lock()
	defer c.lock.Unlock()

	if err := c.storage.Remove(ctx, packageNameKey); err != nil {
		return err
	}
	if err := c.storage.Remove(ctx, signatureHashKey); err != nil {
		return err
	}

	c.memory = nil
	c.loaded = true
	return nil
}

func copyIdentity(identity *Identity) *Identity {
	if identity == nil {
		return nil
	}
	out := *identity
	return &out
}
