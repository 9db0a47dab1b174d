package broker

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
)

type fakeProber struct {
	identity *Identity
	err      error
	calls    atomic.Int32
}

func (p *fakeProber) Probe(context.Context) (*Identity, error) {
	p.calls.Add(1)
	return p.identity, p.err
}

func TestDiscoveryPrefersCache(t *testing.T) {
	ctx := context.Background()
	cache := NewCache(SDKSide, NewMemoryStorage())
	want := Identity{PackageName: "com.example.broker", SignatureHash: "abcd1234"}
	if err := cache.Set(ctx, want); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	prober := &fakeProber{identity: &Identity{PackageName: "other", SignatureHash: "ffff"}}
	client := NewClientFactory(cache, prober).Client()

	got, err := client.ActiveBroker(ctx)
	if err != nil {
		t.Fatalf("ActiveBroker failed: %v", err)
	}
	if got == nil || *got != want {
		t.Fatalf("expected cached identity, got %+v", got)
	}
	if prober.calls.Load() != 0 {
		t.Fatalf("prober should not run on cache hit, ran %d times", prober.calls.Load())
	}
}

func TestDiscoveryProbesAndCachesOnMiss(t *testing.T) {
	ctx := context.Background()
	cache := NewCache(SDKSide, NewMemoryStorage())
	want := Identity{PackageName: "com.example.broker", SignatureHash: "abcd1234"}
	prober := &fakeProber{identity: &want}
	client := NewClientFactory(cache, prober).Client()

	got, err := client.ActiveBroker(ctx)
	if err != nil {
		t.Fatalf("ActiveBroker failed: %v", err)
	}
	if got == nil || *got != want {
		t.Fatalf("expected probed identity, got %+v", got)
	}

	// Second call must be served from cache.
	if _, err := client.ActiveBroker(ctx); err != nil {
		t.Fatalf("second ActiveBroker failed: %v", err)
	}
	if prober.calls.Load() != 1 {
		t.Fatalf("expected exactly one probe, got %d", prober.calls.Load())
	}
}

func TestDiscoveryIncompleteProbeIsNoBroker(t *testing.T) {
	cache := NewCache(SDKSide, NewMemoryStorage())
	prober := &fakeProber{identity: &Identity{PackageName: "com.example.broker"}}
	client := NewClientFactory(cache, prober).Client()

	if _, err := client.ActiveBroker(context.Background()); !errors.Is(err, ErrNoActiveBroker) {
		t.Fatalf("expected ErrNoActiveBroker, got %v", err)
	}
}

func TestDiscoveryProbeErrorPropagates(t *testing.T) {
	cache := NewCache(SDKSide, NewMemoryStorage())
	wantErr := errors.New("package manager unavailable")
	client := NewClientFactory(cache, &fakeProber{err: wantErr}).Client()

	if _, err := client.ActiveBroker(context.Background()); !errors.Is(err, wantErr) {
		t.Fatalf("expected probe error, got %v", err)
	}
}

func TestLegacyDiscoveryNeverProbes(t *testing.T) {
	cache := NewCache(SDKSide, NewMemoryStorage())
	prober := &fakeProber{identity: &Identity{PackageName: "p", SignatureHash: "s"}}

	factory := NewClientFactory(cache, prober)
	factory.SetNewDiscoveryEnabled(false)
	client := factory.Client()

	if _, err := client.ActiveBroker(context.Background()); !errors.Is(err, ErrNoActiveBroker) {
		t.Fatalf("expected ErrNoActiveBroker, got %v", err)
	}
	if prober.calls.Load() != 0 {
		t.Fatalf("legacy client must not probe, ran %d times", prober.calls.Load())
	}
}

func TestFactoryReturnsSingleton(t *testing.T) {
	factory := NewClientFactory(NewCache(SDKSide, NewMemoryStorage()), nil)
	if factory.Client() != factory.Client() {
		t.Fatal("expected the same instance on repeated calls")
	}
}

func TestFactoryConcurrentFirstUseBuildsOnce(t *testing.T) {
	factory := NewClientFactory(NewCache(SDKSide, NewMemoryStorage()), nil)

	clients := make([]DiscoveryClient, 16)
	var wg sync.WaitGroup
	for i := range clients {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			clients[i] = factory.Client()
		}(i)
	}
	wg.Wait()

	for i := 1; i < len(clients); i++ {
		if clients[i] != clients[0] {
			t.Fatal("concurrent first use produced different instances")
		}
	}
}

func TestFactoryFlagFlipInvalidatesSingleton(t *testing.T) {
	factory := NewClientFactory(NewCache(SDKSide, NewMemoryStorage()), &fakeProber{})

	first := factory.Client()
	if _, ok := first.(*discoveryClient); !ok {
		t.Fatalf("expected full discovery client, got %T", first)
	}

	factory.SetNewDiscoveryEnabled(false)
	second := factory.Client()
	if _, ok := second.(*legacyDiscoveryClient); !ok {
		t.Fatalf("expected legacy client after flag flip, got %T", second)
	}
	if first == second {
		t.Fatal("flag flip must rebuild the singleton")
	}
}

func TestFactoryResetRebuildsSameMode(t *testing.T) {
	factory := NewClientFactory(NewCache(SDKSide, NewMemoryStorage()), &fakeProber{})

	first := factory.Client()
	factory.Reset()
	second := factory.Client()

	if first == second {
		t.Fatal("Reset must drop the singleton")
	}
	if _, ok := second.(*discoveryClient); !ok {
		t.Fatalf("Reset must not change the mode, got %T", second)
	}
}
