package goNativeAuth

import (
	"errors"
	"net/http"
	"time"

	"github.com/MrEthical07/goNativeAuth/internal/interactors"
	"github.com/MrEthical07/goNativeAuth/internal/requests"
	"github.com/MrEthical07/goNativeAuth/tokencache"
	"github.com/redis/go-redis/v9"
)

// Builder defines a public type used by goNativeAuth APIs.
//
// Builder instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Builder struct {
	config Config

	transport  Transport
	httpClient *http.Client
	tokenCache TokenCache
	redis      *redis.Client
	auditSink  AuditSink

	built bool
}

// New describes the new operation and its observable behavior.
//
// New may return an error when input validation, dependency calls, or security checks fail.
// New does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func New() *Builder {
	return &Builder{
		config: defaultConfig(),
	}
}

// WithConfig describes the withconfig operation and its observable behavior.
//
// WithConfig may return an error when input validation, dependency calls, or security checks fail.
// WithConfig does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (b *Builder) WithConfig(cfg Config) *Builder {
	b.config = cloneConfig(cfg)
	return b
}

// WithClientID describes the withclientid operation and its observable behavior.
//
// WithClientID may return an error when input validation, dependency calls, or security checks fail.
// WithClientID does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (b *Builder) WithClientID(clientID string) *Builder {
	b.config.ClientID = clientID
	return b
}

// WithAuthority describes the withauthority operation and its observable behavior.
//
// WithAuthority may return an error when input validation, dependency calls, or security checks fail.
// WithAuthority does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (b *Builder) WithAuthority(authorityURL string) *Builder {
	b.config.AuthorityURL = authorityURL
	return b
}

// WithTransport describes the withtransport operation and its observable behavior.
//
// WithTransport may return an error when input validation, dependency calls, or security checks fail.
// WithTransport does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (b *Builder) WithTransport(t Transport) *Builder {
	b.transport = t
	return b
}

// WithHTTPClient describes the withhttpclient operation and its observable behavior.
//
// WithHTTPClient may return an error when input validation, dependency calls, or security checks fail.
// WithHTTPClient does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (b *Builder) WithHTTPClient(client *http.Client) *Builder {
	b.httpClient = client
	return b
}

// WithTokenCache describes the withtokencache operation and its observable behavior.
//
// WithTokenCache may return an error when input validation, dependency calls, or security checks fail.
// WithTokenCache does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (b *Builder) WithTokenCache(cache TokenCache) *Builder {
	b.tokenCache = cache
	return b
}

// WithRedis describes the withredis operation and its observable behavior.
//
// WithRedis may return an error when input validation, dependency calls, or security checks fail.
// WithRedis does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (b *Builder) WithRedis(client *redis.Client) *Builder {
	b.redis = client
	return b
}

// WithAuditSink describes the withauditsink operation and its observable behavior.
//
// WithAuditSink may return an error when input validation, dependency calls, or security checks fail.
// WithAuditSink does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (b *Builder) WithAuditSink(sink AuditSink) *Builder {
	b.auditSink = sink
	return b
}

// WithMetricsEnabled describes the withmetricsenabled operation and its observable behavior.
//
// WithMetricsEnabled may return an error when input validation, dependency calls, or security checks fail.
// WithMetricsEnabled does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (b *Builder) WithMetricsEnabled(enabled bool) *Builder {
	b.config.Metrics.Enabled = enabled
	return b
}

// WithLatencyHistograms describes the withlatencyhistograms operation and its observable behavior.
//
// WithLatencyHistograms may return an error when input validation, dependency calls, or security checks fail.
// WithLatencyHistograms does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (b *Builder) WithLatencyHistograms(enabled bool) *Builder {
	b.config.Metrics.EnableLatencyHistograms = enabled
	return b
}

// Build describes the build operation and its observable behavior.
//
// Build may return an error when input validation, dependency calls, or security checks fail.
// Build does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (b *Builder) Build() (*Engine, error) {
	if b.built {
		return nil, errors.New("builder already used")
	}

	cfg := cloneConfig(b.config)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	// -------- TRANSPORT --------
	transport := b.transport
	if transport == nil {
		client := b.httpClient
		if client == nil {
			client = &http.Client{Timeout: cfg.HTTP.RequestTimeout}
		}
		transport = NewHTTPTransport(client)
	}

	// -------- TOKEN CACHE --------
	cache := b.tokenCache
	if cache == nil && b.redis != nil {
		cache = tokencache.NewRedisCache(b.redis, cfg.Cache.RedisPrefix)
	}
	if cache == nil {
		memCache, err := tokencache.NewMemoryCache(cfg.Cache.Size)
		if err != nil {
			return nil, err
		}
		cache = memCache
	}

	// -------- STRATEGY --------
	strategy := interactors.NewStrategy(requests.Config{
		ClientID:       cfg.ClientID,
		AuthorityURL:   cfg.AuthorityURL,
		ChallengeTypes: cloneStrings(cfg.ChallengeTypes),
	}, transport)

	engine := &Engine{
		config:     cloneConfig(cfg),
		strategy:   strategy,
		tokenCache: cache,
		now:        time.Now,
	}

	engine.audit = newAuditDispatcher(cfg.Audit, b.auditSink)
	engine.metrics = NewMetrics(cfg.Metrics)

	b.built = true

	return engine, nil
}
