package goNativeAuth

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"
)

// Config defines a public type used by goNativeAuth APIs.
//
// Config instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Config struct {
	ClientID       string
	AuthorityURL   string
	ChallengeTypes []string
	DefaultScopes  []string
	HTTP           HTTPConfig
	Poll           PollConfig
	Silent         SilentConfig
	Cache          CacheConfig
	Audit          AuditConfig
	Metrics        MetricsConfig
}

/*
====================================
HTTP CONFIG
====================================
*/

// HTTPConfig defines a public type used by goNativeAuth APIs.
//
// HTTPConfig instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type HTTPConfig struct {
	RequestTimeout time.Duration
}

/*
====================================
POLL CONFIG
====================================
*/

// PollConfig defines a public type used by goNativeAuth APIs.
//
// PollConfig instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type PollConfig struct {
	CompletionTimeout time.Duration
	DefaultInterval   time.Duration
}

/*
====================================
SILENT TOKEN CONFIG
====================================
*/

// SilentConfig defines a public type used by goNativeAuth APIs.
//
// SilentConfig instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type SilentConfig struct {
	BackgroundRefresh bool
}

/*
====================================
CACHE CONFIG
====================================
*/

// CacheConfig defines a public type used by goNativeAuth APIs.
//
// CacheConfig instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type CacheConfig struct {
	Size        int
	RedisPrefix string
}

// AuditConfig defines a public type used by goNativeAuth APIs.
//
// AuditConfig instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type AuditConfig struct {
	Enabled    bool
	BufferSize int
	DropIfFull bool
}

// MetricsConfig defines a public type used by goNativeAuth APIs.
//
// MetricsConfig instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type MetricsConfig struct {
	Enabled                 bool
	EnableLatencyHistograms bool
}

/*
====================================
CHALLENGE TYPES
====================================
*/

const (
	// ChallengeTypeOOB is an exported constant or variable used by the authentication engine.
	ChallengeTypeOOB = "oob"
	// ChallengeTypePassword is an exported constant or variable used by the authentication engine.
	ChallengeTypePassword = "password"
	// ChallengeTypeRedirect is an exported constant or variable used by the authentication engine.
	ChallengeTypeRedirect = "redirect"
)

/*
====================================
DEFAULT CONFIG
====================================
*/

func defaultConfig() Config {
	return Config{
		ChallengeTypes: []string{ChallengeTypeOOB, ChallengeTypePassword, ChallengeTypeRedirect},
		HTTP: HTTPConfig{
			RequestTimeout: 30 * time.Second,
		},
		Poll: PollConfig{
			CompletionTimeout: 300 * time.Second,
			DefaultInterval:   2 * time.Second,
		},
		Silent: SilentConfig{
			BackgroundRefresh: true,
		},
		Cache: CacheConfig{
			Size:        128,
			RedisPrefix: "natc",
		},
		Audit: AuditConfig{
			Enabled:    false,
			BufferSize: 1024,
			DropIfFull: true,
		},
		Metrics: MetricsConfig{
			Enabled:                 true,
			EnableLatencyHistograms: false,
		},
	}
}

func cloneConfig(cfg Config) Config {
	out := cfg
	out.ChallengeTypes = cloneStrings(cfg.ChallengeTypes)
	out.DefaultScopes = cloneStrings(cfg.DefaultScopes)
	return out
}

func cloneStrings(in []string) []string {
	if len(in) == 0 {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}

/*
====================================
VALIDATION
====================================
*/

// Validate describes the validate operation and its observable behavior.
//
// Validate may return an error when input validation, dependency calls, or security checks fail.
// Validate does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.ClientID) == "" {
		return errors.New("ClientID is required")
	}

	if strings.TrimSpace(c.AuthorityURL) == "" {
		return errors.New("AuthorityURL is required")
	}
	u, err := url.Parse(c.AuthorityURL)
	if err != nil {
		return fmt.Errorf("AuthorityURL is not a valid URL: %v", err)
	}
	if u.Scheme != "https" && u.Scheme != "http" {
		return errors.New("AuthorityURL must use http or https")
	}
	if u.Host == "" {
		return errors.New("AuthorityURL must include a host")
	}

	if len(c.ChallengeTypes) == 0 {
		return errors.New("at least one challenge type is required")
	}
	for _, ct := range c.ChallengeTypes {
		switch ct {
		case ChallengeTypeOOB, ChallengeTypePassword, ChallengeTypeRedirect:
			// valid
		default:
			return fmt.Errorf("unsupported challenge type %q", ct)
		}
	}

	for _, scope := range c.DefaultScopes {
		if strings.TrimSpace(scope) == "" {
			return errors.New("DefaultScopes must not contain blank entries")
		}
	}

	if c.HTTP.RequestTimeout < 0 {
		return errors.New("HTTP RequestTimeout must be >= 0")
	}

	if c.Poll.CompletionTimeout <= 0 {
		return errors.New("Poll CompletionTimeout must be > 0")
	}
	if c.Poll.DefaultInterval <= 0 {
		return errors.New("Poll DefaultInterval must be > 0")
	}
	if c.Poll.DefaultInterval > c.Poll.CompletionTimeout {
		return errors.New("Poll DefaultInterval must be <= Poll CompletionTimeout")
	}

	if c.Cache.Size <= 0 {
		return errors.New("Cache Size must be > 0")
	}
	if strings.TrimSpace(c.Cache.RedisPrefix) == "" {
		return errors.New("Cache RedisPrefix is required")
	}

	if c.Audit.Enabled {
		if c.Audit.BufferSize <= 0 {
			return errors.New("Audit BufferSize must be > 0 when audit is enabled")
		}
	}

	return nil
}
