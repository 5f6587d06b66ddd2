// Package registry holds the in-memory mapping from short keys to URLs.
package registry

import (
	"go-link-shortener/internal/app/keygen"
	"strings"
	"sync"
)

const (
	DefaultShards      = 32
	MaxShards          = 1 << 16
	DefaultMaxAttempts = 8
)

// Policy decides what Shorten does when a generated key is already taken.
type Policy int

const (
	// PolicyOverwrite replaces the existing link.
	PolicyOverwrite Policy = iota
	// PolicyRetry keeps the existing link and draws another key.
	PolicyRetry
)

// ParsePolicy maps a configuration value to a Policy.
func ParsePolicy(s string) (Policy, bool) {
	switch strings.ToLower(s) {
	case "", "overwrite":
		return PolicyOverwrite, true
	case "retry":
		return PolicyRetry, true
	}
	return PolicyOverwrite, false
}

func (p Policy) String() string {
	if p == PolicyRetry {
		return "retry"
	}
	return "overwrite"
}

type shard struct {
	mu    sync.RWMutex
	links map[uint32]string
}

// Registry is a lock-striped key to URL map. It is safe for concurrent use.
type Registry struct {
	shards      []*shard
	mask        uint32
	gen         keygen.Generator
	policy      Policy
	maxAttempts int
}

// Option configures a Registry.
type Option func(*Registry)

// WithGenerator sets the key source.
func WithGenerator(g keygen.Generator) Option {
	return func(r *Registry) {
		r.gen = g
	}
}

// WithShards sets the number of lock stripes, rounded up to a power of two
// and capped at MaxShards.
func WithShards(n int) Option {
	return func(r *Registry) {
		if n > MaxShards {
			n = MaxShards
		}
		size := 1
		for size < n {
			size <<= 1
		}
		r.shards = make([]*shard, size)
	}
}

// WithCollisionPolicy sets the collision policy.
func WithCollisionPolicy(p Policy) Option {
	return func(r *Registry) {
		r.policy = p
	}
}

// WithMaxAttempts bounds key generation under PolicyRetry.
func WithMaxAttempts(n int) Option {
	return func(r *Registry) {
		if n > 0 {
			r.maxAttempts = n
		}
	}
}

// New returns an empty Registry.
func New(opts ...Option) *Registry {
	r := &Registry{
		shards:      make([]*shard, DefaultShards),
		policy:      PolicyOverwrite,
		maxAttempts: DefaultMaxAttempts,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.gen == nil {
		r.gen = keygen.NewRandom()
	}
	for i := range r.shards {
		r.shards[i] = &shard{links: make(map[uint32]string)}
	}
	r.mask = uint32(len(r.shards) - 1)
	return r
}

func (r *Registry) shardFor(key uint32) *shard {
	// fold the high bits in so sequential test keys spread too
	return r.shards[(key^key>>16)&r.mask]
}

// Shorten stores url under a freshly generated key and returns the key.
func (r *Registry) Shorten(url string) (uint32, error) {
	if url == "" {
		return 0, &InvalidInputError{Reason: "URL is empty"}
	}
	if r.policy == PolicyRetry {
		return r.shortenUnique(url)
	}

	key := r.gen.Generate()
	s := r.shardFor(key)
	s.mu.Lock()
	s.links[key] = url
	s.mu.Unlock()
	return key, nil
}

func (r *Registry) shortenUnique(url string) (uint32, error) {
	for i := 0; i < r.maxAttempts; i++ {
		key := r.gen.Generate()
		s := r.shardFor(key)
		s.mu.Lock()
		if _, taken := s.links[key]; !taken {
			s.links[key] = url
			s.mu.Unlock()
			return key, nil
		}
		s.mu.Unlock()
	}
	return 0, &CollisionError{Attempts: r.maxAttempts}
}

// Resolve returns the URL stored under key.
func (r *Registry) Resolve(key uint32) (string, error) {
	s := r.shardFor(key)
	s.mu.RLock()
	url, ok := s.links[key]
	s.mu.RUnlock()
	if !ok {
		return "", &NotFoundError{Key: key}
	}
	return url, nil
}

// Len returns the number of stored links.
func (r *Registry) Len() int {
	n := 0
	for _, s := range r.shards {
		s.mu.RLock()
		n += len(s.links)
		s.mu.RUnlock()
	}
	return n
}

// Policy reports the collision policy in use.
func (r *Registry) Policy() Policy {
	return r.policy
}
