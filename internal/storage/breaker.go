package storage

import (
	"errors"
	"sync"
	"time"
)

type breakerState int

const (
	breakerClosed breakerState = iota
	breakerOpen
	breakerHalfOpen
)

var ErrBreakerOpen = errors.New("storage breaker is open")

// Breaker stops the bridge from hammering an unreachable Redis with blocking
// writes on every mutation. After maxFailures consecutive faults the breaker
// opens and writes fail fast until cooldown elapses; a few probe calls then
// decide whether to close again.
type Breaker struct {
	mu          sync.Mutex
	state       breakerState
	failures    int
	probes      int
	lastFailure time.Time

	maxFailures int
	cooldown    time.Duration
	maxProbes   int
}

type BreakerConfig struct {
	MaxFailures int           `json:"max_failures"`
	Cooldown    time.Duration `json:"cooldown"`
	MaxProbes   int           `json:"max_probes"`
}

func DefaultBreakerConfig() *BreakerConfig {
	return &BreakerConfig{
		MaxFailures: 5,
		Cooldown:    30 * time.Second,
		MaxProbes:   3,
	}
}

func NewBreaker(config *BreakerConfig) *Breaker {
	if config == nil {
		config = DefaultBreakerConfig()
	}
	return &Breaker{
		state:       breakerClosed,
		maxFailures: config.MaxFailures,
		cooldown:    config.Cooldown,
		maxProbes:   config.MaxProbes,
	}
}

func (b *Breaker) Execute(fn func() error) error {
	if !b.allow() {
		return ErrBreakerOpen
	}

	if err := fn(); err != nil {
		b.recordFailure()
		return err
	}

	b.recordSuccess()
	return nil
}

func (b *Breaker) allow() bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	switch b.state {
	case breakerClosed:
		return true
	case breakerOpen:
		if time.Since(b.lastFailure) >= b.cooldown {
			b.state = breakerHalfOpen
			b.probes = 0
			return true
		}
		return false
	case breakerHalfOpen:
		return b.probes < b.maxProbes
	}
	return false
}

func (b *Breaker) recordFailure() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.failures++
	b.lastFailure = time.Now()

	switch b.state {
	case breakerClosed:
		if b.failures >= b.maxFailures {
			b.state = breakerOpen
		}
	case breakerHalfOpen:
		b.state = breakerOpen
		b.probes = 0
	}
}

func (b *Breaker) recordSuccess() {
	b.mu.Lock()
	defer b.mu.Unlock()

	switch b.state {
	case breakerClosed:
		b.failures = 0
	case breakerHalfOpen:
		b.probes++
		if b.probes >= b.maxProbes {
			b.state = breakerClosed
			b.failures = 0
			b.probes = 0
		}
	}
}

func (b *Breaker) State() string {
	b.mu.Lock()
	defer b.mu.Unlock()

	switch b.state {
	case breakerOpen:
		return "open"
	case breakerHalfOpen:
		return "half-open"
	}
	return "closed"
}
