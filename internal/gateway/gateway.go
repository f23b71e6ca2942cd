package gateway

import (
	"hash/fnv"
	"math/rand"
	"sync"
	"sync/atomic"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/rs/zerolog"

	"legacy-gateway/internal/config"
	"legacy-gateway/internal/mock"
	"legacy-gateway/internal/ratelimit"
)

// Gateway simulates a connection to a legacy command-oriented claims system:
// connect/disconnect lifecycle with inactivity expiry, a token-bucket rate
// budget, and timeout-protected execution of a small command language against
// a seeded in-memory dataset. Safe for concurrent use.
type Gateway struct {
	cfg     settings
	clk     clock.Clock
	logger  zerolog.Logger
	limiter *ratelimit.Limiter
	claims  []mock.Claim

	mu           sync.Mutex
	state        connectionState
	lastActivity time.Time

	// rnd drives connect-failure draws and processing delays. It is a
	// separate stream from the dataset generator so runtime draws never
	// perturb the generated claims.
	rndMu sync.Mutex
	rnd   *rand.Rand

	corrSeq atomic.Uint64
}

func New(opts ...Option) *Gateway {
	cfg := defaultSettings()
	for _, opt := range opts {
		opt(&cfg)
	}

	gen := mock.NewGeneratorWithClock(cfg.seed, cfg.clk)
	h := fnv.New64a()
	_, _ = h.Write([]byte(cfg.seed + "/runtime"))

	return &Gateway{
		cfg:     cfg,
		clk:     cfg.clk,
		logger:  cfg.logger,
		limiter: ratelimit.NewWithClock(cfg.rateCapacity, cfg.refillPerSec, cfg.maxWaiting, cfg.clk),
		claims:  gen.Claims(cfg.datasetSize),
		state:   stateDisconnected,
		rnd:     rand.New(rand.NewSource(int64(h.Sum64()))),
	}
}

// FromConfig builds a gateway from environment-derived configuration.
// Additional options are applied after the config and win on conflict.
func FromConfig(cfg config.GatewayConfig, opts ...Option) *Gateway {
	base := []Option{
		WithSeed(cfg.Seed),
		WithDefaultTimeout(time.Duration(cfg.DefaultTimeoutMS) * time.Millisecond),
		WithRateLimit(cfg.RateCapacity, cfg.RateRefillPerSec),
		WithMaxWaiting(cfg.MaxWaiting),
		WithDatasetSize(cfg.DatasetSize),
		WithInactivityWindow(time.Duration(cfg.InactivityMinutes) * time.Minute),
	}
	return New(append(base, opts...)...)
}

// MockClaims returns a read-only copy of the backing dataset.
func (g *Gateway) MockClaims() []mock.Claim {
	out := make([]mock.Claim, len(g.claims))
	copy(out, g.claims)
	return out
}

// RateLimiterStatus reports current whole tokens and waiting callers.
func (g *Gateway) RateLimiterStatus() ratelimit.Status {
	return g.limiter.Status()
}

func (g *Gateway) drawFloat() float64 {
	g.rndMu.Lock()
	defer g.rndMu.Unlock()
	return g.rnd.Float64()
}

func (g *Gateway) drawProcessingDelay() time.Duration {
	min, max := g.cfg.minProcessing, g.cfg.maxProcessing
	if max <= min {
		return min
	}
	g.rndMu.Lock()
	defer g.rndMu.Unlock()
	return min + time.Duration(g.rnd.Int63n(int64(max-min)))
}
