package gateway

import (
	"time"

	"github.com/benbjohnson/clock"
	"github.com/rs/zerolog"
)

const (
	defaultSeed             = "legacy-v1"
	defaultTimeout          = 5 * time.Second
	defaultRateCapacity     = 5
	defaultRefillPerSec     = 5
	defaultMaxWaiting       = 10
	defaultDatasetSize      = 100
	defaultInactivityWindow = 15 * time.Minute
	defaultConnectLatency   = 500 * time.Millisecond
	defaultDisconnectDelay  = 100 * time.Millisecond
	defaultMinProcessing    = 50 * time.Millisecond
	defaultMaxProcessing    = 200 * time.Millisecond
	defaultFailureRate      = 0.05
)

type settings struct {
	seed               string
	defaultTimeout     time.Duration
	rateCapacity       float64
	refillPerSec       float64
	maxWaiting         int
	datasetSize        int
	inactivityWindow   time.Duration
	connectLatency     time.Duration
	disconnectLatency  time.Duration
	minProcessing      time.Duration
	maxProcessing      time.Duration
	connectFailureRate float64
	clk                clock.Clock
	logger             zerolog.Logger
}

func defaultSettings() settings {
	return settings{
		seed:               defaultSeed,
		defaultTimeout:     defaultTimeout,
		rateCapacity:       defaultRateCapacity,
		refillPerSec:       defaultRefillPerSec,
		maxWaiting:         defaultMaxWaiting,
		datasetSize:        defaultDatasetSize,
		inactivityWindow:   defaultInactivityWindow,
		connectLatency:     defaultConnectLatency,
		disconnectLatency:  defaultDisconnectDelay,
		minProcessing:      defaultMinProcessing,
		maxProcessing:      defaultMaxProcessing,
		connectFailureRate: defaultFailureRate,
		clk:                clock.New(),
		logger:             zerolog.Nop(),
	}
}

type Option func(*settings)

func WithSeed(seed string) Option {
	return func(s *settings) { s.seed = seed }
}

func WithDefaultTimeout(d time.Duration) Option {
	return func(s *settings) { s.defaultTimeout = d }
}

func WithRateLimit(capacity, refillPerSec float64) Option {
	return func(s *settings) {
		s.rateCapacity = capacity
		s.refillPerSec = refillPerSec
	}
}

func WithMaxWaiting(n int) Option {
	return func(s *settings) { s.maxWaiting = n }
}

func WithDatasetSize(n int) Option {
	return func(s *settings) { s.datasetSize = n }
}

func WithInactivityWindow(d time.Duration) Option {
	return func(s *settings) { s.inactivityWindow = d }
}

// WithLatencies overrides the simulated connect and disconnect delays.
func WithLatencies(connect, disconnect time.Duration) Option {
	return func(s *settings) {
		s.connectLatency = connect
		s.disconnectLatency = disconnect
	}
}

// WithProcessingDelay bounds the simulated per-command processing time.
func WithProcessingDelay(min, max time.Duration) Option {
	return func(s *settings) {
		s.minProcessing = min
		s.maxProcessing = max
	}
}

// WithConnectFailureRate overrides the injected connect failure probability.
// Zero disables failure injection entirely.
func WithConnectFailureRate(rate float64) Option {
	return func(s *settings) { s.connectFailureRate = rate }
}

func WithClock(clk clock.Clock) Option {
	return func(s *settings) { s.clk = clk }
}

func WithLogger(logger zerolog.Logger) Option {
	return func(s *settings) { s.logger = logger }
}
