package config

import "github.com/caarlos0/env/v11"

type GatewayConfig struct {
	Seed              string  `env:"GATEWAY_SEED" envDefault:"legacy-v1"`
	DefaultTimeoutMS  int64   `env:"GATEWAY_TIMEOUT_MS" envDefault:"5000"`
	RateCapacity      float64 `env:"GATEWAY_RATE_CAPACITY" envDefault:"5"`
	RateRefillPerSec  float64 `env:"GATEWAY_RATE_REFILL_PER_SEC" envDefault:"5"`
	MaxWaiting        int     `env:"GATEWAY_RATE_MAX_WAITING" envDefault:"10"`
	DatasetSize       int     `env:"GATEWAY_DATASET_SIZE" envDefault:"100"`
	InactivityMinutes int     `env:"GATEWAY_INACTIVITY_MINUTES" envDefault:"15"`
}

func LoadGateway() (GatewayConfig, error) {
	var cfg GatewayConfig
	err := env.Parse(&cfg)
	return cfg, err
}
