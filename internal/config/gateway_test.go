package config

import "testing"

func TestLoadGatewayDefaults(t *testing.T) {
	cfg, err := LoadGateway()
	if err != nil {
		t.Fatalf("LoadGateway() error = %v", err)
	}
	if cfg.Seed != "legacy-v1" {
		t.Fatalf("Seed = %q, want legacy-v1", cfg.Seed)
	}
	if cfg.DefaultTimeoutMS != 5000 {
		t.Fatalf("DefaultTimeoutMS = %d, want 5000", cfg.DefaultTimeoutMS)
	}
	if cfg.RateCapacity != 5 || cfg.RateRefillPerSec != 5 {
		t.Fatalf("rate = %v/%v, want 5/5", cfg.RateCapacity, cfg.RateRefillPerSec)
	}
	if cfg.MaxWaiting != 10 {
		t.Fatalf("MaxWaiting = %d, want 10", cfg.MaxWaiting)
	}
	if cfg.DatasetSize != 100 {
		t.Fatalf("DatasetSize = %d, want 100", cfg.DatasetSize)
	}
	if cfg.InactivityMinutes != 15 {
		t.Fatalf("InactivityMinutes = %d, want 15", cfg.InactivityMinutes)
	}
}

func TestLoadGatewayParseTypes(t *testing.T) {
	t.Setenv("GATEWAY_SEED", "t1")
	t.Setenv("GATEWAY_TIMEOUT_MS", "250")
	t.Setenv("GATEWAY_RATE_CAPACITY", "2.5")
	t.Setenv("GATEWAY_DATASET_SIZE", "10")

	cfg, err := LoadGateway()
	if err != nil {
		t.Fatalf("LoadGateway() error = %v", err)
	}
	if cfg.Seed != "t1" {
		t.Fatalf("Seed = %q, want t1", cfg.Seed)
	}
	if cfg.DefaultTimeoutMS != 250 {
		t.Fatalf("DefaultTimeoutMS = %d, want 250", cfg.DefaultTimeoutMS)
	}
	if cfg.RateCapacity != 2.5 {
		t.Fatalf("RateCapacity = %v, want 2.5", cfg.RateCapacity)
	}
	if cfg.DatasetSize != 10 {
		t.Fatalf("DatasetSize = %d, want 10", cfg.DatasetSize)
	}
}
