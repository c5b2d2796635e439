package config

import "testing"

func validConfig() Config {
	return Config{
		HTTP: HTTPConfig{Port: 8080},
		Database: DatabaseConfig{
			Addrs: []string{"localhost:6379"},
		},
		Embedding: EmbeddingConfig{APIKey: "test-key"},
		LLM:       LLMConfig{APIKey: "test-key"},
	}
}

func TestValidate(t *testing.T) {
	cfg := validConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_InvalidPort(t *testing.T) {
	cfg := validConfig()
	cfg.HTTP.Port = 0

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for invalid port")
	}
}

func TestValidate_MissingDatabaseAddrs(t *testing.T) {
	cfg := validConfig()
	cfg.Database.Addrs = nil

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for missing database addrs")
	}
}

func TestValidate_MissingAPIKeys(t *testing.T) {
	cfg := validConfig()
	cfg.Embedding.APIKey = ""
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for missing embedding api key")
	}

	cfg = validConfig()
	cfg.LLM.APIKey = ""
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for missing llm api key")
	}
}

func TestValidate_LimitsOrdering(t *testing.T) {
	cfg := validConfig()
	cfg.Search = SearchConfig{InitialLimit: 50, FinalLimit: 20}

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error when initial limit exceeds final limit")
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := Config{}
	cfg.ApplyDefaults()

	if cfg.HTTP.ReadTimeoutSec != 10 {
		t.Errorf("expected ReadTimeoutSec=10, got %d", cfg.HTTP.ReadTimeoutSec)
	}
	if cfg.HTTP.WriteTimeoutSec != 60 {
		t.Errorf("expected WriteTimeoutSec=60, got %d", cfg.HTTP.WriteTimeoutSec)
	}
	if cfg.HTTP.ShutdownSec != 10 {
		t.Errorf("expected ShutdownSec=10, got %d", cfg.HTTP.ShutdownSec)
	}
	if cfg.Database.ReadinessTimeout != 10 {
		t.Errorf("expected ReadinessTimeout=10, got %d", cfg.Database.ReadinessTimeout)
	}
	if cfg.Embedding.Model != "text-embedding-3-small" {
		t.Errorf("expected default embedding model, got %q", cfg.Embedding.Model)
	}
	if cfg.Embedding.Dimensions != 1536 {
		t.Errorf("expected Dimensions=1536, got %d", cfg.Embedding.Dimensions)
	}
	if cfg.LLM.Model != "gpt-4o-mini" {
		t.Errorf("expected default llm model, got %q", cfg.LLM.Model)
	}
	if cfg.Search.InitialLimit != 10 {
		t.Errorf("expected InitialLimit=10, got %d", cfg.Search.InitialLimit)
	}
	if cfg.Search.FinalLimit != 20 {
		t.Errorf("expected FinalLimit=20, got %d", cfg.Search.FinalLimit)
	}
	if cfg.Ingest.BatchWorkers != 4 {
		t.Errorf("expected BatchWorkers=4, got %d", cfg.Ingest.BatchWorkers)
	}
	if cfg.Ingest.MaxBatchSize != 100 {
		t.Errorf("expected MaxBatchSize=100, got %d", cfg.Ingest.MaxBatchSize)
	}
	if cfg.Index.HNSWM != 16 {
		t.Errorf("expected HNSWM=16, got %d", cfg.Index.HNSWM)
	}
	if cfg.Index.HNSWEFConstruct != 200 {
		t.Errorf("expected HNSWEFConstruct=200, got %d", cfg.Index.HNSWEFConstruct)
	}
	if cfg.Storage.KeyPrefix != "shopdex:" {
		t.Errorf("expected KeyPrefix='shopdex:', got %q", cfg.Storage.KeyPrefix)
	}
}

func TestApplyDefaults_NoOverride(t *testing.T) {
	cfg := Config{
		HTTP:     HTTPConfig{ReadTimeoutSec: 30, WriteTimeoutSec: 120, ShutdownSec: 5},
		Database: DatabaseConfig{ReadinessTimeout: 15},
		Search:   SearchConfig{InitialLimit: 5, FinalLimit: 50},
		Index:    IndexConfig{HNSWM: 32, HNSWEFConstruct: 400},
		Storage:  StorageConfig{KeyPrefix: "custom:"},
	}
	cfg.ApplyDefaults()

	if cfg.HTTP.ReadTimeoutSec != 30 {
		t.Errorf("expected ReadTimeoutSec=30, got %d", cfg.HTTP.ReadTimeoutSec)
	}
	if cfg.HTTP.WriteTimeoutSec != 120 {
		t.Errorf("expected WriteTimeoutSec=120, got %d", cfg.HTTP.WriteTimeoutSec)
	}
	if cfg.Search.InitialLimit != 5 || cfg.Search.FinalLimit != 50 {
		t.Errorf("expected search limits 5/50, got %d/%d", cfg.Search.InitialLimit, cfg.Search.FinalLimit)
	}
	if cfg.Index.HNSWM != 32 {
		t.Errorf("expected HNSWM=32, got %d", cfg.Index.HNSWM)
	}
	if cfg.Storage.KeyPrefix != "custom:" {
		t.Errorf("expected KeyPrefix='custom:', got %q", cfg.Storage.KeyPrefix)
	}
}
