package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("MONGO_URL", "mongodb://localhost:27017")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.MongoDatabase != "wellnecity_edm" {
		t.Errorf("MongoDatabase = %q", cfg.MongoDatabase)
	}
	if cfg.IntegrityMode != "strict" {
		t.Errorf("IntegrityMode = %q", cfg.IntegrityMode)
	}
	if cfg.TxnMaxAttempts != 4 {
		t.Errorf("TxnMaxAttempts = %d", cfg.TxnMaxAttempts)
	}
	if cfg.TxnMaxElapsed != 5*time.Second {
		t.Errorf("TxnMaxElapsed = %s", cfg.TxnMaxElapsed)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("validate: %v", err)
	}
}

func TestRetryPolicyCarriesTxnBudget(t *testing.T) {
	cfg := &Config{TxnMaxAttempts: 7, TxnMaxElapsed: 9 * time.Second}
	policy := cfg.RetryPolicy()
	if policy.MaxAttempts != 7 || policy.MaxElapsed != 9*time.Second {
		t.Errorf("RetryPolicy() = %+v", policy)
	}
}

func TestValidateRejectsMissingMongoURL(t *testing.T) {
	cfg := &Config{IntegrityMode: "strict", TxnMaxAttempts: 4, TxnMaxElapsed: time.Second}
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for missing MONGO_URL")
	}
}

func TestValidateRejectsBadIntegrityMode(t *testing.T) {
	cfg := &Config{MongoURL: "mongodb://x", IntegrityMode: "lenient", TxnMaxAttempts: 4, TxnMaxElapsed: time.Second}
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for bad INTEGRITY_MODE")
	}
}

func TestValidateRejectsZeroRetryBudget(t *testing.T) {
	cfg := &Config{MongoURL: "mongodb://x", IntegrityMode: "strict", TxnMaxAttempts: 0, TxnMaxElapsed: time.Second}
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for zero TXN_MAX_ATTEMPTS")
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("MONGO_URL", "mongodb://db0:27017")
	t.Setenv("MONGO_DATABASE", "edm_test")
	t.Setenv("INTEGRITY_MODE", "advisory")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.MongoDatabase != "edm_test" {
		t.Errorf("MongoDatabase = %q", cfg.MongoDatabase)
	}
	if cfg.IntegrityMode != "advisory" {
		t.Errorf("IntegrityMode = %q", cfg.IntegrityMode)
	}
}
