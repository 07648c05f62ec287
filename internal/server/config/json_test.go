package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestParseJson_OverlaysConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "server.json")

	data := `{
		"endpoint_addr": ":7070",
		"database_dsn": "postgres://u:p@h:5432/db",
		"secret_key": "json-secret",
		"master_key": "json-master",
		"access_token_validity_duration": "45m",
		"refresh_token_validity_duration": "72h"
	}`
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()
	os.Args = []string{"test", "-c", path}

	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)

	if cfg.EndpointAddr != ":7070" {
		t.Fatalf("endpoint_addr not applied: %q", cfg.EndpointAddr)
	}
	if cfg.DatabaseDSN != "postgres://u:p@h:5432/db" {
		t.Fatalf("database_dsn not applied: %q", cfg.DatabaseDSN)
	}
	if cfg.SecretKey != "json-secret" || cfg.MasterKey != "json-master" {
		t.Fatalf("secrets not applied: %+v", cfg)
	}
	if cfg.AccessTokenValidityDuration != 45*time.Minute {
		t.Fatalf("access validity not applied: %v", cfg.AccessTokenValidityDuration)
	}
	if cfg.RefreshTokenValidityDuration != 72*time.Hour {
		t.Fatalf("refresh validity not applied: %v", cfg.RefreshTokenValidityDuration)
	}
}

func TestParseJson_NoFileFlagIsNoop(t *testing.T) {
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()
	os.Args = []string{"test"}

	cfg := &Config{}
	cfg.LoadDefaults()
	want := *cfg

	parseJson(cfg)

	if *cfg != want {
		t.Fatalf("config changed without a JSON file: %+v", cfg)
	}
}

func TestParseJson_InvalidFilePanics(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()
	os.Args = []string{"test", "-config", path}

	defer func() {
		if r := recover(); r == nil {
			t.Fatal("expected panic for invalid JSON config")
		}
	}()
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
}
