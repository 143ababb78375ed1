package config

import (
	"path/filepath"
	"testing"
)

func TestLoadMissingFileReturnsDefault(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.URL != Default().URL {
		t.Fatalf("URL = %q, want default", cfg.URL)
	}
}

func TestSaveThenLoadRoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tvmtool-cli.conf.json")
	cfg := Default()
	cfg.Addr = "0:aa"
	cfg.ABIPath = "/tmp/a.abi.json"
	if err := Save(path, cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.Addr != cfg.Addr || got.ABIPath != cfg.ABIPath {
		t.Fatalf("got %+v, want %+v", got, cfg)
	}
}
