package config

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestLoad_EnvDefaults(t *testing.T) {
	t.Setenv("AUTH_ENABLE_VERIFICATION", "false")

	cfg, err := Load("test")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Port != "8090" {
		t.Errorf("Port = %q, want 8090", cfg.Port)
	}
	if cfg.Database.Host != "localhost" || cfg.Database.Port != 5432 {
		t.Errorf("unexpected database defaults: %+v", cfg.Database)
	}
	if cfg.Version != "test" {
		t.Errorf("Version = %q", cfg.Version)
	}
}

func TestLoad_VerificationRequiresEndpoints(t *testing.T) {
	t.Setenv("AUTH_ENABLE_VERIFICATION", "true")
	t.Setenv("JWKS_ENDPOINTS", "")

	if _, err := Load("test"); err == nil {
		t.Fatal("expected error when verification enabled without JWKS endpoints")
	}
}

func TestParseJWKSEndpoints(t *testing.T) {
	got := parseJWKSEndpoints("https://auth.example.com=https://auth.example.com/jwks.json, broken, =x, y=")
	if len(got) != 1 {
		t.Fatalf("got %d endpoints, want 1: %v", len(got), got)
	}
	if got["https://auth.example.com"] != "https://auth.example.com/jwks.json" {
		t.Errorf("unexpected map: %v", got)
	}
}

func TestDatabaseConfig_URL(t *testing.T) {
	c := DatabaseConfig{Host: "db", Port: 5433, User: "u", Password: "p", Database: "d", SSLMode: "disable"}
	want := "postgres://u:p@db:5433/d?sslmode=disable"
	if got := c.URL(); got != want {
		t.Errorf("URL() = %q, want %q", got, want)
	}
}

func TestLoad_YAMLFile(t *testing.T) {
	dir := t.TempDir()
	raw, err := yaml.Marshal(map[string]any{
		"port":            "9100",
		"env":             "staging",
		"migrations_path": "db/migrations",
		"auth":            map[string]any{"enable_verification": false},
	})
	if err != nil {
		t.Fatalf("yaml.Marshal: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), raw, 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	wd, _ := os.Getwd()
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	defer func() { _ = os.Chdir(wd) }()

	cfg, err := Load("dev")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Port != "9100" || cfg.Env != "staging" || cfg.MigrationsPath != "db/migrations" {
		t.Errorf("unexpected config: %+v", cfg)
	}
}
