package config

import (
	"os"
	"strings"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	os.Unsetenv("PORT")
	os.Unsetenv("ENV")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Port != "8000" {
		t.Errorf("expected default port 8000, got %s", cfg.Port)
	}
	if cfg.Env != "development" {
		t.Errorf("expected default env development, got %s", cfg.Env)
	}
	if cfg.TokenTTLMinutes != 60 {
		t.Errorf("expected default token ttl 60, got %d", cfg.TokenTTLMinutes)
	}
	if cfg.RequestTimeout != 30 {
		t.Errorf("expected default request timeout 30, got %d", cfg.RequestTimeout)
	}
}

func TestLoad_FromEnv(t *testing.T) {
	os.Setenv("PORT", "9090")
	os.Setenv("DEMO_DATA", "true")
	defer os.Unsetenv("PORT")
	defer os.Unsetenv("DEMO_DATA")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Port != "9090" {
		t.Errorf("expected port 9090, got %s", cfg.Port)
	}
	if !cfg.DemoData {
		t.Error("expected DEMO_DATA to be true")
	}
}

func TestConfig_IsDev(t *testing.T) {
	c := &Config{Env: "development"}
	if !c.IsDev() {
		t.Error("expected IsDev() to return true for development")
	}

	c.Env = "production"
	if c.IsDev() {
		t.Error("expected IsDev() to return false for production")
	}
}

func TestConfig_ResolvedAuthMode(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want string
	}{
		{"explicit wins", Config{Env: "development", AuthMode: "token"}, "token"},
		{"development defaults to none", Config{Env: "development"}, "none"},
		{"production defaults to token", Config{Env: "production"}, "token"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.cfg.ResolvedAuthMode(); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestConfig_Validate(t *testing.T) {
	dev := Config{Env: "development", TokenTTLMinutes: 60, RequestTimeout: 30}
	if err := dev.Validate(); err != nil {
		t.Errorf("development config should validate: %v", err)
	}

	prod := Config{Env: "production", TokenTTLMinutes: 60, RequestTimeout: 30}
	if err := prod.Validate(); err == nil {
		t.Error("expected error: token mode without JWT_SECRET")
	}

	prod.JWTSecret = "short"
	if err := prod.Validate(); err == nil || !strings.Contains(err.Error(), "32 bytes") {
		t.Errorf("expected secret length error, got %v", err)
	}

	prod.JWTSecret = strings.Repeat("s", 32)
	if err := prod.Validate(); err != nil {
		t.Errorf("expected valid production config, got %v", err)
	}

	bad := Config{Env: "production", AuthMode: "ldap", JWTSecret: strings.Repeat("s", 32), TokenTTLMinutes: 60, RequestTimeout: 30}
	if err := bad.Validate(); err == nil {
		t.Error("expected error for unknown AUTH_MODE")
	}
}
