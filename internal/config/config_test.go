package config

import (
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("ROUND_DURATION", "")
	t.Setenv("WS_ORIGINS", "")

	cfg := Load()
	if cfg.Port != "8080" {
		t.Errorf("Port = %q, want %q", cfg.Port, "8080")
	}
	if cfg.RoundDuration != 360 {
		t.Errorf("RoundDuration = %d, want 360", cfg.RoundDuration)
	}
	if cfg.WSOrigins != "*" {
		t.Errorf("WSOrigins = %q, want %q", cfg.WSOrigins, "*")
	}
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("ROUND_DURATION", "120")
	t.Setenv("WS_ORIGINS", "example.com")

	cfg := Load()
	if cfg.Port != "9090" {
		t.Errorf("Port = %q, want %q", cfg.Port, "9090")
	}
	if cfg.RoundDuration != 120 {
		t.Errorf("RoundDuration = %d, want 120", cfg.RoundDuration)
	}
	if cfg.WSOrigins != "example.com" {
		t.Errorf("WSOrigins = %q, want %q", cfg.WSOrigins, "example.com")
	}
}

func TestLoad_InvalidInt(t *testing.T) {
	t.Setenv("ROUND_DURATION", "not-a-number")

	cfg := Load()
	if cfg.RoundDuration != 360 {
		t.Errorf("RoundDuration = %d, want fallback 360", cfg.RoundDuration)
	}
}
