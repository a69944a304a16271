package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/viper"

	"github.com/Zachkp/cyber-portfolio/internal/motion"
)

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load(viper.New(), "")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Port != "8080" {
		t.Errorf("Port = %q, want 8080", cfg.Port)
	}
	if diff := cmp.Diff([]string{"simulated"}, cfg.Contact.Transports); diff != "" {
		t.Errorf("Transports mismatch (-want +got):\n%s", diff)
	}
	if cfg.Contact.Delay != 2*time.Second {
		t.Errorf("Delay = %v, want 2s", cfg.Contact.Delay)
	}
	if diff := cmp.Diff(motion.DefaultSpring, cfg.Spring); diff != "" {
		t.Errorf("Spring mismatch (-want +got):\n%s", diff)
	}
	if !cfg.Tracking.Enabled {
		t.Error("tracking disabled by default")
	}
	if cfg.Addr() != ":8080" {
		t.Errorf("Addr = %q", cfg.Addr())
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "site.yaml")
	data := `
port: "9000"
database: data/site.db
contact:
  transports: [outbox, smtp]
  delay: 250ms
spring:
  stiffness: 200
  damping: 40
`
	if err := os.WriteFile(path, []byte(data), 0600); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	cfg, err := Load(viper.New(), path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Port != "9000" || cfg.Database != "data/site.db" {
		t.Errorf("Port = %q Database = %q", cfg.Port, cfg.Database)
	}
	if diff := cmp.Diff([]string{"outbox", "smtp"}, cfg.Contact.Transports); diff != "" {
		t.Errorf("Transports mismatch (-want +got):\n%s", diff)
	}
	if cfg.Contact.Delay != 250*time.Millisecond {
		t.Errorf("Delay = %v, want 250ms", cfg.Contact.Delay)
	}
	if cfg.Spring.Stiffness != 200 || cfg.Spring.Damping != 40 || cfg.Spring.Mass != 1 {
		t.Errorf("Spring = %+v", cfg.Spring)
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(viper.New(), "/nonexistent/config.yaml")
	if err == nil {
		t.Error("Expected error loading nonexistent config, got nil")
	}
}

func TestLegacyEnv(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("PORT", "7000")
	t.Setenv("SMTP_USER", "me@example.com")
	t.Setenv("TO_EMAIL", "inbox@example.com")
	t.Setenv("PORTFOLIO_SMTP_HOST", "mail.example.com")

	cfg, err := Load(viper.New(), "")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Port != "7000" {
		t.Errorf("Port = %q, want 7000", cfg.Port)
	}
	if cfg.SMTP.User != "me@example.com" || cfg.SMTP.To != "inbox@example.com" {
		t.Errorf("SMTP = %+v", cfg.SMTP)
	}
	if cfg.SMTP.Host != "mail.example.com" {
		t.Errorf("SMTP.Host = %q, want mail.example.com", cfg.SMTP.Host)
	}
}

func TestPrefixedEnvWinsOverLegacy(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("PORT", "7000")
	t.Setenv("PORTFOLIO_PORT", "7001")

	cfg, err := Load(viper.New(), "")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != "7001" {
		t.Errorf("Port = %q, want 7001", cfg.Port)
	}
}
