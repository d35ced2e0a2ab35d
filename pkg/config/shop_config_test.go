package config

import (
	"strings"
	"testing"

	"github.com/decker502/bubblebobble/pkg/types"
)

func TestLoadShopConfig(t *testing.T) {
	path := writeTestFile(t, "shop.yaml", `
powerUps:
  - {kind: force_boost, price: 100, duration: 10}
  - {id: fast, kind: speed_boost, price: 200, duration: 5}
`)
	cfg, err := LoadShopConfig(path)
	if err != nil {
		t.Fatalf("LoadShopConfig failed: %v", err)
	}

	if len(cfg.PowerUps) != 2 {
		t.Fatalf("Expected 2 power-ups, got %d", len(cfg.PowerUps))
	}
	if cfg.PowerUps[0].ID != "force_boost" {
		t.Errorf("Expected id to default to kind, got %q", cfg.PowerUps[0].ID)
	}
	if cfg.PowerUps[1].ID != "fast" {
		t.Errorf("Expected explicit id 'fast', got %q", cfg.PowerUps[1].ID)
	}
	if cfg.ExtraLifeIndex != 4 {
		t.Errorf("Expected default extraLifeIndex 4, got %d", cfg.ExtraLifeIndex)
	}

	shells := cfg.RequiredShellTypes()
	for i, shell := range types.ShellTypes {
		if shells[i] != shell {
			t.Errorf("required shell %d: expected %v, got %v", i, shell, shells[i])
		}
	}
}

func TestValidateShopConfig(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*ShopConfig)
		wantErr string
	}{
		{"extra life overlaps", func(c *ShopConfig) { c.ExtraLifeIndex = 2 }, "overlaps"},
		{"unknown kind", func(c *ShopConfig) { c.PowerUps[0].Kind = "laser" }, "unknown kind"},
		{"negative price", func(c *ShopConfig) { c.PowerUps[1].Price = -5 }, "price cannot be negative"},
		{"zero duration", func(c *ShopConfig) { c.PowerUps[2].Duration = 0 }, "duration must be positive"},
		{"duplicate id", func(c *ShopConfig) { c.PowerUps[1].ID = c.PowerUps[0].ID }, "duplicate id"},
		{"missing shell", func(c *ShopConfig) { c.RequiredShells = c.RequiredShells[:3] }, "exactly 4 shells"},
		{"not a shell", func(c *ShopConfig) { c.RequiredShells[0] = "pickup" }, "is not a shell"},
		{"repeated shell", func(c *ShopConfig) {
			for i := range c.RequiredShells {
				c.RequiredShells[i] = c.RequiredShells[0]
			}
		}, "duplicate shell"},
	}

	if err := validateShopConfig(DefaultShopConfig()); err != nil {
		t.Fatalf("default shop config should be valid: %v", err)
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultShopConfig()
			tt.mutate(cfg)
			err := validateShopConfig(cfg)
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}
}
