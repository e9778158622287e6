package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseGameConfig(t *testing.T) {
	tests := []struct {
		name        string
		yamlContent string
		wantErr     bool
		errContains string
		validate    func(*testing.T, *GameConfig)
	}{
		{
			name: "valid config",
			yamlContent: `
window:
  width: 800
  height: 600
enemy:
  max: 5
  spawnInterval: 0.5
  fireChance: 0.1
  formationMembersMax: 3
player:
  respawnDelay: 1.5
seed: 7
`,
			validate: func(t *testing.T, cfg *GameConfig) {
				if cfg.Window.Width != 800 || cfg.Window.Height != 600 {
					t.Errorf("expected window 800x600, got %dx%d", cfg.Window.Width, cfg.Window.Height)
				}
				if cfg.Enemy.Max != 5 {
					t.Errorf("expected enemy max = 5, got %d", cfg.Enemy.Max)
				}
				if cfg.Enemy.FormationMembersMax != 3 {
					t.Errorf("expected formationMembersMax = 3, got %d", cfg.Enemy.FormationMembersMax)
				}
				if cfg.Player.RespawnDelay != 1.5 {
					t.Errorf("expected respawnDelay = 1.5, got %f", cfg.Player.RespawnDelay)
				}
				if cfg.Seed != 7 {
					t.Errorf("expected seed = 7, got %d", cfg.Seed)
				}
			},
		},
		{
			name: "partial config keeps defaults",
			yamlContent: `
enemy:
  max: 4
`,
			validate: func(t *testing.T, cfg *GameConfig) {
				def := DefaultGameConfig()
				if cfg.Enemy.Max != 4 {
					t.Errorf("expected enemy max = 4, got %d", cfg.Enemy.Max)
				}
				if cfg.Window != def.Window {
					t.Errorf("expected default window %+v, got %+v", def.Window, cfg.Window)
				}
				if cfg.Enemy.SpawnInterval != def.Enemy.SpawnInterval {
					t.Errorf("expected default spawnInterval, got %f", cfg.Enemy.SpawnInterval)
				}
			},
		},
		{
			name:        "empty document uses defaults",
			yamlContent: ``,
			validate: func(t *testing.T, cfg *GameConfig) {
				if cfg.Enemy.FormationMembersMax != FormationMembersMax {
					t.Errorf("expected default formationMembersMax, got %d", cfg.Enemy.FormationMembersMax)
				}
			},
		},
		{
			name: "negative window width",
			yamlContent: `
window:
  width: -1
  height: 600
`,
			wantErr:     true,
			errContains: "window size",
		},
		{
			name: "fire chance above one",
			yamlContent: `
enemy:
  fireChance: 1.5
`,
			wantErr:     true,
			errContains: "fireChance",
		},
		{
			name: "zero enemy max",
			yamlContent: `
enemy:
  max: 0
`,
			wantErr:     true,
			errContains: "enemy max",
		},
		{
			name: "zero formation members",
			yamlContent: `
enemy:
  formationMembersMax: 0
`,
			wantErr:     true,
			errContains: "formationMembersMax",
		},
		{
			name: "negative respawn delay",
			yamlContent: `
player:
  respawnDelay: -1
`,
			wantErr:     true,
			errContains: "respawnDelay",
		},
		{
			name:        "malformed yaml",
			yamlContent: "window: [1, 2",
			wantErr:     true,
			errContains: "failed to parse",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := ParseGameConfig([]byte(tt.yamlContent))

			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error but got nil")
				}
				if tt.errContains != "" && !strings.Contains(err.Error(), tt.errContains) {
					t.Errorf("expected error containing %q, got %q", tt.errContains, err.Error())
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.validate != nil {
				tt.validate(t, cfg)
			}
		})
	}
}

func TestLoadGameConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "invaders.yaml")
	content := "window:\n  width: 640\n  height: 480\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write temp config: %v", err)
	}

	cfg, err := LoadGameConfig(path)
	if err != nil {
		t.Fatalf("LoadGameConfig() error = %v", err)
	}
	if cfg.Window.Width != 640 || cfg.Window.Height != 480 {
		t.Errorf("expected 640x480, got %dx%d", cfg.Window.Width, cfg.Window.Height)
	}
}

func TestLoadGameConfigMissingFile(t *testing.T) {
	_, err := LoadGameConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !strings.Contains(err.Error(), "failed to read") {
		t.Errorf("unexpected error: %v", err)
	}
}

// TestShippedGameConfig 验证仓库自带的配置文件有效
func TestShippedGameConfig(t *testing.T) {
	cfg, err := LoadGameConfig("../../data/invaders.yaml")
	if err != nil {
		t.Fatalf("shipped config should load: %v", err)
	}
	if cfg.Window.Width != DefaultWindowWidth || cfg.Window.Height != DefaultWindowHeight {
		t.Errorf("shipped window size %dx%d differs from defaults", cfg.Window.Width, cfg.Window.Height)
	}
}

func TestDefaultGameConfigValid(t *testing.T) {
	if err := DefaultGameConfig().Validate(); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}
}
