package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.json"))
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Database.Host != "localhost" || cfg.Database.Port != 3306 {
		t.Fatalf("expected default database config, got %+v", cfg.Database)
	}
	if cfg.App.SearchPageSize != 3 {
		t.Fatalf("expected default search page size 3, got %d", cfg.App.SearchPageSize)
	}
	if cfg.Log.Backend != "logrus" {
		t.Fatalf("expected default log backend logrus, got %s", cfg.Log.Backend)
	}
}

func TestLoadConfigFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "carshare.json")
	body := `{"database": {"host": "db.internal", "port": 3307, "user": "ops", "password": "secret", "database": "carsharing"}, "log": {"backend": "zap", "level": "debug"}}`
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Database.Host != "db.internal" || cfg.Database.Port != 3307 {
		t.Fatalf("expected file values, got %+v", cfg.Database)
	}
	if cfg.Log.Backend != "zap" || cfg.Log.Level != "debug" {
		t.Fatalf("expected file log config, got %+v", cfg.Log)
	}
}

func TestEnvOverridesDatabase(t *testing.T) {
	t.Setenv("DB_HOST", "override-host")
	t.Setenv("DB_PORT", "3310")
	t.Setenv("DB_PASSWORD", "from-env")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.json"))
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Database.Host != "override-host" {
		t.Fatalf("expected env host override, got %s", cfg.Database.Host)
	}
	if cfg.Database.Port != 3310 {
		t.Fatalf("expected env port override, got %d", cfg.Database.Port)
	}
	if cfg.Database.Password != "from-env" {
		t.Fatalf("expected env password override, got %s", cfg.Database.Password)
	}
}
