package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestConfigRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "conf.yaml")

	conf := &Config{
		RootPath:    dir,
		BearerToken: "secret-token",
		CacheSize:   64,
		Database: DatabaseConfig{
			Type: DATABASE_TYPE_SQLITE,
			Path: filepath.Join(dir, "xconnect.db"),
		},
	}

	if err := WriteConfigToFile(conf, path); err != nil {
		t.Fatal(err)
	}

	loaded, err := ParseConfigFromFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if loaded.BearerToken != conf.BearerToken {
		t.Errorf("expected token %q, got %q", conf.BearerToken, loaded.BearerToken)
	}
	if loaded.CacheSize != 64 {
		t.Errorf("expected cache size 64, got %d", loaded.CacheSize)
	}
	if loaded.Database.Type != DATABASE_TYPE_SQLITE {
		t.Errorf("unexpected database type %q", loaded.Database.Type)
	}
}

func TestConfigFilePermissions(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "conf.yaml")

	if err := WriteConfigToFile(&Config{BearerToken: "x"}, path); err != nil {
		t.Fatal(err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	// the config carries a credential
	if info.Mode().Perm() != 0600 {
		t.Errorf("expected mode 0600, got %v", info.Mode().Perm())
	}
}

func TestParseMissingFile(t *testing.T) {
	_, err := ParseConfigFromFile(filepath.Join(t.TempDir(), "absent.yaml"))
	if !os.IsNotExist(err) {
		t.Errorf("expected a not-exist error, got %v", err)
	}
}
