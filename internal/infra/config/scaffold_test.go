package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/scwatts/ecocyc-pathways/internal/domain"
)

func TestWriteDefault_LoadsAsDefaults(t *testing.T) {
	dir := t.TempDir()

	path, created, err := WriteDefault(dir, false)
	if err != nil {
		t.Fatalf("WriteDefault error: %v", err)
	}
	if !created || path != filepath.Join(dir, FileName) {
		t.Fatalf("unexpected result path=%s created=%v", path, created)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig error: %v", err)
	}
	if !reflect.DeepEqual(cfg, domain.DefaultConfig()) {
		t.Fatalf("expected scaffold to match defaults\n got: %+v\nwant: %+v", cfg, domain.DefaultConfig())
	}
}

func TestWriteDefault_SkipsExistingUnlessForce(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, FileName)
	if err := os.WriteFile(path, []byte("custom\n"), 0o644); err != nil {
		t.Fatalf("write existing: %v", err)
	}

	if _, created, err := WriteDefault(dir, false); err != nil || created {
		t.Fatalf("expected existing file kept, created=%v err=%v", created, err)
	}
	b, _ := os.ReadFile(path)
	if string(b) != "custom\n" {
		t.Fatalf("expected file preserved, got %q", string(b))
	}

	if _, created, err := WriteDefault(dir, true); err != nil || !created {
		t.Fatalf("expected overwrite with force, created=%v err=%v", created, err)
	}
	b, _ = os.ReadFile(path)
	if string(b) == "custom\n" {
		t.Fatalf("expected file overwritten")
	}
}
