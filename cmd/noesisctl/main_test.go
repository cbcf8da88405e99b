package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestRunRejectsMissingCommand(t *testing.T) {
	if err := run(context.Background(), nil); err == nil {
		t.Fatal("expected usage error")
	}
}

func TestRunRejectsUnknownCommand(t *testing.T) {
	if err := run(context.Background(), []string{"bogus"}); err == nil {
		t.Fatal("expected usage error")
	}
}

func TestVerifySeeds(t *testing.T) {
	if err := run(context.Background(), []string{"verify"}); err != nil {
		t.Fatalf("verify: %v", err)
	}
}

func TestPersistCatalogFile(t *testing.T) {
	dir := t.TempDir()
	catalogPath := filepath.Join(dir, "catalog.yaml")
	catalog := `
name: test
domains:
  - name: Chemistry
    duality:
      positive: synthesis
      negative: decomposition
`
	if err := os.WriteFile(catalogPath, []byte(catalog), 0o644); err != nil {
		t.Fatalf("write catalog: %v", err)
	}

	args := []string{"persist", "--store", "memory", "--file", catalogPath}
	if err := run(context.Background(), args); err != nil {
		t.Fatalf("persist: %v", err)
	}
}

func TestVerifyRejectsMissingCatalogFile(t *testing.T) {
	args := []string{"verify", "--file", filepath.Join(t.TempDir(), "absent.yaml")}
	if err := run(context.Background(), args); err == nil {
		t.Fatal("expected error for missing catalog file")
	}
}
