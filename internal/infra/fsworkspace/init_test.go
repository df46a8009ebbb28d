package fsworkspace

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/aalvaropc/formdraft/internal/domain"
	"github.com/aalvaropc/formdraft/internal/infra/workspacefinder"
)

func TestInitializer_Init_CreatesWorkspace(t *testing.T) {
	tmp := t.TempDir()

	if err := NewInitializer().Init(tmp, false); err != nil {
		t.Fatalf("Init error: %v", err)
	}

	assertFileExists(t, filepath.Join(tmp, workspacefinder.ConfigFileName))
	assertFileExists(t, filepath.Join(tmp, ".gitignore"))

	info, err := os.Stat(filepath.Join(tmp, ".formdraft", "logs"))
	if err != nil || !info.IsDir() {
		t.Fatalf("expected log dir, err=%v", err)
	}

	// The written template must parse to the defaults.
	cfg, err := workspacefinder.LoadConfig(tmp)
	if err != nil {
		t.Fatalf("LoadConfig on template: %v", err)
	}
	if cfg != domain.DefaultConfig() {
		t.Fatalf("expected template to match defaults, got %+v", cfg)
	}
}

func TestInitializer_Init_SkipsExistingFilesUnlessForce(t *testing.T) {
	tmp := t.TempDir()

	cfgPath := filepath.Join(tmp, workspacefinder.ConfigFileName)
	if err := os.WriteFile(cfgPath, []byte("custom\n"), 0o644); err != nil {
		t.Fatalf("write existing config: %v", err)
	}

	i := NewInitializer()
	if err := i.Init(tmp, false); err != nil {
		t.Fatalf("Init error: %v", err)
	}
	if b, _ := os.ReadFile(cfgPath); string(b) != "custom\n" {
		t.Fatalf("expected existing config preserved, got %q", string(b))
	}

	if err := i.Init(tmp, true); err != nil {
		t.Fatalf("Init force error: %v", err)
	}
	if b, _ := os.ReadFile(cfgPath); string(b) == "custom\n" {
		t.Fatalf("expected config overwritten with force")
	}
}

func TestInitializer_Init_UnwritableRootIsStorageError(t *testing.T) {
	tmp := t.TempDir()
	blocker := filepath.Join(tmp, "file")
	if err := os.WriteFile(blocker, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	err := NewInitializer().Init(blocker, false)
	if err == nil {
		t.Fatalf("expected error when root is a file")
	}
	var oe *domain.OpError
	if !errors.As(err, &oe) || oe.Kind != domain.KindStorage {
		t.Fatalf("expected storage OpError, got %v", err)
	}
}

func assertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected file to exist: %s (err=%v)", path, err)
	}
}
