package logger

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

func TestSetup_WritesJSONLogUnderWorkspace(t *testing.T) {
	root := t.TempDir()

	cleanup, err := Setup(Config{Root: root})
	if err != nil {
		t.Fatalf("Setup error: %v", err)
	}
	if err := IsReady(); err != nil {
		t.Fatalf("expected logger ready: %v", err)
	}

	L().Info("draft.persisted", "field", "firstName")
	path := Path()

	if err := cleanup(); err != nil {
		t.Fatalf("cleanup error: %v", err)
	}
	if IsReady() == nil {
		t.Fatalf("expected logger reset after cleanup")
	}

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	s := string(b)
	if !strings.Contains(s, `"msg":"draft.persisted"`) || !strings.Contains(s, `"field":"firstName"`) {
		t.Fatalf("expected JSON record in log, got:\n%s", s)
	}
	if !strings.Contains(path, ".formdraft") {
		t.Fatalf("expected log under .formdraft, got %s", path)
	}
}

func TestSetup_ConsoleReceivesRecords(t *testing.T) {
	var console bytes.Buffer
	cleanup, err := Setup(Config{Root: t.TempDir(), Console: &console})
	if err != nil {
		t.Fatalf("Setup error: %v", err)
	}
	defer func() { _ = cleanup() }()

	L().Info("server.submission", "id", "abc")
	if !strings.Contains(console.String(), "server.submission") {
		t.Fatalf("expected console output, got %q", console.String())
	}

	b, err := os.ReadFile(Path())
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if !strings.Contains(string(b), `"msg":"server.submission"`) {
		t.Fatalf("expected the same record in the JSON log file, got:\n%s", b)
	}
}
