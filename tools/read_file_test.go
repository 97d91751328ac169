package tools_test

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fahimudin15/mcp-client/tools"
)

func writeSandboxFile(t *testing.T, relPath, content string) {
	t.Helper()
	abs := filepath.Join(sharedDir, relPath)
	if err := os.MkdirAll(filepath.Dir(abs), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(abs, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestReadFile_WholeFile(t *testing.T) {
	p := rel(t, "whole.txt")
	writeSandboxFile(t, p, "line1\nline2")

	got, err := tools.ReadFile(json.RawMessage(fmt.Sprintf(`{"path": %q}`, p)))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got != "line1\nline2" {
		t.Fatalf("unexpected content: %q", got)
	}
}

func TestReadFile_OffsetAndLimit(t *testing.T) {
	p := rel(t, "paged.txt")
	writeSandboxFile(t, p, "a\nb\nc\nd\ne")

	got, err := tools.ReadFile(json.RawMessage(fmt.Sprintf(`{"path": %q, "offset": 1, "limit": 2}`, p)))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !strings.HasPrefix(got, "b\nc\n") {
		t.Fatalf("unexpected page: %q", got)
	}
	if !strings.Contains(got, "truncated") {
		t.Fatalf("expected truncation sentinel: %q", got)
	}
}

func TestReadFile_OffsetPastEnd(t *testing.T) {
	p := rel(t, "short.txt")
	writeSandboxFile(t, p, "only")

	got, err := tools.ReadFile(json.RawMessage(fmt.Sprintf(`{"path": %q, "offset": 10}`, p)))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got != "" {
		t.Fatalf("expected empty page past EOF, got %q", got)
	}
}

func TestReadFile_SandboxViolation(t *testing.T) {
	if _, err := tools.ReadFile(json.RawMessage(`{"path": "../../etc/passwd"}`)); err == nil {
		t.Fatal("expected sandbox violation")
	}
}

func TestReadFile_BadInput(t *testing.T) {
	if _, err := tools.ReadFile(json.RawMessage(`{`)); err == nil {
		t.Fatal("expected decode error")
	}
}
