package fsops_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/fahimudin15/mcp-client/internal/fsops"
)

var sandbox string

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "fsops-tests-")
	if err != nil {
		panic(err)
	}
	// The root is cached on first use, so it must be set before any test runs.
	_ = os.Setenv("MCPC_TOOLS_ROOT", dir)
	sandbox = dir

	code := m.Run()
	_ = os.RemoveAll(dir)
	os.Exit(code)
}

func TestReadFile_ReturnsContent(t *testing.T) {
	if err := os.WriteFile(filepath.Join(sandbox, "hello.txt"), []byte("hi there"), 0o644); err != nil {
		t.Fatal(err)
	}
	got, err := fsops.ReadFile("hello.txt")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got != "hi there" {
		t.Fatalf("unexpected content: %q", got)
	}
}

func TestReadFile_DirectoryRejected(t *testing.T) {
	if err := os.Mkdir(filepath.Join(sandbox, "somedir"), 0o755); err != nil {
		t.Fatal(err)
	}
	if _, err := fsops.ReadFile("somedir"); err == nil {
		t.Fatal("expected error reading a directory")
	}
}

func TestReadFile_MissingFile(t *testing.T) {
	if _, err := fsops.ReadFile("nope.txt"); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestReadFile_EscapeRejected(t *testing.T) {
	if _, err := fsops.ReadFile("../outside.txt"); err == nil {
		t.Fatal("expected sandbox violation error")
	}
}

func TestListFiles_NamesWithDirSuffix(t *testing.T) {
	base := filepath.Join(sandbox, "listing")
	if err := os.MkdirAll(filepath.Join(base, "sub"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(base, "a.txt"), []byte("a"), 0o644); err != nil {
		t.Fatal(err)
	}

	out, err := fsops.ListFiles("listing")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	var names []string
	if err := json.Unmarshal([]byte(out), &names); err != nil {
		t.Fatalf("output should be JSON []string: %v", err)
	}

	got := map[string]bool{}
	for _, n := range names {
		got[n] = true
	}
	if !got["a.txt"] || !got["sub/"] {
		t.Fatalf("unexpected listing: %v", names)
	}
}

func TestListFiles_EmptyPathDefaultsToRoot(t *testing.T) {
	if _, err := fsops.ListFiles(""); err != nil {
		t.Fatalf("unexpected err listing root: %v", err)
	}
}
