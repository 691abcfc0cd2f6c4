package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv("TSVIEW_LOG", "")
	t.Setenv("TSVIEW_LOG_FILE", "")
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestMissingArguments(t *testing.T) {
	if _, err := run(t); err == nil || err.Error() != "no language passed" {
		t.Fatalf("expected missing language error, got %v", err)
	}
	if _, err := run(t, "python"); err == nil || err.Error() != "no source path passed" {
		t.Fatalf("expected missing source error, got %v", err)
	}
}

func TestUnknownLanguage(t *testing.T) {
	src := filepath.Join(t.TempDir(), "a.txt")
	if err := os.WriteFile(src, []byte("x"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := run(t, "--print", "klingon", src); err == nil || !strings.Contains(err.Error(), "klingon") {
		t.Fatalf("expected unknown language error, got %v", err)
	}
}

func TestPrintWithFlags(t *testing.T) {
	src := filepath.Join(t.TempDir(), "main.py")
	if err := os.WriteFile(src, []byte("x = 1"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	out, err := run(t, "--print", "--no-source", "--no-ranges", "--no-fields", "--indent", "1", "auto", src)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	lines := strings.Split(out, "\n")
	want := []string{"module ", "| expression_statement ", "| | assignment ", "| | | identifier "}
	for i, w := range want {
		if lines[i] != w {
			t.Fatalf("line %d: expected %q, got %q", i, w, lines[i])
		}
	}
}

func TestNegativeIndent(t *testing.T) {
	src := filepath.Join(t.TempDir(), "main.py")
	if err := os.WriteFile(src, []byte("x"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := run(t, "--print", "--indent=-1", "python", src); err == nil {
		t.Fatalf("expected error for negative indent")
	}
}

func TestVersionFlag(t *testing.T) {
	out, err := run(t, "--version")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(out, version.Core()) {
		t.Fatalf("expected version %s in %q", version.Core(), out)
	}
}

func TestLanguagesCommand(t *testing.T) {
	out, err := run(t, "languages")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	for _, name := range []string{"go", "python", "rust"} {
		if !strings.Contains(out, name+"\n") {
			t.Fatalf("expected %s in language list:\n%s", name, out)
		}
	}
}
