package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/wippyai/tmdsgen/srcarray"
)

func TestRun(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.txt")
	b := filepath.Join(dir, "b.txt")
	if err := os.WriteFile(a, []byte("one\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(b, []byte("two\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := run(&buf, []string{a, b}, srcarray.Options{}); err != nil {
		t.Fatalf("run: %v", err)
	}

	out := buf.String()
	if n := strings.Count(out, "GENERATED FILE"); n != 1 {
		t.Errorf("banner written %d times", n)
	}
	for _, want := range []string{"A_TXT[]", "B_TXT[]", `"one\n"`, `"two\n"`} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %s:\n%s", want, out)
		}
	}
	if strings.Index(out, "A_TXT") > strings.Index(out, "B_TXT") {
		t.Error("files converted out of order")
	}
}

func TestRun_MissingFile(t *testing.T) {
	var buf bytes.Buffer
	err := run(&buf, []string{filepath.Join(t.TempDir(), "missing.bin")}, srcarray.Options{Binary: true})
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}
