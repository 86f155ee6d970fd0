package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestOpenLogOutputReportsUnusableDirectory(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "not-a-dir")
	if err := os.WriteFile(blocker, nil, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	var warn bytes.Buffer
	out, closer := openLogOutput(filepath.Join(blocker, "logs", "brewcraft.log"), &warn)
	defer closer()

	if out != os.Stderr {
		t.Fatalf("expected stderr fallback, got %T", out)
	}
	if !strings.Contains(warn.String(), "could not create log directory") {
		t.Fatalf("expected a warning, got %q", warn.String())
	}
}

func TestOpenLogOutputStderr(t *testing.T) {
	for _, path := range []string{"", "stderr"} {
		var warn bytes.Buffer
		out, closer := openLogOutput(path, &warn)
		closer()
		if out != os.Stderr || warn.Len() != 0 {
			t.Fatalf("%q: expected quiet stderr, got %T %q", path, out, warn.String())
		}
	}
}
