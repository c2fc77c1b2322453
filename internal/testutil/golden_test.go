package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestCompareGolden_Match(t *testing.T) {
	if *updateGolden {
		t.Skip("comparison is bypassed with -update")
	}
	path := filepath.Join(t.TempDir(), "out.golden")
	if err := os.WriteFile(path, []byte("{\n  \"a\": 1\n}\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	CompareGolden(t, path, []byte("{\n  \"a\": 1\n}\n"))
}

func TestUpdateGolden_CreatesDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "x.golden")
	UpdateGolden(t, path, []byte("data\n"))

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("golden file not written: %v", err)
	}
	if string(got) != "data\n" {
		t.Errorf("golden file = %q, want %q", got, "data\n")
	}
}

func TestLineDiff(t *testing.T) {
	if d := LineDiff("a\nb\n", "a\nb\n"); d != "" {
		t.Errorf("LineDiff() of equal texts = %q, want empty", d)
	}

	d := LineDiff("a\nb\n", "a\nc\n")
	if !strings.Contains(d, `"b\n"`) || !strings.Contains(d, `"c\n"`) {
		t.Errorf("LineDiff() should mention both changed lines:\n%s", d)
	}
}
