package util

import (
	"os"
	"path/filepath"
	"testing"
)

func TestParseInt64(t *testing.T) {
	tests := []struct {
		in   string
		want int64
	}{
		{"42", 42},
		{"  42  ", 42},
		{"128 kB", 128},
		{"102400 kBps", 102400},
		{"-7 kB", -7},
		{"", 0},
		{"junk", 0},
	}
	for _, tt := range tests {
		if got := ParseInt64(tt.in); got != tt.want {
			t.Errorf("ParseInt64(%q) = %d; want %d", tt.in, got, tt.want)
		}
	}
}

func TestSplitStatLine(t *testing.T) {
	tests := []struct {
		in      string
		key     string
		val     string
	}{
		{"WbCgIno:                    1", "WbCgIno", "1"},
		{"BdiWriteback:                0 kB", "BdiWriteback", "0 kB"},
		{"no colon here", "", ""},
	}
	for _, tt := range tests {
		key, val := SplitStatLine(tt.in)
		if key != tt.key || val != tt.val {
			t.Errorf("SplitStatLine(%q) = %q, %q; want %q, %q", tt.in, key, val, tt.key, tt.val)
		}
	}
}

func TestReadFileLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stats")
	if err := os.WriteFile(path, []byte("a\nb\nc\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	lines, err := ReadFileLines(path)
	if err != nil {
		t.Fatalf("ReadFileLines: %v", err)
	}
	if len(lines) != 3 || lines[0] != "a" || lines[2] != "c" {
		t.Errorf("lines = %v; want [a b c]", lines)
	}
}

func TestReadFileLines_Missing(t *testing.T) {
	if _, err := ReadFileLines(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Error("ReadFileLines on missing file = nil error; want failure")
	}
}
