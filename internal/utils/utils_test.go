package utils

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
)

func TestStripSeparators(t *testing.T) {
	testCases := []struct {
		input    string
		expected string
	}{
		{"(250) 466-3277", "2504663277"},
		{"250.466.3277", "2504663277"},
		{"250/466 3277\n", "2504663277"},
		{"250-466-32a7", "25046632a7"},
	}
	for _, tc := range testCases {
		if got := StripSeparators(tc.input); got != tc.expected {
			t.Errorf("StripSeparators(%q): expected %q, got %q", tc.input, tc.expected, got)
		}
	}
}

func TestIsOnlyNumbers(t *testing.T) {
	if IsOnlyNumbers("") {
		t.Error("empty string should not count as numbers")
	}
	if !IsOnlyNumbers("0123456789") {
		t.Error("digits should count as numbers")
	}
	if IsOnlyNumbers("12three") {
		t.Error("letters should not count as numbers")
	}
}

func TestWriteFileAtomic(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "results.txt")

	err := WriteFileAtomic(path, func(w io.Writer) error {
		_, err := io.WriteString(w, "TEL: 2504663277\n")
		return err
	})
	if err != nil {
		t.Fatalf("WriteFileAtomic failed: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(data) != "TEL: 2504663277\n" {
		t.Errorf("unexpected content %q", data)
	}

	// A failing writer must leave the previous file untouched
	boom := errors.New("boom")
	err = WriteFileAtomic(path, func(w io.Writer) error {
		io.WriteString(w, "partial")
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
	data, _ = os.ReadFile(path)
	if string(data) != "TEL: 2504663277\n" {
		t.Errorf("file was clobbered: %q", data)
	}
	entries, _ := os.ReadDir(filepath.Dir(path))
	if len(entries) != 1 {
		t.Errorf("expected temp files to be cleaned up, found %d entries", len(entries))
	}
}

func TestParseTOMLWithRecovery(t *testing.T) {
	path := filepath.Join(t.TempDir(), "c.toml")
	if err := os.WriteFile(path, []byte("[report]\nmax_paths = 4\n[files]\nwords = \"w.txt\"\n"), 0644); err != nil {
		t.Fatal(err)
	}
	data, err := ParseTOMLWithRecovery(path)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	report, ok := ExtractSection(data, "report")
	if !ok {
		t.Fatal("missing report section")
	}
	if v, ok := ExtractInt64(report, "max_paths"); !ok || v != 4 {
		t.Errorf("expected max_paths 4, got %d (%v)", v, ok)
	}
	files, _ := ExtractSection(data, "files")
	if v, ok := ExtractString(files, "words"); !ok || v != "w.txt" {
		t.Errorf("expected words w.txt, got %q (%v)", v, ok)
	}
	if _, ok := ExtractString(files, "missing"); ok {
		t.Error("missing key should not be found")
	}
}

func TestPathResolverCandidates(t *testing.T) {
	pr := &PathResolver{executableDir: "/opt/bin", workingDir: "/work", configDir: "/home/u/.config/numeronym"}

	got := pr.Candidates("word_list.txt")
	want := []string{"/work/word_list.txt", "/opt/bin/word_list.txt", "/home/u/.config/numeronym/word_list.txt"}
	if len(got) != len(want) {
		t.Fatalf("expected %d candidates, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != filepath.FromSlash(want[i]) {
			t.Errorf("candidate %d: expected %s, got %s", i, want[i], got[i])
		}
	}
	if abs := pr.Candidates("/data/words.txt"); len(abs) != 1 || abs[0] != "/data/words.txt" {
		t.Errorf("absolute path should pass through, got %v", abs)
	}
}

func TestResolveInputPrefersExistingFile(t *testing.T) {
	work, exec := t.TempDir(), t.TempDir()
	if err := os.WriteFile(filepath.Join(exec, "telephone.txt"), []byte("2504663277\n"), 0644); err != nil {
		t.Fatal(err)
	}
	pr := &PathResolver{executableDir: exec, workingDir: work, configDir: t.TempDir()}

	if got := pr.ResolveInput("telephone.txt"); got != filepath.Join(exec, "telephone.txt") {
		t.Errorf("expected exec dir copy, got %s", got)
	}
	if got := pr.ResolveInput("absent.txt"); got != filepath.Join(work, "absent.txt") {
		t.Errorf("expected working dir fallback, got %s", got)
	}
}
