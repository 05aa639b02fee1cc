package project

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"
)

func TestNewTarget(t *testing.T) {
	dir := t.TempDir()

	target, err := NewTarget(dir, Names{
		Manifest:    "package.json",
		ConfigFile:  "tstyche.config.json",
		ExamplesDir: "tstyche-examples",
	})
	if err != nil {
		t.Fatalf("NewTarget: %v", err)
	}

	if target.Dir != dir {
		t.Errorf("Dir = %q, want %q", target.Dir, dir)
	}
	if want := filepath.Join(dir, "package.json"); target.Manifest != want {
		t.Errorf("Manifest = %q, want %q", target.Manifest, want)
	}
	if want := filepath.Join(dir, "tstyche.config.json"); target.ConfigFile != want {
		t.Errorf("ConfigFile = %q, want %q", target.ConfigFile, want)
	}
	if want := filepath.Join(dir, "tstyche-examples"); target.ExamplesDir != want {
		t.Errorf("ExamplesDir = %q, want %q", target.ExamplesDir, want)
	}
}

func TestWriteIfAbsentWrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")

	outcome, err := WriteIfAbsent(path, []byte("{}\n"))
	if err != nil {
		t.Fatalf("WriteIfAbsent: %v", err)
	}
	if outcome != Written {
		t.Errorf("outcome = %v, want %v", outcome, Written)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "{}\n" {
		t.Errorf("content = %q, want %q", data, "{}\n")
	}
}

func TestWriteIfAbsentNeverOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte("mine"), 0644); err != nil {
		t.Fatal(err)
	}

	outcome, err := WriteIfAbsent(path, []byte("theirs"))
	if err != nil {
		t.Fatalf("WriteIfAbsent: %v", err)
	}
	if outcome != Skipped {
		t.Errorf("outcome = %v, want %v", outcome, Skipped)
	}

	data, _ := os.ReadFile(path)
	if string(data) != "mine" {
		t.Errorf("existing file was modified: %q", data)
	}
}

func TestWriteIfAbsentMissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "config.json")
	if _, err := WriteIfAbsent(path, []byte("{}")); err == nil {
		t.Error("expected error when the parent directory does not exist")
	}
}

func TestOutcomeString(t *testing.T) {
	if Written.String() != "written" || Skipped.String() != "skipped" {
		t.Errorf("unexpected outcome names: %s, %s", Written, Skipped)
	}
}

func TestCopyFSCopiesTree(t *testing.T) {
	src := fstest.MapFS{
		"a.tst.ts":         {Data: []byte("a")},
		"nested/b.tst.ts":  {Data: []byte("b")},
		"nested/deep/c.ts": {Data: []byte("c")},
		"nested/.DS_Store": {Data: []byte("")},
		"scripts/run.sh":   {Data: []byte("#!/bin/sh\n"), Mode: 0755},
	}
	dst := filepath.Join(t.TempDir(), "examples")

	if err := CopyFS(src, dst); err != nil {
		t.Fatalf("CopyFS: %v", err)
	}

	for name, want := range map[string]string{
		"a.tst.ts":         "a",
		"nested/b.tst.ts":  "b",
		"nested/deep/c.ts": "c",
	} {
		data, err := os.ReadFile(filepath.Join(dst, filepath.FromSlash(name)))
		if err != nil {
			t.Errorf("%s not copied: %v", name, err)
			continue
		}
		if string(data) != want {
			t.Errorf("%s = %q, want %q", name, data, want)
		}
	}

	if _, err := os.Stat(filepath.Join(dst, "nested", ".DS_Store")); err == nil {
		t.Error(".DS_Store should not be copied")
	}

	info, err := os.Stat(filepath.Join(dst, "scripts", "run.sh"))
	if err != nil {
		t.Fatal(err)
	}
	if info.Mode().Perm()&0100 == 0 {
		t.Errorf("executable bit lost: %v", info.Mode())
	}
}

func TestCopyFSMergesIntoExistingDirectory(t *testing.T) {
	dst := t.TempDir()
	if err := os.WriteFile(filepath.Join(dst, "keep.txt"), []byte("keep"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dst, "a.tst.ts"), []byte("old"), 0644); err != nil {
		t.Fatal(err)
	}

	src := fstest.MapFS{"a.tst.ts": {Data: []byte("new")}}
	if err := CopyFS(src, dst); err != nil {
		t.Fatalf("CopyFS: %v", err)
	}

	if data, _ := os.ReadFile(filepath.Join(dst, "a.tst.ts")); string(data) != "new" {
		t.Errorf("a.tst.ts = %q, want overwritten content", data)
	}
	if data, _ := os.ReadFile(filepath.Join(dst, "keep.txt")); string(data) != "keep" {
		t.Errorf("unrelated file changed: %q", data)
	}
}

func TestCopyFSFailure(t *testing.T) {
	dir := t.TempDir()
	// A regular file where the destination directory should be.
	blocker := filepath.Join(dir, "examples")
	if err := os.WriteFile(blocker, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	src := fstest.MapFS{"a.tst.ts": {Data: []byte("a")}}
	if err := CopyFS(src, blocker); err == nil {
		t.Error("expected error when destination is a file")
	}
}

func TestShouldExclude(t *testing.T) {
	tests := []struct {
		name     string
		expected bool
	}{
		{".DS_Store", true},
		{"overload.tst.ts", false},
		{"nested", false},
	}

	for _, tt := range tests {
		if got := shouldExclude(tt.name); got != tt.expected {
			t.Errorf("shouldExclude(%q) = %v, want %v", tt.name, got, tt.expected)
		}
	}
}
