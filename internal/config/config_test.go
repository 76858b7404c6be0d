// ABOUTME: Tests for settings loading and merging
// ABOUTME: Uses temp directories for isolated file-based tests

package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func intPtr(n int) *int           { return &n }
func floatPtr(f float64) *float64 { return &f }
func boolPtr(b bool) *bool        { return &b }

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestMerge(t *testing.T) {
	t.Parallel()

	global := &Settings{Strategy: "step", Nth: intPtr(3), Blacklist: Blacklist{"a"}}
	project := &Settings{Nth: intPtr(4)}

	result := merge(global, project)

	if result.Strategy != "step" {
		t.Errorf("Strategy = %q, want step", result.Strategy)
	}
	if *result.Nth != 4 {
		t.Errorf("Nth = %d, want 4", *result.Nth)
	}
	if !reflect.DeepEqual(result.Blacklist, Blacklist{"a"}) {
		t.Errorf("Blacklist = %v, want [a]", result.Blacklist)
	}
}

func TestMerge_Nil(t *testing.T) {
	t.Parallel()

	if merge(nil, nil) == nil {
		t.Fatal("merge(nil, nil) should return non-nil")
	}
	if Merge() == nil {
		t.Fatal("Merge() should return non-nil")
	}
}

func TestMerge_Layers(t *testing.T) {
	t.Parallel()

	got := Merge(
		&Settings{Strategy: "step", Nth: intPtr(2)},
		nil,
		&Settings{Strategy: "random", Probability: floatPtr(0.2)},
		&Settings{Normalize: boolPtr(true), Blacklist: Blacklist{}},
	)

	if got.Strategy != "random" || *got.Probability != 0.2 || *got.Nth != 2 || !*got.Normalize {
		t.Errorf("Merge = %+v", got)
	}
	if got.Blacklist == nil || len(got.Blacklist) != 0 {
		t.Errorf("explicit empty blacklist should clear earlier layers, got %v", got.Blacklist)
	}
}

func TestLoadFile_NotExist(t *testing.T) {
	t.Parallel()

	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("LoadFile error = %v; want ErrNotExist", err)
	}
}

func TestLoadFile_YAML(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.yaml")
	writeFile(t, path, `
strategy: probability
probability: 0.8
blacklist: [a, "e"]
seed: 1234
normalize: true
`)

	s, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if s.Strategy != "probability" || *s.Probability != 0.8 || *s.Seed != 1234 || !*s.Normalize {
		t.Errorf("LoadFile = %+v", s)
	}
	if !reflect.DeepEqual(s.Blacklist, Blacklist{"a", "e"}) {
		t.Errorf("Blacklist = %v", s.Blacklist)
	}
}

func TestLoadFile_ScalarBlacklist(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.yaml")
	writeFile(t, path, "blacklist: aeiou\n")

	s, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if got := string(s.Blacklist.Runes()); got != "aeiou" {
		t.Errorf("Runes() = %q; want aeiou", got)
	}
}

func TestLoadFile_Malformed(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.yaml")
	writeFile(t, path, "blacklist: {a: b}\n")

	if _, err := LoadFile(path); err == nil {
		t.Error("expected error for mapping blacklist")
	}

	writeFile(t, path, "nth: [1\n")
	if _, err := LoadFile(path); err == nil {
		t.Error("expected error for invalid YAML")
	}
}

func TestLoadFile_ExpandsStrategy(t *testing.T) {
	t.Setenv("MOCKCASE_TEST_KIND", "random")

	path := filepath.Join(t.TempDir(), "config.yaml")
	writeFile(t, path, "strategy: ${MOCKCASE_TEST_KIND}\n")

	s, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if s.Strategy != "random" {
		t.Errorf("Strategy = %q; want random", s.Strategy)
	}
}

func TestLoad_ProjectOverridesGlobal(t *testing.T) {
	globalDir := t.TempDir()
	projectDir := t.TempDir()
	t.Setenv(configDirEnvVar, globalDir)

	writeFile(t, filepath.Join(globalDir, globalFileName), "strategy: step\nnth: 5\nblacklist: x\n")
	writeFile(t, filepath.Join(projectDir, projectFileName), "nth: 3\n")

	s, err := Load(projectDir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.Strategy != "step" || *s.Nth != 3 {
		t.Errorf("Load = %+v; want step with nth 3", s)
	}
	if !reflect.DeepEqual(s.Blacklist, Blacklist{"x"}) {
		t.Errorf("Blacklist = %v; want [x]", s.Blacklist)
	}
}

func TestLoad_NoFiles(t *testing.T) {
	t.Setenv(configDirEnvVar, t.TempDir())

	s, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.Strategy != "" || s.Nth != nil || s.Probability != nil {
		t.Errorf("Load with no files = %+v; want empty", s)
	}
}

func TestLoad_MalformedGlobal(t *testing.T) {
	globalDir := t.TempDir()
	t.Setenv(configDirEnvVar, globalDir)
	writeFile(t, filepath.Join(globalDir, globalFileName), "nth: [\n")

	if _, err := Load(t.TempDir()); err == nil {
		t.Error("expected error for malformed global config")
	}
}
