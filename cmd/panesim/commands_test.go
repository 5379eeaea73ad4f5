package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := newRootCmd(&out, &errOut)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), errOut.String(), err
}

func TestRunScenario(t *testing.T) {
	out, _, err := execute(t, "run", filepath.Join("..", "..", "examples", "scenarios", "drag.toml"))
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"drag.toml after", "palette", "100"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRunCascade(t *testing.T) {
	out, _, err := execute(t, "run", "-v", filepath.Join("..", "..", "examples", "scenarios", "cascade.toml"))
	if err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"editor", "console", "inspector"} {
		if !strings.Contains(out, name) {
			t.Errorf("output missing pane %q", name)
		}
	}
}

func TestRunUnfinished(t *testing.T) {
	_, _, err := execute(t, "run", "--max-frames", "2", filepath.Join("..", "..", "examples", "scenarios", "cascade.toml"))
	if err == nil || !strings.Contains(err.Error(), "not finished") {
		t.Errorf("err = %v", err)
	}
}

func TestValidate(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.toml")
	if err := os.WriteFile(bad, []byte("[[step]]\naction = \"fly\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	good := filepath.Join("..", "..", "examples", "scenarios", "drag.toml")

	out, _, err := execute(t, "validate", good)
	if err != nil || !strings.Contains(out, "drag.toml") {
		t.Errorf("validate good: out=%q err=%v", out, err)
	}
	if _, _, err := execute(t, "validate", good, bad); err == nil || !strings.Contains(err.Error(), "unknown action") {
		t.Errorf("validate bad: err = %v", err)
	}

	cfg := filepath.Join(dir, "panes.toml")
	if err := os.WriteFile(cfg, []byte("[bounds]\nmode = \"basic\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, _, err := execute(t, "validate", "--config", cfg); err != nil {
		t.Errorf("validate --config: %v", err)
	}
}

func TestEases(t *testing.T) {
	out, _, err := execute(t, "eases")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "linear") || !strings.Contains(out, "cubicOut") {
		t.Errorf("eases output:\n%s", out)
	}
}
