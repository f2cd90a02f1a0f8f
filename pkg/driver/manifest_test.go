package driver

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"l21/interpreter-go/pkg/primitives"
	"l21/interpreter-go/pkg/runtime"
)

func TestLoadManifestBasic(t *testing.T) {
	path := writeManifest(t, `
name: demo
prelude:
  - lib/lists.l21
  - lib/math.l21
primitives: [+, car, cons]
trace: true
`)

	manifest, err := LoadManifest(path)
	if err != nil {
		t.Fatalf("LoadManifest returned error: %v", err)
	}
	if manifest.Name != "demo" {
		t.Fatalf("Name = %q, want demo", manifest.Name)
	}
	if len(manifest.Prelude) != 2 || manifest.Prelude[1] != "lib/math.l21" {
		t.Fatalf("Prelude unexpected: %#v", manifest.Prelude)
	}
	if len(manifest.Primitives) != 3 || manifest.Primitives[0] != "+" {
		t.Fatalf("Primitives unexpected: %#v", manifest.Primitives)
	}
	if !manifest.Trace {
		t.Fatalf("Trace should be enabled")
	}
	paths := manifest.PreludePaths()
	if want := filepath.Join(filepath.Dir(path), "lib", "lists.l21"); paths[0] != want {
		t.Fatalf("PreludePaths()[0] = %q, want %q", paths[0], want)
	}
}

func TestLoadManifestScalarPrelude(t *testing.T) {
	path := writeManifest(t, `
name: single
prelude: boot.l21
`)
	manifest, err := LoadManifest(path)
	if err != nil {
		t.Fatalf("LoadManifest returned error: %v", err)
	}
	if len(manifest.Prelude) != 1 || manifest.Prelude[0] != "boot.l21" {
		t.Fatalf("Prelude unexpected: %#v", manifest.Prelude)
	}
	if manifest.Primitives != nil {
		t.Fatalf("Primitives should default to nil, got %#v", manifest.Primitives)
	}
}

func TestLoadManifestValidation(t *testing.T) {
	path := writeManifest(t, `
prelude: ["", ok.l21]
primitives: [+, frobnicate, +]
`)
	_, err := LoadManifest(path)
	var validation *ValidationError
	if !errors.As(err, &validation) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	wants := []string{"name must be provided", "prelude[0]", `unknown operator "frobnicate"`, `repeats operator "+"`}
	for _, want := range wants {
		if !strings.Contains(validation.Error(), want) {
			t.Fatalf("expected issue containing %q, got %v", want, validation.Issues)
		}
	}
}

func TestLoadManifestRejectsUnknownFields(t *testing.T) {
	path := writeManifest(t, `
name: demo
preludes: [a.l21]
`)
	if _, err := LoadManifest(path); err == nil || !strings.Contains(err.Error(), "preludes") {
		t.Fatalf("expected unknown field error, got %v", err)
	}
}

func TestLoadManifestEmptyFile(t *testing.T) {
	path := writeManifest(t, ``)
	if _, err := LoadManifest(path); err == nil || !strings.Contains(err.Error(), "is empty") {
		t.Fatalf("expected empty manifest error, got %v", err)
	}
}

func TestOpenSessionEvaluatesPrelude(t *testing.T) {
	path := writeManifest(t, `
name: demo
prelude:
  - lib/counter.l21
  - lib/use.l21
`)
	dir := filepath.Dir(path)
	writeFile(t, filepath.Join(dir, "lib", "counter.l21"), `
(define count 0)
(define (bump) (set! count (+ count 1)) count)
`)
	writeFile(t, filepath.Join(dir, "lib", "use.l21"), `(bump)`)

	manifest, err := LoadManifest(path)
	if err != nil {
		t.Fatalf("LoadManifest returned error: %v", err)
	}
	session, err := OpenSession(manifest)
	if err != nil {
		t.Fatalf("OpenSession returned error: %v", err)
	}
	val, err := session.EvaluateSource(`(bump)`)
	if err != nil {
		t.Fatalf("evaluation failed: %v", err)
	}
	if got := runtime.Inspect(val); got != "2" {
		t.Fatalf("expected prelude state to persist, got %s", got)
	}
}

func TestOpenSessionRestrictsPrimitives(t *testing.T) {
	path := writeManifest(t, `
name: tiny
primitives: [+]
`)
	manifest, err := LoadManifest(path)
	if err != nil {
		t.Fatalf("LoadManifest returned error: %v", err)
	}
	session, err := OpenSession(manifest)
	if err != nil {
		t.Fatalf("OpenSession returned error: %v", err)
	}
	if _, err := session.EvaluateSource(`(+ 1 2)`); err != nil {
		t.Fatalf("allowed primitive failed: %v", err)
	}
	_, err = session.EvaluateSource(`(car '(1))`)
	var primErr *primitives.PrimitiveError
	if !errors.As(err, &primErr) {
		t.Fatalf("expected PrimitiveError for disallowed car, got %v", err)
	}
}

func TestOpenSessionReportsPreludeFailure(t *testing.T) {
	path := writeManifest(t, `
name: broken
prelude: bad.l21
`)
	writeFile(t, filepath.Join(filepath.Dir(path), "bad.l21"), `(undefined-thing)`)
	manifest, err := LoadManifest(path)
	if err != nil {
		t.Fatalf("LoadManifest returned error: %v", err)
	}
	_, err = OpenSession(manifest)
	var lookupErr *runtime.LookupError
	if !errors.As(err, &lookupErr) {
		t.Fatalf("expected LookupError from prelude, got %v", err)
	}
	if !strings.Contains(err.Error(), "bad.l21") {
		t.Fatalf("error should name the prelude file: %v", err)
	}
}

func TestOpenSessionMissingPrelude(t *testing.T) {
	path := writeManifest(t, `
name: missing
prelude: nowhere.l21
`)
	manifest, err := LoadManifest(path)
	if err != nil {
		t.Fatalf("LoadManifest returned error: %v", err)
	}
	if _, err := OpenSession(manifest); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected missing file error, got %v", err)
	}
}

func writeManifest(t *testing.T, contents string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "session.yml")
	if err := os.WriteFile(path, []byte(strings.TrimSpace(contents)+"\n"), 0o600); err != nil {
		t.Fatalf("write manifest: %v", err)
	}
	return path
}

func writeFile(t *testing.T, path, contents string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, []byte(contents), 0o600); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}
