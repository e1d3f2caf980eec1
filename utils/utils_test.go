package utils

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"SplashKit/structs"

	"gopkg.in/yaml.v2"
)

func TestEvaluateSizeCheck(t *testing.T) {
	tests := []struct {
		expr    string
		size    int
		wantErr bool
	}{
		{"size <= 1024", 100, false},
		{"size <= 1024", 2048, true},
		{"size <= KiB(4)", 4096, false},
		{"size <= KiB(4)", 4097, true},
		{"size <= MiB(1)", 1024 * 1024, false},
		{"size > 0", 0, true},
		{"size + 1", 100, true},     // non-boolean result
		{"size <= ", 100, true},     // parse error
		{"KiB(1, 2) > size", 1, true}, // wrong arity
	}
	for _, tc := range tests {
		err := EvaluateSizeCheck(tc.expr, tc.size)
		if (err != nil) != tc.wantErr {
			t.Errorf("EvaluateSizeCheck(%q, %d) error = %v, wantErr %v", tc.expr, tc.size, err, tc.wantErr)
		}
	}
}

func TestIsValidCheckExpression(t *testing.T) {
	if IsValidCheckExpression("") || IsValidCheckExpression("  ") || IsValidCheckExpression("...") {
		t.Error("placeholder expressions should be invalid")
	}
	if !IsValidCheckExpression("size <= 1024") {
		t.Error("real expression should be valid")
	}
}

func TestDeriveNames(t *testing.T) {
	tests := []struct {
		path      string
		wantArray string
		wantGuard string
	}{
		{"assets/CompanySplashScreen.png", "COMPANYSPLASHSCREEN_DATA", "COMPANYSPLASHSCREEN_DATA_H"},
		{"my-logo v2.png", "MY_LOGO_V2_DATA", "MY_LOGO_V2_DATA_H"},
		{"7zip.bmp", "_7ZIP_DATA", "_7ZIP_DATA_H"},
	}
	for _, tc := range tests {
		if got := DeriveArrayName(tc.path); got != tc.wantArray {
			t.Errorf("DeriveArrayName(%q) = %q, want %q", tc.path, got, tc.wantArray)
		}
		if got := DeriveGuardName(tc.path); got != tc.wantGuard {
			t.Errorf("DeriveGuardName(%q) = %q, want %q", tc.path, got, tc.wantGuard)
		}
	}
}

func TestFindImageFiles(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.png", "a.bmp", "notes.txt", "c.JPG"} {
		if err := ioutil.WriteFile(filepath.Join(dir, name), []byte("x"), 0644); err != nil {
			t.Fatalf("failed to write fixture %s: %v", name, err)
		}
	}
	if err := os.Mkdir(filepath.Join(dir, "sub.png"), 0755); err != nil {
		t.Fatalf("failed to create subdirectory: %v", err)
	}

	images, err := FindImageFiles(dir)
	if err != nil {
		t.Fatalf("FindImageFiles failed: %v", err)
	}

	want := []string{
		filepath.Join(dir, "a.bmp"),
		filepath.Join(dir, "b.png"),
		filepath.Join(dir, "c.JPG"),
	}
	if len(images) != len(want) {
		t.Fatalf("got %d image(s) %v, want %d", len(images), images, len(want))
	}
	for i := range want {
		if images[i] != want[i] {
			t.Errorf("images[%d] = %q, want %q", i, images[i], want[i])
		}
	}
}

func TestValidateAndReformManifest(t *testing.T) {
	dir := t.TempDir()
	outputDir := filepath.Join(dir, "generated")
	manifestPath := filepath.Join(dir, "splash.yml")

	manifest := `name: test assets
jobs:
  logo:
    input: assets/logo.png
    output: logo_data.h
    bytesPerRow: "8"
    check: 'size <= KiB(64)'
  splash:
    input: assets/CompanySplashScreen.png
`
	if err := ioutil.WriteFile(manifestPath, []byte(manifest), 0644); err != nil {
		t.Fatalf("failed to write manifest fixture: %v", err)
	}

	reformedPath, err := ValidateAndReformManifest(manifestPath, outputDir)
	if err != nil {
		t.Fatalf("ValidateAndReformManifest failed: %v", err)
	}
	if reformedPath != filepath.Join(outputDir, "splash.yml") {
		t.Errorf("reformed path = %q", reformedPath)
	}

	reformedData, err := ioutil.ReadFile(reformedPath)
	if err != nil {
		t.Fatalf("failed to read reformed manifest: %v", err)
	}
	var reformed structs.Manifest
	if err := yaml.Unmarshal(reformedData, &reformed); err != nil {
		t.Fatalf("failed to parse reformed manifest: %v", err)
	}

	// The splash job had no output; it must have been reformed
	if got := reformed.Jobs["splash"].Output; got != "companysplashscreen_data.h" {
		t.Errorf("reformed splash output = %q, want %q", got, "companysplashscreen_data.h")
	}
	// The logo job passes through unchanged
	if got := reformed.Jobs["logo"].Output; got != "logo_data.h" {
		t.Errorf("logo output = %q, want %q", got, "logo_data.h")
	}
}

func TestValidateAndReformManifestRejectsBadJobs(t *testing.T) {
	dir := t.TempDir()

	badManifests := map[string]string{
		"missing input": `jobs:
  broken:
    output: broken_data.h
`,
		"bad bytesPerRow": `jobs:
  broken:
    input: a.png
    bytesPerRow: "zero"
`,
		"bad check": `jobs:
  broken:
    input: a.png
    check: 'size <='
`,
		"no jobs": `name: empty
`,
	}
	for label, content := range badManifests {
		manifestPath := filepath.Join(dir, strings.ReplaceAll(label, " ", "_")+".yml")
		if err := ioutil.WriteFile(manifestPath, []byte(content), 0644); err != nil {
			t.Fatalf("failed to write fixture for %q: %v", label, err)
		}
		if _, err := ValidateAndReformManifest(manifestPath, filepath.Join(dir, "out")); err == nil {
			t.Errorf("%s: manifest was accepted, want validation error", label)
		}
	}
}

func TestResetRemovesOnlyGeneratedHeaders(t *testing.T) {
	dir := t.TempDir()

	generated := "#ifndef A_H\n#define A_H\n\n// Auto-generated from a.png\n// File size: 0 bytes\n\n#endif // A_H\n"
	manual := "#ifndef B_H\n#define B_H\n/* hand-written */\n#endif\n"

	files := map[string]string{
		"a_data.h": generated,
		"manual.h": manual,
		"keep.txt": "not a header",
	}
	for name, content := range files {
		if err := ioutil.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
			t.Fatalf("failed to write fixture %s: %v", name, err)
		}
	}

	Reset(dir)

	if _, err := os.Stat(filepath.Join(dir, "a_data.h")); !os.IsNotExist(err) {
		t.Error("generated header was not removed")
	}
	for _, name := range []string{"manual.h", "keep.txt"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("%s should have been preserved: %v", name, err)
		}
	}
}
