package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestLoadOptional_Missing(t *testing.T) {
	cfg, err := LoadOptional(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, &Config{}, cfg)

	r, err := Resolve(cfg, "0.1.0")
	require.NoError(t, err)
	assert.Equal(t, "auto", r.Color)
	assert.Zero(t, r.Debounce)
}

func TestLoadOptional_YAML(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "formkit.yaml", `
requires: v0.1.0
output:
  color: never
  verbose: true
input:
  debounce: 150ms
`)
	cfg, err := LoadOptional(dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "formkit.yaml"), cfg.Path)

	r, err := Resolve(cfg, "0.2.0")
	require.NoError(t, err)
	assert.Equal(t, "never", r.Color)
	assert.True(t, r.Verbose)
	assert.Equal(t, 150*time.Millisecond, r.Debounce)
}

func TestLoadOptional_TOML(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "formkit.toml", `
requires = "0.1.0"

[output]
color = "always"

[input]
debounce = "1s"
`)
	cfg, err := LoadOptional(dir)
	require.NoError(t, err)
	assert.Equal(t, "0.1.0", cfg.Requires)

	r, err := Resolve(cfg, "v0.1.0")
	require.NoError(t, err)
	assert.Equal(t, "always", r.Color)
	assert.Equal(t, time.Second, r.Debounce)
}

func TestLoadOptional_YAMLWins(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "formkit.yaml", "output:\n  color: never\n")
	writeFile(t, dir, "formkit.toml", "[output]\ncolor = \"always\"\n")

	cfg, err := LoadOptional(dir)
	require.NoError(t, err)
	assert.Equal(t, "never", cfg.Output.Color)
}

func TestLoadFile_Errors(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "formkit.yaml", "output: [")
	_, err := LoadFile(filepath.Join(dir, "formkit.yaml"))
	assert.Error(t, err)

	writeFile(t, dir, "formkit.json", "{}")
	_, err = LoadFile(filepath.Join(dir, "formkit.json"))
	assert.Error(t, err)
}

func TestResolve_Invalid(t *testing.T) {
	_, err := Resolve(&Config{Output: OutputConfig{Color: "rainbow"}}, "0.1.0")
	assert.Error(t, err)
	_, err = Resolve(&Config{Input: InputConfig{Debounce: "soon"}}, "0.1.0")
	assert.Error(t, err)
}

func TestCheckRequires(t *testing.T) {
	cases := []struct {
		requires, version string
		ok                bool
	}{
		{"", "anything", true},
		{"v0.1.0", "0.1.0", true},
		{"0.1.0", "v0.3.2", true},
		{"v0.2.0", "0.1.9", false},
		{"v0.2.0", "0.2.0-dev", true},
		{"v0.2.0", "0.2.0-rc.1", false},
		{"v1", "1.4.0", true},
		{"latest", "1.0.0", false},
		{"v0.1.0", "unknown", false},
	}
	for _, tc := range cases {
		err := CheckRequires(tc.requires, tc.version)
		if tc.ok {
			assert.NoError(t, err, "%s vs %s", tc.requires, tc.version)
		} else {
			assert.Error(t, err, "%s vs %s", tc.requires, tc.version)
		}
	}
}
