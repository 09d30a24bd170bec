package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"twiddler-tools/internal/expand"
	"twiddler-tools/internal/modifier"
)

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, Default(), cfg)

	opts, err := cfg.ExpandOptions()
	require.NoError(t, err)
	assert.Equal(t, expand.DefaultOptions(), opts)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := `
input: layouts/mine.csv
combine: any
markers:
  keyboard: "<kb>"
modifiers:
  - {name: Shift, button: 8, label: R-Shift}
  - {name: Ctrl, button: "7", label: R-Ctrl}
  - {name: Alt, button: "6", label: R-Alt}
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "layouts/mine.csv", cfg.Input)
	assert.Equal(t, "_w_modifiers", cfg.OutputSuffix)
	assert.Equal(t, "<kb>", cfg.Markers.Keyboard)
	assert.Equal(t, "[SYS]", cfg.Markers.System)
	assert.Equal(t, []modifier.Modifier{
		{Name: "Shift", Button: "8", Label: "R-Shift"},
		{Name: "Ctrl", Button: "7", Label: "R-Ctrl"},
		{Name: "Alt", Button: "6", Label: "R-Alt"},
	}, cfg.Modifiers)

	opts, err := cfg.ExpandOptions()
	require.NoError(t, err)
	assert.Equal(t, expand.PolicyAny, opts.Policy)
}

func TestLoadFindsFileInWorkingDir(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "twiddler.yaml"), []byte("input: found.csv\n"), 0o600))

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "found.csv", cfg.Input)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("TWIDDLER_INPUT", "from-env.csv")
	t.Setenv("TWIDDLER_MARKERS_SYSTEM", "<sys>")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "from-env.csv", cfg.Input)
	assert.Equal(t, "<sys>", cfg.Markers.System)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{name: "bad policy", data: "combine: sometimes\n"},
		{name: "empty suffix", data: "output_suffix: \"\"\n"},
		{name: "two modifiers", data: "modifiers:\n  - {name: Shift, button: \"4\", label: L-Shift}\n  - {name: Ctrl, button: \"3\", label: L-Ctrl}\n"},
		{name: "empty keyboard marker", data: "markers:\n  keyboard: \"\"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "twiddler.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.data), 0o600))

			_, err := Load(path)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalid), "%+v", err)
		})
	}
}

func TestWriteFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "twiddler.yaml")

	require.NoError(t, WriteFile(Default(), path))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestMarshal(t *testing.T) {
	data, err := Marshal(Default())
	require.NoError(t, err)

	assert.Contains(t, string(data), "output_suffix: _w_modifiers")
	assert.Contains(t, string(data), "label: L-Shift")
	assert.Contains(t, string(data), `button: "4"`)
}
