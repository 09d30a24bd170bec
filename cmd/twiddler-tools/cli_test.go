package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"twiddler-tools/internal/csvio"
)

func execute(t *testing.T, args ...string) error {
	t.Helper()

	cmd := newRootCmd()
	cmd.SetArgs(args)

	return cmd.Execute()
}

func writeFile(t *testing.T, path, data string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))
}

func TestExpandCommand(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	writeFile(t, "layout.csv", "Thumbs,Fingers,Actions\n1,A,[KB]x\n41,B,[KB]y\n1,A,[KB]z\n,C,[SYS]mode\n")

	require.NoError(t, execute(t, "expand", "-q", "layout.csv"))

	out, err := csvio.ReadFile(filepath.Join(dir, "layout_w_modifiers.csv"))
	require.NoError(t, err)

	// 8 rows for "1"/A, 4 for the normalized "14"/B, the system row.
	require.Len(t, out, 13)
	assert.Equal(t, "[KB]x", out[0].Action)
	assert.Equal(t, "14", out[8].Thumbs)
	assert.Equal(t, "[SYS]mode", out[12].Action)

	raw, err := os.ReadFile(filepath.Join(dir, "layout_w_modifiers.csv"))
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"Thumbs","Fingers","Actions"`)
	assert.Contains(t, string(raw), `"1234","A","[KB]<L-Shift><L-Ctrl><L-Alt>x</L-Alt></L-Ctrl></L-Shift>"`)
}

func TestExpandCommandUsesConfig(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	writeFile(t, "twiddler.yaml", "input: mine.csv\noutput_suffix: _mods\n")
	writeFile(t, "mine.csv", "Thumbs,Fingers,Actions\n4,A,[KB]x\n")

	require.NoError(t, execute(t, "expand", "-q"))

	out, err := csvio.ReadFile(filepath.Join(dir, "mine_mods.csv"))
	require.NoError(t, err)
	assert.Len(t, out, 4)
}

func TestExpandCommandOutputFlagAndPolicy(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	writeFile(t, "in.csv", "Thumbs,Fingers,Actions\n4,A,[KB]x\n")

	require.NoError(t, execute(t, "expand", "-q", "--combine", "any", "-o", "custom.csv", "in.csv"))

	out, err := csvio.ReadFile(filepath.Join(dir, "custom.csv"))
	require.NoError(t, err)
	require.Len(t, out, 7)
	assert.Equal(t, "2344", out[6].Thumbs)
}

func TestExpandCommandErrors(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	writeFile(t, "bad.csv", "Thumb,Finger,Action\n1,A,[KB]x\n")

	err := execute(t, "expand", "-q", "bad.csv")
	require.Error(t, err)
	assert.True(t, errors.Is(err, csvio.ErrHeader))
	assert.NotEmpty(t, errors.GetAllHints(err))

	_, statErr := os.Stat(filepath.Join(dir, "bad_w_modifiers.csv"))
	assert.True(t, os.IsNotExist(statErr))

	require.Error(t, execute(t, "expand", "-q", "missing.csv"))
	require.Error(t, execute(t, "expand", "-q", "--combine", "never", "bad.csv"))
	require.Error(t, execute(t, "expand", "-q", "-o", "bad.csv", "bad.csv"))
}

func TestExpandCommandRefusesToOverwriteInput(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	const table = "\"Thumbs\",\"Fingers\",\"Actions\"\n\"1\",\"A\",\"[KB]x\"\n"
	writeFile(t, "in.csv", table)

	for _, output := range []string{"in.csv", "./in.csv", filepath.Join(dir, "in.csv"), "sub/../in.csv"} {
		t.Run(output, func(t *testing.T) {
			err := execute(t, "expand", "-q", "-o", output, "in.csv")
			require.Error(t, err)
			assert.Contains(t, err.Error(), "would overwrite the input")
		})
	}

	data, err := os.ReadFile(filepath.Join(dir, "in.csv"))
	require.NoError(t, err)
	assert.Equal(t, table, string(data))
}

func TestTutorCommand(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	writeFile(t, "twiddler_cfg.csv", "chord,key\nO RLLL,a\n")

	require.NoError(t, execute(t, "tutor", "-q"))

	data, err := os.ReadFile(filepath.Join(dir, "twiddler_cfg.json"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"chords":[{"chord":"RLLL","key":"a","m":"O"}]}`, string(data))
}

func TestInitCommand(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	require.NoError(t, execute(t, "init"))
	assert.FileExists(t, filepath.Join(dir, "twiddler.yaml"))

	err := execute(t, "init")
	require.Error(t, err)
	assert.Contains(t, errors.FlattenHints(err), "--force")

	require.NoError(t, execute(t, "init", "--force"))

	// The written file is a valid config for the other commands.
	writeFile(t, "tabspace_twiddler_V6.csv", "Thumbs,Fingers,Actions\n1,A,[KB]x\n")
	require.NoError(t, execute(t, "expand", "-q"))
	assert.FileExists(t, filepath.Join(dir, "tabspace_twiddler_V6_w_modifiers.csv"))
}
