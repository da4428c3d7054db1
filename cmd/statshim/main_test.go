//go:build darwin || dragonfly || freebsd || linux || netbsd || openbsd || solaris

package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/0xef53/statshim/core"
	"github.com/0xef53/statshim/pkg/statshim"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v2"
)

func run(t *testing.T, args ...string) ([]byte, error) {
	t.Helper()

	var buf bytes.Buffer

	app := newApp()
	app.Writer = &buf

	err := app.Run(context.Background(), append([]string{"statshim"}, args...))

	return buf.Bytes(), err
}

func TestStatCommand(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a")
	b := filepath.Join(dir, "b")

	require.NoError(t, os.WriteFile(a, []byte("1"), 0644))
	require.NoError(t, os.WriteFile(b, []byte("22"), 0644))

	out, err := run(t, "stat", a, b)
	require.NoError(t, err)

	var files []*core.FileStat

	require.NoError(t, json.Unmarshal(out, &files))
	require.Len(t, files, 2)

	assert.Equal(t, "a", files[0].Name)
	assert.Equal(t, int64(1), files[0].Status.Size)
	assert.Equal(t, "b", files[1].Name)
	assert.Equal(t, int64(2), files[1].Status.Size)
	assert.True(t, files[1].Status.Mode.IsRegular())
}

func TestStatCommandRaw(t *testing.T) {
	fpath := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(fpath, []byte("hello"), 0644))

	out, err := run(t, "stat", "--raw", fpath, fpath)
	require.NoError(t, err)
	require.Len(t, out, 2*statshim.RecordSize)

	want, err := statshim.Stat(fpath)
	require.NoError(t, err)

	var got statshim.FileStatus

	require.NoError(t, got.UnmarshalBinary(out[statshim.RecordSize:]))
	assert.Equal(t, want, got)
}

func TestLstatCommand(t *testing.T) {
	dir := t.TempDir()
	link := filepath.Join(dir, "link")

	require.NoError(t, os.WriteFile(filepath.Join(dir, "target"), nil, 0644))
	require.NoError(t, os.Symlink("target", link))

	for _, args := range [][]string{{"lstat", link}, {"stat", "--no-follow", link}} {
		out, err := run(t, args...)
		require.NoError(t, err)

		var files []*core.FileStat

		require.NoError(t, json.Unmarshal(out, &files))
		require.Len(t, files, 1)
		assert.Equal(t, "symlink", files[0].Type)
	}
}

func TestFstatCommandYAML(t *testing.T) {
	fpath := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(fpath, []byte("abc"), 0600))

	out, err := run(t, "--format", "yaml", "fstat", fpath)
	require.NoError(t, err)

	var files []map[string]interface{}

	require.NoError(t, yaml.Unmarshal(out, &files))
	require.Len(t, files, 1)
	assert.Equal(t, "file", files[0]["name"])
	assert.Equal(t, "-rw-------", files[0]["mode"])
}

func TestStatCommandNotFound(t *testing.T) {
	_, err := run(t, "stat", filepath.Join(t.TempDir(), "missing"))

	require.Error(t, err)
	assert.Equal(t, exitNotFound, exitCode(err))
}

func TestStatCommandNoArgs(t *testing.T) {
	_, err := run(t, "stat")

	assert.Error(t, err)
}

func TestMkdirCommandConfigMode(t *testing.T) {
	dir := t.TempDir()
	cfg := filepath.Join(dir, "statshim.yaml")

	require.NoError(t, os.WriteFile(cfg, []byte("dir_mode: \"0711\"\n"), 0644))

	target := filepath.Join(dir, "made")

	_, err := run(t, "--config", cfg, "mkdir", target)
	require.NoError(t, err)

	st, err := statshim.Stat(target)
	require.NoError(t, err)
	assert.Equal(t, statshim.Mode(0711), st.Mode.Perm())

	_, err = run(t, "mkdir", "-m", "0700", target)
	require.Error(t, err)
	assert.Equal(t, exitFailure, exitCode(err))
}

func TestChmodCommand(t *testing.T) {
	fpath := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(fpath, nil, 0644))

	_, err := run(t, "chmod", "600", fpath)
	require.NoError(t, err)

	st, err := statshim.Stat(fpath)
	require.NoError(t, err)
	assert.Equal(t, statshim.Mode(0600), st.Mode.Perm())

	_, err = run(t, "chmod", "--fd", "0640", fpath)
	require.NoError(t, err)

	st, err = statshim.Stat(fpath)
	require.NoError(t, err)
	assert.Equal(t, statshim.Mode(0640), st.Mode.Perm())

	_, err = run(t, "chmod", "999", fpath)
	assert.Error(t, err)
}

func TestModesCommand(t *testing.T) {
	out, err := run(t, "modes")
	require.NoError(t, err)

	var table []*core.ModeSymbol

	require.NoError(t, json.Unmarshal(out, &table))
	assert.Len(t, table, len(statshim.Symbols()))
}

func TestInvalidConfig(t *testing.T) {
	dir := t.TempDir()
	cfg := filepath.Join(dir, "statshim.yaml")

	require.NoError(t, os.WriteFile(cfg, []byte("unknown_key: 1\n"), 0644))

	_, err := run(t, "--config", cfg, "modes")
	assert.ErrorContains(t, err, "invalid config")

	_, err = run(t, "--format", "xml", "modes")
	assert.ErrorContains(t, err, "unknown output format")
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, exitUnsupported, exitCode(&statshim.Error{Op: "fchmod", Kind: statshim.KindUnsupported}))
	assert.Equal(t, exitInvalidDescriptor, exitCode(&statshim.Error{Op: "fstat", Kind: statshim.KindInvalidDescriptor}))
	assert.Equal(t, exitPermissionDenied, exitCode(&statshim.Error{Op: "stat", Kind: statshim.KindPermissionDenied}))
	assert.Equal(t, exitNotFound, exitCode(&os.PathError{Op: "open", Path: "x", Err: os.ErrNotExist}))
	assert.Equal(t, exitFailure, exitCode(os.ErrClosed))
}
