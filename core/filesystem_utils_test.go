package core

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeDatabase(t *testing.T, content string) string {
	t.Helper()

	fpath := filepath.Join(t.TempDir(), "db")

	require.NoError(t, os.WriteFile(fpath, []byte(content), 0644))

	return fpath
}

func TestGetOSUsers(t *testing.T) {
	fpath := writeDatabase(t, `# comment
root:x:0:0:root:/root:/bin/bash
alice:x:1005:1006::/home/alice:/usr/bin/bash
+nisuser
-excluded:x:77:77::/:/bin/false
toor:x:0:0:root:/root:/bin/sh
`)

	names, uids, err := GetOSUsers(fpath)
	require.NoError(t, err)

	assert.Equal(t, map[string]uint32{"root": 0, "alice": 1005, "toor": 0}, names)
	assert.Equal(t, map[uint32]string{0: "root", 1005: "alice"}, uids)
}

func TestGetOSGroups(t *testing.T) {
	fpath := writeDatabase(t, "wheel:*:0:root\nstaff:x:50:\nshort:x\n")

	names, gids, err := GetOSGroups(fpath)
	require.NoError(t, err)

	assert.Equal(t, map[string]uint32{"wheel": 0, "staff": 50}, names)
	assert.Equal(t, map[uint32]string{0: "wheel", 50: "staff"}, gids)
}

func TestGetOSGroupsInvalidID(t *testing.T) {
	fpath := writeDatabase(t, "wheel:*:zero:root\n")

	_, _, err := GetOSGroups(fpath)
	assert.ErrorContains(t, err, ":1: invalid id")
}

func TestGetOSUsersMissingFile(t *testing.T) {
	_, _, err := GetOSUsers(filepath.Join(t.TempDir(), "nope"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
