package statshim

import (
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestModePredicates(t *testing.T) {
	preds := map[string]func(Mode) bool{
		"dir":     IsDirectory,
		"regular": IsRegularFile,
		"char":    IsCharacterDevice,
		"block":   IsBlockDevice,
		"fifo":    IsFifo,
		"symlink": IsSymbolicLink,
		"socket":  IsSocket,
	}

	types := map[string]Mode{
		"dir":     ModeTypeDir,
		"regular": ModeTypeRegular,
		"char":    ModeTypeChar,
		"block":   ModeTypeBlock,
		"fifo":    ModeTypeFifo,
		"symlink": ModeTypeSymlink,
		"socket":  ModeTypeSocket,
	}

	for name, typ := range types {
		m := typ | 0755

		for pname, pred := range preds {
			want := name == pname && typ != 0
			assert.Equalf(t, want, pred(m), "%s(%s)", pname, name)
		}
	}
}

func TestModePredicatesZeroMode(t *testing.T) {
	var m Mode

	assert.False(t, m.IsDir())
	assert.False(t, m.IsRegular())
	assert.False(t, m.IsSymlink())
	assert.False(t, m.IsSocket())
	assert.False(t, m.IsFifo())
}

func TestModePermAndType(t *testing.T) {
	m := ModeTypeRegular | 0644

	assert.Equal(t, Mode(0644), m.Perm())
	assert.Equal(t, ModeTypeRegular, m.Type())
	assert.NotZero(t, m&ModeUserRead)
	assert.NotZero(t, m&ModeUserWrite)
	assert.Zero(t, m&ModeUserExec)
}

func TestModeString(t *testing.T) {
	assert.Equal(t, "-rw-r--r--", (ModeTypeRegular | 0644).String())
	assert.Equal(t, "drwxr-xr-x", (ModeTypeDir | 0755).String())
	assert.Equal(t, "-rw-------", (ModeTypeRegular | 0600).String())
	assert.Equal(t, "?rwxrwxrwx", Mode(0777).String())

	if SymSetuid.Supported() && SymSticky.Supported() {
		assert.Equal(t, "-rwsr-xr-x", (ModeTypeRegular | ModeSetuid | 0755).String())
		assert.Equal(t, "-rwSr--r--", (ModeTypeRegular | ModeSetuid | 0644).String())
		assert.Equal(t, "drwxrwxrwt", (ModeTypeDir | ModeSticky | 0777).String())
	}
}

func TestFromFileMode(t *testing.T) {
	assert.Equal(t, ModeTypeRegular|0644, FromFileMode(0644))
	assert.Equal(t, ModeTypeDir|0755, FromFileMode(fs.ModeDir|0755))
	assert.Equal(t, ModeTypeChar|0600, FromFileMode(fs.ModeDevice|fs.ModeCharDevice|0600))
	assert.Equal(t, ModeTypeFifo|0600, FromFileMode(fs.ModeNamedPipe|0600))
	assert.Equal(t, ModeTypeSymlink|0777, FromFileMode(fs.ModeSymlink|0777))
	assert.Equal(t, ModeTypeRegular|ModeSetuid|ModeSetgid|0755, FromFileMode(fs.ModeSetuid|fs.ModeSetgid|0755))
}

func TestToFileMode(t *testing.T) {
	assert.Equal(t, fs.FileMode(0640), ToFileMode(ModeTypeRegular|0640))
	assert.Equal(t, fs.FileMode(0755), ToFileMode(0755))

	special := []struct {
		m  Mode
		fm fs.FileMode
	}{
		{ModeSetuid, fs.ModeSetuid},
		{ModeSetgid, fs.ModeSetgid},
		{ModeSticky, fs.ModeSticky},
	}

	for _, s := range special {
		if s.m == 0 {
			// not representable on this host
			assert.Equal(t, fs.FileMode(0755), ToFileMode(s.m|0755))
			continue
		}
		assert.Equal(t, s.fm|0755, ToFileMode(s.m|0755))
		assert.Equal(t, s.m|0755, FromFileMode(ToFileMode(s.m|0755)).Perm())
	}
}
