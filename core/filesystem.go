package core

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/0xef53/statshim/pkg/statshim"

	units "github.com/docker/go-units"
)

func (s *Server) GetFileStat(ctx context.Context, fpath string, followLinks, withContent bool) ([]*FileStat, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	statfn, op := statshim.Lstat, "lstat"
	if followLinks {
		statfn, op = statshim.Stat, "stat"
	}

	s.logger(op, fpath).Debug("Querying file status")

	st, err := statfn(fpath)
	if err != nil {
		return nil, err
	}

	files := make([]*FileStat, 0)

	if st.Mode.IsDir() && withContent {
		entries, err := os.ReadDir(fpath)
		if err != nil {
			return nil, fmt.Errorf("cannot read directory: %w", err)
		}

		for _, e := range entries {
			if err := ctx.Err(); err != nil {
				return nil, err
			}

			est, err := statshim.Lstat(filepath.Join(fpath, e.Name()))
			if err != nil {
				if errors.Is(err, statshim.ErrNotFound) {
					// removed after the directory was read
					s.logger("lstat", e.Name()).Debug("Skipping vanished entry")
					continue
				}
				return nil, err
			}

			files = append(files, s.newFileStat(e.Name(), est))
		}
	} else {
		files = append(files, s.newFileStat(filepath.Base(fpath), st))
	}

	return files, nil
}

// GetOpenFileStat queries the status through a descriptor
// instead of the path.
func (s *Server) GetOpenFileStat(ctx context.Context, fpath string) (*FileStat, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	fd, err := openNoBlock(fpath)
	if err != nil {
		return nil, err
	}
	defer fd.Close()

	s.logger("fstat", fpath).Debug("Querying file status by descriptor")

	st, err := statshim.Fstat(fd.Fd())
	if err != nil {
		return nil, err
	}

	return s.newFileStat(filepath.Base(fpath), st), nil
}

func (s *Server) SetFileMode(ctx context.Context, fpath string, mode statshim.Mode) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.logger("chmod", fpath).Debugf("Changing mode to %#o", mode)

	return statshim.Chmod(fpath, mode)
}

func (s *Server) SetFileModeByFd(ctx context.Context, fpath string, mode statshim.Mode) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	fd, err := openNoBlock(fpath)
	if err != nil {
		return err
	}
	defer fd.Close()

	s.logger("fchmod", fpath).Debugf("Changing mode to %#o", mode)

	return statshim.Fchmod(fd.Fd(), mode)
}

// CreateDir creates a single directory with exactly the given mode.
// The umask is cleared by a follow-up chmod, not by changing the process umask.
// If that chmod fails, the new directory is removed again.
func (s *Server) CreateDir(ctx context.Context, fpath string, mode statshim.Mode) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.logger("mkdir", fpath).Debugf("Creating directory with mode %#o", mode)

	if err := statshim.Mkdir(fpath, mode); err != nil {
		return err
	}

	if err := fixDirMode(fpath, mode); err != nil {
		// Do not leave a directory with a mode nobody asked for
		if rmErr := os.Remove(fpath); rmErr != nil {
			s.logger("mkdir", fpath).Warnf("Cannot remove incomplete directory: %s", rmErr)
		}
		return err
	}

	return nil
}

// Replaced in tests
var (
	statDir  = statshim.Stat
	chmodDir = statshim.Chmod
)

func fixDirMode(fpath string, mode statshim.Mode) error {
	st, err := statDir(fpath)
	if err != nil {
		return err
	}

	if st.Mode.Perm() != mode.Perm() {
		return chmodDir(fpath, mode)
	}

	return nil
}

func (s *Server) ModeTable() []*ModeSymbol {
	symbols := statshim.Symbols()

	table := make([]*ModeSymbol, 0, len(symbols))

	for _, sym := range symbols {
		table = append(table, &ModeSymbol{
			Name:      sym.String(),
			Value:     uint32(sym.Value()),
			Octal:     fmt.Sprintf("%#o", uint32(sym.Value())),
			Supported: sym.Supported(),
		})
	}

	return table
}

func (s *Server) newFileStat(name string, st statshim.FileStatus) *FileStat {
	fst := FileStat{
		Name:      name,
		Type:      fileType(st.Mode),
		Mode:      st.Mode.String(),
		SizeHuman: units.BytesSize(float64(st.Size)),
		Status:    st,
		Owner:     &FileStat_Owner{UID: st.Uid},
		Group:     &FileStat_Group{GID: st.Gid},
	}

	if v, ok := s.uids[st.Uid]; ok {
		fst.Owner.Name = v
	}

	if v, ok := s.gids[st.Gid]; ok {
		fst.Group.Name = v
	}

	return &fst
}
