// Package statshim reports file status in a fixed, platform-independent
// record so that callers never depend on the host's native stat layout.
package statshim

import (
	"bytes"
	"encoding/binary"
	"io"
)

// https://pubs.opengroup.org/onlinepubs/9699919799/basedefs/sys_stat.h.html
//
// Field order and widths are fixed. Fields the host cannot provide are 0.
type FileStatus struct {
	Dev     uint64 `json:"dev" yaml:"dev"`         // device ID of device containing file
	Rdev    uint64 `json:"rdev" yaml:"rdev"`       // device ID (if file is character or block special)
	Ino     uint64 `json:"ino" yaml:"ino"`         // file serial number
	Uid     uint32 `json:"uid" yaml:"uid"`         // user ID of file
	Gid     uint32 `json:"gid" yaml:"gid"`         // group ID of file
	Size    int64  `json:"size" yaml:"size"`       // bytes for regular files, target length for symlinks
	Atime   int64  `json:"atime" yaml:"atime"`     // time of last access, seconds
	Mtime   int64  `json:"mtime" yaml:"mtime"`     // time of last data modification, seconds
	Ctime   int64  `json:"ctime" yaml:"ctime"`     // time of last status change, seconds
	Blocks  int64  `json:"blocks" yaml:"blocks"`   // number of blocks allocated
	Blksize int64  `json:"blksize" yaml:"blksize"` // preferred I/O block size
	Nlink   uint64 `json:"nlink" yaml:"nlink"`     // number of hard links
	Mode    Mode   `json:"mode" yaml:"mode"`       // file type and permission bits
}

// RecordSize is the length of the binary form of FileStatus.
const RecordSize = 3*8 + 2*4 + 6*8 + 8 + 4

var byteOrder = binary.LittleEndian

func (s FileStatus) MarshalBinary() ([]byte, error) {
	buf := bytes.NewBuffer(make([]byte, 0, RecordSize))

	if err := binary.Write(buf, byteOrder, &s); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func (s *FileStatus) UnmarshalBinary(data []byte) error {
	if len(data) < RecordSize {
		return io.ErrUnexpectedEOF
	}

	return binary.Read(bytes.NewReader(data[:RecordSize]), byteOrder, s)
}

func (s FileStatus) WriteTo(w io.Writer) (int64, error) {
	b, err := s.MarshalBinary()
	if err != nil {
		return 0, err
	}

	n, err := w.Write(b)

	return int64(n), err
}

// ReadRecord reads exactly one record from r. It returns io.EOF if r has
// no more data and io.ErrUnexpectedEOF if the record is truncated.
func (s *FileStatus) ReadRecord(r io.Reader) error {
	b := make([]byte, RecordSize)

	if _, err := io.ReadFull(r, b); err != nil {
		return err
	}

	return s.UnmarshalBinary(b)
}
