package statshim

import "io/fs"

// FromFileInfo builds a status record from the portable part of fi.
// Only size, modification time and mode are known, the rest is 0.
func FromFileInfo(fi fs.FileInfo) FileStatus {
	return FileStatus{
		Size:  fi.Size(),
		Mtime: fi.ModTime().Unix(),
		Mode:  FromFileMode(fi.Mode()),
	}
}
