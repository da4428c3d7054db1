package core

import "github.com/0xef53/statshim/pkg/statshim"

type FileStat struct {
	Name      string              `json:"name" yaml:"name"`
	Type      string              `json:"type" yaml:"type"`
	Mode      string              `json:"mode" yaml:"mode"`
	SizeHuman string              `json:"size_human" yaml:"size_human"`
	Owner     *FileStat_Owner     `json:"owner" yaml:"owner"`
	Group     *FileStat_Group     `json:"group" yaml:"group"`
	Status    statshim.FileStatus `json:"status" yaml:"status"`
}

type FileStat_Owner struct {
	UID  uint32 `json:"uid" yaml:"uid"`
	Name string `json:"name,omitempty" yaml:"name,omitempty"`
}

type FileStat_Group struct {
	GID  uint32 `json:"gid" yaml:"gid"`
	Name string `json:"name,omitempty" yaml:"name,omitempty"`
}

type ModeSymbol struct {
	Name      string `json:"name" yaml:"name"`
	Value     uint32 `json:"value" yaml:"value"`
	Octal     string `json:"octal" yaml:"octal"`
	Supported bool   `json:"supported" yaml:"supported"`
}

func fileType(m statshim.Mode) string {
	switch {
	case m.IsRegular():
		return "regular"
	case m.IsDir():
		return "directory"
	case m.IsSymlink():
		return "symlink"
	case m.IsCharDevice():
		return "char-device"
	case m.IsBlockDevice():
		return "block-device"
	case m.IsFifo():
		return "fifo"
	case m.IsSocket():
		return "socket"
	}

	return "unknown"
}
