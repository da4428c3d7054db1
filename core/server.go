package core

import (
	"context"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

var Version = "0.3.0"

const (
	DefaultPasswdFile = "/etc/passwd"
	DefaultGroupFile  = "/etc/group"
)

type Config struct {
	PasswdFile string
	GroupFile  string
}

type Server struct {
	SessionID string

	// uid/gid -> name, read once and never modified
	uids map[uint32]string
	gids map[uint32]string
}

func NewServer(ctx context.Context, cfg *Config) (*Server, error) {
	if cfg == nil {
		cfg = new(Config)
	}

	if len(cfg.PasswdFile) == 0 {
		cfg.PasswdFile = DefaultPasswdFile
	}
	if len(cfg.GroupFile) == 0 {
		cfg.GroupFile = DefaultGroupFile
	}

	srv := Server{
		SessionID: uuid.New().String(),
	}

	// Names are decoration only, so a missing database is not fatal
	if _, uids, err := GetOSUsers(cfg.PasswdFile); err == nil {
		srv.uids = uids
	} else {
		log.Warnf("Non-fatal error: %s", err)
		srv.uids = make(map[uint32]string)
	}

	if _, gids, err := GetOSGroups(cfg.GroupFile); err == nil {
		srv.gids = gids
	} else {
		log.Warnf("Non-fatal error: %s", err)
		srv.gids = make(map[uint32]string)
	}

	log.WithFields(log.Fields{
		"session": srv.SessionID,
		"users":   len(srv.uids),
		"groups":  len(srv.gids),
	}).Debug("Server initialized")

	return &srv, nil
}

func (s *Server) logger(op, fpath string) *log.Entry {
	return log.WithFields(log.Fields{
		"session": s.SessionID,
		"op":      op,
		"path":    fpath,
	})
}
