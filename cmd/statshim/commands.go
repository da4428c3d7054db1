package main

import (
	"context"
	"fmt"
	"io"

	"github.com/0xef53/statshim/core"

	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v3"
	"golang.org/x/sync/errgroup"
)

// Upper bound on concurrent status queries of one command
const maxParallelQueries = 8

type application struct {
	cfg *Config
	srv *core.Server
	out io.Writer
}

func newApplication(ctx context.Context, c *cli.Command) (*application, error) {
	if c.Bool("verbose") {
		log.SetLevel(log.DebugLevel)
	}

	cfg, err := loadConfig(c)
	if err != nil {
		return nil, err
	}

	srv, err := core.NewServer(ctx, &core.Config{
		PasswdFile: cfg.PasswdFile,
		GroupFile:  cfg.GroupFile,
	})
	if err != nil {
		return nil, err
	}

	return &application{cfg: cfg, srv: srv, out: c.Root().Writer}, nil
}

func (a *application) print(v interface{}) error {
	return printResult(a.out, a.cfg.Format, v)
}

func (a *application) printRaw(files []*core.FileStat) error {
	for _, f := range files {
		if _, err := f.Status.WriteTo(a.out); err != nil {
			return err
		}
	}

	return nil
}

func runStat(ctx context.Context, c *cli.Command) error {
	return queryFiles(ctx, c, !c.Bool("no-follow"))
}

func runLstat(ctx context.Context, c *cli.Command) error {
	return queryFiles(ctx, c, false)
}

func queryFiles(ctx context.Context, c *cli.Command, followLinks bool) error {
	paths := c.Args().Slice()
	if len(paths) == 0 {
		return fmt.Errorf("no files specified")
	}

	app, err := newApplication(ctx, c)
	if err != nil {
		return err
	}

	withContent := c.Bool("content")

	// Results keep the order of the arguments
	results := make([][]*core.FileStat, len(paths))

	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(maxParallelQueries)

	for i, fpath := range paths {
		group.Go(func() error {
			files, err := app.srv.GetFileStat(ctx, fpath, followLinks, withContent)
			if err != nil {
				return err
			}
			results[i] = files
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return err
	}

	files := make([]*core.FileStat, 0, len(paths))
	for _, r := range results {
		files = append(files, r...)
	}

	if c.Bool("raw") {
		return app.printRaw(files)
	}

	return app.print(files)
}

func runFstat(ctx context.Context, c *cli.Command) error {
	paths := c.Args().Slice()
	if len(paths) == 0 {
		return fmt.Errorf("no files specified")
	}

	app, err := newApplication(ctx, c)
	if err != nil {
		return err
	}

	files := make([]*core.FileStat, len(paths))

	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(maxParallelQueries)

	for i, fpath := range paths {
		group.Go(func() error {
			f, err := app.srv.GetOpenFileStat(ctx, fpath)
			if err != nil {
				return err
			}
			files[i] = f
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return err
	}

	if c.Bool("raw") {
		return app.printRaw(files)
	}

	return app.print(files)
}

func runMkdir(ctx context.Context, c *cli.Command) error {
	if c.Args().Len() != 1 {
		return fmt.Errorf("exactly one directory must be specified")
	}

	app, err := newApplication(ctx, c)
	if err != nil {
		return err
	}

	perm := app.cfg.DirMode
	if c.IsSet("mode") {
		perm = c.String("mode")
	}

	mode, err := parseMode(perm)
	if err != nil {
		return err
	}

	return app.srv.CreateDir(ctx, c.Args().First(), mode)
}

func runChmod(ctx context.Context, c *cli.Command) error {
	if c.Args().Len() != 2 {
		return fmt.Errorf("usage: chmod MODE FILE")
	}

	app, err := newApplication(ctx, c)
	if err != nil {
		return err
	}

	mode, err := parseMode(c.Args().Get(0))
	if err != nil {
		return err
	}

	if c.Bool("fd") {
		return app.srv.SetFileModeByFd(ctx, c.Args().Get(1), mode)
	}

	return app.srv.SetFileMode(ctx, c.Args().Get(1), mode)
}

func runModes(ctx context.Context, c *cli.Command) error {
	app, err := newApplication(ctx, c)
	if err != nil {
		return err
	}

	return app.print(app.srv.ModeTable())
}
