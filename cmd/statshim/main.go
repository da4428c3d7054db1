package main

import (
	"context"
	"fmt"
	"os"
	"runtime"

	"github.com/0xef53/statshim/core"

	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v3"
)

func init() {
	log.SetFormatter(&log.TextFormatter{
		DisableColors:    true,
		DisableTimestamp: true,
	})
}

func main() {
	if err := newApp().Run(context.Background(), os.Args); err != nil {
		log.Errorln(err)

		os.Exit(exitCode(err))
	}
}

func newApp() *cli.Command {
	app := new(cli.Command)

	app.Name = "statshim"
	app.Usage = "Report file status in a fixed, platform-independent form"
	app.HideHelpCommand = true
	app.EnableShellCompletion = true

	app.Flags = []cli.Flag{
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "enable debug/verbose mode",
		},
		&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Sources: cli.EnvVars("STATSHIM_CONFIG"), Usage: "path to the YAML configuration file"},
		&cli.StringFlag{Name: "format", Aliases: []string{"f"}, Sources: cli.EnvVars("STATSHIM_FORMAT"), Usage: "output format (json or yaml)"},
		&cli.StringFlag{Name: "passwd-file", Sources: cli.EnvVars("STATSHIM_PASSWD"), Usage: "user database used to resolve owner names"},
		&cli.StringFlag{Name: "group-file", Sources: cli.EnvVars("STATSHIM_GROUP"), Usage: "group database used to resolve group names"},
	}

	app.Commands = []*cli.Command{
		// STATUS
		&cli.Command{
			Name:      "stat",
			Usage:     "show the status of files, following symbolic links",
			ArgsUsage: "FILE...",
			Flags: []cli.Flag{
				&cli.BoolFlag{Name: "no-follow", Aliases: []string{"P"}, Usage: "do not follow a trailing symbolic link"},
				&cli.BoolFlag{Name: "content", Aliases: []string{"l"}, Usage: "list directory entries instead of the directory itself"},
				&cli.BoolFlag{Name: "raw", Usage: "write fixed-layout binary records instead of text"},
			},
			Action: runStat,
		},
		&cli.Command{
			Name:      "lstat",
			Usage:     "show the status of files without following symbolic links",
			ArgsUsage: "FILE...",
			Flags: []cli.Flag{
				&cli.BoolFlag{Name: "content", Aliases: []string{"l"}, Usage: "list directory entries instead of the directory itself"},
				&cli.BoolFlag{Name: "raw", Usage: "write fixed-layout binary records instead of text"},
			},
			Action: runLstat,
		},
		&cli.Command{
			Name:      "fstat",
			Usage:     "open files and show their status through the descriptor",
			ArgsUsage: "FILE...",
			Flags: []cli.Flag{
				&cli.BoolFlag{Name: "raw", Usage: "write fixed-layout binary records instead of text"},
			},
			Action: runFstat,
		},
		// MUTATION
		&cli.Command{
			Name:      "mkdir",
			Usage:     "create a directory with an exact mode",
			ArgsUsage: "DIRECTORY",
			Flags: []cli.Flag{
				&cli.StringFlag{Name: "mode", Aliases: []string{"m"}, Usage: "octal permission bits (default from config, 0755)"},
			},
			Action: runMkdir,
		},
		&cli.Command{
			Name:      "chmod",
			Usage:     "change the mode of a file",
			ArgsUsage: "MODE FILE",
			Flags: []cli.Flag{
				&cli.BoolFlag{Name: "fd", Usage: "change the mode through an open descriptor"},
			},
			Action: runChmod,
		},
		// CONSTANTS
		&cli.Command{
			Name:   "modes",
			Usage:  "print the mode constant table of this host",
			Action: runModes,
		},
		// VERSION
		&cli.Command{
			Name:  "version",
			Usage: "print the version information",
			Action: func(ctx context.Context, c *cli.Command) error {
				fmt.Fprintf(c.Root().Writer, "v%s, (built %s)\n", core.Version, runtime.Version())
				return nil
			},
		},
	}

	return app
}
