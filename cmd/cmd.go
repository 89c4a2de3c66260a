// submodule cmd contains command definitions
package main

import (
	"github.com/desertthunder/wgx/internal/catalog"
	"github.com/desertthunder/wgx/internal/formatter"
	"github.com/urfave/cli/v3"
)

// listingFlags are shared by the packages and tui commands.
func listingFlags() []cli.Flag {
	return []cli.Flag{
		&cli.IntFlag{
			Name:  "page-size",
			Usage: "Packages per page (1-100)",
			Value: catalog.DefaultPageSize,
		},
		&cli.StringFlag{
			Name:  "sort",
			Usage: "Sort key: name, package_id or version",
			Value: "name",
		},
		&cli.StringFlag{
			Name:  "publisher",
			Usage: "Only list packages from this publisher",
		},
		&cli.StringFlag{
			Name:    "query",
			Aliases: []string{"q"},
			Usage:   "Search term (ignored when --publisher is set)",
		},
		&cli.BoolFlag{
			Name:  "microsoft",
			Usage: "Only list Microsoft packages",
		},
	}
}

// serveCommand starts the web front end
func serveCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Serve the package catalog page",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "host",
				Usage: "Address to listen on (default from config)",
			},
			&cli.IntFlag{
				Name:    "port",
				Aliases: []string{"p"},
				Usage:   "Port to listen on (default from config)",
			},
			&cli.BoolFlag{
				Name:  "open",
				Usage: "Open the page in the default browser",
			},
		},
		Action: r.Serve,
	}
}

// packagesCommand prints one page of packages
func packagesCommand(r *Runner) *cli.Command {
	flags := append(listingFlags(),
		&cli.IntFlag{
			Name:  "page",
			Usage: "Page number",
			Value: catalog.DefaultPage,
		},
		&cli.BoolFlag{
			Name:  "refresh",
			Usage: "Refresh the catalog before listing",
		},
		&cli.StringFlag{
			Name:    "format",
			Aliases: []string{"f"},
			Usage:   "Output format: table, json, csv, md or text",
			Value:   string(formatter.FormatTable),
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "Write to this file instead of stdout",
		},
	)

	return &cli.Command{
		Name:    "packages",
		Aliases: []string{"ls"},
		Usage:   "List packages from the package API",
		Flags:   flags,
		Action:  r.Packages,
	}
}

// refreshCommand rebuilds the upstream catalog
func refreshCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "refresh",
		Usage: "Ask the package API to refresh its catalog",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Output raw JSON",
			},
		},
		Action: r.Refresh,
	}
}

// tuiCommand returns the top-level TUI command for interactive browsing.
func tuiCommand(r *Runner) *cli.Command {
	flags := append(listingFlags(),
		&cli.StringFlag{
			Name:  "log-file",
			Usage: "Where logs go while the TUI owns the terminal",
			Value: "./tmp/wgx-tui.log",
		},
	)

	return &cli.Command{
		Name:    "tui",
		Aliases: []string{"interactive", "ui"},
		Usage:   "Browse packages in an interactive terminal UI",
		Flags:   flags,
		Action:  r.TUI,
	}
}

// configCommand handles configuration files
func configCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "config",
		Usage: "Configuration commands",
		Commands: []*cli.Command{
			{
				Name:   "init",
				Usage:  "Write the example configuration to --config",
				Action: r.ConfigInit,
			},
			{
				Name:   "check",
				Usage:  "Validate --config and print the effective settings",
				Action: r.ConfigCheck,
			},
		},
	}
}
