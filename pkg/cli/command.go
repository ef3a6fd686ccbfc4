package cli

import (
	"github.com/urfave/cli/v3"
)

func NewCommand() *cli.Command {
	flags := append(DefineFlags(),
		&cli.BoolFlag{
			Name:  "debug",
			Usage: "Enable debug logging",
			Value: false,
		},
		&cli.BoolFlag{
			Name:  "verbose",
			Usage: "Enable verbose logging",
			Value: false,
		},
	)

	return &cli.Command{
		Name:      "azcov",
		Usage:     "Report recent Azure Pipelines runs that published coverage",
		Version:   "0.1.0",
		ArgsUsage: "[branch]",
		Description: `azcov lists the runs of an Azure Pipelines definition that finished within
the last 24 hours on a branch and published a coverage artifact.

The branch defaults to the configured one (devel unless changed).
Configuration is read from --config, ./.azcov.yml or ~/.config/azcov/config.yml.`,
		Flags:  flags,
		Action: RunReport,
		Commands: []*cli.Command{
			NewConfigCommand(),
		},
	}
}
