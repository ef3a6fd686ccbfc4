package cli

import (
	"github.com/m-mizutani/azcov/pkg/domain/model"
	"github.com/urfave/cli/v3"
)

type Config struct {
	ConfigPath string
	Branch     string
	NoColor    bool
}

func NewConfig() *Config {
	return &Config{}
}

// ToDiscoveryConfig applies command line overrides on top of the file
// configuration.
func (c *Config) ToDiscoveryConfig(cfg *model.Config) *model.DiscoveryConfig {
	dc := cfg.ToDiscoveryConfig()
	if c.Branch != "" {
		dc.Branch = c.Branch
	}
	return dc
}

func DefineFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "Path to config file",
		},
		&cli.BoolFlag{
			Name:  "no-color",
			Usage: "Disable colored output",
			Value: false,
		},
	}
}
