package model

import (
	"time"

	"github.com/m-mizutani/goerr/v2"
)

const (
	DefaultBaseURL      = "https://dev.azure.com"
	DefaultOrganization = "ansible"
	DefaultProject      = "ansible"
	DefaultPipelineID   = 20
	DefaultBranch       = "devel"
	DefaultMaxAge       = 24 * time.Hour
	DefaultMaxRuns      = 1000
)

// Config represents the application configuration
type Config struct {
	BaseURL      string        `yaml:"base_url,omitempty"`
	Organization string        `yaml:"organization,omitempty"`
	Project      string        `yaml:"project,omitempty"`
	PipelineID   int           `yaml:"pipeline_id,omitempty"`
	Branch       string        `yaml:"branch,omitempty"`
	MaxAge       time.Duration `yaml:"max_age,omitempty"`
	MaxRuns      int           `yaml:"max_runs,omitempty"`
	Token        string        `yaml:"token,omitempty"` // optional bearer token, ${VAR} is expanded
}

func DefaultConfig() *Config {
	return &Config{
		BaseURL:      DefaultBaseURL,
		Organization: DefaultOrganization,
		Project:      DefaultProject,
		PipelineID:   DefaultPipelineID,
		Branch:       DefaultBranch,
		MaxAge:       DefaultMaxAge,
		MaxRuns:      DefaultMaxRuns,
	}
}

// ApplyDefaults fills zero fields with default values
func (c *Config) ApplyDefaults() {
	d := DefaultConfig()
	if c.BaseURL == "" {
		c.BaseURL = d.BaseURL
	}
	if c.Organization == "" {
		c.Organization = d.Organization
	}
	if c.Project == "" {
		c.Project = d.Project
	}
	if c.PipelineID == 0 {
		c.PipelineID = d.PipelineID
	}
	if c.Branch == "" {
		c.Branch = d.Branch
	}
	if c.MaxAge == 0 {
		c.MaxAge = d.MaxAge
	}
	if c.MaxRuns == 0 {
		c.MaxRuns = d.MaxRuns
	}
}

func (c *Config) Validate() error {
	if c.PipelineID < 0 {
		return goerr.New("pipeline_id must be positive", goerr.V("pipeline_id", c.PipelineID))
	}
	if c.MaxAge < 0 {
		return goerr.New("max_age must be positive", goerr.V("max_age", c.MaxAge))
	}
	if c.MaxRuns < 0 {
		return goerr.New("max_runs must be positive", goerr.V("max_runs", c.MaxRuns))
	}
	return nil
}

func (c *Config) Pipeline() Pipeline {
	return Pipeline{
		BaseURL:      c.BaseURL,
		Organization: c.Organization,
		Project:      c.Project,
		ID:           c.PipelineID,
	}
}

// DiscoveryConfig holds the parameters of one discovery walk.
type DiscoveryConfig struct {
	Pipeline Pipeline
	Branch   string
	MaxAge   time.Duration
	MaxRuns  int
}

func (c *Config) ToDiscoveryConfig() *DiscoveryConfig {
	return &DiscoveryConfig{
		Pipeline: c.Pipeline(),
		Branch:   c.Branch,
		MaxAge:   c.MaxAge,
		MaxRuns:  c.MaxRuns,
	}
}
