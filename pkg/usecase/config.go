package usecase

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/m-mizutani/azcov/pkg/domain"
	"github.com/m-mizutani/azcov/pkg/domain/interfaces"
	"github.com/m-mizutani/azcov/pkg/domain/model"
	"github.com/m-mizutani/goerr/v2"
	"gopkg.in/yaml.v3"
)

// Looked up in the working directory, in this order.
var localConfigNames = []string{".azcov.yml", ".azcov.yaml"}

type configService struct {
	homeDir string
}

// NewConfigService creates a new ConfigService instance
func NewConfigService() interfaces.ConfigService {
	homeDir, _ := os.UserHomeDir()
	return &configService{homeDir: homeDir}
}

// Load reads the configuration at path. A missing file is an error.
func (c *configService) Load(path string) (*model.Config, error) {
	data, err := os.ReadFile(path) // #nosec G304 - path is chosen by the user
	if err != nil {
		return nil, domain.ErrConfiguration.Wrap(goerr.Wrap(err, "failed to read config", goerr.V("path", path)))
	}

	var config model.Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, domain.ErrConfiguration.Wrap(goerr.Wrap(err, "failed to parse config", goerr.V("path", path)))
	}

	config.Token = expandEnvVars(config.Token)
	config.ApplyDefaults()
	if err := config.Validate(); err != nil {
		return nil, domain.ErrConfiguration.Wrap(err)
	}

	return &config, nil
}

// LoadDefault reads the per-user configuration, falling back to built-in
// defaults when it does not exist.
func (c *configService) LoadDefault() (*model.Config, error) {
	path := c.GetDefaultPath()
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return model.DefaultConfig(), nil
		}
		return nil, domain.ErrConfiguration.Wrap(err)
	}
	return c.Load(path)
}

// LoadFromDirectory loads .azcov.yml or .azcov.yaml from dir. The returned
// path is empty when neither exists.
func (c *configService) LoadFromDirectory(dir string) (*model.Config, string, error) {
	path := c.findConfigInDirectory(dir)
	if path == "" {
		return model.DefaultConfig(), "", nil
	}

	config, err := c.Load(path)
	if err != nil {
		return nil, path, err
	}
	return config, path, nil
}

func (c *configService) findConfigInDirectory(dir string) string {
	for _, name := range localConfigNames {
		path := filepath.Join(dir, name)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path
		}
	}
	return ""
}

func (c *configService) GetDefaultPath() string {
	return filepath.Join(c.homeDir, ".config", "azcov", "config.yml")
}

func (c *configService) GenerateTemplate() string {
	d := model.DefaultConfig()
	return fmt.Sprintf(`# azcov configuration
#
# Identity of the Azure Pipelines definition to inspect.
base_url: %s
organization: %s
project: %s
pipeline_id: %d

# Branch used when none is given on the command line.
branch: %s

# Stop walking the run listing at the first run finished longer ago than this.
max_age: %s

# Upper bound on the number of listed runs to inspect.
max_runs: %d

# Optional bearer token. Environment variables are expanded.
# token: ${AZCOV_TOKEN}
`, d.BaseURL, d.Organization, d.Project, d.PipelineID, d.Branch, d.MaxAge, d.MaxRuns)
}

func (c *configService) SaveTemplate(path string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return domain.ErrConfiguration.Wrap(goerr.New("config file already exists, use --force to overwrite",
				goerr.V("path", path),
			))
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return domain.ErrConfiguration.Wrap(err)
	}

	if err := os.WriteFile(path, []byte(c.GenerateTemplate()), 0600); err != nil {
		return domain.ErrConfiguration.Wrap(err)
	}

	return nil
}

func expandEnvVars(s string) string {
	// Support both ${VAR} and $VAR formats
	return os.ExpandEnv(s)
}
