package cli_test

import (
	"testing"

	"github.com/m-mizutani/azcov/pkg/cli"
	"github.com/m-mizutani/azcov/pkg/domain/model"
	"github.com/m-mizutani/gt"
)

func TestConfig(t *testing.T) {
	t.Run("NewConfig defaults", func(t *testing.T) {
		config := cli.NewConfig()
		gt.Equal(t, config.Branch, "")
		gt.Equal(t, config.NoColor, false)
	})

	t.Run("branch argument overrides configured branch", func(t *testing.T) {
		config := &cli.Config{Branch: "stable-2.16"}

		dc := config.ToDiscoveryConfig(model.DefaultConfig())
		gt.Equal(t, dc.Branch, "stable-2.16")
		gt.Equal(t, dc.Pipeline.ID, 20)
		gt.Equal(t, dc.MaxAge, model.DefaultMaxAge)
	})

	t.Run("configured branch is used without argument", func(t *testing.T) {
		fileConfig := model.DefaultConfig()
		fileConfig.Branch = "milestone"

		dc := cli.NewConfig().ToDiscoveryConfig(fileConfig)
		gt.Equal(t, dc.Branch, "milestone")
	})
}
