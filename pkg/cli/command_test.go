package cli_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/m-mizutani/azcov/pkg/cli"
	"github.com/m-mizutani/azcov/pkg/domain"
	"github.com/m-mizutani/gt"
)

func TestCommand(t *testing.T) {
	t.Run("name", func(t *testing.T) {
		gt.Equal(t, cli.NewCommand().Name, "azcov")
	})

	t.Run("config init writes template once", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yml")

		err := cli.NewCommand().Run(context.Background(), []string{"azcov", "config", "init", "-o", path})
		gt.NoError(t, err)

		content, err := os.ReadFile(path)
		gt.NoError(t, err)
		gt.True(t, strings.Contains(string(content), "pipeline_id: 20"))

		err = cli.NewCommand().Run(context.Background(), []string{"azcov", "config", "init", "-o", path})
		gt.Error(t, err)
		gt.True(t, errors.Is(err, domain.ErrConfiguration))
		gt.True(t, strings.Contains(err.Error(), "failed to create config template"))

		err = cli.NewCommand().Run(context.Background(), []string{"azcov", "config", "init", "-o", path, "-f"})
		gt.NoError(t, err)
	})
}
