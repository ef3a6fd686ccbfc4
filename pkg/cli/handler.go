package cli

import (
	"context"
	"log/slog"
	"os"

	"github.com/m-mizutani/azcov/pkg/domain"
	"github.com/m-mizutani/azcov/pkg/domain/interfaces"
	"github.com/m-mizutani/azcov/pkg/domain/model"
	"github.com/m-mizutani/azcov/pkg/usecase"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

func RunReport(ctx context.Context, cmd *cli.Command) error {
	logLevel := slog.LevelWarn
	if cmd.Bool("debug") {
		logLevel = slog.LevelDebug
	} else if cmd.Bool("verbose") {
		logLevel = slog.LevelInfo
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	}))
	ctx = ctxlog.With(ctx, logger)

	if cmd.Args().Len() > 1 {
		return domain.ErrConfiguration.Wrap(goerr.New("too many arguments, expected at most one branch name",
			goerr.V("args", cmd.Args().Slice()),
		))
	}

	config := &Config{
		ConfigPath: cmd.String("config"),
		Branch:     cmd.Args().First(),
		NoColor:    cmd.Bool("no-color"),
	}

	fileConfig, err := loadConfig(ctx, usecase.NewConfigService(), config.ConfigPath)
	if err != nil {
		return err
	}

	discoveryConfig := config.ToDiscoveryConfig(fileConfig)

	discovery := usecase.NewDiscoveryUseCase(usecase.DiscoveryUseCaseOptions{
		Pipelines: usecase.NewPipelinesService(usecase.NewHTTPClient(ctx, fileConfig.Token)),
		Config:    discoveryConfig,
	})

	runs, err := discovery.Execute(ctx)
	if err != nil {
		return err
	}

	NewReport(os.Stdout, discoveryConfig.Pipeline, config.NoColor).Render(runs)
	return nil
}

// loadConfig prefers an explicit path, then a config file in the working
// directory, then the per-user default.
func loadConfig(ctx context.Context, service interfaces.ConfigService, path string) (*model.Config, error) {
	logger := ctxlog.From(ctx)

	if path != "" {
		logger.Debug("loading config", slog.String("path", path))
		return service.Load(path)
	}

	currentDir, err := os.Getwd()
	if err != nil {
		return nil, domain.ErrConfiguration.Wrap(err)
	}

	config, found, err := service.LoadFromDirectory(currentDir)
	if err != nil {
		return nil, err
	}
	if found != "" {
		logger.Debug("loading config", slog.String("path", found))
		return config, nil
	}

	logger.Debug("loading default config", slog.String("path", service.GetDefaultPath()))
	return service.LoadDefault()
}
