package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/m-mizutani/azcov/pkg/domain"
	"github.com/m-mizutani/azcov/pkg/domain/interfaces"
	"github.com/m-mizutani/azcov/pkg/domain/model"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
)

type DiscoveryUseCase struct {
	pipelines interfaces.PipelinesService
	config    *model.DiscoveryConfig
	now       func() time.Time
}

type DiscoveryUseCaseOptions struct {
	Pipelines interfaces.PipelinesService
	Config    *model.DiscoveryConfig
	// Now defaults to time.Now
	Now func() time.Time
}

func NewDiscoveryUseCase(opts DiscoveryUseCaseOptions) *DiscoveryUseCase {
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	return &DiscoveryUseCase{
		pipelines: opts.Pipelines,
		config:    opts.Config,
		now:       now,
	}
}

// Execute returns the recent runs of the configured branch that published a
// coverage artifact, newest first.
//
// The run listing must be ordered newest-first. Both the age cutoff and the
// serialization defect stop the walk on the assumption that every later
// entry is older, so an out-of-order listing is rejected with
// domain.ErrListingOrder instead of being silently truncated.
//
// A run is only counted when at least one job published coverage. A run
// whose jobs all failed before that point is left out even though it was a
// coverage run.
func (u *DiscoveryUseCase) Execute(ctx context.Context) ([]*model.CoverageRun, error) {
	logger := ctxlog.From(ctx)
	pipeline := u.config.Pipeline
	ref := model.BranchRef(u.config.Branch)

	summaries, err := u.pipelines.ListRuns(ctx, pipeline)
	if err != nil {
		return nil, err
	}

	if u.config.MaxRuns > 0 && len(summaries) > u.config.MaxRuns {
		summaries = summaries[:u.config.MaxRuns]
	}

	if err := verifyNewestFirst(summaries); err != nil {
		return nil, err
	}

	logger.Debug("starting discovery",
		slog.String("pipeline", pipeline.FullName()),
		slog.String("ref", ref),
		slog.Int("runs", len(summaries)),
		slog.Duration("max_age", u.config.MaxAge),
	)

	var inspected int
	var coverageRuns []*model.CoverageRun

	for _, summary := range summaries {
		inspected++

		run, err := u.pipelines.GetRun(ctx, summary.URL)
		if err != nil {
			if errors.Is(err, domain.ErrSerializationDefect) {
				logger.Info("run cannot be serialized, skipping it and all older runs",
					slog.Int64("id", summary.ID),
				)
				break
			}
			return nil, err
		}

		if run.RefName() != ref {
			logger.Debug("skip run on other ref",
				slog.Int64("id", run.ID),
				slog.String("ref", run.RefName()),
			)
			continue
		}

		if u.tooOld(summary) {
			logger.Debug("reached run older than max age",
				slog.Int64("id", run.ID),
				slog.Time("finished", *summary.FinishedDate),
			)
			break
		}

		artifacts, err := u.pipelines.ListArtifacts(ctx, pipeline, run.ID)
		if err != nil {
			return nil, err
		}

		if !hasCoverageArtifact(artifacts) {
			logger.Debug("skip run without coverage artifact", slog.Int64("id", run.ID))
			continue
		}

		logger.Debug("found coverage run",
			slog.Int64("id", run.ID),
			slog.String("result", string(run.Result)),
		)
		coverageRuns = append(coverageRuns, run)
	}

	logger.Info("discovery finished",
		slog.String("pipeline", pipeline.FullName()),
		slog.String("ref", ref),
		slog.Int("inspected", inspected),
		slog.Int("coverage_runs", len(coverageRuns)),
	)

	return coverageRuns, nil
}

func (u *DiscoveryUseCase) tooOld(summary *model.RunSummary) bool {
	if u.config.MaxAge <= 0 || !summary.Finished() {
		return false
	}
	return u.now().Sub(*summary.FinishedDate) > u.config.MaxAge
}

// Run ids increase with queue time, so a newest-first listing has strictly
// descending ids.
func verifyNewestFirst(summaries []*model.RunSummary) error {
	for i := 1; i < len(summaries); i++ {
		if summaries[i].ID >= summaries[i-1].ID {
			return domain.ErrListingOrder.Wrap(goerr.New("run ids are not descending",
				goerr.V("index", i),
				goerr.V("previous_id", summaries[i-1].ID),
				goerr.V("id", summaries[i].ID),
			))
		}
	}
	return nil
}

func hasCoverageArtifact(artifacts []*model.Artifact) bool {
	for _, artifact := range artifacts {
		if artifact != nil && strings.HasPrefix(artifact.Name, model.CoverageArtifactPrefix) {
			return true
		}
	}
	return false
}
