package interfaces

import (
	"context"

	"github.com/m-mizutani/azcov/pkg/domain/model"
)

// PipelinesService talks to the Azure Pipelines REST API. GetRun returns an
// error wrapping domain.ErrSerializationDefect when the service cannot
// serialize the requested run.
type PipelinesService interface {
	ListRuns(ctx context.Context, pipeline model.Pipeline) ([]*model.RunSummary, error)
	GetRun(ctx context.Context, runURL string) (*model.RunDetail, error)
	ListArtifacts(ctx context.Context, pipeline model.Pipeline, runID int64) ([]*model.Artifact, error)
}
