package interfaces

import "github.com/m-mizutani/azcov/pkg/domain/model"

type Reporter interface {
	Render(runs []*model.CoverageRun)
}
