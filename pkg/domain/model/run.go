package model

import "time"

type RunResult string

const (
	RunResultSucceeded RunResult = "succeeded"
	RunResultFailed    RunResult = "failed"
	RunResultCanceled  RunResult = "canceled"
)

// RunSummary is one entry of the pipeline run listing. FinishedDate is nil
// while the run is still going.
type RunSummary struct {
	ID           int64      `json:"id"`
	URL          string     `json:"url"`
	FinishedDate *time.Time `json:"finishedDate,omitempty"`
}

func (s RunSummary) Finished() bool {
	return s.FinishedDate != nil
}

// RunDetail is the full run record fetched from a RunSummary URL.
type RunDetail struct {
	ID           int64        `json:"id"`
	Result       RunResult    `json:"result,omitempty"`
	FinishedDate *time.Time   `json:"finishedDate,omitempty"`
	Resources    RunResources `json:"resources"`
}

type RunResources struct {
	Repositories map[string]RepositoryResource `json:"repositories"`
}

type RepositoryResource struct {
	RefName string `json:"refName"`
}

// SelfRepository is the key the service uses for the repository holding the
// pipeline definition.
const SelfRepository = "self"

// RefName returns the ref the run was triggered against.
func (r RunDetail) RefName() string {
	return r.Resources.Repositories[SelfRepository].RefName
}

func (r RunDetail) Finished() bool {
	return r.FinishedDate != nil
}

func (r RunDetail) Succeeded() bool {
	return r.Result == RunResultSucceeded
}

type Artifact struct {
	Name string `json:"name"`
}

// CoverageArtifactPrefix marks artifacts carrying coverage data.
const CoverageArtifactPrefix = "Coverage"

// CoverageRun is a run on the requested branch that published a coverage
// artifact.
type CoverageRun = RunDetail
