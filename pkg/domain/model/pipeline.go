package model

import (
	"fmt"
	"net/url"
	"strings"
)

// Pipeline identifies the monitored Azure Pipelines definition.
type Pipeline struct {
	BaseURL      string
	Organization string
	Project      string
	ID           int
}

const (
	pipelinesAPIVersion = "6.0-preview.1"
	buildAPIVersion     = "6.0"
)

func (p Pipeline) projectURL() string {
	return strings.TrimSuffix(p.BaseURL, "/") + "/" +
		url.PathEscape(p.Organization) + "/" + url.PathEscape(p.Project)
}

func (p Pipeline) FullName() string {
	return fmt.Sprintf("%s/%s#%d", p.Organization, p.Project, p.ID)
}

func (p Pipeline) RunsURL() string {
	return fmt.Sprintf("%s/_apis/pipelines/%d/runs?api-version=%s", p.projectURL(), p.ID, pipelinesAPIVersion)
}

func (p Pipeline) ArtifactsURL(runID int64) string {
	return fmt.Sprintf("%s/_apis/build/builds/%d/artifacts?api-version=%s", p.projectURL(), runID, buildAPIVersion)
}

// ResultsURL is the web page of a run.
func (p Pipeline) ResultsURL(runID int64) string {
	return fmt.Sprintf("%s/_build/results?buildId=%d", p.projectURL(), runID)
}

// BranchRef converts a branch name into the ref a run reports.
func BranchRef(branch string) string {
	return "refs/heads/" + branch
}
