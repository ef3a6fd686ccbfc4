package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/m-mizutani/azcov/pkg/domain"
	"github.com/m-mizutani/azcov/pkg/domain/interfaces"
	"github.com/m-mizutani/azcov/pkg/domain/model"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"golang.org/x/oauth2"
)

// Azure Pipelines fails to serialize runs that used a container resource when
// the caller is anonymous. See
// https://developercommunity.visualstudio.com/t/Pipelines-API-serialization-error-for-an/10294532
const containerResourceDefect = "Cannot serialize type Microsoft.Azure.Pipelines.WebApi.ContainerResource"

type runListResponse struct {
	Count int                  `json:"count"`
	Value *[]*model.RunSummary `json:"value"`
}

type artifactListResponse struct {
	Count int                `json:"count"`
	Value *[]*model.Artifact `json:"value"`
}

type apiErrorResponse struct {
	Message string `json:"message"`
	TypeKey string `json:"typeKey"`
}

type PipelinesService struct {
	httpClient *http.Client
}

func NewPipelinesService(httpClient *http.Client) interfaces.PipelinesService {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &PipelinesService{
		httpClient: httpClient,
	}
}

// NewHTTPClient returns an anonymous client, or one sending the token as a
// bearer credential when token is not empty. Neither sets a timeout; requests
// are bounded only by ctx and the transport defaults.
func NewHTTPClient(ctx context.Context, token string) *http.Client {
	if token == "" {
		return &http.Client{}
	}

	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	return oauth2.NewClient(ctx, ts)
}

func (s *PipelinesService) ListRuns(ctx context.Context, pipeline model.Pipeline) ([]*model.RunSummary, error) {
	url := pipeline.RunsURL()

	var resp runListResponse
	if err := s.getJSON(ctx, url, &resp); err != nil {
		return nil, err
	}

	if resp.Value == nil {
		return nil, domain.ErrMalformedResponse.Wrap(goerr.New("run listing lacks value", goerr.V("url", url)))
	}
	runs := *resp.Value

	for i, run := range runs {
		if run == nil || run.URL == "" || run.ID == 0 {
			return nil, domain.ErrMalformedResponse.Wrap(goerr.New("run summary lacks id or url",
				goerr.V("url", url),
				goerr.V("index", i),
			))
		}
	}

	ctxlog.From(ctx).Debug("fetched run listing",
		slog.String("pipeline", pipeline.FullName()),
		slog.Int("count", len(runs)),
	)

	return runs, nil
}

func (s *PipelinesService) GetRun(ctx context.Context, runURL string) (*model.RunDetail, error) {
	var run model.RunDetail
	if err := s.getJSON(ctx, runURL, &run); err != nil {
		return nil, err
	}

	if run.ID == 0 {
		return nil, domain.ErrMalformedResponse.Wrap(goerr.New("run lacks id", goerr.V("url", runURL)))
	}
	if _, ok := run.Resources.Repositories[model.SelfRepository]; !ok {
		return nil, domain.ErrMalformedResponse.Wrap(goerr.New("run lacks self repository resource",
			goerr.V("url", runURL),
			goerr.V("id", run.ID),
		))
	}

	return &run, nil
}

func (s *PipelinesService) ListArtifacts(ctx context.Context, pipeline model.Pipeline, runID int64) ([]*model.Artifact, error) {
	url := pipeline.ArtifactsURL(runID)

	var resp artifactListResponse
	if err := s.getJSON(ctx, url, &resp); err != nil {
		return nil, err
	}
	if resp.Value == nil {
		return nil, domain.ErrMalformedResponse.Wrap(goerr.New("artifact listing lacks value", goerr.V("url", url)))
	}

	return *resp.Value, nil
}

func (s *PipelinesService) getJSON(ctx context.Context, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return domain.ErrAPIRequest.Wrap(err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return domain.ErrAPIRequest.Wrap(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return domain.ErrAPIRequest.Wrap(err)
	}

	ctxlog.From(ctx).Debug("API response",
		slog.String("url", url),
		slog.Int("status", resp.StatusCode),
		slog.Int("size", len(body)),
	)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return statusError(url, resp.StatusCode, body)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return domain.ErrMalformedResponse.Wrap(goerr.Wrap(err, "failed to decode response", goerr.V("url", url)))
	}

	return nil
}

func statusError(url string, status int, body []byte) error {
	// Error bodies are not always JSON; an undecodable body just leaves message empty.
	var apiErr apiErrorResponse
	_ = json.Unmarshal(body, &apiErr)

	cause := goerr.New(fmt.Sprintf("GET %s returned %d", url, status),
		goerr.V("status", status),
		goerr.V("message", apiErr.Message),
		goerr.V("type_key", apiErr.TypeKey),
	)

	if isSerializationDefect(status, apiErr.Message) {
		return domain.ErrSerializationDefect.Wrap(cause)
	}
	return domain.ErrUnexpectedStatus.Wrap(cause)
}

// The service exposes no error code for this failure, so the message text is
// the only signature available.
func isSerializationDefect(status int, message string) bool {
	return status == http.StatusInternalServerError && strings.Contains(message, containerResourceDefect)
}
