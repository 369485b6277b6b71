package cli

import (
	"context"
	"testing"

	"github.com/custodia-labs/foundry-cli/internal/core/domain"
)

// Hand-written mocks for the driving services the commands call.

type stubDeployService struct {
	result domain.DeployResult
	err    error

	deployed domain.AgentDefinition
}

func (s *stubDeployService) Deploy(
	_ context.Context, def domain.AgentDefinition,
) (domain.DeployResult, error) {
	s.deployed = def
	return s.result, s.err
}

type stubWorkflowService struct {
	report string
	err    error

	ranURL     string
	ranProject string
}

func (s *stubWorkflowService) RunProjectLog(
	_ context.Context, storyURL, projectName string,
) (string, error) {
	s.ranURL = storyURL
	s.ranProject = projectName
	return s.report, s.err
}

func (s *stubWorkflowService) ListSamples() ([]domain.WorkflowTemplate, error) {
	return nil, nil
}

// withApp swaps the app builder for the duration of a test.
func withApp(t *testing.T, a *app) {
	t.Helper()
	original := newApp
	newApp = func() (*app, error) { return a, nil }
	t.Cleanup(func() { newApp = original })
}
