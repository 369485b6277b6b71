package mcp

import (
	"context"

	"github.com/custodia-labs/foundry-cli/internal/core/domain"
)

// Hand-written mocks for the driving ports.

type mockAgentService struct {
	agents    []domain.AgentInfo
	listErr   error
	handle    domain.RunHandle
	invokeErr error
	run       domain.Run
	statusErr error
	messages  []domain.ThreadMessage
	resultErr error

	invokedAgentID string
	invokedTask    string
	invokedContext string
}

func (m *mockAgentService) List(context.Context) ([]domain.AgentInfo, error) {
	return m.agents, m.listErr
}

func (m *mockAgentService) Invoke(
	_ context.Context, agentID, task, fileContext string,
) (domain.RunHandle, error) {
	m.invokedAgentID = agentID
	m.invokedTask = task
	m.invokedContext = fileContext
	return m.handle, m.invokeErr
}

func (m *mockAgentService) Status(_ context.Context, invocationID string) (domain.Run, error) {
	if _, _, err := domain.ParseInvocationID(invocationID); err != nil {
		return domain.Run{}, err
	}
	return m.run, m.statusErr
}

func (m *mockAgentService) Result(
	_ context.Context, invocationID string,
) (domain.Run, []domain.ThreadMessage, error) {
	if _, _, err := domain.ParseInvocationID(invocationID); err != nil {
		return domain.Run{}, nil, err
	}
	return m.run, m.messages, m.resultErr
}

type mockSearchService struct {
	hits      []domain.SearchHit
	searchErr error
	doc       domain.ProjectLog
	addErr    error

	searchedQuery string
	searchedTopK  int
	addedEntry    domain.NewEntry
}

func (m *mockSearchService) Search(
	_ context.Context, query string, topK int,
) ([]domain.SearchHit, error) {
	m.searchedQuery = query
	m.searchedTopK = topK
	return m.hits, m.searchErr
}

func (m *mockSearchService) Add(_ context.Context, entry domain.NewEntry) (domain.ProjectLog, error) {
	m.addedEntry = entry
	return m.doc, m.addErr
}

type mockIndexService struct {
	created   bool
	createErr error
	doc       domain.ProjectLog
	ingestErr error
	name      string

	ingestedEntry domain.NewEntry
}

func (m *mockIndexService) Create(context.Context) (bool, error) {
	return m.created, m.createErr
}

func (m *mockIndexService) Ingest(_ context.Context, entry domain.NewEntry) (domain.ProjectLog, error) {
	m.ingestedEntry = entry
	return m.doc, m.ingestErr
}

func (m *mockIndexService) IndexName() string {
	if m.name == "" {
		return domain.DefaultSearchIndexName
	}
	return m.name
}

type mockWorkflowService struct {
	report    string
	runErr    error
	templates []domain.WorkflowTemplate
	listErr   error

	ranURL     string
	ranProject string
}

func (m *mockWorkflowService) RunProjectLog(
	_ context.Context, storyURL, projectName string,
) (string, error) {
	m.ranURL = storyURL
	m.ranProject = projectName
	return m.report, m.runErr
}

func (m *mockWorkflowService) ListSamples() ([]domain.WorkflowTemplate, error) {
	return m.templates, m.listErr
}

// sampleTemplates mirrors the bundled template set.
func sampleTemplates() []domain.WorkflowTemplate {
	return []domain.WorkflowTemplate{
		{
			FileName:    "ArchitectureAgent.yaml",
			Kind:        domain.TemplateKindPrompt,
			Name:        domain.ArchitectureAgentName,
			Description: "Generates architecture JSON.",
			Body:        "kind: Prompt\nname: ArchitectureAgent\n",
		},
		{
			FileName:    "CaseStudyAgent.yaml",
			Kind:        domain.TemplateKindPrompt,
			Name:        domain.CaseStudyAgentName,
			Description: "Extracts story metadata.",
			Body:        "kind: Prompt\nname: CaseStudyAgent\n",
		},
		{
			FileName:    "project_log_workflow.yaml",
			Kind:        domain.TemplateKindWorkflow,
			Name:        "project_log_workflow",
			Description: "Ingestion pipeline.",
			Body:        "kind: Workflow\nname: project_log_workflow\n",
		},
	}
}

func testPorts() (*Ports, *mockAgentService, *mockSearchService, *mockIndexService, *mockWorkflowService) {
	agents := &mockAgentService{}
	search := &mockSearchService{}
	index := &mockIndexService{}
	workflow := &mockWorkflowService{templates: sampleTemplates()}
	ports := &Ports{Agents: agents, Search: search, Index: index, Workflow: workflow}
	return ports, agents, search, index, workflow
}

func newTestServer(ports *Ports) (*Server, error) {
	return NewServer(ports)
}
