package services

import (
	"context"

	"github.com/custodia-labs/foundry-cli/internal/core/domain"
)

// mockAgentPlatform is a scriptable driven.AgentPlatform.
type mockAgentPlatform struct {
	agents    []domain.AgentInfo
	listErr   error
	listCalls int

	created   domain.AgentInfo
	createErr error
	updated   domain.AgentInfo
	updateErr error

	handle    domain.RunHandle
	createRun error

	// runStatuses is consumed one per GetRun call; the last entry repeats.
	runStatuses []domain.RunStatus
	lastError   *domain.RunError
	getRunErr   error
	getRunCalls int

	messages     []domain.ThreadMessage
	listMsgErr   error
	listMsgCalls int

	createdWith struct {
		model string
		def   domain.AgentDefinition
	}
	updatedWith struct {
		agentID string
		model   string
		def     domain.AgentDefinition
	}
	runUserMessage string
}

func (m *mockAgentPlatform) ListAgents(_ context.Context) ([]domain.AgentInfo, error) {
	m.listCalls++
	return m.agents, m.listErr
}

func (m *mockAgentPlatform) CreateAgent(
	_ context.Context, model string, def domain.AgentDefinition,
) (domain.AgentInfo, error) {
	m.createdWith.model = model
	m.createdWith.def = def
	return m.created, m.createErr
}

func (m *mockAgentPlatform) UpdateAgent(
	_ context.Context, agentID, model string, def domain.AgentDefinition,
) (domain.AgentInfo, error) {
	m.updatedWith.agentID = agentID
	m.updatedWith.model = model
	m.updatedWith.def = def
	return m.updated, m.updateErr
}

func (m *mockAgentPlatform) CreateThreadAndRun(
	_ context.Context, _, userMessage string,
) (domain.RunHandle, error) {
	m.runUserMessage = userMessage
	return m.handle, m.createRun
}

func (m *mockAgentPlatform) GetRun(_ context.Context, threadID, runID string) (domain.Run, error) {
	if m.getRunErr != nil {
		return domain.Run{}, m.getRunErr
	}
	idx := m.getRunCalls
	m.getRunCalls++
	if idx >= len(m.runStatuses) {
		idx = len(m.runStatuses) - 1
	}
	run := domain.Run{
		ID:       runID,
		ThreadID: threadID,
		Status:   m.runStatuses[idx],
	}
	if run.Status == domain.RunStatusFailed {
		run.LastError = m.lastError
	}
	return run, nil
}

func (m *mockAgentPlatform) ListMessages(_ context.Context, _ string) ([]domain.ThreadMessage, error) {
	m.listMsgCalls++
	return m.messages, m.listMsgErr
}

// mockChatCompleter is a scriptable driven.ChatCompleter.
type mockChatCompleter struct {
	reply string
	err   error

	calls       int
	system      string
	user        string
	temperature float32
}

func (m *mockChatCompleter) CompleteJSON(
	_ context.Context, system, user string, temperature float32,
) (string, error) {
	m.calls++
	m.system = system
	m.user = user
	m.temperature = temperature
	return m.reply, m.err
}

// mockEmbedder returns a fixed-length zero vector.
type mockEmbedder struct {
	dimensions int
	err        error
	lastText   string
}

func (m *mockEmbedder) Embed(_ context.Context, text string) ([]float32, error) {
	if m.err != nil {
		return nil, m.err
	}
	m.lastText = text
	return make([]float32, m.dimensions), nil
}

func (m *mockEmbedder) Dimensions() int { return m.dimensions }

// mockSearchIndex records uploads and serves canned hits.
type mockSearchIndex struct {
	name        string
	created     bool
	ensureErr   error
	ensureCalls int

	uploadErr   error
	uploadCalls int
	uploaded    []domain.ProjectLog

	hits      []domain.SearchHit
	searchErr error
	lastTopK  int
}

func (m *mockSearchIndex) EnsureIndex(_ context.Context) (bool, error) {
	m.ensureCalls++
	return m.created, m.ensureErr
}

func (m *mockSearchIndex) Upload(_ context.Context, doc domain.ProjectLog) error {
	m.uploadCalls++
	if m.uploadErr != nil {
		return m.uploadErr
	}
	m.uploaded = append(m.uploaded, doc)
	return nil
}

func (m *mockSearchIndex) Search(
	_ context.Context, _ []float32, topK int,
) ([]domain.SearchHit, error) {
	m.lastTopK = topK
	return m.hits, m.searchErr
}

func (m *mockSearchIndex) IndexName() string {
	if m.name == "" {
		return domain.DefaultSearchIndexName
	}
	return m.name
}

// mockFetcher is a scriptable driven.PageFetcher.
type mockFetcher struct {
	text  string
	err   error
	calls int
}

func (m *mockFetcher) FetchPageText(_ context.Context, _ string) (string, error) {
	m.calls++
	return m.text, m.err
}

// mockInvoker replies per agent name.
type mockInvoker struct {
	replies map[string]string
	errs    map[string]error
	calls   map[string]int
	userMsg map[string]string
}

func newMockInvoker() *mockInvoker {
	return &mockInvoker{
		replies: map[string]string{},
		errs:    map[string]error{},
		calls:   map[string]int{},
		userMsg: map[string]string{},
	}
}

func (m *mockInvoker) Invoke(
	_ context.Context, def domain.AgentDefinition, userMessage string,
) (string, error) {
	m.calls[def.Name]++
	m.userMsg[def.Name] = userMessage
	if err := m.errs[def.Name]; err != nil {
		return "", err
	}
	return m.replies[def.Name], nil
}

// mockTemplateStore serves canned templates.
type mockTemplateStore struct {
	templates []domain.WorkflowTemplate
	err       error
}

func (m *mockTemplateStore) List() ([]domain.WorkflowTemplate, error) {
	return m.templates, m.err
}
