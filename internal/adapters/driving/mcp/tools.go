package mcp

import (
	"context"
	"errors"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/foundry-cli/internal/core/domain"
)

// ListAgentsInput is the (empty) input schema for agents_list_agents.
type ListAgentsInput struct{}

// InvokeAgentInput is the input schema for agents_invoke_agent.
type InvokeAgentInput struct {
	AgentID     string `json:"agent_id" jsonschema:"the ID of the agent or workflow to invoke (from agents_list_agents)"`
	Task        string `json:"task" jsonschema:"the task description or question to send to the agent"`
	FileContext string `json:"file_context,omitempty" jsonschema:"optional additional text or file content to include as context"`
}

// InvocationInput is the input schema for the invocation follow-up tools.
type InvocationInput struct {
	InvocationID string `json:"invocation_id" jsonschema:"the invocation ID returned by agents_invoke_agent"`
}

// SearchInput is the input schema for search_vector_db.
type SearchInput struct {
	Query string `json:"query" jsonschema:"natural language query or reference text to search for"`
	TopK  int    `json:"top_k,omitempty" jsonschema:"number of results to return (default 5)"`
}

// AddDocumentInput is the input schema for search_add_to_vector_db.
type AddDocumentInput struct {
	Title        string `json:"title" jsonschema:"document title"`
	Content      string `json:"content" jsonschema:"main content text to index and embed"`
	EntryType    string `json:"entry_type,omitempty" jsonschema:"entry type: workshop, meeting, blog, or repo (default meeting)"`
	CustomerName string `json:"customer_name,omitempty" jsonschema:"name of the customer or organization"`
	ShortSummary string `json:"short_summary,omitempty" jsonschema:"brief summary of the content"`
	ProjectName  string `json:"project_name,omitempty" jsonschema:"name of the associated project"`
	Tags         string `json:"tags,omitempty" jsonschema:"comma-separated list of technology/product tags"`
	ReferenceURL string `json:"reference_url,omitempty" jsonschema:"external URL reference for the source"`
	Architecture string `json:"architecture,omitempty" jsonschema:"architecture diagram encoded as JSON or XML"`
}

// CreateIndexInput is the (empty) input schema for index_create_project_log_index.
type CreateIndexInput struct{}

// IngestInput is the input schema for index_ingest_project_log.
type IngestInput struct {
	Title        string `json:"title" jsonschema:"title of the project log entry"`
	EntryType    string `json:"entry_type" jsonschema:"entry type: workshop, meeting, blog, or repo"`
	CustomerName string `json:"customer_name" jsonschema:"customer or organization name"`
	ShortSummary string `json:"short_summary" jsonschema:"brief summary (1-2 sentences)"`
	Context      string `json:"context" jsonschema:"full context or body text, vectorized for search"`
	ProjectName  string `json:"project_name,omitempty" jsonschema:"project name for filtering/faceting"`
	Tags         string `json:"tags,omitempty" jsonschema:"comma-separated technology/product tags"`
	ReferenceURL string `json:"reference_url,omitempty" jsonschema:"external source URL"`
	Architecture string `json:"architecture,omitempty" jsonschema:"architecture diagram as JSON or XML string"`
}

// RunWorkflowInput is the input schema for workflows_run_project_log_workflow.
type RunWorkflowInput struct {
	StoryURL    string `json:"story_url" jsonschema:"public URL of the Microsoft customer story to ingest"`
	ProjectName string `json:"project_name,omitempty" jsonschema:"optional project name to tag the entry with"`
}

// ListSamplesInput is the (empty) input schema for workflows_list_sample_workflows.
type ListSamplesInput struct{}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name: "agents_list_agents",
		Description: "List all available agents and workflows in the Azure AI Foundry " +
			"project, including their IDs, models, descriptions, and tools.",
	}, s.handleListAgents)

	mcp.AddTool(s.server, &mcp.Tool{
		Name: "agents_invoke_agent",
		Description: "Invoke an agent or workflow with a task and optional context. " +
			"Returns an invocation ID for status and result follow-up.",
	}, s.handleInvokeAgent)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "agents_get_invocation_status",
		Description: "Check the status of an agent or workflow invocation.",
	}, s.handleInvocationStatus)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "agents_get_invocation_result",
		Description: "Retrieve the results from a completed agent or workflow invocation.",
	}, s.handleInvocationResult)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "search_vector_db",
		Description: "Search the project vector database using semantic similarity.",
	}, s.handleSearch)

	mcp.AddTool(s.server, &mcp.Tool{
		Name: "search_add_to_vector_db",
		Description: "Add a new document to the project vector database with an " +
			"auto-generated embedding.",
	}, s.handleAddDocument)

	mcp.AddTool(s.server, &mcp.Tool{
		Name: "index_create_project_log_index",
		Description: "Create the project log search index in Azure AI Search. " +
			"Safe to call if the index already exists.",
	}, s.handleCreateIndex)

	mcp.AddTool(s.server, &mcp.Tool{
		Name: "index_ingest_project_log",
		Description: "Ingest a project log entry into the Azure AI Search index with " +
			"vector embeddings. Creates the index automatically if it does not exist.",
	}, s.handleIngest)

	mcp.AddTool(s.server, &mcp.Tool{
		Name: "workflows_run_project_log_workflow",
		Description: "Run the full project-log ingestion workflow for a Microsoft " +
			"customer story: fetch the page, extract metadata, generate an " +
			"architecture diagram, and store the entry in the vector index.",
	}, s.handleRunWorkflow)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "workflows_list_sample_workflows",
		Description: "List the available sample workflow and agent definitions.",
	}, s.handleListSamples)
}

// textResult wraps tool output in a single text content block.
func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
	}
}

// renderError turns a service error into tool text. Configuration errors
// keep their operator-facing message; malformed invocation IDs are shown
// verbatim; everything else gets the tool-specific wrap.
func renderError(wrap string, err error) string {
	if errors.Is(err, domain.ErrNotConfigured) {
		return "Error: " + err.Error()
	}
	var invalidID *domain.InvalidInvocationIDError
	if errors.As(err, &invalidID) {
		return invalidID.Error()
	}
	return wrap + ": " + err.Error()
}

// splitTags splits a comma-separated tag string, trimming each item.
func splitTags(tags string) []string {
	if tags == "" {
		return nil
	}
	parts := strings.Split(tags, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

func (s *Server) handleListAgents(
	ctx context.Context, _ *mcp.CallToolRequest, _ ListAgentsInput,
) (*mcp.CallToolResult, any, error) {
	agents, err := s.ports.Agents.List(ctx)
	if err != nil {
		return textResult(renderError("Error listing agents", err)), nil, nil
	}
	return textResult(formatAgentList(agents)), nil, nil
}

func (s *Server) handleInvokeAgent(
	ctx context.Context, _ *mcp.CallToolRequest, input InvokeAgentInput,
) (*mcp.CallToolResult, any, error) {
	handle, err := s.ports.Agents.Invoke(ctx, input.AgentID, input.Task, input.FileContext)
	if err != nil {
		return textResult(renderError(
			"Error invoking agent '"+input.AgentID+"'", err)), nil, nil
	}
	return textResult(formatInvocationStarted(handle)), nil, nil
}

func (s *Server) handleInvocationStatus(
	ctx context.Context, _ *mcp.CallToolRequest, input InvocationInput,
) (*mcp.CallToolResult, any, error) {
	run, err := s.ports.Agents.Status(ctx, input.InvocationID)
	if err != nil {
		return textResult(renderError(
			"Error getting status for '"+input.InvocationID+"'", err)), nil, nil
	}
	return textResult(formatInvocationStatus(input.InvocationID, run)), nil, nil
}

func (s *Server) handleInvocationResult(
	ctx context.Context, _ *mcp.CallToolRequest, input InvocationInput,
) (*mcp.CallToolResult, any, error) {
	run, messages, err := s.ports.Agents.Result(ctx, input.InvocationID)
	if err != nil {
		return textResult(renderError(
			"Error retrieving result for '"+input.InvocationID+"'", err)), nil, nil
	}
	return textResult(formatInvocationResult(input.InvocationID, run, messages)), nil, nil
}

func (s *Server) handleSearch(
	ctx context.Context, _ *mcp.CallToolRequest, input SearchInput,
) (*mcp.CallToolResult, any, error) {
	hits, err := s.ports.Search.Search(ctx, input.Query, input.TopK)
	if err != nil {
		return textResult(renderError("Error searching vector database", err)), nil, nil
	}
	return textResult(formatSearchResults(input.Query, hits)), nil, nil
}

func (s *Server) handleAddDocument(
	ctx context.Context, _ *mcp.CallToolRequest, input AddDocumentInput,
) (*mcp.CallToolResult, any, error) {
	entry := domain.NewEntry{
		Title:        input.Title,
		Type:         domain.EntryType(input.EntryType),
		CustomerName: input.CustomerName,
		ShortSummary: input.ShortSummary,
		Context:      input.Content,
		ProjectName:  input.ProjectName,
		Tags:         splitTags(input.Tags),
		ReferenceURL: input.ReferenceURL,
		Architecture: input.Architecture,
	}

	doc, err := s.ports.Search.Add(ctx, entry)
	if err != nil {
		if errors.Is(err, domain.ErrUploadFailed) {
			return textResult("Failed to add document to vector database."), nil, nil
		}
		return textResult(renderError("Error adding to vector database", err)), nil, nil
	}
	return textResult(
		"Document added to vector database.\n" +
			"- **ID**: `" + doc.ID + "`\n" +
			"- **Title**: " + doc.Title + "\n" +
			"- **Type**: " + doc.Type.String(),
	), nil, nil
}

func (s *Server) handleCreateIndex(
	ctx context.Context, _ *mcp.CallToolRequest, _ CreateIndexInput,
) (*mcp.CallToolResult, any, error) {
	created, err := s.ports.Index.Create(ctx)
	if err != nil {
		return textResult(renderError("Error creating index", err)), nil, nil
	}

	name := s.ports.Index.IndexName()
	if !created {
		return textResult("Index '" + name + "' already exists."), nil, nil
	}
	return textResult(
		"Index '" + name + "' created successfully.\n" +
			"Fields: " + strings.Join(domain.ProjectLogFieldNames, ", "),
	), nil, nil
}

func (s *Server) handleIngest(
	ctx context.Context, _ *mcp.CallToolRequest, input IngestInput,
) (*mcp.CallToolResult, any, error) {
	entry := domain.NewEntry{
		Title:        input.Title,
		Type:         domain.EntryType(input.EntryType),
		CustomerName: input.CustomerName,
		ShortSummary: input.ShortSummary,
		Context:      input.Context,
		ProjectName:  input.ProjectName,
		Tags:         splitTags(input.Tags),
		ReferenceURL: input.ReferenceURL,
		Architecture: input.Architecture,
	}

	doc, err := s.ports.Index.Ingest(ctx, entry)
	if err != nil {
		if errors.Is(err, domain.ErrUploadFailed) {
			return textResult("Failed to ingest project log document."), nil, nil
		}
		return textResult(renderError("Error ingesting project log", err)), nil, nil
	}
	return textResult(
		"Project log ingested successfully.\n" +
			"- **ID**: `" + doc.ID + "`\n" +
			"- **Title**: " + doc.Title + "\n" +
			"- **Type**: " + doc.Type.String() + "\n" +
			"- **Customer**: " + doc.CustomerName,
	), nil, nil
}

func (s *Server) handleRunWorkflow(
	ctx context.Context, _ *mcp.CallToolRequest, input RunWorkflowInput,
) (*mcp.CallToolResult, any, error) {
	report, err := s.ports.Workflow.RunProjectLog(ctx, input.StoryURL, input.ProjectName)
	if err != nil {
		return nil, nil, err
	}
	return textResult(report), nil, nil
}

func (s *Server) handleListSamples(
	_ context.Context, _ *mcp.CallToolRequest, _ ListSamplesInput,
) (*mcp.CallToolResult, any, error) {
	templates, err := s.ports.Workflow.ListSamples()
	if err != nil {
		return textResult(renderError("Error listing sample workflows", err)), nil, nil
	}
	return textResult(formatSampleList(templates)), nil, nil
}
