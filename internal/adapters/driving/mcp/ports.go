package mcp

import (
	"github.com/custodia-labs/foundry-cli/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
//
// Every service is required: unconfigured backends degrade per-operation
// inside the services, not by leaving a port nil.
type Ports struct {
	// Agents lists and invokes Foundry agents.
	Agents driving.AgentService

	// Search provides vector search and direct document insertion.
	Search driving.SearchService

	// Index manages the project-log index and ingestion.
	Index driving.IndexService

	// Workflow runs the ingestion pipeline and lists bundled templates.
	Workflow driving.WorkflowService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Agents == nil {
		return ErrMissingAgentService
	}
	if p.Search == nil {
		return ErrMissingSearchService
	}
	if p.Index == nil {
		return ErrMissingIndexService
	}
	if p.Workflow == nil {
		return ErrMissingWorkflowService
	}
	return nil
}
