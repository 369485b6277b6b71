// Package mcp provides the MCP (Model Context Protocol) server adapter.
// It exposes the Foundry agent, vector search, index, and workflow
// operations as tools an AI assistant can call.
package mcp

import "errors"

// Errors returned by Ports.Validate for missing services.
var (
	ErrMissingAgentService    = errors.New("mcp: agent service is required")
	ErrMissingSearchService   = errors.New("mcp: search service is required")
	ErrMissingIndexService    = errors.New("mcp: index service is required")
	ErrMissingWorkflowService = errors.New("mcp: workflow service is required")
)
