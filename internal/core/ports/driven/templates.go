package driven

import "github.com/custodia-labs/foundry-cli/internal/core/domain"

// TemplateStore lists the agent and workflow definitions bundled with the
// binary. Listing is infallible at runtime in the embedded implementation;
// the error return covers stores that read from disk.
type TemplateStore interface {
	// List returns every bundled template, sorted by file name.
	List() ([]domain.WorkflowTemplate, error)
}
