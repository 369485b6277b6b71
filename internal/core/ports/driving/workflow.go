package driving

import (
	"context"

	"github.com/custodia-labs/foundry-cli/internal/core/domain"
)

// WorkflowService runs the built-in ingestion workflows and lists the
// bundled sample definitions.
type WorkflowService interface {
	// RunProjectLog executes the customer-story ingestion pipeline and
	// returns a Markdown progress report. Stage failures are reported in
	// the Markdown, not as errors; the error return is reserved for
	// context cancellation.
	RunProjectLog(ctx context.Context, storyURL, projectName string) (string, error)

	// ListSamples returns the bundled agent and workflow templates.
	ListSamples() ([]domain.WorkflowTemplate, error)
}
