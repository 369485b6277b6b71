package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/custodia-labs/foundry-cli/internal/core/domain"
)

// runCaseStudyStage invokes CaseStudyAgent on the extracted page text and
// parses its six-field JSON reply. storyURL doubles as the reference_url
// fallback when the agent returns none.
func runCaseStudyStage(
	ctx context.Context, invoker AgentInvoker, pageText, storyURL string,
) (domain.CaseStudy, error) {
	userMessage := fmt.Sprintf("Reference URL: %s\n\nPage content:\n%s", storyURL, pageText)
	reply, err := invoker.Invoke(ctx, domain.CaseStudyAgent(), userMessage)
	if err != nil {
		return domain.CaseStudy{}, err
	}
	return domain.ParseCaseStudy(reply, storyURL)
}

// runArchitectureStage invokes ArchitectureAgent on the case-study metadata
// and returns the reply verbatim after confirming it parses as a JSON
// object. The original string is returned so the stored value is byte-exact.
func runArchitectureStage(
	ctx context.Context, invoker AgentInvoker, cs domain.CaseStudy,
) (string, error) {
	userMessage := fmt.Sprintf(
		"Title: %s\nCustomer: %s\nTechnologies: %s\n\nContext:\n%s",
		cs.Title, cs.CustomerName, strings.Join(cs.Tags, ", "), cs.Context,
	)
	reply, err := invoker.Invoke(ctx, domain.ArchitectureAgent(), userMessage)
	if err != nil {
		return "", err
	}
	return domain.ValidateArchitectureJSON(reply)
}
