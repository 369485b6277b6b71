package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/custodia-labs/foundry-cli/internal/core/domain"
	"github.com/custodia-labs/foundry-cli/internal/core/ports/driven"
	"github.com/custodia-labs/foundry-cli/internal/core/ports/driving"
	"github.com/custodia-labs/foundry-cli/internal/logger"
)

// Ensure WorkflowService implements the interface.
var _ driving.WorkflowService = (*WorkflowService)(nil)

// maxReportComponents caps how many component names the architecture step
// lists in the progress report.
const maxReportComponents = 6

// WorkflowService runs the customer-story ingestion pipeline and lists the
// bundled sample definitions.
//
// The pipeline is four strictly ordered steps: fetch the story page,
// extract metadata with CaseStudyAgent, generate an architecture diagram
// with ArchitectureAgent, and upload the combined document to the
// project-log index. Only the architecture step is recoverable - its
// failure stores an {"error": …} placeholder and the pipeline continues.
type WorkflowService struct {
	fetcher   driven.PageFetcher
	invoker   AgentInvoker
	index     driving.IndexService
	templates driven.TemplateStore
}

// NewWorkflowService creates a workflow service.
func NewWorkflowService(
	fetcher driven.PageFetcher,
	invoker AgentInvoker,
	index driving.IndexService,
	templates driven.TemplateStore,
) *WorkflowService {
	return &WorkflowService{
		fetcher:   fetcher,
		invoker:   invoker,
		index:     index,
		templates: templates,
	}
}

// RunProjectLog executes the pipeline and returns a Markdown progress
// report. Stage failures are rendered into the report rather than returned
// as errors; the error return is reserved for context cancellation.
func (s *WorkflowService) RunProjectLog(
	ctx context.Context, storyURL, projectName string,
) (string, error) {
	lines := []string{"## Project-Log Workflow\n"}

	// Step 1: fetch the customer story page.
	lines = append(lines, "### Step 1: Fetching customer story page…\n")
	pageText, err := s.fetcher.FetchPageText(ctx, storyURL)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil && errors.Is(err, ctxErr) {
			return "", err
		}
		logger.Warn("Page fetch failed: %v", err)
		return strings.Join(lines, "\n") +
			fmt.Sprintf("\n❌ Failed to fetch `%s`: %v", storyURL, err), nil
	}
	lines = append(lines,
		fmt.Sprintf("Fetched %s characters from `%s`.\n", formatThousands(len(pageText)), storyURL))

	// Step 2: CaseStudyAgent extracts structured metadata.
	lines = append(lines, "### Step 2: CaseStudyAgent – extracting metadata…\n")
	caseStudy, err := runCaseStudyStage(ctx, s.invoker, pageText, storyURL)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil && errors.Is(err, ctxErr) {
			return "", err
		}
		logger.Warn("CaseStudyAgent failed: %v", err)
		return strings.Join(lines, "\n") +
			fmt.Sprintf("\n❌ CaseStudyAgent failed: %v", err), nil
	}
	lines = append(lines,
		fmt.Sprintf("- **Title**: %s", caseStudy.Title),
		fmt.Sprintf("- **Customer**: %s", caseStudy.CustomerName),
		fmt.Sprintf("- **Tags**: %s", strings.Join(caseStudy.Tags, ", ")),
		fmt.Sprintf("- **Summary**: %s\n", caseStudy.ShortSummary),
	)

	// Step 3: ArchitectureAgent generates the diagram JSON. Recoverable:
	// the rest of the document is still worth storing.
	lines = append(lines, "### Step 3: ArchitectureAgent – generating architecture diagram…\n")
	architecture, err := runArchitectureStage(ctx, s.invoker, caseStudy)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil && errors.Is(err, ctxErr) {
			return "", err
		}
		logger.Warn("ArchitectureAgent failed: %v", err)
		architecture = domain.ErrorArchitectureJSON(err)
		lines = append(lines,
			fmt.Sprintf("⚠️ Architecture generation failed: %v. Storing empty diagram.\n", err))
	} else {
		components, patterns := domain.ArchitectureSummary(architecture)
		shown := components
		if len(shown) > maxReportComponents {
			shown = shown[:maxReportComponents]
		}
		lines = append(lines,
			fmt.Sprintf("- **Components** (%d): %s", len(components), strings.Join(shown, ", ")),
			fmt.Sprintf("- **Patterns**: %s\n", strings.Join(patterns, ", ")),
		)
	}

	// Step 4: ingest the combined entry.
	lines = append(lines, "### Step 4: Ingesting into project-log vector index…\n")
	doc, err := s.index.Ingest(ctx, domain.NewEntry{
		Title:        caseStudy.Title,
		Type:         domain.EntryTypeBlog,
		CustomerName: caseStudy.CustomerName,
		ShortSummary: caseStudy.ShortSummary,
		Context:      caseStudy.Context,
		ProjectName:  projectName,
		Tags:         caseStudy.Tags,
		ReferenceURL: caseStudy.ReferenceURL,
		Architecture: architecture,
	})
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil && errors.Is(err, ctxErr) {
			return "", err
		}
		logger.Warn("Ingestion failed: %v", err)
		return strings.Join(lines, "\n") +
			fmt.Sprintf("\n❌ Ingestion failed: %v", err), nil
	}

	lines = append(lines,
		fmt.Sprintf("Project log ingested successfully.\n- **ID**: `%s`\n- **Title**: %s\n- **Customer**: %s",
			doc.ID, doc.Title, doc.CustomerName),
		"\n✅ Project-log workflow completed successfully.",
	)
	return strings.Join(lines, "\n"), nil
}

// ListSamples returns the bundled agent and workflow templates.
func (s *WorkflowService) ListSamples() ([]domain.WorkflowTemplate, error) {
	if s.templates == nil {
		return nil, nil
	}
	return s.templates.List()
}

// formatThousands renders n with comma separators, e.g. 12000 → "12,000".
func formatThousands(n int) string {
	str := strconv.Itoa(n)
	if n < 0 {
		return "-" + formatThousands(-n)
	}
	if len(str) <= 3 {
		return str
	}
	var b strings.Builder
	lead := len(str) % 3
	if lead > 0 {
		b.WriteString(str[:lead])
	}
	for i := lead; i < len(str); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(str[i : i+3])
	}
	return b.String()
}
