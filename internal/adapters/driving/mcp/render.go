package mcp

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/custodia-labs/foundry-cli/internal/core/domain"
)

// Markdown rendering for tool output. Every tool answers with a text block;
// the formats here are part of the server's contract with its clients.

func formatAgentList(agents []domain.AgentInfo) string {
	if len(agents) == 0 {
		return "No agents are currently available in the project."
	}

	lines := []string{"## Available Agents and Workflows\n"}
	for _, agent := range agents {
		name := agent.Name
		if name == "" {
			name = "Unnamed Agent"
		}
		lines = append(lines, "### "+name)
		lines = append(lines, "- **ID**: `"+agent.ID+"`")

		model := agent.Model
		if model == "" {
			model = "N/A"
		}
		lines = append(lines, "- **Model**: "+model)

		if agent.Description != "" {
			lines = append(lines, "- **Description**: "+agent.Description)
		}
		if len(agent.Tools) > 0 {
			lines = append(lines, "- **Tools**: "+strings.Join(agent.Tools, ", "))
		}
		if len(agent.Metadata) > 0 {
			if metadata, err := json.Marshal(agent.Metadata); err == nil {
				lines = append(lines, "- **Metadata**: "+string(metadata))
			}
		}
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}

func formatInvocationStarted(handle domain.RunHandle) string {
	invocationID := domain.NewInvocationID(handle.ThreadID, handle.RunID)
	return "Agent invocation started.\n" +
		"- **Invocation ID**: `" + invocationID + "`\n" +
		"- **Status**: " + handle.Status.String() + "\n\n" +
		"Use `agents_get_invocation_status` to check progress and " +
		"`agents_get_invocation_result` to retrieve results."
}

func formatInvocationStatus(invocationID string, run domain.Run) string {
	lines := []string{
		"## Invocation Status\n",
		"- **Invocation ID**: `" + invocationID + "`",
		"- **Status**: " + run.Status.String(),
	}
	if !run.StartedAt.IsZero() {
		lines = append(lines, "- **Started At**: "+run.StartedAt.Format(time.RFC3339))
	}
	if !run.CompletedAt.IsZero() {
		lines = append(lines, "- **Completed At**: "+run.CompletedAt.Format(time.RFC3339))
	}
	if run.LastError != nil {
		lines = append(lines, "- **Error**: "+formatRunError(run.LastError))
	}

	if run.Status.IsTerminal() {
		lines = append(lines,
			"\nInvocation has finished. "+
				"Use `agents_get_invocation_result` to retrieve results.")
	} else {
		lines = append(lines, "\nInvocation is still running. Check again later.")
	}
	return strings.Join(lines, "\n")
}

func formatInvocationResult(
	invocationID string, run domain.Run, messages []domain.ThreadMessage,
) string {
	if !run.Status.IsTerminal() {
		return fmt.Sprintf(
			"Invocation is not complete yet. Current status: **%s**\n"+
				"Use `agents_get_invocation_status` to monitor progress.",
			run.Status,
		)
	}

	switch run.Status {
	case domain.RunStatusFailed:
		message := "Unknown error"
		if run.LastError != nil && run.LastError.Message != "" {
			message = run.LastError.Message
		}
		return "Invocation **failed**: " + message
	case domain.RunStatusCancelled, domain.RunStatusExpired:
		return fmt.Sprintf("Invocation was **%s**.", run.Status)
	}

	lines := []string{
		"## Invocation Result\n",
		"- **Invocation ID**: `" + invocationID + "`\n",
		"### Response\n",
	}

	found := false
	for _, msg := range messages {
		if msg.Role != "assistant" {
			continue
		}
		found = true
		for _, part := range msg.Parts {
			switch part.Type {
			case domain.MessagePartText:
				lines = append(lines, part.Text)
			case domain.MessagePartImageFile:
				lines = append(lines, "[Image file: "+part.FileID+"]")
			}
		}
		break // most recent assistant message only
	}
	if !found {
		lines = append(lines, "No assistant response found.")
	}
	return strings.Join(lines, "\n")
}

func formatRunError(runErr *domain.RunError) string {
	if runErr.Code != "" {
		return runErr.Code + ": " + runErr.Message
	}
	return runErr.Message
}

func formatSearchResults(query string, hits []domain.SearchHit) string {
	if len(hits) == 0 {
		return fmt.Sprintf("No results found for query: '%s'", query)
	}

	lines := []string{fmt.Sprintf("## Search Results for: '%s'\n", query)}
	for i, hit := range hits {
		lines = append(lines, fmt.Sprintf("### %d. %s", i+1, orDefault(hit.Title, "Untitled")))
		lines = append(lines, "- **Type**: "+orDefault(hit.Type.String(), "N/A"))
		lines = append(lines, "- **Customer**: "+orDefault(hit.CustomerName, "N/A"))
		lines = append(lines, "- **Project**: "+orDefault(hit.ProjectName, "N/A"))
		lines = append(lines, "- **Summary**: "+orDefault(hit.ShortSummary, "N/A"))
		if len(hit.Tags) > 0 {
			lines = append(lines, "- **Tags**: "+strings.Join(hit.Tags, ", "))
		}
		if hit.ReferenceURL != "" {
			lines = append(lines, "- **Reference**: "+hit.ReferenceURL)
		}
		lines = append(lines, fmt.Sprintf("- **Relevance Score**: %.4f", hit.Score))
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}

func formatSampleList(templates []domain.WorkflowTemplate) string {
	lines := []string{"## Sample Workflow and Agent Definitions\n"}

	lines = append(lines, "### Declarative Agent YAML Files\n")
	lines = append(lines,
		"These files use the `kind: Prompt` format for declarative agent "+
			"definitions. They can be deployed to Azure AI Foundry or loaded by "+
			"compatible agent tooling.\n")
	for _, tpl := range templates {
		if tpl.Kind == domain.TemplateKindPrompt {
			lines = append(lines, "- **"+tpl.FileName+"**")
		}
	}
	lines = append(lines, "")

	lines = append(lines, "### Workflow YAML Files\n")
	lines = append(lines,
		"These files use the `kind: Workflow` format for declarative "+
			"multi-agent workflow orchestration.\n")
	for _, tpl := range templates {
		if tpl.Kind == domain.TemplateKindWorkflow {
			lines = append(lines, "- **"+tpl.FileName+"**")
		}
	}
	lines = append(lines, "")

	lines = append(lines, "### Built-in Workflow Tools\n")
	lines = append(lines,
		"- **`workflows_run_project_log_workflow`** – "+
			"Fetch a Microsoft customer story → extract metadata (CaseStudyAgent) → "+
			"generate architecture JSON (ArchitectureAgent) → store in vector DB.")

	return strings.Join(lines, "\n")
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
