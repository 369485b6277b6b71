package templates

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/foundry-cli/internal/core/domain"
)

func TestList(t *testing.T) {
	templates, err := New().List()

	require.NoError(t, err)
	require.Len(t, templates, 3)

	// Sorted by file name.
	assert.Equal(t, "ArchitectureAgent.yaml", templates[0].FileName)
	assert.Equal(t, "CaseStudyAgent.yaml", templates[1].FileName)
	assert.Equal(t, "project_log_workflow.yaml", templates[2].FileName)

	assert.Equal(t, domain.TemplateKindPrompt, templates[0].Kind)
	assert.Equal(t, domain.TemplateKindPrompt, templates[1].Kind)
	assert.Equal(t, domain.TemplateKindWorkflow, templates[2].Kind)

	assert.Equal(t, domain.ArchitectureAgentName, templates[0].Name)
	assert.Equal(t, domain.CaseStudyAgentName, templates[1].Name)
	assert.Equal(t, "project_log_workflow", templates[2].Name)

	for _, tpl := range templates {
		assert.NotEmpty(t, tpl.Description, tpl.FileName)
		assert.NotEmpty(t, tpl.Body, tpl.FileName)
	}
}

func TestList_AgentInstructionsMatchDefinitions(t *testing.T) {
	templates, err := New().List()
	require.NoError(t, err)

	byName := map[string]domain.WorkflowTemplate{}
	for _, tpl := range templates {
		byName[tpl.Name] = tpl
	}

	assert.Contains(t, byName[domain.CaseStudyAgentName].Body, "customer success story")
	assert.Contains(t, byName[domain.ArchitectureAgentName].Body, "solution_architecture")
	assert.Contains(t, byName["project_log_workflow"].Body, "CaseStudyAgent")
	assert.Contains(t, byName["project_log_workflow"].Body, "ArchitectureAgent")
}
