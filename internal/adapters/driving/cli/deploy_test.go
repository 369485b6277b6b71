package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/foundry-cli/internal/core/domain"
)

func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.Execute()
	return buf.String(), err
}

func TestDeployCaseStudyAgent(t *testing.T) {
	deploy := &stubDeployService{
		result: domain.DeployResult{AgentID: "asst-new", Created: true},
	}
	withApp(t, &app{deploy: deploy})

	output, err := executeCommand(t, "deploy-case-study-agent")

	require.NoError(t, err)
	assert.Equal(t, domain.CaseStudyAgentName, deploy.deployed.Name)
	assert.Contains(t, output, "Created CaseStudyAgent (ID: asst-new)\n")
	assert.Contains(t, output,
		"\nAgent ID: asst-new\n\n"+
			"The agent is now available in your Foundry project.\n"+
			"Use `agents_list_agents` in the MCP server to verify.\n")
}

func TestDeployArchitectureAgent_Update(t *testing.T) {
	deploy := &stubDeployService{
		result: domain.DeployResult{AgentID: "asst-old", Created: false},
	}
	withApp(t, &app{deploy: deploy})

	output, err := executeCommand(t, "deploy-architecture-agent")

	require.NoError(t, err)
	assert.Equal(t, domain.ArchitectureAgentName, deploy.deployed.Name)
	assert.Contains(t, output, "Updated ArchitectureAgent (ID: asst-old)\n")
}

func TestDeploy_NotConfigured(t *testing.T) {
	deploy := &stubDeployService{
		err: &domain.NotConfiguredError{
			Setting: "AZURE_AI_PROJECT_ENDPOINT",
			Hint:    "Set this environment variable before deploying.",
		},
	}
	withApp(t, &app{deploy: deploy})

	_, err := executeCommand(t, "deploy-case-study-agent")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "AZURE_AI_PROJECT_ENDPOINT is not configured.")
}
