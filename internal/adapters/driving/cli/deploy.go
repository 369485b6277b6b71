package cli

import (
	"github.com/spf13/cobra"

	"github.com/custodia-labs/foundry-cli/internal/core/domain"
)

var deployCaseStudyCmd = &cobra.Command{
	Use:   "deploy-case-study-agent",
	Short: "Deploy the CaseStudyAgent to the Foundry project",
	Long: `Create the CaseStudyAgent in the Azure AI Foundry project, or update it
in place when an agent with the same name already exists. The agent
extracts structured metadata from customer success story text.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runDeploy(cmd, domain.CaseStudyAgent())
	},
}

var deployArchitectureCmd = &cobra.Command{
	Use:   "deploy-architecture-agent",
	Short: "Deploy the ArchitectureAgent to the Foundry project",
	Long: `Create the ArchitectureAgent in the Azure AI Foundry project, or update
it in place when an agent with the same name already exists. The agent
generates structured architecture JSON from project metadata.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runDeploy(cmd, domain.ArchitectureAgent())
	},
}

func init() {
	rootCmd.AddCommand(deployCaseStudyCmd)
	rootCmd.AddCommand(deployArchitectureCmd)
}

func runDeploy(cmd *cobra.Command, def domain.AgentDefinition) error {
	app, err := newApp()
	if err != nil {
		return err
	}

	result, err := app.deploy.Deploy(cmd.Context(), def)
	if err != nil {
		return err
	}

	if result.Created {
		cmd.Printf("Created %s (ID: %s)\n", def.Name, result.AgentID)
	} else {
		cmd.Printf("Updated %s (ID: %s)\n", def.Name, result.AgentID)
	}
	cmd.Printf("\nAgent ID: %s\n\n"+
		"The agent is now available in your Foundry project.\n"+
		"Use `agents_list_agents` in the MCP server to verify.\n", result.AgentID)
	return nil
}
