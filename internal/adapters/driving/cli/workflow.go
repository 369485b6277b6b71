package cli

import (
	"github.com/spf13/cobra"
)

var (
	workflowURL     string
	workflowProject string
)

var runWorkflowCmd = &cobra.Command{
	Use:   "run-project-log-workflow",
	Short: "Run the customer-story ingestion workflow",
	Long: `Run the full project-log ingestion pipeline for a Microsoft customer
story: fetch the page, extract metadata with CaseStudyAgent, generate an
architecture diagram with ArchitectureAgent, and store the combined entry
in the project-log vector index.

The Markdown progress report is printed to stdout.`,
	RunE: runWorkflow,
}

func init() {
	runWorkflowCmd.Flags().StringVar(&workflowURL, "url", "",
		"public URL of the customer story to ingest (required)")
	runWorkflowCmd.Flags().StringVar(&workflowProject, "project", "",
		"project name to tag the entry with")
	runWorkflowCmd.MarkFlagRequired("url") //nolint:errcheck
	rootCmd.AddCommand(runWorkflowCmd)
}

func runWorkflow(cmd *cobra.Command, _ []string) error {
	app, err := newApp()
	if err != nil {
		return err
	}

	report, err := app.workflow.RunProjectLog(cmd.Context(), workflowURL, workflowProject)
	if err != nil {
		return err
	}
	cmd.Println(report)
	return nil
}
