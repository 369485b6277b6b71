package domain

// Template kinds used by the bundled YAML definitions.
const (
	TemplateKindPrompt   = "Prompt"
	TemplateKindWorkflow = "Workflow"
)

// WorkflowTemplate is a bundled declarative agent or workflow definition.
type WorkflowTemplate struct {
	// FileName is the template file name, e.g. "CaseStudyAgent.yaml".
	FileName string

	// Kind is "Prompt" for agent definitions, "Workflow" for orchestrations.
	Kind string

	// Name is the declared template name.
	Name string

	// Description summarises what the template does.
	Description string

	// Body is the raw YAML text.
	Body string
}
