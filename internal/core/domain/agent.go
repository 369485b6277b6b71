package domain

// Agent names used by the ingestion workflow. Platform lookup is by exact
// name match.
const (
	CaseStudyAgentName    = "CaseStudyAgent"
	ArchitectureAgentName = "ArchitectureAgent"
)

const caseStudyInstructions = `You extract structured information from Microsoft customer success story text.
When given the text content of a customer story page, extract and return ONLY
a valid JSON object with these fields:
{
  "title": "<story title>",
  "customer_name": "<customer organization name>",
  "short_summary": "<1–2 sentence summary of the project>",
  "context": "<200–400 word description: challenges faced, Azure solution adopted, and measurable outcomes>",
  "tags": ["<Azure service or technology>", ...],
  "reference_url": "<original URL if mentioned or provided, else empty string>"
}
Be factual and precise. Return ONLY the JSON object with no markdown fences,
no explanations, and no extra text.
`

const architectureInstructions = `You are a cloud solution architect. When given a project title, customer name,
context description, and list of technology tags, generate a structured JSON
representation of the solution architecture following this exact schema:
{
  "diagram_type": "solution_architecture",
  "components": [
    {
      "name": "<component name>",
      "type": "<Azure service type>",
      "description": "<what it does in the solution>"
    }
  ],
  "connections": [
    {
      "from": "<component A name>",
      "to": "<component B name>",
      "description": "<data or control flow description>"
    }
  ],
  "patterns": ["<architectural pattern>", ...]
}
Derive the components and connections from the context description and tags.
Each component should correspond to a real Azure service or architectural
building block mentioned or implied by the project context.
Return ONLY the JSON object with no markdown fences, no explanations, and no
extra text.
`

// AgentDefinition describes an instruction-bearing agent. The same
// definition backs both a deployed platform agent and the direct
// chat-completion fallback.
type AgentDefinition struct {
	// Name is the exact agent name used for platform lookup.
	Name string

	// Description is shown in the Foundry portal and agent listings.
	Description string

	// Instructions is the system prompt. It fixes the JSON reply contract.
	Instructions string

	// Temperature applies to the direct chat backend only; deployed agents
	// run with their server-side configuration.
	Temperature float32

	// DeployCommand is the CLI command that deploys this agent, referenced
	// in error messages when no backend is available.
	DeployCommand string
}

// CaseStudyAgent returns the metadata-extraction agent definition.
func CaseStudyAgent() AgentDefinition {
	return AgentDefinition{
		Name: CaseStudyAgentName,
		Description: "Extracts structured metadata from Microsoft customer success story text " +
			"and returns a JSON object ready for ingestion into the project-log index.",
		Instructions:  caseStudyInstructions,
		Temperature:   0.1,
		DeployCommand: "deploy-case-study-agent",
	}
}

// ArchitectureAgent returns the diagram-generation agent definition.
func ArchitectureAgent() AgentDefinition {
	return AgentDefinition{
		Name: ArchitectureAgentName,
		Description: "Generates a structured JSON representation of a solution architecture " +
			"from a project description, customer name, and list of Azure technologies.",
		Instructions:  architectureInstructions,
		Temperature:   0.3,
		DeployCommand: "deploy-architecture-agent",
	}
}

// AgentInfo describes an agent as listed by the platform.
type AgentInfo struct {
	// ID is the platform-assigned agent id.
	ID string

	// Name is the agent name. May be empty for unnamed agents.
	Name string

	// Model is the deployment the agent runs on.
	Model string

	// Description is the agent description, if any.
	Description string

	// Tools lists tool types the agent is configured with.
	Tools []string

	// Metadata carries arbitrary platform metadata.
	Metadata map[string]string
}

// DeployResult reports an idempotent agent deployment.
type DeployResult struct {
	// AgentID is the platform-assigned agent id.
	AgentID string

	// Created is true when a new agent was created rather than updated.
	Created bool
}
