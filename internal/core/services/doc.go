// Package services contains the core business logic of the Foundry CLI.
//
// Services implement the driving ports consumed by the MCP and CLI
// adapters, and depend only on domain types and driven port interfaces.
// The central pieces are:
//
//   - Invoker: runs an instruction-bearing agent on a user message,
//     preferring a deployed Foundry agent and falling back to direct
//     Azure OpenAI inference.
//   - WorkflowService: the four-step customer-story ingestion pipeline
//     (fetch → CaseStudyAgent → ArchitectureAgent → index upload).
//   - AgentService: list/invoke/status/result for deployed agents.
//   - SearchService, IndexService: vector search and document ingestion
//     against the project-log index.
//   - DeployService: idempotent agent deployment.
package services
