// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
// These must be provided for the application to function:
//
//   - PageFetcher: Downloads a web page and returns its visible text
//   - Embedder: Generates vector embeddings (Azure OpenAI)
//   - TokenProvider: Issues Entra ID access tokens per resource scope
//   - TemplateStore: Lists the bundled agent and workflow definitions
//   - SettingsStore: Loads runtime configuration
//
// # Optional Interfaces
//
// These can be nil - the application degrades per-operation with a
// NotConfiguredError instead of failing at startup:
//
//   - AgentPlatform: Azure AI Foundry Agents API. Only available when the
//     project endpoint is configured.
//   - ChatCompleter: Direct chat inference. Only available when a completion
//     model deployment is configured.
//   - SearchIndex: Azure AI Search project-log index. Only available when
//     the search endpoint is configured.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
