// Package domain defines the core business entities for Foundry CLI.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - ProjectLog: A persisted project-log index record
//   - CaseStudy: Structured metadata extracted from a customer story
//   - AgentDefinition: An instruction-bearing agent contract
//   - Run / RunStatus: The deployed-agent run lifecycle
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
