package mcp

import (
	"context"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// templateURIPrefix is the custom URI scheme for bundled templates.
const templateURIPrefix = "foundry://templates/"

// registerResources exposes every bundled YAML template as a readable
// resource.
func (s *Server) registerResources() error {
	templates, err := s.ports.Workflow.ListSamples()
	if err != nil {
		return err
	}

	for _, tpl := range templates {
		s.server.AddResource(&mcp.Resource{
			URI:         templateURIPrefix + tpl.FileName,
			Name:        strings.TrimSuffix(tpl.FileName, ".yaml"),
			Description: tpl.Description,
			MIMEType:    "text/yaml",
		}, s.handleTemplateResource)
	}
	return nil
}

// handleTemplateResource returns the raw YAML body of one template.
func (s *Server) handleTemplateResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	fileName := strings.TrimPrefix(req.Params.URI, templateURIPrefix)
	if fileName == req.Params.URI {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	templates, err := s.ports.Workflow.ListSamples()
	if err != nil {
		return nil, err
	}
	for _, tpl := range templates {
		if tpl.FileName == fileName {
			return &mcp.ReadResourceResult{
				Contents: []*mcp.ResourceContents{{
					URI:      req.Params.URI,
					MIMEType: "text/yaml",
					Text:     tpl.Body,
				}},
			}, nil
		}
	}
	return nil, mcp.ResourceNotFoundError(req.Params.URI)
}
