package mcp

import (
	"context"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readResource(uri string) *mcp.ReadResourceRequest {
	return &mcp.ReadResourceRequest{
		Params: &mcp.ReadResourceParams{URI: uri},
	}
}

func TestTemplateResource(t *testing.T) {
	ports, _, _, _, _ := testPorts()
	server, err := NewServer(ports)
	require.NoError(t, err)

	result, err := server.handleTemplateResource(context.Background(),
		readResource("foundry://templates/CaseStudyAgent.yaml"))

	require.NoError(t, err)
	require.Len(t, result.Contents, 1)
	content := result.Contents[0]
	assert.Equal(t, "foundry://templates/CaseStudyAgent.yaml", content.URI)
	assert.Equal(t, "text/yaml", content.MIMEType)
	assert.Contains(t, content.Text, "kind: Prompt")
	assert.Contains(t, content.Text, "CaseStudyAgent")
}

func TestTemplateResource_NotFound(t *testing.T) {
	ports, _, _, _, _ := testPorts()
	server, err := NewServer(ports)
	require.NoError(t, err)

	_, err = server.handleTemplateResource(context.Background(),
		readResource("foundry://templates/missing.yaml"))
	assert.Error(t, err)

	_, err = server.handleTemplateResource(context.Background(),
		readResource("other://scheme"))
	assert.Error(t, err)
}
