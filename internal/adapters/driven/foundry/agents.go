package foundry

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/custodia-labs/foundry-cli/internal/core/domain"
)

// agentObject is the wire representation of a Foundry agent.
type agentObject struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Model       string            `json:"model"`
	Description string            `json:"description"`
	Tools       []agentTool       `json:"tools"`
	Metadata    map[string]string `json:"metadata"`
}

type agentTool struct {
	Type string `json:"type"`
}

// agentListResponse is one page of the agent listing.
type agentListResponse struct {
	Data    []agentObject `json:"data"`
	HasMore bool          `json:"has_more"`
	LastID  string        `json:"last_id"`
}

// agentRequest is the create/update payload.
type agentRequest struct {
	Model        string `json:"model"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	Instructions string `json:"instructions"`
}

func (a agentObject) toDomain() domain.AgentInfo {
	info := domain.AgentInfo{
		ID:          a.ID,
		Name:        a.Name,
		Model:       a.Model,
		Description: a.Description,
		Metadata:    a.Metadata,
	}
	for _, t := range a.Tools {
		info.Tools = append(info.Tools, t.Type)
	}
	return info
}

// ListAgents returns every agent in the project, following pagination.
func (c *Client) ListAgents(ctx context.Context) ([]domain.AgentInfo, error) {
	var agents []domain.AgentInfo
	after := ""
	for {
		query := []string{fmt.Sprintf("limit=%d", listPageSize)}
		if after != "" {
			query = append(query, "after="+url.QueryEscape(after))
		}

		var page agentListResponse
		if err := c.doJSON(ctx, http.MethodGet, c.url("/assistants", query...), nil, &page); err != nil {
			return nil, fmt.Errorf("list agents: %w", err)
		}

		for _, a := range page.Data {
			agents = append(agents, a.toDomain())
		}
		if !page.HasMore || page.LastID == "" {
			return agents, nil
		}
		after = page.LastID
	}
}

// CreateAgent deploys a new agent on the given model deployment.
func (c *Client) CreateAgent(
	ctx context.Context, model string, def domain.AgentDefinition,
) (domain.AgentInfo, error) {
	body := agentRequest{
		Model:        model,
		Name:         def.Name,
		Description:  def.Description,
		Instructions: def.Instructions,
	}

	var created agentObject
	if err := c.doJSON(ctx, http.MethodPost, c.url("/assistants"), body, &created); err != nil {
		return domain.AgentInfo{}, fmt.Errorf("create agent %s: %w", def.Name, err)
	}
	return created.toDomain(), nil
}

// UpdateAgent redeploys an existing agent in place.
func (c *Client) UpdateAgent(
	ctx context.Context, agentID, model string, def domain.AgentDefinition,
) (domain.AgentInfo, error) {
	body := agentRequest{
		Model:        model,
		Name:         def.Name,
		Description:  def.Description,
		Instructions: def.Instructions,
	}

	var updated agentObject
	if err := c.doJSON(ctx, http.MethodPost, c.url("/assistants/"+agentID), body, &updated); err != nil {
		return domain.AgentInfo{}, fmt.Errorf("update agent %s: %w", def.Name, err)
	}
	return updated.toDomain(), nil
}
