package foundry

import (
	"context"
	"fmt"
	"net/http"

	"github.com/custodia-labs/foundry-cli/internal/core/domain"
)

// messageListResponse is the thread message listing.
type messageListResponse struct {
	Data []messageObject `json:"data"`
}

type messageObject struct {
	Role    string              `json:"role"`
	Content []messageContentObj `json:"content"`
}

// messageContentObj is one content part. Exactly one of Text or ImageFile
// is set, selected by Type.
type messageContentObj struct {
	Type      string `json:"type"`
	Text      *struct {
		Value string `json:"value"`
	} `json:"text"`
	ImageFile *struct {
		FileID string `json:"file_id"`
	} `json:"image_file"`
}

// ListMessages returns the thread's messages, newest first.
func (c *Client) ListMessages(ctx context.Context, threadID string) ([]domain.ThreadMessage, error) {
	var list messageListResponse
	url := c.url("/threads/"+threadID+"/messages", "order=desc")
	if err := c.doJSON(ctx, http.MethodGet, url, nil, &list); err != nil {
		return nil, fmt.Errorf("list messages for thread %s: %w", threadID, err)
	}

	messages := make([]domain.ThreadMessage, 0, len(list.Data))
	for _, m := range list.Data {
		msg := domain.ThreadMessage{Role: m.Role}
		for _, part := range m.Content {
			switch part.Type {
			case domain.MessagePartText:
				if part.Text != nil {
					msg.Parts = append(msg.Parts, domain.MessagePart{
						Type: domain.MessagePartText,
						Text: part.Text.Value,
					})
				}
			case domain.MessagePartImageFile:
				if part.ImageFile != nil {
					msg.Parts = append(msg.Parts, domain.MessagePart{
						Type:   domain.MessagePartImageFile,
						FileID: part.ImageFile.FileID,
					})
				}
			}
		}
		messages = append(messages, msg)
	}
	return messages, nil
}
