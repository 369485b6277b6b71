package domain

import (
	"encoding/json"
	"errors"
)

// DefaultCaseStudyTitle is substituted when the agent reply omits a title.
const DefaultCaseStudyTitle = "Untitled Customer Story"

// CaseStudy holds the structured metadata extracted from a customer story page.
type CaseStudy struct {
	// Title is the story title.
	Title string

	// CustomerName is the customer organisation name.
	CustomerName string

	// ShortSummary is a one or two sentence summary of the project.
	ShortSummary string

	// Context is the long-form description. Its embedding drives
	// similarity search, so it carries the substance of the story.
	Context string

	// Tags lists Azure services and technologies, preserving agent order.
	Tags []string

	// ReferenceURL is the source URL of the story.
	ReferenceURL string
}

// ParseCaseStudy decodes an agent reply into a CaseStudy.
//
// Missing keys are tolerated: an absent title falls back to
// DefaultCaseStudyTitle, an absent or empty reference_url falls back to
// fallbackURL, and everything else defaults to its zero value. A reply that
// is not a JSON object is an AgentOutputError.
func ParseCaseStudy(reply string, fallbackURL string) (CaseStudy, error) {
	if err := validateJSONObject(reply); err != nil {
		return CaseStudy{}, err
	}

	var raw struct {
		Title        *string  `json:"title"`
		CustomerName string   `json:"customer_name"`
		ShortSummary string   `json:"short_summary"`
		Context      string   `json:"context"`
		Tags         []string `json:"tags"`
		ReferenceURL string   `json:"reference_url"`
	}
	if err := json.Unmarshal([]byte(reply), &raw); err != nil {
		return CaseStudy{}, &AgentOutputError{Err: err}
	}

	cs := CaseStudy{
		Title:        DefaultCaseStudyTitle,
		CustomerName: raw.CustomerName,
		ShortSummary: raw.ShortSummary,
		Context:      raw.Context,
		Tags:         raw.Tags,
		ReferenceURL: raw.ReferenceURL,
	}
	if raw.Title != nil {
		cs.Title = *raw.Title
	}
	if cs.ReferenceURL == "" {
		cs.ReferenceURL = fallbackURL
	}
	if cs.Tags == nil {
		cs.Tags = []string{}
	}
	return cs, nil
}

// validateJSONObject confirms s decodes to a JSON object.
func validateJSONObject(s string) error {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal([]byte(s), &obj); err != nil {
		return &AgentOutputError{Err: err}
	}
	if obj == nil {
		return &AgentOutputError{Err: errors.New("reply is not a JSON object")}
	}
	return nil
}
