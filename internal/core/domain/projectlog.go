package domain

import "time"

// ProjectLogFieldNames lists the search index schema fields in declaration
// order. The index adapter builds its schema from the same order.
var ProjectLogFieldNames = []string{
	"id",
	"title",
	"type",
	"customer_name",
	"short_summary",
	"context",
	"context_vector",
	"project_name",
	"tags",
	"reference_url",
	"architecture",
	"creation_date",
	"modified_date",
}

// NewEntry carries the caller-supplied fields of a project-log entry,
// before an ID, timestamps, and the embedding vector are assigned.
type NewEntry struct {
	// Title is the entry title.
	Title string

	// Type classifies the entry (workshop, meeting, blog, repo).
	Type EntryType

	// CustomerName is the customer or organisation name.
	CustomerName string

	// ShortSummary is a brief summary of the content.
	ShortSummary string

	// Context is the body text; its embedding is stored alongside it.
	Context string

	// ProjectName tags the entry for filtering and faceting.
	ProjectName string

	// Tags lists technology or product tags.
	Tags []string

	// ReferenceURL points at the external source.
	ReferenceURL string

	// Architecture is an opaque diagram document, JSON or XML.
	Architecture string
}

// ProjectLog is the persisted project-log record. JSON field names match
// the search index schema.
type ProjectLog struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Type          EntryType `json:"type"`
	CustomerName  string    `json:"customer_name"`
	ShortSummary  string    `json:"short_summary"`
	Context       string    `json:"context"`
	ContextVector []float32 `json:"context_vector"`
	ProjectName   string    `json:"project_name"`
	Tags          []string  `json:"tags"`
	ReferenceURL  string    `json:"reference_url"`
	Architecture  string    `json:"architecture"`
	CreationDate  time.Time `json:"creation_date"`
	ModifiedDate  time.Time `json:"modified_date"`
}

// NewProjectLog assembles the persisted record from its parts. The caller
// supplies the generated id and the clock reading; creation and modified
// dates are equal on first write and normalised to UTC. Inputs are never
// mutated.
func NewProjectLog(id string, entry NewEntry, vector []float32, now time.Time) ProjectLog {
	ts := now.UTC()
	tags := entry.Tags
	if tags == nil {
		tags = []string{}
	}
	return ProjectLog{
		ID:            id,
		Title:         entry.Title,
		Type:          entry.Type,
		CustomerName:  entry.CustomerName,
		ShortSummary:  entry.ShortSummary,
		Context:       entry.Context,
		ContextVector: vector,
		ProjectName:   entry.ProjectName,
		Tags:          tags,
		ReferenceURL:  entry.ReferenceURL,
		Architecture:  entry.Architecture,
		CreationDate:  ts,
		ModifiedDate:  ts,
	}
}
