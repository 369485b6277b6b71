package domain

import "time"

// SearchHit is a single nearest-neighbour match from the project-log index.
type SearchHit struct {
	// ID is the document id.
	ID string

	// Title is the document title.
	Title string

	// Type classifies the entry.
	Type EntryType

	// CustomerName is the customer or organisation name.
	CustomerName string

	// ShortSummary is the brief summary stored with the document.
	ShortSummary string

	// ProjectName is the project the entry is tagged with.
	ProjectName string

	// Tags lists technology or product tags.
	Tags []string

	// ReferenceURL points at the external source, if any.
	ReferenceURL string

	// CreationDate is when the document was first written.
	CreationDate time.Time

	// Score is the index's relevance score for the query vector.
	Score float64
}

// DefaultTopK is the number of results returned when the caller does not
// ask for a specific count.
const DefaultTopK = 5
