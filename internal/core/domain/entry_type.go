package domain

// EntryType classifies a project-log entry.
type EntryType string

// Entry types accepted by the project-log index.
const (
	// EntryTypeWorkshop records a customer workshop.
	EntryTypeWorkshop EntryType = "workshop"

	// EntryTypeMeeting records a project meeting.
	EntryTypeMeeting EntryType = "meeting"

	// EntryTypeBlog records an ingested customer story or blog post.
	// The ingestion workflow always writes this type.
	EntryTypeBlog EntryType = "blog"

	// EntryTypeRepo records a repository reference.
	EntryTypeRepo EntryType = "repo"
)

// IsValid returns true if the entry type is recognised.
func (t EntryType) IsValid() bool {
	switch t {
	case EntryTypeWorkshop, EntryTypeMeeting, EntryTypeBlog, EntryTypeRepo:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (t EntryType) String() string {
	return string(t)
}
