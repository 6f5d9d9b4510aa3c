package domain

// Tag labels expenses. Deleting a tag does not cascade into historical
// expenses; dangling references are dropped silently at read time.
type Tag struct {
	TagID string `json:"tagID"` // Primary key (UUID)
	Name  string `json:"name"`  // Unique, trimmed
	Color string `json:"color"`
	AuditFields
}

// DefaultTagColor matches the client's default swatch.
const DefaultTagColor = "#6366f1"
