package model

import "time"

// Draft is the single unsent note kept between sessions
type Draft struct {
	// Content is the raw text being edited
	Content string `json:"content"`

	// SavedAt is when the draft was last written
	SavedAt time.Time `json:"saved_at"`
}

// TagSelection is the pair of tags attached to one note.
// An empty field means the slot is not set.
type TagSelection struct {
	Primary   string `json:"primary,omitempty"`
	Secondary string `json:"secondary,omitempty"`
}

// IsEmpty reports whether neither slot is set.
func (t TagSelection) IsEmpty() bool {
	return t.Primary == "" && t.Secondary == ""
}

// Values returns the populated slots, primary first.
func (t TagSelection) Values() []string {
	var out []string

	if t.Primary != "" {
		out = append(out, t.Primary)
	}

	if t.Secondary != "" {
		out = append(out, t.Secondary)
	}

	return out
}

// HistoryEntry records one successful submission
type HistoryEntry struct {
	// ID is unique and time-ordered
	ID string `json:"id"`

	// FileName is the generated file name (YYYYMMDDhhmmss.md)
	FileName string `json:"file_name"`

	// Content is the raw text as typed, without frontmatter
	Content string `json:"content"`

	// CreatedAt is when the submission succeeded
	CreatedAt time.Time `json:"created_at"`

	// URL is the web URL of the created file, if GitHub returned one
	URL string `json:"url,omitempty"`

	// Tags is the tag selection the note was submitted with
	Tags *TagSelection `json:"tags,omitempty"`
}

// MaxHistory is the number of history entries kept; older ones are evicted.
const MaxHistory = 100
