package model

// Reading status of a library entry.
const (
	StatusToRead  = "to-read"
	StatusReading = "reading"
	StatusRead    = "read"
)

func IsValidStatus(status string) bool {
	switch status {
	case StatusToRead, StatusReading, StatusRead:
		return true
	}
	return false
}

// LibraryEntry links a user to a book with a reading status. BookID is a
// weak reference: deleting the book from the catalog does not remove the
// entry.
type LibraryEntry struct {
	UserID    int    `json:"user_id"`
	BookID    int    `json:"book_id"`
	Status    string `json:"status"`
	AddedAt   string `json:"added_at"`
	UpdatedAt string `json:"updated_at"`
}

// LibraryItem is a library entry resolved against the current catalog.
// Book is nil when the referenced book no longer exists.
type LibraryItem struct {
	Entry LibraryEntry `json:"entry"`
	Book  *Book        `json:"book"`
}

// LibraryStats are per-user reading list counters.
type LibraryStats struct {
	Total   int `json:"total"`
	ToRead  int `json:"to_read"`
	Reading int `json:"reading"`
	Read    int `json:"read"`
}
