package domain

// Announcement is an admin-authored notice. Append-only, no status field.
type Announcement struct {
	ID          int32  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	CreatedBy   string `json:"createdBy"`
	CreatedOn   string `json:"created_on"`
}
