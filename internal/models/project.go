package models

// Project is the top-level resource. It owns zero or more tasks, which are
// removed with it.
type Project struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
}
